package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins "now" so time-phrase resolution is reproducible.
func fixedClock() time.Time {
	return time.Date(2025, 9, 10, 15, 30, 45, 123, time.UTC)
}

func fixedMidnight() time.Time {
	return time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)
}

func TestExtract(t *testing.T) {
	extractor := NewExtractor(fixedClock, 20)

	tests := []struct {
		name  string
		text  string
		check func(t *testing.T, q SearchQuery)
	}{
		{
			name: "empty text yields defaults",
			text: "",
			check: func(t *testing.T, q SearchQuery) {
				assert.Empty(t, q.Location)
				assert.Empty(t, q.Keywords)
				assert.Nil(t, q.StartTime)
				assert.False(t, q.RemoteOnly)
				assert.Equal(t, 20, q.MaxResults)
			},
		},
		{
			name: "nonsensical text yields defaults",
			text: "hello world",
			check: func(t *testing.T, q SearchQuery) {
				assert.Empty(t, q.Location)
				assert.Empty(t, q.Keywords)
				assert.Nil(t, q.StartTime)
				assert.False(t, q.RemoteOnly)
			},
		},
		{
			name: "today resolves to midnight",
			text: "events today",
			check: func(t *testing.T, q SearchQuery) {
				require.NotNil(t, q.StartTime)
				assert.Equal(t, fixedMidnight(), *q.StartTime)
			},
		},
		{
			name: "tomorrow adds a day",
			text: "anything happening tomorrow?",
			check: func(t *testing.T, q SearchQuery) {
				require.NotNil(t, q.StartTime)
				assert.Equal(t, fixedMidnight().AddDate(0, 0, 1), *q.StartTime)
			},
		},
		{
			name: "this week resolves to midnight today",
			text: "concerts this week",
			check: func(t *testing.T, q SearchQuery) {
				require.NotNil(t, q.StartTime)
				assert.Equal(t, fixedMidnight(), *q.StartTime)
			},
		},
		{
			name: "next week adds seven days",
			text: "meetups next week",
			check: func(t *testing.T, q SearchQuery) {
				require.NotNil(t, q.StartTime)
				assert.Equal(t, fixedMidnight().AddDate(0, 0, 7), *q.StartTime)
			},
		},
		{
			name: "earliest declared time rule wins",
			text: "tomorrow or maybe today",
			check: func(t *testing.T, q SearchQuery) {
				require.NotNil(t, q.StartTime)
				assert.Equal(t, fixedMidnight(), *q.StartTime)
			},
		},
		{
			name: "near me maps to the current-location sentinel",
			text: "tech events near me",
			check: func(t *testing.T, q SearchQuery) {
				assert.Equal(t, CurrentLocation, q.Location)
			},
		},
		{
			name: "in place captures the place name",
			text: "tech events in San Francisco",
			check: func(t *testing.T, q SearchQuery) {
				assert.Equal(t, "San Francisco", q.Location)
			},
		},
		{
			name: "near me wins over in place",
			text: "events near me in Oakland",
			check: func(t *testing.T, q SearchQuery) {
				assert.Equal(t, CurrentLocation, q.Location)
			},
		},
		{
			name: "trailing time phrase is dropped from the place",
			text: "events in Berlin next week",
			check: func(t *testing.T, q SearchQuery) {
				assert.Equal(t, "Berlin", q.Location)
				require.NotNil(t, q.StartTime)
				assert.Equal(t, fixedMidnight().AddDate(0, 0, 7), *q.StartTime)
			},
		},
		{
			name: "remote terms set the flag",
			text: "virtual workshops",
			check: func(t *testing.T, q SearchQuery) {
				assert.True(t, q.RemoteOnly)
			},
		},
		{
			name: "keywords come back in vocabulary order",
			text: "python and javascript programming",
			check: func(t *testing.T, q SearchQuery) {
				assert.Equal(t, []string{"programming", "python", "javascript"}, q.Keywords)
			},
		},
		{
			name: "each vocabulary entry contributes once",
			text: "python python python",
			check: func(t *testing.T, q SearchQuery) {
				assert.Equal(t, []string{"python"}, q.Keywords)
			},
		},
		{
			name: "combined query",
			text: "remote python programming events near me today",
			check: func(t *testing.T, q SearchQuery) {
				assert.True(t, q.RemoteOnly)
				assert.Equal(t, []string{"programming", "python"}, q.Keywords)
				assert.Equal(t, CurrentLocation, q.Location)
				require.NotNil(t, q.StartTime)
				assert.Equal(t, fixedMidnight(), *q.StartTime)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, extractor.Extract(tt.text))
		})
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	extractor := NewExtractor(fixedClock, 20)

	first := extractor.Extract("remote tech events in Boston tomorrow")
	second := extractor.Extract("remote tech events in Boston tomorrow")

	assert.Equal(t, first, second)
}

func TestNewExtractorDefaults(t *testing.T) {
	extractor := NewExtractor(nil, 0)

	q := extractor.Extract("")
	assert.Equal(t, DefaultMaxResults, q.MaxResults)
}
