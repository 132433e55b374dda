package recommend

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/eventscout/eventscout-api/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type stubSearcher struct {
	events    []query.EventRecord
	err       error
	lastQuery query.SearchQuery
}

func (s *stubSearcher) SearchEvents(ctx context.Context, q query.SearchQuery) ([]query.EventRecord, error) {
	s.lastQuery = q
	return s.events, s.err
}

type stubModel struct {
	response string
	err      error
	prompt   string
}

func (m *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if len(messages) > 0 && len(messages[0].Parts) > 0 {
		if text, ok := messages[0].Parts[0].(llms.TextContent); ok {
			m.prompt = text.Text
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.response}},
	}, nil
}

func (m *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	m.prompt = prompt
	return m.response, m.err
}

func testEvents(n int) []query.EventRecord {
	events := make([]query.EventRecord, 0, n)
	for i := 1; i <= n; i++ {
		events = append(events, query.EventRecord{
			ID:        fmt.Sprintf("evt-%d", i),
			Title:     fmt.Sprintf("Event %d", i),
			URL:       fmt.Sprintf("https://example.com/%d", i),
			StartTime: time.Date(2025, 9, 15, 18, 0, 0, 0, time.UTC),
			GroupName: "Group",
		})
	}
	return events
}

func newTestRecommender(searcher EventSearcher, model llms.Model) *Recommender {
	clock := func() time.Time { return time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC) }
	return NewRecommender(query.NewExtractor(clock, 20), query.NewFormatter(), searcher, model)
}

func TestSearch(t *testing.T) {
	searcher := &stubSearcher{events: testEvents(2)}
	rec := newTestRecommender(searcher, nil)

	out := rec.Search(context.Background(), "python events in Denver", 5)

	assert.Contains(t, out, "Found 2 relevant events:")
	assert.Equal(t, "Denver", searcher.lastQuery.Location)
	assert.Equal(t, []string{"python"}, searcher.lastQuery.Keywords)
	assert.Equal(t, 5, searcher.lastQuery.MaxResults)
}

func TestSearchErrorYieldsEmptyDigest(t *testing.T) {
	searcher := &stubSearcher{err: fmt.Errorf("upstream down")}
	rec := newTestRecommender(searcher, nil)

	out := rec.Search(context.Background(), "anything", 0)
	assert.Equal(t, "No events found matching your criteria.", out)
}

func TestAugmentPrompt(t *testing.T) {
	t.Run("with events", func(t *testing.T) {
		searcher := &stubSearcher{events: testEvents(1)}
		rec := newTestRecommender(searcher, nil)

		out := rec.AugmentPrompt(context.Background(), "find me tech events")

		assert.Contains(t, out, "find me tech events")
		assert.Contains(t, out, "=== Relevant Meetup Events ===")
		assert.Contains(t, out, "**Event 1**")
		assert.Contains(t, out, "Please provide recommendations based on the above events.")
	})

	t.Run("without events", func(t *testing.T) {
		searcher := &stubSearcher{}
		rec := newTestRecommender(searcher, nil)

		out := rec.AugmentPrompt(context.Background(), "find me tech events")

		assert.Contains(t, out, "find me tech events")
		assert.Contains(t, out, "[Note: No relevant Meetup events found.]")
		assert.NotContains(t, out, "=== Relevant Meetup Events ===")
	})

	t.Run("search error reads as no events", func(t *testing.T) {
		searcher := &stubSearcher{err: fmt.Errorf("timeout")}
		rec := newTestRecommender(searcher, nil)

		out := rec.AugmentPrompt(context.Background(), "find me tech events")
		assert.Contains(t, out, "[Note: No relevant Meetup events found.]")
	})
}

func TestRecommend(t *testing.T) {
	t.Run("uses the model when configured", func(t *testing.T) {
		searcher := &stubSearcher{events: testEvents(1)}
		model := &stubModel{response: "Go to Event 1."}
		rec := newTestRecommender(searcher, model)

		out := rec.Recommend(context.Background(), "what should I attend?", "evenings only")

		assert.Equal(t, "Go to Event 1.", out)
		assert.Contains(t, model.prompt, "Additional preferences: evenings only")
		assert.Contains(t, model.prompt, "**Event 1**")
	})

	t.Run("degrades without a model", func(t *testing.T) {
		searcher := &stubSearcher{events: testEvents(1)}
		rec := newTestRecommender(searcher, nil)

		out := rec.Recommend(context.Background(), "what should I attend?", "")

		assert.Contains(t, out, "Model integration not configured.")
		assert.Contains(t, out, "**Event 1**")
	})

	t.Run("degrades on model failure", func(t *testing.T) {
		searcher := &stubSearcher{events: testEvents(1)}
		model := &stubModel{err: fmt.Errorf("rate limited")}
		rec := newTestRecommender(searcher, model)

		out := rec.Recommend(context.Background(), "what should I attend?", "")

		assert.Contains(t, out, "Model unavailable.")
		assert.Contains(t, out, "**Event 1**")
	})
}

func TestNewAnthropicModelWithoutKey(t *testing.T) {
	model, err := NewAnthropicModel("", "claude-3-5-sonnet-latest")
	require.NoError(t, err)
	assert.Nil(t, model)
}
