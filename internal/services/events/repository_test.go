package events

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/eventscout/eventscout-api/internal/database"
	"github.com/eventscout/eventscout-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "events.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.AutoMigrate(&models.Event{}))

	return NewRepository(db.DB)
}

func seedEvents(t *testing.T, repo *Repository) {
	t.Helper()

	events := []models.Event{
		{
			Title:       "Tech Meetup: AI & Machine Learning",
			Description: "Latest in AI and ML technologies",
			Date:        time.Date(2025, 9, 15, 18, 0, 0, 0, time.UTC),
			Location:    "Downtown San Francisco",
			Latitude:    37.7849,
			Longitude:   -122.4094,
			Category:    "technology",
			Source:      "eventbrite",
			SourceID:    "eb-1",
		},
		{
			Title:       "Art Gallery Opening",
			Description: "Contemporary art exhibition",
			Date:        time.Date(2025, 9, 20, 19, 0, 0, 0, time.UTC),
			Location:    "Mission District",
			Latitude:    37.7649,
			Longitude:   -122.4194,
			Category:    "art",
			Source:      "eventbrite",
			SourceID:    "eb-2",
		},
		{
			Title:       "Startup Pitch Competition",
			Description: "Startups pitch their ideas to investors",
			Date:        time.Date(2025, 9, 25, 17, 0, 0, 0, time.UTC),
			Location:    "SOMA, San Francisco",
			Latitude:    37.7749,
			Longitude:   -122.4094,
			Category:    "business",
			Source:      "meetup",
			SourceID:    "mu-1",
		},
	}

	for i := range events {
		require.NoError(t, repo.Upsert(context.Background(), &events[i]))
	}
}

func TestRepositorySearch(t *testing.T) {
	repo := newTestRepo(t)
	seedEvents(t, repo)
	ctx := context.Background()

	tests := []struct {
		name    string
		filters SearchFilters
		want    []string
	}{
		{
			name:    "no filters returns everything in date order",
			filters: SearchFilters{},
			want:    []string{"eb-1", "eb-2", "mu-1"},
		},
		{
			name:    "term matches title",
			filters: SearchFilters{Term: "Pitch"},
			want:    []string{"mu-1"},
		},
		{
			name:    "term matches description",
			filters: SearchFilters{Term: "exhibition"},
			want:    []string{"eb-2"},
		},
		{
			name:    "category filter",
			filters: SearchFilters{Category: "technology"},
			want:    []string{"eb-1"},
		},
		{
			name: "date lower bound",
			filters: SearchFilters{
				DateFrom: timePtr(time.Date(2025, 9, 18, 0, 0, 0, 0, time.UTC)),
			},
			want: []string{"eb-2", "mu-1"},
		},
		{
			name:    "location substring",
			filters: SearchFilters{Location: "San Francisco"},
			want:    []string{"eb-1", "mu-1"},
		},
		{
			name:    "no match",
			filters: SearchFilters{Term: "does-not-exist"},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := repo.Search(ctx, tt.filters)
			require.NoError(t, err)

			var ids []string
			for _, e := range events {
				ids = append(ids, e.SourceID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestRepositoryGetByID(t *testing.T) {
	repo := newTestRepo(t)
	seedEvents(t, repo)
	ctx := context.Background()

	events, err := repo.Search(ctx, SearchFilters{Term: "Art"})
	require.NoError(t, err)
	require.Len(t, events, 1)

	got, err := repo.GetByID(ctx, events[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Art Gallery Opening", got.Title)

	_, err = repo.GetByID(ctx, 99999)
	assert.True(t, IsNotFound(err))
}

func TestRepositoryCategories(t *testing.T) {
	repo := newTestRepo(t)
	seedEvents(t, repo)

	categories, err := repo.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"art", "business", "technology"}, categories)
}

func TestRepositoryUpsertDedupsBySourceID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := models.Event{
		Title:    "Original Title",
		Date:     time.Date(2025, 9, 15, 18, 0, 0, 0, time.UTC),
		Source:   "eventbrite",
		SourceID: "eb-dup",
	}
	require.NoError(t, repo.Upsert(ctx, &first))

	updated := models.Event{
		Title:    "Updated Title",
		Date:     time.Date(2025, 9, 16, 18, 0, 0, 0, time.UTC),
		Source:   "eventbrite",
		SourceID: "eb-dup",
	}
	require.NoError(t, repo.Upsert(ctx, &updated))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	events, err := repo.Search(ctx, SearchFilters{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Updated Title", events[0].Title)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
