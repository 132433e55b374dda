package events

import (
	"context"
	"log"

	"github.com/eventscout/eventscout-api/internal/models"
)

type Service struct {
	repo EventRepository
}

// Ensure Service implements EventService interface
var _ EventService = (*Service)(nil)

func NewService(repo EventRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Search(ctx context.Context, filters SearchFilters) ([]models.Event, error) {
	return s.repo.Search(ctx, filters)
}

func (s *Service) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// SaveBatch upserts scraped events one by one so a single bad record
// does not sink the whole batch.
func (s *Service) SaveBatch(ctx context.Context, events []models.Event) (int, error) {
	saved := 0
	for i := range events {
		event := &events[i]
		if event.SourceID == "" {
			log.Printf("[WARN] Skipping event without source id: %q", event.Title)
			continue
		}
		if err := s.repo.Upsert(ctx, event); err != nil {
			log.Printf("[ERROR] Failed to save event %s: %v", event.SourceID, err)
			continue
		}
		saved++
	}
	return saved, nil
}
