package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventscout/eventscout-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultSearchLimit caps search results when the caller sets none.
const defaultSearchLimit = 100

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements EventRepository interface
var _ EventRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Search(ctx context.Context, filters SearchFilters) ([]models.Event, error) {
	query := r.db.WithContext(ctx).Model(&models.Event{})

	if filters.Term != "" {
		pattern := "%" + filters.Term + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.DateFrom != nil {
		query = query.Where("date >= ?", *filters.DateFrom)
	}
	if filters.Location != "" {
		query = query.Where("location LIKE ?", "%"+filters.Location+"%")
	}

	limit := filters.Limit
	if limit <= 0 || limit > defaultSearchLimit {
		limit = defaultSearchLimit
	}

	var events []models.Event
	if err := query.Order("date ASC").Limit(limit).Find(&events).Error; err != nil {
		return nil, fmt.Errorf("searching events: %w", err)
	}
	return events, nil
}

func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("event", id)
		}
		return nil, fmt.Errorf("getting event: %w", err)
	}
	return &event, nil
}

func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Distinct("category").
		Where("category <> ''").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return categories, nil
}

// Upsert inserts the event, or updates the existing row with the same
// source id.
func (r *Repository) Upsert(ctx context.Context, event *models.Event) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "source_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "description", "date", "location",
				"latitude", "longitude", "category", "url", "image_url", "updated_at",
			}),
		}).
		Create(event).Error; err != nil {
		return fmt.Errorf("upserting event %s: %w", event.SourceID, err)
	}
	return nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting events: %w", err)
	}
	return count, nil
}
