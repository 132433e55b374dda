package scrapers

import (
	"context"
	"log"
	"sync"

	"github.com/eventscout/eventscout-api/internal/models"
	"github.com/eventscout/eventscout-api/internal/services/events"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Manager fans a scrape run out across all registered sources and
// batch-saves the results.
type Manager struct {
	scrapers        []EventScraper
	eventService    events.EventService
	defaultLocation string
	maxPerSource    int
}

// RunResult summarizes a completed scrape run.
type RunResult struct {
	JobID   string `json:"job_id"`
	Scraped int    `json:"scraped"`
	Saved   int    `json:"saved"`
}

func NewManager(eventService events.EventService, defaultLocation string, maxPerSource int, scrapers ...EventScraper) *Manager {
	if defaultLocation == "" {
		defaultLocation = "San Francisco, CA"
	}
	if maxPerSource <= 0 {
		maxPerSource = 100
	}
	return &Manager{
		scrapers:        scrapers,
		eventService:    eventService,
		defaultLocation: defaultLocation,
		maxPerSource:    maxPerSource,
	}
}

// Run scrapes all sources concurrently. A failing source is logged and
// skipped; the run only errors when saving fails. An empty jobID gets a
// generated one; callers that respond before the run completes pass
// their own so clients can correlate logs.
func (m *Manager) Run(ctx context.Context, jobID, location, category string) (*RunResult, error) {
	if location == "" {
		location = m.defaultLocation
	}
	if jobID == "" {
		jobID = uuid.NewString()
	}
	log.Printf("Starting scrape job %s (location=%q category=%q sources=%d)",
		jobID, location, category, len(m.scrapers))

	var (
		mu        sync.Mutex
		collected []models.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, scraper := range m.scrapers {
		g.Go(func() error {
			scraped, err := scraper.ScrapeEvents(gctx, location, category, m.maxPerSource)
			if err != nil {
				log.Printf("[ERROR] Scrape job %s: source %s failed: %v", jobID, scraper.Name(), err)
				return nil
			}
			mu.Lock()
			collected = append(collected, scraped...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	saved, err := m.eventService.SaveBatch(ctx, collected)
	if err != nil {
		return nil, err
	}

	log.Printf("Scrape job %s finished: %d scraped, %d saved", jobID, len(collected), saved)
	return &RunResult{JobID: jobID, Scraped: len(collected), Saved: saved}, nil
}
