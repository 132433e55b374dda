package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/eventscout/eventscout-api/internal/database"
	"github.com/eventscout/eventscout-api/internal/models"
	eventsService "github.com/eventscout/eventscout-api/internal/services/events"
	"github.com/eventscout/eventscout-api/internal/services/scrapers"
	"github.com/eventscout/eventscout-api/pkg/config"
	"github.com/spf13/cobra"
)

var (
	scrapeLocation string
	scrapeCategory string
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Run a one-shot event scrape",
	Long: `Scrape all configured event sources once and store the results.

Sources run concurrently; a failing source is logged and skipped. Events
are deduplicated on their source ID, so repeated runs update rather than
duplicate.

Example:
  eventscout scrape
  eventscout scrape --location "Austin, TX" --category music`,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringVar(&scrapeLocation, "location", "", "location to scrape (overrides config)")
	scrapeCmd.Flags().StringVar(&scrapeCategory, "category", "", "category to scrape")
}

func runScrape(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Event{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	service := eventsService.NewService(eventsService.NewRepository(db.DB))

	eventbrite := scrapers.NewEventbriteClient(scrapers.EventbriteConfig{
		APIKey:  cfg.Scrapers.Eventbrite.APIKey,
		BaseURL: cfg.Scrapers.Eventbrite.BaseURL,
		Timeout: cfg.Scrapers.Timeout,
	})

	manager := scrapers.NewManager(
		service,
		cfg.Scrapers.DefaultLocation,
		cfg.Scrapers.MaxEventsPerSource,
		eventbrite,
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	result, err := manager.Run(ctx, "", scrapeLocation, scrapeCategory)
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Scrape %s complete: %d events scraped, %d saved\n",
		result.JobID, result.Scraped, result.Saved)
	return nil
}
