package recommend

import (
	"context"
	"fmt"
	"log"

	"github.com/eventscout/eventscout-api/internal/query"
	"github.com/tmc/langchaingo/llms"
)

// eventContextHeader separates the user's prompt from the injected
// event digest.
const eventContextHeader = "=== Relevant Meetup Events ==="

// EventSearcher finds events for a structured query.
type EventSearcher interface {
	SearchEvents(ctx context.Context, q query.SearchQuery) ([]query.EventRecord, error)
}

// Recommender augments prompts with event context and optionally asks
// a language model for recommendations.
type Recommender struct {
	extractor *query.Extractor
	formatter *query.Formatter
	searcher  EventSearcher
	model     llms.Model
}

// NewRecommender builds a Recommender. model may be nil, in which case
// Recommend degrades to returning the augmented prompt.
func NewRecommender(extractor *query.Extractor, formatter *query.Formatter, searcher EventSearcher, model llms.Model) *Recommender {
	return &Recommender{
		extractor: extractor,
		formatter: formatter,
		searcher:  searcher,
		model:     model,
	}
}

// Search runs the full query pipeline: extract, search, format.
// Upstream failures surface as an empty digest, never as an error.
func (r *Recommender) Search(ctx context.Context, text string, maxResults int) string {
	q := r.extractor.Extract(text)
	if maxResults > 0 {
		q.MaxResults = maxResults
	}

	events, err := r.searcher.SearchEvents(ctx, q)
	if err != nil {
		log.Printf("[ERROR] Event search failed: %v", err)
		events = nil
	}

	return r.formatter.Format(events)
}

// AugmentPrompt appends relevant event context to the user's prompt.
func (r *Recommender) AugmentPrompt(ctx context.Context, prompt string) string {
	q := r.extractor.Extract(prompt)

	events, err := r.searcher.SearchEvents(ctx, q)
	if err != nil {
		log.Printf("[ERROR] Event search failed while augmenting prompt: %v", err)
		events = nil
	}
	if len(events) == 0 {
		return fmt.Sprintf("%s\n\n[Note: No relevant Meetup events found.]", prompt)
	}

	digest := r.formatter.Format(events)
	return fmt.Sprintf("%s\n\n%s\n%s\n\nPlease provide recommendations based on the above events.",
		prompt, eventContextHeader, digest)
}

// Recommend asks the configured model for event recommendations. It is
// total: model failures degrade to returning the event context.
func (r *Recommender) Recommend(ctx context.Context, text, preferences string) string {
	prompt := text
	if preferences != "" {
		prompt += fmt.Sprintf("\n\nAdditional preferences: %s", preferences)
	}

	augmented := r.AugmentPrompt(ctx, prompt)

	if r.model == nil {
		return fmt.Sprintf("Model integration not configured. Here's the event data:\n\n%s", augmented)
	}

	out, err := llms.GenerateFromSinglePrompt(ctx, r.model, augmented, llms.WithTemperature(0.7))
	if err != nil {
		log.Printf("[ERROR] Model call failed: %v", err)
		return fmt.Sprintf("Model unavailable. Here's the event data instead:\n\n%s", augmented)
	}

	return out
}
