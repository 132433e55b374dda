package recommend

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
)

// NewAnthropicModel builds the completion model used for
// recommendations. Returns nil without error when no API key is
// configured so callers can degrade gracefully.
func NewAnthropicModel(apiKey, model string) (llms.Model, error) {
	if apiKey == "" {
		return nil, nil
	}

	m, err := anthropic.New(
		anthropic.WithToken(apiKey),
		anthropic.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create Anthropic model: %w", err)
	}
	return m, nil
}
