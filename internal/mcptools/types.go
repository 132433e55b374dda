package mcptools

// SearchEventsInput is the input schema for the search_events MCP tool.
type SearchEventsInput struct {
	Query      string `json:"query" jsonschema-description:"Natural language event search query"`
	MaxResults int    `json:"max_results,omitempty" jsonschema-description:"Maximum number of events to return"`
}

// SearchEventsOutput is the output schema for the search_events MCP tool.
type SearchEventsOutput struct {
	Digest string `json:"digest"`
}

// AugmentPromptInput is the input schema for the augment_prompt MCP tool.
type AugmentPromptInput struct {
	Prompt string `json:"prompt" jsonschema-description:"User prompt to augment with event context"`
}

// AugmentPromptOutput is the output schema for the augment_prompt MCP tool.
type AugmentPromptOutput struct {
	AugmentedPrompt string `json:"augmented_prompt"`
}

// RecommendEventsInput is the input schema for the recommend_events MCP tool.
type RecommendEventsInput struct {
	Query       string `json:"query" jsonschema-description:"Query to base recommendations on"`
	Preferences string `json:"preferences,omitempty" jsonschema-description:"Additional preferences to take into account"`
}

// RecommendEventsOutput is the output schema for the recommend_events MCP tool.
type RecommendEventsOutput struct {
	Recommendation string `json:"recommendation"`
}

// GetOAuthURLInput is the input schema for the get_oauth_url MCP tool.
type GetOAuthURLInput struct{}

// GetOAuthURLOutput is the output schema for the get_oauth_url MCP tool.
type GetOAuthURLOutput struct {
	URL          string `json:"url"`
	Instructions string `json:"instructions"`
}

// configResource is the JSON body of the eventscout://config resource.
// Credentials are reported as set/not-set, never echoed.
type configResource struct {
	MeetupClientID     string `json:"meetup_client_id"`
	MeetupClientSecret string `json:"meetup_client_secret"`
	AnthropicAPIKey    string `json:"anthropic_api_key"`
	MaxEventsPerQuery  int    `json:"max_events_per_query"`
	DefaultLocation    string `json:"default_location"`
}
