package mcptools

import (
	"context"
	"fmt"

	"github.com/eventscout/eventscout-api/internal/services/meetup"
	"github.com/eventscout/eventscout-api/internal/services/recommend"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const oauthInstructions = "1. Visit the URL above\n" +
	"2. Log in to your Meetup account\n" +
	"3. Authorize the application\n" +
	"4. Copy the authorization code\n" +
	"5. Exchange the code for an access token"

// SearchEventsHandler returns the handler function for the search_events MCP tool.
func SearchEventsHandler(rec *recommend.Recommender) func(ctx context.Context, req *mcp.CallToolRequest, input SearchEventsInput) (*mcp.CallToolResult, SearchEventsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchEventsInput) (*mcp.CallToolResult, SearchEventsOutput, error) {
		if input.Query == "" {
			return nil, SearchEventsOutput{}, fmt.Errorf("query is required")
		}

		digest := rec.Search(ctx, input.Query, input.MaxResults)
		return nil, SearchEventsOutput{Digest: digest}, nil
	}
}

// AugmentPromptHandler returns the handler function for the augment_prompt MCP tool.
func AugmentPromptHandler(rec *recommend.Recommender) func(ctx context.Context, req *mcp.CallToolRequest, input AugmentPromptInput) (*mcp.CallToolResult, AugmentPromptOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AugmentPromptInput) (*mcp.CallToolResult, AugmentPromptOutput, error) {
		if input.Prompt == "" {
			return nil, AugmentPromptOutput{}, fmt.Errorf("prompt is required")
		}

		augmented := rec.AugmentPrompt(ctx, input.Prompt)
		return nil, AugmentPromptOutput{AugmentedPrompt: augmented}, nil
	}
}

// RecommendEventsHandler returns the handler function for the recommend_events MCP tool.
func RecommendEventsHandler(rec *recommend.Recommender) func(ctx context.Context, req *mcp.CallToolRequest, input RecommendEventsInput) (*mcp.CallToolResult, RecommendEventsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RecommendEventsInput) (*mcp.CallToolResult, RecommendEventsOutput, error) {
		if input.Query == "" {
			return nil, RecommendEventsOutput{}, fmt.Errorf("query is required")
		}

		out := rec.Recommend(ctx, input.Query, input.Preferences)
		return nil, RecommendEventsOutput{Recommendation: out}, nil
	}
}

// GetOAuthURLHandler returns the handler function for the get_oauth_url MCP tool.
func GetOAuthURLHandler(client *meetup.Client) func(ctx context.Context, req *mcp.CallToolRequest, input GetOAuthURLInput) (*mcp.CallToolResult, GetOAuthURLOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetOAuthURLInput) (*mcp.CallToolResult, GetOAuthURLOutput, error) {
		if !client.Status().OAuthURLAvailable {
			return nil, GetOAuthURLOutput{}, fmt.Errorf("meetup client_id is not configured")
		}

		return nil, GetOAuthURLOutput{
			URL:          client.AuthURL(),
			Instructions: oauthInstructions,
		}, nil
	}
}
