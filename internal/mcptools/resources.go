package mcptools

import (
	"context"
	"encoding/json"

	"github.com/eventscout/eventscout-api/internal/services/meetup"
	"github.com/eventscout/eventscout-api/pkg/config"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	configResourceURI     = "eventscout://config"
	authStatusResourceURI = "eventscout://auth/status"
)

func registerResources(server *mcp.Server, meetupClient *meetup.Client, cfg *config.Config) {
	server.AddResource(&mcp.Resource{
		URI:         configResourceURI,
		Name:        "Server Configuration",
		Description: "Current server configuration and status",
		MIMEType:    "application/json",
	}, configResourceHandler(cfg))

	server.AddResource(&mcp.Resource{
		URI:         authStatusResourceURI,
		Name:        "Authentication Status",
		Description: "Current authentication status with Meetup.com",
		MIMEType:    "application/json",
	}, authStatusResourceHandler(meetupClient))
}

func configResourceHandler(cfg *config.Config) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		body, err := json.MarshalIndent(configResource{
			MeetupClientID:     redactID(cfg.Meetup.ClientID),
			MeetupClientSecret: setOrNot(cfg.Meetup.ClientSecret),
			AnthropicAPIKey:    setOrNot(cfg.Anthropic.APIKey),
			MaxEventsPerQuery:  cfg.Query.MaxResults,
			DefaultLocation:    cfg.Scrapers.DefaultLocation,
		}, "", "  ")
		if err != nil {
			return nil, err
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      configResourceURI,
				MIMEType: "application/json",
				Text:     string(body),
			}},
		}, nil
	}
}

func authStatusResourceHandler(client *meetup.Client) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		body, err := json.MarshalIndent(client.Status(), "", "  ")
		if err != nil {
			return nil, err
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      authStatusResourceURI,
				MIMEType: "application/json",
				Text:     string(body),
			}},
		}, nil
	}
}

// redactID shows only a prefix of an identifier, enough to recognize it.
func redactID(id string) string {
	if id == "" {
		return "Not set"
	}
	if len(id) > 8 {
		return id[:8] + "..."
	}
	return id
}

func setOrNot(secret string) string {
	if secret == "" {
		return "Not set"
	}
	return "Set"
}
