package mcptools

import (
	"context"

	"github.com/eventscout/eventscout-api/internal/services/meetup"
	"github.com/eventscout/eventscout-api/internal/services/recommend"
	"github.com/eventscout/eventscout-api/pkg/config"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewEventScoutMCPServer creates an in-memory MCP server exposing event
// discovery tools. Returns the server and a client transport for
// connecting to it.
func NewEventScoutMCPServer(rec *recommend.Recommender, meetupClient *meetup.Client, cfg *config.Config) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(rec, meetupClient, cfg)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered event discovery
// tools and resources. Use this to create a server that can be connected
// with any transport.
func CreateMCPServer(rec *recommend.Recommender, meetupClient *meetup.Client, cfg *config.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "eventscout",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_events",
		Description: "Search for Meetup events based on a natural language query",
	}, SearchEventsHandler(rec))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "augment_prompt",
		Description: "Enhance a prompt with relevant Meetup event data",
	}, AugmentPromptHandler(rec))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recommend_events",
		Description: "Get model-assisted event recommendations",
	}, RecommendEventsHandler(rec))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_oauth_url",
		Description: "Get the Meetup OAuth authorization URL",
	}, GetOAuthURLHandler(meetupClient))

	registerResources(server, meetupClient, cfg)

	return server
}
