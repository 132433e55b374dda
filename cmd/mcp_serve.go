package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/eventscout/eventscout-api/internal/mcptools"
	"github.com/eventscout/eventscout-api/internal/query"
	"github.com/eventscout/eventscout-api/internal/services/meetup"
	"github.com/eventscout/eventscout-api/internal/services/recommend"
	"github.com/eventscout/eventscout-api/pkg/config"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes event
discovery tools over stdio transport. This allows MCP clients like Claude
Desktop to search and recommend events.

Available tools:
  - search_events: Natural-language event search returning a text digest
  - augment_prompt: Enhance a prompt with relevant event data
  - recommend_events: Model-assisted event recommendations
  - get_oauth_url: Meetup OAuth authorization URL

Example usage in Claude Desktop config:
  {
    "mcpServers": {
      "eventscout": {
        "command": "/path/to/eventscout",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	meetupClient := meetup.NewClient(meetup.Config{
		ClientID:    cfg.Meetup.ClientID,
		AccessToken: cfg.Meetup.AccessToken,
		RedirectURI: cfg.Meetup.RedirectURI,
		BaseURL:     cfg.Meetup.BaseURL,
		OAuthURL:    cfg.Meetup.OAuthURL,
		Timeout:     cfg.Meetup.Timeout,
	})

	model, err := recommend.NewAnthropicModel(cfg.Anthropic.APIKey, cfg.Anthropic.Model)
	if err != nil {
		return fmt.Errorf("failed to initialize model: %w", err)
	}

	recommender := recommend.NewRecommender(
		query.NewExtractor(nil, cfg.Query.MaxResults),
		query.NewFormatter(),
		meetupClient,
		model,
	)

	server := mcptools.CreateMCPServer(recommender, meetupClient, cfg)

	// Log to stderr (stdout is reserved for MCP protocol)
	log.SetOutput(os.Stderr)
	log.Printf("Starting EventScout MCP server (stdio transport)")
	log.Printf("Meetup token configured: %v", meetupClient.Status().HasAccessToken)
	log.Printf("Model configured: %v", model != nil)

	// Run server with stdio transport
	// This blocks until the transport is closed
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
