package cmd

import (
	"fmt"
	"os"

	"github.com/eventscout/eventscout-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "eventscout",
	Short: "EventScout API server",
	Long: `EventScout - an event discovery API with map support

This API aggregates local events from external sources, stores them in a
single searchable table, and serves them to a map frontend. It also speaks
the Model Context Protocol so assistants can search and recommend events.

Features:
  • Event search with category, date and location filters
  • Concurrent scraping of external event sources
  • Natural-language query extraction with Meetup integration
  • Map configuration and geocoding endpoints
  • MCP server over stdio for assistant integrations`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it.
// Version and help don't touch config, so they skip it.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
