package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbmrq/spoons/internal/config"
	"github.com/dbmrq/spoons/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing spoons tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes window and
clipboard operations as tools. AI agents can call tools directly without
shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  spoons serve
  spoons serve --transport streamable-http --port 8080
  spoons serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 500, "Window list cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	cfgPath, err := config.Path()
	if err != nil {
		return err
	}
	appCfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	// The settings store is optional here; without it only the clipboard
	// tools are degraded.
	store, err := openSettings()
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	cfg := server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
	}

	srv, err := server.New(cfg, appCfg, store)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	return srv.Serve(cfg)
}
