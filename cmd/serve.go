package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/axsearch/internal/output"
	"github.com/mj1618/axsearch/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the search tools",
	Long:  `Start a Model Context Protocol (MCP) server that exposes search, find_range,
keys and tree as tools. AI agents can call tools directly without shell
overhead. Trees are cached per file and dropped when the file changes.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  axsearch serve
  axsearch serve --transport streamable-http --port 8080
  axsearch serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", cfg.Server.Transport, "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", cfg.Server.Port, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", cfg.Server.CacheTTLMs, "Tree cache TTL in milliseconds (0 to disable)")
	serveCmd.Flags().Bool("watch", cfg.Server.Watch, "Drop cached trees when their file changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	sc := cfg.Server
	if cmd.Flags().Changed("transport") {
		sc.Transport, _ = cmd.Flags().GetString("transport")
	}
	if cmd.Flags().Changed("port") {
		sc.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("cache-ttl") {
		sc.CacheTTLMs, _ = cmd.Flags().GetInt("cache-ttl")
	}
	if cmd.Flags().Changed("watch") {
		sc.Watch, _ = cmd.Flags().GetBool("watch")
	}
	if sc.CacheTTLMs < 0 {
		return fmt.Errorf("--cache-ttl must not be negative")
	}

	readOpts, err := readOptions()
	if err != nil {
		return err
	}
	provider, err := newProvider()
	if err != nil {
		return err
	}

	srv, err := server.New(provider, newManager(), server.Config{
		Transport: sc.Transport,
		Port:      sc.Port,
		CacheTTL:  time.Duration(sc.CacheTTLMs) * time.Millisecond,
		Watch:     sc.Watch,
		Format:    output.OutputFormat,
		Read:      readOpts,
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer srv.Close()

	return srv.Serve()
}
