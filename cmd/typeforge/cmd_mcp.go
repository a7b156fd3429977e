package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/typeforge/typeforge/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: `Run a Model Context Protocol server exposing the inference engine as
tools: typeforge_infer_types, typeforge_render_types,
typeforge_export_schema, and typeforge_search_types. Intended to be
spawned by an MCP client over stdio.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv, err := mcp.NewServer(&mcp.Deps{
		Config: cfg,
		Store:  mcp.NewResultStore(),
	})
	if err != nil {
		return err
	}

	slog.Info("starting typeforge MCP server on stdio")
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("server stopped")
	return nil
}
