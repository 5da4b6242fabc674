package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "pagecraft/internal/adapters/mcp"
	"pagecraft/internal/adapters/repository"
	"pagecraft/internal/application/session"
	"pagecraft/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("pagecraft-mcp: %v", err)
	}

	flag.StringVar(&cfg.PagesPath, "pages", cfg.PagesPath, "path to the pages directory")
	flag.StringVar(&cfg.Store, "store", cfg.Store, "page store (yaml or sqlite)")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	flag.Parse()

	repo, closeRepo, err := repository.Open(cfg)
	if err != nil {
		log.Fatalf("pagecraft-mcp: %v", err)
	}
	defer closeRepo()

	// stdout carries the protocol
	logger := cfg.Logger(os.Stderr)
	ws := mcpadapter.NewWorkspace(session.New(repo, session.WithLogger(logger)))

	mcpServer := server.NewMCPServer(
		"pagecraft-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, ws)
	mcpadapter.RegisterWriteTools(mcpServer, ws)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("pagecraft-mcp: %v", err)
	}
}
