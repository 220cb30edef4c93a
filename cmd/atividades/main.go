// Command atividades serves the activity document pipeline: upload
// extraction, section segmentation, HTML generation, and section
// editing.
//
// Usage:
//
//	atividades -config atividades.yaml     # run with config file
//	atividades -listen :8085               # run with defaults
//	atividades -mcp stdio                  # serve MCP tools on stdin/stdout
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	_ "modernc.org/sqlite"

	"github.com/edulab/atividades/dbopen"
	"github.com/edulab/atividades/runindex"
)

func main() {
	configPath := flag.String("config", "", "path to atividades.yaml config file")
	listen := flag.String("listen", "", "HTTP listen address (overrides config)")
	mcpTransport := flag.String("mcp", "", "MCP transport: stdio (HTTP server is skipped)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *configPath, *listen, *mcpTransport); err != nil {
		logger.Error("atividades: fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, configPath, listen, mcpTransport string) error {
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.Listen = listen
	}

	db, err := dbopen.Open(cfg.DBPath, dbopen.WithMkdirAll())
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	index := runindex.New(db)
	if err := index.Init(ctx); err != nil {
		return err
	}

	svc := newService(cfg, index, logger)

	if mcpTransport == "stdio" {
		srv := mcp.NewServer(&mcp.Implementation{
			Name:    "atividades",
			Version: "1.0.0",
		}, nil)
		svc.registerMCP(srv)
		logger.Info("atividades: MCP stdio serving")
		return srv.Run(ctx, &mcp.StdioTransport{})
	}

	httpSrv := &http.Server{
		Addr:         cfg.Listen,
		Handler:      svc.router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("atividades: listening", "addr", cfg.Listen, "generated_dir", cfg.GeneratedDir)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("atividades: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func resolveConfig(configPath string) (*Config, error) {
	var cfg *Config
	if configPath != "" {
		loaded, err := LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = &Config{}
	}
	cfg.defaults()
	return cfg, nil
}
