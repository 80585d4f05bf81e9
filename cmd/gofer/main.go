// Package main wires up gofer: config, session store, Gemini decision
// capability, the tool registry, and the terminal UI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"github.com/jmallari/gofer/internal/config"
	"github.com/jmallari/gofer/internal/orchestrator"
	"github.com/jmallari/gofer/internal/provider/gemini"
	"github.com/jmallari/gofer/internal/store"
	"github.com/jmallari/gofer/internal/tool"
	"github.com/jmallari/gofer/internal/ui"
	uiservices "github.com/jmallari/gofer/internal/ui/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// API keys live in the environment; a .env next to the binary is a
	// convenience, not a requirement.
	_ = godotenv.Load()

	cfg, err := config.NewLoader().Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	dbPath := cfg.Store.DatabasePath
	if dbPath == "" {
		dbPath, err = config.DefaultDatabasePath()
		if err != nil {
			return fmt.Errorf("failed to resolve database path: %w", err)
		}
	}

	sessions, err := store.OpenSQLite(dbPath, logger)
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer sessions.Close()

	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}

	registry := newRegistry(cfg)

	decision := orchestrator.NewDecisionStep(provider, registry.Definitions(), float32(cfg.Agent.Temperature), logger)
	executor := orchestrator.NewToolExecutionStep(
		registry,
		time.Duration(cfg.Tools.ToolTimeoutSeconds)*time.Second,
		logger,
	)
	orch := orchestrator.New(decision, executor, sessions, cfg.Agent.MaxHops, logger)

	return ui.New(orch, sessions, uiservices.NewGlamourRenderer()).Run()
}

func newProvider(cfg *config.Config) (*gemini.Provider, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return gemini.New(gemini.NewSDKClient(client), cfg.Agent.Model), nil
}

func newRegistry(cfg *config.Config) *tool.Registry {
	client := &http.Client{
		Timeout: time.Duration(cfg.Tools.HTTPTimeoutSeconds) * time.Second,
	}

	return tool.NewRegistry(
		tool.NewWebSearch(client, ""),
		tool.NewCalculator(),
		tool.NewGetStockPrice(client, os.Getenv("ALPHA_VANTAGE_API_KEY"), ""),
		tool.NewFetchWeather(client, os.Getenv("WEATHER_API_KEY"), ""),
		tool.NewFetchNews(client, os.Getenv("NEWS_API_KEY"), ""),
		tool.NewConvertCurrency(client, os.Getenv("EXCHANGE_API_KEY"), ""),
		tool.NewGetJoke(client, ""),
		tool.NewGetNASAAPOD(client, os.Getenv("NASA_API_KEY"), ""),
		tool.NewGetIPLocation(client, ""),
	)
}

// newLogger logs to a file under the data directory: the UI owns the
// terminal, so nothing may write to stderr while it runs.
func newLogger() (*slog.Logger, func(), error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	dir := filepath.Join(homeDir, ".local", "share", "gofer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "gofer.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return logger, func() { f.Close() }, nil
}
