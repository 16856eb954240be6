package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/personapath/api/internal/app"
	"github.com/personapath/api/internal/infra/config"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background(), cfg); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
