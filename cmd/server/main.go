package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tulna-ai/tulna/config"
	"github.com/tulna-ai/tulna/internal/analyzer"
	"github.com/tulna-ai/tulna/internal/clients"
	"github.com/tulna-ai/tulna/internal/comparison"
	"github.com/tulna-ai/tulna/internal/ingest"
	"github.com/tulna-ai/tulna/internal/logging"
	"github.com/tulna-ai/tulna/internal/sentiment"
	"github.com/tulna-ai/tulna/internal/server"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scorer := sentiment.NewScorer()
	defer scorer.Close()

	aggregator := comparison.New(analyzer.New(scorer))
	source := ingest.FromEnv()

	var cache *clients.ValkeyClient
	if os.Getenv("CACHE_ENABLED") == "true" {
		cache = clients.InitValkey()
		defer clients.CloseValkey()
	}

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":5000"
	}

	if err := server.New(addr, aggregator, source, cache).Start(ctx); err != nil {
		slog.Error("[Main] Server exited with error",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}
