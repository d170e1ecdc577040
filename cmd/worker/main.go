package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tulna-ai/tulna/config"
	"github.com/tulna-ai/tulna/internal/analyzer"
	"github.com/tulna-ai/tulna/internal/clients/kafka_client"
	"github.com/tulna-ai/tulna/internal/comparison"
	"github.com/tulna-ai/tulna/internal/consumers"
	"github.com/tulna-ai/tulna/internal/db"
	"github.com/tulna-ai/tulna/internal/ingest"
	"github.com/tulna-ai/tulna/internal/logging"
	"github.com/tulna-ai/tulna/internal/sentiment"
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

	cfg := kafka_client.GetKafkaConfig()

	for {
		err := kafka_client.InitKafkaProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseKafkaProducer()

	db.InitDynamoDB()

	scorer := sentiment.NewScorer()
	defer scorer.Close()

	worker := consumers.NewComparisonConsumer(
		comparison.New(analyzer.New(scorer)),
		ingest.FromEnv(),
	)

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_COMPARISON_REQUESTS, worker.Start)

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
