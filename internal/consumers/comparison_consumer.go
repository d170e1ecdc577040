// Package consumers hosts the Kafka-facing workers.
package consumers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/tulna-ai/tulna/internal/clients/kafka_client"
	"github.com/tulna-ai/tulna/internal/comparison"
	"github.com/tulna-ai/tulna/internal/db"
	"github.com/tulna-ai/tulna/internal/ingest"
	"github.com/tulna-ai/tulna/internal/models"
)

// ComparisonConsumer consumes comparison requests, fetches reviews,
// runs the aggregation and publishes plus persists the finished result.
type ComparisonConsumer struct {
	Aggregator *comparison.Aggregator
	Source     ingest.ReviewSource
}

func NewComparisonConsumer(aggregator *comparison.Aggregator, source ingest.ReviewSource) *ComparisonConsumer {
	return &ComparisonConsumer{Aggregator: aggregator, Source: source}
}

func (c *ComparisonConsumer) Start(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[ComparisonConsumer] Listening for comparison requests")

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[ComparisonConsumer] Consumer shutting down...")
			return
		default:
			msg, err := iterator.Next()
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				slog.Error("[ComparisonConsumer] Failed to read message",
					slog.String("error", err.Error()))
				continue
			}

			var request models.ComparisonRequest
			if err := json.Unmarshal(msg.Value, &request); err != nil {
				slog.Error("[ComparisonConsumer] Failed to deserialize request",
					slog.String("error", err.Error()))
				c.commit(committer, msg)
				continue
			}

			c.process(ctx, request)
			c.commit(committer, msg)
		}
	}
}

func (c *ComparisonConsumer) process(ctx context.Context, request models.ComparisonRequest) {
	reviews := make(map[string][]models.Review, len(request.Products))
	for _, product := range request.Products {
		fetched, err := c.Source.FetchReviews(ctx, product)
		if err != nil {
			slog.Error("[ComparisonConsumer] Failed to fetch reviews",
				slog.String("request_id", request.RequestID),
				slog.String("product", product),
				slog.String("error", err.Error()))
			return
		}
		reviews[product] = fetched
	}

	result, err := c.Aggregator.Compare(request.Products, reviews)
	if err != nil {
		// Validation failures are terminal for the request, not for the
		// worker; bad requests are dropped after logging.
		slog.Error("[ComparisonConsumer] Comparison failed",
			slog.String("request_id", request.RequestID),
			slog.String("error", err.Error()))
		return
	}

	analyzed := models.AnalyzedComparison{
		ComparisonRequest: request,
		Result:            result,
		Timestamp:         time.Now().UTC(),
	}

	for i := 0; i < 3; i++ {
		err = kafka_client.PublishToKafka(kafka_client.KAFKA_TOPIC_COMPARISON_RESULTS, request.RequestID, analyzed)
		if err == nil {
			break
		}
		slog.Warn("[ComparisonConsumer] Result publishing failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		time.Sleep(2 * time.Second)
	}

	if err := db.StoreComparison(ctx, analyzed); err != nil {
		slog.Error("[ComparisonConsumer] Failed to persist comparison",
			slog.String("request_id", request.RequestID),
			slog.String("error", err.Error()))
	}
}

func (c *ComparisonConsumer) commit(committer *kafka_client.KafkaCommitHandler, msg *kafka.Message) {
	if err := committer.Commit(msg); err != nil {
		slog.Warn("[ComparisonConsumer] Failed to commit offset",
			slog.String("error", err.Error()))
	}
}
