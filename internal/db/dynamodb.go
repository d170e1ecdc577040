// Package db persists finished comparison results to DynamoDB.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tulna-ai/tulna/internal/clients"
	"github.com/tulna-ai/tulna/internal/models"
)

const (
	COMPARISONS_TABLE_NAME = "ComparisonResults"
	comparisonTTL          = 7 * 24 * time.Hour
)

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// StoreComparison writes one finished comparison with a TTL attribute.
func StoreComparison(ctx context.Context, comparison models.AnalyzedComparison) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	item, err := attributevalue.MarshalMap(comparison)
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to marshal comparison: %w", err)
	}
	item["ttl"] = &types.AttributeValueMemberN{
		Value: fmt.Sprintf("%d", time.Now().Add(comparisonTTL).Unix()),
	}

	var putErr error
	backoff := 500 * time.Millisecond
	for attempt := 0; attempt < 3; attempt++ {
		_, putErr = dbClient.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(COMPARISONS_TABLE_NAME),
			Item:      item,
		})
		if putErr == nil {
			slog.Info("[DynamoDB] Successfully stored comparison",
				slog.String("request_id", comparison.RequestID))
			return nil
		}

		slog.Warn("[DynamoDB] Failed to store comparison, retrying...",
			slog.Int("attempt", attempt+1),
			slog.String("error", putErr.Error()))
		time.Sleep(backoff)
		backoff *= 2
	}

	return fmt.Errorf("[DynamoDB] Failed to store comparison after retries: %w", putErr)
}

// GetRecentComparisons scans the results table; used by operational
// tooling, not by the request path.
func GetRecentComparisons(ctx context.Context) ([]models.AnalyzedComparison, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	var comparisons []models.AnalyzedComparison
	paginator := dynamodb.NewScanPaginator(dbClient, &dynamodb.ScanInput{
		TableName: aws.String(COMPARISONS_TABLE_NAME),
	})

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan for comparisons failed: %w", err)
		}

		var page []models.AnalyzedComparison
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			slog.Error("[DynamoDB] Unable to unmarshal comparison page",
				slog.String("error", err.Error()))
			return nil, err
		}
		comparisons = append(comparisons, page...)
	}

	slog.Info("[DynamoDB] Successfully retrieved comparisons",
		slog.Int("count", len(comparisons)))
	return comparisons, nil
}
