package models

import "time"

// ComparisonRequest is the message consumed from the comparison-requests topic.
type ComparisonRequest struct {
	RequestID string   `json:"request_id"`
	Products  []string `json:"products"`
}

// AnalyzedComparison is the finished result published to the results topic
// and persisted to DynamoDB.
type AnalyzedComparison struct {
	ComparisonRequest
	Result    ComparisonResult `json:"result"`
	Timestamp time.Time        `json:"timestamp"`
}
