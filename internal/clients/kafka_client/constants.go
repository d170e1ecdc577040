package kafka_client

import "time"

const (
	KAFKA_TOPIC_COMPARISON_REQUESTS = "comparison-requests" // product sets awaiting analysis
	KAFKA_TOPIC_COMPARISON_RESULTS  = "comparison-results"  // finished comparison results
)

const (
	MAX_RETRIES = 5
	RETRY_DELAY = 2 * time.Second
)
