package clients

import (
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const openAIRequestTimeout = 60 * time.Second

var (
	openAIClientInstance *OpenAIClient
	openAIOnce           sync.Once
)

type OpenAIClient struct {
	Client *openai.Client
}

// GetOpenAIClient returns the shared client, or nil when no API key is
// configured; verdict generation is optional and its absence never fails
// a comparison.
func GetOpenAIClient() *OpenAIClient {
	openAIOnce.Do(func() {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			slog.Info("[OpenAIClient] No OPENAI_API_KEY set, verdict generation disabled")
			return
		}

		config := openai.DefaultConfig(apiKey)
		config.HTTPClient = &http.Client{Timeout: openAIRequestTimeout}

		openAIClientInstance = &OpenAIClient{
			Client: openai.NewClientWithConfig(config),
		}
		slog.Info("[OpenAIClient] OpenAI client initialized",
			slog.Duration("timeout", openAIRequestTimeout))
	})
	return openAIClientInstance
}
