// Package verdict turns a computed comparison into a short human-readable
// verdict paragraph via OpenAI. Entirely optional: no API key means no
// verdict, never a failed comparison.
package verdict

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tulna-ai/tulna/internal/clients"
	"github.com/tulna-ai/tulna/internal/models"
)

const (
	openAIModel       = openai.GPT4oMini
	verdictRetries    = 3
	verdictRetryDelay = 2 * time.Second
	verdictSystemRole = "You are a concise product review analyst. Write a 2-3 sentence verdict comparing the products based only on the numbers provided. Do not invent facts."
	verdictMaxTokens  = 200
)

// Generate produces a verdict paragraph from the computed scores. The
// text never influences scoring or winner selection.
func Generate(ctx context.Context, result models.ComparisonResult) (string, error) {
	client := clients.GetOpenAIClient()
	if client == nil {
		return "", nil
	}

	prompt := buildPrompt(result)

	var resp openai.ChatCompletionResponse
	var err error
	for attempt := 0; attempt < verdictRetries; attempt++ {
		resp, err = client.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:     openAIModel,
			MaxTokens: verdictMaxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: verdictSystemRole},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err == nil {
			break
		}
		slog.Warn("[Verdict] OpenAI request failed, retrying...",
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))
		time.Sleep(verdictRetryDelay)
	}
	if err != nil {
		return "", fmt.Errorf("verdict generation failed after retries: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("verdict generation returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(result models.ComparisonResult) string {
	var b strings.Builder
	b.WriteString("Product comparison data:\n")
	for _, overall := range result.Comparison.Overall {
		fmt.Fprintf(&b, "- %s: overall %.1f/10 (%s), strengths: %s, weaknesses: %s\n",
			overall.Name, overall.Score, overall.Sentiment,
			strings.Join(result.Comparison.Strengths[overall.Name], ", "),
			strings.Join(result.Comparison.Weaknesses[overall.Name], ", "))
	}
	fmt.Fprintf(&b, "Winner by overall score: %s\n", result.Comparison.Winner)
	return b.String()
}
