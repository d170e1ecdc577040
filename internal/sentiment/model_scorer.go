package sentiment

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
)

const (
	defaultModelDir  = "./models"
	sentimentModelID = "cardiffnlp/twitter-xlm-roberta-base-sentiment"
	inferenceTimeout = 10 * time.Second
)

// ModelScorer runs a 3-class multilingual sentiment model through an ONNX
// runtime session and reports the positive-class probability. The pipeline
// holds a single shared inference handle, so calls are serialized with a
// mutex; callers must not assume it is otherwise thread-safe.
type ModelScorer struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
	mu       sync.Mutex
}

// NewModelScorer downloads the model if it is not present, then builds the
// session and classification pipeline.
func NewModelScorer() (*ModelScorer, error) {
	modelDir := os.Getenv("SENTIMENT_MODEL_DIR")
	if modelDir == "" {
		modelDir = defaultModelDir
	}

	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create model directory: %w", err)
	}

	modelPath := filepath.Join(modelDir, strings.ReplaceAll(sentimentModelID, "/", "_"))
	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		slog.Info("[ModelScorer] Model not found, downloading...",
			slog.String("model", sentimentModelID))
		downloaded, err := hugot.DownloadModel(sentimentModelID, modelDir, hugot.NewDownloadOptions())
		if err != nil {
			return nil, fmt.Errorf("failed to download sentiment model: %w", err)
		}
		modelPath = downloaded
		slog.Info("[ModelScorer] Model downloaded successfully", slog.String("path", modelPath))
	} else {
		slog.Info("[ModelScorer] Using existing model", slog.String("path", modelPath))
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Hugot session: %w", err)
	}

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentScoringPipeline",
	}
	pipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		session.Destroy()
		return nil, fmt.Errorf("failed to initialize sentiment pipeline: %w", err)
	}

	return &ModelScorer{session: session, pipeline: pipeline}, nil
}

// Score returns the positive-class probability for text. Inference is
// bounded by inferenceTimeout; a timeout surfaces as an error so the
// failover wrapper can degrade instead of stalling the pipeline.
func (m *ModelScorer) Score(text string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	type inference struct {
		score float64
		err   error
	}
	done := make(chan inference, 1)

	go func() {
		output, err := m.pipeline.RunPipeline([]string{text})
		if err != nil {
			done <- inference{err: fmt.Errorf("inference failed: %w", err)}
			return
		}
		score, err := positiveProbability(output)
		done <- inference{score: score, err: err}
	}()

	select {
	case result := <-done:
		return result.score, result.err
	case <-time.After(inferenceTimeout):
		return 0, fmt.Errorf("inference timed out after %s", inferenceTimeout)
	}
}

// Close releases the ONNX runtime session.
func (m *ModelScorer) Close() {
	if m.session != nil {
		m.session.Destroy()
	}
}

func positiveProbability(output *pipelines.TextClassificationOutput) (float64, error) {
	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return 0, errors.New("empty model output")
	}

	for _, class := range output.ClassificationOutputs[0] {
		switch strings.ToLower(class.Label) {
		case "positive", "label_2":
			return float64(class.Score), nil
		}
	}
	return 0, errors.New("no positive class in model output")
}
