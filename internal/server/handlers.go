package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tulna-ai/tulna/internal/clients"
	"github.com/tulna-ai/tulna/internal/comparison"
	"github.com/tulna-ai/tulna/internal/models"
	"github.com/tulna-ai/tulna/internal/verdict"
)

type compareRequest struct {
	Products []string `json:"products"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	ctx := r.Context()

	if s.cache != nil {
		key := clients.ComparisonCacheKey(req.Products)
		if payload, found := s.cache.GetCachedComparison(ctx, key); found {
			slog.Info("[Server] Serving comparison from cache")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(payload)
			return
		}
	}

	reviews := make(map[string][]models.Review, len(req.Products))
	for _, product := range req.Products {
		fetched, err := s.source.FetchReviews(ctx, product)
		if err != nil {
			slog.Error("[Server] Failed to fetch reviews",
				slog.String("product", product),
				slog.String("error", err.Error()))
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: "failed to fetch reviews for " + product})
			return
		}
		reviews[product] = fetched
	}

	result, err := s.aggregator.Compare(req.Products, reviews)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, comparison.ErrInsufficientProducts) || errors.Is(err, comparison.ErrEmptyReviewSet) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	if text, err := verdict.Generate(ctx, result); err != nil {
		slog.Warn("[Server] Verdict generation failed",
			slog.String("error", err.Error()))
	} else {
		result.Comparison.Verdict = text
	}

	payload, err := json.Marshal(result)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to serialize result"})
		return
	}

	if s.cache != nil {
		key := clients.ComparisonCacheKey(req.Products)
		if err := s.cache.CacheComparison(ctx, key, payload); err != nil {
			slog.Warn("[Server] Failed to cache comparison",
				slog.String("error", err.Error()))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "1.0.0",
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("[Server] Failed to encode response",
			slog.String("error", err.Error()))
	}
}
