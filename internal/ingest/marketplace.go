package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/tulna-ai/tulna/internal/models"
)

const (
	marketplaceTimeout = 10 * time.Second
	marketplaceUA      = "tulna-client/1.0 (+https://github.com/tulna-ai/tulna)"
	defaultMaxPages    = 5
	pageDelay          = 2 * time.Second
)

// MarketplaceSource scrapes paginated marketplace review pages. Polite by
// construction: bounded timeout, identifying user agent, fixed delay
// between pages.
type MarketplaceSource struct {
	client   *http.Client
	baseURL  string
	maxPages int
}

func NewMarketplaceSource() *MarketplaceSource {
	maxPages := defaultMaxPages
	if v, err := strconv.Atoi(os.Getenv("MARKETPLACE_MAX_PAGES")); err == nil && v > 0 {
		maxPages = v
	}
	return &MarketplaceSource{
		client:   &http.Client{Timeout: marketplaceTimeout},
		baseURL:  os.Getenv("MARKETPLACE_REVIEWS_URL"),
		maxPages: maxPages,
	}
}

// FetchReviews walks the product's review pages until they run out or
// maxPages is reached.
func (s *MarketplaceSource) FetchReviews(ctx context.Context, product string) ([]models.Review, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("MARKETPLACE_REVIEWS_URL is not configured")
	}

	var reviews []models.Review
	for page := 1; page <= s.maxPages; page++ {
		pageReviews, err := s.fetchPage(ctx, product, page)
		if err != nil {
			slog.Warn("[MarketplaceSource] Failed to fetch review page",
				slog.String("product", product),
				slog.Int("page", page),
				slog.String("error", err.Error()))
			break
		}
		if len(pageReviews) == 0 {
			break
		}
		reviews = append(reviews, pageReviews...)

		select {
		case <-ctx.Done():
			return reviews, ctx.Err()
		case <-time.After(pageDelay):
		}
	}

	slog.Info("[MarketplaceSource] Scraped reviews",
		slog.String("product", product),
		slog.Int("count", len(reviews)))
	return reviews, nil
}

func (s *MarketplaceSource) fetchPage(ctx context.Context, product string, page int) ([]models.Review, error) {
	pageURL := fmt.Sprintf("%s?q=%s&page=%d", s.baseURL, url.QueryEscape(product), page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", marketplaceUA)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	doc.Find("div._1AtVbE").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Find("div.t-ZTKy").Text())
		if text == "" {
			text = strings.TrimSpace(sel.Find("div._6K-7Co").Text())
		}
		if text == "" {
			return
		}

		rating, _ := strconv.Atoi(strings.TrimSpace(sel.Find("div._3LWZlK").Text()))
		reviews = append(reviews, models.Review{
			Text:   text,
			Rating: rating,
			Source: "marketplace",
		})
	})

	return reviews, nil
}
