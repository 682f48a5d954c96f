// Package rankings provides a typed client for the external book ranking
// service, which exposes mention-count rankings computed from article feeds.
package rankings

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Client provides access to the ranking service's REST surface.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	logger      *slog.Logger
}

// NewClient creates a rankings client.
// Outbound calls are rate limited to stay under the service's quota.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// 10 requests per second, burst of 5
		rateLimiter: rate.NewLimiter(rate.Limit(10), 5),
		baseURL:     baseURL,
		logger:      logger,
	}
}

// wait blocks until the rate limiter allows a request.
func (c *Client) wait(ctx context.Context) error {
	return c.rateLimiter.Wait(ctx)
}

// getJSON performs a GET and decodes the JSON response into dest.
func (c *Client) getJSON(ctx context.Context, requestURL string, dest any) error {
	if err := c.wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("fetching rankings data", "url", requestURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rankings request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rankings request failed: status %d", resp.StatusCode)
	}

	if err := json.UnmarshalRead(resp.Body, dest); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

// GetBookDetail fetches the full record for a ranked book, including its
// article mentions.
func (c *Client) GetBookDetail(ctx context.Context, bookID string) (*BookDetail, error) {
	var detail BookDetail
	requestURL := c.baseURL + "/books/" + url.PathEscape(bookID)

	if err := c.getJSON(ctx, requestURL, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetCategoriesWithBooks fetches category cards, each carrying its
// top-ranked books. maxCategories and limit fall back to server defaults
// when non-positive.
func (c *Client) GetCategoriesWithBooks(ctx context.Context, maxCategories, limit int) ([]CategoryWithBooks, error) {
	params := url.Values{}
	if maxCategories > 0 {
		params.Set("max_categories", strconv.Itoa(maxCategories))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	requestURL := c.baseURL + "/categories/with-books"
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var out categoriesResponse
	if err := c.getJSON(ctx, requestURL, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

// RankingsParams filters a rankings query.
type RankingsParams struct {
	Range    RankRange
	Limit    int
	Offset   int
	Category string
}

// GetRankings fetches a page of the mention-count ranking.
func (c *Client) GetRankings(ctx context.Context, p RankingsParams) ([]RankedBookDetail, int, error) {
	if p.Range != "" && !p.Range.Valid() {
		return nil, 0, fmt.Errorf("invalid range %q", p.Range)
	}

	params := url.Values{}
	if p.Range != "" {
		params.Set("range", string(p.Range))
	}
	if p.Limit > 0 {
		params.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		params.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Category != "" {
		params.Set("category", p.Category)
	}

	requestURL := c.baseURL + "/rankings"
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var out rankingsResponse
	if err := c.getJSON(ctx, requestURL, &out); err != nil {
		return nil, 0, err
	}
	return out.Books, out.Total, nil
}
