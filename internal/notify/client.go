// Package notify delivers short messages to the site owner through an
// external push channel.
package notify

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/bookpulse/bookpulse-server/internal/errors"
)

// Delivery channel limits. Enforced before sending so oversized messages
// never leave the process.
const (
	MaxTitleLength   = 1200
	MaxContentLength = 20000
)

// Client sends owner notifications.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewClient creates a notification client. An empty baseURL or apiKey leaves
// the client unconfigured; Send then fails with an internal error.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		logger:  logger,
	}
}

// Configured reports whether the client has an endpoint and credentials.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

type sendRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Send delivers a message to the owner. Returns a bad-request error when the
// message exceeds the channel limits, an internal error when the client is
// unconfigured, and the transport error when delivery fails. Callers decide
// whether a delivery failure is fatal.
func (c *Client) Send(ctx context.Context, title, content string) error {
	if len(title) > MaxTitleLength {
		return errors.BadRequestf("title exceeds %d characters", MaxTitleLength)
	}
	if len(content) > MaxContentLength {
		return errors.BadRequestf("content exceeds %d characters", MaxContentLength)
	}
	if !c.Configured() {
		return errors.Internal("notification channel is not configured")
	}

	body, err := json.Marshal(sendRequest{Title: title, Content: content})
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "encode notification")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "create notification request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "send notification")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusNoContent {
		return errors.Internalf("notification delivery failed: status %d", resp.StatusCode)
	}

	if c.logger != nil {
		c.logger.Debug("owner notification sent", "title_length", len(title))
	}

	return nil
}
