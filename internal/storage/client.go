// Package storage provides the object storage client used for cover images.
//
// Objects are written to an external HTTP object store keyed by path. The
// client is deliberately thin: one Put call per upload, no retries. Missing
// configuration surfaces as a domain internal error at call time so the
// server can start without storage credentials in development.
package storage

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/bookpulse/bookpulse-server/internal/errors"
)

// Client uploads objects to the configured object store.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewClient creates a storage client. An empty baseURL or apiKey leaves the
// client unconfigured; Put then fails with an internal error.
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

// putResponse is the object store's reply to an upload.
type putResponse struct {
	URL string `json:"url"`
}

// Put uploads data under key and returns the public URL of the object.
func (c *Client) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if !c.Configured() {
		return "", errors.Internal("object storage is not configured")
	}

	uploadURL := c.baseURL + "/objects/" + url.PathEscape(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "create upload request")
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "upload object")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", errors.Internalf("upload failed: status %d", resp.StatusCode)
	}

	var out putResponse
	if err := json.UnmarshalRead(resp.Body, &out); err != nil {
		return "", errors.Wrap(err, errors.CodeInternal, "parse upload response")
	}
	if out.URL == "" {
		// Stores that return no body serve objects from the upload path.
		out.URL = uploadURL
	}

	if c.logger != nil {
		c.logger.Debug("object uploaded",
			"key", key,
			"bytes", len(data),
			"content_type", contentType,
		)
	}

	return out.URL, nil
}
