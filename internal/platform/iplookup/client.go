// Package iplookup resolves the submitter's public address through an
// external JSON endpoint. Resolution is strictly best-effort: every failure
// mode degrades to the sentinel "unknown" so a dead lookup service can
// never block a submission.
package iplookup

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// UnknownIP is substituted whenever the lookup cannot produce an address.
const UnknownIP = "unknown"

type Client struct {
	url    string
	http   *http.Client
	logger *slog.Logger
}

func NewClient(url string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		url:    url,
		http:   &http.Client{Timeout: 5 * time.Second},
		logger: logger,
	}
}

func (c *Client) Resolve(ctx context.Context) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return UnknownIP
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("ip lookup failed", "err", err)
		return UnknownIP
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("ip lookup returned non-ok status", "status", resp.StatusCode)
		return UnknownIP
	}

	var body struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.IP == "" {
		c.logger.Warn("ip lookup returned unusable body", "err", err)
		return UnknownIP
	}
	return body.IP
}
