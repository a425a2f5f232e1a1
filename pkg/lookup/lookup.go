// Package lookup implements the two external lookups the assistant can
// request: current weather by city and stock quotes by ticker symbol.
//
// Both lookups convert every failure into a user-facing string instead of
// returning an error; the strings end up as tool outputs in the remote
// conversation, where an error value would be useless.
package lookup

import (
	"fmt"
	"io"
	"net/http"

	loggerpkg "github.com/sgorecki/utility-agent/pkg/logger"
)

// Config holds endpoints, credentials, and optional dependencies.
type Config struct {
	WeatherBaseURL string
	WeatherAPIKey  string
	QuoteBaseURL   string
	QuoteAPIKey    string

	HTTPClient *http.Client
	Verbose    bool
	Logger     loggerpkg.Logger
}

// Client performs the weather and stock lookups.
type Client struct {
	cfg Config
}

// New builds a lookup client. Missing optional dependencies fall back to
// http.DefaultClient and a no-op logger.
func New(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.Logger == nil {
		cfg.Logger = loggerpkg.NopLogger{}
	}
	return &Client{cfg: cfg}
}

func (c *Client) debugf(format string, args ...any) {
	loggerpkg.Debugf(c.cfg.Verbose, c.cfg.Logger, format, args...)
}

// get fetches rawURL and returns the response body. Non-2xx statuses are
// treated the same as transport failures.
func (c *Client) get(rawURL string) (string, error) {
	resp, err := c.cfg.HTTPClient.Get(rawURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	return string(body), nil
}
