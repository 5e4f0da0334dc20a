// Package fetch issues authenticated GET requests against the Companies House
// API and decodes the JSON object it answers with.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/tpgainz/companies-house/registry"
)

const (
	// DefaultBaseURL is the public Companies House REST API host.
	DefaultBaseURL = "https://api.company-information.service.gov.uk"

	defaultUserAgent = "companies-house-go/1.0"
	maxErrorBody     = 4 << 10
)

// Client performs single GET requests. It never retries and adds no timeout
// of its own: deadlines come from the context or the supplied *http.Client.
type Client struct {
	httpClient *http.Client
	userAgent  string
	log        *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.log = logger.With("adapter", "fetch")
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		userAgent:  defaultUserAgent,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchJSON GETs rawURL with apiKey as the Authorization header and decodes
// the response body as a JSON object. Any status other than 200 yields an
// *HTTPError carrying the status code.
func (c *Client) FetchJSON(ctx context.Context, rawURL, apiKey string) (map[string]any, error) {
	requestID := uuid.New().String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: create request: %w", err)
	}

	req.Header.Set("Authorization", apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)

	c.log.DebugContext(ctx, "request", slog.String("url", rawURL), slog.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.DebugContext(ctx, "unexpected status",
			slog.String("url", rawURL),
			slog.String("request_id", requestID),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, URL: rawURL}
	}

	var data map[string]any
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("fetch: decode json: %w: %w", registry.ErrMalformedResponse, err)
	}
	if data == nil {
		return nil, fmt.Errorf("fetch: decode json: %w: empty object", registry.ErrMalformedResponse)
	}

	c.log.DebugContext(ctx, "response",
		slog.String("url", rawURL),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
	)

	return data, nil
}

// URL joins baseURL with path-escaped segments and appends the encoded query.
func URL(baseURL string, query url.Values, segments ...string) string {
	var b strings.Builder

	b.WriteString(strings.TrimRight(baseURL, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}

	if len(query) > 0 {
		b.WriteByte('?')
		b.WriteString(query.Encode())
	}

	return b.String()
}
