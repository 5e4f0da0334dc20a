// Package companieshouse is the entry point of the Companies House client.
//
//	ch := companieshouse.New(apiKey)
//	c, err := ch.Companies.GetCompany(ctx, "00000006")
//
// A Client is bound to one API key. Clients with different keys can be used
// side by side; they share no mutable state.
package companieshouse

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tpgainz/companies-house/company"
	"github.com/tpgainz/companies-house/config"
	"github.com/tpgainz/companies-house/fetch"
	"github.com/tpgainz/companies-house/officer"
)

// KnownCompanyNumber is the company fetched by ValidateAPIKey.
const KnownCompanyNumber = "00000006"

type Client struct {
	Companies *company.Service
	Officers  *officer.Service
}

type options struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	log        *slog.Logger
}

type Option func(*options)

// WithBaseURL points the client at another API host, such as a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.log = logger }
}

// New creates a Client authenticating with apiKey. The key is sent as given;
// it is not checked until the first request.
func New(apiKey string, opts ...Option) *Client {
	o := options{
		baseURL: fetch.DefaultBaseURL,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	fetcher := fetch.New(
		fetch.WithHTTPClient(o.httpClient),
		fetch.WithUserAgent(o.userAgent),
		fetch.WithLogger(o.log),
	)

	return &Client{
		Companies: company.NewService(apiKey,
			company.WithBaseURL(o.baseURL),
			company.WithFetcher(fetcher),
			company.WithLogger(o.log),
		),
		Officers: officer.NewService(apiKey,
			officer.WithBaseURL(o.baseURL),
			officer.WithFetcher(fetcher),
			officer.WithLogger(o.log),
		),
	}
}

// NewFromConfig creates a Client from loaded configuration. A positive
// cfg.Timeout bounds every request.
func NewFromConfig(cfg config.CompaniesHouseConfig, logger *slog.Logger) *Client {
	return New(cfg.APIKey,
		WithBaseURL(cfg.BaseURL),
		WithHTTPClient(NewHTTPClient(cfg.Timeout)),
		WithUserAgent(cfg.UserAgent),
		WithLogger(logger),
	)
}

// NewHTTPClient returns an http.Client with pooled keep-alive connections.
// A zero timeout means no client-side limit.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			IdleConnTimeout:     30 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}
}

// ValidateAPIKey reports whether apiKey can read a known company. Any failure
// reads as false.
func ValidateAPIKey(ctx context.Context, apiKey string, opts ...Option) bool {
	return New(apiKey, opts...).Companies.Exists(ctx, KnownCompanyNumber)
}
