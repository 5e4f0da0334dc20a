// Package company reads company records from the Companies House API:
// profiles, registered office addresses, charges and registers.
package company

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tpgainz/companies-house/fetch"
	"github.com/tpgainz/companies-house/mapper"
	"github.com/tpgainz/companies-house/registry"
)

// Fetcher is the transport the service reads through.
type Fetcher interface {
	FetchJSON(ctx context.Context, rawURL, apiKey string) (map[string]any, error)
}

type Service struct {
	apiKey  string
	baseURL string
	fetcher Fetcher
	log     *slog.Logger
}

type Option func(*Service)

func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		if baseURL != "" {
			s.baseURL = baseURL
		}
	}
}

func WithFetcher(f Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.log = logger.With("adapter", "company")
		}
	}
}

// NewService creates a Service that authenticates every request with apiKey.
func NewService(apiKey string, opts ...Option) *Service {
	s := &Service{
		apiKey:  apiKey,
		baseURL: fetch.DefaultBaseURL,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.fetcher == nil {
		s.fetcher = fetch.New(fetch.WithLogger(s.log))
	}

	return s
}

// GetCompany returns the profile of the company with the given number.
func (s *Service) GetCompany(ctx context.Context, companyNumber string) (registry.Company, error) {
	if err := requireID("company number", companyNumber); err != nil {
		return registry.Company{}, err
	}

	data, err := s.fetcher.FetchJSON(ctx, fetch.URL(s.baseURL, nil, "company", companyNumber), s.apiKey)
	if err != nil {
		return registry.Company{}, fmt.Errorf("company: get company %s: %w", companyNumber, err)
	}

	c, err := mapper.Company(data)
	if err != nil {
		return registry.Company{}, fmt.Errorf("company: map company %s: %w", companyNumber, err)
	}

	return c, nil
}

// Exists reports whether GetCompany succeeds. Every failure, including an
// invalid key or a network error, reads as false.
func (s *Service) Exists(ctx context.Context, companyNumber string) bool {
	_, err := s.GetCompany(ctx, companyNumber)
	if err != nil {
		s.log.DebugContext(ctx, "company lookup failed",
			slog.String("company_number", companyNumber),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

// GetRegisteredOfficeAddress returns the company's registered office address.
//
// The endpoint answers 500 for unknown company numbers, so a 500 here is
// reported as a 404. Other statuses pass through unchanged.
func (s *Service) GetRegisteredOfficeAddress(ctx context.Context, companyNumber string) (registry.Address, error) {
	if err := requireID("company number", companyNumber); err != nil {
		return registry.Address{}, err
	}

	rawURL := fetch.URL(s.baseURL, nil, "company", companyNumber, "registered-office-address")

	data, err := s.fetcher.FetchJSON(ctx, rawURL, s.apiKey)
	if err != nil {
		var httpErr *fetch.HTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusInternalServerError {
			s.log.WarnContext(ctx, "registered office address answered 500, reporting not found",
				slog.String("company_number", companyNumber),
			)
			err = fetch.NotFound(rawURL)
		}
		return registry.Address{}, fmt.Errorf("company: get registered office address %s: %w", companyNumber, err)
	}

	a, err := mapper.Address(data)
	if err != nil {
		return registry.Address{}, fmt.Errorf("company: map registered office address %s: %w", companyNumber, err)
	}

	return a, nil
}

// ListCharges returns the charges registered against the company.
func (s *Service) ListCharges(ctx context.Context, companyNumber string) (registry.ChargeList, error) {
	if err := requireID("company number", companyNumber); err != nil {
		return registry.ChargeList{}, err
	}

	data, err := s.fetcher.FetchJSON(ctx, fetch.URL(s.baseURL, nil, "company", companyNumber, "charges"), s.apiKey)
	if err != nil {
		return registry.ChargeList{}, fmt.Errorf("company: list charges %s: %w", companyNumber, err)
	}

	list, err := mapper.ChargeList(data)
	if err != nil {
		return registry.ChargeList{}, fmt.Errorf("company: map charges %s: %w", companyNumber, err)
	}

	return list, nil
}

// GetCharge returns one charge registered against the company.
func (s *Service) GetCharge(ctx context.Context, companyNumber, chargeID string) (registry.Charge, error) {
	if err := requireID("company number", companyNumber); err != nil {
		return registry.Charge{}, err
	}
	if err := requireID("charge id", chargeID); err != nil {
		return registry.Charge{}, err
	}

	rawURL := fetch.URL(s.baseURL, nil, "company", companyNumber, "charges", chargeID)

	data, err := s.fetcher.FetchJSON(ctx, rawURL, s.apiKey)
	if err != nil {
		return registry.Charge{}, fmt.Errorf("company: get charge %s/%s: %w", companyNumber, chargeID, err)
	}

	c, err := mapper.Charge(data)
	if err != nil {
		return registry.Charge{}, fmt.Errorf("company: map charge %s/%s: %w", companyNumber, chargeID, err)
	}

	return c, nil
}

// GetRegisters returns the company's statutory registers as decoded JSON.
// The response is not mapped to a record.
func (s *Service) GetRegisters(ctx context.Context, companyNumber string) (map[string]any, error) {
	if err := requireID("company number", companyNumber); err != nil {
		return nil, err
	}

	data, err := s.fetcher.FetchJSON(ctx, fetch.URL(s.baseURL, nil, "company", companyNumber, "registers"), s.apiKey)
	if err != nil {
		return nil, fmt.Errorf("company: get registers %s: %w", companyNumber, err)
	}

	return data, nil
}

func requireID(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return registry.NewArgumentError(field, "is required")
	}
	return nil
}
