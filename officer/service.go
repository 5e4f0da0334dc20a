// Package officer reads company officers and their appointments from the
// Companies House API.
package officer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
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
			s.log = logger.With("adapter", "officer")
		}
	}
}

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

// ListCompanyOfficers returns one page of the company's officers. Options are
// validated before any request is sent.
func (s *Service) ListCompanyOfficers(ctx context.Context, companyNumber string, opts OfficerSearchOptions) (registry.OfficerList, error) {
	if err := requireID("company number", companyNumber); err != nil {
		return registry.OfficerList{}, err
	}

	q, err := opts.query()
	if err != nil {
		return registry.OfficerList{}, err
	}

	data, err := s.fetcher.FetchJSON(ctx, fetch.URL(s.baseURL, q, "company", companyNumber, "officers"), s.apiKey)
	if err != nil {
		return registry.OfficerList{}, fmt.Errorf("officer: list officers %s: %w", companyNumber, err)
	}

	list, err := mapper.OfficerList(data)
	if err != nil {
		return registry.OfficerList{}, fmt.Errorf("officer: map officers %s: %w", companyNumber, err)
	}

	return list, nil
}

// GetCompanyOfficer returns a single appointment of the company. The response
// has the same shape as an officer list item.
func (s *Service) GetCompanyOfficer(ctx context.Context, companyNumber, appointmentID string) (registry.Officer, error) {
	if err := requireID("company number", companyNumber); err != nil {
		return registry.Officer{}, err
	}
	if err := requireID("appointment id", appointmentID); err != nil {
		return registry.Officer{}, err
	}

	rawURL := fetch.URL(s.baseURL, nil, "company", companyNumber, "appointments", appointmentID)

	data, err := s.fetcher.FetchJSON(ctx, rawURL, s.apiKey)
	if err != nil {
		return registry.Officer{}, fmt.Errorf("officer: get appointment %s/%s: %w", companyNumber, appointmentID, err)
	}

	off, err := mapper.Officer(data)
	if err != nil {
		return registry.Officer{}, fmt.Errorf("officer: map appointment %s/%s: %w", companyNumber, appointmentID, err)
	}

	return off, nil
}

// ListOfficerAppointments lists every appointment held by off, using the
// officer number found in its appointments link.
func (s *Service) ListOfficerAppointments(ctx context.Context, off registry.Officer, opts AppointmentSearchOptions) ([]registry.OfficerAppointment, error) {
	number, err := NumberFromLink(off.Links.Appointments)
	if err != nil {
		return nil, err
	}
	return s.ListAppointmentsByNumber(ctx, number, opts)
}

// ListAppointmentsByNumber lists the appointments of the officer with the
// given officer number.
func (s *Service) ListAppointmentsByNumber(ctx context.Context, officerNumber string, opts AppointmentSearchOptions) ([]registry.OfficerAppointment, error) {
	if err := requireID("officer number", officerNumber); err != nil {
		return nil, err
	}

	q, err := opts.query()
	if err != nil {
		return nil, err
	}

	data, err := s.fetcher.FetchJSON(ctx, fetch.URL(s.baseURL, q, "officers", officerNumber, "appointments"), s.apiKey)
	if err != nil {
		return nil, fmt.Errorf("officer: list appointments %s: %w", officerNumber, err)
	}

	appointments, err := mapper.OfficerAppointments(data)
	if err != nil {
		return nil, fmt.Errorf("officer: map appointments %s: %w", officerNumber, err)
	}

	return appointments, nil
}

// NumberFromLink extracts the officer number from an appointments link of the
// form /officers/{officerNumber}/appointments.
func NumberFromLink(link string) (string, error) {
	parts := strings.Split(strings.Trim(link, "/"), "/")
	for i, part := range parts {
		if part == "officers" && i+1 < len(parts) && parts[i+1] != "" {
			return parts[i+1], nil
		}
	}
	return "", registry.NewArgumentError("appointments link", fmt.Sprintf("%q has no officer number", link))
}

func requireID(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return registry.NewArgumentError(field, "is required")
	}
	return nil
}
