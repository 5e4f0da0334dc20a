package runner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/tpgainz/companies-house/companieshouse"
	"github.com/tpgainz/companies-house/officer"
	"github.com/tpgainz/companies-house/registry"
)

// Resources accepted by Lookup.
const (
	ResourceCompany      = "company"
	ResourceAddress      = "address"
	ResourceExists       = "exists"
	ResourceOfficers     = "officers"
	ResourceOfficer      = "officer"
	ResourceAppointments = "appointments"
	ResourceCharges      = "charges"
	ResourceCharge       = "charge"
	ResourceRegisters    = "registers"
	ResourceProfile      = "profile"
	ResourceValidateKey  = "validate-key"
)

var resources = []string{
	ResourceCompany, ResourceAddress, ResourceExists, ResourceOfficers, ResourceOfficer,
	ResourceAppointments, ResourceCharges, ResourceCharge, ResourceRegisters, ResourceProfile,
	ResourceValidateKey,
}

// Request is one lookup. It is filled from CLI flags, an input file line or
// a Lambda event.
type Request struct {
	Resource      string `json:"resource"`
	CompanyNumber string `json:"company_number,omitempty"`
	OfficerNumber string `json:"officer_number,omitempty"`
	AppointmentID string `json:"appointment_id,omitempty"`
	ChargeID      string `json:"charge_id,omitempty"`
	PageSize      int    `json:"page_size,omitempty"`
	RegisterView  bool   `json:"register_view,omitempty"`
	RegisterType  string `json:"register_type,omitempty"`
	OrderBy       string `json:"order_by,omitempty"`
	Active        bool   `json:"active,omitempty"`
}

// Subject is the identifier the request is about, used in logs and export keys.
func (r Request) Subject() string {
	if r.OfficerNumber != "" {
		return r.OfficerNumber
	}
	if r.CompanyNumber != "" {
		return r.CompanyNumber
	}
	return companieshouse.KnownCompanyNumber
}

func (r Request) officerOptions() officer.OfficerSearchOptions {
	return officer.OfficerSearchOptions{
		PageSize:     r.PageSize,
		RegisterView: r.RegisterView,
		RegisterType: registry.RegisterType(r.RegisterType),
		OrderBy:      registry.OfficerOrderBy(r.OrderBy),
	}
}

func (r Request) appointmentOptions() officer.AppointmentSearchOptions {
	return officer.AppointmentSearchOptions{Active: r.Active, PageSize: r.PageSize}
}

// ExistsResult answers the exists and validate-key resources.
type ExistsResult struct {
	CompanyNumber string `json:"companyNumber"`
	Exists        bool   `json:"exists"`
}

// Profile combines a company with its officers and charges.
type Profile struct {
	Company  registry.Company     `json:"company"`
	Officers registry.OfficerList `json:"officers"`
	Charges  *registry.ChargeList `json:"charges,omitempty"`
}

// Lookup performs req against ch and returns the record it produced.
func Lookup(ctx context.Context, ch *companieshouse.Client, req Request) (any, error) {
	switch req.Resource {
	case ResourceCompany:
		return ch.Companies.GetCompany(ctx, req.CompanyNumber)
	case ResourceAddress:
		return ch.Companies.GetRegisteredOfficeAddress(ctx, req.CompanyNumber)
	case ResourceExists:
		return ExistsResult{CompanyNumber: req.CompanyNumber, Exists: ch.Companies.Exists(ctx, req.CompanyNumber)}, nil
	case ResourceValidateKey:
		return ExistsResult{
			CompanyNumber: companieshouse.KnownCompanyNumber,
			Exists:        ch.Companies.Exists(ctx, companieshouse.KnownCompanyNumber),
		}, nil
	case ResourceOfficers:
		return ch.Officers.ListCompanyOfficers(ctx, req.CompanyNumber, req.officerOptions())
	case ResourceOfficer:
		return ch.Officers.GetCompanyOfficer(ctx, req.CompanyNumber, req.AppointmentID)
	case ResourceAppointments:
		return lookupAppointments(ctx, ch, req)
	case ResourceCharges:
		return ch.Companies.ListCharges(ctx, req.CompanyNumber)
	case ResourceCharge:
		return ch.Companies.GetCharge(ctx, req.CompanyNumber, req.ChargeID)
	case ResourceRegisters:
		return ch.Companies.GetRegisters(ctx, req.CompanyNumber)
	case ResourceProfile:
		return lookupProfile(ctx, ch, req)
	default:
		return nil, registry.NewArgumentError("resource", fmt.Sprintf("%q is not one of %v", req.Resource, resources))
	}
}

// lookupAppointments accepts either an officer number or a company number
// with one of its appointment ids.
func lookupAppointments(ctx context.Context, ch *companieshouse.Client, req Request) ([]registry.OfficerAppointment, error) {
	if req.OfficerNumber != "" {
		return ch.Officers.ListAppointmentsByNumber(ctx, req.OfficerNumber, req.appointmentOptions())
	}

	off, err := ch.Officers.GetCompanyOfficer(ctx, req.CompanyNumber, req.AppointmentID)
	if err != nil {
		return nil, err
	}

	return ch.Officers.ListOfficerAppointments(ctx, off, req.appointmentOptions())
}

// lookupProfile fetches the company, its officers and its charges
// concurrently. A company without charges has no charges resource, so charges
// are only requested when the profile says there are some.
func lookupProfile(ctx context.Context, ch *companieshouse.Client, req Request) (Profile, error) {
	var p Profile

	c, err := ch.Companies.GetCompany(ctx, req.CompanyNumber)
	if err != nil {
		return Profile{}, err
	}
	p.Company = c

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := ch.Officers.ListCompanyOfficers(gctx, req.CompanyNumber, req.officerOptions())
		if err != nil {
			return err
		}
		p.Officers = list
		return nil
	})

	if c.HasCharges {
		g.Go(func() error {
			charges, err := ch.Companies.ListCharges(gctx, req.CompanyNumber)
			if err != nil {
				return err
			}
			p.Charges = &charges
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Profile{}, err
	}

	return p, nil
}
