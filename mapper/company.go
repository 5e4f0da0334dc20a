package mapper

import "github.com/tpgainz/companies-house/registry"

// Company maps a company profile response.
func Company(fields map[string]any) (registry.Company, error) {
	o := NewObject(fields)
	c := company(o)
	if err := o.Err(); err != nil {
		return registry.Company{}, err
	}
	return c, nil
}

// Address maps a registered office address response.
func Address(fields map[string]any) (registry.Address, error) {
	o := NewObject(fields)
	a := address(o)
	if err := o.Err(); err != nil {
		return registry.Address{}, err
	}
	return a, nil
}

// Accounts maps the accounts block of a company profile.
func Accounts(fields map[string]any) (registry.AccountsSummary, error) {
	o := NewObject(fields)
	a := accounts(o)
	if err := o.Err(); err != nil {
		return registry.AccountsSummary{}, err
	}
	return a, nil
}

func company(o Object) registry.Company {
	links := o.Child("links")

	c := registry.Company{
		CompanyNumber:                        o.String("company_number"),
		CompanyName:                          o.String("company_name"),
		Type:                                 o.String("type"),
		CompanyStatus:                        o.OptString("company_status"),
		DateOfCreation:                       o.String("date_of_creation"),
		DateOfCessation:                      o.OptString("date_of_cessation"),
		LastFullMembersListDate:              o.OptString("last_full_members_list_date"),
		Jurisdiction:                         o.String("jurisdiction"),
		RegisteredOfficeAddress:              address(o.Child("registered_office_address")),
		SICCodes:                             o.Strings("sic_codes"),
		UndeliverableRegisteredOfficeAddress: o.Bool("undeliverable_registered_office_address"),
		HasInsolvencyHistory:                 o.Bool("has_insolvency_history"),
		HasCharges:                           o.Bool("has_charges"),
		RegisteredOfficeIsInDispute:          o.Bool("registered_office_is_in_dispute"),
		CanFile:                              o.Bool("can_file"),
		Links: registry.CompanyLinks{
			Self:          links.String("self"),
			FilingHistory: links.OptString("filing_history"),
			Officers:      links.OptString("officers"),
			Charges:       links.OptString("charges"),
		},
	}

	if acc, ok := o.OptChild("accounts"); ok {
		a := accounts(acc)
		c.Accounts = &a
	}

	return c
}

// address maps the company and officer address shape, which carries country
// but not region.
func address(o Object) registry.Address {
	return registry.Address{
		Premises:     o.OptString("premises"),
		AddressLine1: o.String("address_line_1"),
		AddressLine2: o.OptString("address_line_2"),
		Locality:     o.String("locality"),
		Country:      o.OptString("country"),
		PostalCode:   o.OptString("postal_code"),
	}
}

func accounts(o Object) registry.AccountsSummary {
	ref := o.Child("accounting_reference_date")

	a := registry.AccountsSummary{
		AccountingReferenceDate: registry.AccountingReferenceDate{
			Day:   ref.String("day"),
			Month: ref.String("month"),
		},
	}

	if last, ok := o.OptChild("last_accounts"); ok {
		a.LastAccounts = &registry.LastAccounts{
			Type:        last.String("type"),
			MadeUpTo:    last.OptString("made_up_to"),
			PeriodEndOn: last.OptString("period_end_on"),
		}
	}

	return a
}
