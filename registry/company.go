// Package registry holds the record shapes returned by the Companies House
// client. Records are assembled once from an API response and never mutated.
// Optional fields are pointers and are nil when the API omits them.
package registry

// Company is the public profile of a registered company.
type Company struct {
	CompanyNumber                        string           `json:"companyNumber"`
	CompanyName                          string           `json:"companyName"`
	Type                                 string           `json:"type"`
	CompanyStatus                        *string          `json:"companyStatus,omitempty"`
	DateOfCreation                       string           `json:"dateOfCreation"`
	DateOfCessation                      *string          `json:"dateOfCessation,omitempty"`
	LastFullMembersListDate              *string          `json:"lastFullMembersListDate,omitempty"`
	Jurisdiction                         string           `json:"jurisdiction"`
	RegisteredOfficeAddress              Address          `json:"registeredOfficeAddress"`
	Accounts                             *AccountsSummary `json:"accounts,omitempty"`
	SICCodes                             []string         `json:"sicCodes,omitempty"`
	UndeliverableRegisteredOfficeAddress bool             `json:"undeliverableRegisteredOfficeAddress"`
	HasInsolvencyHistory                 bool             `json:"hasInsolvencyHistory"`
	HasCharges                           bool             `json:"hasCharges"`
	RegisteredOfficeIsInDispute          bool             `json:"registeredOfficeIsInDispute"`
	CanFile                              bool             `json:"canFile"`
	Links                                CompanyLinks     `json:"links"`
}

// CompanyLinks are relative paths to the company's sub-resources.
type CompanyLinks struct {
	Self          string  `json:"self"`
	FilingHistory *string `json:"filingHistory,omitempty"`
	Officers      *string `json:"officers,omitempty"`
	Charges       *string `json:"charges,omitempty"`
}

// Address is the postal address shape shared by companies, officers and
// appointments.
type Address struct {
	Premises     *string `json:"premises,omitempty"`
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	Locality     string  `json:"locality"`
	Region       *string `json:"region,omitempty"`
	Country      *string `json:"country,omitempty"`
	PostalCode   *string `json:"postalCode,omitempty"`
}

// AccountsSummary is a snapshot of the company's accounts filing schedule.
type AccountsSummary struct {
	AccountingReferenceDate AccountingReferenceDate `json:"accountingReferenceDate"`
	LastAccounts            *LastAccounts           `json:"lastAccounts,omitempty"`
}

type AccountingReferenceDate struct {
	Day   string `json:"day"`
	Month string `json:"month"`
}

type LastAccounts struct {
	Type        string  `json:"type"`
	MadeUpTo    *string `json:"madeUpTo,omitempty"`
	PeriodEndOn *string `json:"periodEndOn,omitempty"`
}
