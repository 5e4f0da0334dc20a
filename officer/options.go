package officer

import (
	"net/url"
	"strconv"

	"github.com/tpgainz/companies-house/registry"
)

// DefaultPageSize is sent as items_per_page when no page size is given.
const DefaultPageSize = 10000

// OfficerSearchOptions filters a company officer list. The zero value lists
// directors ordered by appointment date with a page size of DefaultPageSize.
type OfficerSearchOptions struct {
	// PageSize of 0 means DefaultPageSize. Negative values are rejected.
	PageSize int
	// RegisterView requires an explicit RegisterType.
	RegisterView bool
	// RegisterType defaults to registry.RegisterTypeDirectors.
	RegisterType registry.RegisterType
	// OrderBy defaults to registry.OfficerOrderByAppointedOn.
	OrderBy registry.OfficerOrderBy
}

// AppointmentSearchOptions filters an officer's appointment list.
type AppointmentSearchOptions struct {
	// Active restricts the list to current appointments.
	Active bool
	// PageSize of 0 means DefaultPageSize. Negative values are rejected.
	PageSize int
}

func resolvePageSize(n int) (int, error) {
	switch {
	case n < 0:
		return 0, registry.NewArgumentError("page size", "must not be negative")
	case n == 0:
		return DefaultPageSize, nil
	default:
		return n, nil
	}
}

// query validates o, applies defaults and returns the officer list query.
func (o OfficerSearchOptions) query() (url.Values, error) {
	pageSize, err := resolvePageSize(o.PageSize)
	if err != nil {
		return nil, err
	}

	registerType := o.RegisterType
	switch {
	case registerType == "" && o.RegisterView:
		return nil, registry.NewArgumentError("register type", "is required when register view is set")
	case registerType == "":
		registerType = registry.RegisterTypeDirectors
	case !registerType.IsValid():
		return nil, registry.NewArgumentError("register type", "must be one of directors, secretaries, llp-members")
	}

	orderBy := o.OrderBy
	switch {
	case orderBy == "":
		orderBy = registry.OfficerOrderByAppointedOn
	case !orderBy.IsValid():
		return nil, registry.NewArgumentError("order by", "must be one of appointed_on, resigned_on, surname")
	}

	q := url.Values{}
	q.Set("items_per_page", strconv.Itoa(pageSize))
	q.Set("register_view", strconv.FormatBool(o.RegisterView))
	q.Set("register_type", registerType.String())
	q.Set("order_by", orderBy.String())
	return q, nil
}

func (o AppointmentSearchOptions) query() (url.Values, error) {
	pageSize, err := resolvePageSize(o.PageSize)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	if o.Active {
		q.Set("filter", "active")
	}
	q.Set("items_per_page", strconv.Itoa(pageSize))
	return q, nil
}
