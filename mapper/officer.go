package mapper

import "github.com/tpgainz/companies-house/registry"

// Officer maps a single officer, either an item of the company officer list
// or the company appointment detail response.
func Officer(fields map[string]any) (registry.Officer, error) {
	o := NewObject(fields)
	off := officer(o)
	if err := o.Err(); err != nil {
		return registry.Officer{}, err
	}
	return off, nil
}

// OfficerList maps the company officer list response.
func OfficerList(fields map[string]any) (registry.OfficerList, error) {
	o := NewObject(fields)

	items := o.Children("items")
	list := registry.OfficerList{
		Self:          o.Child("links").String("self"),
		ActiveCount:   o.Int("active_count"),
		InactiveCount: o.Int("inactive_count"),
		ResignedCount: o.Int("resigned_count"),
		TotalCount:    o.Int("total_results"),
		Officers:      make([]registry.Officer, 0, len(items)),
	}
	for _, item := range items {
		list.Officers = append(list.Officers, officer(item))
	}

	if err := o.Err(); err != nil {
		return registry.OfficerList{}, err
	}
	return list, nil
}

// OfficerAppointment maps one item of an officer's appointment list.
func OfficerAppointment(fields map[string]any) (registry.OfficerAppointment, error) {
	o := NewObject(fields)
	a := officerAppointment(o)
	if err := o.Err(); err != nil {
		return registry.OfficerAppointment{}, err
	}
	return a, nil
}

// OfficerAppointments maps the officer appointment list response to its items.
func OfficerAppointments(fields map[string]any) ([]registry.OfficerAppointment, error) {
	o := NewObject(fields)

	items := o.Children("items")
	out := make([]registry.OfficerAppointment, 0, len(items))
	for _, item := range items {
		out = append(out, officerAppointment(item))
	}

	if err := o.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AppointmentAddress maps the address shape used by appointment lists, which
// carries region but not country.
func AppointmentAddress(fields map[string]any) (registry.Address, error) {
	o := NewObject(fields)
	a := appointmentAddress(o)
	if err := o.Err(); err != nil {
		return registry.Address{}, err
	}
	return a, nil
}

func officer(o Object) registry.Officer {
	links := o.Child("links")

	off := registry.Officer{
		Links: registry.OfficerLinks{
			Self:         links.String("self"),
			Appointments: links.Child("officer").String("appointments"),
		},
		Name:               o.String("name"),
		Address:            address(o.Child("address")),
		CountryOfResidence: o.OptString("country_of_residence"),
		Nationality:        o.OptString("nationality"),
		Occupation:         o.OptString("occupation"),
		AppointedOn:        o.String("appointed_on"),
		ResignedOn:         o.OptString("resigned_on"),
		Role:               o.String("officer_role"),
	}

	if dob, ok := o.OptChild("date_of_birth"); ok {
		off.DateOfBirth = &registry.DateOfBirth{
			Month: dob.Int("month"),
			Year:  dob.Int("year"),
		}
	}

	return off
}

func officerAppointment(o Object) registry.OfficerAppointment {
	to := o.Child("appointed_to")

	return registry.OfficerAppointment{
		Role:        o.String("officer_role"),
		AppointedOn: o.String("appointed_on"),
		ResignedOn:  o.OptString("resigned_on"),
		Address:     appointmentAddress(o.Child("address")),
		AppointedTo: registry.AppointedTo{
			CompanyNumber: to.String("company_number"),
			CompanyName:   to.String("company_name"),
			CompanyStatus: to.String("company_status"),
			CompanyLink:   o.Child("links").String("company"),
		},
	}
}

func appointmentAddress(o Object) registry.Address {
	return registry.Address{
		Premises:     o.OptString("premises"),
		AddressLine1: o.String("address_line_1"),
		AddressLine2: o.OptString("address_line_2"),
		Locality:     o.String("locality"),
		Region:       o.OptString("region"),
		PostalCode:   o.OptString("postal_code"),
	}
}
