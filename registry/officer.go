package registry

// Officer is a person appointed to a company.
type Officer struct {
	Links              OfficerLinks `json:"links"`
	Name               string       `json:"name"`
	Address            Address      `json:"address"`
	CountryOfResidence *string      `json:"countryOfResidence,omitempty"`
	Nationality        *string      `json:"nationality,omitempty"`
	DateOfBirth        *DateOfBirth `json:"dateOfBirth,omitempty"`
	Occupation         *string      `json:"occupation,omitempty"`
	AppointedOn        string       `json:"appointedOn"`
	ResignedOn         *string      `json:"resignedOn,omitempty"`
	Role               string       `json:"role"`
}

type OfficerLinks struct {
	Self         string `json:"self"`
	Appointments string `json:"appointments"`
}

// DateOfBirth is the partial birth date published for an officer.
type DateOfBirth struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// OfficerList is one page of a company's officers. Counts are reported by
// the API and are not derived from Officers.
type OfficerList struct {
	Self          string    `json:"self"`
	ActiveCount   int       `json:"activeCount"`
	InactiveCount int       `json:"inactiveCount"`
	ResignedCount int       `json:"resignedCount"`
	TotalCount    int       `json:"totalCount"`
	Officers      []Officer `json:"officers"`
}

// OfficerAppointment is one appointment held by an officer.
type OfficerAppointment struct {
	Role        string      `json:"role"`
	AppointedOn string      `json:"appointedOn"`
	ResignedOn  *string     `json:"resignedOn,omitempty"`
	Address     Address     `json:"address"`
	AppointedTo AppointedTo `json:"appointedTo"`
}

// AppointedTo summarises the company an appointment is held at.
type AppointedTo struct {
	CompanyNumber string `json:"companyNumber"`
	CompanyName   string `json:"companyName"`
	CompanyStatus string `json:"companyStatus"`
	CompanyLink   string `json:"companyLink"`
}

// Active reports whether the appointment has no resignation date.
func (a OfficerAppointment) Active() bool { return a.ResignedOn == nil }
