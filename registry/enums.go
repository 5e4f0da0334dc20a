package registry

// RegisterType selects which officer register is returned when the
// register view is requested. Values are the API's wire values.
type RegisterType string

const (
	RegisterTypeDirectors   RegisterType = "directors"
	RegisterTypeSecretaries RegisterType = "secretaries"
	RegisterTypeLLPMembers  RegisterType = "llp-members"
)

func (r RegisterType) String() string { return string(r) }

func (r RegisterType) IsValid() bool {
	switch r {
	case RegisterTypeDirectors, RegisterTypeSecretaries, RegisterTypeLLPMembers:
		return true
	}
	return false
}

// OfficerOrderBy is the field an officer list is sorted by.
type OfficerOrderBy string

const (
	OfficerOrderByAppointedOn OfficerOrderBy = "appointed_on"
	OfficerOrderByResignedOn  OfficerOrderBy = "resigned_on"
	OfficerOrderBySurname     OfficerOrderBy = "surname"
)

func (o OfficerOrderBy) String() string { return string(o) }

func (o OfficerOrderBy) IsValid() bool {
	switch o {
	case OfficerOrderByAppointedOn, OfficerOrderByResignedOn, OfficerOrderBySurname:
		return true
	}
	return false
}
