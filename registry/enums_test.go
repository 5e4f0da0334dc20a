package registry

import "testing"

func TestRegisterType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value RegisterType
		want  bool
	}{
		{RegisterTypeDirectors, true},
		{RegisterTypeSecretaries, true},
		{RegisterTypeLLPMembers, true},
		{"director", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.value.IsValid(); got != tt.want {
			t.Errorf("RegisterType(%q).IsValid() = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestOfficerOrderBy_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value OfficerOrderBy
		want  bool
	}{
		{OfficerOrderByAppointedOn, true},
		{OfficerOrderByResignedOn, true},
		{OfficerOrderBySurname, true},
		{"appointed-on", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := tt.value.IsValid(); got != tt.want {
			t.Errorf("OfficerOrderBy(%q).IsValid() = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestOfficerAppointment_Active(t *testing.T) {
	t.Parallel()

	resigned := "2020-01-01"
	if !(OfficerAppointment{}).Active() {
		t.Error("appointment without resignation date should be active")
	}
	if (OfficerAppointment{ResignedOn: &resigned}).Active() {
		t.Error("appointment with resignation date should not be active")
	}
}
