package officer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpgainz/companies-house/registry"
)

func TestOfficerSearchOptions_Query(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    OfficerSearchOptions
		want    string
		wantErr bool
	}{
		{
			name: "defaults",
			opts: OfficerSearchOptions{},
			want: "items_per_page=10000&order_by=appointed_on&register_type=directors&register_view=false",
		},
		{
			name: "explicit",
			opts: OfficerSearchOptions{
				PageSize:     2,
				RegisterView: true,
				RegisterType: registry.RegisterTypeLLPMembers,
				OrderBy:      registry.OfficerOrderBySurname,
			},
			want: "items_per_page=2&order_by=surname&register_type=llp-members&register_view=true",
		},
		{name: "negative page size", opts: OfficerSearchOptions{PageSize: -1}, wantErr: true},
		{name: "register view without type", opts: OfficerSearchOptions{RegisterView: true}, wantErr: true},
		{name: "unknown register type", opts: OfficerSearchOptions{RegisterType: "members"}, wantErr: true},
		{name: "unknown order", opts: OfficerSearchOptions{OrderBy: "name"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q, err := tt.opts.query()
			if tt.wantErr {
				require.ErrorIs(t, err, registry.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Encode())
		})
	}
}

func TestAppointmentSearchOptions_Query(t *testing.T) {
	t.Parallel()

	q, err := AppointmentSearchOptions{}.query()
	require.NoError(t, err)
	assert.Equal(t, "items_per_page=10000", q.Encode())
	assert.False(t, q.Has("filter"))

	q, err = AppointmentSearchOptions{Active: true, PageSize: 5}.query()
	require.NoError(t, err)
	assert.Equal(t, "filter=active&items_per_page=5", q.Encode())

	_, err = AppointmentSearchOptions{PageSize: -3}.query()
	assert.ErrorIs(t, err, registry.ErrInvalidArgument)
}

func TestNumberFromLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		link    string
		want    string
		wantErr bool
	}{
		{link: "/officers/1UUfj2gDv9ZVoykvoy9hhEhXDcY/appointments", want: "1UUfj2gDv9ZVoykvoy9hhEhXDcY"},
		{link: "officers/abc/appointments", want: "abc"},
		{link: "", wantErr: true},
		{link: "/company/00000006", wantErr: true},
		{link: "/officers/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			t.Parallel()

			got, err := NumberFromLink(tt.link)
			if tt.wantErr {
				require.ErrorIs(t, err, registry.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
