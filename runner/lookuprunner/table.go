package lookuprunner

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/tpgainz/companies-house/registry"
	"github.com/tpgainz/companies-house/runner"
)

// table is a header plus rows of cells, rendered with columns aligned by
// display width.
type table struct {
	header []string
	rows   [][]string
}

func (t *table) add(cells ...string) { t.rows = append(t.rows, cells) }

// write renders t to w. Cells in the last column are truncated so that lines
// fit in width; width <= 0 disables truncation.
func (t *table) write(w io.Writer, width int) error {
	cols := len(t.header)
	widths := make([]int, cols)
	for i, h := range t.header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], runewidth.StringWidth(row[i]))
		}
	}

	lead := 0
	for _, cw := range widths[:cols-1] {
		lead += cw + 2
	}

	line := func(cells []string) string {
		var b strings.Builder
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if i == cols-1 {
				if width > 0 && lead < width {
					cell = runewidth.Truncate(cell, width-lead, "…")
				}
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}
		return strings.TrimRight(b.String(), " ")
	}

	if _, err := fmt.Fprintln(w, line(t.header)); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := fmt.Fprintln(w, line(row)); err != nil {
			return err
		}
	}
	return nil
}

func opt(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func formatAddress(a registry.Address) string {
	parts := make([]string, 0, 7)
	for _, p := range []*string{a.Premises, &a.AddressLine1, a.AddressLine2, &a.Locality, a.Region, a.Country, a.PostalCode} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, ", ")
}

func fieldTable() *table { return &table{header: []string{"FIELD", "VALUE"}} }

func companyTable(c registry.Company) *table {
	t := fieldTable()
	t.add("number", c.CompanyNumber)
	t.add("name", c.CompanyName)
	t.add("type", c.Type)
	t.add("status", opt(c.CompanyStatus))
	t.add("created", c.DateOfCreation)
	t.add("ceased", opt(c.DateOfCessation))
	t.add("jurisdiction", c.Jurisdiction)
	t.add("registered office", formatAddress(c.RegisteredOfficeAddress))
	t.add("sic codes", strings.Join(c.SICCodes, " "))
	if c.Accounts != nil {
		ref := c.Accounts.AccountingReferenceDate
		t.add("accounting reference", ref.Day+"/"+ref.Month)
		if c.Accounts.LastAccounts != nil {
			t.add("last accounts", c.Accounts.LastAccounts.Type+" "+opt(c.Accounts.LastAccounts.MadeUpTo))
		}
	}
	t.add("has charges", strconv.FormatBool(c.HasCharges))
	t.add("insolvency history", strconv.FormatBool(c.HasInsolvencyHistory))
	t.add("can file", strconv.FormatBool(c.CanFile))
	return t
}

func officersTable(list registry.OfficerList) *table {
	t := &table{header: []string{"NAME", "ROLE", "APPOINTED", "RESIGNED", "APPOINTMENTS"}}
	for _, o := range list.Officers {
		t.add(o.Name, o.Role, o.AppointedOn, opt(o.ResignedOn), o.Links.Appointments)
	}
	return t
}

func officerTable(o registry.Officer) *table {
	t := fieldTable()
	t.add("name", o.Name)
	t.add("role", o.Role)
	t.add("appointed", o.AppointedOn)
	t.add("resigned", opt(o.ResignedOn))
	t.add("nationality", opt(o.Nationality))
	t.add("occupation", opt(o.Occupation))
	if o.DateOfBirth != nil {
		t.add("born", fmt.Sprintf("%02d/%d", o.DateOfBirth.Month, o.DateOfBirth.Year))
	}
	t.add("address", formatAddress(o.Address))
	t.add("appointments", o.Links.Appointments)
	return t
}

func appointmentsTable(items []registry.OfficerAppointment) *table {
	t := &table{header: []string{"COMPANY", "ROLE", "APPOINTED", "RESIGNED", "STATUS", "NAME"}}
	for _, a := range items {
		t.add(a.AppointedTo.CompanyNumber, a.Role, a.AppointedOn, opt(a.ResignedOn), a.AppointedTo.CompanyStatus, a.AppointedTo.CompanyName)
	}
	return t
}

func chargesTable(list registry.ChargeList) *table {
	t := &table{header: []string{"NUMBER", "STATUS", "CREATED", "SATISFIED", "DESCRIPTION"}}
	for _, c := range list.Charges {
		t.add(strconv.Itoa(c.ChargeNumber), c.Status, opt(c.CreatedOn), opt(c.SatisfiedOn), c.Description)
	}
	return t
}

func chargeTable(c registry.Charge) *table {
	t := fieldTable()
	t.add("number", strconv.Itoa(c.ChargeNumber))
	t.add("code", opt(c.ChargeCode))
	t.add("status", c.Status)
	t.add("classification", c.Type+": "+c.Description)
	t.add("created", opt(c.CreatedOn))
	t.add("delivered", opt(c.DeliveredOn))
	t.add("satisfied", opt(c.SatisfiedOn))
	t.add("persons entitled", strings.Join(c.PersonsEntitled, "; "))
	if c.Particulars != nil {
		t.add("particulars", c.Particulars.Description)
	}
	if c.SecuredDetails != nil {
		t.add("secured", c.SecuredDetails.Description)
	}
	for _, tx := range c.Transactions {
		t.add("filing", tx.DeliveredOn+" "+tx.Type)
	}
	return t
}

func mapTable(m map[string]any) *table {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := &table{header: []string{"KEY", "VALUE"}}
	for _, k := range keys {
		t.add(k, fmt.Sprint(m[k]))
	}
	return t
}

// tablesFor returns the tables describing result.
func tablesFor(result any) ([]*table, error) {
	switch r := result.(type) {
	case registry.Company:
		return []*table{companyTable(r)}, nil
	case registry.Address:
		t := fieldTable()
		t.add("address", formatAddress(r))
		return []*table{t}, nil
	case registry.OfficerList:
		summary := fieldTable()
		summary.add("active", strconv.Itoa(r.ActiveCount))
		summary.add("inactive", strconv.Itoa(r.InactiveCount))
		summary.add("resigned", strconv.Itoa(r.ResignedCount))
		summary.add("total", strconv.Itoa(r.TotalCount))
		return []*table{summary, officersTable(r)}, nil
	case registry.Officer:
		return []*table{officerTable(r)}, nil
	case []registry.OfficerAppointment:
		return []*table{appointmentsTable(r)}, nil
	case registry.ChargeList:
		return []*table{chargesTable(r)}, nil
	case registry.Charge:
		return []*table{chargeTable(r)}, nil
	case map[string]any:
		return []*table{mapTable(r)}, nil
	case runner.ExistsResult:
		t := fieldTable()
		t.add("company", r.CompanyNumber)
		t.add("exists", strconv.FormatBool(r.Exists))
		return []*table{t}, nil
	case runner.Profile:
		tables := []*table{companyTable(r.Company), officersTable(r.Officers)}
		if r.Charges != nil {
			tables = append(tables, chargesTable(*r.Charges))
		}
		return tables, nil
	default:
		return nil, fmt.Errorf("no table layout for %T", result)
	}
}
