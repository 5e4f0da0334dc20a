package runner

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
)

// ReadRequests turns r into one Request per non-empty line, each copied from
// base. A line holds the identifier, optionally followed by "#!#" and a
// resource overriding base.Resource. The identifier is an officer number for
// appointment lookups and a company number otherwise. Lines starting with
// "#" are skipped.
func ReadRequests(r io.Reader, base Request) ([]Request, error) {
	var requests []Request

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || (strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "#!#")) {
			continue
		}

		req := base
		id := line

		if before, after, ok := strings.Cut(line, "#!#"); ok {
			id = strings.TrimSpace(before)
			req.Resource = strings.TrimSpace(after)
		}

		if !slices.Contains(resources, req.Resource) {
			return nil, fmt.Errorf("line %d: unknown resource %q", lineNo, req.Resource)
		}

		if id == "" && req.Resource != ResourceValidateKey {
			return nil, fmt.Errorf("line %d: missing identifier", lineNo)
		}

		if req.Resource == ResourceAppointments {
			req.OfficerNumber = id
			req.CompanyNumber = ""
		} else {
			req.CompanyNumber = id
			req.OfficerNumber = ""
		}

		requests = append(requests, req)
	}

	return requests, scanner.Err()
}
