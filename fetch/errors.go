package fetch

import (
	"fmt"
	"net/http"

	"github.com/tpgainz/companies-house/registry"
)

// HTTPError is returned for any non-200 response.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Unwrap classifies the status so callers can use errors.Is with the
// registry sentinels.
func (e *HTTPError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return registry.ErrNotFound
	case http.StatusUnauthorized:
		return registry.ErrUnauthorized
	default:
		return registry.ErrUpstream
	}
}

// NotFound builds the error reported when a resource does not exist.
func NotFound(url string) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusNotFound,
		Status:     fmt.Sprintf("%d %s", http.StatusNotFound, http.StatusText(http.StatusNotFound)),
		URL:        url,
	}
}
