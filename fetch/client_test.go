package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpgainz/companies-house/registry"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient() *Client {
	return New(WithLogger(newTestLogger()))
}

func TestClient_FetchJSON_Success(t *testing.T) {
	t.Parallel()

	var gotAuth, gotAccept, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"company_number":"00000006","total_results":52}`))
	}))
	defer srv.Close()

	data, err := newTestClient().FetchJSON(context.Background(), srv.URL+"/company/00000006", "secret-key")
	require.NoError(t, err)

	assert.Equal(t, "secret-key", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "00000006", data["company_number"])
	assert.Equal(t, json.Number("52"), data["total_results"])
}

func TestClient_FetchJSON_StatusErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"errors":[{"error":"company-profile-not-found"}]}`, sentinel: registry.ErrNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"Invalid Authorization"}`, sentinel: registry.ErrUnauthorized},
		{name: "server error", status: http.StatusInternalServerError, body: "", sentinel: registry.ErrUpstream},
		{name: "rate limited", status: http.StatusTooManyRequests, body: "slow down", sentinel: registry.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient().FetchJSON(context.Background(), srv.URL, "key")
			require.ErrorIs(t, err, tt.sentinel)

			var httpErr *HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, srv.URL, httpErr.URL)
		})
	}
}

func TestClient_FetchJSON_MalformedBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "array", body: `[{"a":1}]`},
		{name: "null", body: `null`},
		{name: "truncated", body: `{"company_number":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient().FetchJSON(context.Background(), srv.URL, "key")
			require.ErrorIs(t, err, registry.ErrMalformedResponse)
		})
	}
}

func TestClient_FetchJSON_CanceledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient().FetchJSON(ctx, srv.URL, "key")
	require.ErrorIs(t, err, context.Canceled)
}

func TestClient_WithUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(WithLogger(newTestLogger()), WithUserAgent("lookup-test/2.0"))
	_, err := c.FetchJSON(context.Background(), srv.URL, "key")
	require.NoError(t, err)
	assert.Equal(t, "lookup-test/2.0", gotUA)
}

func TestURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     string
		query    url.Values
		segments []string
		want     string
	}{
		{
			name:     "plain path",
			base:     "https://api.example.com",
			segments: []string{"company", "00000006"},
			want:     "https://api.example.com/company/00000006",
		},
		{
			name:     "trailing slash on base",
			base:     "https://api.example.com/",
			segments: []string{"company", "00000006", "registered-office-address"},
			want:     "https://api.example.com/company/00000006/registered-office-address",
		},
		{
			name:     "segment escaping",
			base:     "https://api.example.com",
			segments: []string{"company", "../x y"},
			want:     "https://api.example.com/company/..%2Fx%20y",
		},
		{
			name:     "query encoded",
			base:     "https://api.example.com",
			query:    url.Values{"items_per_page": {"2"}, "filter": {"active"}},
			segments: []string{"officers", "abc", "appointments"},
			want:     "https://api.example.com/officers/abc/appointments?filter=active&items_per_page=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, URL(tt.base, tt.query, tt.segments...))
		})
	}
}

func TestHTTPError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NotFound("https://api.example.com/company/00000000")
	require.ErrorIs(t, err, registry.ErrNotFound)
	assert.Equal(t, "404 Not Found", err.Status)
	assert.Equal(t, "unexpected status 404", err.Error())
}
