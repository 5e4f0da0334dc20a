package lambdaaws

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpgainz/companies-house/companieshouse"
	"github.com/tpgainz/companies-house/config"
	"github.com/tpgainz/companies-house/registry"
	"github.com/tpgainz/companies-house/runner"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T) *companieshouse.Client {
	t.Helper()

	company, err := os.ReadFile(filepath.Join("testdata", "company.json"))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/company/00000006" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(company)
	}))
	t.Cleanup(srv.Close)

	return companieshouse.New("test-key", companieshouse.WithBaseURL(srv.URL))
}

type fakeExporter struct {
	resource, subject string
	body              []byte
	err               error
}

func (f *fakeExporter) Export(_ context.Context, resource, subject string, body []byte) (string, error) {
	f.resource, f.subject, f.body = resource, subject, body
	if f.err != nil {
		return "", f.err
	}
	return resource + "/" + subject + "/result.json", nil
}

func TestHandler(t *testing.T) {
	t.Parallel()

	r := &lambdaRunner{client: newTestClient(t), log: newTestLogger()}

	resp, err := r.handler(context.Background(), runner.Request{Resource: runner.ResourceCompany, CompanyNumber: "00000006"})
	require.NoError(t, err)

	assert.Equal(t, "company", resp.Resource)
	assert.Equal(t, "00000006", resp.Subject)
	assert.Empty(t, resp.ExportKey)

	var c registry.Company
	require.NoError(t, json.Unmarshal(resp.Result, &c))
	assert.Equal(t, "MARINE AND GENERAL MUTUAL LIFE ASSURANCE SOCIETY", c.CompanyName)
}

func TestHandler_Export(t *testing.T) {
	t.Parallel()

	exp := &fakeExporter{}
	r := &lambdaRunner{client: newTestClient(t), exporter: exp, log: newTestLogger()}

	resp, err := r.handler(context.Background(), runner.Request{Resource: runner.ResourceExists, CompanyNumber: "00000006"})
	require.NoError(t, err)

	assert.Equal(t, "exists/00000006/result.json", resp.ExportKey)
	assert.Equal(t, "exists", exp.resource)
	assert.Equal(t, "00000006", exp.subject)
	assert.JSONEq(t, `{"companyNumber":"00000006","exists":true}`, string(exp.body))
}

func TestHandler_Errors(t *testing.T) {
	t.Parallel()

	exp := &fakeExporter{err: errors.New("access denied")}
	r := &lambdaRunner{client: newTestClient(t), exporter: exp, log: newTestLogger()}
	ctx := context.Background()

	_, err := r.handler(ctx, runner.Request{Resource: runner.ResourceCompany, CompanyNumber: "00000000"})
	assert.ErrorIs(t, err, registry.ErrNotFound)

	_, err = r.handler(ctx, runner.Request{Resource: runner.ResourceCompany, CompanyNumber: "00000006"})
	assert.EqualError(t, err, "access denied")
}

func TestHandler_DecodesEvent(t *testing.T) {
	t.Parallel()

	var req runner.Request
	require.NoError(t, json.Unmarshal([]byte(`{"resource":"officers","company_number":"00000006","page_size":2,"register_view":true,"register_type":"directors"}`), &req))

	assert.Equal(t, runner.Request{
		Resource:      runner.ResourceOfficers,
		CompanyNumber: "00000006",
		PageSize:      2,
		RegisterView:  true,
		RegisterType:  "directors",
	}, req)
}

type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	raw, _ := io.ReadAll(params.Body)
	f.body = string(raw)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3Exporter_Export(t *testing.T) {
	t.Parallel()

	api := &fakeS3{}
	e := &s3Exporter{client: api, bucket: "ch-exports", prefix: "lookups"}

	key, err := e.Export(context.Background(), "company", "00000006", []byte(`{"a":1}`))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "lookups/company/00000006/"))
	assert.True(t, strings.HasSuffix(key, ".json"))
	assert.Equal(t, "ch-exports", aws.ToString(api.input.Bucket))
	assert.Equal(t, key, aws.ToString(api.input.Key))
	assert.Equal(t, "application/json", aws.ToString(api.input.ContentType))
	assert.Equal(t, `{"a":1}`, api.body)
}

func TestS3Exporter_UniqueKeys(t *testing.T) {
	t.Parallel()

	e := &s3Exporter{bucket: "b"}
	assert.NotEqual(t, e.objectKey("company", "1"), e.objectKey("company", "1"))
	assert.True(t, strings.HasPrefix(e.objectKey("company", "1"), "company/1/"))
}

func TestS3Exporter_PutFails(t *testing.T) {
	t.Parallel()

	e := &s3Exporter{client: &fakeS3{err: errors.New("no such bucket")}, bucket: "b"}

	_, err := e.Export(context.Background(), "company", "1", []byte(`{}`))
	assert.ErrorContains(t, err, "no such bucket")
}

func TestNew_WrongRunMode(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), &runner.Config{RunMode: runner.RunModeLookup, App: &config.Config{}}, newTestLogger())
	assert.ErrorIs(t, err, runner.ErrInvalidRunMode)
}

func TestNew_StaticCredentials(t *testing.T) {
	t.Parallel()

	cfg := &runner.Config{
		RunMode: runner.RunModeAWSLambda,
		App: &config.Config{
			CompaniesHouse: config.CompaniesHouseConfig{APIKey: "k"},
			Export: config.ExportConfig{
				S3Bucket:           "ch-exports",
				AWSRegion:          "eu-west-2",
				AWSAccessKeyID:     "AKIDEXAMPLE",
				AWSSecretAccessKey: "secret",
			},
		},
	}

	r, err := New(context.Background(), cfg, newTestLogger())
	require.NoError(t, err)

	lr := r.(*lambdaRunner)
	require.NotNil(t, lr.exporter)
	assert.Equal(t, "ch-exports", lr.exporter.(*s3Exporter).bucket)
}
