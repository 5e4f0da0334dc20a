// Package lambdaaws serves lookups as an AWS Lambda function. Each invocation
// performs one lookup and, when an export bucket is configured, also stores
// the result in S3.
package lambdaaws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/tpgainz/companies-house/companieshouse"
	"github.com/tpgainz/companies-house/runner"
)

// exporter stores a serialised result and returns where it went.
type exporter interface {
	Export(ctx context.Context, resource, subject string, body []byte) (string, error)
}

// Response is returned to the Lambda caller.
type Response struct {
	Resource  string          `json:"resource"`
	Subject   string          `json:"subject"`
	Result    json.RawMessage `json:"result"`
	ExportKey string          `json:"export_key,omitempty"`
}

type lambdaRunner struct {
	client   *companieshouse.Client
	exporter exporter
	log      *slog.Logger
}

func New(ctx context.Context, cfg *runner.Config, logger *slog.Logger) (runner.Runner, error) {
	if cfg.RunMode != runner.RunModeAWSLambda {
		return nil, fmt.Errorf("%w: %d", runner.ErrInvalidRunMode, cfg.RunMode)
	}

	if err := cfg.App.CompaniesHouse.RequireAPIKey(); err != nil {
		return nil, err
	}

	r := &lambdaRunner{
		client: companieshouse.NewFromConfig(cfg.App.CompaniesHouse, logger),
		log:    logger.With("runner", "lambda"),
	}

	if cfg.App.Export.Enabled() {
		exp, err := newS3Exporter(ctx, cfg.App.Export)
		if err != nil {
			return nil, err
		}
		r.exporter = exp
	}

	return r, nil
}

func (r *lambdaRunner) Run(ctx context.Context) error {
	lambda.StartWithOptions(r.handler, lambda.WithContext(ctx))

	return nil
}

func (r *lambdaRunner) Close(context.Context) error {
	return nil
}

func (r *lambdaRunner) handler(ctx context.Context, req runner.Request) (Response, error) {
	log := r.log.With(slog.String("resource", req.Resource), slog.String("subject", req.Subject()))

	result, err := runner.Lookup(ctx, r.client, req)
	if err != nil {
		log.ErrorContext(ctx, "lookup failed", slog.String("error", err.Error()))
		return Response{}, err
	}

	body, err := json.Marshal(result)
	if err != nil {
		return Response{}, fmt.Errorf("lambdaaws: encode result: %w", err)
	}

	resp := Response{
		Resource: req.Resource,
		Subject:  req.Subject(),
		Result:   body,
	}

	if r.exporter != nil {
		key, err := r.exporter.Export(ctx, req.Resource, req.Subject(), body)
		if err != nil {
			log.ErrorContext(ctx, "export failed", slog.String("error", err.Error()))
			return Response{}, err
		}
		resp.ExportKey = key
		log.InfoContext(ctx, "result exported", slog.String("key", key))
	}

	return resp, nil
}
