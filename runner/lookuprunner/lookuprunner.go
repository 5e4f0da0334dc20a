// Package lookuprunner runs lookups from the command line and prints the
// results to stdout.
package lookuprunner

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tpgainz/companies-house/companieshouse"
	"github.com/tpgainz/companies-house/runner"
)

type lookupRunner struct {
	cfg    *runner.Config
	client *companieshouse.Client
	out    io.Writer
	width  int
	log    *slog.Logger
}

// Option customises the runner, mainly for tests.
type Option func(*lookupRunner)

// WithOutput replaces stdout.
func WithOutput(w io.Writer, width int) Option {
	return func(r *lookupRunner) {
		r.out = w
		r.width = width
	}
}

// WithClient replaces the client built from configuration.
func WithClient(ch *companieshouse.Client) Option {
	return func(r *lookupRunner) { r.client = ch }
}

func New(cfg *runner.Config, logger *slog.Logger, opts ...Option) (runner.Runner, error) {
	if cfg.RunMode != runner.RunModeLookup {
		return nil, fmt.Errorf("%w: %d", runner.ErrInvalidRunMode, cfg.RunMode)
	}

	if err := cfg.App.CompaniesHouse.RequireAPIKey(); err != nil {
		return nil, err
	}

	r := &lookupRunner{
		cfg: cfg,
		out: os.Stdout,
		log: logger.With("runner", "lookup"),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.client == nil {
		r.client = companieshouse.NewFromConfig(cfg.App.CompaniesHouse, logger)
	}

	if r.width == 0 && !cfg.JSON {
		r.width = runner.TerminalWidth(0)
	}

	return r, nil
}

func (r *lookupRunner) Run(ctx context.Context) error {
	requests, err := r.requests()
	if err != nil {
		return err
	}

	failed := 0
	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := r.lookup(ctx, req); err != nil {
			failed++
			r.log.ErrorContext(ctx, "lookup failed",
				slog.String("resource", req.Resource),
				slog.String("subject", req.Subject()),
				slog.String("error", err.Error()),
			)
		}
	}

	if failed > 0 {
		if len(requests) == 1 {
			return fmt.Errorf("%s %s: lookup failed", requests[0].Resource, requests[0].Subject())
		}
		return fmt.Errorf("%d of %d lookups failed", failed, len(requests))
	}

	return nil
}

func (r *lookupRunner) Close(context.Context) error {
	return nil
}

func (r *lookupRunner) requests() ([]runner.Request, error) {
	if r.cfg.InputFile == "" {
		return []runner.Request{r.cfg.Request}, nil
	}

	f, err := os.Open(r.cfg.InputFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return runner.ReadRequests(f, r.cfg.Request)
}

func (r *lookupRunner) lookup(ctx context.Context, req runner.Request) error {
	r.log.DebugContext(ctx, "lookup", slog.String("resource", req.Resource), slog.String("subject", req.Subject()))

	result, err := runner.Lookup(ctx, r.client, req)
	if err != nil {
		return err
	}

	if r.cfg.JSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	tables, err := tablesFor(result)
	if err != nil {
		return err
	}

	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(r.out); err != nil {
				return err
			}
		}
		if err := t.write(r.out, r.width); err != nil {
			return err
		}
	}

	return nil
}
