package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tpgainz/companies-house/config"
	"github.com/tpgainz/companies-house/runner"
	"github.com/tpgainz/companies-house/runner/lambdaaws"
	"github.com/tpgainz/companies-house/runner/lookuprunner"
)

func main() {
	if _, err := os.Stat("/.dockerenv"); os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "warning: loading .env: %v (continuing without it)\n", err)
		}
	}

	app, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	logger := config.NewLogger(os.Stderr, app.Log)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan

		logger.Info("received signal, shutting down")

		cancel()
	}()

	cfg, err := runner.ParseConfig(app, os.Args[1:])
	if err != nil {
		cancel()
		logger.Error("invalid arguments", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.RunMode == runner.RunModeLookup && !cfg.JSON {
		runner.Banner()
	}

	runnerInstance, err := runnerFactory(ctx, cfg, logger)
	if err != nil {
		cancel()
		logger.Error("failed to create runner", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := runnerInstance.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("run failed", slog.String("error", err.Error()))

		_ = runnerInstance.Close(ctx)

		cancel()

		os.Exit(1)
	}

	_ = runnerInstance.Close(ctx)

	cancel()

	os.Exit(0)
}

func runnerFactory(ctx context.Context, cfg *runner.Config, logger *slog.Logger) (runner.Runner, error) {
	switch cfg.RunMode {
	case runner.RunModeLookup:
		return lookuprunner.New(cfg, logger)
	case runner.RunModeAWSLambda:
		return lambdaaws.New(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %d", runner.ErrInvalidRunMode, cfg.RunMode)
	}
}
