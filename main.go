package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"weather-report/cli"
	"weather-report/config"
	apperrors "weather-report/errors"
	"weather-report/logger"
	"weather-report/report"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return apperrors.ExitFailure
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		log.Warnw("Ignoring LOG_LEVEL", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg, os.Stdout)
	cmd := cli.NewRootCommand(app)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		log.Debugw("Run failed", "error", err)
		report.NewErrorReporter(os.Stdout, app.Style).Report(err)
		return apperrors.ExitCode(err)
	}
	return apperrors.ExitOK
}
