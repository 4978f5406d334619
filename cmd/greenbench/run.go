package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"greenbench/internal/benchmark"
	"greenbench/internal/config"
	"greenbench/internal/metrics"
	"greenbench/internal/telemetry"
	"greenbench/internal/workloads"
)

// Overridable in tests.
var (
	catalogFunc   = workloads.Catalog
	newRunnerFunc = func(opts ...benchmark.Option) benchmark.Runner {
		return benchmark.NewClockRunner(opts...)
	}
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [suite | suite/workload]...",
		Short: "Run workloads and print their elapsed time",
		Long: `Runs the selected suites or single workloads in the order given (all suites
when none are named) and prints "<name>: <seconds> seconds" for each.

The process exits with status 1 after printing the partial results if a
workload fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkloads(cmd, v, args)
		},
	}

	cmd.Flags().Bool("continue-on-failure", false, "Keep running after a workload fails")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics for this run to a textfile")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on host:port while running")
	bindFlags(v, cmd.Flags(), "continue-on-failure", "metrics-file", "metrics-addr")

	return cmd
}

func runWorkloads(cmd *cobra.Command, v *viper.Viper, args []string) error {
	settings := config.FromViper(v)
	if err := settings.Validate(); err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	closeLog := telemetry.InitLogger(cmd.ErrOrStderr(), settings.Verbose, settings.LogFile)
	defer closeLog()

	named, err := workloads.Resolve(catalogFunc(settings.Scale), args)
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)
	if settings.MetricsAddr != "" {
		if _, err := telemetry.StartMetricsServer(ctx, settings.MetricsAddr, reg); err != nil {
			return &ExitError{Code: ExitUsage, Err: fmt.Errorf("failed to start metrics server: %w", err)}
		}
	}

	slog.Debug("Starting run", "workloads", len(named), "scale", settings.Scale)

	lines := benchmark.NewLineReporter(cmd.OutOrStdout())
	rep := benchmark.ReporterFunc(func(res benchmark.Result) error {
		slog.Debug("Workload finished", "workload", res.Name, "seconds", res.Seconds())
		return lines.Report(res)
	})

	runner := newRunnerFunc(benchmark.WithObserver(m))
	results, runErr := benchmark.RunAll(runner, named, rep, settings.ContinueOnFailure)

	if settings.MetricsFile != "" {
		if err := metrics.WriteTextfile(settings.MetricsFile, reg); err != nil {
			slog.Error("Failed to write metrics file", "path", settings.MetricsFile, "error", err)
		}
	}

	if runErr != nil {
		var failure *benchmark.WorkloadFailure
		if errors.As(runErr, &failure) {
			slog.Error("Workload failed", "workload", failure.Name, "error", failure.Cause,
				"completed", len(results), "requested", len(named))
			return &ExitError{Code: ExitFailure, Err: runErr}
		}
		return &ExitError{Code: ExitFailure, Err: fmt.Errorf("failed to report results: %w", runErr)}
	}

	slog.Debug("Run finished", "completed", len(results))
	return nil
}
