// Command teammatch matches players to teams from a dataset file and prints
// the preference lists, team rankings and final rosters.
//
// Usage:
//
//	teammatch -data league.txt [-config teammatch.yaml] [-v] [-metrics-out metrics.prom]
//
// Defaults for -config and -data are read from TEAMMATCH_CONFIG and
// TEAMMATCH_DATA, which may be set in a .env file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	teammatching "github.com/philipjlin/TeamMatching"
	"github.com/philipjlin/TeamMatching/internal/logging"
	"github.com/philipjlin/TeamMatching/source"
)

const (
	exitOK = iota
	exitPartial
	exitError
)

const (
	envConfig = "TEAMMATCH_CONFIG"
	envData   = "TEAMMATCH_DATA"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	envFile    string
	configPath string
	dataPath   string
	verbose    bool
	metricsOut string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	flags := flag.NewFlagSet("teammatch", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.envFile, "env", ".env", "Path to an optional .env file")
	flags.StringVar(&opts.configPath, "config", "", "Path to YAML configuration (default $"+envConfig+")")
	flags.StringVar(&opts.dataPath, "data", "", "Path to dataset: .txt, .yaml, .json, optionally .zst (default $"+envData+")")
	flags.BoolVar(&opts.verbose, "v", false, "Log every round and proposal")
	flags.StringVar(&opts.metricsOut, "metrics-out", "", "Write Prometheus metrics to this file after the run")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	if err := loadEnv(opts.envFile); err != nil {
		return opts, err
	}
	if opts.configPath == "" {
		opts.configPath = os.Getenv(envConfig)
	}
	if opts.dataPath == "" {
		opts.dataPath = os.Getenv(envData)
	}
	if opts.dataPath == "" {
		return opts, fmt.Errorf("no dataset: pass -data or set %s", envData)
	}

	return opts, nil
}

// loadEnv loads a .env file without overriding variables already set.
// A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	return nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "teammatch:", err)

		return exitError
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewText(stderr, level)

	cfg := teammatching.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := teammatching.LoadConfig(opts.configPath)
		if err != nil {
			logger.Error("failed to load config", "path", opts.configPath, "error", err)
			return exitError
		}
		cfg = *loaded
	}

	src, err := source.NewFile(opts.dataPath)
	if err != nil {
		logger.Error("unsupported dataset", "path", opts.dataPath, "error", err)
		return exitError
	}

	reg := prometheus.NewRegistry()
	matcher, err := teammatching.NewMatcher(&cfg, src,
		teammatching.WithLogger(logger),
		teammatching.WithPrometheus(reg),
	)
	if err != nil {
		logger.Error("failed to create matcher", "error", err)
		return exitError
	}

	result, runErr := matcher.Run(ctx)
	if result == nil {
		logger.Error("matching failed", "error", runErr)
		return exitError
	}

	report := newReport(stdout)
	report.preferences(matcher.PlayerPreferences())
	report.rankings(matcher.TeamRankings())
	report.rounds(result)
	report.rosters(result)
	report.summary(result)

	if opts.metricsOut != "" {
		if err := prometheus.WriteToTextfile(opts.metricsOut, reg); err != nil {
			logger.Error("failed to write metrics", "path", opts.metricsOut, "error", err)
			return exitError
		}
	}

	switch {
	case runErr == nil:
		return exitOK
	case errors.Is(runErr, teammatching.ErrUnstableMatching):
		logger.Error("matching is not stable", "error", runErr)
		return exitError
	default:
		logger.Warn("matching is partial", "error", runErr)
		return exitPartial
	}
}
