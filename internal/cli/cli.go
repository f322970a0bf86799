package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/parkrun-tools/milestones/internal/config"
	"github.com/parkrun-tools/milestones/internal/filter"
	"github.com/parkrun-tools/milestones/internal/logger"
	"github.com/parkrun-tools/milestones/internal/milestone"
	"github.com/parkrun-tools/milestones/internal/report"
	"github.com/parkrun-tools/milestones/internal/results"
	"github.com/parkrun-tools/milestones/internal/series"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var (
	flagConfig      string
	flagLocation    string
	flagEventsLimit int
	flagTimeout     int
	flagFormat      string
	flagFilter      string
	flagSave        bool
	flagDataDir     string
	flagPlain       bool
	flagProgress    bool
	flagVerbose     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parkrun-milestones",
		Short: "Find parkrunners about to reach a milestone",
		Long: `A CLI tool that walks recent parkrun results backward from the latest
event and reports every finisher whose next run lands on a milestone
(25, 50, 100, 250 or 500 runs, 10 for juniors).`,
		Version: Version,
		RunE:    runScan,
	}

	// Define flags
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config file (or set MILESTONES_CONFIG)")
	cmd.Flags().StringVar(&flagLocation, "location", "cytadela", "Event series to scan: cytadela or lasdebinski")
	cmd.Flags().IntVar(&flagEventsLimit, "events-limit", 5, "How many events to walk back through")
	cmd.Flags().IntVar(&flagTimeout, "timeout", 30, "Per-request timeout in seconds")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagFilter, "filter", "", "Filter expression, e.g. 'milestone:50,100 juniors'")
	cmd.Flags().BoolVar(&flagSave, "save", false, "Archive the report to the data directory")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "~/.parkrun-milestones", "Directory for archived reports")
	cmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable styled output")
	cmd.Flags().BoolVar(&flagProgress, "progress", false, "Show a progress bar on stderr")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runScan is the main command logic
func runScan(cmd *cobra.Command, args []string) error {
	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	flt, err := filter.Parse(flagFilter)
	if err != nil {
		return fmt.Errorf("parsing filter: %w", err)
	}

	// Layer configuration, then let explicitly set flags win
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("location") {
		cfg.Location = flagLocation
	}
	if flags.Changed("events-limit") {
		cfg.EventsLimit = flagEventsLimit
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = flagTimeout
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = flagDataDir
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Logs go to stderr so stdout stays parseable
	level, _ := logger.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	location, err := series.ParseLocation(cfg.Location)
	if err != nil {
		return err
	}

	logger.Info("Starting milestone scan", logger.Fields{
		"location":     string(location),
		"events_limit": cfg.EventsLimit,
	})

	client := results.NewClient(results.Options{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout(),
	})
	scanner := milestone.NewScanner(client, milestone.NewClassifier(cfg.Thresholds()))

	var bar *progressbar.ProgressBar
	if flagProgress {
		bar = newProgressBar(cfg.EventsLimit)
	}
	scanner.Progress = func(eventID, celebrants int) {
		logger.IncrCounter("scan.events")
		logger.Debug("Scanned event page", logger.Fields{
			"event_id":   eventID,
			"qualifying": celebrants,
		})
		if bar != nil {
			bar.Add(1) // nolint:errcheck
		}
	}

	start := time.Now()
	scan, err := scanner.Scan(cmd.Context(), location, cfg.EventsLimit)
	if bar != nil {
		bar.Finish() // nolint:errcheck
	}
	if err != nil {
		logger.Error("Scan failed", logger.Fields{"location": string(location)}, err)
		return err
	}
	logger.RecordTiming("scan.duration", time.Since(start))
	logger.SetGauge("scan.celebrants", float64(len(scan.Celebrants)))

	celebrants := flt.Apply(scan.Celebrants)
	if !flt.IsEmpty() {
		logger.Info("Applied filter", logger.Fields{
			"filter": flt.String(),
			"before": len(scan.Celebrants),
			"after":  len(celebrants),
		})
	}

	rep := report.New(location, scan.LatestEventID, scan.EventsScanned, celebrants)

	// Archive the report before printing it
	if flagSave {
		store, err := report.NewStorage(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("initializing report storage: %w", err)
		}
		if err := store.Save(rep); err != nil {
			return fmt.Errorf("archiving report: %w", err)
		}
		logger.Info("Report archived", logger.Fields{"path": store.Path(location)})
	}

	logger.Debug("Scan metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})

	// Write output
	if err := WriteOutput(os.Stdout, rep, format, flagPlain); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
