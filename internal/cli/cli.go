package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/scratchrank/internal/analyzer"
	"github.com/pfrederiksen/scratchrank/internal/config"
	"github.com/pfrederiksen/scratchrank/internal/logger"
	"github.com/pfrederiksen/scratchrank/internal/report"
	"github.com/pfrederiksen/scratchrank/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagOutput  string
	flagDataDir string
	flagFormat  string
	flagDelay   time.Duration
	flagVerbose bool
	flagDryRun  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scratchrank",
		Short: "Rank NC Lottery scratch-offs by prize differential",
		Long: `Fetches the NC Lottery scratch-off listings, ranks games by prize
differential (top-tier remaining% minus bottom-tier remaining%), and
writes a static HTML report plus a rankings.json snapshot.
Intended to run as a daily scheduled job.`,
		RunE:          runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagOutput, "output", "", "Report file name (default from config: index.html)")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Directory for the report and JSON snapshot (default \".\")")
	cmd.Flags().StringVar(&flagFormat, "format", string(FormatHTML), "Output format: html or json")
	cmd.Flags().DurationVar(&flagDelay, "delay", 0, "Pacing delay before each detail-page fetch (default 500ms)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Run the pipeline without writing any files")

	return cmd
}

// runGenerate is the main command logic
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("output") {
		cfg.ReportName = flagOutput
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = flagDataDir
	}
	if cmd.Flags().Changed("delay") {
		cfg.Delay = flagDelay
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	if cfg.Verbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatHTML && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'html' or 'json')", flagFormat)
	}

	logger.Info("starting run", logger.Fields{
		"base_url": cfg.BaseURL,
		"data_dir": cfg.DataDir,
		"format":   string(format),
		"dry_run":  flagDryRun,
	})

	entries, err := analyzer.New(cfg).Run(cmd.Context())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		// The one fatal outcome besides an unreachable listing
		return fmt.Errorf("no games ranked")
	}

	generatedAt := time.Now().UTC()
	logger.Add("games.ranked", int64(len(entries)))

	if format == FormatJSON {
		if err := writeSnapshotJSON(cmd.OutOrStdout(), storage.NewSnapshot(entries, generatedAt)); err != nil {
			return fmt.Errorf("writing rankings: %w", err)
		}
		logger.Info("run complete", logger.StatsSummary())
		return nil
	}

	html, err := report.Render(entries, generatedAt)
	if err != nil {
		return err
	}

	if flagDryRun {
		logger.Info("dry run, skipping writes", logger.Fields{"games": len(entries)})
		logger.Info("run complete", logger.StatsSummary())
		return nil
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	reportPath, err := store.WriteReport(cfg.ReportName, html)
	if err != nil {
		return err
	}
	snapshotPath, err := store.WriteSnapshot(entries, generatedAt)
	if err != nil {
		return err
	}

	logger.Info("report written", logger.Fields{
		"report":   reportPath,
		"snapshot": snapshotPath,
		"games":    len(entries),
	})
	logger.Info("run complete", logger.StatsSummary())
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
