// Package main provides the porttrack CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nclports/porttrack/pkg/porttrack"
	"github.com/nclports/porttrack/pkg/porttrack/config"
)

var (
	verbose   bool
	outputDir string
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := &cobra.Command{
		Use:   "porttrack",
		Short: "Scrape Port of Newcastle statistics and vessel movements",
		Long: `porttrack retrieves the Port of Newcastle monthly statistics workbook
and the Newcastle Harbour daily vessel movements table from their
published NSW Transport sources and normalizes them into JSON.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help and fail, matching the
			// original CLI behavior.
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging")
	rootCmd.SilenceErrors = true

	monthlyCmd := &cobra.Command{
		Use:   "monthly",
		Short: "Run the monthly data scraper",
		Args:  cobra.NoArgs,
		RunE:  runMonthly,
	}
	monthlyCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for JSON files (default: data/monthly)")

	dailyCmd := &cobra.Command{
		Use:   "daily",
		Short: "Run the daily movements scraper",
		Args:  cobra.NoArgs,
		RunE:  runDaily,
	}

	rootCmd.AddCommand(monthlyCmd)
	rootCmd.AddCommand(dailyCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "\nInterrupted by user")
			return 130
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func setupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	})
}

func runMonthly(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir := outputDir
	if dir == "" {
		dir = cfg.OutputDir
	}
	log.Info().Str("output", dir).Msg("Running monthly scraper")

	if err := porttrack.RunMonthly(cmd.Context(), cfg, dir); err != nil {
		return fmt.Errorf("monthly scraper failed: %w", err)
	}

	fmt.Printf("Monthly data saved to %s\n", dir)
	return nil
}

func runDaily(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	movements, err := porttrack.RunDaily(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("daily scraper failed: %w", err)
	}

	fmt.Printf("Found %d vessel movements:\n", len(movements))
	for i, m := range movements {
		fmt.Printf("  %d. %s\n", i+1, m)
	}
	return nil
}
