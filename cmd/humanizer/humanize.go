package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/docx-humanizer/internal/config"
	"github.com/jonathan/docx-humanizer/internal/observability"
	"github.com/jonathan/docx-humanizer/internal/pipeline"
	"github.com/jonathan/docx-humanizer/internal/schemas"
)

var humanizeCmd = &cobra.Command{
	Use:   "humanize",
	Short: "Humanize every paragraph of a .docx document",
	Long: `Profiles the document's writing style from its first non-empty paragraphs,
then rewrites every body paragraph followed by every table cell paragraph.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runHumanize,
}

var (
	humanizeInputFile        string
	humanizeOutputFile       string
	humanizeConfigPath       string
	humanizeReportFile       string
	humanizeSeed             int64
	humanizeSampleParagraphs int
	humanizeProgressInterval int
)

func init() {
	humanizeCmd.Flags().StringVar(&humanizeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	humanizeCmd.Flags().StringVarP(&humanizeInputFile, "in", "i", "", "Path to input .docx document (required)")
	humanizeCmd.Flags().StringVarP(&humanizeOutputFile, "out", "o", "", "Path to output .docx document (default "+pipeline.DefaultOutputPath+")")
	humanizeCmd.Flags().StringVar(&humanizeReportFile, "report", "", "Path to write the JSON run report")
	humanizeCmd.Flags().Int64Var(&humanizeSeed, "seed", 0, "Seed for a reproducible run (defaults to "+config.SeedEnvVar+" env var)")
	humanizeCmd.Flags().IntVar(&humanizeSampleParagraphs, "sample", 0, "Number of non-empty paragraphs used for the style profile")
	humanizeCmd.Flags().IntVar(&humanizeProgressInterval, "progress-every", 0, "Paragraphs between progress lines")

	if err := humanizeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(humanizeCmd)
}

func runHumanize(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(humanizeConfigPath)
	if err != nil {
		return err
	}

	// Apply CLI overrides; only override if the flag was explicitly set
	if cmd.Flags().Changed("out") {
		cfg.Output = humanizeOutputFile
	}
	if cmd.Flags().Changed("report") {
		cfg.Report = humanizeReportFile
	}
	if cmd.Flags().Changed("sample") {
		cfg.SampleParagraphs = humanizeSampleParagraphs
	}
	if cmd.Flags().Changed("progress-every") {
		cfg.ProgressInterval = humanizeProgressInterval
	}
	cfg = cfg.MergeWithDefaults(config.Config{
		Output:           pipeline.DefaultOutputPath,
		SampleParagraphs: pipeline.DefaultSampleParagraphs,
		ProgressInterval: pipeline.DefaultProgressInterval,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed, err := resolveSeed(cmd.Flags().Changed("seed"), humanizeSeed, cfg)
	if err != nil {
		return err
	}

	report, err := pipeline.RunDocument(context.Background(), pipeline.RunOptions{
		InputPath:        humanizeInputFile,
		OutputPath:       cfg.Output,
		SampleParagraphs: cfg.SampleParagraphs,
		ProgressInterval: cfg.ProgressInterval,
		Seed:             seed,
		Logger:           logger,
		OnProgress:       printProgress,
	})
	if err != nil {
		return fmt.Errorf("failed to humanize document: %w", err)
	}

	if verbose || cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRunReport(report)
	}

	if cfg.Report != "" {
		if err := writeJSONArtifact(cfg.Report, schemas.ReportSchemaPath, report); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Processed %d tables\n", report.Tables)
	_, _ = fmt.Fprintf(os.Stdout, "Successfully humanized %d paragraphs\n", report.TotalParagraphs())
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", report.OutputPath)
	return nil
}

// printProgress writes periodic progress lines. The profile and save steps are
// only shown in verbose mode.
func printProgress(event pipeline.ProgressEvent) {
	switch {
	case event.Step == pipeline.StepParagraphs && event.Processed > 0:
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", event.Message)
	case verbose:
		_, _ = fmt.Fprintf(os.Stdout, "[%s] %s\n", event.Step, event.Message)
	}
}
