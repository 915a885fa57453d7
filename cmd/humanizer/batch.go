package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/jonathan/docx-humanizer/internal/config"
	"github.com/jonathan/docx-humanizer/internal/observability"
	"github.com/jonathan/docx-humanizer/internal/pipeline"
	"github.com/jonathan/docx-humanizer/internal/schemas"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.docx>...",
	Short: "Humanize several .docx documents concurrently",
	Long: `Humanizes each document independently, writing each result under --out-dir
with the input's file name. Every document gets its own style profile. With a seed,
document i is seeded with seed+i so that the whole batch is reproducible.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

var (
	batchOutputDir   string
	batchConfigPath  string
	batchReportDir   string
	batchConcurrency int
	batchSeed        int64
)

func init() {
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	batchCmd.Flags().StringVarP(&batchOutputDir, "out-dir", "o", "", "Directory for humanized documents")
	batchCmd.Flags().StringVar(&batchReportDir, "report-dir", "", "Directory for per-document JSON run reports")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 0, fmt.Sprintf("Documents processed at once (default %d)", pipeline.DefaultConcurrency))
	batchCmd.Flags().Int64Var(&batchSeed, "seed", 0, "Base seed for a reproducible batch (defaults to "+config.SeedEnvVar+" env var)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(batchConfigPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("out-dir") {
		cfg.OutputDir = batchOutputDir
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency = batchConcurrency
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("an output directory is required (use --out-dir or out_dir in the config file)")
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	seed, err := resolveSeed(cmd.Flags().Changed("seed"), batchSeed, cfg)
	if err != nil {
		return err
	}

	// Progress callbacks arrive from several documents at once
	var mu sync.Mutex
	onProgress := func(event pipeline.ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		printProgress(event)
	}

	reports, err := pipeline.RunBatch(context.Background(), pipeline.BatchOptions{
		Inputs:           args,
		OutputDir:        cfg.OutputDir,
		Concurrency:      cfg.Concurrency,
		SampleParagraphs: cfg.SampleParagraphs,
		ProgressInterval: cfg.ProgressInterval,
		Seed:             seed,
		Logger:           logger,
		OnProgress:       onProgress,
	})
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	if batchReportDir != "" {
		for _, report := range reports {
			name := strings.TrimSuffix(filepath.Base(report.InputPath), filepath.Ext(report.InputPath)) + ".report.json"
			if err := writeJSONArtifact(filepath.Join(batchReportDir, name), schemas.ReportSchemaPath, report); err != nil {
				return err
			}
		}
	}

	observability.NewPrinter(os.Stdout).PrintBatchSummary(reports)
	return nil
}
