package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/docx-humanizer/internal/docx"
	"github.com/jonathan/docx-humanizer/internal/observability"
	"github.com/jonathan/docx-humanizer/internal/schemas"
	"github.com/jonathan/docx-humanizer/internal/validation"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List the telltale phrases left in a .docx document",
	Long:  "Scans every non-empty body and table paragraph for the stock phrases, corporate jargon and doubled words that the humanizer rewrites. Useful before and after a humanize run.",
	RunE:  runScan,
}

var (
	scanInputFile  string
	scanOutputFile string
	scanFailOnHit  bool
)

func init() {
	scanCmd.Flags().StringVarP(&scanInputFile, "in", "i", "", "Path to input .docx document (required)")
	scanCmd.Flags().StringVarP(&scanOutputFile, "out", "o", "", "Path to write the Violations JSON")
	scanCmd.Flags().BoolVar(&scanFailOnHit, "fail", false, "Exit with an error when any phrase is found")

	if err := scanCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	doc, err := docx.Open(scanInputFile)
	if err != nil {
		return err
	}

	result := validation.ScanDocument(doc)
	result.InputPath = scanInputFile

	observability.NewPrinter(os.Stdout).PrintViolations(result)

	if scanOutputFile != "" {
		if err := writeJSONArtifact(scanOutputFile, schemas.ViolationsSchemaPath, result); err != nil {
			return err
		}
	}

	if scanFailOnHit && len(result.Violations) > 0 {
		return fmt.Errorf("found %d telltale phrases", len(result.Violations))
	}
	return nil
}
