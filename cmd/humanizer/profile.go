package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/docx-humanizer/internal/docx"
	"github.com/jonathan/docx-humanizer/internal/observability"
	"github.com/jonathan/docx-humanizer/internal/pipeline"
	"github.com/jonathan/docx-humanizer/internal/schemas"
	"github.com/jonathan/docx-humanizer/internal/voice"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the style profile the humanizer would derive for a document",
	Long:  "Reads the first non-empty body paragraphs of a .docx document and prints the sentence statistics and the formality and contraction preferences derived from them. Nothing is rewritten.",
	RunE:  runProfile,
}

var (
	profileInputFile        string
	profileOutputFile       string
	profileSampleParagraphs int
)

func init() {
	profileCmd.Flags().StringVarP(&profileInputFile, "in", "i", "", "Path to input .docx document (required)")
	profileCmd.Flags().StringVarP(&profileOutputFile, "out", "o", "", "Path to write the StyleProfile JSON")
	profileCmd.Flags().IntVar(&profileSampleParagraphs, "sample", pipeline.DefaultSampleParagraphs, "Number of non-empty paragraphs to sample")

	if err := profileCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(profileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
	doc, err := docx.Open(profileInputFile)
	if err != nil {
		return err
	}

	sample := voice.NewSampleBuilder(profileSampleParagraphs)
	for _, p := range doc.Paragraphs() {
		if sample.Full() {
			break
		}
		sample.Add(p.Text())
	}
	profile := voice.Profile(sample.String())

	observability.NewPrinter(os.Stdout).PrintStyleProfile(&profile)

	if profileOutputFile != "" {
		if err := writeJSONArtifact(profileOutputFile, schemas.StyleProfileSchemaPath, profile); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote style profile to %s\n", profileOutputFile)
	}
	return nil
}
