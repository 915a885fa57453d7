// Package main implements the humanizer CLI, which rewrites the prose of Word
// documents paragraph by paragraph.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/docx-humanizer/internal/observability"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "humanizer",
	Short: "Rewrite Word documents so they read less like generated text",
	Long: `humanizer rewrites the prose of .docx documents paragraph by paragraph.

It profiles the document's style once, then runs every body and table paragraph
through a fixed sequence of randomized rewrite stages. Formatting of the first run
of each paragraph, its alignment and its style are carried over.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		logger, err = observability.NewLogger(verbose)
		return err
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
