package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/docx-humanizer/internal/config"
	"github.com/jonathan/docx-humanizer/internal/observability"
	"github.com/jonathan/docx-humanizer/internal/rewriting"
	"github.com/jonathan/docx-humanizer/internal/types"
	"github.com/jonathan/docx-humanizer/internal/voice"
)

var textCmd = &cobra.Command{
	Use:   "text [paragraph]",
	Short: "Humanize a single paragraph of plain text",
	Long: `Runs one paragraph through the rewrite stages and prints the result.
The paragraph is read from the argument, or from stdin when no argument is given.
Unless --formality or --contractions is set, preferences are profiled from the text itself.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runText,
}

var (
	textSeed         int64
	textFormality    string
	textContractions string
)

func init() {
	textCmd.Flags().Int64Var(&textSeed, "seed", 0, "Seed for a reproducible rewrite (defaults to "+config.SeedEnvVar+" env var)")
	textCmd.Flags().StringVar(&textFormality, "formality", "", "Formality preference: formal or casual")
	textCmd.Flags().StringVar(&textContractions, "contractions", "", "Contraction density: high or low")

	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	var input string
	if len(args) == 1 {
		input = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		input = strings.TrimRight(string(data), "\r\n")
	}

	prefs, err := textPreferences(input)
	if err != nil {
		return err
	}

	seed, err := resolveSeed(cmd.Flags().Changed("seed"), textSeed, config.Config{})
	if err != nil {
		return err
	}
	var rng rewriting.Rand
	if seed != nil {
		rng = rewriting.NewSeededRand(uint64(*seed))
	}

	result := rewriting.New(rng).Rewrite(input, prefs)

	if verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintRewrite(input, result.Text, result.Reverted)
		return nil
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Text)
	return nil
}

func textPreferences(input string) (types.StylePreferences, error) {
	if textFormality == "" && textContractions == "" {
		return voice.Analyze(input), nil
	}

	var prefs types.StylePreferences
	switch types.Formality(textFormality) {
	case types.FormalityUnset, types.FormalityFormal, types.FormalityCasual:
		prefs.Formality = types.Formality(textFormality)
	default:
		return prefs, fmt.Errorf("invalid --formality %q: must be formal or casual", textFormality)
	}
	switch types.ContractionDensity(textContractions) {
	case types.ContractionsUnset, types.ContractionsHigh, types.ContractionsLow:
		prefs.ContractionDensity = types.ContractionDensity(textContractions)
	default:
		return prefs, fmt.Errorf("invalid --contractions %q: must be high or low", textContractions)
	}
	return prefs, nil
}
