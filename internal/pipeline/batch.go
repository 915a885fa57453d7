package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/docx-humanizer/internal/types"
)

// DefaultConcurrency is the number of documents processed at once in a batch
const DefaultConcurrency = 4

// BatchOptions holds configuration for processing several documents
type BatchOptions struct {
	Inputs           []string
	OutputDir        string
	Concurrency      int
	SampleParagraphs int
	ProgressInterval int
	// Seed, when set, seeds document i with Seed+i.
	Seed       *int64
	Logger     *zap.Logger
	OnProgress ProgressCallback
}

// BatchOutputPath returns where RunBatch writes the humanized copy of input.
func BatchOutputPath(outputDir, input string) string {
	return filepath.Join(outputDir, filepath.Base(input))
}

// RunBatch humanizes every input concurrently. Each document gets its own
// style profile and random source. The first failure cancels the remaining work.
func RunBatch(ctx context.Context, opts BatchOptions) ([]*types.RunReport, error) {
	if len(opts.Inputs) == 0 {
		return nil, fmt.Errorf("no input documents")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	if err := checkBatchOutputs(opts.OutputDir, opts.Inputs); err != nil {
		return nil, err
	}

	reports := make([]*types.RunReport, len(opts.Inputs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, input := range opts.Inputs {
		var seed *int64
		if opts.Seed != nil {
			s := *opts.Seed + int64(i)
			seed = &s
		}

		g.Go(func() error {
			report, err := RunDocument(gCtx, RunOptions{
				InputPath:        input,
				OutputPath:       BatchOutputPath(opts.OutputDir, input),
				SampleParagraphs: opts.SampleParagraphs,
				ProgressInterval: opts.ProgressInterval,
				Seed:             seed,
				Logger:           opts.Logger.With(zap.String("input", input)),
				OnProgress:       opts.OnProgress,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// checkBatchOutputs rejects batches where two inputs share an output path or
// where an output would overwrite its own input.
func checkBatchOutputs(outputDir string, inputs []string) error {
	seen := make(map[string]string, len(inputs))
	for _, input := range inputs {
		out, err := filepath.Abs(BatchOutputPath(outputDir, input))
		if err != nil {
			return fmt.Errorf("failed to resolve output path for %s: %w", input, err)
		}
		in, err := filepath.Abs(input)
		if err != nil {
			return fmt.Errorf("failed to resolve input path %s: %w", input, err)
		}
		if out == in {
			return fmt.Errorf("output for %s would overwrite the input; choose a different output directory", input)
		}
		if prev, ok := seen[out]; ok {
			return fmt.Errorf("inputs %s and %s would both be written to %s", prev, input, out)
		}
		seen[out] = input
	}
	return nil
}
