package cli

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxgfr/benford-law/internal/batch"
	"github.com/maxgfr/benford-law/internal/dataset"
	"github.com/maxgfr/benford-law/internal/history"
	"github.com/maxgfr/benford-law/internal/report"
)

// referenceTolerance is how far a reference override may sum from 1
// before a warning is logged.
const referenceTolerance = 1e-3

type analyzeOptions struct {
	skipInvalid         bool
	failOnNonconformant bool
	save                string
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze [file...]",
		Short: "Check datasets against Benford's Law",
		Long: `Read numbers from each file ("-" or no argument for standard input) and
compare their leading digits with the Benford distribution.

Numbers may be separated by whitespace, commas or semicolons. Lines starting
with # are ignored. A dataset conforms when every digit deviates from the
expected probability by less than the threshold.`,
		Example: `  benford analyze invoices.txt
  benford analyze --threshold 0.02 --format markdown q1.csv q2.csv
  benford generate 50000 | benford analyze --exact -
  benford analyze --save results.jsonl ledger.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{dataset.StdinName}
			}
			return a.runAnalyze(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64("threshold", 0.01, "maximum deviation per digit, in (0, 1)")
	flags.Bool("exact", false, "compare with log10(1+1/d) instead of the rounded table")
	flags.Int("workers", batch.DefaultWorkers, "datasets analyzed concurrently")
	flags.Bool("history", false, "record results in the history database")
	flags.BoolVar(&opts.skipInvalid, "skip-invalid", false, "drop unparsable tokens instead of failing")
	flags.BoolVar(&opts.failOnNonconformant, "fail-on-nonconformant", false, "exit with status 2 if any dataset does not conform")
	flags.StringVar(&opts.save, "save", "", "also append results as JSON lines to this file")

	a.bind("threshold", flags.Lookup("threshold"))
	a.bind("exact", flags.Lookup("exact"))
	a.bind("workers", flags.Lookup("workers"))
	a.bind("history.enabled", flags.Lookup("history"))

	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, paths []string, opts analyzeOptions) error {
	ctx := cmd.Context()

	analyzer := a.newAnalyzer(
		batch.WithReadOptions(dataset.Options{SkipInvalid: opts.skipInvalid}),
		batch.WithStdin(cmd.InOrStdin()),
	)

	results, err := analyzer.AnalyzeFiles(ctx, paths)
	if err != nil {
		return err
	}

	w, err := report.New(a.cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if opts.save != "" {
		f, err := os.OpenFile(opts.save, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // user-provided output path
		if err != nil {
			return fmt.Errorf("open save file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = report.NewMultiWriter(w, report.NewJSONWriter(f))
	}

	if err := a.write(w, results); err != nil {
		return err
	}

	if a.cfg.History.Enabled {
		if err := a.record(ctx, results); err != nil {
			return err
		}
	}

	if opts.failOnNonconformant {
		for _, result := range results {
			if !result.Report.IsFollowingBenfordLaw {
				return fmt.Errorf("%s: %w", result.Source, ErrNonConformant)
			}
		}
	}
	return nil
}

// newAnalyzer builds a batch analyzer from the loaded configuration.
func (a *app) newAnalyzer(opts ...batch.Option) *batch.Analyzer {
	cfg := a.cfg.AnalysisConfig()
	if cfg.Reference != nil {
		if sum := cfg.Reference.Sum(); math.Abs(sum-1) > referenceTolerance {
			a.logger.Warn("reference distribution does not sum to 1", "sum", sum)
		}
	}

	opts = append([]batch.Option{
		batch.WithWorkers(a.cfg.Workers),
		batch.WithLogger(a.logger),
	}, opts...)
	return batch.New(cfg, opts...)
}

// write outputs results in order.
func (a *app) write(w report.Writer, results []*report.Result) error {
	for _, result := range results {
		if result.Skipped > 0 {
			a.logger.Warn("skipped invalid tokens", "source", result.Source, "count", result.Skipped)
		}
		if err := w.Write(result); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// record saves results to the history database.
func (a *app) record(ctx context.Context, results []*report.Result) (err error) {
	store, err := history.Open(ctx, a.cfg.History.Path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close history: %w", closeErr)
		}
	}()

	for _, result := range results {
		id, err := store.Save(ctx, result)
		if err != nil {
			return err
		}
		a.logger.Info("recorded analysis", "id", id, "source", result.Source, "db", store.Path())
	}
	return nil
}
