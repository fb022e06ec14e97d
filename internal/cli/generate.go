package cli

import (
	"bufio"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/spf13/cobra"

	benford "github.com/maxgfr/benford-law"
	"github.com/maxgfr/benford-law/internal/dataset"
	"github.com/maxgfr/benford-law/internal/report"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		seed    int64
		analyze bool
	)

	cmd := &cobra.Command{
		Use:   "generate <count>",
		Short: "Print Benford-distributed numbers, one per line",
		Long: `Print count numbers drawn log-uniformly from [1, 1000).

Their leading digits follow Benford's Law, so the output can be piped straight
into "benford analyze -". Use --seed for reproducible samples, and --analyze
to print the analysis of the sample instead of the numbers.`,
		Example: `  benford generate 50000 | benford analyze -
  benford generate 1000 --seed 42 > sample.txt
  benford generate 50000 --analyze --format markdown`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[0], benford.ErrInvalidLength)
			}
			count, err := benford.ValidateLength(n)
			if err != nil {
				return err
			}

			var numbers []float64
			if cmd.Flags().Changed("seed") {
				numbers, err = benford.NewGenerator(rand.NewSource(seed)).Numbers(count)
			} else {
				numbers, err = benford.GenerateNumbers(count)
			}
			if err != nil {
				return err
			}

			if analyze {
				ds := &dataset.Dataset{Source: "generated", Numbers: numbers}
				results, err := a.newAnalyzer().AnalyzeDatasets(cmd.Context(), []*dataset.Dataset{ds})
				if err != nil {
					return err
				}
				rw, err := report.New(a.cfg.Format, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				return a.write(rw, results)
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			buf := make([]byte, 0, 32)
			for _, x := range numbers {
				buf = strconv.AppendFloat(buf[:0], x, 'g', -1, 64)
				buf = append(buf, '\n')
				if _, err := w.Write(buf); err != nil {
					return err
				}
			}

			a.logger.Debug("generated numbers", "count", count)
			return w.Flush()
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for a reproducible sample")
	cmd.Flags().BoolVar(&analyze, "analyze", false, "analyze the sample and print the report")

	return cmd
}
