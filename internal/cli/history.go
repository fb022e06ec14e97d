package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/maxgfr/benford-law/internal/history"
	"github.com/maxgfr/benford-law/internal/report"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded analyses",
		Long: `Inspect analyses recorded with "benford analyze --history" (or
history.enabled: true in the config file).`,
	}

	cmd.AddCommand(newHistoryListCmd(a))
	cmd.AddCommand(newHistoryShowCmd(a))

	return cmd
}

func newHistoryListCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded analyses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			store, err := history.Open(cmd.Context(), a.cfg.History.Path)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No analyses recorded.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATE\tSOURCE\tNUMBERS\tTHRESHOLD\tVERDICT")
			for _, e := range entries {
				verdict := "✗ non-conformant"
				if e.Conformant {
					verdict = "✓ conformant"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.4f\t%s\n",
					e.ID,
					e.CreatedAt.Local().Format(time.DateTime),
					e.Source,
					e.SampleSize,
					e.Threshold,
					verdict)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum entries to show, 0 for all")

	return cmd
}

func newHistoryShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a recorded analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			store, err := history.Open(cmd.Context(), a.cfg.History.Path)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entry, err := store.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			w, err := report.New(a.cfg.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return w.Write(entry.Result)
		},
	}
}
