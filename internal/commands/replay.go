package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/gstledger/internal/engine"
	"github.com/cleared-dev/gstledger/internal/journal"
	"github.com/cleared-dev/gstledger/internal/report"
	"github.com/cleared-dev/gstledger/internal/scenario"
)

// ErrUnbalanced is returned when a replay leaves debits and credits unequal.
var ErrUnbalanced = errors.New("trial balance does not balance")

func newReplayCommand(opts *rootOptions) *cobra.Command {
	var entriesPath string
	var exportDir string

	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "Replay a scenario of ledger operations and print the resulting books",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, opts)
			if err != nil {
				return err
			}

			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			en := engine.New(p.chart,
				engine.WithRouting(p.cfg.Routing()),
				engine.WithDueDays(p.cfg.Subledger.DueDays),
				engine.WithLogger(p.logger),
			)
			book := engine.NewBook(en, engine.NewState(p.cfg.Banks()), engine.LogNotifier{Logger: p.logger})
			out := cmd.OutOrStdout()

			if entriesPath != "" {
				svc := journal.NewService(exportDir, p.chart)
				entries, err := svc.Import(entriesPath)
				if err != nil {
					return err
				}
				for i, e := range entries {
					if _, err := book.AddJournalEntry(e); err != nil {
						return fmt.Errorf("entries row %d: %w", i+2, err)
					}
				}
				fmt.Fprintf(out, "Imported %d journal entries from %s\n", len(entries), entriesPath)
			}

			steps, err := scenario.Run(book, sc)
			for _, s := range steps {
				fmt.Fprintf(out, "%-13s %-12s %s\n", s.Op, s.Ref, s.Detail)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out)

			snap := book.Snapshot()
			printer := report.New(out)
			printer.Snapshot(snap)

			if exportDir != "" {
				paths, err := journal.NewService(exportDir, p.chart).Export(snap.JournalEntries)
				if err != nil {
					return err
				}
				for _, path := range paths {
					fmt.Fprintf(out, "Wrote %s\n", path)
				}
			}

			if failures := sc.Expect.Check(snap); len(failures) > 0 {
				printer.Failures(failures)
				return fmt.Errorf("%d expectation(s) not met", len(failures))
			}
			if !snap.Balanced {
				return fmt.Errorf("%w: debit %s, credit %s", ErrUnbalanced,
					snap.TotalDebit.StringFixed(2), snap.TotalCredit.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&entriesPath, "entries", "", "journal entries CSV to post before the scenario")
	cmd.Flags().StringVar(&exportDir, "export", "", "write the posted journal to per-month CSV files under this directory")

	return cmd
}
