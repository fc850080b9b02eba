package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/gstledger/internal/report"
)

func newChartCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Print the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(cmd, opts)
			if err != nil {
				return err
			}
			report.New(cmd.OutOrStdout()).Chart(p.chart.All())
			return nil
		},
	}
}
