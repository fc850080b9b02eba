package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/gstledger/internal/accounts"
	"github.com/cleared-dev/gstledger/internal/config"
)

func newInitCommand() *cobra.Command {
	var name string
	var gstin string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledger project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, name, gstin); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized GST ledger for %s at %s\n", name, absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&gstin, "gstin", "", "GST identification number")

	return cmd
}

func runInit(dir, name, gstin string) error {
	for _, d := range []string{"accounts", "scenarios", "journal"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	// Write gstledger.yaml.
	cfg := config.Default(name)
	cfg.Business.GSTIN = gstin
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write chart of accounts.
	chart, err := accounts.NewRegistry(accounts.DefaultChart())
	if err != nil {
		return err
	}
	if err := chart.Save(cfg.ChartPath(dir)); err != nil {
		return err
	}

	// Write a starter scenario.
	if err := os.WriteFile(filepath.Join(dir, "scenarios", "example.yaml"), []byte(exampleScenario), 0o644); err != nil {
		return fmt.Errorf("writing example scenario: %w", err)
	}
	return nil
}

const exampleScenario = `name: First sale
operations:
  - op: add_entry
    entry:
      description: Sale to first customer
      debit: Accounts Receivable
      credit: Sales Revenue
      amount: 10000
      status: Posted
      transaction_type: CGST-SGST
      gst_percentage: 18
      party_type: Customer
      party: CUST-1
  - op: add_entry
    entry:
      description: Payment received
      debit: Bank
      credit: Accounts Receivable
      amount: 11800
      status: Posted
      party_type: Customer
      party: CUST-1
      invoice: INV-0001
      bank_account: BANK-1
expect:
  balanced: true
  invoices:
    INV-0001:
      balance: 0
      status: Paid
`
