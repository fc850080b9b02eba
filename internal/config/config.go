package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/gstledger/internal/model"
	"github.com/cleared-dev/gstledger/internal/tax"
)

// FileName is the config file written by init and read by the other commands.
const FileName = "gstledger.yaml"

// DefaultChartFile is the chart of accounts path, relative to the config file.
const DefaultChartFile = "accounts/chart-of-accounts.csv"

// Config represents the top-level gstledger.yaml configuration.
type Config struct {
	Business       BusinessConfig       `yaml:"business"`
	Accounts       AccountsConfig       `yaml:"accounts"`
	Subledger      SubledgerConfig      `yaml:"subledger"`
	BankAccounts   []BankAccount        `yaml:"bank_accounts,omitempty"`
	Classification ClassificationConfig `yaml:"classification,omitempty"`
	Logging        LoggingConfig        `yaml:"logging"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name  string `yaml:"name"`
	GSTIN string `yaml:"gstin,omitempty"`
}

// AccountsConfig controls the chart of accounts.
type AccountsConfig struct {
	// Strict rejects unregistered accounts and non-positive amounts instead
	// of posting them.
	Strict    bool   `yaml:"strict"`
	ChartFile string `yaml:"chart_file"`
}

// SubledgerConfig controls invoices and bills.
type SubledgerConfig struct {
	DueDays int `yaml:"due_days"`
}

// BankAccount is a real-world account mirrored from Cash and Bank postings.
type BankAccount struct {
	ID             string          `yaml:"id"`
	Name           string          `yaml:"name"`
	Type           string          `yaml:"type"` // "Bank" or "Cash"
	OpeningBalance decimal.Decimal `yaml:"opening_balance"`
}

// ClassificationConfig overrides which account names give entries their
// meaning. Empty fields keep the defaults.
type ClassificationConfig struct {
	// CashAccounts affects GST classification only. Bank sync always
	// follows the Cash and Bank ledger accounts.
	CashAccounts      []string `yaml:"cash_accounts,omitempty"`
	InventoryAccounts []string `yaml:"inventory_accounts,omitempty"`
	Receivable        string   `yaml:"receivable,omitempty"`
	Payable           string   `yaml:"payable,omitempty"`
	SalesRevenue      string   `yaml:"sales_revenue,omitempty"`
	SalesReturned     string   `yaml:"sales_returned,omitempty"`
	PurchaseReturned  string   `yaml:"purchase_returned,omitempty"`
}

// LoggingConfig sets the log level: debug, info, warn or error.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a gstledger.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	cfg.BankAccounts = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Accounts: AccountsConfig{
			ChartFile: DefaultChartFile,
		},
		Subledger: SubledgerConfig{
			DueDays: 30,
		},
		BankAccounts: []BankAccount{
			{ID: "CASH", Name: "Cash in Hand", Type: string(model.BankAccountCash)},
			{ID: "BANK-1", Name: "Primary Bank", Type: string(model.BankAccountBank)},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks values the YAML decoder cannot.
func (c *Config) Validate() error {
	if c.Subledger.DueDays < 0 {
		return fmt.Errorf("subledger.due_days must not be negative, got %d", c.Subledger.DueDays)
	}
	seen := make(map[string]bool)
	for i, ba := range c.BankAccounts {
		if ba.ID == "" {
			return fmt.Errorf("bank_accounts[%d]: id is required", i)
		}
		if seen[ba.ID] {
			return fmt.Errorf("bank_accounts[%d]: duplicate id %q", i, ba.ID)
		}
		seen[ba.ID] = true
		switch model.BankAccountType(ba.Type) {
		case model.BankAccountBank, model.BankAccountCash:
		default:
			return fmt.Errorf("bank_accounts[%d]: type must be Bank or Cash, got %q", i, ba.Type)
		}
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// ChartPath returns the chart of accounts path. A relative chart_file is
// resolved against dir, the directory holding the config file.
func (c *Config) ChartPath(dir string) string {
	file := c.Accounts.ChartFile
	if file == "" {
		file = DefaultChartFile
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

// Banks returns the configured bank accounts with their opening balances.
func (c *Config) Banks() []model.BankAccount {
	out := make([]model.BankAccount, len(c.BankAccounts))
	for i, ba := range c.BankAccounts {
		out[i] = model.BankAccount{
			ID:      ba.ID,
			Name:    ba.Name,
			Type:    model.BankAccountType(ba.Type),
			Balance: ba.OpeningBalance,
		}
	}
	return out
}

// Routing returns the account routing with any classification overrides applied.
func (c *Config) Routing() tax.Accounts {
	r := tax.DefaultAccounts()
	cl := c.Classification
	if len(cl.CashAccounts) > 0 {
		r.Cash = cl.CashAccounts
	}
	if len(cl.InventoryAccounts) > 0 {
		r.Inventory = cl.InventoryAccounts
	}
	override(&r.Receivable, cl.Receivable)
	override(&r.Payable, cl.Payable)
	override(&r.SalesRevenue, cl.SalesRevenue)
	override(&r.SalesReturned, cl.SalesReturned)
	override(&r.PurchaseReturned, cl.PurchaseReturned)
	return r
}

// LogLevel parses the configured log level. Empty means info.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Logging.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging.level: %w", err)
	}
	return level, nil
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
