package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/gstledger/internal/model"
	"github.com/cleared-dev/gstledger/internal/tax"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Traders")
	cfg.Business.GSTIN = "27AAPFU0939F1ZV"
	cfg.Accounts.Strict = true
	cfg.BankAccounts[1].OpeningBalance = decimal.RequireFromString("25000.50")
	cfg.Classification.CashAccounts = []string{"Cash", "Bank", "Petty Cash"}

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Traders", got.Business.Name)
	assert.Equal(t, "27AAPFU0939F1ZV", got.Business.GSTIN)
	assert.True(t, got.Accounts.Strict)
	assert.Equal(t, DefaultChartFile, got.Accounts.ChartFile)
	assert.Equal(t, 30, got.Subledger.DueDays)
	require.Len(t, got.BankAccounts, 2)
	assert.Equal(t, "BANK-1", got.BankAccounts[1].ID)
	assert.True(t, got.BankAccounts[1].OpeningBalance.Equal(decimal.RequireFromString("25000.5")))
	assert.Equal(t, []string{"Cash", "Bank", "Petty Cash"}, got.Classification.CashAccounts)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Company")

	assert.Equal(t, "My Company", cfg.Business.Name)
	assert.False(t, cfg.Accounts.Strict)
	assert.Equal(t, "accounts/chart-of-accounts.csv", cfg.Accounts.ChartFile)
	assert.Equal(t, 30, cfg.Subledger.DueDays)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.Len(t, cfg.BankAccounts, 2)
	assert.Equal(t, "Cash", cfg.BankAccounts[0].Type)
	assert.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	yml := `business:
  name: Minimal
bank_accounts:
  - id: HDFC
    name: HDFC Current
    type: Bank
    opening_balance: 1000
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultChartFile, cfg.Accounts.ChartFile)
	assert.Equal(t, 30, cfg.Subledger.DueDays)
	require.Len(t, cfg.BankAccounts, 1)

	banks := cfg.Banks()
	assert.Equal(t, model.BankAccountBank, banks[0].Type)
	assert.True(t, banks[0].Balance.Equal(decimal.NewFromInt(1000)))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(c *Config)
		want string
	}{
		{"negative due days", func(c *Config) { c.Subledger.DueDays = -1 }, "due_days"},
		{"missing id", func(c *Config) { c.BankAccounts[0].ID = "" }, "id is required"},
		{"duplicate id", func(c *Config) { c.BankAccounts[1].ID = "CASH" }, "duplicate id"},
		{"bad type", func(c *Config) { c.BankAccounts[0].Type = "Wallet" }, "type must be Bank or Cash"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default("x")
			tt.edit(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestChartPath(t *testing.T) {
	cfg := Default("x")
	assert.Equal(t, filepath.Join("/books", "accounts", "chart-of-accounts.csv"), cfg.ChartPath("/books"))

	cfg.Accounts.ChartFile = "/etc/chart.csv"
	assert.Equal(t, "/etc/chart.csv", cfg.ChartPath("/books"))
}

func TestRouting(t *testing.T) {
	cfg := Default("x")
	assert.Equal(t, tax.DefaultAccounts(), cfg.Routing())

	cfg.Classification.Receivable = "Trade Debtors"
	cfg.Classification.InventoryAccounts = []string{"Stock"}
	r := cfg.Routing()
	assert.Equal(t, "Trade Debtors", r.Receivable)
	assert.Equal(t, []string{"Stock"}, r.Inventory)
	assert.Equal(t, tax.DefaultAccounts().Payable, r.Payable)
}

func TestLogLevel(t *testing.T) {
	cfg := Default("x")
	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	cfg.Logging.Level = "debug"
	level, err = cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Biz")
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Biz")
	assert.Contains(t, contents, "strict: false")
	assert.Contains(t, contents, "chart_file: accounts/chart-of-accounts.csv")
	assert.Contains(t, contents, "due_days: 30")
	assert.NotContains(t, contents, "classification")
}
