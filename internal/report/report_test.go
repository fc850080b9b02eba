package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cleared-dev/gstledger/internal/accounts"
	"github.com/cleared-dev/gstledger/internal/engine"
	"github.com/cleared-dev/gstledger/internal/model"
)

func TestTrialBalance(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).TrialBalance(engine.Snapshot{
		TrialBalance: []model.TrialBalanceEntry{
			{Account: "Accounts Receivable", AccountType: model.AccountTypeAsset, Debit: decimal.NewFromInt(118000)},
			{Account: "Sales Revenue", AccountType: model.AccountTypeRevenue, Credit: decimal.NewFromInt(118000)},
		},
		TotalDebit:  decimal.NewFromInt(118000),
		TotalCredit: decimal.NewFromInt(118000),
		Balanced:    true,
	})

	out := buf.String()
	assert.Contains(t, out, "TRIAL BALANCE")
	assert.Contains(t, out, "Accounts Receivable")
	assert.Contains(t, out, "118000.00")
	assert.Contains(t, out, "[BALANCED]")
	assert.NotContains(t, out, "\x1b[", "no styling when writing to a buffer")
}

func TestTrialBalanceUnbalanced(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).TrialBalance(engine.Snapshot{
		TrialBalance: []model.TrialBalanceEntry{{Account: "Cash", AccountType: model.AccountTypeAsset, Debit: decimal.NewFromInt(1)}},
		TotalDebit:   decimal.NewFromInt(1),
	})
	assert.Contains(t, buf.String(), "[UNBALANCED!]")
}

func TestEmptySections(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Snapshot(engine.Snapshot{})

	out := buf.String()
	assert.Equal(t, 5, strings.Count(out, "(none)"))
	assert.NotContains(t, out, "CREDIT NOTES")
}

func TestDocumentsAndTransactions(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	p.Documents("INVOICES", []model.Document{{
		ID:      "INV-0001",
		Party:   "CUST-1",
		Date:    time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		DueDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Amount:  decimal.NewFromInt(118000),
		Balance: decimal.NewFromInt(68000),
		Status:  model.DocumentPartiallyPaid,
	}})
	p.Transactions([]model.Transaction{{
		EntryID:       "2025-04-002",
		BankAccountID: "BANK-1",
		Date:          time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		Type:          model.TransactionDeposit,
		Amount:        decimal.NewFromInt(50000),
		Status:        model.TransactionCleared,
		Description:   "Part payment",
	}})

	out := buf.String()
	assert.Contains(t, out, "INV-0001")
	assert.Contains(t, out, "2025-05-01")
	assert.Contains(t, out, "68000.00")
	assert.Contains(t, out, "Partially Paid")
	assert.Contains(t, out, "Deposit")
	assert.Contains(t, out, "Part payment")
}

func TestChart(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Chart(accounts.DefaultChart())

	out := buf.String()
	assert.Contains(t, out, "CHART OF ACCOUNTS")
	assert.Regexp(t, `1100\s+Accounts Receivable\s+Asset\s+Debit`, out)
	assert.Regexp(t, `2110\s+CGST Output\s+Liability\s+Credit`, out)
}

func TestFailures(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Failures([]string{"invoice INV-0001 balance: want 1.00, got 2.00"})
	assert.Equal(t, "FAIL invoice INV-0001 balance: want 1.00, got 2.00\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
