package scenario

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/gstledger/internal/engine"
	"github.com/cleared-dev/gstledger/internal/model"
)

// Expectations describe the state a scenario should end in. Anything left
// out is not checked.
type Expectations struct {
	Balanced     *bool                          `yaml:"balanced,omitempty"`
	Accounts     map[string]AccountExpectation  `yaml:"accounts,omitempty"`
	Invoices     map[string]DocumentExpectation `yaml:"invoices,omitempty"`
	Bills        map[string]DocumentExpectation `yaml:"bills,omitempty"`
	BankAccounts map[string]decimal.Decimal     `yaml:"bank_accounts,omitempty"`
	Transactions *int                           `yaml:"transactions,omitempty"`
}

// AccountExpectation is the expected debit and credit totals of a trial balance line.
type AccountExpectation struct {
	Debit  *decimal.Decimal `yaml:"debit,omitempty"`
	Credit *decimal.Decimal `yaml:"credit,omitempty"`
}

// DocumentExpectation is the expected balance and status of an invoice or bill.
type DocumentExpectation struct {
	Balance *decimal.Decimal `yaml:"balance,omitempty"`
	Status  string           `yaml:"status,omitempty"`
}

// Check compares snap against the expectations and returns one message per
// mismatch, in a stable order.
func (x *Expectations) Check(snap engine.Snapshot) []string {
	if x == nil {
		return nil
	}
	var failures []string
	failf := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	if x.Balanced != nil && *x.Balanced != snap.Balanced {
		failf("balanced: want %t, got %t (debit %s, credit %s)",
			*x.Balanced, snap.Balanced, snap.TotalDebit.StringFixed(2), snap.TotalCredit.StringFixed(2))
	}

	lines := make(map[string]model.TrialBalanceEntry, len(snap.TrialBalance))
	for _, l := range snap.TrialBalance {
		lines[l.Account] = l
	}
	for _, name := range sortedKeys(x.Accounts) {
		want := x.Accounts[name]
		got := lines[name]
		checkAmount(failf, "account "+name+" debit", want.Debit, got.Debit)
		checkAmount(failf, "account "+name+" credit", want.Credit, got.Credit)
	}

	checkDocuments(failf, "invoice", x.Invoices, snap.Invoices)
	checkDocuments(failf, "bill", x.Bills, snap.Bills)

	balances := make(map[string]decimal.Decimal, len(snap.BankAccounts))
	for _, a := range snap.BankAccounts {
		balances[a.ID] = a.Balance
	}
	for _, id := range sortedKeys(x.BankAccounts) {
		want := x.BankAccounts[id]
		got, ok := balances[id]
		if !ok {
			failf("bank account %s: not found", id)
			continue
		}
		checkAmount(failf, "bank account "+id+" balance", &want, got)
	}

	if x.Transactions != nil && *x.Transactions != len(snap.Transactions) {
		failf("transactions: want %d, got %d", *x.Transactions, len(snap.Transactions))
	}
	return failures
}

func checkDocuments(failf func(string, ...any), kind string, want map[string]DocumentExpectation, docs []model.Document) {
	byID := make(map[string]model.Document, len(docs))
	for _, d := range docs {
		byID[d.ID] = d
	}
	for _, id := range sortedKeys(want) {
		w := want[id]
		got, ok := byID[id]
		if !ok {
			failf("%s %s: not found", kind, id)
			continue
		}
		checkAmount(failf, kind+" "+id+" balance", w.Balance, got.Balance)
		if w.Status != "" && w.Status != string(got.Status) {
			failf("%s %s status: want %q, got %q", kind, id, w.Status, got.Status)
		}
	}
}

func checkAmount(failf func(string, ...any), what string, want *decimal.Decimal, got decimal.Decimal) {
	if want != nil && !want.Equal(got) {
		failf("%s: want %s, got %s", what, want.StringFixed(2), got.StringFixed(2))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
