// Package ledger holds the trial balance and the posting rules that keep it
// in double-entry balance.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/gstledger/internal/model"
)

// TrialBalance is an immutable list of per-account running totals.
// Every method that changes it returns a new value and leaves the receiver untouched.
type TrialBalance struct {
	entries []model.TrialBalanceEntry
	index   map[string]int
}

// Entries returns a copy of all trial balance lines in first-use order.
func (tb TrialBalance) Entries() []model.TrialBalanceEntry {
	return append([]model.TrialBalanceEntry(nil), tb.entries...)
}

// Get returns the line for account, if it has ever been posted to.
func (tb TrialBalance) Get(account string) (model.TrialBalanceEntry, bool) {
	i, ok := tb.index[account]
	if !ok {
		return model.TrialBalanceEntry{}, false
	}
	return tb.entries[i], true
}

// Len returns the number of accounts on the trial balance.
func (tb TrialBalance) Len() int {
	return len(tb.entries)
}

// Totals returns the sum of all debit and all credit fields.
func (tb TrialBalance) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, e := range tb.entries {
		debit = debit.Add(e.Debit)
		credit = credit.Add(e.Credit)
	}
	return debit, credit
}

// Balanced reports whether total debits equal total credits.
func (tb TrialBalance) Balanced() bool {
	d, c := tb.Totals()
	return d.Equal(c)
}

func (tb TrialBalance) clone() TrialBalance {
	index := make(map[string]int, len(tb.index)+2)
	for k, v := range tb.index {
		index[k] = v
	}
	return TrialBalance{
		entries: append(make([]model.TrialBalanceEntry, 0, len(tb.entries)+2), tb.entries...),
		index:   index,
	}
}

// line returns the position of account's line, creating it if needed.
// Only call on a clone.
func (tb *TrialBalance) line(account string, accountType model.AccountType) int {
	if i, ok := tb.index[account]; ok {
		return i
	}
	tb.entries = append(tb.entries, model.TrialBalanceEntry{
		Account:     account,
		AccountType: accountType,
		Debit:       decimal.Zero,
		Credit:      decimal.Zero,
	})
	i := len(tb.entries) - 1
	tb.index[account] = i
	return i
}
