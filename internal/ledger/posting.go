package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/gstledger/internal/model"
)

// TypeResolver maps an account name to its account type.
type TypeResolver interface {
	Resolve(name string) (model.AccountType, error)
}

// Posting is one debit/credit pair applied to the trial balance.
type Posting struct {
	Debit  string
	Credit string
	Amount decimal.Decimal
}

// Mirror returns the posting with debit and credit swapped.
func (p Posting) Mirror() Posting {
	return Posting{Debit: p.Credit, Credit: p.Debit, Amount: p.Amount}
}

func (p Posting) String() string {
	return fmt.Sprintf("Dr %s / Cr %s %s", p.Debit, p.Credit, p.Amount.StringFixed(2))
}

// Post applies p to the trial balance and returns the new trial balance.
//
// A debit to a debit-normal account increases its debit total. A debit to a
// credit-normal account reduces its credit total down to zero and carries any
// remainder onto its debit total. Credits follow the same rule with the sides
// swapped. Neither total ever goes negative and total debits stay equal to
// total credits.
func (tb TrialBalance) Post(types TypeResolver, p Posting) (TrialBalance, error) {
	debitType, err := types.Resolve(p.Debit)
	if err != nil {
		return tb, fmt.Errorf("resolving debit account: %w", err)
	}
	creditType, err := types.Resolve(p.Credit)
	if err != nil {
		return tb, fmt.Errorf("resolving credit account: %w", err)
	}

	next := tb.clone()

	d := next.line(p.Debit, debitType)
	e := next.entries[d]
	if debitType.DebitNormal() {
		e.Debit = e.Debit.Add(p.Amount)
	} else {
		e.Credit, e.Debit = drawDown(e.Credit, e.Debit, p.Amount)
	}
	next.entries[d] = e

	c := next.line(p.Credit, creditType)
	e = next.entries[c]
	if creditType.DebitNormal() {
		e.Debit, e.Credit = drawDown(e.Debit, e.Credit, p.Amount)
	} else {
		e.Credit = e.Credit.Add(p.Amount)
	}
	next.entries[c] = e

	return next, nil
}

// Reverse undoes p by posting its mirror image under the same clamp-and-spill
// rule as Post, so the trial balance stays balanced. Net balances return to
// where they started. Gross totals only do so when p itself did not spill:
// if p drove an account through zero, reversing it leaves matching debit and
// credit residue on that account.
func (tb TrialBalance) Reverse(types TypeResolver, p Posting) (TrialBalance, error) {
	return tb.Post(types, p.Mirror())
}

// PostAll applies postings in order, stopping at the first error.
func (tb TrialBalance) PostAll(types TypeResolver, postings []Posting) (TrialBalance, error) {
	next := tb
	for _, p := range postings {
		var err error
		next, err = next.Post(types, p)
		if err != nil {
			return tb, err
		}
	}
	return next, nil
}

// ReverseAll reverses postings in the opposite order they were applied.
func (tb TrialBalance) ReverseAll(types TypeResolver, postings []Posting) (TrialBalance, error) {
	next := tb
	for i := len(postings) - 1; i >= 0; i-- {
		var err error
		next, err = next.Reverse(types, postings[i])
		if err != nil {
			return tb, err
		}
	}
	return next, nil
}

// drawDown reduces from by amount, flooring at zero, and adds the overflow to spill.
func drawDown(from, spill, amount decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if from.GreaterThanOrEqual(amount) {
		return from.Sub(amount), spill
	}
	return decimal.Zero, spill.Add(amount.Sub(from))
}
