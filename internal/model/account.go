package model

import "github.com/shopspring/decimal"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeEquity    AccountType = "Equity"
	AccountTypeRevenue   AccountType = "Revenue"
	AccountTypeExpense   AccountType = "Expense"
)

// AllAccountTypes lists the account types in chart order.
var AllAccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeExpense,
}

// Valid reports whether t is one of the five account types.
func (t AccountType) Valid() bool {
	for _, at := range AllAccountTypes {
		if at == t {
			return true
		}
	}
	return false
}

// Side is the side of the ledger an account naturally increases on.
type Side string

const (
	SideDebit  Side = "Debit"
	SideCredit Side = "Credit"
)

// NormalSide returns the normal balance side for the account type.
// Assets and Expenses are debit-normal; Liabilities, Equity, and Revenue are credit-normal.
func (t AccountType) NormalSide() Side {
	switch t {
	case AccountTypeAsset, AccountTypeExpense:
		return SideDebit
	default:
		return SideCredit
	}
}

// DebitNormal reports whether the account type increases on the debit side.
func (t AccountType) DebitNormal() bool {
	return t.NormalSide() == SideDebit
}

// Account represents a row in chart-of-accounts.csv.
type Account struct {
	Code        int
	Name        string
	Type        AccountType
	Description string
}

// TrialBalanceEntry holds the gross running totals for one account.
// Both fields are non-negative; an account may carry both after a posting
// that swings it past zero.
type TrialBalanceEntry struct {
	Account     string
	AccountType AccountType
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// Net returns the balance on the account's normal side (may be negative).
func (e TrialBalanceEntry) Net() decimal.Decimal {
	if e.AccountType.DebitNormal() {
		return e.Debit.Sub(e.Credit)
	}
	return e.Credit.Sub(e.Debit)
}
