package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccountType separates bank accounts from the cash drawer.
type BankAccountType string

const (
	BankAccountBank BankAccountType = "Bank"
	BankAccountCash BankAccountType = "Cash"
)

// BankAccount is a real-world account whose balance follows Cash/Bank postings.
type BankAccount struct {
	ID      string
	Name    string
	Balance decimal.Decimal
	Type    BankAccountType
}

// TransactionKind is the direction of a mirrored bank transaction.
type TransactionKind string

const (
	TransactionDeposit    TransactionKind = "Deposit"
	TransactionWithdrawal TransactionKind = "Withdrawal"
)

// TransactionStatus mirrors the journal entry status onto the bank record.
type TransactionStatus string

const (
	TransactionCleared TransactionStatus = "Cleared"
	TransactionPending TransactionStatus = "Pending"
)

// Transaction is a bank-side mirror of a journal entry.
type Transaction struct {
	ID            string
	EntryID       string
	BankAccountID string
	Date          time.Time
	Description   string
	Reference     string
	Amount        decimal.Decimal // always positive; Type carries direction
	Type          TransactionKind
	Status        TransactionStatus
}
