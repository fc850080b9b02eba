package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus represents the lifecycle state of a journal entry.
type EntryStatus string

const (
	StatusDraft    EntryStatus = "Draft"
	StatusPosted   EntryStatus = "Posted"
	StatusPending  EntryStatus = "Pending"
	StatusRejected EntryStatus = "Rejected"
)

// TransactionType selects how GST is split across sub-accounts.
type TransactionType string

const (
	TransactionNone     TransactionType = ""
	TransactionCGSTSGST TransactionType = "CGST-SGST"
	TransactionIGST     TransactionType = "IGST"
)

// PartyType identifies the counterparty side of an entry.
type PartyType string

const (
	PartyNone     PartyType = ""
	PartyCustomer PartyType = "Customer"
	PartySupplier PartyType = "Supplier"
)

// JournalEntry is one debit/credit pair submitted by a caller.
type JournalEntry struct {
	ID               string
	Date             time.Time
	Description      string
	DebitAccount     string
	CreditAccount    string
	Amount           decimal.Decimal
	Reference        string
	Status           EntryStatus
	TransactionType  TransactionType
	GSTPercentage    decimal.Decimal // zero = no GST
	PartyType        PartyType
	DebtorCustomer   string // customer id when PartyType is Customer
	CreditorSupplier string // supplier id when PartyType is Supplier
	ActiveInvoice    string
	ActiveBill       string
	BankAccount      string
	IsNoteRelated    bool
}

// Party returns the counterparty id for the entry's party type.
func (e JournalEntry) Party() string {
	switch e.PartyType {
	case PartyCustomer:
		return e.DebtorCustomer
	case PartySupplier:
		return e.CreditorSupplier
	default:
		return ""
	}
}

// GSTAmount returns amount * gstPercentage / 100 rounded to the paisa,
// or zero when no GST applies.
func (e JournalEntry) GSTAmount() decimal.Decimal {
	if !e.GSTPercentage.IsPositive() {
		return decimal.Zero
	}
	return e.Amount.Mul(e.GSTPercentage).Div(decimal.NewFromInt(100)).Round(2)
}

// JournalEntryPatch carries the fields to change on an existing entry.
// Nil fields are left unchanged.
type JournalEntryPatch struct {
	Date             *time.Time
	Description      *string
	DebitAccount     *string
	CreditAccount    *string
	Amount           *decimal.Decimal
	Reference        *string
	Status           *EntryStatus
	TransactionType  *TransactionType
	GSTPercentage    *decimal.Decimal
	PartyType        *PartyType
	DebtorCustomer   *string
	CreditorSupplier *string
	ActiveInvoice    *string
	ActiveBill       *string
	BankAccount      *string
}

// Apply returns a copy of e with the patch's non-nil fields set.
func (p JournalEntryPatch) Apply(e JournalEntry) JournalEntry {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.DebitAccount != nil {
		e.DebitAccount = *p.DebitAccount
	}
	if p.CreditAccount != nil {
		e.CreditAccount = *p.CreditAccount
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Reference != nil {
		e.Reference = *p.Reference
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.TransactionType != nil {
		e.TransactionType = *p.TransactionType
	}
	if p.GSTPercentage != nil {
		e.GSTPercentage = *p.GSTPercentage
	}
	if p.PartyType != nil {
		e.PartyType = *p.PartyType
	}
	if p.DebtorCustomer != nil {
		e.DebtorCustomer = *p.DebtorCustomer
	}
	if p.CreditorSupplier != nil {
		e.CreditorSupplier = *p.CreditorSupplier
	}
	if p.ActiveInvoice != nil {
		e.ActiveInvoice = *p.ActiveInvoice
	}
	if p.ActiveBill != nil {
		e.ActiveBill = *p.ActiveBill
	}
	if p.BankAccount != nil {
		e.BankAccount = *p.BankAccount
	}
	return e
}
