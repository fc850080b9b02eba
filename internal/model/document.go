package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatus is the settlement state of an invoice or bill.
type DocumentStatus string

const (
	DocumentOpen          DocumentStatus = "Open"
	DocumentPaid          DocumentStatus = "Paid"
	DocumentOverdue       DocumentStatus = "Overdue"
	DocumentPartiallyPaid DocumentStatus = "Partially Paid"
)

// DocumentKind distinguishes receivables from payables.
type DocumentKind string

const (
	KindInvoice DocumentKind = "Invoice"
	KindBill    DocumentKind = "Bill"
)

// LineItem is one priced line on a document or note.
type LineItem struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	TaxRate     decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// Document is an Invoice (receivable, Party is a customer) or a Bill
// (payable, Party is a supplier).
type Document struct {
	ID      string
	Kind    DocumentKind
	Party   string
	Date    time.Time
	DueDate time.Time
	Amount  decimal.Decimal
	Balance decimal.Decimal
	Status  DocumentStatus
	Items   []LineItem
	EntryID string // journal entry that created the document
}

// Settled reports whether nothing remains to be paid.
func (d Document) Settled() bool {
	return d.Status == DocumentPaid
}

// NoteKind distinguishes purchase returns from sales returns.
type NoteKind string

const (
	KindDebitNote  NoteKind = "Debit Note"
	KindCreditNote NoteKind = "Credit Note"
)

// Note is a Debit Note (purchase return against a Bill) or a Credit Note
// (sales return against an Invoice).
type Note struct {
	ID              string
	Kind            NoteKind
	DocumentID      string
	Party           string
	Date            time.Time
	Reason          string
	Items           []LineItem
	BaseAmount      decimal.Decimal
	GSTAmount       decimal.Decimal
	TotalAmount     decimal.Decimal
	TransactionType TransactionType
	Status          EntryStatus
	EntryIDs        []string // journal entries generated for the note
}
