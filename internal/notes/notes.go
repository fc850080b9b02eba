// Package notes builds the reversing journal entries for debit notes
// (purchase returns) and credit notes (sales returns).
package notes

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/gstledger/internal/model"
	"github.com/cleared-dev/gstledger/internal/tax"
)

// Builder turns notes into note-related journal entries.
type Builder struct {
	accounts tax.Accounts
}

// NewBuilder creates a Builder routing postings through accounts.
func NewBuilder(accounts tax.Accounts) *Builder {
	return &Builder{accounts: accounts}
}

// DocumentKind returns the kind of document a note is raised against.
func DocumentKind(kind model.NoteKind) model.DocumentKind {
	if kind == model.KindDebitNote {
		return model.KindBill
	}
	return model.KindInvoice
}

// Normalize fills derived fields: a missing total is base plus GST, and a
// missing status is Posted.
func Normalize(n model.Note) model.Note {
	if n.TotalAmount.IsZero() {
		n.TotalAmount = n.BaseAmount.Add(n.GSTAmount)
	}
	if n.Status == "" {
		n.Status = model.StatusPosted
	}
	return n
}

// Entries returns the journal entries for n: one base-amount reversal and,
// when GST applies, one entry per GST component. Every entry is marked
// note-related and tied to the note's party and document. IDs are left empty.
func (b *Builder) Entries(n model.Note) []model.JournalEntry {
	base := model.JournalEntry{
		Date:          n.Date,
		Reference:     n.ID,
		Status:        n.Status,
		IsNoteRelated: true,
	}

	// party is the party-side ledger account: payables for debit notes,
	// receivables for credit notes.
	var party string
	if n.Kind == model.KindDebitNote {
		party = b.accounts.Payable
		base.PartyType = model.PartySupplier
		base.CreditorSupplier = n.Party
		base.ActiveBill = n.DocumentID
	} else {
		party = b.accounts.Receivable
		base.PartyType = model.PartyCustomer
		base.DebtorCustomer = n.Party
		base.ActiveInvoice = n.DocumentID
	}

	entries := make([]model.JournalEntry, 0, 3)
	if n.BaseAmount.IsPositive() {
		e := base
		e.Amount = n.BaseAmount
		e.Description = describe(n, "goods returned")
		if n.Kind == model.KindDebitNote {
			e.DebitAccount, e.CreditAccount = party, b.accounts.PurchaseReturned
		} else {
			e.DebitAccount, e.CreditAccount = b.accounts.SalesReturned, party
		}
		entries = append(entries, e)
	}

	for _, s := range tax.Shares(n.TransactionType, n.GSTAmount) {
		e := base
		e.Amount = s.Amount
		e.TransactionType = n.TransactionType
		e.Description = describe(n, string(s.Component)+" reversal")
		if n.Kind == model.KindDebitNote {
			e.DebitAccount, e.CreditAccount = party, b.accounts.Input(s.Component)
		} else {
			e.DebitAccount, e.CreditAccount = b.accounts.Output(s.Component), party
		}
		entries = append(entries, e)
	}
	return entries
}

func describe(n model.Note, what string) string {
	if n.Reason == "" {
		return fmt.Sprintf("%s %s: %s", n.Kind, n.ID, what)
	}
	return fmt.Sprintf("%s %s: %s (%s)", n.Kind, n.ID, what, n.Reason)
}

// Total returns the sum of the amounts of entries.
func Total(entries []model.JournalEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}
