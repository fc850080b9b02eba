package subledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/gstledger/internal/model"
	"github.com/cleared-dev/gstledger/internal/tax"
)

// Action describes what the reconciler did with an entry.
type Action string

const (
	ActionNone    Action = ""
	ActionCreated Action = "created"
	ActionReduced Action = "reduced"
	ActionMissed  Action = "missed" // target document not found
)

// Effect is the sub-ledger outcome of one journal entry.
type Effect struct {
	Action     Action
	Kind       model.DocumentKind
	DocumentID string
	Amount     decimal.Decimal
}

// Reconciler derives invoices and bills from postings and applies payments
// and returns against them.
type Reconciler struct {
	accounts tax.Accounts
	dueDays  int
}

// NewReconciler creates a Reconciler. dueDays sets the due date of new
// documents relative to the entry date.
func NewReconciler(accounts tax.Accounts, dueDays int) *Reconciler {
	return &Reconciler{accounts: accounts, dueDays: dueDays}
}

// Apply reconciles e against the ledger. Entries without a party, and entries
// generated by debit or credit notes, are ignored.
func (r *Reconciler) Apply(l Ledger, e model.JournalEntry, kind tax.Kind) (Ledger, Effect) {
	if e.IsNoteRelated || e.PartyType == model.PartyNone || e.Party() == "" {
		return l, Effect{}
	}

	customer := e.PartyType == model.PartyCustomer
	supplier := e.PartyType == model.PartySupplier

	switch {
	case kind == tax.KindSale && customer && e.DebitAccount == r.accounts.Receivable:
		return r.create(l, model.KindInvoice, e)
	case kind == tax.KindPurchase && supplier && e.CreditAccount == r.accounts.Payable:
		return r.create(l, model.KindBill, e)
	case kind == tax.KindReceivablePayment && customer:
		return r.pay(l, model.KindInvoice, e.ActiveInvoice, e.Party(), e.Amount)
	case kind == tax.KindPayablePayment && supplier:
		return r.pay(l, model.KindBill, e.ActiveBill, e.Party(), e.Amount)
	case kind == tax.KindSalesReturn && customer && e.ActiveInvoice != "":
		return decrease(l, model.KindInvoice, e.ActiveInvoice, e.Amount.Add(e.GSTAmount()))
	case kind == tax.KindPurchaseReturn && supplier && e.ActiveBill != "":
		return decrease(l, model.KindBill, e.ActiveBill, e.Amount.Add(e.GSTAmount()))
	}
	return l, Effect{}
}

func (r *Reconciler) create(l Ledger, kind model.DocumentKind, e model.JournalEntry) (Ledger, Effect) {
	gst := e.GSTAmount()
	total := e.Amount.Add(gst)
	doc := model.Document{
		Kind:    kind,
		Party:   e.Party(),
		Date:    e.Date,
		DueDate: e.Date.AddDate(0, 0, r.dueDays),
		Amount:  total,
		Balance: total,
		Status:  model.DocumentOpen,
		Items: []model.LineItem{{
			Description: e.Description,
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   e.Amount,
			TaxRate:     e.GSTPercentage,
			Tax:         gst,
			Total:       total,
		}},
		EntryID: e.ID,
	}
	next, doc := l.Add(doc)
	return next, Effect{Action: ActionCreated, Kind: kind, DocumentID: doc.ID, Amount: total}
}

func (r *Reconciler) pay(l Ledger, kind model.DocumentKind, target, party string, amount decimal.Decimal) (Ledger, Effect) {
	if target == "" {
		var ok bool
		target, ok = l.FirstOpen(kind, party, amount)
		if !ok {
			return l, Effect{Action: ActionMissed, Kind: kind, Amount: amount}
		}
	}
	return decrease(l, kind, target, amount)
}

func decrease(l Ledger, kind model.DocumentKind, target string, amount decimal.Decimal) (Ledger, Effect) {
	next, ok := l.Decrease(kind, target, amount)
	if !ok {
		return l, Effect{Action: ActionMissed, Kind: kind, DocumentID: target, Amount: amount}
	}
	return next, Effect{Action: ActionReduced, Kind: kind, DocumentID: target, Amount: amount}
}
