// Package subledger keeps the invoice and bill records that track what each
// customer owes and what is owed to each supplier.
package subledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/gstledger/internal/id"
	"github.com/cleared-dev/gstledger/internal/model"
)

// Ledger is an immutable set of invoices and bills, indexed by id.
type Ledger struct {
	invoices   []model.Document
	bills      []model.Document
	invoiceIdx map[string]int
	billIdx    map[string]int
}

// Invoices returns a copy of all invoices in creation order.
func (l Ledger) Invoices() []model.Document {
	return cloneDocs(l.invoices)
}

// Bills returns a copy of all bills in creation order.
func (l Ledger) Bills() []model.Document {
	return cloneDocs(l.bills)
}

// Invoice returns the invoice with the given id.
func (l Ledger) Invoice(docID string) (model.Document, bool) {
	return find(l.invoices, l.invoiceIdx, docID)
}

// Bill returns the bill with the given id.
func (l Ledger) Bill(docID string) (model.Document, bool) {
	return find(l.bills, l.billIdx, docID)
}

// Get returns the document of the given kind.
func (l Ledger) Get(kind model.DocumentKind, docID string) (model.Document, bool) {
	if kind == model.KindBill {
		return l.Bill(docID)
	}
	return l.Invoice(docID)
}

// Add appends doc, assigning the next INV/BILL id when doc.ID is empty.
func (l Ledger) Add(doc model.Document) (Ledger, model.Document) {
	next := l.clone()
	if doc.Kind == model.KindBill {
		if doc.ID == "" {
			doc.ID = id.FormatDocumentID("BILL", len(next.bills)+1)
		}
		next.billIdx[doc.ID] = len(next.bills)
		next.bills = append(next.bills, doc)
	} else {
		doc.Kind = model.KindInvoice
		if doc.ID == "" {
			doc.ID = id.FormatDocumentID("INV", len(next.invoices)+1)
		}
		next.invoiceIdx[doc.ID] = len(next.invoices)
		next.invoices = append(next.invoices, doc)
	}
	return next, doc
}

// Decrease lowers a document's balance by amount, flooring at zero, and moves
// its status to Paid or Partially Paid. A missing document leaves the ledger
// unchanged and reports false.
func (l Ledger) Decrease(kind model.DocumentKind, docID string, amount decimal.Decimal) (Ledger, bool) {
	idx := l.invoiceIdx
	if kind == model.KindBill {
		idx = l.billIdx
	}
	i, ok := idx[docID]
	if !ok {
		return l, false
	}
	next := l.clone()
	docs := next.docs(kind)
	docs[i] = reduce(docs[i], amount)
	return next, true
}

// FirstOpen returns the id of the first Open document for party whose balance
// covers amount.
func (l Ledger) FirstOpen(kind model.DocumentKind, party string, amount decimal.Decimal) (string, bool) {
	docs := l.invoices
	if kind == model.KindBill {
		docs = l.bills
	}
	for _, d := range docs {
		if d.Party == party && d.Status == model.DocumentOpen && d.Balance.GreaterThanOrEqual(amount) {
			return d.ID, true
		}
	}
	return "", false
}

// MarkOverdue flags every unpaid document due before asOf as Overdue and
// returns the ids it changed.
func (l Ledger) MarkOverdue(asOf time.Time) (Ledger, []string) {
	next := l.clone()
	var changed []string
	for _, docs := range [][]model.Document{next.invoices, next.bills} {
		for i := range docs {
			d := &docs[i]
			if d.Status != model.DocumentOpen && d.Status != model.DocumentPartiallyPaid {
				continue
			}
			if d.DueDate.IsZero() || !d.DueDate.Before(asOf) {
				continue
			}
			d.Status = model.DocumentOverdue
			changed = append(changed, d.ID)
		}
	}
	if len(changed) == 0 {
		return l, nil
	}
	return next, changed
}

func reduce(d model.Document, amount decimal.Decimal) model.Document {
	if !amount.IsPositive() {
		return d
	}
	d.Balance = decimal.Max(d.Balance.Sub(amount), decimal.Zero)
	if d.Balance.IsZero() {
		d.Status = model.DocumentPaid
	} else {
		d.Status = model.DocumentPartiallyPaid
	}
	return d
}

func (l *Ledger) docs(kind model.DocumentKind) []model.Document {
	if kind == model.KindBill {
		return l.bills
	}
	return l.invoices
}

func (l Ledger) clone() Ledger {
	return Ledger{
		invoices:   cloneDocs(l.invoices),
		bills:      cloneDocs(l.bills),
		invoiceIdx: cloneIndex(l.invoiceIdx),
		billIdx:    cloneIndex(l.billIdx),
	}
}

func cloneIndex(idx map[string]int) map[string]int {
	out := make(map[string]int, len(idx)+1)
	for k, v := range idx {
		out[k] = v
	}
	return out
}

func cloneDocs(docs []model.Document) []model.Document {
	if docs == nil {
		return nil
	}
	out := make([]model.Document, len(docs))
	for i, d := range docs {
		d.Items = append([]model.LineItem(nil), d.Items...)
		out[i] = d
	}
	return out
}

func find(docs []model.Document, idx map[string]int, docID string) (model.Document, bool) {
	i, ok := idx[docID]
	if !ok {
		return model.Document{}, false
	}
	d := docs[i]
	d.Items = append([]model.LineItem(nil), d.Items...)
	return d, true
}
