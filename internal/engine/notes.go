package engine

import (
	"fmt"
	"time"

	"github.com/cleared-dev/gstledger/internal/id"
	"github.com/cleared-dev/gstledger/internal/model"
	"github.com/cleared-dev/gstledger/internal/notes"
)

// AddDebitNote records a purchase return against a bill. The bill's balance
// drops by the note total and the reversing entries are posted as one entry
// group.
func (en *Engine) AddDebitNote(s State, n model.Note) (State, model.Note, error) {
	n.Kind = model.KindDebitNote
	return en.addNote(s, n)
}

// AddCreditNote records a sales return against an invoice. The invoice's
// balance drops by the note total and the reversing entries are posted as one
// entry group.
func (en *Engine) AddCreditNote(s State, n model.Note) (State, model.Note, error) {
	n.Kind = model.KindCreditNote
	return en.addNote(s, n)
}

func (en *Engine) addNote(s State, n model.Note) (State, model.Note, error) {
	if n.Date.IsZero() {
		n.Date = en.now()
	}
	n = notes.Normalize(n)
	if en.chart.Strict() && !n.TotalAmount.IsPositive() {
		return s, model.Note{}, fmt.Errorf("%w: note total %s", ErrInvalidAmount, n.TotalAmount)
	}

	next := s
	prefix, count := "CN", len(s.creditNotes)
	if n.Kind == model.KindDebitNote {
		prefix, count = "DN", len(s.debitNotes)
	}
	n.ID = id.FormatDocumentID(prefix, count+1)
	n.EntryIDs = nil

	docKind := notes.DocumentKind(n.Kind)
	doc, found := s.docs.Get(docKind, n.DocumentID)
	if found {
		if n.Party == "" {
			n.Party = doc.Party
		}
		if n.TotalAmount.IsPositive() {
			next.docs, _ = next.docs.Decrease(docKind, n.DocumentID, n.TotalAmount)
		}
	} else {
		en.logger.Warn("note raised against unknown document", "note", n.ID, "document", n.DocumentID)
	}

	group := next.nextEntryID(n.Date)
	for i, e := range en.notes.Entries(n) {
		e.ID = id.FormatNoteEntryID(group, i)
		var err error
		next, _, err = en.AddJournalEntry(next, e)
		if err != nil {
			return s, model.Note{}, fmt.Errorf("posting %s: %w", n.ID, err)
		}
		n.EntryIDs = append(n.EntryIDs, e.ID)
	}

	if n.Kind == model.KindDebitNote {
		next.debitNotes = append(cloneNotes(s.debitNotes), n)
	} else {
		next.creditNotes = append(cloneNotes(s.creditNotes), n)
	}
	en.logger.Debug("recorded note",
		"id", n.ID,
		"kind", string(n.Kind),
		"document", n.DocumentID,
		"total", n.TotalAmount.String(),
		"entries", len(n.EntryIDs),
	)
	return next, n, nil
}

// MarkOverdue flags unpaid invoices and bills due before asOf as Overdue and
// returns the ids it changed.
func (en *Engine) MarkOverdue(s State, asOf time.Time) (State, []string) {
	docs, changed := s.docs.MarkOverdue(asOf)
	if len(changed) == 0 {
		return s, nil
	}
	next := s
	next.docs = docs
	en.logger.Debug("marked documents overdue", "as_of", asOf.Format(time.DateOnly), "count", len(changed))
	return next, changed
}
