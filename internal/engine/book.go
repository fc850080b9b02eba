package engine

import (
	"fmt"
	"time"

	"github.com/cleared-dev/gstledger/internal/model"
)

// Book owns the current State and replaces it wholesale after each successful
// operation. Every operation reports its outcome to the notifier. A Book is
// not safe for concurrent use.
type Book struct {
	engine   *Engine
	state    State
	notifier Notifier
}

// NewBook creates a Book starting from s. A nil notifier discards notifications.
func NewBook(en *Engine, s State, notifier Notifier) *Book {
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}
	return &Book{engine: en, state: s, notifier: notifier}
}

// State returns the current state.
func (b *Book) State() State {
	return b.state
}

// Snapshot returns a copy of every collection in the current state.
func (b *Book) Snapshot() Snapshot {
	return b.state.Snapshot()
}

// AddJournalEntry adds and posts e.
func (b *Book) AddJournalEntry(e model.JournalEntry) (Result, error) {
	next, res, err := b.engine.AddJournalEntry(b.state, e)
	if err != nil {
		b.fail("add_entry", "Failed to add journal entry", err)
		return Result{}, err
	}
	b.state = next
	b.ok("add_entry", fmt.Sprintf("Journal entry %s added", res.Entry.ID))
	return res, nil
}

// UpdateJournalEntry patches the entry with the given id and reposts it.
func (b *Book) UpdateJournalEntry(entryID string, patch model.JournalEntryPatch) (Result, error) {
	next, res, err := b.engine.UpdateJournalEntry(b.state, entryID, patch)
	if err != nil {
		b.fail("update_entry", fmt.Sprintf("Failed to update journal entry %s", entryID), err)
		return Result{}, err
	}
	b.state = next
	b.ok("update_entry", fmt.Sprintf("Journal entry %s updated", entryID))
	return res, nil
}

// DeleteJournalEntry removes the entry with the given id.
func (b *Book) DeleteJournalEntry(entryID string) error {
	next, _, err := b.engine.DeleteJournalEntry(b.state, entryID)
	if err != nil {
		b.fail("delete_entry", fmt.Sprintf("Failed to delete journal entry %s", entryID), err)
		return err
	}
	b.state = next
	b.ok("delete_entry", fmt.Sprintf("Journal entry %s deleted", entryID))
	return nil
}

// AddDebitNote records a debit note.
func (b *Book) AddDebitNote(n model.Note) (model.Note, error) {
	next, note, err := b.engine.AddDebitNote(b.state, n)
	if err != nil {
		b.fail("debit_note", "Failed to add debit note", err)
		return model.Note{}, err
	}
	b.state = next
	b.ok("debit_note", fmt.Sprintf("Debit note %s added", note.ID))
	return note, nil
}

// AddCreditNote records a credit note.
func (b *Book) AddCreditNote(n model.Note) (model.Note, error) {
	next, note, err := b.engine.AddCreditNote(b.state, n)
	if err != nil {
		b.fail("credit_note", "Failed to add credit note", err)
		return model.Note{}, err
	}
	b.state = next
	b.ok("credit_note", fmt.Sprintf("Credit note %s added", note.ID))
	return note, nil
}

// MarkOverdue flags unpaid documents due before asOf.
func (b *Book) MarkOverdue(asOf time.Time) []string {
	var changed []string
	b.state, changed = b.engine.MarkOverdue(b.state, asOf)
	b.ok("mark_overdue", fmt.Sprintf("%d documents marked overdue", len(changed)))
	return changed
}

func (b *Book) ok(op, msg string) {
	b.notifier.Notify(Notification{Level: LevelSuccess, Operation: op, Message: msg})
}

func (b *Book) fail(op, msg string, err error) {
	b.notifier.Notify(Notification{Level: LevelError, Operation: op, Message: msg, Err: err})
}
