package engine

import (
	"fmt"

	"github.com/cleared-dev/gstledger/internal/bank"
	"github.com/cleared-dev/gstledger/internal/ledger"
	"github.com/cleared-dev/gstledger/internal/model"
	"github.com/cleared-dev/gstledger/internal/subledger"
	"github.com/cleared-dev/gstledger/internal/tax"
)

// Result reports what one journal entry did to the ledger.
type Result struct {
	Entry     model.JournalEntry
	Kind      tax.Kind
	Postings  []ledger.Posting
	Document  subledger.Effect
	Movements []bank.Movement
}

// AddJournalEntry posts e and its GST splits to the trial balance, reconciles
// it against invoices and bills, and mirrors any cash or bank movement.
// An entry without an ID gets the next id for its month.
func (en *Engine) AddJournalEntry(s State, e model.JournalEntry) (State, Result, error) {
	if e.ID != "" {
		if _, ok := s.entryIdx[e.ID]; ok {
			return s, Result{}, fmt.Errorf("%w: %s", ErrDuplicateEntry, e.ID)
		}
	}
	e = en.defaults(e)
	if err := en.validate(e); err != nil {
		return s, Result{}, err
	}

	next := s
	if e.ID == "" {
		e.ID = next.nextEntryID(e.Date)
	}
	next, res, err := en.apply(next, e)
	if err != nil {
		return s, Result{}, err
	}

	if !e.IsNoteRelated {
		docs, effect := en.reconciler.Apply(next.docs, e, res.Kind)
		next.docs = docs
		res.Document = effect
		en.logEffect(e, effect)
	}
	return next, res, nil
}

// UpdateJournalEntry reverses the entry's previous postings and bank
// movements, applies patch, and posts the result. Invoices and bills are not
// reconciled again.
func (en *Engine) UpdateJournalEntry(s State, entryID string, patch model.JournalEntryPatch) (State, Result, error) {
	old, ok := s.Entry(entryID)
	if !ok {
		return s, Result{}, fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
	}
	e := en.defaults(patch.Apply(old))
	e.ID = old.ID
	if err := en.validate(e); err != nil {
		return s, Result{}, err
	}

	next, err := en.undo(s, entryID)
	if err != nil {
		return s, Result{}, err
	}
	next, res, err := en.apply(next, e)
	if err != nil {
		return s, Result{}, err
	}
	next.banks = en.syncer.Prune(next.banks, e.ID, res.Movements)
	return next, res, nil
}

// DeleteJournalEntry reverses the entry's postings and bank movements and
// removes it along with its mirrored bank transactions. Invoices and bills
// are left as they are.
func (en *Engine) DeleteJournalEntry(s State, entryID string) (State, model.JournalEntry, error) {
	old, ok := s.Entry(entryID)
	if !ok {
		return s, model.JournalEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
	}
	next, err := en.undo(s, entryID)
	if err != nil {
		return s, model.JournalEntry{}, err
	}
	next.banks = en.syncer.Prune(next.banks, entryID, nil)
	next.withoutEntry(entryID)
	en.logger.Debug("deleted journal entry", "id", entryID)
	return next, old, nil
}

func (en *Engine) defaults(e model.JournalEntry) model.JournalEntry {
	if e.Date.IsZero() {
		e.Date = en.now()
	}
	if e.Status == "" {
		e.Status = model.StatusDraft
	}
	return e
}

// validate rejects what a strict chart rejects. A lenient chart accepts
// anything and only warns about unregistered accounts.
func (en *Engine) validate(e model.JournalEntry) error {
	for _, name := range []string{e.DebitAccount, e.CreditAccount} {
		if en.chart.Exists(name) {
			continue
		}
		if en.chart.Strict() {
			return fmt.Errorf("%w: %q", ErrUnknownAccount, name)
		}
		en.logger.Warn("account not in chart, treating as Asset", "account", name, "entry", e.ID)
	}
	if en.chart.Strict() && !e.Amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, e.Amount)
	}
	return nil
}

// apply posts e without reconciling it and records its effects.
func (en *Engine) apply(s State, e model.JournalEntry) (State, Result, error) {
	kind := en.routing.Classify(e)
	postings := append([]ledger.Posting{{
		Debit:  e.DebitAccount,
		Credit: e.CreditAccount,
		Amount: e.Amount,
	}}, en.routing.Split(e, kind)...)

	trial, err := s.trial.PostAll(en.chart, postings)
	if err != nil {
		return s, Result{}, fmt.Errorf("posting entry %s: %w", e.ID, err)
	}
	banks, movements := en.syncer.Apply(s.banks, e, postings)

	next := s
	next.trial = trial
	next.banks = banks
	next.withEntry(e, effects{postings: postings, movements: movements})

	en.logger.Debug("posted journal entry",
		"id", e.ID,
		"kind", kind.String(),
		"postings", len(postings),
		"bank_movements", len(movements),
	)
	return next, Result{Entry: e, Kind: kind, Postings: postings, Movements: movements}, nil
}

// undo reverses the recorded postings and bank movements of an entry.
func (en *Engine) undo(s State, entryID string) (State, error) {
	eff := s.effects[entryID]
	trial, err := s.trial.ReverseAll(en.chart, eff.postings)
	if err != nil {
		return s, fmt.Errorf("reversing entry %s: %w", entryID, err)
	}
	next := s
	next.trial = trial
	next.banks = en.syncer.Revert(s.banks, eff.movements)
	return next, nil
}

func (en *Engine) logEffect(e model.JournalEntry, effect subledger.Effect) {
	switch effect.Action {
	case subledger.ActionCreated, subledger.ActionReduced:
		en.logger.Debug("reconciled journal entry",
			"id", e.ID,
			"action", string(effect.Action),
			"document", effect.DocumentID,
			"amount", effect.Amount.String(),
		)
	case subledger.ActionMissed:
		en.logger.Info("no open document for payment", "id", e.ID, "party", e.Party(), "document", effect.DocumentID)
	}
}
