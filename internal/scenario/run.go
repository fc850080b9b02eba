package scenario

import (
	"fmt"
	"strings"

	"github.com/cleared-dev/gstledger/internal/engine"
)

// Step records the outcome of one replayed operation.
type Step struct {
	Op     string
	Ref    string // entry, note, or "n documents" for mark_overdue
	Detail string
}

// Run replays the scenario's operations through book in order and stops at
// the first failure.
func Run(book *engine.Book, sc *Scenario) ([]Step, error) {
	steps := make([]Step, 0, len(sc.Operations))
	for i, op := range sc.Operations {
		step, err := apply(book, op)
		if err != nil {
			return steps, fmt.Errorf("operation %d (%s): %w", i+1, op.Op, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func apply(book *engine.Book, op Operation) (Step, error) {
	step := Step{Op: op.Op}
	switch op.Op {
	case OpAddEntry:
		e, err := op.Entry.JournalEntry()
		if err != nil {
			return step, err
		}
		res, err := book.AddJournalEntry(e)
		if err != nil {
			return step, err
		}
		step.Ref = res.Entry.ID
		step.Detail = describe(res)

	case OpUpdateEntry:
		patch, err := op.Patch.JournalEntryPatch()
		if err != nil {
			return step, err
		}
		res, err := book.UpdateJournalEntry(op.ID, patch)
		if err != nil {
			return step, err
		}
		step.Ref = res.Entry.ID
		step.Detail = describe(res)

	case OpDeleteEntry:
		if err := book.DeleteJournalEntry(op.ID); err != nil {
			return step, err
		}
		step.Ref = op.ID

	case OpDebitNote, OpCreditNote:
		n, err := op.Note.Model()
		if err != nil {
			return step, err
		}
		add := book.AddCreditNote
		if op.Op == OpDebitNote {
			add = book.AddDebitNote
		}
		note, err := add(n)
		if err != nil {
			return step, err
		}
		step.Ref = note.ID
		step.Detail = fmt.Sprintf("%s against %s, entries %s", note.TotalAmount.StringFixed(2), note.DocumentID, strings.Join(note.EntryIDs, " "))

	case OpMarkOverdue:
		asOf, err := parseDate(op.AsOf)
		if err != nil {
			return step, err
		}
		changed := book.MarkOverdue(asOf)
		step.Ref = fmt.Sprintf("%d documents", len(changed))
		step.Detail = strings.Join(changed, " ")

	default:
		return step, fmt.Errorf("unknown op %q", op.Op)
	}
	return step, nil
}

func describe(res engine.Result) string {
	parts := make([]string, 0, len(res.Postings)+1)
	for _, p := range res.Postings {
		parts = append(parts, p.String())
	}
	if res.Document.DocumentID != "" {
		parts = append(parts, fmt.Sprintf("%s %s", res.Document.Action, res.Document.DocumentID))
	}
	return strings.Join(parts, "; ")
}
