package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/gstledger/internal/bank"
	"github.com/cleared-dev/gstledger/internal/id"
	"github.com/cleared-dev/gstledger/internal/ledger"
	"github.com/cleared-dev/gstledger/internal/model"
	"github.com/cleared-dev/gstledger/internal/subledger"
)

// effects records what an entry did so it can be undone exactly.
type effects struct {
	postings  []ledger.Posting
	movements []bank.Movement
}

// State is the complete ledger state. The zero value is an empty ledger with
// no bank accounts; use NewState to start with bank accounts.
type State struct {
	trial       ledger.TrialBalance
	entries     []model.JournalEntry
	entryIdx    map[string]int
	effects     map[string]effects
	docs        subledger.Ledger
	banks       bank.Book
	debitNotes  []model.Note
	creditNotes []model.Note
	seq         map[string]int // "YYYY-MM" -> last entry sequence used
}

// NewState returns an empty ledger holding the given bank accounts.
func NewState(bankAccounts []model.BankAccount) State {
	return State{banks: bank.NewBook(bankAccounts)}
}

// TrialBalance returns the trial balance.
func (s State) TrialBalance() ledger.TrialBalance {
	return s.trial
}

// Entry returns the journal entry with the given id.
func (s State) Entry(entryID string) (model.JournalEntry, bool) {
	i, ok := s.entryIdx[entryID]
	if !ok {
		return model.JournalEntry{}, false
	}
	return s.entries[i], true
}

// Postings returns the trial balance postings made for an entry, base first.
func (s State) Postings(entryID string) []ledger.Posting {
	return append([]ledger.Posting(nil), s.effects[entryID].postings...)
}

// Invoice returns the invoice with the given id.
func (s State) Invoice(docID string) (model.Document, bool) {
	return s.docs.Invoice(docID)
}

// Bill returns the bill with the given id.
func (s State) Bill(docID string) (model.Document, bool) {
	return s.docs.Bill(docID)
}

// BankAccount returns the bank account with the given id.
func (s State) BankAccount(accountID string) (model.BankAccount, bool) {
	return s.banks.Account(accountID)
}

// Snapshot is a read-only copy of every collection the ledger exposes.
type Snapshot struct {
	TrialBalance   []model.TrialBalanceEntry
	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
	Balanced       bool
	JournalEntries []model.JournalEntry
	Invoices       []model.Document
	Bills          []model.Document
	BankAccounts   []model.BankAccount
	Transactions   []model.Transaction
	DebitNotes     []model.Note
	CreditNotes    []model.Note
}

// Snapshot copies the state into a Snapshot.
func (s State) Snapshot() Snapshot {
	d, c := s.trial.Totals()
	return Snapshot{
		TrialBalance:   s.trial.Entries(),
		TotalDebit:     d,
		TotalCredit:    c,
		Balanced:       d.Equal(c),
		JournalEntries: append([]model.JournalEntry(nil), s.entries...),
		Invoices:       s.docs.Invoices(),
		Bills:          s.docs.Bills(),
		BankAccounts:   s.banks.Accounts(),
		Transactions:   s.banks.Transactions(),
		DebitNotes:     cloneNotes(s.debitNotes),
		CreditNotes:    cloneNotes(s.creditNotes),
	}
}

// nextEntryID reserves the next free entry id for the month of date.
func (s *State) nextEntryID(date time.Time) string {
	key := seqKey(date.Year(), int(date.Month()))
	n := s.seq[key]
	for {
		n++
		candidate := id.FormatEntryID(date.Year(), int(date.Month()), n)
		if _, taken := s.entryIdx[candidate]; !taken {
			s.raiseSeq(key, n)
			return candidate
		}
	}
}

// raiseSeq moves the month counter for key up to at least n.
func (s *State) raiseSeq(key string, n int) {
	if s.seq[key] >= n {
		return
	}
	seq := make(map[string]int, len(s.seq)+1)
	for k, v := range s.seq {
		seq[k] = v
	}
	seq[key] = n
	s.seq = seq
}

// reserveEntryID keeps ids chosen by callers out of the automatic sequence.
func (s *State) reserveEntryID(entryID string) {
	year, month, n, err := id.ParseEntryID(entryID)
	if err != nil {
		return
	}
	s.raiseSeq(seqKey(year, month), n)
}

func seqKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// withEntry stores e and its effects, replacing an existing entry with the
// same id. Callers adding a new entry must check for that id first.
func (s *State) withEntry(e model.JournalEntry, eff effects) {
	entries := append([]model.JournalEntry(nil), s.entries...)
	idx := make(map[string]int, len(s.entryIdx)+1)
	for k, v := range s.entryIdx {
		idx[k] = v
	}
	s.reserveEntryID(e.ID)
	if i, ok := idx[e.ID]; ok {
		entries[i] = e
	} else {
		idx[e.ID] = len(entries)
		entries = append(entries, e)
	}

	all := make(map[string]effects, len(s.effects)+1)
	for k, v := range s.effects {
		all[k] = v
	}
	all[e.ID] = eff

	s.entries, s.entryIdx, s.effects = entries, idx, all
}

// withoutEntry returns a copy of the entry list with entryID removed.
func (s *State) withoutEntry(entryID string) {
	entries := make([]model.JournalEntry, 0, len(s.entries))
	idx := make(map[string]int, len(s.entryIdx))
	for _, e := range s.entries {
		if e.ID == entryID {
			continue
		}
		idx[e.ID] = len(entries)
		entries = append(entries, e)
	}

	all := make(map[string]effects, len(s.effects))
	for k, v := range s.effects {
		if k != entryID {
			all[k] = v
		}
	}

	s.entries, s.entryIdx, s.effects = entries, idx, all
}

func cloneNotes(ns []model.Note) []model.Note {
	if ns == nil {
		return nil
	}
	out := make([]model.Note, len(ns))
	for i, n := range ns {
		n.Items = append([]model.LineItem(nil), n.Items...)
		n.EntryIDs = append([]string(nil), n.EntryIDs...)
		out[i] = n
	}
	return out
}
