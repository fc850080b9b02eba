// Package bank mirrors Cash and Bank postings onto real bank account balances
// and a bank-side transaction log.
package bank

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/gstledger/internal/ledger"
	"github.com/cleared-dev/gstledger/internal/model"
)

var mirrorNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:gstledger:bank-transaction"))

// MirrorID returns the deterministic transaction id for a journal entry's
// effect on one bank account.
func MirrorID(entryID, bankAccountID string) string {
	return uuid.NewSHA1(mirrorNamespace, []byte(entryID+"/"+bankAccountID)).String()
}

// Movement is the net balance change one journal entry made to one bank account.
type Movement struct {
	BankAccountID string
	Delta         decimal.Decimal
}

// Book is an immutable set of bank accounts and their mirrored transactions.
type Book struct {
	accounts     []model.BankAccount
	transactions []model.Transaction
}

// NewBook creates a Book holding accounts.
func NewBook(accounts []model.BankAccount) Book {
	return Book{accounts: append([]model.BankAccount(nil), accounts...)}
}

// Accounts returns a copy of all bank accounts.
func (b Book) Accounts() []model.BankAccount {
	return append([]model.BankAccount(nil), b.accounts...)
}

// Transactions returns a copy of all mirrored transactions.
func (b Book) Transactions() []model.Transaction {
	return append([]model.Transaction(nil), b.transactions...)
}

// Account returns the bank account with the given id.
func (b Book) Account(accountID string) (model.BankAccount, bool) {
	for _, a := range b.accounts {
		if a.ID == accountID {
			return a, true
		}
	}
	return model.BankAccount{}, false
}

// Transaction returns the mirrored transaction with the given id.
func (b Book) Transaction(txnID string) (model.Transaction, bool) {
	for _, t := range b.transactions {
		if t.ID == txnID {
			return t, true
		}
	}
	return model.Transaction{}, false
}

func (b Book) clone() Book {
	return Book{
		accounts:     append([]model.BankAccount(nil), b.accounts...),
		transactions: append([]model.Transaction(nil), b.transactions...),
	}
}

func (b *Book) adjust(accountID string, delta decimal.Decimal) {
	for i := range b.accounts {
		if b.accounts[i].ID == accountID {
			b.accounts[i].Balance = b.accounts[i].Balance.Add(delta)
			return
		}
	}
}

func (b *Book) upsert(t model.Transaction) {
	for i := range b.transactions {
		if b.transactions[i].ID == t.ID {
			b.transactions[i] = t
			return
		}
	}
	b.transactions = append(b.transactions, t)
}

// Syncer routes ledger accounts named Cash and Bank to bank accounts.
type Syncer struct {
	cashAccount string
	bankAccount string
}

// NewSyncer creates a Syncer. cashAccount postings go to the first bank account
// of type Cash; bankAccount postings go to the entry's own bank account.
func NewSyncer(cashAccount, bankAccount string) *Syncer {
	return &Syncer{cashAccount: cashAccount, bankAccount: bankAccount}
}

func (s *Syncer) target(b Book, ledgerAccount string, e model.JournalEntry) (string, bool) {
	switch ledgerAccount {
	case s.bankAccount:
		if e.BankAccount == "" {
			return "", false
		}
		if _, ok := b.Account(e.BankAccount); !ok {
			return "", false
		}
		return e.BankAccount, true
	case s.cashAccount:
		for _, a := range b.accounts {
			if a.Type == model.BankAccountCash {
				return a.ID, true
			}
		}
	}
	return "", false
}

// Apply moves bank balances by the net effect of postings made for e and
// upserts one mirrored transaction per bank account touched. It returns the
// movements so they can be reverted later.
func (s *Syncer) Apply(b Book, e model.JournalEntry, postings []ledger.Posting) (Book, []Movement) {
	var movements []Movement
	add := func(accountID string, delta decimal.Decimal) {
		for i := range movements {
			if movements[i].BankAccountID == accountID {
				movements[i].Delta = movements[i].Delta.Add(delta)
				return
			}
		}
		movements = append(movements, Movement{BankAccountID: accountID, Delta: delta})
	}

	for _, p := range postings {
		if id, ok := s.target(b, p.Debit, e); ok {
			add(id, p.Amount)
		}
		if id, ok := s.target(b, p.Credit, e); ok {
			add(id, p.Amount.Neg())
		}
	}

	kept := movements[:0]
	for _, m := range movements {
		if !m.Delta.IsZero() {
			kept = append(kept, m)
		}
	}
	movements = kept
	if len(movements) == 0 {
		return b, nil
	}

	next := b.clone()
	for _, m := range movements {
		next.adjust(m.BankAccountID, m.Delta)
		next.upsert(mirror(e, m))
	}
	return next, movements
}

// Revert undoes the balance changes in movements. Mirrored transactions are
// left in place; use Prune to drop them.
func (s *Syncer) Revert(b Book, movements []Movement) Book {
	if len(movements) == 0 {
		return b
	}
	next := b.clone()
	for _, m := range movements {
		next.adjust(m.BankAccountID, m.Delta.Neg())
	}
	return next
}

// Prune removes the entry's mirrored transactions except those for bank
// accounts still present in keep.
func (s *Syncer) Prune(b Book, entryID string, keep []Movement) Book {
	keepIDs := make(map[string]bool, len(keep))
	for _, m := range keep {
		keepIDs[MirrorID(entryID, m.BankAccountID)] = true
	}

	next := b.clone()
	txns := next.transactions[:0]
	for _, t := range next.transactions {
		if t.EntryID == entryID && !keepIDs[t.ID] {
			continue
		}
		txns = append(txns, t)
	}
	next.transactions = txns
	return next
}

func mirror(e model.JournalEntry, m Movement) model.Transaction {
	t := model.Transaction{
		ID:            MirrorID(e.ID, m.BankAccountID),
		EntryID:       e.ID,
		BankAccountID: m.BankAccountID,
		Date:          e.Date,
		Description:   e.Description,
		Reference:     e.Reference,
		Amount:        m.Delta.Abs(),
		Type:          model.TransactionDeposit,
		Status:        model.TransactionPending,
	}
	if m.Delta.IsNegative() {
		t.Type = model.TransactionWithdrawal
	}
	if e.Status == model.StatusPosted {
		t.Status = model.TransactionCleared
	}
	return t
}
