package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/gstledger/internal/id"
	"github.com/cleared-dev/gstledger/internal/model"
)

// ValidationError describes one problem with an entry request.
type ValidationError struct {
	Row         int // CSV row, counting the header as row 1
	EntryID     string
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	if e.EntryID == "" {
		return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Description)
	}
	return fmt.Sprintf("row %d [%s]: %s: %s", e.Row, e.EntryID, e.Field, e.Description)
}

// AccountChecker tests whether an account name exists in the chart of accounts.
type AccountChecker interface {
	Exists(name string) bool
}

var hundred = decimal.NewFromInt(100)

// ValidateEntries checks entry requests before they are posted. The ledger
// itself accepts all of these; the checks catch input mistakes early.
func ValidateEntries(entries []model.JournalEntry, accounts AccountChecker) []ValidationError {
	var errs []ValidationError
	seen := make(map[string]bool)

	for i, e := range entries {
		fail := func(field, format string, args ...any) {
			errs = append(errs, ValidationError{
				Row:         i + 2,
				EntryID:     e.ID,
				Field:       field,
				Description: fmt.Sprintf(format, args...),
			})
		}

		if e.ID != "" {
			if _, _, _, err := id.ParseEntryID(e.ID); err != nil {
				fail("entry_id", "%v", err)
			}
			if seen[e.ID] {
				fail("entry_id", "duplicate entry %s", e.ID)
			}
			seen[e.ID] = true
		}

		if !accounts.Exists(e.DebitAccount) {
			fail("debit_account", "unknown account %q", e.DebitAccount)
		}
		if !accounts.Exists(e.CreditAccount) {
			fail("credit_account", "unknown account %q", e.CreditAccount)
		}
		if e.DebitAccount == e.CreditAccount {
			fail("credit_account", "same as debit account")
		}

		if !e.Amount.IsPositive() {
			fail("amount", "must be greater than zero, got %s", e.Amount)
		} else if !e.Amount.Mul(hundred).Equal(e.Amount.Mul(hundred).Floor()) {
			fail("amount", "%s has more than 2 decimal places", e.Amount)
		}

		switch e.Status {
		case "", model.StatusDraft, model.StatusPosted, model.StatusPending, model.StatusRejected:
		default:
			fail("status", "unknown status %q", e.Status)
		}

		switch e.TransactionType {
		case model.TransactionNone:
			if !e.GSTPercentage.IsZero() {
				fail("transaction_type", "required when gst_percentage is set")
			}
		case model.TransactionCGSTSGST, model.TransactionIGST:
		default:
			fail("transaction_type", "unknown transaction type %q", e.TransactionType)
		}
		if e.GSTPercentage.IsNegative() || e.GSTPercentage.GreaterThan(hundred) {
			fail("gst_percentage", "%s is outside 0..100", e.GSTPercentage)
		}

		switch e.PartyType {
		case model.PartyNone:
		case model.PartyCustomer, model.PartySupplier:
			if e.Party() == "" {
				fail("party", "required for party type %s", e.PartyType)
			}
		default:
			fail("party_type", "unknown party type %q", e.PartyType)
		}
	}

	return errs
}
