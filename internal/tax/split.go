package tax

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/gstledger/internal/ledger"
	"github.com/cleared-dev/gstledger/internal/model"
)

// Component is one GST sub-tax.
type Component string

const (
	CGST Component = "CGST"
	SGST Component = "SGST"
	IGST Component = "IGST"
)

// Share is the part of a GST amount that goes to one component.
type Share struct {
	Component Component
	Amount    decimal.Decimal
}

var two = decimal.NewFromInt(2)

// Shares divides gst across the components of tt. CGST-SGST halves are rounded
// to the paisa with any odd paisa going to CGST, so the shares always sum to gst.
// An unknown or empty transaction type or a non-positive amount yields nil.
func Shares(tt model.TransactionType, gst decimal.Decimal) []Share {
	if !gst.IsPositive() {
		return nil
	}
	switch tt {
	case model.TransactionIGST:
		return []Share{{Component: IGST, Amount: gst}}
	case model.TransactionCGSTSGST:
		half := gst.Div(two).Round(2)
		return []Share{
			{Component: CGST, Amount: half},
			{Component: SGST, Amount: gst.Sub(half)},
		}
	default:
		return nil
	}
}

// Input returns the input-credit account for c.
func (a Accounts) Input(c Component) string {
	switch c {
	case CGST:
		return a.CGSTInput
	case SGST:
		return a.SGSTInput
	default:
		return a.IGSTInput
	}
}

// Output returns the output-liability account for c.
func (a Accounts) Output(c Component) string {
	switch c {
	case CGST:
		return a.CGSTOutput
	case SGST:
		return a.SGSTOutput
	default:
		return a.IGSTOutput
	}
}

// Split returns the GST postings that accompany e, given its kind.
//
// Sales credit the Output accounts against the entry's debit account and
// purchases debit the Input accounts against its credit account. Returns
// run the same postings the other way round. Other kinds carry no GST postings.
func (a Accounts) Split(e model.JournalEntry, kind Kind) []ledger.Posting {
	shares := Shares(e.TransactionType, e.GSTAmount())
	if len(shares) == 0 {
		return nil
	}

	postings := make([]ledger.Posting, 0, len(shares))
	for _, s := range shares {
		var p ledger.Posting
		switch kind {
		case KindSale:
			p = ledger.Posting{Debit: e.DebitAccount, Credit: a.Output(s.Component)}
		case KindPurchase:
			p = ledger.Posting{Debit: a.Input(s.Component), Credit: e.CreditAccount}
		case KindSalesReturn:
			p = ledger.Posting{Debit: a.Output(s.Component), Credit: e.CreditAccount}
		case KindPurchaseReturn:
			p = ledger.Posting{Debit: e.DebitAccount, Credit: a.Input(s.Component)}
		default:
			return nil
		}
		p.Amount = s.Amount
		postings = append(postings, p)
	}
	return postings
}
