// Package tax classifies journal entries by economic kind and derives the GST
// postings that accompany them.
package tax

import (
	"slices"

	"github.com/cleared-dev/gstledger/internal/accounts"
	"github.com/cleared-dev/gstledger/internal/model"
)

// Kind is the economic meaning of a journal entry, computed once per entry.
type Kind int

const (
	KindOther Kind = iota
	KindSale
	KindPurchase
	KindSalesReturn
	KindPurchaseReturn
	KindReceivablePayment
	KindPayablePayment
)

var kindNames = map[Kind]string{
	KindOther:             "Other",
	KindSale:              "Sale",
	KindPurchase:          "Purchase",
	KindSalesReturn:       "SalesReturn",
	KindPurchaseReturn:    "PurchaseReturn",
	KindReceivablePayment: "ReceivablePayment",
	KindPayablePayment:    "PayablePayment",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Accounts names the accounts that give entries their meaning.
type Accounts struct {
	Cash                  []string // settlement accounts: cash drawer and banks
	Inventory             []string
	Receivable            string
	Payable               string
	SalesRevenue          string
	SalesReturned         string
	PurchaseReturned      string
	CGSTInput, CGSTOutput string
	SGSTInput, SGSTOutput string
	IGSTInput, IGSTOutput string
}

// DefaultAccounts returns the routing used with accounts.DefaultChart.
func DefaultAccounts() Accounts {
	return Accounts{
		Cash:             []string{accounts.Cash, accounts.Bank},
		Inventory:        []string{accounts.RawMaterialsInventory, accounts.FinishedGoodsInventory, accounts.Inventory},
		Receivable:       accounts.AccountsReceivable,
		Payable:          accounts.AccountsPayable,
		SalesRevenue:     accounts.SalesRevenue,
		SalesReturned:    accounts.SalesRevenueReturned,
		PurchaseReturned: accounts.RawMaterialsInventoryReturned,
		CGSTInput:        accounts.CGSTInput,
		CGSTOutput:       accounts.CGSTOutput,
		SGSTInput:        accounts.SGSTInput,
		SGSTOutput:       accounts.SGSTOutput,
		IGSTInput:        accounts.IGSTInput,
		IGSTOutput:       accounts.IGSTOutput,
	}
}

// IsCash reports whether name is a cash or bank account.
func (a Accounts) IsCash(name string) bool {
	return slices.Contains(a.Cash, name)
}

func (a Accounts) isInventory(name string) bool {
	return slices.Contains(a.Inventory, name)
}

// Classify determines the kind of e from its debit and credit accounts.
func (a Accounts) Classify(e model.JournalEntry) Kind {
	dr, cr := e.DebitAccount, e.CreditAccount
	switch {
	case cr == a.SalesRevenue && (a.IsCash(dr) || dr == a.Receivable):
		return KindSale
	case a.isInventory(dr) && (a.IsCash(cr) || cr == a.Payable):
		return KindPurchase
	case dr == a.SalesReturned && (a.IsCash(cr) || cr == a.Receivable):
		return KindSalesReturn
	case cr == a.PurchaseReturned && (a.IsCash(dr) || dr == a.Payable):
		return KindPurchaseReturn
	case cr == a.Receivable && a.IsCash(dr):
		return KindReceivablePayment
	case dr == a.Payable && a.IsCash(cr):
		return KindPayablePayment
	default:
		return KindOther
	}
}
