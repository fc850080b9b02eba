// Package scenario replays YAML files of ledger operations through a Book
// and checks the resulting state against expectations.
package scenario

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/gstledger/internal/model"
)

// Operation names.
const (
	OpAddEntry    = "add_entry"
	OpUpdateEntry = "update_entry"
	OpDeleteEntry = "delete_entry"
	OpDebitNote   = "debit_note"
	OpCreditNote  = "credit_note"
	OpMarkOverdue = "mark_overdue"
)

const dateFormat = time.DateOnly

// Scenario is an ordered list of operations with optional expectations.
type Scenario struct {
	Name       string        `yaml:"name"`
	Operations []Operation   `yaml:"operations"`
	Expect     *Expectations `yaml:"expect,omitempty"`
}

// Operation is one call into the ledger. Which fields apply depends on Op.
type Operation struct {
	Op    string `yaml:"op"`
	ID    string `yaml:"id,omitempty"`
	Entry *Entry `yaml:"entry,omitempty"`
	Patch *Patch `yaml:"patch,omitempty"`
	Note  *Note  `yaml:"note,omitempty"`
	AsOf  string `yaml:"as_of,omitempty"`
}

// Entry is a journal entry request.
type Entry struct {
	ID              string          `yaml:"id,omitempty"`
	Date            string          `yaml:"date,omitempty"`
	Description     string          `yaml:"description,omitempty"`
	Debit           string          `yaml:"debit"`
	Credit          string          `yaml:"credit"`
	Amount          decimal.Decimal `yaml:"amount"`
	Reference       string          `yaml:"reference,omitempty"`
	Status          string          `yaml:"status,omitempty"`
	TransactionType string          `yaml:"transaction_type,omitempty"`
	GSTPercentage   decimal.Decimal `yaml:"gst_percentage,omitempty"`
	PartyType       string          `yaml:"party_type,omitempty"`
	Party           string          `yaml:"party,omitempty"`
	Invoice         string          `yaml:"invoice,omitempty"`
	Bill            string          `yaml:"bill,omitempty"`
	BankAccount     string          `yaml:"bank_account,omitempty"`
}

// Patch lists the entry fields to change. Absent fields are left alone.
type Patch struct {
	Date            *string          `yaml:"date,omitempty"`
	Description     *string          `yaml:"description,omitempty"`
	Debit           *string          `yaml:"debit,omitempty"`
	Credit          *string          `yaml:"credit,omitempty"`
	Amount          *decimal.Decimal `yaml:"amount,omitempty"`
	Reference       *string          `yaml:"reference,omitempty"`
	Status          *string          `yaml:"status,omitempty"`
	TransactionType *string          `yaml:"transaction_type,omitempty"`
	GSTPercentage   *decimal.Decimal `yaml:"gst_percentage,omitempty"`
	Invoice         *string          `yaml:"invoice,omitempty"`
	Bill            *string          `yaml:"bill,omitempty"`
	BankAccount     *string          `yaml:"bank_account,omitempty"`
}

// Note is a debit or credit note request.
type Note struct {
	Document        string          `yaml:"document"`
	Date            string          `yaml:"date,omitempty"`
	Reason          string          `yaml:"reason,omitempty"`
	BaseAmount      decimal.Decimal `yaml:"base_amount"`
	GSTAmount       decimal.Decimal `yaml:"gst_amount,omitempty"`
	TotalAmount     decimal.Decimal `yaml:"total_amount,omitempty"`
	TransactionType string          `yaml:"transaction_type,omitempty"`
	Status          string          `yaml:"status,omitempty"`
	Items           []Item          `yaml:"items,omitempty"`
}

// Item is a note line item.
type Item struct {
	Description string          `yaml:"description"`
	Quantity    decimal.Decimal `yaml:"quantity"`
	UnitPrice   decimal.Decimal `yaml:"unit_price"`
	TaxRate     decimal.Decimal `yaml:"tax_rate,omitempty"`
}

// Load reads and checks a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and checks a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	for i, op := range sc.Operations {
		if err := op.check(); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i+1, err)
		}
	}
	return &sc, nil
}

func (op Operation) check() error {
	switch op.Op {
	case OpAddEntry:
		if op.Entry == nil {
			return fmt.Errorf("%s requires entry", op.Op)
		}
	case OpUpdateEntry:
		if op.ID == "" || op.Patch == nil {
			return fmt.Errorf("%s requires id and patch", op.Op)
		}
	case OpDeleteEntry:
		if op.ID == "" {
			return fmt.Errorf("%s requires id", op.Op)
		}
	case OpDebitNote, OpCreditNote:
		if op.Note == nil || op.Note.Document == "" {
			return fmt.Errorf("%s requires note.document", op.Op)
		}
	case OpMarkOverdue:
		if op.AsOf == "" {
			return fmt.Errorf("%s requires as_of", op.Op)
		}
	default:
		return fmt.Errorf("unknown op %q", op.Op)
	}
	return nil
}

// JournalEntry converts the request to a journal entry.
func (e Entry) JournalEntry() (model.JournalEntry, error) {
	date, err := parseDate(e.Date)
	if err != nil {
		return model.JournalEntry{}, err
	}
	je := model.JournalEntry{
		ID:              e.ID,
		Date:            date,
		Description:     e.Description,
		DebitAccount:    e.Debit,
		CreditAccount:   e.Credit,
		Amount:          e.Amount,
		Reference:       e.Reference,
		Status:          model.EntryStatus(e.Status),
		TransactionType: model.TransactionType(e.TransactionType),
		GSTPercentage:   e.GSTPercentage,
		PartyType:       model.PartyType(e.PartyType),
		ActiveInvoice:   e.Invoice,
		ActiveBill:      e.Bill,
		BankAccount:     e.BankAccount,
	}
	switch je.PartyType {
	case model.PartyCustomer:
		je.DebtorCustomer = e.Party
	case model.PartySupplier:
		je.CreditorSupplier = e.Party
	}
	return je, nil
}

// JournalEntryPatch converts the patch to a journal entry patch.
func (p Patch) JournalEntryPatch() (model.JournalEntryPatch, error) {
	out := model.JournalEntryPatch{
		Description:   p.Description,
		DebitAccount:  p.Debit,
		CreditAccount: p.Credit,
		Amount:        p.Amount,
		Reference:     p.Reference,
		GSTPercentage: p.GSTPercentage,
		ActiveInvoice: p.Invoice,
		ActiveBill:    p.Bill,
		BankAccount:   p.BankAccount,
	}
	if p.Date != nil {
		d, err := parseDate(*p.Date)
		if err != nil {
			return model.JournalEntryPatch{}, err
		}
		out.Date = &d
	}
	if p.Status != nil {
		s := model.EntryStatus(*p.Status)
		out.Status = &s
	}
	if p.TransactionType != nil {
		tt := model.TransactionType(*p.TransactionType)
		out.TransactionType = &tt
	}
	return out, nil
}

// Model converts the request to a note. Line item totals are quantity times
// unit price plus tax at the item's rate.
func (n Note) Model() (model.Note, error) {
	date, err := parseDate(n.Date)
	if err != nil {
		return model.Note{}, err
	}
	items := make([]model.LineItem, len(n.Items))
	for i, it := range n.Items {
		net := it.Quantity.Mul(it.UnitPrice)
		tax := net.Mul(it.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
		items[i] = model.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TaxRate:     it.TaxRate,
			Tax:         tax,
			Total:       net.Add(tax),
		}
	}
	return model.Note{
		DocumentID:      n.Document,
		Date:            date,
		Reason:          n.Reason,
		Items:           items,
		BaseAmount:      n.BaseAmount,
		GSTAmount:       n.GSTAmount,
		TotalAmount:     n.TotalAmount,
		TransactionType: model.TransactionType(n.TransactionType),
		Status:          model.EntryStatus(n.Status),
	}, nil
}

// parseDate parses YYYY-MM-DD. Empty yields the zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}
