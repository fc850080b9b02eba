package notes

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/gstledger/internal/model"
	"github.com/cleared-dev/gstledger/internal/tax"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEntries_CreditNoteIGST(t *testing.T) {
	b := NewBuilder(tax.DefaultAccounts())
	n := Normalize(model.Note{
		ID:              "CN-0001",
		Kind:            model.KindCreditNote,
		DocumentID:      "INV-0001",
		Party:           "CUST-1",
		Date:            time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC),
		Reason:          "Damaged",
		BaseAmount:      dec("20000"),
		GSTAmount:       dec("3600"),
		TransactionType: model.TransactionIGST,
	})
	assert.True(t, n.TotalAmount.Equal(dec("23600")))
	assert.Equal(t, model.StatusPosted, n.Status)

	entries := b.Entries(n)
	require.Len(t, entries, 2)

	base := entries[0]
	assert.Equal(t, "Sales Revenue Returned", base.DebitAccount)
	assert.Equal(t, "Accounts Receivable", base.CreditAccount)
	assert.True(t, base.Amount.Equal(dec("20000")))
	assert.True(t, base.IsNoteRelated)
	assert.Equal(t, model.PartyCustomer, base.PartyType)
	assert.Equal(t, "CUST-1", base.DebtorCustomer)
	assert.Equal(t, "INV-0001", base.ActiveInvoice)
	assert.Equal(t, "CN-0001", base.Reference)
	assert.Equal(t, "Credit Note CN-0001: goods returned (Damaged)", base.Description)

	igst := entries[1]
	assert.Equal(t, "IGST Output", igst.DebitAccount)
	assert.Equal(t, "Accounts Receivable", igst.CreditAccount)
	assert.True(t, igst.Amount.Equal(dec("3600")))
	assert.True(t, igst.IsNoteRelated)
	assert.True(t, igst.GSTPercentage.IsZero(), "note entries must not be split again")

	assert.True(t, Total(entries).Equal(n.TotalAmount))
}

func TestEntries_DebitNoteCGSTSGST(t *testing.T) {
	b := NewBuilder(tax.DefaultAccounts())
	n := Normalize(model.Note{
		ID:              "DN-0001",
		Kind:            model.KindDebitNote,
		DocumentID:      "BILL-0001",
		Party:           "SUP-1",
		BaseAmount:      dec("1000"),
		GSTAmount:       dec("180"),
		TransactionType: model.TransactionCGSTSGST,
	})

	entries := b.Entries(n)
	require.Len(t, entries, 3)

	assert.Equal(t, "Accounts Payable", entries[0].DebitAccount)
	assert.Equal(t, "Raw Materials Inventory Returned", entries[0].CreditAccount)
	assert.Equal(t, "BILL-0001", entries[0].ActiveBill)
	assert.Equal(t, "SUP-1", entries[0].CreditorSupplier)
	assert.Equal(t, "Debit Note DN-0001: goods returned", entries[0].Description)

	assert.Equal(t, "CGST Input", entries[1].CreditAccount)
	assert.Equal(t, "SGST Input", entries[2].CreditAccount)
	for _, e := range entries[1:] {
		assert.Equal(t, "Accounts Payable", e.DebitAccount)
		assert.True(t, e.Amount.Equal(dec("90")))
	}
}

func TestEntries_NoGST(t *testing.T) {
	b := NewBuilder(tax.DefaultAccounts())
	entries := b.Entries(Normalize(model.Note{Kind: model.KindCreditNote, BaseAmount: dec("10")}))
	require.Len(t, entries, 1)
}

func TestDocumentKind(t *testing.T) {
	assert.Equal(t, model.KindBill, DocumentKind(model.KindDebitNote))
	assert.Equal(t, model.KindInvoice, DocumentKind(model.KindCreditNote))
}

func TestNormalize_KeepsExplicitTotal(t *testing.T) {
	n := Normalize(model.Note{BaseAmount: dec("10"), GSTAmount: dec("1"), TotalAmount: dec("12"), Status: model.StatusDraft})
	assert.True(t, n.TotalAmount.Equal(dec("12")))
	assert.Equal(t, model.StatusDraft, n.Status)
}
