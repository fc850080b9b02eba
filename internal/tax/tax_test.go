package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/gstledger/internal/ledger"
	"github.com/cleared-dev/gstledger/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestClassify(t *testing.T) {
	a := DefaultAccounts()
	tests := []struct {
		debit, credit string
		want          Kind
	}{
		{"Accounts Receivable", "Sales Revenue", KindSale},
		{"Bank", "Sales Revenue", KindSale},
		{"Cash", "Sales Revenue", KindSale},
		{"Raw Materials Inventory", "Accounts Payable", KindPurchase},
		{"Inventory", "Bank", KindPurchase},
		{"Sales Revenue Returned", "Accounts Receivable", KindSalesReturn},
		{"Sales Revenue Returned", "Cash", KindSalesReturn},
		{"Accounts Payable", "Raw Materials Inventory Returned", KindPurchaseReturn},
		{"Bank", "Raw Materials Inventory Returned", KindPurchaseReturn},
		{"Bank", "Accounts Receivable", KindReceivablePayment},
		{"Accounts Payable", "Cash", KindPayablePayment},
		{"Rent", "Bank", KindOther},
		{"Accounts Receivable", "Other Income", KindOther},
	}
	for _, tt := range tests {
		got := a.Classify(model.JournalEntry{DebitAccount: tt.debit, CreditAccount: tt.credit})
		assert.Equal(t, tt.want, got, "Classify(Dr %s / Cr %s) = %s", tt.debit, tt.credit, got)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "SalesReturn", KindSalesReturn.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}

func TestShares(t *testing.T) {
	igst := Shares(model.TransactionIGST, dec("3600"))
	require.Len(t, igst, 1)
	assert.Equal(t, IGST, igst[0].Component)
	assert.True(t, igst[0].Amount.Equal(dec("3600")))

	split := Shares(model.TransactionCGSTSGST, dec("18000"))
	require.Len(t, split, 2)
	assert.True(t, split[0].Amount.Equal(dec("9000")))
	assert.True(t, split[1].Amount.Equal(dec("9000")))

	odd := Shares(model.TransactionCGSTSGST, dec("0.05"))
	require.Len(t, odd, 2)
	assert.True(t, odd[0].Amount.Add(odd[1].Amount).Equal(dec("0.05")))

	assert.Nil(t, Shares(model.TransactionNone, dec("10")))
	assert.Nil(t, Shares(model.TransactionIGST, decimal.Zero))
}

func TestSplit_SaleCGSTSGST(t *testing.T) {
	a := DefaultAccounts()
	e := model.JournalEntry{
		DebitAccount:    "Accounts Receivable",
		CreditAccount:   "Sales Revenue",
		Amount:          dec("100000"),
		GSTPercentage:   dec("18"),
		TransactionType: model.TransactionCGSTSGST,
	}

	got := a.Split(e, a.Classify(e))
	want := []ledger.Posting{
		{Debit: "Accounts Receivable", Credit: "CGST Output", Amount: dec("9000")},
		{Debit: "Accounts Receivable", Credit: "SGST Output", Amount: dec("9000")},
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Debit, got[i].Debit)
		assert.Equal(t, want[i].Credit, got[i].Credit)
		assert.True(t, want[i].Amount.Equal(got[i].Amount), "posting %d amount %s", i, got[i].Amount)
	}
}

func TestSplit_PurchaseIGST(t *testing.T) {
	a := DefaultAccounts()
	e := model.JournalEntry{
		DebitAccount:    "Raw Materials Inventory",
		CreditAccount:   "Accounts Payable",
		Amount:          dec("50000"),
		GSTPercentage:   dec("12"),
		TransactionType: model.TransactionIGST,
	}

	got := a.Split(e, a.Classify(e))
	require.Len(t, got, 1)
	assert.Equal(t, "IGST Input", got[0].Debit)
	assert.Equal(t, "Accounts Payable", got[0].Credit)
	assert.True(t, got[0].Amount.Equal(dec("6000")))
}

func TestSplit_Returns(t *testing.T) {
	a := DefaultAccounts()

	salesReturn := model.JournalEntry{
		DebitAccount:    "Sales Revenue Returned",
		CreditAccount:   "Accounts Receivable",
		Amount:          dec("1000"),
		GSTPercentage:   dec("18"),
		TransactionType: model.TransactionCGSTSGST,
	}
	got := a.Split(salesReturn, a.Classify(salesReturn))
	require.Len(t, got, 2)
	assert.Equal(t, "CGST Output", got[0].Debit)
	assert.Equal(t, "SGST Output", got[1].Debit)
	assert.Equal(t, "Accounts Receivable", got[0].Credit)

	purchaseReturn := model.JournalEntry{
		DebitAccount:    "Accounts Payable",
		CreditAccount:   "Raw Materials Inventory Returned",
		Amount:          dec("1000"),
		GSTPercentage:   dec("5"),
		TransactionType: model.TransactionIGST,
	}
	got = a.Split(purchaseReturn, a.Classify(purchaseReturn))
	require.Len(t, got, 1)
	assert.Equal(t, "Accounts Payable", got[0].Debit)
	assert.Equal(t, "IGST Input", got[0].Credit)
	assert.True(t, got[0].Amount.Equal(dec("50")))
}

func TestSplit_NoGSTForOtherKinds(t *testing.T) {
	a := DefaultAccounts()
	e := model.JournalEntry{
		DebitAccount:    "Bank",
		CreditAccount:   "Accounts Receivable",
		Amount:          dec("1000"),
		GSTPercentage:   dec("18"),
		TransactionType: model.TransactionIGST,
	}
	assert.Empty(t, a.Split(e, a.Classify(e)))

	e = model.JournalEntry{DebitAccount: "Bank", CreditAccount: "Sales Revenue", Amount: dec("1000")}
	assert.Empty(t, a.Split(e, a.Classify(e)))
}

func TestSplit_CompletenessAcrossRates(t *testing.T) {
	a := DefaultAccounts()
	for _, rate := range []string{"5", "12", "18", "28"} {
		for _, amount := range []string{"1", "99.99", "100000", "12345.67"} {
			e := model.JournalEntry{
				DebitAccount:    "Bank",
				CreditAccount:   "Sales Revenue",
				Amount:          dec(amount),
				GSTPercentage:   dec(rate),
				TransactionType: model.TransactionCGSTSGST,
			}
			postings := a.Split(e, KindSale)
			require.Len(t, postings, 2)

			sum := postings[0].Amount.Add(postings[1].Amount)
			assert.True(t, sum.Equal(e.GSTAmount()), "amount %s rate %s: %s != %s", amount, rate, sum, e.GSTAmount())
			diff := postings[0].Amount.Sub(postings[1].Amount).Abs()
			assert.True(t, diff.LessThanOrEqual(dec("0.01")), "halves should differ by at most a paisa")
		}
	}
}
