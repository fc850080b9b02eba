package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalSide(t *testing.T) {
	tests := []struct {
		accountType AccountType
		want        Side
	}{
		{AccountTypeAsset, SideDebit},
		{AccountTypeExpense, SideDebit},
		{AccountTypeLiability, SideCredit},
		{AccountTypeEquity, SideCredit},
		{AccountTypeRevenue, SideCredit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.accountType.NormalSide(), "NormalSide(%s)", tt.accountType)
	}
	assert.False(t, AccountType("asset").Valid())
}

func TestJournalEntryParty(t *testing.T) {
	e := JournalEntry{DebtorCustomer: "C-1", CreditorSupplier: "S-1"}
	assert.Equal(t, "", e.Party())

	e.PartyType = PartyCustomer
	assert.Equal(t, "C-1", e.Party())

	e.PartyType = PartySupplier
	assert.Equal(t, "S-1", e.Party())
}

func TestJournalEntryGSTAmount(t *testing.T) {
	e := JournalEntry{Amount: decimal.NewFromInt(100000), GSTPercentage: decimal.NewFromInt(18)}
	assert.True(t, e.GSTAmount().Equal(decimal.NewFromInt(18000)))

	e.GSTPercentage = decimal.Zero
	assert.True(t, e.GSTAmount().IsZero())
}

func TestPatchApply(t *testing.T) {
	orig := JournalEntry{ID: "2025-01-001", Description: "Old", Amount: decimal.NewFromInt(10), BankAccount: "BA-1"}
	desc := "New"
	amt := decimal.NewFromInt(25)

	got := JournalEntryPatch{Description: &desc, Amount: &amt}.Apply(orig)
	assert.Equal(t, "2025-01-001", got.ID)
	assert.Equal(t, "New", got.Description)
	assert.True(t, got.Amount.Equal(amt))
	assert.Equal(t, "BA-1", got.BankAccount)
	assert.Equal(t, "Old", orig.Description, "original must not change")
}

func TestTrialBalanceEntryNet(t *testing.T) {
	e := TrialBalanceEntry{AccountType: AccountTypeRevenue, Debit: decimal.NewFromInt(30), Credit: decimal.NewFromInt(100)}
	assert.True(t, e.Net().Equal(decimal.NewFromInt(70)))

	e.AccountType = AccountTypeAsset
	assert.True(t, e.Net().Equal(decimal.NewFromInt(-70)))
}
