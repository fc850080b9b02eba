package journal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/gstledger/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleEntries() []model.JournalEntry {
	return []model.JournalEntry{
		{
			ID:              "2025-04-001",
			Date:            date(2025, 4, 1),
			Description:     "Sale of widgets, batch 7",
			DebitAccount:    "Accounts Receivable",
			CreditAccount:   "Sales Revenue",
			Amount:          dec("100000.00"),
			Reference:       "SO-17",
			Status:          model.StatusPosted,
			TransactionType: model.TransactionCGSTSGST,
			GSTPercentage:   dec("18"),
			PartyType:       model.PartyCustomer,
			DebtorCustomer:  "CUST-1",
		},
		{
			ID:               "2025-04-002",
			Date:             date(2025, 4, 5),
			Description:      "Pay supplier",
			DebitAccount:     "Accounts Payable",
			CreditAccount:    "Bank",
			Amount:           dec("2500.50"),
			Status:           model.StatusDraft,
			PartyType:        model.PartySupplier,
			CreditorSupplier: "SUP-9",
			ActiveBill:       "BILL-0001",
			BankAccount:      "BA-1",
		},
	}
}

func TestRoundTrip(t *testing.T) {
	entries := sampleEntries()

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries))

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2025-04-001", got[0].ID)
	assert.Equal(t, date(2025, 4, 1), got[0].Date)
	assert.Equal(t, "Sale of widgets, batch 7", got[0].Description)
	assert.True(t, got[0].Amount.Equal(dec("100000")))
	assert.True(t, got[0].GSTPercentage.Equal(dec("18")))
	assert.Equal(t, model.TransactionCGSTSGST, got[0].TransactionType)
	assert.Equal(t, "CUST-1", got[0].DebtorCustomer)
	assert.Empty(t, got[0].CreditorSupplier)

	assert.Equal(t, "SUP-9", got[1].CreditorSupplier)
	assert.Equal(t, "BILL-0001", got[1].ActiveBill)
	assert.Equal(t, "BA-1", got[1].BankAccount)
	assert.True(t, got[1].Amount.Equal(dec("2500.5")))
	assert.True(t, got[1].GSTPercentage.IsZero())
}

func TestMarshalEntry(t *testing.T) {
	row := MarshalEntry(sampleEntries()[1])
	require.Len(t, row, numFields)
	assert.Equal(t, "2025-04-05", row[colDate])
	assert.Equal(t, "2500.50", row[colAmount])
	assert.Equal(t, "", row[colGSTPct])
	assert.Equal(t, "Supplier", row[colPartyType])
	assert.Equal(t, "SUP-9", row[colParty])
	assert.Equal(t, "", row[colNoteRelated])

	e := sampleEntries()[0]
	e.IsNoteRelated = true
	assert.Equal(t, "true", MarshalEntry(e)[colNoteRelated])
}

func TestUnmarshalEntryEmptyDate(t *testing.T) {
	row := MarshalEntry(sampleEntries()[0])
	row[colDate] = ""
	e, err := UnmarshalEntry(row)
	require.NoError(t, err)
	assert.True(t, e.Date.IsZero())
}

func TestUnmarshalEntryErrors(t *testing.T) {
	tests := []struct {
		name string
		col  int
		val  string
		want string
	}{
		{"bad date", colDate, "04/01/2025", "parsing date"},
		{"bad amount", colAmount, "ten", "parsing amount"},
		{"bad gst", colGSTPct, "x", "parsing gst_percentage"},
		{"bad flag", colNoteRelated, "maybe", "parsing note_related"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := MarshalEntry(sampleEntries()[0])
			row[tt.col] = tt.val
			_, err := UnmarshalEntry(row)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := UnmarshalEntry([]string{"a", "b"})
	assert.ErrorContains(t, err, "expected 16 fields")
}

func TestReadEntriesEmpty(t *testing.T) {
	got, err := ReadEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ReadEntries(strings.NewReader(Header + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadEntriesReportsRow(t *testing.T) {
	input := Header + "\n" +
		"2025-04-001,2025-04-01,ok,Rent,Cash,10.00,,,,,,,,,,\n" +
		"2025-04-002,2025-04-02,bad,Rent,Cash,abc,,,,,,,,,,\n"
	_, err := ReadEntries(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestAppendEntries(t *testing.T) {
	var buf bytes.Buffer
	entries := sampleEntries()
	require.NoError(t, WriteEntries(&buf, entries[:1]))
	require.NoError(t, AppendEntries(&buf, entries[1:]))

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-04-002", got[1].ID)
}
