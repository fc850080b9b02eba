package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/gstledger/internal/model"
)

// Header is the CSV header for journal entry files.
const Header = "entry_id,date,description,debit_account,credit_account,amount,reference,status,transaction_type,gst_percentage,party_type,party,active_invoice,active_bill,bank_account,note_related"

const (
	numFields      = 16
	dateFormat     = "2006-01-02"
	colEntryID     = 0
	colDate        = 1
	colDesc        = 2
	colDebitAcct   = 3
	colCreditAcct  = 4
	colAmount      = 5
	colRef         = 6
	colStatus      = 7
	colTxnType     = 8
	colGSTPct      = 9
	colPartyType   = 10
	colParty       = 11
	colInvoice     = 12
	colBill        = 13
	colBankAccount = 14
	colNoteRelated = 15
)

// ReadEntries reads all journal entries from a CSV reader.
func ReadEntries(r io.Reader) ([]model.JournalEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var entries []model.JournalEntry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteEntries writes entries to a CSV writer (including header).
func WriteEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendEntries appends entries to an existing CSV writer (no header).
func AppendEntries(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts a JournalEntry to a CSV row ([]string).
func MarshalEntry(e model.JournalEntry) []string {
	row := make([]string, numFields)
	row[colEntryID] = e.ID
	if !e.Date.IsZero() {
		row[colDate] = e.Date.Format(dateFormat)
	}
	row[colDesc] = e.Description
	row[colDebitAcct] = e.DebitAccount
	row[colCreditAcct] = e.CreditAccount
	row[colAmount] = e.Amount.StringFixed(2)
	row[colRef] = e.Reference
	row[colStatus] = string(e.Status)
	row[colTxnType] = string(e.TransactionType)

	if !e.GSTPercentage.IsZero() {
		row[colGSTPct] = e.GSTPercentage.String()
	}

	row[colPartyType] = string(e.PartyType)
	row[colParty] = e.Party()
	row[colInvoice] = e.ActiveInvoice
	row[colBill] = e.ActiveBill
	row[colBankAccount] = e.BankAccount
	if e.IsNoteRelated {
		row[colNoteRelated] = "true"
	}

	return row
}

// UnmarshalEntry converts a CSV row to a JournalEntry. An empty date is left
// zero so the ledger dates the entry when it is posted.
func UnmarshalEntry(record []string) (model.JournalEntry, error) {
	if len(record) != numFields {
		return model.JournalEntry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var date time.Time
	if record[colDate] != "" {
		var err error
		date, err = time.Parse(dateFormat, record[colDate])
		if err != nil {
			return model.JournalEntry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
		}
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	var gstPct decimal.Decimal
	if record[colGSTPct] != "" {
		gstPct, err = decimal.NewFromString(record[colGSTPct])
		if err != nil {
			return model.JournalEntry{}, fmt.Errorf("parsing gst_percentage %q: %w", record[colGSTPct], err)
		}
	}

	var noteRelated bool
	if record[colNoteRelated] != "" {
		noteRelated, err = strconv.ParseBool(record[colNoteRelated])
		if err != nil {
			return model.JournalEntry{}, fmt.Errorf("parsing note_related %q: %w", record[colNoteRelated], err)
		}
	}

	e := model.JournalEntry{
		ID:              record[colEntryID],
		Date:            date,
		Description:     record[colDesc],
		DebitAccount:    record[colDebitAcct],
		CreditAccount:   record[colCreditAcct],
		Amount:          amount,
		Reference:       record[colRef],
		Status:          model.EntryStatus(record[colStatus]),
		TransactionType: model.TransactionType(record[colTxnType]),
		GSTPercentage:   gstPct,
		PartyType:       model.PartyType(record[colPartyType]),
		ActiveInvoice:   record[colInvoice],
		ActiveBill:      record[colBill],
		BankAccount:     record[colBankAccount],
		IsNoteRelated:   noteRelated,
	}
	switch e.PartyType {
	case model.PartyCustomer:
		e.DebtorCustomer = record[colParty]
	case model.PartySupplier:
		e.CreditorSupplier = record[colParty]
	}
	return e, nil
}
