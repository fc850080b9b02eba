package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cleared-dev/gstledger/internal/model"
)

const (
	numFields = 4
	colCode   = 0
	colName   = 1
	colType   = 2
	colDesc   = 3
)

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"code", "account_name", "account_type", "description"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	if acct.Code != 0 {
		row[colCode] = strconv.Itoa(acct.Code)
	}
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	row[colDesc] = acct.Description
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var code int
	if record[colCode] != "" {
		var err error
		code, err = strconv.Atoi(record[colCode])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing code %q: %w", record[colCode], err)
		}
	}

	if record[colName] == "" {
		return model.Account{}, fmt.Errorf("account name is required")
	}

	accountType := model.AccountType(record[colType])
	if !accountType.Valid() {
		return model.Account{}, fmt.Errorf("invalid account type %q for %s", record[colType], record[colName])
	}

	return model.Account{
		Code:        code,
		Name:        record[colName],
		Type:        accountType,
		Description: record[colDesc],
	}, nil
}
