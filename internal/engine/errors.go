package engine

import (
	"errors"

	"github.com/cleared-dev/gstledger/internal/accounts"
)

var (
	ErrEntryNotFound  = errors.New("journal entry not found")
	ErrDuplicateEntry = errors.New("journal entry already exists")
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
	ErrUnknownAccount = accounts.ErrUnknownAccount
)
