package accounts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleared-dev/gstledger/internal/model"
)

// ErrUnknownAccount is returned in strict mode for names missing from the chart.
var ErrUnknownAccount = errors.New("account not in chart of accounts")

// ErrDuplicateAccount is returned when a chart names the same account twice.
var ErrDuplicateAccount = errors.New("duplicate account name")

// Registry provides in-memory lookup over the chart of accounts, keyed by name.
// It is immutable once built.
type Registry struct {
	accounts []model.Account
	byName   map[string]model.Account
	strict   bool
}

// Option configures a Registry.
type Option func(*Registry)

// Strict makes Resolve reject unregistered names instead of defaulting them to Asset.
func Strict(strict bool) Option {
	return func(r *Registry) { r.strict = strict }
}

// NewRegistry creates a Registry from a slice of accounts.
func NewRegistry(accounts []model.Account, opts ...Option) (*Registry, error) {
	byName := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		if _, ok := byName[a.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAccount, a.Name)
		}
		byName[a.Name] = a
	}
	r := &Registry{accounts: append([]model.Account(nil), accounts...), byName: byName}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Load reads a chart-of-accounts CSV file and returns a Registry.
func Load(path string, opts ...Option) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewRegistry(accts, opts...)
}

// All returns all accounts in chart order.
func (r *Registry) All() []model.Account {
	return append([]model.Account(nil), r.accounts...)
}

// Get returns an account by name.
func (r *Registry) Get(name string) (model.Account, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// Exists reports whether an account name is registered.
func (r *Registry) Exists(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Strict reports whether unregistered names are rejected.
func (r *Registry) Strict() bool {
	return r.strict
}

// Resolve returns the account type for name. Unregistered names resolve to
// Asset unless the registry is strict, in which case ErrUnknownAccount is returned.
func (r *Registry) Resolve(name string) (model.AccountType, error) {
	if a, ok := r.byName[name]; ok {
		return a.Type, nil
	}
	if r.strict {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccount, name)
	}
	return model.AccountTypeAsset, nil
}

// ByType returns all accounts of the given type.
func (r *Registry) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range r.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Save writes the chart of accounts to path, creating parent directories.
func (r *Registry) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, r.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
