// Package engine runs the finance ledger: it posts journal entries to the
// trial balance, splits GST, reconciles invoices and bills, mirrors cash and
// bank movements, and raises debit and credit notes.
//
// Every operation is a pure function of a State value and returns a new State;
// the input State is never modified. Book wraps an Engine for callers that
// want a single owner holding the current state.
package engine

import (
	"io"
	"log/slog"
	"time"

	"github.com/cleared-dev/gstledger/internal/accounts"
	"github.com/cleared-dev/gstledger/internal/bank"
	"github.com/cleared-dev/gstledger/internal/notes"
	"github.com/cleared-dev/gstledger/internal/subledger"
	"github.com/cleared-dev/gstledger/internal/tax"
)

// DefaultDueDays is the gap between a document's date and its due date.
const DefaultDueDays = 30

// Engine holds the fixed configuration of the ledger.
type Engine struct {
	chart      *accounts.Registry
	routing    tax.Accounts
	dueDays    int
	reconciler *subledger.Reconciler
	syncer     *bank.Syncer
	notes      *notes.Builder
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithRouting overrides which accounts mean cash, receivables, GST, and so on.
func WithRouting(routing tax.Accounts) Option {
	return func(e *Engine) { e.routing = routing }
}

// WithDueDays sets the due-date offset for new invoices and bills.
func WithDueDays(days int) Option {
	return func(e *Engine) { e.dueDays = days }
}

// WithLogger sets the logger for diagnostic messages.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithClock sets the time source used to date entries and notes submitted without a date.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine over a chart of accounts. Bank sync always follows the
// ledger accounts accounts.Cash and accounts.Bank; WithRouting changes GST
// classification only.
func New(chart *accounts.Registry, opts ...Option) *Engine {
	e := &Engine{
		chart:   chart,
		routing: tax.DefaultAccounts(),
		dueDays: DefaultDueDays,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.reconciler = subledger.NewReconciler(e.routing, e.dueDays)
	e.syncer = bank.NewSyncer(accounts.Cash, accounts.Bank)
	e.notes = notes.NewBuilder(e.routing)
	return e
}

// Chart returns the chart of accounts.
func (en *Engine) Chart() *accounts.Registry {
	return en.chart
}
