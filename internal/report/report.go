// Package report renders ledger snapshots as aligned plain-text tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/gstledger/internal/engine"
	"github.com/cleared-dev/gstledger/internal/model"
)

const width = 78

// Printer writes report sections to w. Styling is dropped when w is not a terminal.
type Printer struct {
	w       io.Writer
	title   lipgloss.Style
	dim     lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("240")),
		success: r.NewStyle().Foreground(lipgloss.Color("82")),
		failure: r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Snapshot prints every section of snap.
func (p *Printer) Snapshot(snap engine.Snapshot) {
	p.TrialBalance(snap)
	p.Documents("INVOICES", snap.Invoices)
	p.Documents("BILLS", snap.Bills)
	p.Notes("DEBIT NOTES", snap.DebitNotes)
	p.Notes("CREDIT NOTES", snap.CreditNotes)
	p.BankAccounts(snap.BankAccounts)
	p.Transactions(snap.Transactions)
}

// TrialBalance prints each account's debit and credit totals and whether they balance.
func (p *Printer) TrialBalance(snap engine.Snapshot) {
	p.heading("TRIAL BALANCE")
	if len(snap.TrialBalance) == 0 {
		p.empty()
		return
	}
	fmt.Fprintf(p.w, "%-34s %-10s %15s %15s\n", "ACCOUNT", "TYPE", "DEBIT", "CREDIT")
	for _, e := range snap.TrialBalance {
		fmt.Fprintf(p.w, "%-34s %-10s %15s %15s\n", truncate(e.Account, 34), e.AccountType, amount(e.Debit), amount(e.Credit))
	}
	fmt.Fprintln(p.w, strings.Repeat("─", width))
	fmt.Fprintf(p.w, "%-45s %15s %15s\n", "Total", amount(snap.TotalDebit), amount(snap.TotalCredit))
	if snap.Balanced {
		fmt.Fprintln(p.w, p.success.Render("[BALANCED]"))
	} else {
		fmt.Fprintln(p.w, p.failure.Render("[UNBALANCED!]"))
	}
	fmt.Fprintln(p.w)
}

// Documents prints invoices or bills.
func (p *Printer) Documents(title string, docs []model.Document) {
	p.heading(title)
	if len(docs) == 0 {
		p.empty()
		return
	}
	fmt.Fprintf(p.w, "%-10s %-12s %-10s %-10s %13s %13s  %s\n", "ID", "PARTY", "DATE", "DUE", "AMOUNT", "BALANCE", "STATUS")
	for _, d := range docs {
		fmt.Fprintf(p.w, "%-10s %-12s %-10s %-10s %13s %13s  %s\n",
			d.ID, truncate(d.Party, 12), day(d.Date.Format(dateFormat)), day(d.DueDate.Format(dateFormat)),
			amount(d.Amount), amount(d.Balance), d.Status)
	}
	fmt.Fprintln(p.w)
}

// Notes prints debit or credit notes.
func (p *Printer) Notes(title string, notes []model.Note) {
	if len(notes) == 0 {
		return
	}
	p.heading(title)
	fmt.Fprintf(p.w, "%-8s %-10s %-10s %12s %10s %12s  %s\n", "ID", "DOCUMENT", "DATE", "BASE", "GST", "TOTAL", "ENTRIES")
	for _, n := range notes {
		fmt.Fprintf(p.w, "%-8s %-10s %-10s %12s %10s %12s  %s\n",
			n.ID, n.DocumentID, n.Date.Format(dateFormat),
			amount(n.BaseAmount), amount(n.GSTAmount), amount(n.TotalAmount), strings.Join(n.EntryIDs, " "))
	}
	fmt.Fprintln(p.w)
}

// BankAccounts prints bank account balances.
func (p *Printer) BankAccounts(accts []model.BankAccount) {
	p.heading("BANK ACCOUNTS")
	if len(accts) == 0 {
		p.empty()
		return
	}
	fmt.Fprintf(p.w, "%-10s %-30s %-6s %15s\n", "ID", "NAME", "TYPE", "BALANCE")
	for _, a := range accts {
		fmt.Fprintf(p.w, "%-10s %-30s %-6s %15s\n", a.ID, truncate(a.Name, 30), a.Type, amount(a.Balance))
	}
	fmt.Fprintln(p.w)
}

// Transactions prints mirrored bank transactions.
func (p *Printer) Transactions(txns []model.Transaction) {
	p.heading("BANK TRANSACTIONS")
	if len(txns) == 0 {
		p.empty()
		return
	}
	fmt.Fprintf(p.w, "%-12s %-10s %-10s %-10s %13s %-8s %s\n", "ENTRY", "ACCOUNT", "DATE", "TYPE", "AMOUNT", "STATUS", "DESCRIPTION")
	for _, t := range txns {
		fmt.Fprintf(p.w, "%-12s %-10s %-10s %-10s %13s %-8s %s\n",
			t.EntryID, t.BankAccountID, t.Date.Format(dateFormat), t.Type, amount(t.Amount), t.Status, t.Description)
	}
	fmt.Fprintln(p.w)
}

// Chart prints the chart of accounts with each account's normal balance side.
func (p *Printer) Chart(accts []model.Account) {
	p.heading("CHART OF ACCOUNTS")
	if len(accts) == 0 {
		p.empty()
		return
	}
	fmt.Fprintf(p.w, "%-6s %-34s %-10s %-7s %s\n", "CODE", "NAME", "TYPE", "NORMAL", "DESCRIPTION")
	for _, a := range accts {
		fmt.Fprintf(p.w, "%-6d %-34s %-10s %-7s %s\n", a.Code, truncate(a.Name, 34), a.Type, a.Type.NormalSide(), a.Description)
	}
	fmt.Fprintln(p.w)
}

// Failures prints mismatches found when checking a result.
func (p *Printer) Failures(failures []string) {
	for _, f := range failures {
		fmt.Fprintln(p.w, p.failure.Render("FAIL "+f))
	}
}

func (p *Printer) heading(title string) {
	fmt.Fprintln(p.w, p.title.Render(title))
}

func (p *Printer) empty() {
	fmt.Fprintln(p.w, p.dim.Render("  (none)"))
	fmt.Fprintln(p.w)
}

const dateFormat = "2006-01-02"

// day blanks the formatted zero time.
func day(s string) string {
	if s == "0001-01-01" {
		return ""
	}
	return s
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
