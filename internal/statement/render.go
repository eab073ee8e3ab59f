// Package statement turns an account's ledger entries into the text shown to
// the teller.
package statement

import (
	"fmt"
	"strings"

	"github.com/sheikh-saqib/branch-ledger/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// NoTransactions replaces the entry list of an account with no movements.
	NoTransactions = "No transactions have been made."

	CurrencySymbol  = "R$"
	TimestampLayout = "02/01/2006 15:04:05"
)

// FormatEntry renders one line, e.g. "Deposit: R$ 100.00 - 16/10/2026 14:03:09".
func FormatEntry(e models.LedgerEntry) string {
	return fmt.Sprintf("%s: %s %s - %s",
		e.Kind.Label(), CurrencySymbol, e.Amount.StringFixed(2), e.CreatedAt.Format(TimestampLayout))
}

// Render lists the entries in the order they were appended and closes with
// the balance to two decimal places.
func Render(balance decimal.Decimal, entries []models.LedgerEntry) string {
	var b strings.Builder

	if len(entries) == 0 {
		b.WriteString(NoTransactions)
		b.WriteByte('\n')
	}
	for _, e := range entries {
		b.WriteString(FormatEntry(e))
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "\nBalance: %s", balance.StringFixed(2))
	return b.String()
}
