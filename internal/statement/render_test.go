package statement

import (
	"testing"
	"time"

	"github.com/sheikh-saqib/branch-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderEmpty(t *testing.T) {
	got := Render(decimal.Zero, nil)
	assert.Equal(t, NoTransactions+"\n\nBalance: 0.00", got)
}

func TestRenderKeepsAppendOrder(t *testing.T) {
	at := time.Date(2026, 10, 16, 14, 3, 9, 0, time.UTC)
	entries := []models.LedgerEntry{
		{Kind: models.KindDeposit, Amount: decimal.NewFromInt(100), CreatedAt: at},
		{Kind: models.KindWithdrawal, Amount: decimal.RequireFromString("20.5"), CreatedAt: at.Add(time.Minute)},
	}

	got := Render(decimal.RequireFromString("79.5"), entries)

	want := "Deposit: R$ 100.00 - 16/10/2026 14:03:09\n" +
		"Withdrawal: R$ 20.50 - 16/10/2026 14:04:09\n" +
		"\nBalance: 79.50"
	assert.Equal(t, want, got)
	assert.NotContains(t, got, NoTransactions)
}

func TestRenderPadsBalance(t *testing.T) {
	assert.Contains(t, Render(decimal.RequireFromString("0.1"), nil), "Balance: 0.10")
}
