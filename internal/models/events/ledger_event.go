package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	CustomerRegistered  Type = "customer_registered"
	AccountOpened       Type = "account_opened"
	DepositCompleted    Type = "deposit"
	WithdrawalCompleted Type = "withdrawal"
)

// LedgerEvent is published after every successful state change.
// Amount and Balance are zero for registry events.
type LedgerEvent struct {
	ID            string          `json:"id"`
	Type          Type            `json:"type"`
	CustomerID    string          `json:"customer_id"`
	Branch        string          `json:"branch,omitempty"`
	AccountNumber int             `json:"account_number,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
