package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a single statement record for an account
type LedgerEntry struct {
	ID        string          // unique identifier
	Kind      TransactionKind // deposit or withdrawal
	Amount    decimal.Decimal // always positive
	CreatedAt time.Time       // captured when the entry is appended
}
