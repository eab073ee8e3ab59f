package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/sheikh-saqib/branch-ledger/internal/models"
	"github.com/sheikh-saqib/branch-ledger/internal/xerrors"
	"github.com/shopspring/decimal"
)

// Limits bound what a single account may withdraw.
type Limits struct {
	PerWithdrawal  decimal.Decimal // largest amount allowed in one withdrawal
	MaxWithdrawals int             // successful withdrawals allowed per account
}

// DefaultLimits apply to every account at the branch.
var DefaultLimits = Limits{
	PerWithdrawal:  decimal.NewFromInt(500),
	MaxWithdrawals: 3,
}

// Position is the part of an account that deposits and withdrawals change.
type Position struct {
	Balance     decimal.Decimal
	Statement   []models.LedgerEntry
	Withdrawals int
}

// PositionOf extracts the mutable state of an account.
func PositionOf(a models.Account) Position {
	return Position{Balance: a.Balance, Statement: a.Statement, Withdrawals: a.Withdrawals}
}

// Apply writes p back onto a copy of the account.
func (p Position) Apply(a models.Account) models.Account {
	a.Balance = p.Balance
	a.Statement = p.Statement
	a.Withdrawals = p.Withdrawals
	return a
}

// Deposit credits amount to the position. A non-positive amount fails with
// ErrInvalidAmount and the position is returned unchanged.
func Deposit(p Position, amount decimal.Decimal, at time.Time) (Position, error) {
	if !amount.IsPositive() {
		return p, xerrors.ErrInvalidAmount
	}

	return Position{
		Balance:     p.Balance.Add(amount),
		Statement:   appendEntry(p.Statement, models.KindDeposit, amount, at),
		Withdrawals: p.Withdrawals,
	}, nil
}

// Withdraw debits amount from the position. Exactly one rule fires, checked
// in this order: balance, per-withdrawal limit, withdrawal count, amount sign.
func Withdraw(p Position, amount decimal.Decimal, limits Limits, at time.Time) (Position, error) {
	switch {
	case amount.GreaterThan(p.Balance):
		return p, xerrors.ErrInsufficientBalance
	case amount.GreaterThan(limits.PerWithdrawal):
		return p, xerrors.ErrExceedsWithdrawalLimit
	case p.Withdrawals >= limits.MaxWithdrawals:
		return p, xerrors.ErrWithdrawalCountExceeded
	case !amount.IsPositive():
		return p, xerrors.ErrInvalidAmount
	}

	return Position{
		Balance:     p.Balance.Sub(amount),
		Statement:   appendEntry(p.Statement, models.KindWithdrawal, amount, at),
		Withdrawals: p.Withdrawals + 1,
	}, nil
}

// appendEntry never shares a backing array with statement.
func appendEntry(statement []models.LedgerEntry, kind models.TransactionKind, amount decimal.Decimal, at time.Time) []models.LedgerEntry {
	out := make([]models.LedgerEntry, len(statement), len(statement)+1)
	copy(out, statement)
	return append(out, models.LedgerEntry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Amount:    amount,
		CreatedAt: at,
	})
}
