package ledger

import (
	"testing"
	"time"

	"github.com/sheikh-saqib/branch-ledger/internal/models"
	"github.com/sheikh-saqib/branch-ledger/internal/xerrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var at = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDepositPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0.01", "1", "99.99", "10000"} {
		start := Position{Balance: dec("25")}
		got, err := Deposit(start, dec(amount), at)
		require.NoError(t, err, amount)

		assert.True(t, got.Balance.Equal(dec("25").Add(dec(amount))), amount)
		require.Len(t, got.Statement, 1)
		assert.Equal(t, models.KindDeposit, got.Statement[0].Kind)
		assert.True(t, got.Statement[0].Amount.Equal(dec(amount)))
		assert.Equal(t, at, got.Statement[0].CreatedAt)
		assert.NotEmpty(t, got.Statement[0].ID)
	}
}

func TestDepositNonPositiveAmount(t *testing.T) {
	for _, amount := range []string{"0", "-0.01", "-100"} {
		start := Position{Balance: dec("25")}
		got, err := Deposit(start, dec(amount), at)
		require.ErrorIs(t, err, xerrors.ErrInvalidAmount, amount)
		assert.True(t, got.Balance.Equal(dec("25")))
		assert.Empty(t, got.Statement)
	}
}

func TestDepositDoesNotAliasInput(t *testing.T) {
	base := make([]models.LedgerEntry, 1, 4)
	start := Position{Balance: dec("10"), Statement: base}

	a, err := Deposit(start, dec("1"), at)
	require.NoError(t, err)
	b, err := Deposit(start, dec("2"), at)
	require.NoError(t, err)

	assert.True(t, a.Statement[1].Amount.Equal(dec("1")))
	assert.True(t, b.Statement[1].Amount.Equal(dec("2")))
	assert.Len(t, start.Statement, 1)
}

func TestWithdrawPriority(t *testing.T) {
	tests := []struct {
		name        string
		balance     string
		amount      string
		withdrawals int
		want        error
	}{
		{"insufficient beats everything", "100", "600", 3, xerrors.ErrInsufficientBalance},
		{"insufficient beats invalid", "-10", "-5", 0, xerrors.ErrInsufficientBalance},
		{"limit beats count", "1000", "501", 3, xerrors.ErrExceedsWithdrawalLimit},
		{"count beats invalid", "1000", "0", 3, xerrors.ErrWithdrawalCountExceeded},
		{"zero amount", "1000", "0", 0, xerrors.ErrInvalidAmount},
		{"negative amount", "1000", "-1", 2, xerrors.ErrInvalidAmount},
		{"exactly the limit", "1000", "500", 2, nil},
		{"exactly the balance", "80", "80", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := Position{Balance: dec(tt.balance), Withdrawals: tt.withdrawals}
			got, err := Withdraw(start, dec(tt.amount), DefaultLimits, at)

			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
				assert.Equal(t, start, got)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Balance.Equal(dec(tt.balance).Sub(dec(tt.amount))))
			assert.Equal(t, tt.withdrawals+1, got.Withdrawals)
			require.Len(t, got.Statement, 1)
			assert.Equal(t, models.KindWithdrawal, got.Statement[0].Kind)
		})
	}
}

func TestWithdrawCountNeverExceedsMax(t *testing.T) {
	p := Position{Balance: dec("1000")}
	var err error
	for i := 0; i < DefaultLimits.MaxWithdrawals; i++ {
		p, err = Withdraw(p, dec("10"), DefaultLimits, at)
		require.NoError(t, err)
	}

	for _, amount := range []string{"1", "10", "500"} {
		_, err = Withdraw(p, dec(amount), DefaultLimits, at)
		assert.ErrorIs(t, err, xerrors.ErrWithdrawalCountExceeded, amount)
	}
	assert.Equal(t, DefaultLimits.MaxWithdrawals, p.Withdrawals)
	assert.True(t, p.Balance.Equal(dec("970")))
}

func TestWithdrawAboveLimitNeverSucceeds(t *testing.T) {
	p := Position{Balance: dec("100000")}
	for _, amount := range []string{"500.01", "501", "99999"} {
		_, err := Withdraw(p, dec(amount), DefaultLimits, at)
		assert.ErrorIs(t, err, xerrors.ErrExceedsWithdrawalLimit, amount)
	}
}

func TestPositionRoundTrip(t *testing.T) {
	acc := models.Account{Number: 7, Balance: dec("5"), Withdrawals: 1}
	p, err := Deposit(PositionOf(acc), dec("5"), at)
	require.NoError(t, err)

	out := p.Apply(acc)
	assert.Equal(t, 7, out.Number)
	assert.True(t, out.Balance.Equal(dec("10")))
	assert.Equal(t, 1, out.Withdrawals)
	assert.Len(t, out.Statement, 1)
}
