package ledger

import (
	"fmt"
	"strings"

	"github.com/sheikh-saqib/branch-ledger/internal/xerrors"
	"github.com/shopspring/decimal"
)

const (
	// maxAmountScale is the most fractional digits a typed amount may carry.
	maxAmountScale = 8
	// maxAmountDigits matches NUMERIC(15, 2) in the ledger journal.
	maxAmountDigits = 13
)

// maxAmount is the first magnitude a typed amount may not reach.
var maxAmount = decimal.New(1, maxAmountDigits)

// ParseAmount reads a typed monetary amount such as "150", "150.5" or
// "150,50". Sign is preserved; range checks belong to Deposit and Withdraw.
// Exponent forms like "1e-2000000000" are rejected before any arithmetic
// rescales the balance to them.
func ParseAmount(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q: %w", text, xerrors.ErrInvalidAmountFormat)
	}

	if exp := amount.Exponent(); exp < -maxAmountScale || exp > maxAmountDigits {
		return decimal.Zero, fmt.Errorf("%q: out of range: %w", text, xerrors.ErrInvalidAmountFormat)
	}
	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, fmt.Errorf("%q: out of range: %w", text, xerrors.ErrInvalidAmountFormat)
	}
	return amount, nil
}
