package models

// TransactionKind tells a deposit apart from a withdrawal in the statement.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
)

// Label is the word shown at the start of a statement line.
func (k TransactionKind) Label() string {
	switch k {
	case KindDeposit:
		return "Deposit"
	case KindWithdrawal:
		return "Withdrawal"
	default:
		return string(k)
	}
}
