package models

import "github.com/shopspring/decimal"

// BranchCode is the single office every account belongs to.
const BranchCode = "0001"

// Account is a customer's account at the branch.
// Customer is shared with the customer registry, never owned by the account.
type Account struct {
	Branch      string
	Number      int
	Customer    *Customer
	Balance     decimal.Decimal
	Statement   []LedgerEntry
	Withdrawals int
}

// CustomerID returns the tax identifier of the owning customer.
func (a Account) CustomerID() string {
	if a.Customer == nil {
		return ""
	}
	return a.Customer.ID
}

// Clone returns a copy whose statement can be appended to without touching a.
func (a Account) Clone() Account {
	cp := a
	cp.Statement = make([]LedgerEntry, len(a.Statement))
	copy(cp.Statement, a.Statement)
	return cp
}
