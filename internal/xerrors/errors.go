// Package xerrors holds the domain errors shared by the ledger, the stores
// and the console. Callers match them with errors.Is.
package xerrors

import "errors"

// Registry
var (
	ErrDuplicateCustomer = errors.New("customer with this tax ID is already registered")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrAccountNotFound   = errors.New("account not found")
)

// Ledger operations
var (
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrExceedsWithdrawalLimit  = errors.New("withdrawal amount exceeds the limit")
	ErrWithdrawalCountExceeded = errors.New("maximum number of withdrawals exceeded")
	ErrInvalidAmount           = errors.New("the amount provided is invalid")
	ErrInvalidAmountFormat     = errors.New("the amount provided is not a number")
)

// Console
var (
	ErrInvalidMenuSelection = errors.New("invalid operation, please select the desired operation again")
)
