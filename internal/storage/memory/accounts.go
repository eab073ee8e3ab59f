package memory

import (
	"context"
	"fmt"
	"sync"

	interfaces "github.com/sheikh-saqib/branch-ledger/internal/interfaces"
	"github.com/sheikh-saqib/branch-ledger/internal/models"
	"github.com/sheikh-saqib/branch-ledger/internal/xerrors"
	"github.com/shopspring/decimal"
)

// AccountStore is an in-memory implementation of interfaces.AccountStore.
// Accounts are never removed, so the slice index is always Number-1.
type AccountStore struct {
	mu       sync.Mutex       // protects accounts
	accounts []models.Account // opening order
}

// NewAccountStore creates an empty AccountStore
func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make([]models.Account, 0),
	}
}

// Open creates an account numbered count+1 with a zero balance.
func (m *AccountStore) Open(ctx context.Context, branch string, customer *models.Customer) (models.Account, error) {
	if customer == nil {
		return models.Account{}, xerrors.ErrCustomerNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	account := models.Account{
		Branch:    branch,
		Number:    len(m.accounts) + 1,
		Customer:  customer,
		Balance:   decimal.Zero,
		Statement: make([]models.LedgerEntry, 0),
	}
	m.accounts = append(m.accounts, account)
	return account.Clone(), nil
}

// FindByCustomerID returns a copy of the first account owned by the customer.
// A customer holding several accounts always resolves to the oldest one.
func (m *AccountStore) FindByCustomerID(ctx context.Context, customerID string) (models.Account, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.accounts {
		if a.CustomerID() == customerID {
			return a.Clone(), nil // copy so callers can't modify internal state
		}
	}
	return models.Account{}, xerrors.ErrAccountNotFound
}

// Save replaces the stored account carrying the same number.
func (m *AccountStore) Save(ctx context.Context, account models.Account) error {

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := account.Number - 1
	if idx < 0 || idx >= len(m.accounts) {
		return fmt.Errorf("save account %d: %w", account.Number, xerrors.ErrAccountNotFound)
	}
	m.accounts[idx] = account.Clone()
	return nil
}

func (m *AccountStore) Count(ctx context.Context) int {

	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.accounts)
}

// Compile-time check: ensure AccountStore implements AccountStore interface
var _ interfaces.AccountStore = (*AccountStore)(nil)
