package memory

import (
	"context"
	"sync"

	interfaces "github.com/sheikh-saqib/branch-ledger/internal/interfaces"
	"github.com/sheikh-saqib/branch-ledger/internal/models"
	"github.com/sheikh-saqib/branch-ledger/internal/xerrors"
)

// CustomerStore is an in-memory implementation of interfaces.CustomerStore.
// Customers are kept in registration order and looked up by linear scan.
type CustomerStore struct {
	mu        sync.Mutex         // protects customers
	customers []*models.Customer // registration order
}

// NewCustomerStore creates an empty CustomerStore
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{
		customers: make([]*models.Customer, 0),
	}
}

// Register appends a new customer unless the tax ID is already taken.
// The returned pointer is the registry's record and is what accounts share.
func (m *CustomerStore) Register(ctx context.Context, customer models.Customer) (*models.Customer, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.find(customer.ID) != nil {
		return nil, xerrors.ErrDuplicateCustomer
	}

	c := customer
	m.customers = append(m.customers, &c)
	return &c, nil
}

func (m *CustomerStore) FindByID(ctx context.Context, id string) (*models.Customer, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	if c := m.find(id); c != nil {
		return c, nil
	}
	return nil, xerrors.ErrCustomerNotFound
}

func (m *CustomerStore) Count(ctx context.Context) int {

	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.customers)
}

// find returns the first customer with the given ID. Caller holds mu.
func (m *CustomerStore) find(id string) *models.Customer {
	for _, c := range m.customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Compile-time check: ensure CustomerStore implements CustomerStore interface
var _ interfaces.CustomerStore = (*CustomerStore)(nil)
