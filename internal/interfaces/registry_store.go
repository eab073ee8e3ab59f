package interfaces

import (
	"context"

	"github.com/sheikh-saqib/branch-ledger/internal/models"
)

type CustomerStore interface {
	Register(ctx context.Context, customer models.Customer) (*models.Customer, error)
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	Count(ctx context.Context) int
}

type AccountStore interface {
	Open(ctx context.Context, branch string, customer *models.Customer) (models.Account, error)
	FindByCustomerID(ctx context.Context, customerID string) (models.Account, error)
	Save(ctx context.Context, account models.Account) error
	Count(ctx context.Context) int
}
