package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	interfaces "github.com/sheikh-saqib/branch-ledger/internal/interfaces"
	"github.com/sheikh-saqib/branch-ledger/internal/models"
	"github.com/sheikh-saqib/branch-ledger/internal/models/events"
	"github.com/sheikh-saqib/branch-ledger/internal/statement"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ledger is the branch: it owns the customer and account registries and
// runs every operation the console offers against them.
type Ledger struct {
	customers interfaces.CustomerStore
	accounts  interfaces.AccountStore
	publisher interfaces.EventPublisher // may be nil
	logger    *zap.Logger
	limits    Limits
	now       func() time.Time
}

type Option func(*Ledger)

// WithClock replaces time.Now when stamping ledger entries.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func WithLimits(limits Limits) Option {
	return func(l *Ledger) { l.limits = limits }
}

// NewLedger wires the registries and the optional event publisher.
func NewLedger(customers interfaces.CustomerStore, accounts interfaces.AccountStore, publisher interfaces.EventPublisher, logger *zap.Logger, opts ...Option) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Ledger{
		customers: customers,
		accounts:  accounts,
		publisher: publisher,
		logger:    logger,
		limits:    DefaultLimits,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RegisterCustomer adds a customer, rejecting a tax ID already on file.
func (l *Ledger) RegisterCustomer(ctx context.Context, customer models.Customer) (*models.Customer, error) {
	stored, err := l.customers.Register(ctx, customer)
	if err != nil {
		return nil, err
	}

	l.logger.Info("customer registered", zap.String("customer_id", stored.ID))
	l.publish(ctx, events.LedgerEvent{
		Type:       events.CustomerRegistered,
		CustomerID: stored.ID,
	})
	return stored, nil
}

// CustomerExists reports whether the tax ID is already registered.
func (l *Ledger) CustomerExists(ctx context.Context, customerID string) bool {
	_, err := l.customers.FindByID(ctx, customerID)
	return err == nil
}

// OpenAccount creates the next sequential account for an existing customer.
// Nothing is created when the customer is unknown.
func (l *Ledger) OpenAccount(ctx context.Context, customerID string) (models.Account, error) {
	customer, err := l.customers.FindByID(ctx, customerID)
	if err != nil {
		return models.Account{}, err
	}

	account, err := l.accounts.Open(ctx, models.BranchCode, customer)
	if err != nil {
		return models.Account{}, fmt.Errorf("open account: %w", err)
	}

	l.logger.Info("account opened",
		zap.String("customer_id", customerID),
		zap.String("branch", account.Branch),
		zap.Int("account_number", account.Number),
	)
	l.publish(ctx, events.LedgerEvent{
		Type:          events.AccountOpened,
		CustomerID:    customerID,
		Branch:        account.Branch,
		AccountNumber: account.Number,
		Balance:       account.Balance,
	})
	return account, nil
}

// FindAccount returns the first account opened for the customer.
func (l *Ledger) FindAccount(ctx context.Context, customerID string) (models.Account, error) {
	return l.accounts.FindByCustomerID(ctx, customerID)
}

// Deposit credits the first account of the customer.
func (l *Ledger) Deposit(ctx context.Context, customerID string, amount decimal.Decimal) (models.Account, error) {
	return l.post(ctx, customerID, amount, events.DepositCompleted, func(p Position, at time.Time) (Position, error) {
		return Deposit(p, amount, at)
	})
}

// Withdraw debits the first account of the customer within the branch limits.
func (l *Ledger) Withdraw(ctx context.Context, customerID string, amount decimal.Decimal) (models.Account, error) {
	return l.post(ctx, customerID, amount, events.WithdrawalCompleted, func(p Position, at time.Time) (Position, error) {
		return Withdraw(p, amount, l.limits, at)
	})
}

// Statement returns the account together with its rendered statement.
func (l *Ledger) Statement(ctx context.Context, customerID string) (models.Account, string, error) {
	account, err := l.accounts.FindByCustomerID(ctx, customerID)
	if err != nil {
		return models.Account{}, "", err
	}
	return account, statement.Render(account.Balance, account.Statement), nil
}

func (l *Ledger) post(ctx context.Context, customerID string, amount decimal.Decimal, kind events.Type,
	op func(Position, time.Time) (Position, error)) (models.Account, error) {

	account, err := l.accounts.FindByCustomerID(ctx, customerID)
	if err != nil {
		return models.Account{}, err
	}

	next, err := op(PositionOf(account), l.now())
	if err != nil {
		l.logger.Info("ledger operation rejected",
			zap.String("type", string(kind)),
			zap.Int("account_number", account.Number),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
		return account, err
	}

	account = next.Apply(account)
	if err := l.accounts.Save(ctx, account); err != nil {
		return models.Account{}, fmt.Errorf("save account %d: %w", account.Number, err)
	}

	l.logger.Info("ledger operation posted",
		zap.String("type", string(kind)),
		zap.Int("account_number", account.Number),
		zap.String("amount", amount.String()),
		zap.String("balance", account.Balance.String()),
	)
	l.publish(ctx, events.LedgerEvent{
		Type:          kind,
		CustomerID:    customerID,
		Branch:        account.Branch,
		AccountNumber: account.Number,
		Amount:        amount,
		Balance:       account.Balance,
	})
	return account, nil
}

// publish is best effort: the state change has already happened, so a sink
// failure is logged and never reported to the teller.
func (l *Ledger) publish(ctx context.Context, event events.LedgerEvent) {
	if l.publisher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.OccurredAt = l.now()

	if err := l.publisher.Publish(ctx, event); err != nil {
		l.logger.Warn("failed to publish ledger event",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Error(err),
		)
	}
}
