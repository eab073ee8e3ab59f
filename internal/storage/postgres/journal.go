package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // registers the "postgres" driver
	interfaces "github.com/sheikh-saqib/branch-ledger/internal/interfaces"
	"github.com/sheikh-saqib/branch-ledger/internal/models/events"
)

const createJournalTable = `CREATE TABLE IF NOT EXISTS ledger_events (
	id TEXT PRIMARY KEY,
	event_type TEXT NOT NULL,
	customer_id TEXT NOT NULL,
	branch TEXT,
	account_number INTEGER,
	amount NUMERIC(15, 2) NOT NULL,
	balance NUMERIC(15, 2) NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL
)`

// Journal is a write-only audit trail of ledger events. Nothing is ever
// read back from it, so the console still starts empty on every run.
type Journal struct {
	db      *sql.DB
	timeout time.Duration
}

func NewJournal(db *sql.DB, timeout time.Duration) *Journal {
	return &Journal{
		db:      db,
		timeout: timeout,
	}
}

// OpenJournal connects with lib/pq and makes sure the table exists.
func OpenJournal(ctx context.Context, dsn string, timeout time.Duration) (*Journal, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	j := NewJournal(db, timeout)
	if err := j.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return j, nil
}

func (j *Journal) Migrate(ctx context.Context) error {
	ctx, cancel := j.withTimeout(ctx)
	defer cancel()

	if _, err := j.db.ExecContext(ctx, createJournalTable); err != nil {
		return fmt.Errorf("failed to create ledger_events: %w", err)
	}
	return nil
}

func (j *Journal) Publish(ctx context.Context, event events.LedgerEvent) error {
	const query = `INSERT INTO ledger_events
	(id, event_type, customer_id, branch, account_number, amount, balance, occurred_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	ctx, cancel := j.withTimeout(ctx)
	defer cancel()

	_, err := j.db.ExecContext(ctx, query,
		event.ID,
		string(event.Type),
		event.CustomerID,
		nullString(event.Branch),
		nullInt(event.AccountNumber),
		event.Amount,
		event.Balance,
		event.OccurredAt,
	)
	return err
}

func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if j.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, j.timeout)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}

var _ interfaces.EventPublisher = (*Journal)(nil)
