// Package events fans ledger events out to the configured sinks.
package events

import (
	"context"
	"errors"

	interfaces "github.com/sheikh-saqib/branch-ledger/internal/interfaces"
	ledgerevents "github.com/sheikh-saqib/branch-ledger/internal/models/events"
)

// Fanout publishes every event to all of its sinks, even when one fails.
type Fanout struct {
	sinks []interfaces.EventPublisher
}

func NewFanout(sinks ...interfaces.EventPublisher) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Publish(ctx context.Context, event ledgerevents.LedgerEvent) error {
	var errs []error
	for _, s := range f.sinks {
		if err := s.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ interfaces.EventPublisher = (*Fanout)(nil)
