package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sheikh-saqib/branch-ledger/internal/config"
	"github.com/sheikh-saqib/branch-ledger/internal/console"
	"github.com/sheikh-saqib/branch-ledger/internal/events"
	"github.com/sheikh-saqib/branch-ledger/internal/events/kafka"
	interfaces "github.com/sheikh-saqib/branch-ledger/internal/interfaces"
	"github.com/sheikh-saqib/branch-ledger/internal/ledger"
	"github.com/sheikh-saqib/branch-ledger/internal/logger"
	"github.com/sheikh-saqib/branch-ledger/internal/storage/memory"
	"github.com/sheikh-saqib/branch-ledger/internal/storage/postgres"
	"go.uber.org/zap"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.LogOutput)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	ctx := context.Background()

	publisher, closers := buildPublisher(ctx, cfg, zl)
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				zl.Warn("failed to close event sink", zap.Error(err))
			}
		}
	}()

	bank := ledger.NewLedger(memory.NewCustomerStore(), memory.NewAccountStore(), publisher, zl)

	zl.Info("branch ledger started", zap.Bool("kafka", cfg.KafkaEnabled()), zap.Bool("journal", cfg.JournalEnabled()))
	if err := console.New(bank, os.Stdin, os.Stdout, zl).Run(ctx); err != nil {
		zl.Error("console stopped", zap.Error(err))
	}
}

// buildPublisher returns nil when no sink is configured. A sink that cannot
// be reached at startup is skipped with a warning.
func buildPublisher(ctx context.Context, cfg config.AppConfig, zl *zap.Logger) (interfaces.EventPublisher, []io.Closer) {
	var (
		sinks   []interfaces.EventPublisher
		closers []io.Closer
	)

	if cfg.KafkaEnabled() {
		p := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.PublishTimeout)
		sinks = append(sinks, p)
		closers = append(closers, p)
	}

	if cfg.JournalEnabled() {
		j, err := postgres.OpenJournal(ctx, cfg.JournalDatabaseURL, cfg.PublishTimeout)
		if err != nil {
			zl.Warn("ledger journal disabled", zap.Error(err))
		} else {
			sinks = append(sinks, j)
			closers = append(closers, j)
		}
	}

	if len(sinks) == 0 {
		return nil, closers
	}
	return events.NewFanout(sinks...), closers
}
