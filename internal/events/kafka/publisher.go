package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sheikh-saqib/branch-ledger/internal/models/events"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Publisher struct {
	writer  messageWriter
	timeout time.Duration
}

func NewPublisher(brokers []string, topic string, timeout time.Duration) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			WriteTimeout: timeout,
		},
		timeout: timeout,
	}
}

// Publish writes the event as JSON, keyed by customer so one customer's
// events stay on one partition in order.
func (p *Publisher) Publish(ctx context.Context, event events.LedgerEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	return p.writer.WriteMessages(ctx,
		kafka.Message{
			Key:   []byte(event.CustomerID),
			Value: data,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(event.Type)},
			},
		},
	)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
