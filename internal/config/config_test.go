package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "LOG_OUTPUT", "KAFKA_BROKERS", "KAFKA_TOPIC", "JOURNAL_DATABASE_URL", "PUBLISH_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, []string{"stderr"}, cfg.LogOutput)
	assert.Equal(t, "ledger_events", cfg.KafkaTopic)
	assert.Equal(t, 3*time.Second, cfg.PublishTimeout)
	assert.False(t, cfg.KafkaEnabled())
	assert.False(t, cfg.JournalEnabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_OUTPUT", "stderr, /tmp/bank.log")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,,kafka-2:9092 ")
	t.Setenv("KAFKA_TOPIC", "branch_0001")
	t.Setenv("JOURNAL_DATABASE_URL", "postgres://bank@localhost/bank?sslmode=disable")
	t.Setenv("PUBLISH_TIMEOUT", "750ms")

	cfg := Load()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"stderr", "/tmp/bank.log"}, cfg.LogOutput)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "branch_0001", cfg.KafkaTopic)
	assert.Equal(t, 750*time.Millisecond, cfg.PublishTimeout)
	assert.True(t, cfg.KafkaEnabled())
	assert.True(t, cfg.JournalEnabled())
}

func TestLoadIgnoresBadDuration(t *testing.T) {
	t.Setenv("PUBLISH_TIMEOUT", "soon")
	assert.Equal(t, 3*time.Second, Load().PublishTimeout)
}
