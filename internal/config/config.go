package config

import (
	"os"
	"strings"
	"time"
)

type AppConfig struct {
	LogLevel  string
	LogOutput []string

	// Event sinks; an empty value disables the sink.
	KafkaBrokers       []string
	KafkaTopic         string
	JournalDatabaseURL string
	PublishTimeout     time.Duration
}

func Load() AppConfig {
	return AppConfig{
		LogLevel:           getEnv("LOG_LEVEL", "warn"),
		LogOutput:          getEnvSlice("LOG_OUTPUT", []string{"stderr"}),
		KafkaBrokers:       getEnvSlice("KAFKA_BROKERS", nil),
		KafkaTopic:         getEnv("KAFKA_TOPIC", "ledger_events"),
		JournalDatabaseURL: getEnv("JOURNAL_DATABASE_URL", ""),
		PublishTimeout:     getEnvAsDuration("PUBLISH_TIMEOUT", 3*time.Second),
	}
}

func (c AppConfig) KafkaEnabled() bool   { return len(c.KafkaBrokers) > 0 }
func (c AppConfig) JournalEnabled() bool { return c.JournalDatabaseURL != "" }

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvSlice(key string, defaultValue []string) []string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
