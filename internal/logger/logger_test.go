package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesAtConfiguredLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.log")

	log, err := New("warn", []string{path})
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("visible", zap.String("customer_id", "111"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), `"msg":"visible"`)
	assert.Contains(t, string(data), `"customer_id":"111"`)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud", nil)
	assert.Error(t, err)
}
