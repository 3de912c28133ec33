package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sort-bench/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, config.LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)

	log.Info("trial finished", zap.Int("trial", 3), zap.Duration("elapsed", 1500*time.Millisecond))
	log.Debug("hidden")
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trial finished", entry["msg"])
	assert.Equal(t, "1.5s", entry["elapsed"])
	assert.EqualValues(t, 3, entry["trial"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_ConsoleDebug(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, config.LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
