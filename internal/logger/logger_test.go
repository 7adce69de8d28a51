package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent_TagsEveryLine(t *testing.T) {
	var buf bytes.Buffer
	l := Component(New(&buf, slog.LevelInfo), "email-notifier")
	l.Info("sent", "to", "owner@salon.in")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "email-notifier", entry["component"])
	assert.Equal(t, "sent", entry["msg"])
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)
	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewSystemLogger_WritesToLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l, err := NewSystemLogger(dir, slog.LevelInfo)
	require.NoError(t, err)
	l.Info("hello")

	data, err := os.ReadFile(filepath.Join(dir, "system.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNewSystemLogger_Stderr(t *testing.T) {
	l, err := NewSystemLogger("", slog.LevelInfo)
	require.NoError(t, err)
	assert.NotNil(t, l)
}
