package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "deck"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"deck_id": "7d1c", "theme": "Ocean Blue"})
	log.Info("deck assembled")

	entry := decode(t, buf)
	require.Equal(t, "deck assembled", entry["message"])
	require.Equal(t, "7d1c", entry["deck_id"])
	require.Equal(t, "Ocean Blue", entry["theme"])
	require.Equal(t, "deck", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerWarnIncludesError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.With("asset", "Title Background.jpg").Warn(errors.New("not found"), "asset skipped")

	entry := decode(t, buf)
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "asset skipped", entry["message"])
	require.Equal(t, "Title Background.jpg", entry["asset"])
	require.Equal(t, "not found", entry["error"])
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"slide": 3})
	log.Error(errors.New("boom"), "render failed")

	entry := decode(t, buf)
	require.Equal(t, "render failed", entry["message"])
	require.Equal(t, float64(3), entry["slide"])
	require.Equal(t, "boom", entry["error"])
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("x")
		nilLogger.Warn(nil, "x")
		nilLogger.WithFields(map[string]any{"a": 1}).Debug("x")
		Nop().With("a", 1).Error(errors.New("x"), "x")
	})
}

func TestIsTerminalOnBuffer(t *testing.T) {
	t.Parallel()

	require.False(t, IsTerminal(&bytes.Buffer{}))
}
