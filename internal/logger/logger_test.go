package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit_DisabledDiscards(t *testing.T) {
	var buf bytes.Buffer
	closeFn, err := Init(Options{Enabled: false, Writer: &buf})
	require.NoError(t, err)
	defer closeFn()

	Info("parsed", "spec", "4")
	require.Empty(t, buf.String())
}

func TestInit_TextLevel(t *testing.T) {
	var buf bytes.Buffer
	closeFn, err := Init(Options{Enabled: true, Level: slog.LevelWarn, Writer: &buf})
	require.NoError(t, err)
	defer closeFn()
	t.Cleanup(func() { _, _ = Init(Options{}) })

	Info("hidden")
	Warn("shown", "field", "flags")
	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "shown")
	require.Contains(t, out, "field=flags")
}

func TestInit_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bitspec.log")
	closeFn, err := Init(Options{Enabled: true, Level: slog.LevelDebug, JSON: true, File: path})
	require.NoError(t, err)

	Debug("catalog loaded", "fields", 3)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	require.Equal(t, "catalog loaded", rec["msg"])
	require.Equal(t, float64(3), rec["fields"])

	// Leave the global logger quiet for other tests.
	_, err = Init(Options{})
	require.NoError(t, err)
}
