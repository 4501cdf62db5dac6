package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCatalogPath returns the path to a catalog under testdata/catalogs.
func testCatalogPath(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join("..", "..", "testdata", "catalogs", name)
	_, err := os.Stat(path)
	require.NoError(t, err, "test catalog not found")
	return path
}

// resetFlags restores every command flag to its default.
func resetFlags() {
	verbose, quiet, jsonOut, noColor = false, false, false, false
	parseFormat, parseLimits, parseWordBits = "text", "", 0
	parseValidate, parsePrefix, parseNoWidth = false, false, false
	literalFormat = "text"
	checkEncoding, checkLimits, checkWordBits = "UTF-8", "", 0
	checkShow, checkFormat = false, "text"
}

// captureOutput runs fn with os.Stdout redirected and returns what it wrote.
// The pipe is drained concurrently so large outputs cannot block fn.
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	var buf bytes.Buffer
	done := make(chan error, 1)
	go func() {
		_, copyErr := io.Copy(&buf, r)
		done <- copyErr
	}()

	fnErr := fn()
	require.NoError(t, w.Close())
	require.NoError(t, <-done)
	require.NoError(t, r.Close())

	return buf.String(), fnErr
}

// assertJSON checks that output is one valid JSON document.
func assertJSON(t *testing.T, output string) {
	t.Helper()
	assert.True(t, json.Valid([]byte(output)), "invalid JSON output:\n%s", output)
}

// assertContains checks that output contains all expected strings.
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		assert.Contains(t, output, want)
	}
}

// assertNotContains checks that output contains none of the unwanted strings.
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		assert.NotContains(t, output, dont)
	}
}
