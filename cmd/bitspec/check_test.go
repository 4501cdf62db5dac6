package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bitspec/internal/catalog"
	"github.com/joshuapare/bitspec/pkg/bitspec"
)

func TestCheckCommand(t *testing.T) {
	resetFlags()
	path := testCatalogPath(t, "registers.yaml")

	output, err := captureOutput(t, func() error {
		return runCheck([]string{path})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"5 field(s) OK"})
}

func TestCheckCommand_Show(t *testing.T) {
	resetFlags()
	checkShow = true
	checkFormat = "canonical"

	output, err := captureOutput(t, func() error {
		return runCheck([]string{testCatalogPath(t, "registers.yaml")})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{
		"mode = 0[12..15]\n",
		"payload = 6[]..13[];(5[0..7])<=8\n",
	})
	assertNotContains(t, output, []string{"OK"})

	resetFlags()
	checkShow = true
	jsonOut = true
	output, err = captureOutput(t, func() error {
		return runCheck([]string{testCatalogPath(t, "registers.yaml")})
	})
	require.NoError(t, err)
	assertJSON(t, output)
	assertContains(t, output, []string{`"word_bits": 16`, `"default": "0x0_10"`})
}

func TestCheckCommand_Broken(t *testing.T) {
	resetFlags()
	output, err := captureOutput(t, func() error {
		return runCheck([]string{testCatalogPath(t, "broken.yaml")})
	})
	require.Error(t, err)
	require.Empty(t, output)

	require.ErrorIs(t, err, bitspec.ErrParse)
	require.ErrorIs(t, err, bitspec.ErrReversedRange)
	require.ErrorIs(t, err, catalog.ErrDefaultTooWide)
	require.Contains(t, err.Error(), "1 field(s) valid")
	require.Contains(t, err.Error(), `field "unterminated"`)
}

func TestCheckCommand_Encoding(t *testing.T) {
	resetFlags()
	_, err := captureOutput(t, func() error {
		return runCheck([]string{testCatalogPath(t, "cp1252.yaml")})
	})
	require.Error(t, err)

	resetFlags()
	checkEncoding = catalog.EncodingWindows1252
	checkShow = true
	output, err := captureOutput(t, func() error {
		return runCheck([]string{testCatalogPath(t, "cp1252.yaml")})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"desc:   café"})
}

func TestCheckCommand_Missing(t *testing.T) {
	resetFlags()
	_, err := captureOutput(t, func() error {
		return runCheck([]string{"does-not-exist.yaml"})
	})
	require.ErrorContains(t, err, "failed to load catalog")
}
