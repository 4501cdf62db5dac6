package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bitspec/internal/catalog"
	"github.com/joshuapare/bitspec/pkg/bitspec"
)

func printSpec(t *testing.T, opts Options, name, in string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, New(&buf, opts).PrintSpec(name, bitspec.MustParse(in)))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":          FormatText,
		"text":      FormatText,
		"JSON":      FormatJSON,
		"canonical": FormatCanonical,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseFormat("reg")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestPrinter_PrintSpec_Text(t *testing.T) {
	out := printSpec(t, DefaultOptions(), "frame", "3[4..7]..6[0..5];48")
	t.Logf("Text output:\n%s", out)

	require.Equal(t, strings.Join([]string{
		"frame",
		"  spec:   3[4..7]..6[0..5];48",
		"  start:  word 3, bits 4..7",
		"  end:    word 6, bits 0..5",
		"  repeat: fixed x48",
		"  width:  26 bits (1248 total)",
		"",
	}, "\n"), out)
}

func TestPrinter_PrintSpec_TextUnnamed(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowWidth = false
	out := printSpec(t, opts, "", "4[]..7[];(3[])<=49")

	require.Contains(t, out, "spec:   4[]..7[];(3[])<=49\n")
	require.Contains(t, out, "start:  word 4, all bits\n")
	require.Contains(t, out, "repeat: variable while 3[] <= 49\n")
	require.NotContains(t, out, "width")
	require.False(t, strings.HasPrefix(out, " "))
}

func TestPrinter_PrintSpec_TextSingleBit(t *testing.T) {
	out := printSpec(t, DefaultOptions(), "", "4")
	require.Contains(t, out, "start:  word 0, bit 4\n")
	require.Contains(t, out, "repeat: none\n")
	require.Contains(t, out, "width:  1 bits\n")
}

func TestPrinter_PrintSpec_JSON(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatJSON
	opts.WordBits = 16
	out := printSpec(t, opts, "payload", "2[]..9[];(1[0..3])<9")

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Equal(t, "payload", result["name"])
	require.Equal(t, "2[]..9[];(1[0..3])<9", result["spec"])
	require.Equal(t, float64(8*16), result["width"])

	start := result["start"].(map[string]any)
	require.Equal(t, "whole_word", start["bits"])
	require.NotContains(t, start, "low")

	repeat := result["repeat"].(map[string]any)
	require.Equal(t, "variable", repeat["kind"])
	require.Equal(t, "<", repeat["condition"])
	require.Equal(t, float64(9), repeat["limit"])
	word := repeat["word"].(map[string]any)
	require.Equal(t, float64(1), word["index"])
	require.Equal(t, float64(3), word["high"])
}

func TestPrinter_PrintSpec_Canonical(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatCanonical

	require.Equal(t, "0[3..5]..4[]\n", printSpec(t, opts, "", "3..5..4[]"))
	require.Equal(t, "mode = 0[4]\n", printSpec(t, opts, "mode", "4"))
}

func TestPrinter_PrintLiteral(t *testing.T) {
	lit, err := bitspec.ParseLiteral("0b1011_1100")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, DefaultOptions()).PrintLiteral(lit))
	out := buf.String()
	require.Contains(t, out, "0b1011_1100\n")
	require.Contains(t, out, "base:   binary\n")
	require.Contains(t, out, "value:  188 (0xbc)\n")
	require.Contains(t, out, "bits:   8\n")

	buf.Reset()
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.NoError(t, New(&buf, opts).PrintLiteral(lit))
	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, "binary", result["base"])
	require.Equal(t, float64(188), result["value"])
}

func TestPrinter_PrintLiteral_Overflow(t *testing.T) {
	lit, err := bitspec.ParseLiteral("0x1_0000_0000_0000_0000")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, DefaultOptions()).PrintLiteral(lit))
	require.Contains(t, buf.String(), "exceeds 64 bits")

	buf.Reset()
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.NoError(t, New(&buf, opts).PrintLiteral(lit))
	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.NotContains(t, result, "value")
}

const testCatalog = `word_bits: 16
fields:
  - name: mode
    spec: "0[12..15]"
    description: operating mode
    default: 0b0010
  - name: samples
    spec: "10[];4"
`

func TestPrinter_PrintCatalog(t *testing.T) {
	c, err := catalog.Parse([]byte(testCatalog), catalog.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, DefaultOptions()).PrintCatalog(c))
	out := buf.String()
	require.Contains(t, out, "word bits: 16\n")
	require.Contains(t, out, "\nmode\n  desc:   operating mode\n")
	require.Contains(t, out, "  default: 0b0010\n")
	require.Contains(t, out, "  width:  16 bits (64 total)\n")

	buf.Reset()
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.NoError(t, New(&buf, opts).PrintCatalog(c))
	var result struct {
		WordBits int              `json:"word_bits"`
		Fields   []map[string]any `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, 16, result.WordBits)
	require.Len(t, result.Fields, 2)
	require.Equal(t, "0b0010", result.Fields[0]["default"])
	require.Equal(t, float64(64), result.Fields[1]["total_bits"])

	buf.Reset()
	opts.Format = FormatCanonical
	require.NoError(t, New(&buf, opts).PrintCatalog(c))
	require.Equal(t, "mode = 0[12..15]\nsamples = 10[];4\n", buf.String())
}

func TestPrinter_ColorToBufferIsPlain(t *testing.T) {
	opts := DefaultOptions()
	opts.Color = true
	out := printSpec(t, opts, "frame", "3[4..7]")

	require.NotContains(t, out, "\x1b[")
	require.Contains(t, out, "frame\n  spec:   3[4..7]\n")
}

func TestPrinter_JSONKeepsOperators(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatJSON
	out := printSpec(t, opts, "", "0[];(1[])<=4")
	require.Contains(t, out, `"condition": "<="`)
	require.Contains(t, out, `"spec": "0[];(1[])<=4"`)
}
