// Package printer renders parsed bit specs, literals and catalogs as text,
// JSON or canonical notation.
package printer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/bitspec/internal/catalog"
	"github.com/joshuapare/bitspec/pkg/bitspec"
	"github.com/joshuapare/bitspec/pkg/types"
)

const (
	DefaultIndentSize = 2
	DefaultWordBits   = bitspec.ByteWordBits
)

// ErrUnknownFormat indicates a format name ParseFormat does not know.
var ErrUnknownFormat = errors.New("printer: unknown format")

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a human-readable breakdown.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"

	// FormatCanonical outputs the spec in canonical notation, one per line.
	FormatCanonical Format = "canonical"
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatCanonical:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, canonical).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// ShowWidth includes the bit width of each spec.
	// Default: true
	ShowWidth bool

	// WordBits is the word width used to compute widths.
	// Default: 8
	WordBits int

	// ShowDescription includes catalog field descriptions.
	// Default: true
	ShowDescription bool

	// Color styles text output when the writer is a terminal.
	// Default: false
	Color bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:          FormatText,
		IndentSize:      DefaultIndentSize,
		ShowWidth:       true,
		WordBits:        DefaultWordBits,
		ShowDescription: true,
		Color:           false,
	}
}

// Printer handles formatted output of bit specs.
type Printer struct {
	opts   Options
	writer io.Writer
	style  styles
}

// New creates a new Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintSpec("flags", bitspec.MustParse("3[4..7]"))
func New(w io.Writer, opts Options) *Printer {
	if opts.WordBits <= 0 {
		opts.WordBits = DefaultWordBits
	}
	return &Printer{
		writer: w,
		opts:   opts,
		style:  newStyles(w, opts.Color),
	}
}

// PrintSpec prints a single spec. name may be empty.
func (p *Printer) PrintSpec(name string, spec types.BitSpec) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printSpecJSON(name, spec)
	case FormatCanonical:
		return p.printSpecCanonical(name, spec)
	default:
		return p.printSpecText(name, spec)
	}
}

// PrintLiteral prints a hex or binary literal.
func (p *Printer) PrintLiteral(lit types.Literal) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printLiteralJSON(lit)
	case FormatCanonical:
		_, err := fmt.Fprintln(p.writer, lit)
		return err
	default:
		return p.printLiteralText(lit)
	}
}

// PrintCatalog prints every field of c in order. Widths use the catalog's
// word width rather than Options.WordBits.
func (p *Printer) PrintCatalog(c *catalog.Catalog) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printCatalogJSON(c)
	case FormatCanonical:
		for _, f := range c.Fields {
			if err := p.printSpecCanonical(f.Name, f.Spec); err != nil {
				return err
			}
		}
		return nil
	default:
		return p.printCatalogText(c)
	}
}

func (p *Printer) printSpecCanonical(name string, spec types.BitSpec) error {
	var err error
	if name != "" {
		_, err = fmt.Fprintf(p.writer, "%s = %s\n", name, spec)
	} else {
		_, err = fmt.Fprintln(p.writer, spec)
	}
	return err
}
