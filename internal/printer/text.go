package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/bitspec/internal/catalog"
	"github.com/joshuapare/bitspec/pkg/bitspec"
	"github.com/joshuapare/bitspec/pkg/types"
)

// line writes one "label: value" row.
func (p *Printer) line(indent, label, value string) {
	fmt.Fprintf(p.writer, "%s%s %s\n", indent,
		p.style.label(fmt.Sprintf("%-*s", labelWidth, label+":")), p.style.value(value))
}

// printSpecText prints a spec as an indented breakdown.
func (p *Printer) printSpecText(name string, spec types.BitSpec) error {
	depth := 0
	if name != "" {
		fmt.Fprintf(p.writer, "%s\n", p.style.name(name))
		depth = 1
	}
	return p.writeSpecLines(spec, p.opts.WordBits, depth)
}

func (p *Printer) writeSpecLines(spec types.BitSpec, wordBits, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	p.line(indent, "spec", spec.String())
	p.line(indent, "start", describeWord(spec.Start))
	if spec.End != nil {
		p.line(indent, "end", describeWord(*spec.End))
	}
	p.line(indent, "repeat", describeRepeat(spec.Repeat))

	if !p.opts.ShowWidth {
		return nil
	}
	width, err := bitspec.BitWidth(spec, wordBits)
	if err != nil {
		return err
	}
	total, err := bitspec.TotalBits(spec, wordBits)
	if err != nil {
		return err
	}
	if spec.Repeat.Kind == types.RepeatFixed {
		p.line(indent, "width", fmt.Sprintf("%d bits (%d total)", width, total))
	} else {
		p.line(indent, "width", fmt.Sprintf("%d bits", width))
	}
	return nil
}

func describeWord(w types.Word) string {
	r := w.BitRange
	switch r.Kind {
	case types.BitSingle:
		return fmt.Sprintf("word %d, bit %d", w.Index, r.Low)
	case types.BitRangeSpan:
		return fmt.Sprintf("word %d, bits %d..%d", w.Index, r.Low, r.High)
	default:
		return fmt.Sprintf("word %d, all bits", w.Index)
	}
}

func describeRepeat(r types.Repeat) string {
	switch r.Kind {
	case types.RepeatFixed:
		return fmt.Sprintf("fixed x%d", r.Count)
	case types.RepeatVariable:
		return fmt.Sprintf("variable while %s %s %d", r.Word, r.Condition, r.Limit)
	default:
		return "none"
	}
}

// printLiteralText prints a literal with its base and value.
func (p *Printer) printLiteralText(lit types.Literal) error {
	indent := strings.Repeat(" ", p.opts.IndentSize)

	fmt.Fprintf(p.writer, "%s\n", p.style.name(lit.String()))
	p.line(indent, "base", lit.Base.String())

	v, err := lit.Uint64()
	if err != nil {
		p.line(indent, "value", "exceeds 64 bits")
		return nil
	}
	n, _ := lit.BitLen()
	p.line(indent, "value", fmt.Sprintf("%d (%#x)", v, v))
	p.line(indent, "bits", fmt.Sprint(n))
	return nil
}

// printCatalogText prints each field followed by its breakdown.
func (p *Printer) printCatalogText(c *catalog.Catalog) error {
	indent := strings.Repeat(" ", p.opts.IndentSize)

	fmt.Fprintf(p.writer, "word bits: %d\n", c.Limits.WordBits)
	fmt.Fprintf(p.writer, "fields:    %d\n", c.Len())

	for _, f := range c.Fields {
		fmt.Fprintf(p.writer, "\n%s\n", p.style.name(f.Name))
		if p.opts.ShowDescription && f.Description != "" {
			p.line(indent, "desc", f.Description)
		}
		if err := p.writeSpecLines(f.Spec, c.Limits.WordBits, 1); err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
		if f.Default != nil {
			p.line(indent, "default", f.Default.String())
		}
	}
	return nil
}
