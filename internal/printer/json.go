package printer

import (
	"encoding/json"
	"fmt"

	"github.com/joshuapare/bitspec/internal/catalog"
	"github.com/joshuapare/bitspec/pkg/bitspec"
	"github.com/joshuapare/bitspec/pkg/types"
)

// jsonWord represents one word reference in JSON format.
type jsonWord struct {
	Index uint8  `json:"index"`
	Bits  string `json:"bits"`
	Low   *uint8 `json:"low,omitempty"`
	High  *uint8 `json:"high,omitempty"`
}

// jsonRepeat represents a repeat clause in JSON format.
type jsonRepeat struct {
	Kind      string    `json:"kind"`
	Count     *uint8    `json:"count,omitempty"`
	Word      *jsonWord `json:"word,omitempty"`
	Condition string    `json:"condition,omitempty"`
	Limit     *uint8    `json:"limit,omitempty"`
}

// jsonSpec represents a parsed spec in JSON format.
type jsonSpec struct {
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	Spec        string     `json:"spec"`
	Start       jsonWord   `json:"start"`
	End         *jsonWord  `json:"end,omitempty"`
	Repeat      jsonRepeat `json:"repeat"`
	Width       *int       `json:"width,omitempty"`
	TotalBits   *int       `json:"total_bits,omitempty"`
	Default     string     `json:"default,omitempty"`
}

// jsonLiteral represents a literal in JSON format.
type jsonLiteral struct {
	Literal string  `json:"literal"`
	Base    string  `json:"base"`
	Digits  string  `json:"digits"`
	Value   *uint64 `json:"value,omitempty"`
	Bits    *int    `json:"bits,omitempty"`
}

// jsonCatalog represents a catalog in JSON format.
type jsonCatalog struct {
	WordBits int        `json:"word_bits"`
	Fields   []jsonSpec `json:"fields"`
}

func toJSONWord(w types.Word) jsonWord {
	jw := jsonWord{Index: w.Index, Bits: w.BitRange.Kind.String()}
	if !w.BitRange.IsWholeWord() {
		low, high := w.BitRange.Low, w.BitRange.High
		jw.Low, jw.High = &low, &high
	}
	return jw
}

func (p *Printer) buildJSONSpec(name string, spec types.BitSpec, wordBits int) (jsonSpec, error) {
	js := jsonSpec{
		Name:   name,
		Spec:   spec.String(),
		Start:  toJSONWord(spec.Start),
		Repeat: jsonRepeat{Kind: spec.Repeat.Kind.String()},
	}
	if spec.End != nil {
		end := toJSONWord(*spec.End)
		js.End = &end
	}

	switch r := spec.Repeat; r.Kind {
	case types.RepeatFixed:
		count := r.Count
		js.Repeat.Count = &count
	case types.RepeatVariable:
		word := toJSONWord(r.Word)
		limit := r.Limit
		js.Repeat.Word = &word
		js.Repeat.Condition = r.Condition.String()
		js.Repeat.Limit = &limit
	}

	if p.opts.ShowWidth {
		width, err := bitspec.BitWidth(spec, wordBits)
		if err != nil {
			return jsonSpec{}, err
		}
		total, err := bitspec.TotalBits(spec, wordBits)
		if err != nil {
			return jsonSpec{}, err
		}
		js.Width, js.TotalBits = &width, &total
	}
	return js, nil
}

// printSpecJSON prints a single spec as a JSON object.
func (p *Printer) printSpecJSON(name string, spec types.BitSpec) error {
	js, err := p.buildJSONSpec(name, spec, p.opts.WordBits)
	if err != nil {
		return err
	}
	return p.writeJSON(js)
}

// printLiteralJSON prints a literal as a JSON object. Values wider than 64
// bits omit value and bits.
func (p *Printer) printLiteralJSON(lit types.Literal) error {
	jl := jsonLiteral{
		Literal: lit.String(),
		Base:    lit.Base.String(),
		Digits:  lit.Digits,
	}
	if v, err := lit.Uint64(); err == nil {
		n, _ := lit.BitLen()
		jl.Value, jl.Bits = &v, &n
	}
	return p.writeJSON(jl)
}

// printCatalogJSON prints the catalog as one JSON document.
func (p *Printer) printCatalogJSON(c *catalog.Catalog) error {
	jc := jsonCatalog{
		WordBits: c.Limits.WordBits,
		Fields:   make([]jsonSpec, 0, c.Len()),
	}
	for _, f := range c.Fields {
		js, err := p.buildJSONSpec(f.Name, f.Spec, c.Limits.WordBits)
		if err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
		if p.opts.ShowDescription {
			js.Description = f.Description
		}
		if f.Default != nil {
			js.Default = f.Default.String()
		}
		jc.Fields = append(jc.Fields, js)
	}
	return p.writeJSON(jc)
}

// writeJSON writes v indented. Conditions such as "<=" are left unescaped.
func (p *Printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
