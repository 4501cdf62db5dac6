// Package catalog loads named bit specs from a YAML field map.
//
// A catalog file names the word width, a limits preset and the fields:
//
//	word_bits: 16
//	limits: strict
//	fields:
//	  - name: mode
//	    spec: 0[12..15]
//	    default: 0b0010
//	  - name: payload
//	    spec: 2[]..9[];(1[])<9
//
// Every spec is parsed and validated. A field's default literal must fit
// in one instance of the field.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/bitspec/internal/logger"
	"github.com/joshuapare/bitspec/internal/mmfile"
	"github.com/joshuapare/bitspec/pkg/bitspec"
	"github.com/joshuapare/bitspec/pkg/types"
)

var (
	// ErrUnsupportedEncoding indicates an input encoding the decoder does not know.
	ErrUnsupportedEncoding = errors.New("catalog: unsupported encoding")
	// ErrEmpty indicates a catalog document with no content.
	ErrEmpty = errors.New("catalog: empty document")
	// ErrMissingName indicates a field without a name.
	ErrMissingName = errors.New("catalog: field has no name")
	// ErrDuplicateField indicates two fields sharing a name.
	ErrDuplicateField = errors.New("catalog: duplicate field")
	// ErrDefaultTooWide indicates a default literal wider than its field.
	ErrDefaultTooWide = errors.New("catalog: default does not fit field")
)

// Options controls how a catalog is decoded and validated.
type Options struct {
	// Encoding of the raw document. A byte order mark overrides it.
	Encoding string

	// Limits overrides the preset named in the document.
	Limits string

	// WordBits overrides the word width in the document. 0 keeps it.
	WordBits int
}

// DefaultOptions returns options that honor the document as written.
func DefaultOptions() Options {
	return Options{Encoding: EncodingUTF8}
}

// document is the on-disk shape.
type document struct {
	WordBits int        `yaml:"word_bits"`
	Limits   string     `yaml:"limits"`
	Fields   []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Name        string `yaml:"name"`
	Spec        string `yaml:"spec"`
	Description string `yaml:"description"`
	Default     string `yaml:"default"`
}

// Field is one validated catalog entry.
type Field struct {
	Name        string
	Description string
	Spec        types.BitSpec

	// Width is the bit width of one instance of the field.
	Width int
	// TotalBits is Width times a fixed repeat count.
	TotalBits int

	// Default is nil when the document gives none.
	Default *types.Literal
}

// DefaultValue returns the numeric default, if any.
func (f Field) DefaultValue() (uint64, bool) {
	if f.Default == nil {
		return 0, false
	}
	v, err := f.Default.Uint64()
	if err != nil {
		return 0, false
	}
	return v, true
}

// Catalog is an ordered set of named fields sharing one set of limits.
type Catalog struct {
	Limits bitspec.Limits
	Fields []Field

	index map[string]int
}

// Lookup returns the field called name.
func (c *Catalog) Lookup(name string) (Field, bool) {
	i, ok := c.index[name]
	if !ok {
		return Field{}, false
	}
	return c.Fields[i], true
}

// Len returns the number of valid fields.
func (c *Catalog) Len() int { return len(c.Fields) }

// Load reads and parses the catalog at path.
func Load(path string, opts Options) (*Catalog, error) {
	data, err := mmfile.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	logger.Debug("catalog read", "path", path, "bytes", len(data))
	return Parse(data, opts)
}

// Parse decodes a catalog document. Field errors do not stop parsing: the
// returned catalog holds every valid field and the error joins one entry
// per rejected field.
func Parse(data []byte, opts Options) (*Catalog, error) {
	text, err := decodeInput(data, opts.Encoding)
	if err != nil {
		return nil, err
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(text))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("catalog: %w", err)
	}

	limits, err := resolveLimits(doc, opts)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		Limits: limits,
		Fields: make([]Field, 0, len(doc.Fields)),
		index:  make(map[string]int, len(doc.Fields)),
	}

	var errs []error
	for i, fd := range doc.Fields {
		if fd.Name == "" {
			errs = append(errs, fmt.Errorf("catalog: field #%d: %w", i, ErrMissingName))
			continue
		}
		if _, dup := c.index[fd.Name]; dup {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateField, fd.Name))
			continue
		}
		f, err := buildField(fd, limits)
		if err != nil {
			errs = append(errs, fmt.Errorf("catalog: field %q: %w", fd.Name, err))
			continue
		}
		c.index[f.Name] = len(c.Fields)
		c.Fields = append(c.Fields, f)
		logger.Debug("catalog field", "name", f.Name, "spec", f.Spec.String(), "bits", f.TotalBits)
	}

	return c, errors.Join(errs...)
}

func resolveLimits(doc document, opts Options) (bitspec.Limits, error) {
	name := doc.Limits
	if opts.Limits != "" {
		name = opts.Limits
	}
	limits, err := bitspec.LimitsByName(name)
	if err != nil {
		return bitspec.Limits{}, err
	}

	wordBits := doc.WordBits
	if opts.WordBits > 0 {
		wordBits = opts.WordBits
	}
	if wordBits != 0 {
		if wordBits < 1 || wordBits > bitspec.MaxWordBits {
			return bitspec.Limits{}, &bitspec.ValidationError{
				Limit:   "WordBits",
				Current: wordBits,
				Maximum: bitspec.MaxWordBits,
			}
		}
		limits.WordBits = wordBits
	}
	return limits, nil
}

func buildField(fd fieldDoc, limits bitspec.Limits) (Field, error) {
	spec, err := bitspec.Parse(fd.Spec)
	if err != nil {
		return Field{}, fmt.Errorf("spec %q: %w", fd.Spec, err)
	}
	if err := bitspec.Validate(spec, limits); err != nil {
		return Field{}, err
	}

	width, err := bitspec.BitWidth(spec, limits.WordBits)
	if err != nil {
		return Field{}, err
	}
	total, err := bitspec.TotalBits(spec, limits.WordBits)
	if err != nil {
		return Field{}, err
	}

	f := Field{
		Name:        fd.Name,
		Description: fd.Description,
		Spec:        spec,
		Width:       width,
		TotalBits:   total,
	}

	if fd.Default != "" {
		lit, err := bitspec.ParseLiteral(fd.Default)
		if err != nil {
			return Field{}, fmt.Errorf("default %q: %w", fd.Default, err)
		}
		n, err := lit.BitLen()
		if err != nil {
			return Field{}, fmt.Errorf("default %q: %w", fd.Default, err)
		}
		if n > width {
			return Field{}, fmt.Errorf("%w: %s needs %d bits, field has %d",
				ErrDefaultTooWide, fd.Default, n, width)
		}
		f.Default = &lit
	}
	return f, nil
}
