package bitspec

import (
	"errors"

	"github.com/joshuapare/bitspec/internal/grammar"
	"github.com/joshuapare/bitspec/pkg/types"
)

// ErrParse is returned for any input that is not a valid bit spec or literal.
var ErrParse = errors.New("bitspec: parse error")

// ParsePrefix parses the bit spec at the start of s and returns it together
// with the unconsumed remainder of s.
func ParsePrefix(s string) (types.BitSpec, string, error) {
	spec, rest, err := grammar.BitSpec(s)
	if err != nil {
		return types.BitSpec{}, s, ErrParse
	}
	return spec, rest, nil
}

// Parse parses s as a complete bit spec. Trailing input is an error.
func Parse(s string) (types.BitSpec, error) {
	spec, rest, err := ParsePrefix(s)
	if err != nil {
		return types.BitSpec{}, err
	}
	if rest != "" {
		return types.BitSpec{}, ErrParse
	}
	return spec, nil
}

// MustParse is like Parse but panics on error. It is intended for static
// tables of known-good specs.
func MustParse(s string) types.BitSpec {
	spec, err := Parse(s)
	if err != nil {
		panic("bitspec: MustParse(" + s + "): " + err.Error())
	}
	return spec
}

// ParseLiteral parses s as a hexadecimal or binary literal. The whole of s
// must be consumed.
func ParseLiteral(s string) (types.Literal, error) {
	lit, _, err := grammar.Literal(s)
	if err != nil {
		return types.Literal{}, ErrParse
	}
	return lit, nil
}

// Format returns the canonical textual form of spec. Parsing the result
// yields a value equal to spec.
func Format(spec types.BitSpec) string {
	return spec.String()
}
