package types

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// LiteralBase is the radix of a numeric literal.
type LiteralBase uint8

const (
	// Hex is a "0x" / "0X" literal.
	Hex LiteralBase = 16
	// Binary is a "0b" / "0B" literal.
	Binary LiteralBase = 2
)

func (b LiteralBase) String() string {
	switch b {
	case Hex:
		return "hex"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("UNKNOWN_BASE_%d", uint8(b))
	}
}

// Prefix returns the canonical lower-case prefix for b.
func (b LiteralBase) Prefix() string {
	if b == Binary {
		return "0b"
	}
	return "0x"
}

// LiteralSeparator may appear after any digit of a literal.
const LiteralSeparator = "_"

// ErrLiteralOverflow indicates a literal does not fit in 64 bits.
var ErrLiteralOverflow = errors.New("types: literal overflows uint64")

// Literal is a fully consumed hexadecimal or binary literal. Digits holds the
// matched text after the prefix, separators included, e.g. "1011_1100".
type Literal struct {
	Base   LiteralBase
	Digits string
}

// String returns the literal with its canonical prefix.
func (l Literal) String() string {
	return l.Base.Prefix() + l.Digits
}

// Uint64 converts the literal to its numeric value.
func (l Literal) Uint64() (uint64, error) {
	digits := strings.ReplaceAll(l.Digits, LiteralSeparator, "")
	v, err := strconv.ParseUint(digits, int(l.Base), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", ErrLiteralOverflow, l)
		}
		return 0, fmt.Errorf("types: invalid literal %s: %w", l, err)
	}
	return v, nil
}

// BitLen returns the number of significant bits in the literal's value.
func (l Literal) BitLen() (int, error) {
	v, err := l.Uint64()
	if err != nil {
		return 0, err
	}
	return bits.Len64(v), nil
}
