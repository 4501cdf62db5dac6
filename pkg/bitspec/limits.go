package bitspec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/bitspec/pkg/types"
)

var (
	// ErrReversedRange indicates a bit range whose low bound exceeds its high bound.
	ErrReversedRange = errors.New("bitspec: reversed bit range")
	// ErrReversedSpan indicates an end word whose index precedes the start word.
	ErrReversedSpan = errors.New("bitspec: end word precedes start word")
	// ErrUnknownLimits indicates a limits preset name LimitsByName does not know.
	ErrUnknownLimits = errors.New("bitspec: unknown limits preset")
)

// Limits defines the constraints a parsed spec must satisfy to describe a
// real layout. The parser itself enforces none of them.
type Limits struct {
	// WordBits is the width of one word. Bit positions must be below it.
	WordBits int

	// MaxWordIndex is the largest word index any word in the spec may use,
	// including the word driving a variable repeat.
	MaxWordIndex int

	// MaxRepeatCount is the largest fixed repeat count.
	MaxRepeatCount int

	// MaxTotalBits bounds the bits covered by the span times its fixed
	// repeat count. 0 means unlimited.
	MaxTotalBits int

	// AllowReversed accepts ranges such as 7..3 and spans whose end word
	// precedes the start word.
	AllowReversed bool
}

// DefaultLimits returns limits for byte-addressed data: 8-bit words, any
// index or count the notation can express, ordered ranges only.
func DefaultLimits() Limits {
	return Limits{
		WordBits:       ByteWordBits,
		MaxWordIndex:   MaxIndex,
		MaxRepeatCount: MaxIndex,
		MaxTotalBits:   0,
		AllowReversed:  false,
	}
}

// RelaxedLimits returns limits that accept every spec the parser accepts.
func RelaxedLimits() Limits {
	return Limits{
		WordBits:       MaxWordBits,
		MaxWordIndex:   MaxIndex,
		MaxRepeatCount: MaxIndex,
		MaxTotalBits:   0,
		AllowReversed:  true,
	}
}

// StrictLimits returns conservative limits for small fixed-size frames.
func StrictLimits() Limits {
	return Limits{
		WordBits:       ByteWordBits,
		MaxWordIndex:   StrictMaxWordIndex,
		MaxRepeatCount: StrictMaxRepeatCount,
		MaxTotalBits:   StrictMaxTotalBits,
		AllowReversed:  false,
	}
}

// WordLimits returns DefaultLimits with a different word width, e.g. 16 or
// 32 for register files.
func WordLimits(wordBits int) Limits {
	l := DefaultLimits()
	l.WordBits = wordBits
	return l
}

// Preset names accepted by LimitsByName.
const (
	PresetDefault = "default"
	PresetRelaxed = "relaxed"
	PresetStrict  = "strict"
)

// LimitsByName returns the preset called name. The empty name selects
// DefaultLimits.
func LimitsByName(name string) (Limits, error) {
	switch strings.ToLower(name) {
	case "", PresetDefault:
		return DefaultLimits(), nil
	case PresetRelaxed:
		return RelaxedLimits(), nil
	case PresetStrict:
		return StrictLimits(), nil
	default:
		return Limits{}, fmt.Errorf("%w: %q", ErrUnknownLimits, name)
	}
}

// ValidationError represents a limit validation failure.
type ValidationError struct {
	Limit   string // Name of the limit that was exceeded
	Current int    // Current value
	Maximum int    // Maximum allowed value
	Field   string // Part of the spec: "start", "end" or "repeat"
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("bit spec limit exceeded at %s: %s is %d (max %d)",
			e.Field, e.Limit, e.Current, e.Maximum)
	}
	return fmt.Sprintf("bit spec limit exceeded: %s is %d (max %d)",
		e.Limit, e.Current, e.Maximum)
}

// Validate checks spec against limits and returns the first violation as a
// *ValidationError, or an error wrapping ErrReversedRange / ErrReversedSpan.
func Validate(spec types.BitSpec, limits Limits) error {
	if err := validateWord(spec.Start, "start", limits); err != nil {
		return err
	}

	if spec.End != nil {
		if err := validateWord(*spec.End, "end", limits); err != nil {
			return err
		}
		if !limits.AllowReversed && spec.End.Index < spec.Start.Index {
			return fmt.Errorf("%w: %s..%s", ErrReversedSpan, spec.Start, spec.End)
		}
	}

	switch spec.Repeat.Kind {
	case types.RepeatFixed:
		if int(spec.Repeat.Count) > limits.MaxRepeatCount {
			return &ValidationError{
				Limit:   "MaxRepeatCount",
				Current: int(spec.Repeat.Count),
				Maximum: limits.MaxRepeatCount,
				Field:   "repeat",
			}
		}
	case types.RepeatVariable:
		if err := validateWord(spec.Repeat.Word, "repeat", limits); err != nil {
			return err
		}
	}

	if limits.MaxTotalBits > 0 {
		total, err := TotalBits(spec, limits.WordBits)
		if err != nil {
			return err
		}
		if total > limits.MaxTotalBits {
			return &ValidationError{
				Limit:   "MaxTotalBits",
				Current: total,
				Maximum: limits.MaxTotalBits,
			}
		}
	}

	return nil
}

func validateWord(w types.Word, field string, limits Limits) error {
	if int(w.Index) > limits.MaxWordIndex {
		return &ValidationError{
			Limit:   "MaxWordIndex",
			Current: int(w.Index),
			Maximum: limits.MaxWordIndex,
			Field:   field,
		}
	}

	r := w.BitRange
	if r.IsWholeWord() {
		return nil
	}
	for _, pos := range []uint8{r.Low, r.High} {
		if int(pos) >= limits.WordBits {
			return &ValidationError{
				Limit:   "WordBits",
				Current: int(pos),
				Maximum: limits.WordBits - 1,
				Field:   field,
			}
		}
	}
	if !limits.AllowReversed && r.Reversed() {
		return fmt.Errorf("%w at %s: %s", ErrReversedRange, field, w)
	}
	return nil
}
