package types

import (
	"fmt"
	"strconv"
)

// Condition is the comparison bounding a variable repeat.
type Condition uint8

const (
	// Lt is the strict comparison "<".
	Lt Condition = iota
	// Lte is the non-strict comparison "<=".
	Lte
)

// String returns the operator text of c.
func (c Condition) String() string {
	switch c {
	case Lt:
		return "<"
	case Lte:
		return "<="
	default:
		return fmt.Sprintf("UNKNOWN_CONDITION_%d", uint8(c))
	}
}

// Holds reports whether value satisfies c against limit.
func (c Condition) Holds(value, limit uint64) bool {
	if c == Lte {
		return value <= limit
	}
	return value < limit
}

// RepeatKind identifies which form a Repeat takes.
type RepeatKind uint8

const (
	// RepeatNone means no repeat clause was given.
	RepeatNone RepeatKind = iota
	// RepeatFixed repeats the span Count times.
	RepeatFixed
	// RepeatVariable repeats the span while the value read from Word
	// satisfies Condition against Limit.
	RepeatVariable
)

func (k RepeatKind) String() string {
	switch k {
	case RepeatNone:
		return "none"
	case RepeatFixed:
		return "fixed"
	case RepeatVariable:
		return "variable"
	default:
		return fmt.Sprintf("UNKNOWN_REPEAT_%d", uint8(k))
	}
}

// Repeat is the optional repeat clause of a BitSpec. Only the fields that
// belong to Kind are set; the rest stay zero so values compare cleanly.
type Repeat struct {
	Kind      RepeatKind
	Count     uint8
	Word      Word
	Condition Condition
	Limit     uint8
}

// NoRepeat returns the empty repeat clause.
func NoRepeat() Repeat { return Repeat{} }

// Fixed returns a repeat clause of count iterations.
func Fixed(count uint8) Repeat {
	return Repeat{Kind: RepeatFixed, Count: count}
}

// Variable returns a repeat clause bounded by the value of w compared to limit.
func Variable(w Word, cond Condition, limit uint8) Repeat {
	return Repeat{Kind: RepeatVariable, Word: w, Condition: cond, Limit: limit}
}

// String returns the canonical clause including its leading ';', or "" for none.
func (r Repeat) String() string {
	switch r.Kind {
	case RepeatFixed:
		return ";" + strconv.Itoa(int(r.Count))
	case RepeatVariable:
		return ";(" + r.Word.String() + ")" + r.Condition.String() + strconv.Itoa(int(r.Limit))
	default:
		return ""
	}
}
