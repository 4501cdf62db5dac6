package types

import (
	"fmt"
	"strconv"
)

// BitRangeKind identifies which form a BitRange takes.
type BitRangeKind uint8

const (
	// BitWholeWord selects every bit of the word. It is the zero value so
	// that an unset BitRange means "whole word".
	BitWholeWord BitRangeKind = iota
	// BitSingle selects one bit position, stored in Low.
	BitSingle
	// BitRangeSpan selects the inclusive positions Low..High.
	BitRangeSpan
)

func (k BitRangeKind) String() string {
	switch k {
	case BitWholeWord:
		return "whole_word"
	case BitSingle:
		return "single"
	case BitRangeSpan:
		return "range"
	default:
		return fmt.Sprintf("UNKNOWN_BIT_RANGE_%d", uint8(k))
	}
}

// BitRange is a single bit position, an inclusive range of positions or the
// whole word. Low and High are not ordered by the parser: Range(7, 3) is a
// valid parse result and is rejected only by validation.
type BitRange struct {
	Kind BitRangeKind
	Low  uint8
	High uint8
}

// Single returns the bit range selecting position p.
func Single(p uint8) BitRange {
	return BitRange{Kind: BitSingle, Low: p, High: p}
}

// Range returns the inclusive bit range low..high.
func Range(low, high uint8) BitRange {
	return BitRange{Kind: BitRangeSpan, Low: low, High: high}
}

// WholeWord returns the bit range selecting the entire word.
func WholeWord() BitRange {
	return BitRange{Kind: BitWholeWord}
}

// IsWholeWord reports whether r selects the entire word.
func (r BitRange) IsWholeWord() bool { return r.Kind == BitWholeWord }

// Reversed reports whether r is a range whose low bound exceeds its high bound.
func (r BitRange) Reversed() bool {
	return r.Kind == BitRangeSpan && r.Low > r.High
}

// Width returns the number of bits r selects in a word of wordBits bits.
// Reversed ranges count the same bits as their ordered counterpart.
func (r BitRange) Width(wordBits int) int {
	switch r.Kind {
	case BitSingle:
		return 1
	case BitRangeSpan:
		if r.Low > r.High {
			return int(r.Low-r.High) + 1
		}
		return int(r.High-r.Low) + 1
	default:
		return wordBits
	}
}

// String returns the canonical bracket body: "4", "4..6", or "" for the whole word.
func (r BitRange) String() string {
	switch r.Kind {
	case BitSingle:
		return strconv.Itoa(int(r.Low))
	case BitRangeSpan:
		return strconv.Itoa(int(r.Low)) + ".." + strconv.Itoa(int(r.High))
	default:
		return ""
	}
}
