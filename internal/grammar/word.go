package grammar

import "github.com/joshuapare/bitspec/pkg/types"

// BitRange parses a bit range: "4..6" or "4".
//
// The range form is tried first. Trying the single bit first would match
// the "4" of "4..6" and leave "..6" behind for callers to choke on.
func BitRange(in string) (types.BitRange, string, error) {
	return alt[types.BitRange](in, rangeBits, singleBit)
}

func rangeBits(in string) (types.BitRange, string, error) {
	low, rest, err := Integer(in)
	if err != nil {
		return noMatch[types.BitRange](in)
	}
	rest, ok := tag(rest, RangeSeparator)
	if !ok {
		return noMatch[types.BitRange](in)
	}
	high, rest, err := Integer(rest)
	if err != nil {
		return noMatch[types.BitRange](in)
	}
	return types.Range(low, high), rest, nil
}

func singleBit(in string) (types.BitRange, string, error) {
	p, rest, err := Integer(in)
	if err != nil {
		return noMatch[types.BitRange](in)
	}
	return types.Single(p), rest, nil
}

// Word parses a word: "5[3..7]", "[4]", "5[]", or a bare bit range such as
// "4..6" that stands for a range inside word 0.
//
// The bracketed form wins whenever brackets are present.
func Word(in string) (types.Word, string, error) {
	return alt[types.Word](in, fullWord, bitRangeAsWord)
}

func fullWord(in string) (types.Word, string, error) {
	index, hasIndex, rest := optional[uint8](in, Integer)
	rest, ok := tag(rest, OpenBracket)
	if !ok {
		return noMatch[types.Word](in)
	}
	bits, hasBits, rest := optional[types.BitRange](rest, BitRange)
	rest, ok = tag(rest, CloseBracket)
	if !ok {
		return noMatch[types.Word](in)
	}

	// Defaults for the omitted parts.
	w := types.Word{BitRange: types.WholeWord()}
	if hasIndex {
		w.Index = index
	}
	if hasBits {
		w.BitRange = bits
	}
	return w, rest, nil
}

func bitRangeAsWord(in string) (types.Word, string, error) {
	bits, rest, err := BitRange(in)
	if err != nil {
		return noMatch[types.Word](in)
	}
	return types.Word{Index: 0, BitRange: bits}, rest, nil
}

// Span is the start and optional end word of a bit spec.
type Span struct {
	Start types.Word
	End   *types.Word
}

// WordRange parses a start word optionally followed by ".." and an end word.
//
// The rule is greedy: in "3..5..4[]" the first ".." is consumed by the bare
// bit range of the start word, giving 0[3..5] through 4[]. There is no
// backtracking to reinterpret it as the word separator.
func WordRange(in string) (Span, string, error) {
	start, rest, err := Word(in)
	if err != nil {
		return noMatch[Span](in)
	}
	span := Span{Start: start}
	end, hasEnd, rest := optional[types.Word](rest, continuation)
	if hasEnd {
		span.End = &end
	}
	return span, rest, nil
}

// continuation parses ".." word.
func continuation(in string) (types.Word, string, error) {
	rest, ok := tag(in, RangeSeparator)
	if !ok {
		return noMatch[types.Word](in)
	}
	w, rest, err := Word(rest)
	if err != nil {
		return noMatch[types.Word](in)
	}
	return w, rest, nil
}
