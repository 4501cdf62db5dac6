// Package grammar implements the bit specification grammar as a set of small
// recursive-descent rules.
//
// Every rule has the shape of ParseFunc: it receives the remaining input and
// returns the recognized value together with the unconsumed remainder, or
// ErrNoMatch. A rule that fails always hands back its input untouched, which
// is what lets alt try the next alternative from the same position.
//
//	bit_spec   = word_range [repeat]
//	word_range = word [".." word]
//	word       = full_word | bit_range_as_word
//	full_word  = [integer] "[" [bit_range] "]"
//	bit_range  = range | single_bit
//	range      = integer ".." integer
//	repeat     = ";" (variable_repeat | fixed_repeat)
//	variable_repeat = "(" word ")" condition integer
//	condition  = "<=" | "<"
//	literal    = hex_literal | binary_literal
//
// The order inside each alternation is significant and must not change.
package grammar

import (
	"errors"
	"strings"
)

// ErrNoMatch is returned by every rule that cannot match at the start of its input.
var ErrNoMatch = errors.New("grammar: no match")

// ParseFunc is the signature shared by all grammar rules.
type ParseFunc[T any] func(in string) (T, string, error)

// alt tries each alternative in order and returns the first match.
func alt[T any](in string, alternatives ...ParseFunc[T]) (T, string, error) {
	for _, p := range alternatives {
		v, rest, err := p(in)
		if err == nil {
			return v, rest, nil
		}
	}
	var zero T
	return zero, in, ErrNoMatch
}

// optional runs p and reports whether it matched. It never fails; when p
// does not match, rest is in.
func optional[T any](in string, p ParseFunc[T]) (v T, present bool, rest string) {
	v, rest, err := p(in)
	if err != nil {
		var zero T
		return zero, false, in
	}
	return v, true, rest
}

// tag consumes the literal token t.
func tag(in, t string) (string, bool) {
	return strings.CutPrefix(in, t)
}

// noMatch returns the failure result of a rule for input in.
func noMatch[T any](in string) (T, string, error) {
	var zero T
	return zero, in, ErrNoMatch
}
