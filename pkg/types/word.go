package types

import "strconv"

// Word locates a bit range inside the word at Index.
//
// Index defaults to 0 when omitted in source text, and BitRange defaults to
// the whole word when the brackets are empty.
type Word struct {
	Index    uint8
	BitRange BitRange
}

// String returns the canonical form, which always carries an explicit index
// and brackets: "0[4]", "3[4..7]", "5[]".
func (w Word) String() string {
	return strconv.Itoa(int(w.Index)) + "[" + w.BitRange.String() + "]"
}
