// Package bitspec parses the compact bit specification notation used to
// declare where a field lives inside a sequence of fixed-width words.
//
// # Notation
//
//	4                     bit 4 of word 0
//	4..6                  bits 4..6 of word 0
//	5[3..7]               bits 3..7 of word 5
//	5[]                   all of word 5
//	3[4..7]..6[0..5]      bits 4..7 of word 3 through bits 0..5 of word 6
//	3[4..7]..6[0..5];48   the same span, 48 times
//	4[]..7[];(3[])<49     words 4..7, repeated while word 3 is below 49
//
// Word indices, bit positions, repeat counts and limits are decimal values
// in [0,255]. No whitespace is allowed anywhere.
//
// # Parsing
//
// Parse requires the whole input to be a bit spec. ParsePrefix parses the
// longest bit spec at the start of the input and returns the remainder, for
// callers embedding bit specs in a larger notation.
//
//	spec, err := bitspec.Parse("3[4..7]..6[0..5];48")
//	if err != nil {
//		return err
//	}
//	fmt.Println(spec.Start.Index, spec.End.Index, spec.Repeat.Count) // 3 6 48
//
// Failures are reported as ErrParse with no position detail.
//
// # Literals
//
// ParseLiteral recognizes hexadecimal ("0xAB_CD") and binary ("0b1011_0000")
// literals. A literal must make up the whole input.
//
// # Validation
//
// The parser accepts any structurally valid spec, including reversed ranges
// such as "7..3" and bit positions beyond the width of a real word. Validate
// checks a parsed spec against a Limits value; DefaultLimits models 8-bit
// words and rejects reversed ranges, RelaxedLimits accepts everything the
// parser does.
package bitspec
