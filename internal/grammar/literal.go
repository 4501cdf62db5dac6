package grammar

import "github.com/joshuapare/bitspec/pkg/types"

// Literal parses a hexadecimal or binary literal that makes up the whole of
// in. Trailing characters of any kind make it fail: "0b1011_11b0" is a
// malformed literal, not the shorter literal "0b1011_11".
func Literal(in string) (types.Literal, string, error) {
	return alt[types.Literal](in, HexLiteral, BinaryLiteral)
}

// HexLiteral parses "0x" or "0X" followed by hex digits with optional "_"
// separators, consuming all of in.
func HexLiteral(in string) (types.Literal, string, error) {
	return prefixedLiteral(in, types.Hex, isHexDigit, HexPrefix, HexPrefixUpper)
}

// BinaryLiteral parses "0b" or "0B" followed by binary digits with optional
// "_" separators, consuming all of in.
func BinaryLiteral(in string) (types.Literal, string, error) {
	return prefixedLiteral(in, types.Binary, isBinaryDigit, BinaryPrefix, BinaryPrefixUpper)
}

func prefixedLiteral(in string, base types.LiteralBase, isDigit func(byte) bool, prefixes ...string) (types.Literal, string, error) {
	for _, prefix := range prefixes {
		rest, ok := tag(in, prefix)
		if !ok {
			continue
		}
		digits, rest, err := digitRun(rest, isDigit)
		if err != nil || rest != "" {
			return noMatch[types.Literal](in)
		}
		return types.Literal{Base: base, Digits: digits}, rest, nil
	}
	return noMatch[types.Literal](in)
}

// digitRun matches (digit "_"*)+ and returns the matched text.
func digitRun(in string, isDigit func(byte) bool) (string, string, error) {
	i := 0
	for i < len(in) && isDigit(in[i]) {
		i++
		for i < len(in) && in[i] == DigitSeparator {
			i++
		}
	}
	if i == 0 {
		return noMatch[string](in)
	}
	return in[:i], in[i:], nil
}
