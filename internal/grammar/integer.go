package grammar

import "strconv"

// Integer consumes the maximal run of decimal digits and returns its value.
// It does not match when no digit is present or when the value exceeds 255.
func Integer(in string) (uint8, string, error) {
	n := 0
	for n < len(in) && isDecimalDigit(in[n]) {
		n++
	}
	if n == 0 {
		return noMatch[uint8](in)
	}
	v, err := strconv.ParseUint(in[:n], IntegerBase, IntegerBits)
	if err != nil {
		return noMatch[uint8](in)
	}
	return uint8(v), in[n:], nil
}

func isDecimalDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinaryDigit(c byte) bool { return c == '0' || c == '1' }
