package grammar

const (
	// ============================================================================
	// Word and Bit Range Tokens
	// ============================================================================

	// OpenBracket starts the bit range body of a word: 3[...]
	OpenBracket = "["

	// CloseBracket ends the bit range body of a word
	CloseBracket = "]"

	// RangeSeparator joins two bit positions or two words: 4..6, 3[]..6[]
	RangeSeparator = ".."

	// ============================================================================
	// Repeat Clause Tokens
	// ============================================================================

	// RepeatPrefix introduces the repeat clause: ;48 or ;(3[])<49
	RepeatPrefix = ";"

	// OpenParen starts the word driving a variable repeat
	OpenParen = "("

	// CloseParen ends the word driving a variable repeat
	CloseParen = ")"

	// LessOrEqual is the non-strict condition. It must be tried before
	// LessThan, which is its prefix.
	LessOrEqual = "<="

	// LessThan is the strict condition
	LessThan = "<"

	// ============================================================================
	// Literal Tokens
	// ============================================================================

	// HexPrefix and HexPrefixUpper introduce a hexadecimal literal
	HexPrefix      = "0x"
	HexPrefixUpper = "0X"

	// BinaryPrefix and BinaryPrefixUpper introduce a binary literal
	BinaryPrefix      = "0b"
	BinaryPrefixUpper = "0B"

	// DigitSeparator may follow any literal digit: 0xAB_CD, 0b1011__0
	DigitSeparator = '_'

	// ============================================================================
	// Numeric Limits
	// ============================================================================

	// IntegerBase is the radix of word indices, bit positions, counts and limits
	IntegerBase = 10

	// IntegerBits is the width of every decimal integer in the grammar; values
	// above 255 do not match.
	IntegerBits = 8
)
