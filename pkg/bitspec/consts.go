package bitspec

const (
	// ============================================================================
	// Word Widths
	// ============================================================================

	// ByteWordBits is the width of a byte-addressed word.
	ByteWordBits = 8

	// MaxWordBits is the widest word the notation can address: bit
	// positions are 8-bit values, so positions 0..255.
	MaxWordBits = 256

	// ============================================================================
	// Notation Ranges
	// ============================================================================

	// MaxIndex is the largest word index, bit position, count or limit the
	// notation can express.
	MaxIndex = 255

	// ============================================================================
	// Strict Preset
	// ============================================================================

	// StrictMaxWordIndex bounds word indices for small fixed-size frames.
	StrictMaxWordIndex = 63

	// StrictMaxRepeatCount bounds fixed repeat counts.
	StrictMaxRepeatCount = 64

	// StrictMaxTotalBits bounds the bits a spec may cover after repetition (512 bytes).
	StrictMaxTotalBits = 4096
)
