package catalog

// ============================================================================
// Byte Order Marks
// ============================================================================

var (
	// UTF8BOM is the UTF-8 byte order mark. It is skipped when present.
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

	// UTF16LEBOM is the UTF-16 little-endian byte order mark. Its presence
	// selects UTF-16LE decoding regardless of the configured encoding.
	UTF16LEBOM = []byte{0xFF, 0xFE}
)

// ============================================================================
// Encoding Names
// ============================================================================

const (
	EncodingUTF8        = "UTF-8"
	EncodingUTF16LE     = "UTF-16LE"
	EncodingWindows1252 = "WINDOWS-1252"
	EncodingCP1252      = "CP1252"
)
