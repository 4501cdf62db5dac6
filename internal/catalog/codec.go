package catalog

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeInput converts raw catalog bytes to UTF-8. A byte order mark wins
// over enc. Register maps exported from older Windows tooling arrive as
// UTF-16LE or Windows-1252.
func decodeInput(data []byte, enc string) ([]byte, error) {
	if bytes.HasPrefix(data, UTF16LEBOM) {
		return decodeUTF16LE(data[len(UTF16LEBOM):])
	}
	if bytes.HasPrefix(data, UTF8BOM) {
		return data[len(UTF8BOM):], nil
	}

	switch strings.ToUpper(enc) {
	case "", EncodingUTF8:
		return data, nil
	case EncodingUTF16LE:
		return decodeUTF16LE(data)
	case EncodingWindows1252, EncodingCP1252:
		out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("catalog: decode %s: %w", EncodingWindows1252, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}
}

func decodeUTF16LE(data []byte) ([]byte, error) {
	// A trailing odd byte cannot form a code unit.
	if len(data)%2 == 1 {
		data = data[:len(data)-1]
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, fmt.Errorf("catalog: decode %s: %w", EncodingUTF16LE, err)
	}
	return out, nil
}
