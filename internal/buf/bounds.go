// Package buf contains overflow-safe arithmetic for sizing bit spans.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is essential for width * repeatCount calculations.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 && a > math.MaxInt/b {
		return 0, false
	}
	if a < 0 && b < 0 && a < math.MaxInt/b {
		return 0, false
	}
	if a > 0 && b < 0 && b < math.MinInt/a {
		return 0, false
	}
	if a < 0 && b > 0 && a < math.MinInt/b {
		return 0, false
	}
	return a * b, true
}

// SpanBits returns the number of bits covered by a span that takes
// startBits from its first word, every bit of the middle words and endBits
// from its last word.
func SpanBits(startBits, middleWords, wordBits, endBits int) (int, error) {
	if startBits < 0 || middleWords < 0 || wordBits < 0 || endBits < 0 {
		return 0, fmt.Errorf("negative span component: start=%d middle=%d word=%d end=%d",
			startBits, middleWords, wordBits, endBits)
	}
	middle, ok := MulOverflowSafe(middleWords, wordBits)
	if !ok {
		return 0, fmt.Errorf("overflow: middle=%d * wordBits=%d", middleWords, wordBits)
	}
	total, ok := AddOverflowSafe(startBits, middle)
	if !ok {
		return 0, fmt.Errorf("overflow: start=%d + middle=%d", startBits, middle)
	}
	total, ok = AddOverflowSafe(total, endBits)
	if !ok {
		return 0, fmt.Errorf("overflow: total=%d + end=%d", total, endBits)
	}
	return total, nil
}

// RepeatBits returns count repetitions of width bits, or an error describing
// the failure (negative input or overflow).
//
//	total, err := buf.RepeatBits(width, int(count))
//	if err != nil {
//	    return fmt.Errorf("repeat: %w", err)
//	}
func RepeatBits(width, count int) (int, error) {
	if width < 0 {
		return 0, fmt.Errorf("negative width: %d", width)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}

	total, ok := MulOverflowSafe(width, count)
	if !ok {
		return 0, fmt.Errorf("overflow: width=%d * count=%d", width, count)
	}
	return total, nil
}
