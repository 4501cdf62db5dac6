package bitspec

import (
	"fmt"

	"github.com/joshuapare/bitspec/internal/buf"
	"github.com/joshuapare/bitspec/pkg/types"
)

// WordCount returns how many words one instance of spec touches, counting
// the start and end words inclusively.
func WordCount(spec types.BitSpec) int {
	if spec.End == nil {
		return 1
	}
	start, end := int(spec.Start.Index), int(spec.End.Index)
	if end < start {
		start, end = end, start
	}
	return end - start + 1
}

// BitWidth returns the number of bits one instance of spec covers in words
// of wordBits bits: the start word's bits, every bit of the words strictly
// between start and end, and the end word's bits.
func BitWidth(spec types.BitSpec, wordBits int) (int, error) {
	startBits := spec.Start.BitRange.Width(wordBits)
	if spec.End == nil {
		return startBits, nil
	}
	middle := WordCount(spec) - 2
	if middle < 0 {
		middle = 0
	}
	width, err := buf.SpanBits(startBits, middle, wordBits, spec.End.BitRange.Width(wordBits))
	if err != nil {
		return 0, fmt.Errorf("bitspec: width of %s: %w", spec, err)
	}
	return width, nil
}

// TotalBits returns BitWidth multiplied by the fixed repeat count. Specs
// without a repeat clause, or with a variable one whose count is only known
// from data, count a single instance.
func TotalBits(spec types.BitSpec, wordBits int) (int, error) {
	width, err := BitWidth(spec, wordBits)
	if err != nil {
		return 0, err
	}
	if spec.Repeat.Kind != types.RepeatFixed {
		return width, nil
	}
	total, err := buf.RepeatBits(width, int(spec.Repeat.Count))
	if err != nil {
		return 0, fmt.Errorf("bitspec: repeat of %s: %w", spec, err)
	}
	return total, nil
}
