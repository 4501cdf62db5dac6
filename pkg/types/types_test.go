package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitRange(t *testing.T) {
	tests := []struct {
		name     string
		r        BitRange
		want     string
		width    int
		reversed bool
	}{
		{name: "whole", r: WholeWord(), want: "", width: 8},
		{name: "single", r: Single(4), want: "4", width: 1},
		{name: "range", r: Range(4, 6), want: "4..6", width: 3},
		{name: "reversed", r: Range(7, 3), want: "7..3", width: 5, reversed: true},
		{name: "degenerate", r: Range(5, 5), want: "5..5", width: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.String())
			assert.Equal(t, tt.width, tt.r.Width(8))
			assert.Equal(t, tt.reversed, tt.r.Reversed())
		})
	}

	assert.Equal(t, BitRange{}, WholeWord(), "zero value is the whole word")
	assert.Equal(t, 32, WholeWord().Width(32))
	assert.Equal(t, uint8(4), Single(4).High)
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "whole_word", BitWholeWord.String())
	assert.Equal(t, "range", BitRangeSpan.String())
	assert.Equal(t, "UNKNOWN_BIT_RANGE_9", BitRangeKind(9).String())

	assert.Equal(t, "fixed", RepeatFixed.String())
	assert.Equal(t, "UNKNOWN_REPEAT_7", RepeatKind(7).String())

	assert.Equal(t, "<=", Lte.String())
	assert.Equal(t, "UNKNOWN_CONDITION_4", Condition(4).String())
}

func TestCondition_Holds(t *testing.T) {
	assert.True(t, Lt.Holds(48, 49))
	assert.False(t, Lt.Holds(49, 49))
	assert.True(t, Lte.Holds(49, 49))
	assert.False(t, Lte.Holds(50, 49))
}

func TestWordAndSpecStrings(t *testing.T) {
	start := Word{Index: 3, BitRange: Range(4, 7)}
	end := Word{Index: 6, BitRange: Range(0, 5)}

	assert.Equal(t, "0[4]", Word{BitRange: Single(4)}.String())
	assert.Equal(t, "5[]", Word{Index: 5}.String())

	spec := BitSpec{Start: start, End: &end, Repeat: Fixed(48)}
	assert.Equal(t, "3[4..7]..6[0..5];48", spec.String())
	assert.True(t, spec.HasEnd())
	assert.Equal(t, end, spec.Last())

	spec = BitSpec{
		Start:  Word{Index: 4},
		Repeat: Variable(Word{Index: 3}, Lt, 49),
	}
	assert.Equal(t, "4[];(3[])<49", spec.String())
	assert.False(t, spec.HasEnd())
	assert.Equal(t, spec.Start, spec.Last())

	assert.Equal(t, NoRepeat(), Repeat{})
	assert.Empty(t, NoRepeat().String())
}

func TestLiteral(t *testing.T) {
	lit := Literal{Base: Binary, Digits: "1011_1100"}
	assert.Equal(t, "0b1011_1100", lit.String())

	v, err := lit.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0xBC), v)

	n, err := lit.BitLen()
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	lit = Literal{Base: Hex, Digits: "0_0F"}
	assert.Equal(t, "0x0_0F", lit.String())
	n, err = lit.BitLen()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = Literal{Base: Hex, Digits: "0"}.BitLen()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = Literal{Base: Hex, Digits: "1_0000_0000_0000_0000"}.Uint64()
	require.ErrorIs(t, err, ErrLiteralOverflow)
}
