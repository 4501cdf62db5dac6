package bitspec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLimits(t *testing.T) {
	limits := DefaultLimits()

	if limits.WordBits != ByteWordBits {
		t.Errorf("Expected WordBits=%d, got %d", ByteWordBits, limits.WordBits)
	}
	if limits.MaxWordIndex != MaxIndex {
		t.Errorf("Expected MaxWordIndex=%d, got %d", MaxIndex, limits.MaxWordIndex)
	}
	if limits.AllowReversed {
		t.Errorf("Expected reversed ranges to be rejected by default")
	}
}

func TestValidate_AcceptsOrderedSpecs(t *testing.T) {
	for _, in := range []string{
		"4",
		"0[0..7]",
		"3[4..7]..6[0..5];48",
		"4[]..7[];(3[])<49",
		"3[0..3]..3[4..7]",
	} {
		require.NoError(t, Validate(MustParse(in), DefaultLimits()), "input %q", in)
	}
}

func TestValidate_ReversedRange(t *testing.T) {
	spec := MustParse("2[7..3]")

	err := Validate(spec, DefaultLimits())
	require.ErrorIs(t, err, ErrReversedRange)
	assert.Contains(t, err.Error(), "start")

	require.NoError(t, Validate(spec, RelaxedLimits()))
}

func TestValidate_ReversedRangeInRepeatWord(t *testing.T) {
	err := Validate(MustParse("0[];(1[5..2])<4"), DefaultLimits())
	require.ErrorIs(t, err, ErrReversedRange)
	assert.Contains(t, err.Error(), "repeat")
}

func TestValidate_ReversedSpan(t *testing.T) {
	spec := MustParse("6[]..3[]")

	require.ErrorIs(t, Validate(spec, DefaultLimits()), ErrReversedSpan)
	require.NoError(t, Validate(spec, RelaxedLimits()))
}

func TestValidate_WordBits(t *testing.T) {
	spec := MustParse("1[4..12]")

	err := Validate(spec, DefaultLimits())
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	assert.Equal(t, "WordBits", ve.Limit)
	assert.Equal(t, 12, ve.Current)
	assert.Equal(t, 7, ve.Maximum)
	assert.Equal(t, "start", ve.Field)

	require.NoError(t, Validate(spec, WordLimits(16)))
}

func TestValidate_EndWordBits(t *testing.T) {
	err := Validate(MustParse("1[]..2[9]"), DefaultLimits())
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "end", ve.Field)
}

func TestValidate_StrictLimits(t *testing.T) {
	tests := []struct {
		in        string
		wantLimit string
	}{
		{in: "64[]", wantLimit: "MaxWordIndex"},
		{in: "0[];(64[])<3", wantLimit: "MaxWordIndex"},
		{in: "0[];65", wantLimit: "MaxRepeatCount"},
		// 8 words of 8 bits, 64 times = 4096 bits: at the limit.
		{in: "0[]..7[];64", wantLimit: ""},
		{in: "0[]..8[];64", wantLimit: "MaxTotalBits"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := Validate(MustParse(tt.in), StrictLimits())
			if tt.wantLimit == "" {
				require.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantLimit, ve.Limit)
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Limit: "WordBits", Current: 12, Maximum: 7, Field: "end"}
	assert.Equal(t, "bit spec limit exceeded at end: WordBits is 12 (max 7)", err.Error())

	err = &ValidationError{Limit: "MaxTotalBits", Current: 5000, Maximum: 4096}
	assert.Equal(t, "bit spec limit exceeded: MaxTotalBits is 5000 (max 4096)", err.Error())
}

func TestLimitsByName(t *testing.T) {
	for name, want := range map[string]Limits{
		"":        DefaultLimits(),
		"default": DefaultLimits(),
		"Relaxed": RelaxedLimits(),
		"strict":  StrictLimits(),
	} {
		got, err := LimitsByName(name)
		require.NoError(t, err, "preset %q", name)
		assert.Equal(t, want, got)
	}

	_, err := LimitsByName("loose")
	require.ErrorIs(t, err, ErrUnknownLimits)
}
