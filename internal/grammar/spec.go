package grammar

import "github.com/joshuapare/bitspec/pkg/types"

// BitSpec parses a complete bit spec and returns it with the unconsumed
// remainder. Requiring an empty remainder is up to the caller.
func BitSpec(in string) (types.BitSpec, string, error) {
	span, rest, err := WordRange(in)
	if err != nil {
		return noMatch[types.BitSpec](in)
	}
	spec := types.BitSpec{Start: span.Start, End: span.End}
	repeat, hasRepeat, rest := optional[types.Repeat](rest, Repeat)
	if hasRepeat {
		spec.Repeat = repeat
	} else {
		spec.Repeat = types.NoRepeat()
	}
	return spec, rest, nil
}
