package grammar

import "github.com/joshuapare/bitspec/pkg/types"

// Condition parses "<=" or "<". The longer operator is tried first.
func Condition(in string) (types.Condition, string, error) {
	return alt[types.Condition](in, lessOrEqual, lessThan)
}

func lessOrEqual(in string) (types.Condition, string, error) {
	if rest, ok := tag(in, LessOrEqual); ok {
		return types.Lte, rest, nil
	}
	return noMatch[types.Condition](in)
}

func lessThan(in string) (types.Condition, string, error) {
	if rest, ok := tag(in, LessThan); ok {
		return types.Lt, rest, nil
	}
	return noMatch[types.Condition](in)
}

// Repeat parses a repeat clause: ";48" or ";(3[])<49".
//
// The variable form is tried first; a fixed count is only considered once
// the parenthesised word has failed to match.
func Repeat(in string) (types.Repeat, string, error) {
	rest, ok := tag(in, RepeatPrefix)
	if !ok {
		return noMatch[types.Repeat](in)
	}
	r, rest, err := alt[types.Repeat](rest, variableRepeat, fixedRepeat)
	if err != nil {
		return noMatch[types.Repeat](in)
	}
	return r, rest, nil
}

func variableRepeat(in string) (types.Repeat, string, error) {
	w, rest, err := variableWord(in)
	if err != nil {
		return noMatch[types.Repeat](in)
	}
	cond, rest, err := Condition(rest)
	if err != nil {
		return noMatch[types.Repeat](in)
	}
	limit, rest, err := Integer(rest)
	if err != nil {
		return noMatch[types.Repeat](in)
	}
	return types.Variable(w, cond, limit), rest, nil
}

// variableWord parses "(" word ")".
func variableWord(in string) (types.Word, string, error) {
	rest, ok := tag(in, OpenParen)
	if !ok {
		return noMatch[types.Word](in)
	}
	w, rest, err := Word(rest)
	if err != nil {
		return noMatch[types.Word](in)
	}
	rest, ok = tag(rest, CloseParen)
	if !ok {
		return noMatch[types.Word](in)
	}
	return w, rest, nil
}

func fixedRepeat(in string) (types.Repeat, string, error) {
	count, rest, err := Integer(in)
	if err != nil {
		return noMatch[types.Repeat](in)
	}
	return types.Fixed(count), rest, nil
}
