package types

// BitSpec is a complete bit specification: a start word, an optional end
// word and a repeat clause.
type BitSpec struct {
	Start Word
	// End is nil unless a ".." continuation word was given.
	End    *Word
	Repeat Repeat
}

// HasEnd reports whether s spans more than its start word.
func (s BitSpec) HasEnd() bool { return s.End != nil }

// Last returns the end word, or the start word when no end was given.
func (s BitSpec) Last() Word {
	if s.End != nil {
		return *s.End
	}
	return s.Start
}

// String returns the canonical textual form of s.
func (s BitSpec) String() string {
	out := s.Start.String()
	if s.End != nil {
		out += ".." + s.End.String()
	}
	return out + s.Repeat.String()
}
