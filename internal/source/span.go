package source

import (
	"fmt"
)

// Span is a half-open byte-offset interval [Start, End) into the bytecode of
// the method body an instruction tree was lifted from. Trees carry spans for
// diagnostics and debug mapping only; transforms preserve them on rewrite.
type Span struct {
	Start uint32 // inclusive
	End   uint32 // exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("IL_%04x-IL_%04x", s.Start, s.End)
}

// Cover extends the span to include other. Covering with an empty span is a
// no-op, so freshly synthesized nodes do not widen provenance.
func (s Span) Cover(other Span) Span {
	if other.Empty() {
		return s
	}
	if s.Empty() {
		return other
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}
