package source_test

import (
	"testing"

	"relift/internal/source"
)

func TestSpanCover(t *testing.T) {
	a := source.Span{Start: 4, End: 10}
	b := source.Span{Start: 8, End: 20}

	c := a.Cover(b)
	if c.Start != 4 || c.End != 20 {
		t.Errorf("expected 4-20, got %v", c)
	}
}

func TestSpanCoverEmpty(t *testing.T) {
	a := source.Span{Start: 4, End: 10}

	c := a.Cover(source.Span{})
	if c != a {
		t.Errorf("covering with empty span changed %v to %v", a, c)
	}

	c = source.Span{}.Cover(a)
	if c != a {
		t.Errorf("empty span covered with %v gave %v", a, c)
	}
}

func TestSpanString(t *testing.T) {
	s := source.Span{Start: 0x1c, End: 0x24}
	if got := s.String(); got != "IL_001c-IL_0024" {
		t.Errorf("unexpected span text: %s", got)
	}
}
