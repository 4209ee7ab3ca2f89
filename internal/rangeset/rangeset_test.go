package rangeset_test

import (
	"math"
	"testing"

	"relift/internal/rangeset"
)

func TestUnionMergesAdjacent(t *testing.T) {
	a := rangeset.New(1, 3)
	b := rangeset.New(4, 6)

	u := a.Union(b)
	ranges := u.Ranges()
	if len(ranges) != 1 {
		t.Fatalf("expected 1 merged range, got %d (%s)", len(ranges), u)
	}
	if ranges[0].Lo != 1 || ranges[0].Hi != 6 {
		t.Errorf("expected 1..6, got %s", u)
	}
}

func TestUnionKeepsGaps(t *testing.T) {
	u := rangeset.Single(1).Union(rangeset.New(3, 7)).Union(rangeset.Single(10))
	if got := u.String(); got != "1, 3..7, 10" {
		t.Errorf("unexpected canonical text: %s", got)
	}
	if u.Count() != 7 {
		t.Errorf("expected 7 values, got %d", u.Count())
	}
}

func TestUnionIdempotent(t *testing.T) {
	a := rangeset.New(1, 5).Union(rangeset.Single(9))
	u := a.Union(a)
	if u.String() != a.String() {
		t.Errorf("union with itself changed the set: %s vs %s", u, a)
	}
}

func TestUnionCommutative(t *testing.T) {
	a := rangeset.New(1, 5)
	b := rangeset.New(3, 9).Union(rangeset.Single(20))

	ab := a.Union(b)
	ba := b.Union(a)
	if ab.String() != ba.String() {
		t.Errorf("union not commutative: %s vs %s", ab, ba)
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	cases := []struct {
		a, b rangeset.Set
		want bool
	}{
		{rangeset.New(1, 5), rangeset.New(5, 9), true},
		{rangeset.New(1, 5), rangeset.New(6, 9), false},
		{rangeset.Empty(), rangeset.New(1, 5), false},
		{rangeset.New(math.MinInt64, 0), rangeset.Single(0), true},
	}
	for _, c := range cases {
		if got := c.a.Overlaps(c.b); got != c.want {
			t.Errorf("(%s).Overlaps(%s) = %v, want %v", c.a, c.b, got, c.want)
		}
		if c.a.Overlaps(c.b) != c.b.Overlaps(c.a) {
			t.Errorf("Overlaps not symmetric for %s and %s", c.a, c.b)
		}
	}
}

func TestContains(t *testing.T) {
	s := rangeset.Single(1).Union(rangeset.New(3, 7)).Union(rangeset.Single(10))
	for _, v := range []int64{1, 3, 5, 7, 10} {
		if !s.Contains(v) {
			t.Errorf("expected %s to contain %d", s, v)
		}
	}
	for _, v := range []int64{0, 2, 8, 9, 11} {
		if s.Contains(v) {
			t.Errorf("expected %s not to contain %d", s, v)
		}
	}
}

func TestSignExtension(t *testing.T) {
	// A 32-bit -1 must land on the same label as a 64-bit -1.
	narrow := rangeset.FromInt32(-1)
	wide := rangeset.Single(-1)
	if !narrow.Overlaps(wide) {
		t.Errorf("sign-extended -1 does not overlap 64-bit -1")
	}
	if narrow.Contains(int64(math.MaxUint32)) {
		t.Errorf("32-bit -1 must not be treated as %d", int64(math.MaxUint32))
	}
}

func TestDomainEdges(t *testing.T) {
	hi := rangeset.New(math.MaxInt64-1, math.MaxInt64)
	lo := rangeset.New(math.MinInt64, math.MinInt64+1)

	u := hi.Union(lo)
	if len(u.Ranges()) != 2 {
		t.Fatalf("expected 2 ranges, got %s", u)
	}
	if !u.Contains(math.MaxInt64) || !u.Contains(math.MinInt64) {
		t.Errorf("domain edge values missing from %s", u)
	}

	full := rangeset.New(math.MinInt64, math.MaxInt64)
	if full.Count() != math.MaxUint64 {
		t.Errorf("full domain count should saturate, got %d", full.Count())
	}
	if full.Union(full).String() != full.String() {
		t.Errorf("full domain union not idempotent")
	}
}

func TestEmptySet(t *testing.T) {
	var zero rangeset.Set
	if !zero.IsEmpty() {
		t.Errorf("zero value should be empty")
	}
	if zero.String() != "{}" {
		t.Errorf("unexpected empty text: %s", zero)
	}
	if !rangeset.New(5, 1).IsEmpty() {
		t.Errorf("inverted bounds should produce the empty set")
	}
	if got := zero.Union(rangeset.Single(3)); got.String() != "3" {
		t.Errorf("empty union single gave %s", got)
	}
}
