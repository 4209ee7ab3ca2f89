// Package rangeset implements value-type sets of 64-bit integers stored as
// minimal lists of disjoint ranges. Sets are the label domain of switch
// dispatch: each switch section owns one set, and section sets must stay
// pairwise disjoint. All operations are pure; a Set is never mutated after
// construction, so copying one by value is always safe.
package rangeset

import (
	"math"
	"math/bits"
	"slices"
	"strconv"
	"strings"
)

// Range is an inclusive interval [Lo, Hi] of int64 values.
type Range struct {
	Lo int64
	Hi int64
}

func (r Range) String() string {
	if r.Lo == r.Hi {
		return strconv.FormatInt(r.Lo, 10)
	}
	return strconv.FormatInt(r.Lo, 10) + ".." + strconv.FormatInt(r.Hi, 10)
}

// Set is an immutable set of int64 values. The zero value is the empty set.
// Invariant: ranges are sorted by Lo, pairwise disjoint and non-adjacent
// (adjacent ranges are merged on construction).
type Set struct {
	ranges []Range
}

// Empty returns the empty set.
func Empty() Set {
	return Set{}
}

// Single returns the set containing exactly v.
func Single(v int64) Set {
	return Set{ranges: []Range{{Lo: v, Hi: v}}}
}

// New returns the set of all values in [lo, hi]. If lo > hi the set is empty.
func New(lo, hi int64) Set {
	if lo > hi {
		return Set{}
	}
	return Set{ranges: []Range{{Lo: lo, Hi: hi}}}
}

// FromInt32 widens a 32-bit label into the 64-bit domain by sign extension,
// so a 32-bit -1 and a 64-bit -1 are the same label.
func FromInt32(v int32) Set {
	return Single(int64(v))
}

// IsEmpty reports whether the set contains no values.
func (s Set) IsEmpty() bool {
	return len(s.ranges) == 0
}

// Ranges returns the contained ranges in ascending order. The returned slice
// is a copy; callers may keep or modify it freely.
func (s Set) Ranges() []Range {
	return slices.Clone(s.ranges)
}

// Contains reports whether v is a member of the set.
func (s Set) Contains(v int64) bool {
	i, _ := slices.BinarySearchFunc(s.ranges, v, func(r Range, v int64) int {
		if r.Hi < v {
			return -1
		}
		if r.Lo > v {
			return 1
		}
		return 0
	})
	return i < len(s.ranges) && s.ranges[i].Lo <= v && v <= s.ranges[i].Hi
}

// Count returns the number of values in the set, saturating at MaxUint64 for
// the full 64-bit domain.
func (s Set) Count() uint64 {
	var total uint64
	for _, r := range s.ranges {
		width := uint64(r.Hi) - uint64(r.Lo) + 1
		if width == 0 {
			// Full domain in a single range.
			return math.MaxUint64
		}
		var carry uint64
		total, carry = bits.Add64(total, width, 0)
		if carry != 0 {
			return math.MaxUint64
		}
	}
	return total
}

// Union returns the set of values contained in s or other. Overlapping and
// adjacent ranges are merged, keeping the result minimal.
func (s Set) Union(other Set) Set {
	if s.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return s
	}

	all := make([]Range, 0, len(s.ranges)+len(other.ranges))
	all = append(all, s.ranges...)
	all = append(all, other.ranges...)
	slices.SortFunc(all, func(a, b Range) int {
		if a.Lo != b.Lo {
			if a.Lo < b.Lo {
				return -1
			}
			return 1
		}
		return 0
	})

	merged := make([]Range, 0, len(all))
	cur := all[0]
	for _, r := range all[1:] {
		if touches(cur, r) {
			if r.Hi > cur.Hi {
				cur.Hi = r.Hi
			}
			continue
		}
		merged = append(merged, cur)
		cur = r
	}
	merged = append(merged, cur)
	return Set{ranges: merged}
}

// touches reports whether r overlaps or is adjacent to cur.
// Requires r.Lo >= cur.Lo.
func touches(cur, r Range) bool {
	if r.Lo <= cur.Hi {
		return true
	}
	// Adjacency without overflowing cur.Hi+1 at the domain edge.
	return cur.Hi != math.MaxInt64 && r.Lo == cur.Hi+1
}

// Overlaps reports whether s and other share at least one value.
func (s Set) Overlaps(other Set) bool {
	i, j := 0, 0
	for i < len(s.ranges) && j < len(other.ranges) {
		a, b := s.ranges[i], other.ranges[j]
		switch {
		case a.Hi < b.Lo:
			i++
		case b.Hi < a.Lo:
			j++
		default:
			return true
		}
	}
	return false
}

// String renders the canonical range list, e.g. "1, 3..7, 10". The text is
// for diagnostics and tree printing, not for equality.
func (s Set) String() string {
	if s.IsEmpty() {
		return "{}"
	}
	var sb strings.Builder
	for i, r := range s.ranges {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}
