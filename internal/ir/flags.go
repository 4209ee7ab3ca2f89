package ir

import "strings"

// Flags summarizes control-flow and side-effect properties of a node.
// A node's combined flags are its direct flags joined with its children's;
// later passes rely on them to decide whether instructions can be reordered
// or removed, so a stale value must never be observable.
type Flags uint8

const (
	// FlagNone means no tracked effects.
	FlagNone Flags = 0
	// FlagMayThrow means evaluation may raise an exception.
	FlagMayThrow Flags = 1 << 0
	// FlagSideEffect means evaluation may have an observable side effect.
	FlagSideEffect Flags = 1 << 1
	// FlagEndPointUnreachable means control never falls through past the node.
	FlagEndPointUnreachable Flags = 1 << 2
	// FlagControlFlow means the node performs non-trivial control flow.
	FlagControlFlow Flags = 1 << 3
)

// unconditionalFlags are the flags that only hold for a branching node when
// they hold on every path through it. Everything else combines with union:
// an effect that can occur on any path can occur for the whole node.
const unconditionalFlags = FlagEndPointUnreachable

// CombineBranches joins the flags of mutually exclusive control paths, e.g.
// the two arms of a conditional or the sections of a switch. "Always" flags
// (end point unreachable) intersect across paths; "may" flags union.
func CombineBranches(paths ...Flags) Flags {
	if len(paths) == 0 {
		return FlagNone
	}
	and := paths[0]
	or := paths[0]
	for _, f := range paths[1:] {
		and &= f
		or |= f
	}
	return (and & unconditionalFlags) | (or &^ unconditionalFlags)
}

// String returns a "+"-joined list of set flags, or "none".
func (f Flags) String() string {
	if f == FlagNone {
		return "none"
	}
	var parts []string
	if f&FlagMayThrow != 0 {
		parts = append(parts, "may-throw")
	}
	if f&FlagSideEffect != 0 {
		parts = append(parts, "side-effect")
	}
	if f&FlagEndPointUnreachable != 0 {
		parts = append(parts, "end-unreachable")
	}
	if f&FlagControlFlow != 0 {
		parts = append(parts, "control-flow")
	}
	return strings.Join(parts, "+")
}
