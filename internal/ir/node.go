package ir

import (
	"fmt"

	"relift/internal/source"
)

// Node is one element of the IL instruction tree. Every node is exclusively
// owned by at most one parent position (strict tree, no sharing); children
// are addressed by positional index and described by slot metadata, so a
// transform can inspect or rewrite any node without knowing its concrete
// variant. The variant set is closed: all implementations live in this
// package.
type Node interface {
	// OpKind returns the node's variant tag.
	OpKind() Kind
	// Span returns the bytecode provenance of the node.
	Span() source.Span
	// SetSpan replaces the bytecode provenance of the node.
	SetSpan(source.Span)
	// Parent returns the owning node, or nil for a detached root.
	Parent() Node
	// ChildCount returns the number of children.
	ChildCount() int
	// Child returns the child at index i, 0 <= i < ChildCount.
	Child(i int) Node
	// SetChild replaces the child at index i. It fails with a validation
	// error when the replacement violates the slot's structural constraints
	// or is already attached elsewhere; the tree is left unchanged then.
	SetChild(i int, n Node) error
	// ChildSlot returns the slot metadata for position i.
	ChildSlot(i int) *Slot
	// DirectFlags returns the effects intrinsic to this node alone.
	DirectFlags() Flags
	// Flags returns the combined flags of the node and its children.
	// The value is cached and recomputed after structural mutation.
	Flags() Flags
	// Clone returns a fully independent deep copy, provenance included.
	Clone() Node
	// WriteTo renders the canonical textual form of the node.
	WriteTo(w *Writer)

	base() *baseNode
	// replaceChild swaps the child at index i without validation or
	// parent-link maintenance; only setChild calls it.
	replaceChild(i int, n Node)
}

// flagComputer is implemented by nodes whose combined flags are not the
// plain union of direct and child flags (branching nodes, coalescing).
type flagComputer interface {
	computeFlags() Flags
}

// ComputeFlags computes a node's combined flags from its current children,
// ignoring the cache. Pure; Flags() memoizes this value.
func ComputeFlags(n Node) Flags {
	if fc, ok := n.(flagComputer); ok {
		return fc.computeFlags()
	}
	f := n.DirectFlags()
	for i := 0; i < n.ChildCount(); i++ {
		f |= n.Child(i).Flags()
	}
	return f
}

// baseNode carries the state shared by every node variant: provenance, the
// owner link and the flag cache. The self pointer lets shared methods reach
// the concrete variant.
type baseNode struct {
	self       Node
	parent     Node
	span       source.Span
	flags      Flags
	flagsValid bool
}

func (b *baseNode) init(self Node) {
	b.self = self
}

func (b *baseNode) base() *baseNode { return b }

func (b *baseNode) Span() source.Span { return b.span }

func (b *baseNode) SetSpan(s source.Span) { b.span = s }

func (b *baseNode) Parent() Node { return b.parent }

func (b *baseNode) Flags() Flags {
	if !b.flagsValid {
		b.flags = ComputeFlags(b.self)
		b.flagsValid = true
	}
	return b.flags
}

func (b *baseNode) SetChild(i int, n Node) error {
	return setChild(b.self, i, n)
}

// invalidateFlags marks the node and all its ancestors dirty. Children stay
// valid: a mutation below a node never changes what is below its siblings.
func (b *baseNode) invalidateFlags() {
	for n := b.self; n != nil; {
		nb := n.base()
		nb.flagsValid = false
		n = nb.parent
	}
}

// setChild is the one structural replacement path shared by every variant.
func setChild(parent Node, i int, child Node) error {
	if i < 0 || i >= parent.ChildCount() {
		return fmt.Errorf("ir: %s has no child %d", parent.OpKind(), i)
	}
	if child == nil {
		return fmt.Errorf("ir: nil child for slot %s of %s", parent.ChildSlot(i), parent.OpKind())
	}
	slot := parent.ChildSlot(i)
	if !slot.Accepts(child) {
		return fmt.Errorf("ir: %s not valid for slot %s of %s", child.OpKind(), slot, parent.OpKind())
	}
	cb := child.base()
	if cb.parent != nil {
		return fmt.Errorf("ir: %s is already attached to %s", child.OpKind(), cb.parent.OpKind())
	}
	if old := parent.Child(i); old != nil {
		old.base().parent = nil
	}
	parent.replaceChild(i, child)
	cb.parent = parent
	parent.base().invalidateFlags()
	return nil
}

// attach wires a constructor-supplied child to its parent. Attaching a node
// that already has an owner is an ownership violation, a defect in the
// calling transform, and panics rather than silently aliasing the tree.
func attach(parent, child Node) Node {
	if child == nil {
		panic(fmt.Sprintf("ir: nil child attached to %s", parent.OpKind()))
	}
	cb := child.base()
	if cb.parent != nil {
		panic(fmt.Sprintf("ir: %s is already attached to %s", child.OpKind(), cb.parent.OpKind()))
	}
	cb.parent = parent
	return child
}

// mustSetChild is setChild for callers that have already matched the slot's
// constraints; a failure there is a structural defect.
func mustSetChild(parent Node, i int, child Node) {
	if err := setChild(parent, i, child); err != nil {
		panic(err)
	}
}

// Extract detaches n from its parent for relocation, leaving a Nop in its
// old position so the abandoned tree stays structurally valid. Extracting a
// detached root is a no-op.
func Extract(n Node) Node {
	parent := n.Parent()
	if parent == nil {
		return n
	}
	for i := 0; i < parent.ChildCount(); i++ {
		if parent.Child(i) == n {
			rep := NewNop()
			if !parent.ChildSlot(i).Accepts(rep) {
				panic(fmt.Sprintf("ir: cannot extract from slot %s of %s", parent.ChildSlot(i), parent.OpKind()))
			}
			n.base().parent = nil
			parent.replaceChild(i, attach(parent, rep))
			parent.base().invalidateFlags()
			return n
		}
	}
	panic(fmt.Sprintf("ir: %s not found among children of its parent %s", n.OpKind(), parent.OpKind()))
}
