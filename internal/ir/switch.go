package ir

import "relift/internal/rangeset"

// Switch evaluates its value once and dispatches to the section whose label
// set contains it, or to the default body otherwise. It generalizes the raw
// jump table to arbitrary non-contiguous 64-bit ranges: patterns recovered
// from bytecode are rarely the small dense case the instruction set encodes
// directly. Child 0 is the value, child 1 the default body, children 2..n
// the sections.
//
// Across all sections of one switch the label sets must stay pairwise
// disjoint. The invariant is enforced by Validate, not by construction: an
// overlap means the pass that built or merged the sections is defective, and
// is reported rather than repaired.
type Switch struct {
	baseNode
	value       Node
	defaultBody Node
	sections    []*SwitchSection
}

// NewSwitch creates a switch over value with a Nop default body and no
// sections; the producing stage or a promoting transform populates them.
func NewSwitch(value Node) *Switch {
	n := &Switch{}
	n.init(n)
	n.value = attach(n, value)
	n.defaultBody = attach(n, NewNop())
	return n
}

// Value returns the scrutinee.
func (n *Switch) Value() Node { return n.value }

// SetValue replaces the scrutinee.
func (n *Switch) SetValue(value Node) {
	mustSetChild(n, 0, value)
}

// DefaultBody returns the body run when no section matches.
func (n *Switch) DefaultBody() Node { return n.defaultBody }

// SetDefaultBody replaces the default body.
func (n *Switch) SetDefaultBody(body Node) {
	mustSetChild(n, 1, body)
}

// SectionCount returns the number of sections.
func (n *Switch) SectionCount() int { return len(n.sections) }

// Section returns the section at index i.
func (n *Switch) Section(i int) *SwitchSection { return n.sections[i] }

// AddSection appends a section to the switch.
func (n *Switch) AddSection(sec *SwitchSection) {
	attach(n, sec)
	n.sections = append(n.sections, sec)
	n.invalidateFlags()
}

func (n *Switch) OpKind() Kind       { return KindSwitch }
func (n *Switch) DirectFlags() Flags { return FlagControlFlow }
func (n *Switch) ChildCount() int    { return 2 + len(n.sections) }

func (n *Switch) Child(i int) Node {
	switch {
	case i == 0:
		return n.value
	case i == 1:
		return n.defaultBody
	case i >= 2 && i < 2+len(n.sections):
		return n.sections[i-2]
	default:
		return badChild(n, i)
	}
}

func (n *Switch) ChildSlot(i int) *Slot {
	switch {
	case i == 0:
		return ValueSlot
	case i == 1:
		return DefaultBodySlot
	case i >= 2 && i < 2+len(n.sections):
		return SectionSlot
	default:
		badChild(n, i)
		return nil
	}
}

func (n *Switch) replaceChild(i int, c Node) {
	switch {
	case i == 0:
		n.value = c
	case i == 1:
		n.defaultBody = c
	case i >= 2 && i < 2+len(n.sections):
		// The section slot only accepts section nodes, so this assertion
		// holds whenever replaceChild is reached through setChild.
		n.sections[i-2] = c.(*SwitchSection)
	default:
		badChild(n, i)
	}
}

// computeFlags: the value always runs; default body and sections are
// mutually exclusive paths and combine with the branch join.
func (n *Switch) computeFlags() Flags {
	paths := make([]Flags, 0, 1+len(n.sections))
	paths = append(paths, n.defaultBody.Flags())
	for _, sec := range n.sections {
		paths = append(paths, sec.Flags())
	}
	return n.DirectFlags() | n.value.Flags() | CombineBranches(paths...)
}

func (n *Switch) Clone() Node {
	c := NewSwitch(n.value.Clone())
	c.SetDefaultBody(n.defaultBody.Clone())
	for _, sec := range n.sections {
		c.AddSection(sec.Clone().(*SwitchSection))
	}
	c.span = n.span
	return c
}

func (n *Switch) WriteTo(w *Writer) {
	w.WriteString("switch (")
	n.value.WriteTo(w)
	w.WriteString(") {")
	w.FoldStart()
	w.Indent()
	w.NewLine()
	w.WriteString("default: ")
	n.defaultBody.WriteTo(w)
	for _, sec := range n.sections {
		w.NewLine()
		sec.WriteTo(w)
	}
	w.Unindent()
	w.NewLine()
	w.FoldEnd()
	w.WriteString("}")
}

// SwitchSection is one labeled section of a switch: a label set drawn from
// the 64-bit domain and a body. Child 0 is the body; the labels are an
// attribute, not a child.
type SwitchSection struct {
	baseNode
	labels rangeset.Set
	body   Node
}

// NewSwitchSection creates a section with the given labels and body.
func NewSwitchSection(labels rangeset.Set, body Node) *SwitchSection {
	n := &SwitchSection{labels: labels}
	n.init(n)
	n.body = attach(n, body)
	return n
}

// Labels returns the section's label set.
func (n *SwitchSection) Labels() rangeset.Set { return n.labels }

// SetLabels replaces the section's label set.
func (n *SwitchSection) SetLabels(labels rangeset.Set) {
	n.labels = labels
}

// Body returns the section body.
func (n *SwitchSection) Body() Node { return n.body }

// SetBody replaces the section body.
func (n *SwitchSection) SetBody(body Node) {
	mustSetChild(n, 0, body)
}

func (n *SwitchSection) OpKind() Kind       { return KindSwitchSection }
func (n *SwitchSection) DirectFlags() Flags { return FlagNone }
func (n *SwitchSection) ChildCount() int    { return 1 }

func (n *SwitchSection) Child(i int) Node {
	if i != 0 {
		return badChild(n, i)
	}
	return n.body
}

func (n *SwitchSection) ChildSlot(i int) *Slot {
	if i != 0 {
		badChild(n, i)
	}
	return BodySlot
}

func (n *SwitchSection) replaceChild(i int, c Node) {
	if i != 0 {
		badChild(n, i)
	}
	n.body = c
}

func (n *SwitchSection) Clone() Node {
	c := NewSwitchSection(n.labels, n.body.Clone())
	c.span = n.span
	return c
}

func (n *SwitchSection) WriteTo(w *Writer) {
	w.WriteString("case ")
	w.WriteString(n.labels.String())
	w.WriteString(": ")
	n.body.WriteTo(w)
}
