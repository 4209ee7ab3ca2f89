package ir

import (
	"fmt"
	"strconv"
)

func badChild(n Node, i int) Node {
	panic(fmt.Sprintf("ir: %s has no child %d", n.OpKind(), i))
}

// Nop is the no-op instruction. It doubles as the placeholder left behind
// when a child is extracted for relocation.
type Nop struct {
	baseNode
}

// NewNop creates a no-op instruction.
func NewNop() *Nop {
	n := &Nop{}
	n.init(n)
	return n
}

func (n *Nop) OpKind() Kind          { return KindNop }
func (n *Nop) DirectFlags() Flags    { return FlagNone }
func (n *Nop) ChildCount() int       { return 0 }
func (n *Nop) Child(i int) Node      { return badChild(n, i) }
func (n *Nop) ChildSlot(i int) *Slot { badChild(n, i); return nil }
func (n *Nop) replaceChild(i int, _ Node) {
	badChild(n, i)
}

func (n *Nop) Clone() Node {
	c := NewNop()
	c.span = n.span
	return c
}

func (n *Nop) WriteTo(w *Writer) {
	w.WriteString("nop")
}

// LdLoc loads the value of a variable.
type LdLoc struct {
	baseNode
	variable *Variable
}

// NewLdLoc creates a load of v.
func NewLdLoc(v *Variable) *LdLoc {
	n := &LdLoc{variable: v}
	n.init(n)
	return n
}

// Variable returns the loaded variable.
func (n *LdLoc) Variable() *Variable { return n.variable }

func (n *LdLoc) OpKind() Kind          { return KindLdLoc }
func (n *LdLoc) DirectFlags() Flags    { return FlagNone }
func (n *LdLoc) ChildCount() int       { return 0 }
func (n *LdLoc) Child(i int) Node      { return badChild(n, i) }
func (n *LdLoc) ChildSlot(i int) *Slot { badChild(n, i); return nil }
func (n *LdLoc) replaceChild(i int, _ Node) {
	badChild(n, i)
}

func (n *LdLoc) Clone() Node {
	c := NewLdLoc(n.variable)
	c.span = n.span
	return c
}

func (n *LdLoc) WriteTo(w *Writer) {
	w.WriteString("ldloc ")
	w.WriteString(n.variable.String())
}

// LdcI8 loads a 64-bit integer constant.
type LdcI8 struct {
	baseNode
	value int64
}

// NewLdcI8 creates a constant load of v.
func NewLdcI8(v int64) *LdcI8 {
	n := &LdcI8{value: v}
	n.init(n)
	return n
}

// Value returns the constant.
func (n *LdcI8) Value() int64 { return n.value }

func (n *LdcI8) OpKind() Kind          { return KindLdcI8 }
func (n *LdcI8) DirectFlags() Flags    { return FlagNone }
func (n *LdcI8) ChildCount() int       { return 0 }
func (n *LdcI8) Child(i int) Node      { return badChild(n, i) }
func (n *LdcI8) ChildSlot(i int) *Slot { badChild(n, i); return nil }
func (n *LdcI8) replaceChild(i int, _ Node) {
	badChild(n, i)
}

func (n *LdcI8) Clone() Node {
	c := NewLdcI8(n.value)
	c.span = n.span
	return c
}

func (n *LdcI8) WriteTo(w *Writer) {
	w.WriteString("ldc.i8 ")
	w.WriteString(strconv.FormatInt(n.value, 10))
}

// LdNull loads the null literal.
type LdNull struct {
	baseNode
}

// NewLdNull creates a null literal load.
func NewLdNull() *LdNull {
	n := &LdNull{}
	n.init(n)
	return n
}

func (n *LdNull) OpKind() Kind          { return KindLdNull }
func (n *LdNull) DirectFlags() Flags    { return FlagNone }
func (n *LdNull) ChildCount() int       { return 0 }
func (n *LdNull) Child(i int) Node      { return badChild(n, i) }
func (n *LdNull) ChildSlot(i int) *Slot { badChild(n, i); return nil }
func (n *LdNull) replaceChild(i int, _ Node) {
	badChild(n, i)
}

func (n *LdNull) Clone() Node {
	c := NewLdNull()
	c.span = n.span
	return c
}

func (n *LdNull) WriteTo(w *Writer) {
	w.WriteString("ldnull")
}

// StLoc stores a value into a variable. Child 0 is the stored value.
type StLoc struct {
	baseNode
	variable *Variable
	value    Node
}

// NewStLoc creates a store of value into v.
func NewStLoc(v *Variable, value Node) *StLoc {
	n := &StLoc{variable: v}
	n.init(n)
	n.value = attach(n, value)
	return n
}

// Variable returns the stored variable.
func (n *StLoc) Variable() *Variable { return n.variable }

// Value returns the stored value sub-expression.
func (n *StLoc) Value() Node { return n.value }

// SetValue replaces the stored value sub-expression.
func (n *StLoc) SetValue(value Node) {
	mustSetChild(n, 0, value)
}

func (n *StLoc) OpKind() Kind       { return KindStLoc }
func (n *StLoc) DirectFlags() Flags { return FlagSideEffect }
func (n *StLoc) ChildCount() int    { return 1 }

func (n *StLoc) Child(i int) Node {
	if i != 0 {
		return badChild(n, i)
	}
	return n.value
}

func (n *StLoc) ChildSlot(i int) *Slot {
	if i != 0 {
		badChild(n, i)
	}
	return ValueSlot
}

func (n *StLoc) replaceChild(i int, c Node) {
	if i != 0 {
		badChild(n, i)
	}
	n.value = c
}

func (n *StLoc) Clone() Node {
	c := NewStLoc(n.variable, n.value.Clone())
	c.span = n.span
	return c
}

func (n *StLoc) WriteTo(w *Writer) {
	w.WriteString("stloc ")
	w.WriteString(n.variable.String())
	w.WriteString("(")
	n.value.WriteTo(w)
	w.WriteString(")")
}

// CompOp enumerates comparison operators.
type CompOp uint8

const (
	// CompEq is equality.
	CompEq CompOp = iota
	// CompNe is inequality.
	CompNe
	// CompLt is less-than.
	CompLt
	// CompLe is less-or-equal.
	CompLe
	// CompGt is greater-than.
	CompGt
	// CompGe is greater-or-equal.
	CompGe
)

// String returns the operator mnemonic.
func (op CompOp) String() string {
	switch op {
	case CompEq:
		return "eq"
	case CompNe:
		return "ne"
	case CompLt:
		return "lt"
	case CompLe:
		return "le"
	case CompGt:
		return "gt"
	case CompGe:
		return "ge"
	default:
		return "unknown"
	}
}

// Comp compares two operands. Child 0 is the left operand, child 1 the right.
type Comp struct {
	baseNode
	op    CompOp
	left  Node
	right Node
}

// NewComp creates a comparison of left and right with the given operator.
func NewComp(op CompOp, left, right Node) *Comp {
	n := &Comp{op: op}
	n.init(n)
	n.left = attach(n, left)
	n.right = attach(n, right)
	return n
}

// Op returns the comparison operator.
func (n *Comp) Op() CompOp { return n.op }

// Left returns the left operand.
func (n *Comp) Left() Node { return n.left }

// Right returns the right operand.
func (n *Comp) Right() Node { return n.right }

func (n *Comp) OpKind() Kind       { return KindComp }
func (n *Comp) DirectFlags() Flags { return FlagNone }
func (n *Comp) ChildCount() int    { return 2 }

func (n *Comp) Child(i int) Node {
	switch i {
	case 0:
		return n.left
	case 1:
		return n.right
	default:
		return badChild(n, i)
	}
}

func (n *Comp) ChildSlot(i int) *Slot {
	switch i {
	case 0:
		return LeftSlot
	case 1:
		return RightSlot
	default:
		badChild(n, i)
		return nil
	}
}

func (n *Comp) replaceChild(i int, c Node) {
	switch i {
	case 0:
		n.left = c
	case 1:
		n.right = c
	default:
		badChild(n, i)
	}
}

func (n *Comp) Clone() Node {
	c := NewComp(n.op, n.left.Clone(), n.right.Clone())
	c.span = n.span
	return c
}

func (n *Comp) WriteTo(w *Writer) {
	w.WriteString("comp.")
	w.WriteString(n.op.String())
	w.WriteString("(")
	n.left.WriteTo(w)
	w.WriteString(", ")
	n.right.WriteTo(w)
	w.WriteString(")")
}

// Call invokes a named method. Children are the arguments, in order.
// At this layer a call is assumed to throw and have side effects; callers
// with resolved metadata refine that upstream.
type Call struct {
	baseNode
	method string
	args   []Node
}

// NewCall creates a call to method with the given arguments.
func NewCall(method string, args ...Node) *Call {
	n := &Call{method: method, args: make([]Node, 0, len(args))}
	n.init(n)
	for _, a := range args {
		n.args = append(n.args, attach(n, a))
	}
	return n
}

// Method returns the callee's display name.
func (n *Call) Method() string { return n.method }

func (n *Call) OpKind() Kind       { return KindCall }
func (n *Call) DirectFlags() Flags { return FlagMayThrow | FlagSideEffect }
func (n *Call) ChildCount() int    { return len(n.args) }

func (n *Call) Child(i int) Node {
	if i < 0 || i >= len(n.args) {
		return badChild(n, i)
	}
	return n.args[i]
}

func (n *Call) ChildSlot(i int) *Slot {
	if i < 0 || i >= len(n.args) {
		badChild(n, i)
	}
	return ArgumentSlot
}

func (n *Call) replaceChild(i int, c Node) {
	if i < 0 || i >= len(n.args) {
		badChild(n, i)
	}
	n.args[i] = c
}

func (n *Call) Clone() Node {
	args := make([]Node, 0, len(n.args))
	for _, a := range n.args {
		args = append(args, a.Clone())
	}
	c := NewCall(n.method, args...)
	c.span = n.span
	return c
}

func (n *Call) WriteTo(w *Writer) {
	w.WriteString("call ")
	w.WriteString(n.method)
	w.WriteString("(")
	for i, a := range n.args {
		if i > 0 {
			w.WriteString(", ")
		}
		a.WriteTo(w)
	}
	w.WriteString(")")
}

// Throw raises its value as an exception. Child 0 is the thrown value.
type Throw struct {
	baseNode
	value Node
}

// NewThrow creates a throw of value.
func NewThrow(value Node) *Throw {
	n := &Throw{}
	n.init(n)
	n.value = attach(n, value)
	return n
}

// Value returns the thrown value.
func (n *Throw) Value() Node { return n.value }

func (n *Throw) OpKind() Kind { return KindThrow }

func (n *Throw) DirectFlags() Flags {
	return FlagMayThrow | FlagSideEffect | FlagEndPointUnreachable
}

func (n *Throw) ChildCount() int { return 1 }

func (n *Throw) Child(i int) Node {
	if i != 0 {
		return badChild(n, i)
	}
	return n.value
}

func (n *Throw) ChildSlot(i int) *Slot {
	if i != 0 {
		badChild(n, i)
	}
	return ValueSlot
}

func (n *Throw) replaceChild(i int, c Node) {
	if i != 0 {
		badChild(n, i)
	}
	n.value = c
}

func (n *Throw) Clone() Node {
	c := NewThrow(n.value.Clone())
	c.span = n.span
	return c
}

func (n *Throw) WriteTo(w *Writer) {
	w.WriteString("throw(")
	n.value.WriteTo(w)
	w.WriteString(")")
}

// NullCoalescing evaluates its value arm and, when that is null, evaluates
// and yields the fallback arm instead. Child 0 is the value, child 1 the
// fallback.
type NullCoalescing struct {
	baseNode
	value    Node
	fallback Node
}

// NewNullCoalescing creates a coalescing expression over value and fallback.
func NewNullCoalescing(value, fallback Node) *NullCoalescing {
	n := &NullCoalescing{}
	n.init(n)
	n.value = attach(n, value)
	n.fallback = attach(n, fallback)
	return n
}

// Value returns the primary arm.
func (n *NullCoalescing) Value() Node { return n.value }

// Fallback returns the arm evaluated only when the value arm is null.
func (n *NullCoalescing) Fallback() Node { return n.fallback }

func (n *NullCoalescing) OpKind() Kind       { return KindNullCoalescing }
func (n *NullCoalescing) DirectFlags() Flags { return FlagNone }
func (n *NullCoalescing) ChildCount() int    { return 2 }

func (n *NullCoalescing) Child(i int) Node {
	switch i {
	case 0:
		return n.value
	case 1:
		return n.fallback
	default:
		return badChild(n, i)
	}
}

func (n *NullCoalescing) ChildSlot(i int) *Slot {
	switch i {
	case 0:
		return ValueSlot
	case 1:
		return FallbackSlot
	default:
		badChild(n, i)
		return nil
	}
}

func (n *NullCoalescing) replaceChild(i int, c Node) {
	switch i {
	case 0:
		n.value = c
	case 1:
		n.fallback = c
	default:
		badChild(n, i)
	}
}

// computeFlags: the fallback arm runs conditionally, so its unreachable end
// point must not leak into the combined flags.
func (n *NullCoalescing) computeFlags() Flags {
	return n.DirectFlags() | n.value.Flags() | (n.fallback.Flags() &^ unconditionalFlags)
}

func (n *NullCoalescing) Clone() Node {
	c := NewNullCoalescing(n.value.Clone(), n.fallback.Clone())
	c.span = n.span
	return c
}

func (n *NullCoalescing) WriteTo(w *Writer) {
	w.WriteString("null.coalescing(")
	n.value.WriteTo(w)
	w.WriteString(", ")
	n.fallback.WriteTo(w)
	w.WriteString(")")
}

// IfInstruction runs one of two arms depending on its condition. Child 0 is
// the condition, child 1 the true arm, child 2 the false arm (a Nop when the
// source had no else part).
type IfInstruction struct {
	baseNode
	condition Node
	trueInst  Node
	falseInst Node
}

// NewIfInstruction creates a conditional. falseInst may be nil for a
// one-armed conditional; a Nop arm is substituted.
func NewIfInstruction(condition, trueInst, falseInst Node) *IfInstruction {
	n := &IfInstruction{}
	n.init(n)
	n.condition = attach(n, condition)
	n.trueInst = attach(n, trueInst)
	if falseInst == nil {
		falseInst = NewNop()
	}
	n.falseInst = attach(n, falseInst)
	return n
}

// Condition returns the guard expression.
func (n *IfInstruction) Condition() Node { return n.condition }

// TrueInst returns the arm taken when the guard holds.
func (n *IfInstruction) TrueInst() Node { return n.trueInst }

// FalseInst returns the arm taken when the guard does not hold.
func (n *IfInstruction) FalseInst() Node { return n.falseInst }

func (n *IfInstruction) OpKind() Kind       { return KindIfInstruction }
func (n *IfInstruction) DirectFlags() Flags { return FlagControlFlow }
func (n *IfInstruction) ChildCount() int    { return 3 }

func (n *IfInstruction) Child(i int) Node {
	switch i {
	case 0:
		return n.condition
	case 1:
		return n.trueInst
	case 2:
		return n.falseInst
	default:
		return badChild(n, i)
	}
}

func (n *IfInstruction) ChildSlot(i int) *Slot {
	switch i {
	case 0:
		return ConditionSlot
	case 1:
		return TrueSlot
	case 2:
		return FalseSlot
	default:
		badChild(n, i)
		return nil
	}
}

func (n *IfInstruction) replaceChild(i int, c Node) {
	switch i {
	case 0:
		n.condition = c
	case 1:
		n.trueInst = c
	case 2:
		n.falseInst = c
	default:
		badChild(n, i)
	}
}

// computeFlags joins the two arms as mutually exclusive paths: the condition
// always runs, the arms combine with the branch join.
func (n *IfInstruction) computeFlags() Flags {
	return n.DirectFlags() | n.condition.Flags() |
		CombineBranches(n.trueInst.Flags(), n.falseInst.Flags())
}

func (n *IfInstruction) Clone() Node {
	c := NewIfInstruction(n.condition.Clone(), n.trueInst.Clone(), n.falseInst.Clone())
	c.span = n.span
	return c
}

func (n *IfInstruction) WriteTo(w *Writer) {
	w.WriteString("if (")
	n.condition.WriteTo(w)
	w.WriteString(") ")
	n.trueInst.WriteTo(w)
	if n.falseInst.OpKind() != KindNop {
		w.WriteString(" else ")
		n.falseInst.WriteTo(w)
	}
}
