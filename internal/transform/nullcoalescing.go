package transform

import "relift/internal/ir"

// NullCoalescingTransform folds the null-check-and-fallback idiom into one
// coalescing expression. Pattern recognized, at adjacent block positions:
//
//	stloc s(V)
//	if (comp.eq(ldloc s, ldnull)) stloc s(F)
//
// where s is a stack-slot temporary. Becomes:
//
//	stloc s(null.coalescing(V, F))
//
// Indices are visited from the end of the block backward: a match removes
// the conditional at the current index, and backward scanning keeps the
// not-yet-visited lower indices stable under that removal.
type NullCoalescingTransform struct{}

func (NullCoalescingTransform) Name() string { return "null-coalescing" }

func (t NullCoalescingTransform) Run(block *ir.Block, ctx *Context) {
	for i := block.Len() - 1; i >= 1; i-- {
		t.matchAt(block, i, ctx)
	}
}

// matchAt folds the pattern ending at index i, or leaves the block
// untouched when any sub-condition fails.
func (t NullCoalescingTransform) matchAt(block *ir.Block, i int, ctx *Context) {
	ifInst, ok := block.Instruction(i).(*ir.IfInstruction)
	if !ok {
		return
	}
	store, ok := block.Instruction(i - 1).(*ir.StLoc)
	if !ok || store.Variable().Kind != ir.VarKindStackSlot {
		return
	}
	if ifInst.FalseInst().OpKind() != ir.KindNop {
		return
	}

	// Guard must be exactly "temporary equals null literal".
	comp, ok := ifInst.Condition().(*ir.Comp)
	if !ok || comp.Op() != ir.CompEq {
		return
	}
	guard, ok := comp.Left().(*ir.LdLoc)
	if !ok || guard.Variable() != store.Variable() {
		return
	}
	if comp.Right().OpKind() != ir.KindLdNull {
		return
	}

	// True branch must be a single store of the fallback to the same
	// temporary.
	fallbackStore := asSingleStore(ifInst.TrueInst())
	if fallbackStore == nil || fallbackStore.Variable() != store.Variable() {
		return
	}

	before := ir.Render(store) + "\n" + ir.Render(ifInst)

	block.RemoveAt(i)
	value := ir.Extract(store.Value())
	fallback := ir.Extract(fallbackStore.Value())
	coal := ir.NewNullCoalescing(value, fallback)
	coal.SetSpan(value.Span().Cover(fallback.Span()))
	store.SetValue(coal)

	ctx.Step(t.Name(), store, "var "+store.Variable().Name, before, ir.Render(store))
}

// asSingleStore unwraps n to a store when it is one directly or a block
// containing exactly one.
func asSingleStore(n ir.Node) *ir.StLoc {
	switch inst := n.(type) {
	case *ir.StLoc:
		return inst
	case *ir.Block:
		if inst.Len() == 1 {
			if store, ok := inst.Instruction(0).(*ir.StLoc); ok {
				return store
			}
		}
	}
	return nil
}
