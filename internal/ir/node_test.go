package ir_test

import (
	"strings"
	"testing"

	"relift/internal/ir"
	"relift/internal/rangeset"
	"relift/internal/source"
)

// TestCloneIndependence tests that a clone renders and flags identically but
// shares no node identity with the original.
func TestCloneIndependence(t *testing.T) {
	s := ir.NewVariable("s", ir.VarKindStackSlot)
	store := ir.NewStLoc(s, ir.NewCall("GetName"))
	store.SetSpan(source.Span{Start: 4, End: 10})
	block := ir.NewBlock(store, ir.NewNop())

	clone := block.Clone().(*ir.Block)

	if ir.Render(clone) != ir.Render(block) {
		t.Errorf("clone renders differently:\n%s\nvs\n%s", ir.Render(clone), ir.Render(block))
	}
	if clone.Flags() != block.Flags() {
		t.Errorf("clone flags %s differ from original %s", clone.Flags(), block.Flags())
	}
	if clone.Instruction(0).Span() != store.Span() {
		t.Errorf("clone lost provenance: %v", clone.Instruction(0).Span())
	}
	if clone.Instruction(0) == ir.Node(store) {
		t.Errorf("clone shares a node with the original")
	}

	// Mutating the clone must not affect the original.
	clone.Instruction(0).(*ir.StLoc).SetValue(ir.NewLdNull())
	if !strings.Contains(ir.Render(block), "GetName") {
		t.Errorf("mutating the clone changed the original:\n%s", ir.Render(block))
	}
}

// TestSetChildSlotValidation tests that slot constraints reject bad children.
func TestSetChildSlotValidation(t *testing.T) {
	sw := ir.NewSwitch(ir.NewLdcI8(1))
	sw.AddSection(ir.NewSwitchSection(rangeset.Single(1), ir.NewNop()))

	// Child 2 is a section slot; a Nop is the wrong variant for it.
	if err := sw.SetChild(2, ir.NewNop()); err == nil {
		t.Errorf("expected validation error assigning Nop to a section slot")
	}
	if err := sw.SetChild(0, ir.NewLdLoc(ir.NewVariable("x", ir.VarKindLocal))); err != nil {
		t.Errorf("unexpected error replacing the scrutinee: %v", err)
	}
	if err := ir.Validate(sw); err != nil {
		t.Errorf("switch invalid after legal replacement: %v", err)
	}
}

// TestSetChildRejectsAttached tests the ownership discipline: a node that
// already has a tree position cannot be attached elsewhere.
func TestSetChildRejectsAttached(t *testing.T) {
	value := ir.NewLdcI8(7)
	first := ir.NewThrow(value)

	second := ir.NewThrow(ir.NewLdNull())
	if err := second.SetChild(0, value); err == nil {
		t.Errorf("expected error attaching an owned node to a second parent")
	}
	if first.Value() != ir.Node(value) {
		t.Errorf("failed attachment must leave the original owner intact")
	}
}

// TestExtract tests that extraction detaches the node and leaves the old
// tree structurally valid.
func TestExtract(t *testing.T) {
	s := ir.NewVariable("s", ir.VarKindStackSlot)
	value := ir.NewCall("Load")
	store := ir.NewStLoc(s, value)

	got := ir.Extract(value)
	if got != ir.Node(value) {
		t.Fatalf("extract returned a different node")
	}
	if value.Parent() != nil {
		t.Errorf("extracted node still has a parent")
	}
	if store.Value().OpKind() != ir.KindNop {
		t.Errorf("extraction hole not plugged, got %s", store.Value().OpKind())
	}
	if err := ir.Validate(store); err != nil {
		t.Errorf("old tree invalid after extraction: %v", err)
	}
}

// TestValidatePreservesStructure tests that validation leaves the tree's
// shape, rendering and ownership untouched.
func TestValidatePreservesStructure(t *testing.T) {
	s := ir.NewVariable("s", ir.VarKindStackSlot)
	store := ir.NewStLoc(s, ir.NewCall("F"))
	block := ir.NewBlock(store, ir.NewThrow(ir.NewLdNull()))
	before := ir.Render(block)

	if err := ir.Validate(block); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got := ir.Render(block); got != before {
		t.Errorf("validation changed the tree:\n%s\nwas:\n%s", got, before)
	}
	if block.Instruction(0) != ir.Node(store) || store.Parent() != ir.Node(block) {
		t.Errorf("validation changed ownership links")
	}
}

// TestFlagsCacheInvalidation tests that replacing a grandchild updates the
// flags observed on every ancestor.
func TestFlagsCacheInvalidation(t *testing.T) {
	s := ir.NewVariable("s", ir.VarKindStackSlot)
	store := ir.NewStLoc(s, ir.NewLdcI8(1))
	block := ir.NewBlock(store)

	if block.Flags()&ir.FlagMayThrow != 0 {
		t.Fatalf("constant store should not throw, got %s", block.Flags())
	}

	store.SetValue(ir.NewCall("Risky"))
	if block.Flags()&ir.FlagMayThrow == 0 {
		t.Errorf("block flags stale after mutating a grandchild: %s", block.Flags())
	}
	if err := ir.Validate(block); err != nil {
		t.Errorf("flag cache inconsistent: %v", err)
	}
}

// TestBranchFlagJoin tests the branch join: "may" flags union across paths,
// "always" flags intersect.
func TestBranchFlagJoin(t *testing.T) {
	cond := func() ir.Node {
		v := ir.NewVariable("c", ir.VarKindLocal)
		return ir.NewComp(ir.CompEq, ir.NewLdLoc(v), ir.NewLdNull())
	}
	throwInst := func() ir.Node { return ir.NewThrow(ir.NewLdNull()) }

	oneArm := ir.NewIfInstruction(cond(), throwInst(), ir.NewNop())
	if oneArm.Flags()&ir.FlagMayThrow == 0 {
		t.Errorf("throw on one path must surface may-throw: %s", oneArm.Flags())
	}
	if oneArm.Flags()&ir.FlagEndPointUnreachable != 0 {
		t.Errorf("end point is reachable through the nop arm: %s", oneArm.Flags())
	}

	bothArms := ir.NewIfInstruction(cond(), throwInst(), throwInst())
	if bothArms.Flags()&ir.FlagEndPointUnreachable == 0 {
		t.Errorf("every path throws, end point must be unreachable: %s", bothArms.Flags())
	}
}

// TestCoalescingFlags tests that a throwing fallback arm stays conditional:
// may-throw propagates, end-point-unreachable does not.
func TestCoalescingFlags(t *testing.T) {
	coal := ir.NewNullCoalescing(ir.NewLdNull(), ir.NewThrow(ir.NewLdNull()))
	if coal.Flags()&ir.FlagMayThrow == 0 {
		t.Errorf("throwing fallback must surface may-throw: %s", coal.Flags())
	}
	if coal.Flags()&ir.FlagEndPointUnreachable != 0 {
		t.Errorf("fallback is conditional, end point stays reachable: %s", coal.Flags())
	}
}

// TestComputeFlagsPure tests that ComputeFlags does not depend on the cache.
func TestComputeFlagsPure(t *testing.T) {
	store := ir.NewStLoc(ir.NewVariable("s", ir.VarKindStackSlot), ir.NewCall("F"))
	want := ir.FlagSideEffect | ir.FlagMayThrow
	if got := ir.ComputeFlags(store); got != want {
		t.Errorf("computed %s, want %s", got, want)
	}
	// Reading twice through the cache gives the same answer.
	if store.Flags() != store.Flags() || store.Flags() != want {
		t.Errorf("cached flags unstable: %s", store.Flags())
	}
}

// TestBlockRemoveAt tests index contiguity and order preservation.
func TestBlockRemoveAt(t *testing.T) {
	a := ir.NewNop()
	b := ir.NewThrow(ir.NewLdNull())
	c := ir.NewNop()
	block := ir.NewBlock(a, b, c)

	block.RemoveAt(1)
	if block.Len() != 2 {
		t.Fatalf("expected 2 instructions, got %d", block.Len())
	}
	if block.Instruction(0) != ir.Node(a) || block.Instruction(1) != ir.Node(c) {
		t.Errorf("relative order of untouched instructions not preserved")
	}
	if b.Parent() != nil {
		t.Errorf("removed instruction still owned")
	}
	if block.Flags()&ir.FlagMayThrow != 0 {
		t.Errorf("flags stale after removal: %s", block.Flags())
	}
}
