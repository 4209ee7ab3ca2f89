package ir_test

import (
	"strings"
	"testing"

	"relift/internal/ir"
	"relift/internal/rangeset"
)

// TestSwitchValidateDisjoint tests that overlapping section labels are
// reported as an invariant violation, and disjoint ones are not.
func TestSwitchValidateDisjoint(t *testing.T) {
	x := ir.NewVariable("x", ir.VarKindLocal)

	sw := ir.NewSwitch(ir.NewLdLoc(x))
	sw.AddSection(ir.NewSwitchSection(rangeset.New(1, 5), ir.NewNop()))
	sw.AddSection(ir.NewSwitchSection(rangeset.New(6, 9), ir.NewNop()))
	if err := ir.Validate(sw); err != nil {
		t.Errorf("disjoint sections reported invalid: %v", err)
	}

	// Adversarial overlap: 1..5 and 5..9 share the label 5.
	bad := ir.NewSwitch(ir.NewLdLoc(x))
	bad.AddSection(ir.NewSwitchSection(rangeset.New(1, 5), ir.NewNop()))
	bad.AddSection(ir.NewSwitchSection(rangeset.New(5, 9), ir.NewNop()))
	err := ir.Validate(bad)
	if err == nil {
		t.Fatalf("overlapping sections not reported")
	}
	if !strings.Contains(err.Error(), "overlapping labels") {
		t.Errorf("unexpected violation text: %v", err)
	}
}

// TestSwitchValidateEmptyLabels tests that a section with no labels is a
// violation.
func TestSwitchValidateEmptyLabels(t *testing.T) {
	sw := ir.NewSwitch(ir.NewLdcI8(0))
	sw.AddSection(ir.NewSwitchSection(rangeset.Empty(), ir.NewNop()))

	if err := ir.Validate(sw); err == nil {
		t.Errorf("empty label set not reported")
	}
}

// TestSwitchPrint tests the canonical rendering and the fold region around
// the switch body.
func TestSwitchPrint(t *testing.T) {
	x := ir.NewVariable("x", ir.VarKindLocal)
	sw := ir.NewSwitch(ir.NewLdLoc(x))
	sw.AddSection(ir.NewSwitchSection(
		rangeset.Single(1).Union(rangeset.New(3, 7)), ir.NewNop()))
	sw.AddSection(ir.NewSwitchSection(rangeset.Single(10), ir.NewNop()))

	want := "switch (ldloc x) {\n" +
		"  default: nop\n" +
		"  case 1, 3..7: nop\n" +
		"  case 10: nop\n" +
		"}"
	w := ir.NewWriter()
	sw.WriteTo(w)
	if w.String() != want {
		t.Errorf("unexpected rendering:\n%s\nwant:\n%s", w.String(), want)
	}

	folds := w.Folds()
	if len(folds) != 1 {
		t.Fatalf("expected 1 fold region, got %d", len(folds))
	}
	folded := w.String()[folds[0].Start:folds[0].End]
	if !strings.Contains(folded, "default: nop") || strings.Contains(folded, "switch (") {
		t.Errorf("fold region misplaced: %q", folded)
	}
}

// TestSwitchClone tests that cloning deep-copies value, default body and
// every section.
func TestSwitchClone(t *testing.T) {
	x := ir.NewVariable("x", ir.VarKindLocal)
	sw := ir.NewSwitch(ir.NewLdLoc(x))
	sw.SetDefaultBody(ir.NewThrow(ir.NewLdNull()))
	sw.AddSection(ir.NewSwitchSection(rangeset.New(0, 2), ir.NewStLoc(x, ir.NewLdcI8(1))))

	clone := sw.Clone().(*ir.Switch)
	if ir.Render(clone) != ir.Render(sw) {
		t.Errorf("clone renders differently")
	}
	if clone.Flags() != sw.Flags() {
		t.Errorf("clone flags differ: %s vs %s", clone.Flags(), sw.Flags())
	}
	if clone.Section(0) == sw.Section(0) || clone.Section(0).Body() == sw.Section(0).Body() {
		t.Errorf("clone shares section state with the original")
	}

	clone.Section(0).SetLabels(rangeset.New(100, 200))
	if sw.Section(0).Labels().Contains(100) {
		t.Errorf("relabeling the clone changed the original")
	}
}

// TestSwitchBranchFlags tests path-joined flags on dispatch: a throwing
// default with a non-throwing section is may-throw, all paths throwing is
// always-throws.
func TestSwitchBranchFlags(t *testing.T) {
	mayThrow := ir.NewSwitch(ir.NewLdcI8(0))
	mayThrow.SetDefaultBody(ir.NewThrow(ir.NewLdNull()))
	mayThrow.AddSection(ir.NewSwitchSection(rangeset.Single(0), ir.NewNop()))

	if mayThrow.Flags()&ir.FlagMayThrow == 0 {
		t.Errorf("throwing default must surface may-throw: %s", mayThrow.Flags())
	}
	if mayThrow.Flags()&ir.FlagEndPointUnreachable != 0 {
		t.Errorf("non-throwing section keeps the end point reachable: %s", mayThrow.Flags())
	}

	allThrow := ir.NewSwitch(ir.NewLdcI8(0))
	allThrow.SetDefaultBody(ir.NewThrow(ir.NewLdNull()))
	allThrow.AddSection(ir.NewSwitchSection(rangeset.Single(0), ir.NewThrow(ir.NewLdNull())))

	if allThrow.Flags()&ir.FlagEndPointUnreachable == 0 {
		t.Errorf("every path throws, end point must be unreachable: %s", allThrow.Flags())
	}
}
