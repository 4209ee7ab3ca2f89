package ir

import (
	"errors"
	"fmt"
)

// Validate walks the tree rooted at root and checks structural invariants:
// ownership links, slot acceptance, flag-cache consistency and the
// domain-specific rules of the node variants (non-empty, pairwise-disjoint
// switch labels). It never alters tree structure; reading flags may fill
// previously unfilled caches. A reported violation is a defect in whichever
// pass constructed or rewrote the tree, not a condition to repair. Returns
// nil for a well-formed tree.
func Validate(root Node) error {
	if root == nil {
		return nil
	}
	v := &validator{seen: make(map[Node]struct{})}
	v.walk(root, root.OpKind().String())
	return errors.Join(v.errs...)
}

type validator struct {
	seen map[Node]struct{}
	errs []error
}

func (v *validator) errorf(path, format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf("%s: %s", path, fmt.Sprintf(format, args...)))
}

func (v *validator) walk(n Node, path string) {
	if _, dup := v.seen[n]; dup {
		// A shared node means the tree is not a tree; do not recurse again.
		v.errorf(path, "node appears at more than one tree position")
		return
	}
	v.seen[n] = struct{}{}

	b := n.base()
	if b.flagsValid && b.flags != ComputeFlags(n) {
		v.errorf(path, "cached flags %s differ from computed %s", b.flags, ComputeFlags(n))
	}

	if sw, ok := n.(*Switch); ok {
		v.checkSwitch(sw, path)
	}

	for i := 0; i < n.ChildCount(); i++ {
		child := n.Child(i)
		slot := n.ChildSlot(i)
		childPath := fmt.Sprintf("%s.%s[%d]", path, slot, i)
		if child == nil {
			v.errorf(childPath, "missing child")
			continue
		}
		if child.Parent() != n {
			v.errorf(childPath, "ownership link broken: child's parent is not this node")
		}
		if !slot.Accepts(child) {
			v.errorf(childPath, "%s not valid for slot %s", child.OpKind(), slot)
		}
		v.walk(child, childPath)
	}
}

func (v *validator) checkSwitch(sw *Switch, path string) {
	for i := 0; i < sw.SectionCount(); i++ {
		si := sw.Section(i)
		if si.Labels().IsEmpty() {
			v.errorf(path, "section %d has an empty label set", i)
		}
		for j := i + 1; j < sw.SectionCount(); j++ {
			sj := sw.Section(j)
			if si.Labels().Overlaps(sj.Labels()) {
				v.errorf(path, "sections %d (%s) and %d (%s) have overlapping labels",
					i, si.Labels(), j, sj.Labels())
			}
		}
	}
}
