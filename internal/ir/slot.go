package ir

// Slot describes the role and constraints of one child position on a node.
// Transforms inspect slots instead of concrete node types: any child can be
// read or replaced through the generic Child/SetChild protocol as long as
// the replacement satisfies the slot's acceptance rule.
type Slot struct {
	// Name is the display name of the position, e.g. "Value" or "Body".
	Name string
	// IsCollection marks slots that are part of an ordered collection of
	// sibling children (block instructions, switch sections, call arguments).
	IsCollection bool
	// CanInline marks slots whose child may be inlined into a surrounding
	// expression context by later passes.
	CanInline bool

	accepts func(Node) bool
}

// Accepts reports whether n is structurally valid for this slot.
func (s *Slot) Accepts(n Node) bool {
	if n == nil {
		return false
	}
	if s.accepts == nil {
		return true
	}
	return s.accepts(n)
}

func (s *Slot) String() string {
	return s.Name
}

// Child slots shared by the node variants. A slot value carries no reference
// to its owner, so one slot can describe the same role on every node.
var (
	// ValueSlot is the evaluated sub-expression of stores, throws, switches
	// and coalescing nodes.
	ValueSlot = &Slot{Name: "Value", CanInline: true}
	// FallbackSlot is the right arm of a coalescing expression, evaluated
	// only when the value arm is null.
	FallbackSlot = &Slot{Name: "Fallback", CanInline: true}
	// ConditionSlot is the guard of a conditional.
	ConditionSlot = &Slot{Name: "Condition", CanInline: true}
	// TrueSlot is the arm taken when a conditional guard holds.
	TrueSlot = &Slot{Name: "TrueInst"}
	// FalseSlot is the arm taken when a conditional guard does not hold.
	FalseSlot = &Slot{Name: "FalseInst"}
	// LeftSlot is the left operand of a comparison.
	LeftSlot = &Slot{Name: "Left", CanInline: true}
	// RightSlot is the right operand of a comparison.
	RightSlot = &Slot{Name: "Right", CanInline: true}
	// ArgumentSlot is one element of a call's argument list.
	ArgumentSlot = &Slot{Name: "Argument", IsCollection: true, CanInline: true}
	// InstructionSlot is one element of a block's instruction list.
	InstructionSlot = &Slot{Name: "Instruction", IsCollection: true}
	// DefaultBodySlot is the default body of a switch.
	DefaultBodySlot = &Slot{Name: "DefaultBody"}
	// SectionSlot is one element of a switch's section list; only
	// well-formed section nodes are accepted.
	SectionSlot = &Slot{
		Name:         "Section",
		IsCollection: true,
		accepts: func(n Node) bool {
			return n.OpKind() == KindSwitchSection
		},
	}
	// BodySlot is the body of a switch section.
	BodySlot = &Slot{Name: "Body"}
)
