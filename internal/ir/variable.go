package ir

// VarKind distinguishes where a variable came from in the original method.
type VarKind uint8

const (
	// VarKindStackSlot represents a temporary introduced for an evaluation
	// stack slot. Stack slots are what peephole transforms fold away.
	VarKindStackSlot VarKind = iota
	// VarKindLocal represents a declared local variable.
	VarKindLocal
	// VarKindParameter represents a method parameter.
	VarKindParameter
)

// String returns a human-readable name for the variable kind.
func (k VarKind) String() string {
	switch k {
	case VarKindStackSlot:
		return "StackSlot"
	case VarKindLocal:
		return "Local"
	case VarKindParameter:
		return "Parameter"
	default:
		return "Unknown"
	}
}

// Variable is a variable referenced by load and store nodes. Two references
// denote the same variable exactly when they point at the same Variable;
// transforms compare identity, never names.
type Variable struct {
	Name string
	Kind VarKind
}

// NewVariable creates a variable with the given display name and kind.
func NewVariable(name string, kind VarKind) *Variable {
	return &Variable{Name: name, Kind: kind}
}

func (v *Variable) String() string {
	if v == nil {
		return "<nil>"
	}
	return v.Name
}
