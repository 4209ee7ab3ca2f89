package ir

// Kind enumerates instruction node kinds in the IL tree.
type Kind uint8

const (
	// KindNop represents a no-op instruction.
	KindNop Kind = iota
	// KindLdLoc represents a variable load.
	KindLdLoc
	// KindLdcI8 represents a 64-bit integer constant load.
	KindLdcI8
	// KindLdNull represents a null literal load.
	KindLdNull
	// KindStLoc represents a store to a variable.
	KindStLoc
	// KindComp represents a comparison.
	KindComp
	// KindCall represents a call to a named method.
	KindCall
	// KindThrow represents throwing an exception value.
	KindThrow
	// KindIfInstruction represents a conditional with two arms.
	KindIfInstruction
	// KindNullCoalescing represents "use left value unless null, else right".
	KindNullCoalescing
	// KindBlock represents an ordered sequence of instructions.
	KindBlock
	// KindSwitch represents range-based switch dispatch.
	KindSwitch
	// KindSwitchSection represents one labeled section of a switch.
	KindSwitchSection
)

// String returns a human-readable name for the node kind.
func (k Kind) String() string {
	switch k {
	case KindNop:
		return "Nop"
	case KindLdLoc:
		return "LdLoc"
	case KindLdcI8:
		return "LdcI8"
	case KindLdNull:
		return "LdNull"
	case KindStLoc:
		return "StLoc"
	case KindComp:
		return "Comp"
	case KindCall:
		return "Call"
	case KindThrow:
		return "Throw"
	case KindIfInstruction:
		return "IfInstruction"
	case KindNullCoalescing:
		return "NullCoalescing"
	case KindBlock:
		return "Block"
	case KindSwitch:
		return "Switch"
	case KindSwitchSection:
		return "SwitchSection"
	default:
		return "Unknown"
	}
}
