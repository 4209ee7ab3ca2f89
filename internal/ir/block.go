package ir

// Block is an ordered sequence of instructions executed top to bottom, one
// basic block of the control-flow graph. Block transforms mutate it in
// place; indices stay contiguous and removal preserves the relative order of
// untouched instructions.
type Block struct {
	baseNode
	instrs []Node
}

// NewBlock creates a block containing the given instructions.
func NewBlock(instrs ...Node) *Block {
	b := &Block{instrs: make([]Node, 0, len(instrs))}
	b.init(b)
	for _, inst := range instrs {
		b.instrs = append(b.instrs, attach(b, inst))
	}
	return b
}

// Len returns the number of instructions.
func (b *Block) Len() int { return len(b.instrs) }

// Instruction returns the instruction at index i.
func (b *Block) Instruction(i int) Node { return b.instrs[i] }

// Add appends an instruction to the block.
func (b *Block) Add(inst Node) {
	b.instrs = append(b.instrs, attach(b, inst))
	b.invalidateFlags()
}

// RemoveAt detaches and removes the instruction at index i, shifting later
// instructions down. Removing the last index is plain truncation, which is
// what backward-scanning transforms rely on.
func (b *Block) RemoveAt(i int) {
	b.instrs[i].base().parent = nil
	b.instrs = append(b.instrs[:i], b.instrs[i+1:]...)
	b.invalidateFlags()
}

func (b *Block) OpKind() Kind       { return KindBlock }
func (b *Block) DirectFlags() Flags { return FlagNone }
func (b *Block) ChildCount() int    { return len(b.instrs) }

func (b *Block) Child(i int) Node {
	if i < 0 || i >= len(b.instrs) {
		return badChild(b, i)
	}
	return b.instrs[i]
}

func (b *Block) ChildSlot(i int) *Slot {
	if i < 0 || i >= len(b.instrs) {
		badChild(b, i)
	}
	return InstructionSlot
}

func (b *Block) replaceChild(i int, c Node) {
	if i < 0 || i >= len(b.instrs) {
		badChild(b, i)
	}
	b.instrs[i] = c
}

func (b *Block) Clone() Node {
	instrs := make([]Node, 0, len(b.instrs))
	for _, inst := range b.instrs {
		instrs = append(instrs, inst.Clone())
	}
	c := NewBlock(instrs...)
	c.span = b.span
	return c
}

func (b *Block) WriteTo(w *Writer) {
	w.WriteString("{")
	w.FoldStart()
	w.Indent()
	for _, inst := range b.instrs {
		w.NewLine()
		inst.WriteTo(w)
	}
	w.Unindent()
	w.NewLine()
	w.FoldEnd()
	w.WriteString("}")
}
