package ir

import "strings"

// Fold is a collapsible region of rendered output, as byte offsets into the
// produced text. The external debug view uses folds to collapse bodies of
// blocks and switches.
type Fold struct {
	Start int
	End   int
}

// Writer renders instruction trees to indentation-aware text and records
// fold regions. Output is canonical: two trees render identically exactly
// when they are structurally identical up to provenance.
type Writer struct {
	sb          strings.Builder
	indent      int
	atLineStart bool
	folds       []Fold
	open        []int
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteString appends s to the output, emitting pending indentation first.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	if w.atLineStart {
		w.sb.WriteString(strings.Repeat("  ", w.indent))
		w.atLineStart = false
	}
	w.sb.WriteString(s)
}

// NewLine terminates the current line.
func (w *Writer) NewLine() {
	w.sb.WriteString("\n")
	w.atLineStart = true
}

// Indent increases the indentation of subsequent lines.
func (w *Writer) Indent() {
	w.indent++
}

// Unindent decreases the indentation of subsequent lines.
func (w *Writer) Unindent() {
	if w.indent > 0 {
		w.indent--
	}
}

// FoldStart opens a collapsible region at the current output position.
func (w *Writer) FoldStart() {
	w.open = append(w.open, w.sb.Len())
}

// FoldEnd closes the innermost open region. Unbalanced calls are ignored.
func (w *Writer) FoldEnd() {
	if len(w.open) == 0 {
		return
	}
	start := w.open[len(w.open)-1]
	w.open = w.open[:len(w.open)-1]
	w.folds = append(w.folds, Fold{Start: start, End: w.sb.Len()})
}

// Folds returns the recorded fold regions.
func (w *Writer) Folds() []Fold {
	return w.folds
}

// String returns the rendered text.
func (w *Writer) String() string {
	return w.sb.String()
}

// Render returns the canonical text of a single node.
func Render(n Node) string {
	w := NewWriter()
	n.WriteTo(w)
	return w.String()
}
