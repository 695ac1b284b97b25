package assembler

import "strings"

// BlockKind tags the role of a block within the document.
type BlockKind int

const (
	KindTemplate BlockKind = iota
	KindSection
	KindFooter
)

// Block is an opaque text fragment. Blocks are never mutated after
// creation; a document is a flat ordered sequence of them.
type Block struct {
	Kind BlockKind
	Text string
}

// Document is the in-memory result of a single generation run. The
// rendered output is the blocks joined with newline separators; the
// footer, when present, is the last block.
type Document struct {
	Blocks   []Block
	Sections int
}

// Render concatenates all blocks into the final output text.
func (d *Document) Render() string {
	parts := make([]string, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		parts = append(parts, b.Text)
	}
	return strings.Join(parts, "\n")
}

// LineCount reports the newline-delimited line count of the rendered
// document, footer included.
func (d *Document) LineCount() int {
	return lineCount(d.Render())
}

// BodyLineCount reports the line count of everything preceding the
// footer block. This is the figure the footer itself reports.
func (d *Document) BodyLineCount() int {
	parts := make([]string, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		if b.Kind == KindFooter {
			continue
		}
		parts = append(parts, b.Text)
	}
	return lineCount(strings.Join(parts, "\n"))
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}
