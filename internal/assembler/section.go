package assembler

import (
	"fmt"
	"strings"

	"mdgen/internal/fragment"
)

// buildSection assembles one generated section. The skeleton is fixed
// (heading, paragraphs, list, closing subsection, separator); extra
// fragments are folded in when the section number divides by small
// constants, so code blocks, tables, blockquotes, and task lists recur
// at staggered intervals and co-occur on shared multiples.
func (a *Assembler) buildSection(num int) string {
	lines := make([]string, 0, 48)
	lines = append(lines, fmt.Sprintf("## Section %d: Generated Content Block", num), "")

	paragraphs := a.intBetween(2, 4)
	for p := 1; p <= paragraphs; p++ {
		lines = append(lines,
			fmt.Sprintf("Paragraph %d with **bold text**, *italic*, `inline code`, and [links](https://example.com/%d). This is filler content to test rendering performance with realistic markdown documents.", p, num),
			"")
	}

	lines = append(lines, "### List Items", "")
	items := a.intBetween(3, 6)
	for i := 1; i <= items; i++ {
		lines = append(lines, fmt.Sprintf("- Item %d with some content and `code`", i))
	}
	lines = append(lines, "")

	if num%3 == 0 {
		lines = append(lines, "### Code Example", "", a.pick(fragment.CodeSamples), "")
	}
	if num%4 == 0 {
		lines = append(lines, "### Data Table", "", a.pick(fragment.TableSamples), "")
	}
	if num%5 == 0 {
		lines = append(lines, fragment.BlockquoteLines...)
		lines = append(lines, "")
	}
	if num%6 == 0 {
		lines = append(lines, "### Tasks", "")
		lines = append(lines, fragment.TaskList...)
		lines = append(lines, "")
	}

	lines = append(lines,
		fmt.Sprintf("#### Subsection %d.1", num),
		"",
		fmt.Sprintf("Content for subsection %d.1 with more **formatting** and details.", num),
		"",
		"---",
		"")
	return strings.Join(lines, "\n")
}
