package assembler

import (
	"fmt"
	"strings"
)

// purposeLine is the fixed purpose string reported in the footer.
const purposeLine = "Performance testing for VoidReader"

// footerBlock renders the trailing statistics block. totalLines is the
// line count of the document body preceding the footer; sections is the
// number of generated sections (template sections excluded).
func footerBlock(totalLines, sections int) string {
	return strings.Join([]string{
		"",
		"---",
		"",
		"## Document Statistics",
		"",
		fmt.Sprintf("- **Total Lines**: %d", totalLines),
		fmt.Sprintf("- **Generated Sections**: %d", sections),
		"- **Purpose**: " + purposeLine,
		"",
		"---",
		"",
		"*End of test document*",
		"",
	}, "\n")
}
