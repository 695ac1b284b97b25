package assembler

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sectionHeadingRe = regexp.MustCompile(`(?m)^## Section (\d+): Generated Content Block$`)

func TestGenerateMeetsThreshold(t *testing.T) {
	doc := New(1).Generate(5000)
	assert.GreaterOrEqual(t, doc.LineCount(), 5000)
	assert.Greater(t, doc.Sections, 0)
}

func TestTemplateAloneSatisfiesSmallThreshold(t *testing.T) {
	// The template is ~100 lines, so a threshold of 50 is already met
	// before the loop runs.
	doc := New(1).Generate(50)
	assert.Equal(t, 0, doc.Sections)
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, KindTemplate, doc.Blocks[0].Kind)
	assert.Equal(t, KindFooter, doc.Blocks[1].Kind)
	assert.Contains(t, doc.Blocks[1].Text, "- **Generated Sections**: 0")
}

func TestSectionNumbersStartAtThreeAndIncrement(t *testing.T) {
	doc := New(7).Generate(3000)
	matches := sectionHeadingRe.FindAllStringSubmatch(doc.Render(), -1)
	require.Len(t, matches, doc.Sections)
	for i, m := range matches {
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		assert.Equal(t, i+3, n)
	}
}

func TestSeededGenerationIsByteIdentical(t *testing.T) {
	a := New(42).Generate(4000).Render()
	b := New(42).Generate(4000).Render()
	assert.Equal(t, a, b)
}

func TestUnseededRunsShareStructuralShape(t *testing.T) {
	a := New(0).Generate(1500)
	b := New(0).Generate(1500)
	for _, doc := range []*Document{a, b} {
		matches := sectionHeadingRe.FindAllStringSubmatch(doc.Render(), -1)
		require.NotEmpty(t, matches)
		for i, m := range matches {
			n, err := strconv.Atoi(m[1])
			require.NoError(t, err)
			assert.Equal(t, i+3, n)
		}
		assert.GreaterOrEqual(t, doc.LineCount(), 1500)
	}
}

func TestFooterStatisticsAreSelfConsistent(t *testing.T) {
	doc := New(3).Generate(2500)
	text := doc.Render()

	m := regexp.MustCompile(`\*\*Total Lines\*\*: (\d+)`).FindStringSubmatch(text)
	require.Len(t, m, 2)
	reported, err := strconv.Atoi(m[1])
	require.NoError(t, err)
	assert.Equal(t, doc.BodyLineCount(), reported)

	m = regexp.MustCompile(`\*\*Generated Sections\*\*: (\d+)`).FindStringSubmatch(text)
	require.Len(t, m, 2)
	sections, err := strconv.Atoi(m[1])
	require.NoError(t, err)
	assert.Equal(t, doc.Sections, sections)

	// Body lines plus the footer's own lines account for the full
	// document, with nothing double counted.
	footer := doc.Blocks[len(doc.Blocks)-1]
	require.Equal(t, KindFooter, footer.Kind)
	assert.Equal(t, doc.BodyLineCount()+lineCount(footer.Text), doc.LineCount())
}

func TestConditionalFragmentsFollowSectionNumber(t *testing.T) {
	a := New(11)

	s6 := a.buildSection(6)
	assert.Contains(t, s6, "### Code Example")
	assert.Contains(t, s6, "### Tasks")
	assert.NotContains(t, s6, "### Data Table")

	s12 := a.buildSection(12)
	assert.Contains(t, s12, "### Code Example")
	assert.Contains(t, s12, "### Data Table")
	assert.Contains(t, s12, "### Tasks")

	s5 := a.buildSection(5)
	assert.Contains(t, s5, "> This is a blockquote")
	assert.NotContains(t, s5, "### Code Example")

	s7 := a.buildSection(7)
	assert.NotContains(t, s7, "### Code Example")
	assert.NotContains(t, s7, "### Data Table")
	assert.NotContains(t, s7, "### Tasks")
	assert.NotContains(t, s7, "> This is a blockquote")
}

func TestSectionSkeleton(t *testing.T) {
	s := New(2).buildSection(7)
	assert.True(t, strings.HasPrefix(s, "## Section 7: Generated Content Block\n"))
	assert.Contains(t, s, "### List Items")
	assert.Contains(t, s, "[links](https://example.com/7)")
	assert.Contains(t, s, "#### Subsection 7.1")
	assert.True(t, strings.HasSuffix(s, "---\n"))
}
