package assembler

import (
	"math/rand"
	"time"

	"mdgen/internal/fragment"
)

const (
	// DefaultTargetLines is the line-count threshold that stops the
	// generation loop.
	DefaultTargetLines = 50000

	// DefaultOutputPath is where the generated document is written,
	// relative to the invocation directory.
	DefaultOutputPath = "TestDocuments/large-test-50k.md"

	// firstSectionNumber is where generated section numbering starts;
	// the template already defines sections 1 and 2.
	firstSectionNumber = 3
)

// Assembler builds synthetic markdown documents. Section structure is
// deterministic; content selection (paragraph counts, list lengths,
// pool picks) is drawn from the owned random source.
type Assembler struct {
	rng *rand.Rand
}

// New returns an assembler seeded with the given value. A zero seed
// falls back to the wall clock, so unseeded runs vary in content while
// keeping the same structural shape.
func New(seed int64) *Assembler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Assembler{rng: rand.New(rand.NewSource(seed))}
}

// Generate assembles a document whose rendered line count is at least
// targetLines. It seeds the document with the fixed template block,
// appends generated sections strictly sequentially until the running
// tally reaches the target, then appends the statistics footer. If the
// template alone meets the target, no sections are generated.
func (a *Assembler) Generate(targetLines int) *Document {
	doc := &Document{}
	doc.Blocks = append(doc.Blocks, Block{Kind: KindTemplate, Text: fragment.TemplateBlock})
	tally := lineCount(fragment.TemplateBlock)

	num := firstSectionNumber
	for tally < targetLines {
		text := a.buildSection(num)
		doc.Blocks = append(doc.Blocks, Block{Kind: KindSection, Text: text})
		tally += lineCount(text)
		num++
	}
	doc.Sections = num - firstSectionNumber

	// The footer reports the true line count of everything before it,
	// so it has to be computed after the loop settles.
	doc.Blocks = append(doc.Blocks, Block{
		Kind: KindFooter,
		Text: footerBlock(doc.BodyLineCount(), doc.Sections),
	})
	return doc
}

func (a *Assembler) pick(pool []string) string {
	return pool[a.rng.Intn(len(pool))]
}

// intBetween returns a uniform random value in [lo, hi].
func (a *Assembler) intBetween(lo, hi int) int {
	return lo + a.rng.Intn(hi-lo+1)
}
