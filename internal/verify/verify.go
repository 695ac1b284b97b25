package verify

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Result aggregates what the checker found in a generated document:
// feature counts from the parsed AST, the extracted fenced code
// samples, and any problems. An empty Problems slice means the
// document passed.
type Result struct {
	Headings    int
	CodeBlocks  int
	Tables      int
	Blockquotes int
	TaskItems   int
	Links       int
	ListItems   int

	Samples  []CodeSample
	Problems []string
}

// Ok reports whether the document passed every check.
func (r *Result) Ok() bool {
	return len(r.Problems) == 0
}

func (r *Result) problemf(format string, args ...any) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

// File runs Document against the contents of path.
func File(ctx context.Context, path string) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Document(ctx, source)
}

// Document checks a generated document: it parses the source with
// goldmark (GFM extensions enabled), counts the markdown features the
// downstream reader is benchmarked against, runs line-level structure
// checks, and parses every embedded code sample with a wired grammar.
func Document(ctx context.Context, source []byte) (*Result, error) {
	res := &Result{}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			res.Headings++
		case *ast.FencedCodeBlock:
			res.CodeBlocks++
			res.Samples = append(res.Samples, CodeSample{
				Language: string(node.Language(source)),
				Source:   fencedContent(node, source),
			})
		case *ast.Blockquote:
			res.Blockquotes++
		case *ast.Link:
			res.Links++
		case *ast.ListItem:
			res.ListItems++
		case *extast.Table:
			res.Tables++
		case *extast.TaskCheckBox:
			res.TaskItems++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	res.checkLines(string(source))
	res.checkFeatureSet()
	for _, s := range res.Samples {
		if err := parseSample(ctx, s); err != nil {
			res.problemf("code sample: %v", err)
		}
	}
	return res, nil
}

func fencedContent(node *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < node.Lines().Len(); i++ {
		seg := node.Lines().At(i)
		buf.Write(seg.Value(source))
	}
	return buf.String()
}

var tableSeparatorRe = regexp.MustCompile(`^\|(\s*:?-+:?\s*\|)+$`)

// checkLines runs structural checks the AST cannot express directly:
// fence pairing, table shape, and blockquote prefixes. Lines inside
// fenced regions are skipped.
func (r *Result) checkLines(source string) {
	lines := strings.Split(source, "\n")

	fences := 0
	inFence := false
	var table []string
	flushTable := func(start int) {
		defer func() { table = nil }()
		if len(table) == 0 {
			return
		}
		if len(table) < 3 {
			r.problemf("table at line %d has no data rows", start)
			return
		}
		if !tableSeparatorRe.MatchString(strings.TrimSpace(table[1])) {
			r.problemf("table at line %d is missing its separator row", start)
		}
	}

	tableStart := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			fences++
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if strings.HasPrefix(trimmed, "|") {
			if len(table) == 0 {
				tableStart = i + 1
			}
			table = append(table, trimmed)
			continue
		}
		flushTable(tableStart)
		if strings.HasPrefix(trimmed, ">") && trimmed != ">" && !strings.HasPrefix(trimmed, "> ") {
			r.problemf("blockquote line %d is missing a space after '>'", i+1)
		}
	}
	flushTable(tableStart)

	if fences%2 != 0 {
		r.problemf("unbalanced code fences: %d fence markers", fences)
	}
}

// checkFeatureSet verifies the document exercises every markdown
// feature the generator is contracted to produce. The template block
// alone satisfies all of these, so any generated document should pass.
func (r *Result) checkFeatureSet() {
	required := []struct {
		name  string
		count int
	}{
		{"headings", r.Headings},
		{"fenced code blocks", r.CodeBlocks},
		{"tables", r.Tables},
		{"blockquotes", r.Blockquotes},
		{"task items", r.TaskItems},
		{"links", r.Links},
		{"list items", r.ListItems},
	}
	for _, req := range required {
		if req.count == 0 {
			r.problemf("document contains no %s", req.name)
		}
	}
}
