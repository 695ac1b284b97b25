package verify

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
)

// CodeSample is one fenced code block extracted from the document.
type CodeSample struct {
	Language string
	Source   string
}

// grammarFor maps a fence language tag to its tree-sitter grammar.
// Only the languages the section generator emits are wired; anything
// else (the template's swift block) is skipped.
func grammarFor(lang string) *sitter.Language {
	switch lang {
	case "go":
		return golang.GetLanguage()
	case "javascript":
		return javascript.GetLanguage()
	case "python":
		return python.GetLanguage()
	case "rust":
		return rust.GetLanguage()
	default:
		return nil
	}
}

// parseSample parses the sample with its language grammar and fails if
// the resulting tree contains syntax errors. A sample with no wired
// grammar passes.
func parseSample(ctx context.Context, s CodeSample) error {
	lang := grammarFor(s.Language)
	if lang == nil {
		return nil
	}
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(ctx, nil, []byte(s.Source))
	if err != nil {
		return fmt.Errorf("failed to parse %s sample: %w", s.Language, err)
	}
	defer tree.Close()
	if tree.RootNode().HasError() {
		return fmt.Errorf("%s sample has syntax errors", s.Language)
	}
	return nil
}
