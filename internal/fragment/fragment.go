package fragment

import "strings"

// Fixed markdown fragments used by the assembler. All variety in the
// generated document comes from pool selection and counts, never from
// synthesizing new text, so every fragment here is always valid
// CommonMark.

// TemplateBlock is the hand-authored document prefix. It establishes
// Sections 1 and 2 and touches every markdown feature the downstream
// reader is benchmarked against: headings, inline formatting, links,
// strikethrough, fenced code, tables, blockquotes, task lists, and
// ordered lists with nesting.
var TemplateBlock = strings.Join([]string{
	"# Large Test Document - 50,000 Lines",
	"",
	"This document is generated for performance testing. It contains varied markdown content:",
	"headings, code blocks, tables, lists, blockquotes, and inline formatting.",
	"",
	"---",
	"",
	"## Section 1: Introduction",
	"",
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris.",
	"",
	"### Key Features",
	"",
	"- Feature one with **bold text** and *italic text*",
	"- Feature two with `inline code` examples",
	"- Feature three with [links](https://example.com)",
	"- Feature four with ~~strikethrough~~ text",
	"",
	"### Code Example",
	"",
	"```swift",
	"struct PerformanceTest {",
	"    let iterations: Int",
	"    var results: [Double] = []",
	"",
	"    mutating func run() {",
	"        for i in 0..<iterations {",
	"            let start = CFAbsoluteTimeGetCurrent()",
	"            // Simulate work",
	"            let _ = (0..<1000).reduce(0, +)",
	"            let elapsed = CFAbsoluteTimeGetCurrent() - start",
	"            results.append(elapsed)",
	"        }",
	"    }",
	"}",
	"```",
	"",
	"### Data Table",
	"",
	"| Metric | Value | Unit | Notes |",
	"|--------|-------|------|-------|",
	"| Scroll FPS | 60 | fps | Target |",
	"| Render Time | 500 | ms | Max allowed |",
	"| Memory | 100 | MB | View layer |",
	"",
	"> This is a blockquote that spans multiple lines.",
	"> It contains important information about the test.",
	"> Remember to measure before and after optimization.",
	"",
	"---",
	"",
	"## Section 2: Content Block",
	"",
	"Paragraph with various formatting: **bold**, *italic*, `code`, and [link](https://test.com).",
	"",
	"- [ ] Task item unchecked",
	"- [x] Task item checked",
	"- [ ] Another unchecked task",
	"",
	"1. Ordered item one",
	"2. Ordered item two",
	"3. Ordered item three",
	"   - Nested unordered",
	"   - Another nested",
	"",
	"```python",
	"def fibonacci(n):",
	"    if n <= 1:",
	"        return n",
	"    return fibonacci(n-1) + fibonacci(n-2)",
	"",
	"# Calculate first 10 fibonacci numbers",
	"for i in range(10):",
	"    print(f\"F({i}) = {fibonacci(i)}\")",
	"```",
	"",
	"### Subsection 2.1",
	"",
	"More content here with inline `code snippets` and **important notes**.",
	"",
	"| Column A | Column B | Column C |",
	"|----------|----------|----------|",
	"| Data 1   | Data 2   | Data 3   |",
	"| Data 4   | Data 5   | Data 6   |",
	"",
	"---",
	"",
}, "\n")

// CodeSamples are the fenced code blocks inserted into generated
// sections. The four languages match the grammars wired into the
// verifier.
var CodeSamples = []string{
	strings.Join([]string{
		"```javascript",
		"function processData(items) {",
		"    return items",
		"        .filter(item => item.active)",
		"        .map(item => ({",
		"            id: item.id,",
		"            name: item.name.toUpperCase(),",
		"            value: item.value * 2",
		"        }))",
		"        .sort((a, b) => a.value - b.value);",
		"}",
		"```",
	}, "\n"),
	strings.Join([]string{
		"```rust",
		"fn main() {",
		"    let numbers: Vec<i32> = (1..=100).collect();",
		"    let sum: i32 = numbers.iter().sum();",
		"    println!(\"Sum: {}\", sum);",
		"}",
		"```",
	}, "\n"),
	strings.Join([]string{
		"```go",
		"package main",
		"",
		"import \"fmt\"",
		"",
		"func main() {",
		"    ch := make(chan int, 10)",
		"    go func() {",
		"        for i := 0; i < 10; i++ {",
		"            ch <- i * i",
		"        }",
		"        close(ch)",
		"    }()",
		"    for v := range ch {",
		"        fmt.Println(v)",
		"    }",
		"}",
		"```",
	}, "\n"),
	strings.Join([]string{
		"```python",
		"class DataProcessor:",
		"    def __init__(self, data):",
		"        self.data = data",
		"",
		"    def transform(self):",
		"        return [x ** 2 for x in self.data if x > 0]",
		"",
		"    def aggregate(self):",
		"        return sum(self.transform())",
		"```",
	}, "\n"),
}

// TableSamples are the data tables inserted into generated sections.
// The first exercises per-column alignment markers.
var TableSamples = []string{
	strings.Join([]string{
		"| ID | Name | Status | Priority |",
		"|---:|:-----|:------:|----------|",
		"| 1 | Alpha | Active | High |",
		"| 2 | Beta | Pending | Medium |",
		"| 3 | Gamma | Done | Low |",
		"| 4 | Delta | Active | High |",
	}, "\n"),
	strings.Join([]string{
		"| Metric | Q1 | Q2 | Q3 | Q4 |",
		"|--------|----|----|----|----|",
		"| Revenue | 100 | 120 | 140 | 160 |",
		"| Costs | 80 | 85 | 90 | 95 |",
		"| Profit | 20 | 35 | 50 | 65 |",
	}, "\n"),
}

// BlockquoteLines is the fixed multi-line blockquote fragment.
var BlockquoteLines = []string{
	"> This is a blockquote with important information.",
	"> It spans multiple lines for testing purposes.",
}

// TaskList is the fixed three-item checklist fragment.
var TaskList = []string{
	"- [ ] Unchecked task item",
	"- [x] Checked task item",
	"- [ ] Another unchecked task",
}
