package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Math span kinds.
const (
	MathDisplay = "display"
	MathInline  = "inline"
)

// MathSpan is a protected TeX span extracted from problem text. Spans live
// only for the duration of one render call and are referenced positionally
// by the placeholder tokens embedded in the protected text.
type MathSpan struct {
	Kind string // MathDisplay or MathInline
	Body string // inner TeX, without delimiters
}

// Placeholder tokens use Unicode Private Use Area sentinels around a decimal
// index. These are guaranteed to not conflict with any standard characters
// and pass through Goldmark unchanged, so a markdown engine can never mangle
// a protected span or collide with author text.
const (
	mathTokenStart = ""
	mathTokenEnd   = ""
	codeTokenStart = ""
	codeTokenEnd   = ""
)

// Precompiled patterns. Order of application matters: fenced code first so
// dollar signs inside code examples are never mistaken for math, then display
// math, then inline math.
var (
	fencedCodePattern = regexp.MustCompile("(?s)```.*?```")

	// Non-greedy, may span multiple lines.
	displayMathPattern = regexp.MustCompile(`(?s)\$\$(.*?)\$\$`)

	// Single line, no inner dollar sign. Unterminated delimiters simply
	// fail to match and pass through as literal text.
	inlineMathPattern = regexp.MustCompile(`\$([^$\n]+?)\$`)
)

func mathToken(i int) string {
	return mathTokenStart + strconv.Itoa(i) + mathTokenEnd
}

func codeToken(i int) string {
	return codeTokenStart + strconv.Itoa(i) + codeTokenEnd
}

// ProtectMath replaces fenced code blocks and TeX math spans with opaque
// placeholder tokens so that markdown conversion cannot alter them.
//
// Fenced code blocks are tokenized first and restored verbatim before
// returning, so the math scan never sees their contents; only math
// placeholders remain in the returned text. The returned span list is
// ordered by placeholder index, and RestoreMath resolves each exactly once.
func ProtectMath(text string) (string, []MathSpan) {
	var spans []MathSpan
	var codeBlocks []string

	text = fencedCodePattern.ReplaceAllStringFunc(text, func(block string) string {
		codeBlocks = append(codeBlocks, block)
		return codeToken(len(codeBlocks) - 1)
	})

	text = displayMathPattern.ReplaceAllStringFunc(text, func(match string) string {
		body := displayMathPattern.FindStringSubmatch(match)[1]
		spans = append(spans, MathSpan{Kind: MathDisplay, Body: body})
		return mathToken(len(spans) - 1)
	})

	text = inlineMathPattern.ReplaceAllStringFunc(text, func(match string) string {
		body := inlineMathPattern.FindStringSubmatch(match)[1]
		spans = append(spans, MathSpan{Kind: MathInline, Body: body})
		return mathToken(len(spans) - 1)
	})

	// Restore code blocks after math extraction: their contents were opaque
	// tokens during the scans above, so math-like text inside them was
	// never recorded as a span.
	for i, block := range codeBlocks {
		text = strings.Replace(text, codeToken(i), block, 1)
	}

	return text, spans
}

// RestoreMath substitutes each placeholder token in converted HTML with a
// MathJax-ready wrapper: a centered block container for display math, an
// inline span for inline math. The wrappers keep the dollar-sign delimiters
// so the client-side typesetter picks them up; no glyph rendering happens
// here.
func RestoreMath(html string, spans []MathSpan) string {
	for i, span := range spans {
		var wrapper string
		if span.Kind == MathDisplay {
			wrapper = `<div class="math-display">$$` + "\n" + span.Body + "\n" + `$$</div>`
		} else {
			wrapper = `<span class="math-inline">$` + span.Body + `$</span>`
		}
		html = strings.Replace(html, mathToken(i), wrapper, 1)
	}
	return html
}
