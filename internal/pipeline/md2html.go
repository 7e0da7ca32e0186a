package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/seyaytua/math-exam-creator/internal/assets"
)

// ErrHTMLConversion indicates markdown to HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// previewDocument wraps a rendered fragment in a standalone HTML5 document.
// The placeholders are, in order: MathJax bootstrap, preview CSS, fragment.
const previewDocument = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
%s
<style>
%s
</style>
</head>
<body>
%s
</body>
</html>`

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to an HTML fragment using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter configured for exam text:
// GFM tables, definition lists, footnotes, newline-as-break, and syntax
// highlighting for fenced code.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,            // Tables, strikethrough, autolinks, task lists
			extension.DefinitionList, // PHP-extra style definition lists
			extension.Footnote,       // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Compile-time interface check.
var _ HTMLConverter = (*GoldmarkConverter)(nil)

// Renderer turns one problem's markdown/TeX source into a standalone HTML
// document with math protected from the markdown engine. Renderers are
// stateless across calls; math-span bookkeeping is per-call scratch state,
// so identical input always produces identical output.
type Renderer struct {
	converter HTMLConverter
	mathjax   string
	css       string
}

// NewRenderer creates a Renderer with embedded preview assets.
// Panics if embedded assets are missing (programmer error).
func NewRenderer() *Renderer {
	return &Renderer{
		converter: NewGoldmarkConverter(),
		mathjax:   assets.MustScript("mathjax"),
		css:       assets.MustStyle("preview"),
	}
}

// MathJaxBootstrap returns the MathJax script block the renderer embeds.
// The exporter reuses it so exported documents typeset math with the exact
// delimiter configuration the protection step assumes.
func (r *Renderer) MathJaxBootstrap() string {
	return r.mathjax
}

// Render converts problem markdown to a complete HTML document:
// protect math, convert markdown, restore math, wrap with preview CSS and
// the MathJax bootstrap.
func (r *Renderer) Render(ctx context.Context, content string) (string, error) {
	content = NormalizeLineEndings(content)

	protected, spans := ProtectMath(content)

	fragment, err := r.converter.ToHTML(ctx, protected)
	if err != nil {
		return "", err
	}

	fragment = RestoreMath(fragment, spans)

	return fmt.Sprintf(previewDocument, r.mathjax, r.css, fragment), nil
}
