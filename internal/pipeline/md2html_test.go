package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "LF unchanged", input: "a\nb", expected: "a\nb"},
		{name: "CRLF to LF", input: "a\r\nb", expected: "a\nb"},
		{name: "CR to LF", input: "a\rb", expected: "a\nb"},
		{name: "mixed", input: "a\r\nb\rc\nd", expected: "a\nb\nc\nd"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := NormalizeLineEndings(tt.input)
			if got != tt.expected {
				t.Errorf("NormalizeLineEndings(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGoldmarkConverterToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()
	ctx := context.Background()

	tests := []struct {
		name   string
		input  string
		wantIn []string
	}{
		{
			name:   "heading",
			input:  "# 大問",
			wantIn: []string{"<h1", "大問"},
		},
		{
			name:   "gfm table",
			input:  "| x | y |\n|---|---|\n| 1 | 2 |",
			wantIn: []string{"<table>", "<td>1</td>"},
		},
		{
			name:   "hard wrap",
			input:  "一行目\n二行目",
			wantIn: []string{"<br"},
		},
		{
			name:   "fenced code",
			input:  "```\nx = 1\n```",
			wantIn: []string{"<pre"},
		},
		{
			name:   "definition list",
			input:  "用語\n: 定義",
			wantIn: []string{"<dl>", "<dd>"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(ctx, tt.input)
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}
			for _, want := range tt.wantIn {
				if !strings.Contains(got, want) {
					t.Errorf("ToHTML(%q) = %q, missing %q", tt.input, got, want)
				}
			}
		})
	}
}

func TestGoldmarkConverterCancelledContext(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conv.ToHTML(ctx, "# test")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}

func TestRendererRender(t *testing.T) {
	t.Parallel()

	r := NewRenderer()
	ctx := context.Background()

	t.Run("math spans and code blocks all resolved", func(t *testing.T) {
		t.Parallel()

		input := "次の方程式を解け。\n\n$$x^2+2x+1=0$$\n\nただし $x>0$ とする。\n\n```\nf(x) = x**2\n```"
		doc, err := r.Render(ctx, input)
		if err != nil {
			t.Fatalf("Render() unexpected error: %v", err)
		}

		if !strings.Contains(doc, `<div class="math-display">$$`+"\nx^2+2x+1=0\n"+`$$</div>`) {
			t.Error("display math wrapper missing")
		}
		if !strings.Contains(doc, `<span class="math-inline">$x&gt;0$</span>`) &&
			!strings.Contains(doc, `<span class="math-inline">$x>0$</span>`) {
			t.Error("inline math wrapper missing")
		}
		if !strings.Contains(doc, "f(x)") {
			t.Error("code block content missing")
		}
		if strings.Contains(doc, mathTokenStart) || strings.Contains(doc, codeTokenStart) {
			t.Errorf("document leaks placeholder tokens")
		}
	})

	t.Run("standalone document shell", func(t *testing.T) {
		t.Parallel()

		doc, err := r.Render(ctx, "本文")
		if err != nil {
			t.Fatalf("Render() unexpected error: %v", err)
		}

		for _, want := range []string{
			"<!DOCTYPE html>",
			"<body>",
			"</body>",
			"MathJax-script",
			"inlineMath",
			"serif",
		} {
			if !strings.Contains(doc, want) {
				t.Errorf("document missing %q", want)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		input := "式 $a$ と $$b$$ を含む問題"
		first, err := r.Render(ctx, input)
		if err != nil {
			t.Fatalf("Render() unexpected error: %v", err)
		}
		second, err := r.Render(ctx, input)
		if err != nil {
			t.Fatalf("Render() unexpected error: %v", err)
		}
		if first != second {
			t.Error("Render() output differs between identical calls")
		}
	})

	t.Run("currency dollars survive as text", func(t *testing.T) {
		t.Parallel()

		doc, err := r.Render(ctx, "価格は $100 です。")
		if err != nil {
			t.Fatalf("Render() unexpected error: %v", err)
		}
		if !strings.Contains(doc, "$100") {
			t.Error("unterminated dollar text was altered")
		}
		if strings.Contains(doc, "math-inline") {
			t.Error("unterminated dollar was treated as math")
		}
	})
}

// failingConverter always errors, for surfacing conversion failures.
type failingConverter struct{}

func (f *failingConverter) ToHTML(context.Context, string) (string, error) {
	return "", ErrHTMLConversion
}

func TestRendererSurfacesConversionError(t *testing.T) {
	t.Parallel()

	r := &Renderer{converter: &failingConverter{}}
	_, err := r.Render(context.Background(), "x")
	if !errors.Is(err, ErrHTMLConversion) {
		t.Errorf("Render() error = %v, want ErrHTMLConversion", err)
	}
}
