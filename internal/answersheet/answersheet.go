// Package answersheet derives fill-in-the-blank answer sheets from exam
// problem text.
//
// Blank markers are single full-width katakana letters (ア..ン) or circled
// numerals (①..⑳). Extraction is a heuristic text scan with no awareness of
// markdown or math boundaries: a katakana letter in ordinary prose is picked
// up as a blank. Exam authors are expected to reserve these characters for
// blank labels.
package answersheet

import (
	"html"
	"regexp"
	"strings"

	"github.com/seyaytua/math-exam-creator/internal/assets"
	"github.com/seyaytua/math-exam-creator/internal/jpnum"
)

// Blank marker patterns, scanned in this priority order.
var (
	katakanaPattern = regexp.MustCompile(`[ア-ン]`)
	circledPattern  = regexp.MustCompile(`[①-⑳]`)
)

// pairsPerRow is the number of label/answer-field pairs per grid row.
const pairsPerRow = 4

// Problem is the slice of problem data the generator needs.
type Problem struct {
	Content string // raw markdown source, scanned for blank markers
	Score   string // free text, shown as （score点） when non-empty
}

// ExtractBlanks scans problem content for blank markers and returns them
// deduplicated, in first-occurrence order: all katakana markers in text
// order first, then all circled-numeral markers in text order.
func ExtractBlanks(content string) []string {
	var blanks []string
	seen := make(map[string]bool)

	for _, pattern := range []*regexp.Regexp{katakanaPattern, circledPattern} {
		for _, marker := range pattern.FindAllString(content, -1) {
			if !seen[marker] {
				blanks = append(blanks, marker)
				seen[marker] = true
			}
		}
	}

	return blanks
}

// Generate builds the answer-sheet HTML fragment for the given problems, in
// list order. Problems without blanks are skipped entirely. Returns a
// fragment even when no problem has blanks (title and student-info table
// only); callers that want to suppress the sheet check the options first.
func Generate(problems []Problem) string {
	var b strings.Builder

	b.WriteString(`<div class="answer-sheet-page">`)
	b.WriteString(`<h1 class="answer-sheet-title">解答用紙</h1>`)
	b.WriteString(`<div class="student-info-answer">`)
	b.WriteString(`<table class="info-table">`)
	b.WriteString(`<tr><td class="label">受験番号</td><td class="field-answer"></td></tr>`)
	b.WriteString(`<tr><td class="label">氏名</td><td class="field-answer"></td></tr>`)
	b.WriteString(`</table>`)
	b.WriteString(`</div>`)

	for i, problem := range problems {
		blanks := ExtractBlanks(problem.Content)
		if len(blanks) == 0 {
			continue
		}

		title := jpnum.ProblemLabel(i + 1)
		if problem.Score != "" {
			title += " （" + problem.Score + "点）"
		}

		b.WriteString(`<div class="answer-section">`)
		b.WriteString(`<h2 class="answer-problem-title">` + html.EscapeString(title) + `</h2>`)
		b.WriteString(`<table class="answer-table">`)

		for row := 0; row < len(blanks); row += pairsPerRow {
			b.WriteString(`<tr>`)
			for col := 0; col < pairsPerRow; col++ {
				if row+col < len(blanks) {
					b.WriteString(`<td class="blank-label">` + html.EscapeString(blanks[row+col]) + `</td>`)
					b.WriteString(`<td class="blank-field"></td>`)
				} else {
					// Pad the final row so every row has exactly four pairs.
					b.WriteString(`<td></td><td></td>`)
				}
			}
			b.WriteString(`</tr>`)
		}

		b.WriteString(`</table>`)
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}

// HasBlanks reports whether any problem in the list would contribute a
// section to the answer sheet.
func HasBlanks(problems []Problem) bool {
	for _, p := range problems {
		if len(ExtractBlanks(p.Content)) > 0 {
			return true
		}
	}
	return false
}

// Styles returns the CSS fragment for the answer-sheet section. Spliced
// into the exporter's document stylesheet only when a sheet was generated.
func Styles() string {
	return assets.MustStyle("answersheet")
}
