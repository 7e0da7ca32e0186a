package examcreator

import (
	"context"
	"fmt"
	"html"
	"html/template"
	"os"
	"regexp"
	"strings"

	"github.com/seyaytua/math-exam-creator/internal/answersheet"
	"github.com/seyaytua/math-exam-creator/internal/assets"
	"github.com/seyaytua/math-exam-creator/internal/jpnum"
	"github.com/seyaytua/math-exam-creator/internal/pipeline"
)

// bodyPattern extracts the inner body of a rendered problem document so it
// can be embedded in the exam document.
var bodyPattern = regexp.MustCompile(`(?s)<body>(.*?)</body>`)

// coverData feeds the embedded cover template.
type coverData struct {
	Title      string
	Subtitle   string
	School     string
	Grade      string
	Subject    string
	Date       string
	TimeLimit  string
	TotalScore string
	Notes      string
}

// documentData feeds the embedded document shell template.
type documentData struct {
	Title       string
	MathJax     template.HTML
	CSS         template.CSS
	Cover       template.HTML
	Problems    template.HTML
	AnswerSheet template.HTML
}

// HTMLExporter assembles exam documents from a project: cover page,
// paginated problems, and an optional answer sheet.
type HTMLExporter struct {
	renderer *pipeline.Renderer
	cover    *template.Template
	document *template.Template
}

// NewHTMLExporter creates an exporter with the embedded templates and the
// default markdown renderer. Panics if the embedded templates fail to
// parse, which would mean a broken build.
func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{
		renderer: pipeline.NewRenderer(),
		cover:    template.Must(template.New("cover").Parse(assets.MustTemplate("cover"))),
		document: template.Must(template.New("document").Parse(assets.MustTemplate("document"))),
	}
}

// ExportHTML builds the complete exam document as a string. PDF export
// renders this same document.
func (e *HTMLExporter) ExportHTML(ctx context.Context, project *Project, opts Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	title := opts.Str(OptExamTitle, project.Title)
	if title == "" {
		title = "試験問題"
	}

	var cover string
	if opts.Bool(OptShowCover, true) {
		rendered, err := e.renderCover(title, opts)
		if err != nil {
			return "", err
		}
		cover = rendered
	}

	problems, err := e.renderProblems(ctx, project, opts)
	if err != nil {
		return "", err
	}

	var sheet string
	withSheet := opts.Bool(OptGenerateAnswerSheet, false)
	if withSheet {
		sheet = answersheet.Generate(sheetProblems(project))
	}

	css := buildDocumentCSS(opts) + assets.MustStyle("exam")
	if withSheet {
		css += answersheet.Styles()
	}

	var buf strings.Builder
	err = e.document.Execute(&buf, documentData{
		Title:       title,
		MathJax:     template.HTML(e.renderer.MathJaxBootstrap()), // #nosec G203 -- embedded asset
		CSS:         template.CSS(css),                            // #nosec G203 -- built from sanitized values
		Cover:       template.HTML(cover),                         // #nosec G203 -- template output
		Problems:    template.HTML(problems),                      // #nosec G203 -- renderer output
		AnswerSheet: template.HTML(sheet),                         // #nosec G203 -- generator output
	})
	if err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}

	return pipeline.NormalizeLineEndings(buf.String()), nil
}

// Export writes the assembled document to outputPath as UTF-8.
func (e *HTMLExporter) Export(ctx context.Context, project *Project, outputPath string, opts Options) error {
	doc, err := e.ExportHTML(ctx, project, opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(doc), 0o644); err != nil { // #nosec G306 -- exam documents are not sensitive
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// renderCover executes the cover template with fields from opts. Empty
// fields are omitted by the template; subject falls back to its default.
func (e *HTMLExporter) renderCover(title string, opts Options) (string, error) {
	data := coverData{
		Title:      title,
		Subtitle:   opts.Str(OptExamSubtitle, ""),
		School:     opts.Str(OptSchoolName, ""),
		Grade:      opts.Str(OptGrade, ""),
		Subject:    opts.Str(OptSubject, DefaultSubject),
		Date:       opts.Str(OptExamDate, ""),
		TimeLimit:  opts.Str(OptTimeLimit, ""),
		TotalScore: opts.Str(OptTotalScore, ""),
		Notes:      opts.Str(OptNotes, ""),
	}

	var buf strings.Builder
	if err := e.cover.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering cover: %w", err)
	}
	return buf.String(), nil
}

// renderProblems renders each problem and groups them into page
// containers of problems_per_page, with an explicit page break between
// containers but none after the last.
func (e *HTMLExporter) renderProblems(ctx context.Context, project *Project, opts Options) (string, error) {
	perPage := opts.Int(OptProblemsPerPage, DefaultProblemsPerPage)
	if perPage < 1 {
		perPage = 1
	}
	showNumbers := opts.Bool(OptShowProblemNumbers, true)

	var buf strings.Builder
	last := len(project.Problems) - 1

	for i, problem := range project.Problems {
		if i%perPage == 0 {
			buf.WriteString(`<div class="problem-page">` + "\n")
		}

		body, err := e.renderProblemBody(ctx, problem.Content)
		if err != nil {
			return "", fmt.Errorf("rendering problem %d: %w", i+1, err)
		}

		buf.WriteString(`<div class="problem-container">` + "\n")
		if showNumbers {
			buf.WriteString(problemHeader(i+1, &problem))
		}
		buf.WriteString(`<div class="problem-content">` + "\n")
		buf.WriteString(body)
		buf.WriteString("\n</div>\n</div>\n")

		if (i+1)%perPage == 0 || i == last {
			buf.WriteString("</div>\n")
			if i != last {
				buf.WriteString(`<div class="page-break"></div>` + "\n")
			}
		}
	}

	return buf.String(), nil
}

// renderProblemBody renders one problem's markdown and strips the
// standalone document wrapper the renderer adds for previewing.
func (e *HTMLExporter) renderProblemBody(ctx context.Context, content string) (string, error) {
	doc, err := e.renderer.Render(ctx, content)
	if err != nil {
		return "", err
	}

	if m := bodyPattern.FindStringSubmatch(doc); m != nil {
		return strings.TrimSpace(m[1]), nil
	}
	return doc, nil
}

// problemHeader builds the numbered header line for one problem.
func problemHeader(n int, problem *Problem) string {
	var buf strings.Builder
	buf.WriteString(`<div class="problem-header">`)
	buf.WriteString(`<span class="problem-number">` + jpnum.ProblemLabel(n) + `</span>`)
	buf.WriteString(`<span class="problem-type">（` + problem.Type().Label() + `）</span>`)
	if problem.Score != "" {
		buf.WriteString(`<span class="problem-score">（配点　` + html.EscapeString(problem.Score) + `）</span>`)
	}
	buf.WriteString("</div>\n")
	return buf.String()
}

// sheetProblems adapts project problems for the answer sheet generator.
func sheetProblems(project *Project) []answersheet.Problem {
	problems := make([]answersheet.Problem, len(project.Problems))
	for i, p := range project.Problems {
		problems[i] = answersheet.Problem{Content: p.Content, Score: p.Score}
	}
	return problems
}
