package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all parsed command-line flags. The flag set is kept so
// run can distinguish "flag left at default" from "flag explicitly set".
type cliFlags struct {
	fs *flag.FlagSet

	output  string
	format  string
	config  string
	verbose bool
	version bool

	// Layout overrides.
	pageSize        string
	problemsPerPage int
	fontSize        int
	lineSpacing     float64
	margin          string
	noCover         bool
	noNumbers       bool
	answerSheet     bool

	// Cover field overrides.
	examTitle    string
	examSubtitle string
	subject      string
	schoolName   string
	grade        string
	examDate     string
	timeLimit    string
	totalScore   string
	notes        string

	checkPDF bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("examcreator", flag.ContinueOnError)
	f := &cliFlags{fs: fs}

	fs.StringVarP(&f.output, "output", "o", "", "output file path")
	fs.StringVarP(&f.format, "format", "f", "", "output format: html, pdf (default from output extension)")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.StringVar(&f.pageSize, "page-size", "", "page size: A4, B5, Letter")
	fs.IntVar(&f.problemsPerPage, "problems-per-page", 0, "problems per printed page (1 or 2)")
	fs.IntVar(&f.fontSize, "font-size", 0, "base font size in points")
	fs.Float64Var(&f.lineSpacing, "line-spacing", 0, "line height multiplier")
	fs.StringVar(&f.margin, "margin", "", "page margin as a CSS length, e.g. 20mm")
	fs.BoolVar(&f.noCover, "no-cover", false, "omit the cover page")
	fs.BoolVar(&f.noNumbers, "no-numbers", false, "omit problem number headers")
	fs.BoolVar(&f.answerSheet, "answer-sheet", false, "append a fill-in answer sheet")

	fs.StringVar(&f.examTitle, "title", "", "exam title (default: project title)")
	fs.StringVar(&f.examSubtitle, "subtitle", "", "exam subtitle")
	fs.StringVar(&f.subject, "subject", "", "subject shown on the cover")
	fs.StringVar(&f.schoolName, "school", "", "school name shown on the cover")
	fs.StringVar(&f.grade, "grade", "", "grade shown on the cover")
	fs.StringVar(&f.examDate, "date", "", "exam date shown on the cover")
	fs.StringVar(&f.timeLimit, "time-limit", "", "time limit shown on the cover")
	fs.StringVar(&f.totalScore, "total-score", "", "total score shown on the cover")
	fs.StringVar(&f.notes, "notes", "", "free-form notes shown on the cover")

	fs.BoolVar(&f.checkPDF, "check-pdf", false, "report PDF backend availability and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// changed reports whether the named flag was explicitly set.
func (f *cliFlags) changed(name string) bool {
	return f.fs.Changed(name)
}

// printUsage writes the usage message.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `examcreator - export math exam projects to HTML or PDF

Usage:
  examcreator [flags] project.json

Examples:
  examcreator -o exam.html project.json
  examcreator -o exam.pdf --answer-sheet project.json
  examcreator --check-pdf

Flags:
  -o, --output string         output file path (required unless --check-pdf)
  -f, --format string         html or pdf (default: from output extension)
  -c, --config string         config file path (default: ~/.examcreator/config.yaml)
      --page-size string      A4, B5, Letter
      --problems-per-page int 1 or 2 problems per printed page
      --font-size int         base font size in points
      --line-spacing float    line height multiplier
      --margin string         page margin, e.g. 20mm
      --no-cover              omit the cover page
      --no-numbers            omit problem number headers
      --answer-sheet          append a fill-in answer sheet
      --title string          exam title (default: project title)
      --subtitle string       exam subtitle
      --subject string        subject shown on the cover
      --school string         school name shown on the cover
      --grade string          grade shown on the cover
      --date string           exam date shown on the cover
      --time-limit string     time limit shown on the cover
      --total-score string    total score shown on the cover
      --notes string          free-form notes shown on the cover
      --check-pdf             report PDF backend availability and exit
  -v, --verbose               enable debug logging
      --version               print version and exit
`)
}
