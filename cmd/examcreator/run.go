package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	examcreator "github.com/seyaytua/math-exam-creator"
	"github.com/seyaytua/math-exam-creator/internal/config"
)

// Sentinel errors for CLI usage problems.
var (
	errNoProjectFile = errors.New("no project file given")
	errNoOutputPath  = errors.New("no output path given (use -o)")
	errUnknownFormat = errors.New("unknown output format")
)

// run executes the export described by flags and args.
func run(ctx context.Context, flags *cliFlags, args []string, log *zap.Logger) error {
	if flags.checkPDF {
		return runCheckPDF(os.Stdout)
	}

	if len(args) < 1 {
		printUsage(os.Stderr)
		return errNoProjectFile
	}
	if flags.output == "" {
		return errNoOutputPath
	}

	settings, err := loadSettings(flags.config, log)
	if err != nil {
		return err
	}

	project, err := examcreator.LoadProject(args[0])
	if err != nil {
		return err
	}
	log.Debug("loaded project",
		zap.String("path", args[0]),
		zap.String("title", project.Title),
		zap.Int("problems", len(project.Problems)))

	opts := buildOptions(settings, project, flags)

	format, err := resolveFormat(flags, opts)
	if err != nil {
		return err
	}
	log.Info("exporting",
		zap.String("format", format),
		zap.String("output", flags.output))

	switch format {
	case "html":
		exporter := examcreator.NewHTMLExporter()
		if err := exporter.Export(ctx, project, flags.output, opts); err != nil {
			return err
		}
	case "pdf":
		exporter := examcreator.NewPDFExporter()
		defer func() {
			if err := exporter.Close(); err != nil {
				log.Warn("closing PDF exporter", zap.Error(err))
			}
		}()
		if ok, backend := exporter.Available(); ok {
			log.Debug("using PDF backend", zap.String("backend", backend))
		}
		if err := exporter.Export(ctx, project, flags.output, opts); err != nil {
			return err
		}
	}

	log.Info("done", zap.String("output", flags.output))
	return nil
}

// runCheckPDF reports which PDF backend would be used.
func runCheckPDF(w *os.File) error {
	exporter := examcreator.NewPDFExporter()
	defer exporter.Close()

	if ok, backend := exporter.Available(); ok {
		fmt.Fprintf(w, "PDF export available (backend: %s)\n", backend)
		return nil
	}
	fmt.Fprintln(w, "PDF export unavailable: install Chrome/Chromium or wkhtmltopdf")
	return examcreator.ErrNoPDFBackend
}

// loadSettings loads the config file. An explicit --config path must
// exist; a missing default config silently falls back to defaults.
func loadSettings(path string, log *zap.Logger) (*config.Settings, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			log.Debug("no home directory, using default settings", zap.Error(err))
			return config.DefaultSettings(), nil
		}
		path = defaultPath
	}

	settings, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, config.ErrConfigNotFound) {
			log.Debug("no config file, using default settings", zap.String("path", path))
			return config.DefaultSettings(), nil
		}
		return nil, err
	}

	log.Debug("loaded config", zap.String("path", path))
	return settings, nil
}

// buildOptions layers export options: built-in defaults, config file,
// project cover fields, then explicit flag overrides.
func buildOptions(settings *config.Settings, project *examcreator.Project, flags *cliFlags) examcreator.Options {
	opts := examcreator.DefaultOptions()
	opts = opts.Merge(examcreator.Options(settings.ExportOptions()))
	opts = opts.Merge(examcreator.Options(project.CoverFields()))
	return opts.Merge(flagOverrides(flags))
}

// flagOverrides collects explicitly-set flags into an option overlay.
func flagOverrides(flags *cliFlags) examcreator.Options {
	overrides := examcreator.Options{}

	strFlags := map[string]struct {
		key   string
		value string
	}{
		"page-size":   {examcreator.OptPageSize, flags.pageSize},
		"margin":      {examcreator.OptMargin, flags.margin},
		"title":       {examcreator.OptExamTitle, flags.examTitle},
		"subtitle":    {examcreator.OptExamSubtitle, flags.examSubtitle},
		"subject":     {examcreator.OptSubject, flags.subject},
		"school":      {examcreator.OptSchoolName, flags.schoolName},
		"grade":       {examcreator.OptGrade, flags.grade},
		"date":        {examcreator.OptExamDate, flags.examDate},
		"time-limit":  {examcreator.OptTimeLimit, flags.timeLimit},
		"total-score": {examcreator.OptTotalScore, flags.totalScore},
		"notes":       {examcreator.OptNotes, flags.notes},
	}
	for name, f := range strFlags {
		if flags.changed(name) {
			overrides[f.key] = f.value
		}
	}

	if flags.changed("problems-per-page") {
		overrides[examcreator.OptProblemsPerPage] = strconv.Itoa(flags.problemsPerPage)
	}
	if flags.changed("font-size") {
		overrides[examcreator.OptFontSize] = strconv.Itoa(flags.fontSize)
	}
	if flags.changed("line-spacing") {
		overrides[examcreator.OptLineSpacing] = strconv.FormatFloat(flags.lineSpacing, 'g', -1, 64)
	}
	if flags.noCover {
		overrides[examcreator.OptShowCover] = "false"
	}
	if flags.noNumbers {
		overrides[examcreator.OptShowProblemNumbers] = "false"
	}
	if flags.answerSheet {
		overrides[examcreator.OptGenerateAnswerSheet] = "true"
	}

	return overrides
}

// resolveFormat picks the output format: explicit flag, then output file
// extension, then the configured default.
func resolveFormat(flags *cliFlags, opts examcreator.Options) (string, error) {
	format := flags.format
	if format == "" {
		switch strings.ToLower(filepath.Ext(flags.output)) {
		case ".html", ".htm":
			format = "html"
		case ".pdf":
			format = "pdf"
		default:
			format = opts.Str(examcreator.OptFormat, examcreator.DefaultFormat)
		}
	}

	switch format {
	case "html", "pdf":
		return format, nil
	}
	return "", fmt.Errorf("%w: %q (expected html or pdf)", errUnknownFormat, format)
}
