package examcreator

import (
	"errors"

	"github.com/seyaytua/math-exam-creator/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrProjectRead  = errors.New("failed to read project file")
	ErrProjectParse = errors.New("failed to parse project file")
	ErrProjectWrite = errors.New("failed to write project file")
	ErrWriteOutput  = errors.New("failed to write output file")

	// PDF export errors.
	ErrNoPDFBackend   = errors.New("no PDF backend available")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)

// ErrHTMLConversion indicates markdown to HTML conversion failed.
// Re-exported so callers do not need to import internal packages.
var ErrHTMLConversion = pipeline.ErrHTMLConversion
