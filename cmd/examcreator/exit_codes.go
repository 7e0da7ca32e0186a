package main

import (
	"errors"
	"os"

	examcreator "github.com/seyaytua/math-exam-creator"
	"github.com/seyaytua/math-exam-creator/internal/config"
)

// Exit codes for the examcreator CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful export
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or project data
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitPDF     = 4 // PDF backend/browser errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// PDF backend errors (exit 4)
	if errors.Is(err, examcreator.ErrNoPDFBackend) ||
		errors.Is(err, examcreator.ErrPDFGeneration) ||
		errors.Is(err, examcreator.ErrBrowserConnect) ||
		errors.Is(err, examcreator.ErrPageCreate) ||
		errors.Is(err, examcreator.ErrPageLoad) {
		return ExitPDF
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, examcreator.ErrProjectRead) ||
		errors.Is(err, examcreator.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/data errors (exit 2)
	if errors.Is(err, examcreator.ErrProjectParse) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidSetting) ||
		errors.Is(err, errNoProjectFile) ||
		errors.Is(err, errNoOutputPath) ||
		errors.Is(err, errUnknownFormat) {
		return ExitUsage
	}

	return ExitGeneral
}
