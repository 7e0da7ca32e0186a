package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	examcreator "github.com/seyaytua/math-exam-creator"
	"github.com/seyaytua/math-exam-creator/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitGeneral},
		{"no backend", examcreator.ErrNoPDFBackend, ExitPDF},
		{"pdf generation", examcreator.ErrPDFGeneration, ExitPDF},
		{"browser connect", examcreator.ErrBrowserConnect, ExitPDF},
		{"project read", examcreator.ErrProjectRead, ExitIO},
		{"write output", examcreator.ErrWriteOutput, ExitIO},
		{"not exist", os.ErrNotExist, ExitIO},
		{"project parse", examcreator.ErrProjectParse, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid setting", config.ErrInvalidSetting, ExitUsage},
		{"no project file", errNoProjectFile, ExitUsage},
		{"no output path", errNoOutputPath, ExitUsage},
		{"unknown format", errUnknownFormat, ExitUsage},
		{"wrapped project read", fmt.Errorf("context: %w", examcreator.ErrProjectRead), ExitIO},
		{"wrapped no backend", fmt.Errorf("context: %w", examcreator.ErrNoPDFBackend), ExitPDF},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
