package examcreator

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/seyaytua/math-exam-creator/internal/fileutil"
)

// commandRunner abstracts command execution to enable testing without
// real subprocesses.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// execRunner implements commandRunner using os/exec.
type execRunner struct{}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// wkhtmltopdfBackend renders PDF by invoking the wkhtmltopdf command.
// Used when no Chrome/Chromium binary is installed.
type wkhtmltopdfBackend struct {
	runner   commandRunner
	lookPath func(string) (string, error)
}

func newWkhtmltopdfBackend() *wkhtmltopdfBackend {
	return &wkhtmltopdfBackend{
		runner:   &execRunner{},
		lookPath: exec.LookPath,
	}
}

func (b *wkhtmltopdfBackend) Name() string { return "wkhtmltopdf" }

func (b *wkhtmltopdfBackend) Available() bool {
	_, err := b.lookPath("wkhtmltopdf")
	return err == nil
}

// Render writes htmlContent to a temp file and converts it with
// wkhtmltopdf. Local file access must be enabled for the file:// input.
func (b *wkhtmltopdfBackend) Render(ctx context.Context, htmlContent, outputPath string) error {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return err
	}
	defer cleanup()

	_, stderr, err := b.runner.Run(ctx, "wkhtmltopdf",
		"--enable-local-file-access",
		"--encoding", "utf-8",
		tmpPath, outputPath)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPDFGeneration, stderr, err)
	}
	return nil
}
