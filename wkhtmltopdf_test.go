package examcreator

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner implements commandRunner for tests.
type fakeRunner struct {
	stdout string
	stderr string
	err    error

	lastName string
	lastArgs []string
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	r.lastName = name
	r.lastArgs = args
	return r.stdout, r.stderr, r.err
}

func TestWkhtmltopdfAvailable(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		b := &wkhtmltopdfBackend{
			runner:   &fakeRunner{},
			lookPath: func(string) (string, error) { return "/usr/bin/wkhtmltopdf", nil },
		}
		if !b.Available() {
			t.Error("Available() = false with binary on PATH")
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		b := &wkhtmltopdfBackend{
			runner:   &fakeRunner{},
			lookPath: func(string) (string, error) { return "", errors.New("not found") },
		}
		if b.Available() {
			t.Error("Available() = true with no binary")
		}
	})
}

func TestWkhtmltopdfRender(t *testing.T) {
	t.Parallel()

	t.Run("invokes command with local file access", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{}
		b := &wkhtmltopdfBackend{runner: runner, lookPath: nil}

		if err := b.Render(context.Background(), "<html></html>", "out.pdf"); err != nil {
			t.Fatalf("Render() unexpected error: %v", err)
		}
		if runner.lastName != "wkhtmltopdf" {
			t.Errorf("command = %q, want wkhtmltopdf", runner.lastName)
		}

		args := strings.Join(runner.lastArgs, " ")
		for _, want := range []string{"--enable-local-file-access", "--encoding utf-8", "out.pdf"} {
			if !strings.Contains(args, want) {
				t.Errorf("args %q missing %q", args, want)
			}
		}
		if !strings.HasSuffix(runner.lastArgs[len(runner.lastArgs)-2], ".html") {
			t.Errorf("input arg %q is not an html temp file", runner.lastArgs[len(runner.lastArgs)-2])
		}
	})

	t.Run("command failure wraps ErrPDFGeneration", func(t *testing.T) {
		t.Parallel()

		runner := &fakeRunner{stderr: "exit status 1", err: errors.New("boom")}
		b := &wkhtmltopdfBackend{runner: runner}

		err := b.Render(context.Background(), "<html></html>", "out.pdf")
		if !errors.Is(err, ErrPDFGeneration) {
			t.Errorf("error = %v, want ErrPDFGeneration", err)
		}
		if !strings.Contains(err.Error(), "exit status 1") {
			t.Errorf("error %q does not surface stderr", err)
		}
	})
}

func TestChromeBackendName(t *testing.T) {
	t.Parallel()

	if got := newChromeBackend().Name(); got != "chrome" {
		t.Errorf("Name() = %q, want chrome", got)
	}
	if got := newWkhtmltopdfBackend().Name(); got != "wkhtmltopdf" {
		t.Errorf("Name() = %q, want wkhtmltopdf", got)
	}
}
