package examcreator

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/seyaytua/math-exam-creator/internal/fileutil"
)

// defaultPageLoadTimeout bounds how long Chrome may take to load the
// document, including MathJax typesetting.
const defaultPageLoadTimeout = 60 * time.Second

// chromeBackend renders PDF through headless Chrome via go-rod. The
// browser is launched lazily on first render and reused afterwards.
type chromeBackend struct {
	browser *rod.Browser
	timeout time.Duration
}

func newChromeBackend() *chromeBackend {
	return &chromeBackend{timeout: defaultPageLoadTimeout}
}

func (b *chromeBackend) Name() string { return "chrome" }

// Available reports whether a usable browser binary can be found. Rod's
// own download path is not considered: a cold machine without Chrome
// should fall through to wkhtmltopdf rather than download a browser.
func (b *chromeBackend) Available() bool {
	if os.Getenv("ROD_BROWSER_BIN") != "" {
		return true
	}
	_, has := launcher.LookPath()
	return has
}

// ensureBrowser lazily launches and connects to the browser.
func (b *chromeBackend) ensureBrowser() error {
	if b.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	b.browser = browser
	return nil
}

// Render writes htmlContent to a temp file, prints it from headless
// Chrome, and writes the PDF to outputPath.
func (b *chromeBackend) Render(ctx context.Context, htmlContent, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := b.ensureBrowser(); err != nil {
		return err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return err
	}
	defer cleanup()

	page, err := b.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := b.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// The document carries its own @page geometry.
	reader, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	if err := os.WriteFile(outputPath, pdfBuf, 0o644); err != nil { // #nosec G306 -- exam documents are not sensitive
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// Close releases browser resources.
func (b *chromeBackend) Close() error {
	if b.browser != nil {
		err := b.browser.Close()
		b.browser = nil
		return err
	}
	return nil
}
