package examcreator

import (
	"context"
	"fmt"
)

// pdfBackend abstracts HTML to PDF rendering to allow different engines
// and fakes in tests.
type pdfBackend interface {
	// Name identifies the backend in logs and capability reports.
	Name() string
	// Available reports whether the backend can run on this machine.
	Available() bool
	// Render converts an HTML document string to a PDF file at outputPath.
	Render(ctx context.Context, htmlContent, outputPath string) error
}

// Compile-time interface checks
var (
	_ pdfBackend = (*chromeBackend)(nil)
	_ pdfBackend = (*wkhtmltopdfBackend)(nil)
)

// PDFExporter renders the exam document to PDF through the first
// available backend: headless Chrome, then the wkhtmltopdf command.
type PDFExporter struct {
	html     *HTMLExporter
	backends []pdfBackend
}

// NewPDFExporter creates a PDF exporter with the default backend chain.
func NewPDFExporter() *PDFExporter {
	return newPDFExporter(newChromeBackend(), newWkhtmltopdfBackend())
}

// newPDFExporter allows injecting fake backends in tests.
func newPDFExporter(backends ...pdfBackend) *PDFExporter {
	return &PDFExporter{
		html:     NewHTMLExporter(),
		backends: backends,
	}
}

// Available reports whether any backend can run, and which one would be
// used.
func (e *PDFExporter) Available() (bool, string) {
	for _, b := range e.backends {
		if b.Available() {
			return true, b.Name()
		}
	}
	return false, ""
}

// Export builds the exam document and renders it to a PDF file at
// outputPath. Returns ErrNoPDFBackend when no engine is installed.
func (e *PDFExporter) Export(ctx context.Context, project *Project, outputPath string, opts Options) error {
	backend := e.pick()
	if backend == nil {
		return fmt.Errorf("%w: install Chrome/Chromium or wkhtmltopdf", ErrNoPDFBackend)
	}

	doc, err := e.html.ExportHTML(ctx, project, opts)
	if err != nil {
		return err
	}

	return backend.Render(ctx, doc, outputPath)
}

// pick returns the first available backend, or nil.
func (e *PDFExporter) pick() pdfBackend {
	for _, b := range e.backends {
		if b.Available() {
			return b
		}
	}
	return nil
}

// Close releases backend resources such as the browser connection.
func (e *PDFExporter) Close() error {
	var firstErr error
	for _, b := range e.backends {
		if c, ok := b.(interface{ Close() error }); ok {
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
