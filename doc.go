// Package examcreator turns math exam projects into printable documents.
//
// A project is a list of markdown problems whose TeX math segments use
// $...$ and $$...$$ delimiters. The library renders each problem to HTML
// while keeping the math segments intact for MathJax, paginates the
// problems, optionally prepends a cover page and appends an answer sheet,
// and exports the assembled document as HTML or PDF.
//
// Basic usage:
//
//	project, err := examcreator.LoadProject("exam.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	exporter := examcreator.NewHTMLExporter()
//	opts := examcreator.DefaultOptions()
//	opts[examcreator.OptExamTitle] = "第1回 定期考査"
//
//	if err := exporter.Export(ctx, project, "exam.html", opts); err != nil {
//		log.Fatal(err)
//	}
//
// PDF export renders the same HTML through headless Chrome when available,
// falling back to the wkhtmltopdf command:
//
//	pdf := examcreator.NewPDFExporter()
//	defer pdf.Close()
//	err = pdf.Export(ctx, project, "exam.pdf", opts)
package examcreator
