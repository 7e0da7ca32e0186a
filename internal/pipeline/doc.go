// Package pipeline implements the Markdown-to-HTML rendering pipeline for
// exam problem text.
//
// Rendering runs in three stages:
//   - math protection: fenced code blocks and TeX math spans are replaced with
//     opaque placeholder tokens so the markdown engine cannot alter them
//   - Markdown to HTML conversion via Goldmark
//   - math restoration: placeholders are substituted with MathJax-ready
//     wrappers, and the fragment is wrapped in a standalone preview document
//
// Document assembly (cover, pagination, answer sheet) and PDF generation are
// handled by the root package; this package is only concerned with turning a
// single problem's markdown into faithful HTML.
package pipeline
