package examcreator

import (
	"fmt"
	"strings"
)

// examFontFamily is the font stack for exported exam documents.
const examFontFamily = `"Hiragino Mincho ProN", "Yu Mincho", "MS Mincho", serif`

// buildDocumentCSS generates the parameterized part of the document
// stylesheet: page geometry and base typography. The static layout rules
// live in the embedded exam stylesheet.
func buildDocumentCSS(opts Options) string {
	pageSize := sanitizeCSSValue(opts.Str(OptPageSize, DefaultPageSize))
	margin := sanitizeCSSValue(opts.Str(OptMargin, DefaultMargin))
	fontSize := opts.Int(OptFontSize, DefaultFontSize)
	lineSpacing := opts.Float(OptLineSpacing, DefaultLineSpacing)

	var buf strings.Builder

	buf.WriteString(fmt.Sprintf(`
@page {
  size: %s;
  margin: %s;
}
`, pageSize, margin))

	buf.WriteString(fmt.Sprintf(`
body {
  font-family: %s;
  font-size: %dpt;
  line-height: %.2f;
  margin: 0;
  padding: %s;
}
`, examFontFamily, fontSize, lineSpacing, margin))

	buf.WriteString(`
@media print {
  body {
    padding: 0;
  }
  .page-break {
    page-break-after: always;
  }
}
`)

	return buf.String()
}

// sanitizeCSSValue strips characters that would let an option value break
// out of its CSS declaration.
func sanitizeCSSValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '{', '}', ';', '<', '>':
			return -1
		}
		return r
	}, s)
}
