package examcreator

import (
	"maps"
	"strconv"
)

// Option keys recognized by the exporters. Unknown keys are ignored, and
// missing or malformed values fall back to per-key defaults.
const (
	OptFormat              = "format"                // "html" or "pdf"
	OptPageSize            = "page_size"             // "A4", "B5", "Letter"
	OptProblemsPerPage     = "problems_per_page"     // 1 or 2
	OptFontSize            = "font_size"             // points
	OptLineSpacing         = "line_spacing"          // multiplier
	OptMargin              = "margin"                // CSS length
	OptShowCover           = "show_cover"            // bool
	OptShowProblemNumbers  = "show_problem_numbers"  // bool
	OptGenerateAnswerSheet = "generate_answer_sheet" // bool

	// Cover page fields.
	OptExamTitle    = "exam_title"
	OptExamSubtitle = "exam_subtitle"
	OptSubject      = "subject"
	OptSchoolName   = "school_name"
	OptGrade        = "grade"
	OptExamDate     = "exam_date"
	OptTimeLimit    = "time_limit"
	OptTotalScore   = "total_score"
	OptNotes        = "notes"
)

// Defaults applied when a key is absent or unparsable.
const (
	DefaultFormat          = "html"
	DefaultPageSize        = "A4"
	DefaultProblemsPerPage = 1
	DefaultFontSize        = 12
	DefaultLineSpacing     = 1.8
	DefaultMargin          = "20mm"
	DefaultSubject         = "数学"
)

// Options is a flat bag of export settings. Values are strings so the map
// round-trips through config files and CLI flags without type juggling;
// the typed getters parse on demand.
type Options map[string]string

// DefaultOptions returns an option map with every layout key set to its
// default. Cover fields are left unset so the cover template can omit them.
func DefaultOptions() Options {
	return Options{
		OptFormat:              DefaultFormat,
		OptPageSize:            DefaultPageSize,
		OptProblemsPerPage:     strconv.Itoa(DefaultProblemsPerPage),
		OptFontSize:            strconv.Itoa(DefaultFontSize),
		OptLineSpacing:         strconv.FormatFloat(DefaultLineSpacing, 'g', -1, 64),
		OptMargin:              DefaultMargin,
		OptShowCover:           "true",
		OptShowProblemNumbers:  "true",
		OptGenerateAnswerSheet: "false",
		OptSubject:             DefaultSubject,
	}
}

// Str returns the value for key, or fallback when absent or empty.
func (o Options) Str(key, fallback string) string {
	if v, ok := o[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Int returns the value for key parsed as int, or fallback when absent
// or unparsable.
func (o Options) Int(key string, fallback int) int {
	v, ok := o[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// Float returns the value for key parsed as float64, or fallback when
// absent or unparsable.
func (o Options) Float(key string, fallback float64) float64 {
	v, ok := o[key]
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// Bool returns the value for key parsed as bool, or fallback when absent
// or unparsable. Accepts the strconv.ParseBool forms ("true", "1", ...).
func (o Options) Bool(key string, fallback bool) bool {
	v, ok := o[key]
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// Merge overlays other onto a copy of o. Keys in other win; empty values
// in other are skipped so partial overlays do not erase settings.
func (o Options) Merge(other Options) Options {
	merged := o.Clone()
	for k, v := range other {
		if v == "" {
			continue
		}
		merged[k] = v
	}
	return merged
}

// Clone returns a shallow copy of o. A nil map clones to an empty one.
func (o Options) Clone() Options {
	clone := make(Options, len(o))
	maps.Copy(clone, o)
	return clone
}
