// Package config loads and persists user settings for exam export.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/seyaytua/math-exam-creator/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrConfigWrite    = errors.New("failed to write config")
	ErrInvalidSetting = errors.New("invalid setting value")
)

// Settings holds all persisted user configuration.
type Settings struct {
	Export ExportSettings `yaml:"export"`
	Editor EditorSettings `yaml:"editor"`
}

// ExportSettings defines default export options applied to every document
// unless overridden per-invocation.
type ExportSettings struct {
	Format              string  `yaml:"format"`              // "html" or "pdf"
	PageSize            string  `yaml:"pageSize"`            // "A4", "B5", "Letter"
	ProblemsPerPage     int     `yaml:"problemsPerPage"`     // 1 or 2
	FontSize            int     `yaml:"fontSize"`            // points
	LineSpacing         float64 `yaml:"lineSpacing"`         // multiplier
	Margin              string  `yaml:"margin"`              // CSS length, e.g. "20mm"
	ShowCover           bool    `yaml:"showCover"`
	ShowProblemNumbers  bool    `yaml:"showProblemNumbers"`
	GenerateAnswerSheet bool    `yaml:"generateAnswerSheet"`
}

// EditorSettings defines defaults used when creating new projects.
type EditorSettings struct {
	DefaultSubject string `yaml:"defaultSubject"`
	DefaultScore   string `yaml:"defaultScore"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Export: ExportSettings{
			Format:              "html",
			PageSize:            "A4",
			ProblemsPerPage:     1,
			FontSize:            12,
			LineSpacing:         1.8,
			Margin:              "20mm",
			ShowCover:           true,
			ShowProblemNumbers:  true,
			GenerateAnswerSheet: false,
		},
		Editor: EditorSettings{
			DefaultSubject: "数学",
			DefaultScore:   "",
		},
	}
}

// Validate checks settings for values the exporter cannot honor.
func (s *Settings) Validate() error {
	switch s.Export.Format {
	case "html", "pdf":
	default:
		return fmt.Errorf("%w: export.format %q (must be html or pdf)", ErrInvalidSetting, s.Export.Format)
	}
	if s.Export.ProblemsPerPage < 1 || s.Export.ProblemsPerPage > 2 {
		return fmt.Errorf("%w: export.problemsPerPage %d (must be 1 or 2)", ErrInvalidSetting, s.Export.ProblemsPerPage)
	}
	if s.Export.FontSize < 6 || s.Export.FontSize > 72 {
		return fmt.Errorf("%w: export.fontSize %d (must be between 6 and 72)", ErrInvalidSetting, s.Export.FontSize)
	}
	if s.Export.LineSpacing < 1.0 || s.Export.LineSpacing > 3.0 {
		return fmt.Errorf("%w: export.lineSpacing %.2f (must be between 1.0 and 3.0)", ErrInvalidSetting, s.Export.LineSpacing)
	}
	return nil
}

// ExportOptions flattens the export section into the string option map
// consumed by the exporter.
func (s *Settings) ExportOptions() map[string]string {
	return map[string]string{
		"format":                s.Export.Format,
		"page_size":             s.Export.PageSize,
		"problems_per_page":     strconv.Itoa(s.Export.ProblemsPerPage),
		"font_size":             strconv.Itoa(s.Export.FontSize),
		"line_spacing":          strconv.FormatFloat(s.Export.LineSpacing, 'g', -1, 64),
		"margin":                s.Export.Margin,
		"show_cover":            strconv.FormatBool(s.Export.ShowCover),
		"show_problem_numbers":  strconv.FormatBool(s.Export.ShowProblemNumbers),
		"generate_answer_sheet": strconv.FormatBool(s.Export.GenerateAnswerSheet),
	}
}

// Load reads settings from path. A missing file returns ErrConfigNotFound;
// callers typically fall back to DefaultSettings.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	settings := DefaultSettings()
	if err := yamlutil.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(settings *Settings, path string) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	data, err := yamlutil.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrConfigWrite, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- config is not sensitive
		return fmt.Errorf("%w: %v", ErrConfigWrite, err)
	}
	return nil
}

// DefaultPath returns the standard config location, ~/.examcreator/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".examcreator", "config.yaml"), nil
}
