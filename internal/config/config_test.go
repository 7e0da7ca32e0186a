package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	if s.Export.Format != "html" {
		t.Errorf("Format = %q, want html", s.Export.Format)
	}
	if s.Export.PageSize != "A4" {
		t.Errorf("PageSize = %q, want A4", s.Export.PageSize)
	}
	if s.Export.ProblemsPerPage != 1 {
		t.Errorf("ProblemsPerPage = %d, want 1", s.Export.ProblemsPerPage)
	}
	if s.Editor.DefaultSubject != "数学" {
		t.Errorf("DefaultSubject = %q, want 数学", s.Editor.DefaultSubject)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"valid defaults", func(s *Settings) {}, false},
		{"pdf format", func(s *Settings) { s.Export.Format = "pdf" }, false},
		{"unknown format", func(s *Settings) { s.Export.Format = "docx" }, true},
		{"three per page", func(s *Settings) { s.Export.ProblemsPerPage = 3 }, true},
		{"zero per page", func(s *Settings) { s.Export.ProblemsPerPage = 0 }, true},
		{"tiny font", func(s *Settings) { s.Export.FontSize = 4 }, true},
		{"cramped spacing", func(s *Settings) { s.Export.LineSpacing = 0.5 }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := DefaultSettings()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidSetting) {
				t.Errorf("Validate() = %v, want ErrInvalidSetting", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestExportOptions(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	s.Export.ProblemsPerPage = 2
	s.Export.GenerateAnswerSheet = true

	opts := s.ExportOptions()
	want := map[string]string{
		"format":                "html",
		"page_size":             "A4",
		"problems_per_page":     "2",
		"font_size":             "12",
		"line_spacing":          "1.8",
		"margin":                "20mm",
		"show_cover":            "true",
		"show_problem_numbers":  "true",
		"generate_answer_sheet": "true",
	}
	for k, v := range want {
		if got := opts[k]; got != v {
			t.Errorf("opts[%q] = %q, want %q", k, got, v)
		}
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	s := DefaultSettings()
	s.Export.Format = "pdf"
	s.Export.PageSize = "B5"
	s.Export.ProblemsPerPage = 2

	if err := Save(s, path); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if loaded.Export.Format != "pdf" {
		t.Errorf("Format = %q, want pdf", loaded.Export.Format)
	}
	if loaded.Export.PageSize != "B5" {
		t.Errorf("PageSize = %q, want B5", loaded.Export.PageSize)
	}
	if loaded.Export.ProblemsPerPage != 2 {
		t.Errorf("ProblemsPerPage = %d, want 2", loaded.Export.ProblemsPerPage)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Load() = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := "export:\n  format: pdf\n  pageSize: A4\n  problemsPerPage: 1\n  fontSize: 12\n  lineSpacing: 1.8\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if s.Export.Format != "pdf" {
		t.Errorf("Format = %q, want pdf", s.Export.Format)
	}
	if s.Editor.DefaultSubject != "数学" {
		t.Errorf("DefaultSubject = %q, want default 数学", s.Editor.DefaultSubject)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("export: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("Load() = %v, want ErrConfigParse", err)
	}
}
