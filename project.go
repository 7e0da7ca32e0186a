package examcreator

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ProjectVersion is the project file format version this package writes.
const ProjectVersion = "1.0"

// ProblemType distinguishes required from optional problems. The header
// annotation on an exported document depends on it.
type ProblemType string

const (
	ProblemRequired ProblemType = "required"
	ProblemOptional ProblemType = "optional"
)

// ParseProblemType maps a stored string to a ProblemType. Anything other
// than "optional" is treated as required.
func ParseProblemType(s string) ProblemType {
	if s == string(ProblemOptional) {
		return ProblemOptional
	}
	return ProblemRequired
}

// Label returns the Japanese header annotation for the problem type.
func (t ProblemType) Label() string {
	if t == ProblemOptional {
		return "選択問題"
	}
	return "必答問題"
}

// Problem is a single exam problem authored in markdown with $ / $$ math.
type Problem struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Score       string `json:"score"`
	ProblemType string `json:"problem_type"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Type returns the parsed problem type.
func (p *Problem) Type() ProblemType {
	return ParseProblemType(p.ProblemType)
}

// Project is a saved exam: ordered problems plus cover metadata.
// CoverContent holds the cover fields as a JSON object; use CoverFields
// to decode it.
type Project struct {
	Version      string    `json:"version"`
	Title        string    `json:"title"`
	CoverContent string    `json:"cover_content"`
	Problems     []Problem `json:"problems"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`

	// FilePath is where the project was loaded from or last saved to.
	// Not part of the file format.
	FilePath string `json:"-"`
}

// NewProject creates an empty project with the given title.
func NewProject(title string) *Project {
	now := timestamp()
	return &Project{
		Version:   ProjectVersion,
		Title:     title,
		Problems:  []Problem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddProblem appends a problem, stamping its timestamps and touching the
// project's UpdatedAt.
func (p *Project) AddProblem(problem Problem) {
	now := timestamp()
	if problem.CreatedAt == "" {
		problem.CreatedAt = now
	}
	problem.UpdatedAt = now
	if problem.ProblemType == "" {
		problem.ProblemType = string(ProblemRequired)
	}
	p.Problems = append(p.Problems, problem)
	p.UpdatedAt = now
}

// RemoveProblem deletes the problem at index. Out-of-range indices are
// ignored.
func (p *Project) RemoveProblem(index int) {
	if index < 0 || index >= len(p.Problems) {
		return
	}
	p.Problems = append(p.Problems[:index], p.Problems[index+1:]...)
	p.UpdatedAt = timestamp()
}

// CoverFields decodes CoverContent into a string map. Empty or invalid
// content yields an empty map so a half-filled project still exports.
func (p *Project) CoverFields() map[string]string {
	fields := map[string]string{}
	if p.CoverContent == "" {
		return fields
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(p.CoverContent), &raw); err != nil {
		return fields
	}
	for k, v := range raw {
		if s, ok := v.(string); ok {
			fields[k] = s
		}
	}
	return fields
}

// LoadProject reads and parses a project file.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- project path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProjectRead, err)
	}

	var project Project
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProjectParse, err)
	}

	project.FilePath = path
	return &project, nil
}

// Save writes the project to path as indented JSON and records the path
// in FilePath.
func (p *Project) Save(path string) error {
	p.UpdatedAt = timestamp()
	if p.Version == "" {
		p.Version = ProjectVersion
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProjectWrite, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- exam projects are not sensitive
		return fmt.Errorf("%w: %v", ErrProjectWrite, err)
	}

	p.FilePath = path
	return nil
}

// timestamp returns the current local time in the project file's format.
func timestamp() string {
	return time.Now().Format("2006-01-02T15:04:05")
}
