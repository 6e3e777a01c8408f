// internal/core/domain/report.go
package domain

import (
	"fmt"
	"time"
)

// ImportablePackage is one entry of the importable document.
type ImportablePackage struct {
	Name        string   `yaml:"name" json:"name"`
	Version     *string  `yaml:"version" json:"version"`
	TestImports []string `yaml:"test_imports" json:"test_imports"`
	RecipeDir   string   `yaml:"recipe_dir" json:"recipe_dir"`
}

// AmbiguousPackage is one entry of the unresolved document.
type AmbiguousPackage struct {
	Name               string   `yaml:"name" json:"name"`
	Version            *string  `yaml:"version" json:"version"`
	TestCommands       []string `yaml:"test_commands" json:"test_commands"`
	SuccessfulCommands []string `yaml:"successful_commands" json:"successful_commands"`
	RecipeDir          string   `yaml:"recipe_dir" json:"recipe_dir"`
}

// RunMetadata describes the batch a Report covers.
type RunMetadata struct {
	Chunk       int
	TotalChunks int
	Start       int
	End         int
	Total       int
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	Version     string
}

// Report aggregates the outcomes of a batch into the output buckets.
type Report struct {
	Rules       []DetectionRule
	Importable  []ImportablePackage
	Ambiguous   []AmbiguousPackage
	Issues      []Issue
	MissingMeta []string
	Metadata    RunMetadata

	executable int
	outcomes   int
}

// Counts summarises a Report.
type Counts struct {
	Processed   int
	Executable  int
	Rules       int
	Importable  int
	Ambiguous   int
	Errors      int
	Warnings    int
	MissingMeta int
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{
		Rules:       []DetectionRule{},
		Importable:  []ImportablePackage{},
		Ambiguous:   []AmbiguousPackage{},
		Issues:      []Issue{},
		MissingMeta: []string{},
		Metadata:    RunMetadata{StartTime: time.Now()},
	}
}

// Add folds one outcome into the buckets. Entries are appended, never
// rewritten.
func (r *Report) Add(o Outcome) {
	r.outcomes++
	switch o.Kind {
	case OutcomeExecutable:
		r.executable++
		r.Rules = append(r.Rules, o.Rules...)
	case OutcomeImportable:
		r.Importable = append(r.Importable, ImportablePackage{
			Name:        o.Package.Name,
			Version:     o.Package.Version,
			TestImports: o.Imports,
			RecipeDir:   o.Recipe,
		})
	case OutcomeAmbiguous:
		r.Ambiguous = append(r.Ambiguous, AmbiguousPackage{
			Name:               o.Package.Name,
			Version:            o.Package.Version,
			TestCommands:       o.TestCommands,
			SuccessfulCommands: o.SuccessfulCommands,
			RecipeDir:          o.Recipe,
		})
	}
	r.Issues = append(r.Issues, o.Issues...)
}

// AddMissing records a recipe directory without a metadata document.
func (r *Report) AddMissing(recipe string) {
	r.MissingMeta = append(r.MissingMeta, recipe)
}

// Finalize stamps the end time.
func (r *Report) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
}

// Errors returns the error-severity issues.
func (r *Report) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns the warning-severity issues.
func (r *Report) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r *Report) filter(s Severity) []Issue {
	out := []Issue{}
	for _, i := range r.Issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}

// Counts returns per-bucket totals.
func (r *Report) Counts() Counts {
	return Counts{
		Processed:   r.outcomes,
		Executable:  r.executable,
		Rules:       len(r.Rules),
		Importable:  len(r.Importable),
		Ambiguous:   len(r.Ambiguous),
		Errors:      len(r.Errors()),
		Warnings:    len(r.Warnings()),
		MissingMeta: len(r.MissingMeta),
	}
}

// Summary returns a one-line description of the report.
func (r *Report) Summary() string {
	c := r.Counts()
	return fmt.Sprintf(
		"Report{chunk=%d/%d, processed=%d, rules=%d, importable=%d, ambiguous=%d, errors=%d, warnings=%d, missing=%d}",
		r.Metadata.Chunk, r.Metadata.TotalChunks,
		c.Processed, c.Rules, c.Importable, c.Ambiguous, c.Errors, c.Warnings, c.MissingMeta,
	)
}
