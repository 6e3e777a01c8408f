// internal/core/ports/exporter.go
package ports

import "biorules/internal/core/domain"

// Exporter writes a batch report to its output documents.
type Exporter interface {
	// Name returns the exporter name (e.g. "yaml", "json")
	Name() string

	// Export writes every document of the report and returns their paths.
	// Any failure is fatal for the run.
	Export(report *domain.Report, opts ExportOptions) ([]string, error)
}

// ExportOptions locates the output documents.
type ExportOptions struct {
	// OutputDir is the directory the documents are written to
	OutputDir string

	// Prefix names the rules, importable and unresolved documents
	Prefix string

	// Chunk is appended to every file name
	Chunk int
}

// DefaultExportOptions writes bioconda.*.0 files into the working directory.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		OutputDir: ".",
		Prefix:    "bioconda",
		Chunk:     0,
	}
}
