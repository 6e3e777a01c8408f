// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"io"

	"biorules/internal/core/domain"
	"biorules/internal/core/ports"
)

// JSONExporter writes the report as indented JSON documents.
type JSONExporter struct{}

// NewJSONExporter creates a JSONExporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Name implements ports.Exporter.
func (e *JSONExporter) Name() string {
	return "json"
}

// Export implements ports.Exporter.
func (e *JSONExporter) Export(report *domain.Report, opts ports.ExportOptions) ([]string, error) {
	return writeDocuments(report, NewLayout(opts, "json"), encodeJSON)
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
