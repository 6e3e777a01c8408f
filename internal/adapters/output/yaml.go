// internal/adapters/output/yaml.go
package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"biorules/internal/core/domain"
	"biorules/internal/core/ports"
)

// YAMLExporter writes the report as YAML documents.
type YAMLExporter struct{}

// NewYAMLExporter creates a YAMLExporter.
func NewYAMLExporter() *YAMLExporter {
	return &YAMLExporter{}
}

// Name implements ports.Exporter.
func (e *YAMLExporter) Name() string {
	return "yaml"
}

// Export implements ports.Exporter.
func (e *YAMLExporter) Export(report *domain.Report, opts ports.ExportOptions) ([]string, error) {
	return writeDocuments(report, NewLayout(opts, "yml"), encodeYAML)
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
