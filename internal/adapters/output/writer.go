// internal/adapters/output/writer.go
package output

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"biorules/internal/core/domain"
	"biorules/internal/core/ports"
	"biorules/internal/platform/errors"
)

// encodeFunc serialises v to w.
type encodeFunc func(w io.Writer, v interface{}) error

// rulesDocument is the top-level shape of the rules file.
type rulesDocument struct {
	Rules []domain.DetectionRule `yaml:"rules" json:"rules"`
}

// writeDocuments writes every document of report into layout using encode
// for the structured ones.
func writeDocuments(report *domain.Report, layout Layout, encode encodeFunc) ([]string, error) {
	if err := os.MkdirAll(filepath.Dir(layout.Rules), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating output directory")
	}

	steps := []struct {
		path  string
		write func(io.Writer) error
	}{
		{layout.MissingMeta, lines(report.MissingMeta)},
		{layout.Rules, value(encode, rulesDocument{Rules: report.Rules})},
		{layout.Importable, value(encode, report.Importable)},
		{layout.Unresolved, value(encode, report.Ambiguous)},
		{layout.Issues, value(encode, report.Issues)},
		{layout.Errors, lines(messages(report.Errors()))},
		{layout.Warnings, lines(messages(report.Warnings()))},
	}

	written := make([]string, 0, len(steps))
	for _, s := range steps {
		if err := writeFile(s.path, s.write); err != nil {
			return written, err
		}
		written = append(written, s.path)
	}
	return written, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

func value(encode encodeFunc, v interface{}) func(io.Writer) error {
	return func(w io.Writer) error { return encode(w, v) }
}

// lines writes one entry per line, without a trailing newline.
func lines(entries []string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, strings.Join(entries, "\n"))
		return err
	}
}

func messages(issues []domain.Issue) []string {
	out := make([]string, len(issues))
	for i, is := range issues {
		out[i] = is.Message
	}
	return out
}

// New returns the exporter registered for format.
func New(format string) (ports.Exporter, error) {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		return NewYAMLExporter(), nil
	case "json":
		return NewJSONExporter(), nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown output format %q", format)
	}
}
