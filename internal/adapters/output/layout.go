// internal/adapters/output/layout.go
package output

import (
	"fmt"
	"path/filepath"

	"biorules/internal/core/ports"
)

// Layout holds the path of every document written for one chunk.
type Layout struct {
	Rules       string
	Importable  string
	Unresolved  string
	Issues      string
	Errors      string
	Warnings    string
	MissingMeta string
}

// NewLayout derives the document paths for opts. ext is the extension of
// the structured documents ("yml" or "json"); the plain lists are always
// ".txt".
func NewLayout(opts ports.ExportOptions, ext string) Layout {
	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = ports.DefaultExportOptions().Prefix
	}
	path := func(format string, args ...interface{}) string {
		return filepath.Join(dir, fmt.Sprintf(format, args...))
	}

	return Layout{
		Rules:       path("%s.rules.%d.%s", prefix, opts.Chunk, ext),
		Importable:  path("%s.importable.%d.%s", prefix, opts.Chunk, ext),
		Unresolved:  path("%s.unresolved.%d.%s", prefix, opts.Chunk, ext),
		Issues:      path("errors.%d.%s", opts.Chunk, ext),
		Errors:      path("errors.%d.txt", opts.Chunk),
		Warnings:    path("warnings.%d.txt", opts.Chunk),
		MissingMeta: path("missing_meta_yaml.%d.txt", opts.Chunk),
	}
}

// All returns the paths in write order.
func (l Layout) All() []string {
	return []string{l.MissingMeta, l.Rules, l.Importable, l.Unresolved, l.Issues, l.Errors, l.Warnings}
}
