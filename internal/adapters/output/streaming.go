// internal/adapters/output/streaming.go
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"biorules/internal/core/domain"
	"biorules/internal/platform/errors"
	"biorules/internal/platform/logx"
)

// StreamingWriter appends one JSON line per finished recipe, so progress of
// a long chunk survives an interrupted run.
// Format: <prefix>.outcomes.<chunk>.jsonl
type StreamingWriter struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	enc    *json.Encoder
	count  int
	logger logx.Logger
}

// OutcomeRecord is one line of the stream.
type OutcomeRecord struct {
	Recipe    string                 `json:"recipe_dir"`
	Kind      domain.OutcomeKind     `json:"kind"`
	Name      string                 `json:"name,omitempty"`
	Version   *string                `json:"version,omitempty"`
	Rules     []domain.DetectionRule `json:"rules,omitempty"`
	Imports   []string               `json:"test_imports,omitempty"`
	Commands  []string               `json:"test_commands,omitempty"`
	Passed    []string               `json:"successful_commands,omitempty"`
	Issues    []domain.Issue         `json:"issues,omitempty"`
	WrittenAt time.Time              `json:"written_at"`
}

// NewStreamingWriter creates (truncating) the stream file in dir.
func NewStreamingWriter(dir, prefix string, chunk int, logger logx.Logger) (*StreamingWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating output directory")
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.outcomes.%d.jsonl", prefix, chunk))
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", path)
	}
	if logger == nil {
		logger = logx.New()
	}
	return &StreamingWriter{
		path:   path,
		file:   f,
		enc:    json.NewEncoder(f),
		logger: logger.With("component", "streaming-writer"),
	}, nil
}

// WriteOutcome appends o to the stream. Safe for concurrent use.
func (w *StreamingWriter) WriteOutcome(o domain.Outcome) error {
	rec := OutcomeRecord{
		Recipe:    o.Recipe,
		Kind:      o.Kind,
		Name:      o.Package.Name,
		Version:   o.Package.Version,
		Rules:     o.Rules,
		Imports:   o.Imports,
		Commands:  o.TestCommands,
		Passed:    o.SuccessfulCommands,
		Issues:    o.Issues,
		WrittenAt: time.Now().UTC(),
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return errors.Errorf("stream %s is closed", w.path)
	}
	if err := w.enc.Encode(rec); err != nil {
		return errors.Wrapf(err, "writing %s", w.path)
	}
	w.count++
	w.logger.Debug("outcome streamed", "recipe", o.Recipe, "kind", string(o.Kind))
	return nil
}

// Path returns the stream file path.
func (w *StreamingWriter) Path() string {
	return w.path
}

// Count returns the number of records written.
func (w *StreamingWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close flushes and closes the stream file.
func (w *StreamingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
