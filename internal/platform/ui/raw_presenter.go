// internal/platform/ui/raw_presenter.go
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// LogFormat is the line format of the raw presenter.
type LogFormat string

const (
	LogFormatText LogFormat = "text" // logfmt (default)
	LogFormatJSON LogFormat = "json" // one JSON object per line
)

// RawPresenter writes one line per event, for CI logs and pipes.
type RawPresenter struct {
	format    LogFormat
	out       io.Writer
	mu        sync.Mutex
	startTime time.Time
	now       func() time.Time
}

// NewRawPresenter creates a RawPresenter writing to stdout.
func NewRawPresenter(format LogFormat) *RawPresenter {
	return NewRawPresenterWithWriter(os.Stdout, format)
}

// NewRawPresenterWithWriter creates a RawPresenter writing to w.
func NewRawPresenterWithWriter(w io.Writer, format LogFormat) *RawPresenter {
	return &RawPresenter{
		format:    format,
		out:       w,
		startTime: time.Now(),
		now:       time.Now,
	}
}

// field is one key/value pair; order is preserved in the output.
type field struct {
	key   string
	value interface{}
}

func (r *RawPresenter) log(level, message string, fields ...field) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := r.now().UTC().Format(time.RFC3339)

	if r.format == LogFormatJSON {
		r.logJSON(timestamp, level, message, fields)
	} else {
		r.logText(timestamp, level, message, fields)
	}
}

// logText writes: timestamp LEVEL message key=value key2=value2
func (r *RawPresenter) logText(timestamp, level, message string, fields []field) {
	parts := []string{timestamp, fmt.Sprintf("%-5s", level), message}
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%s", f.key, r.formatValue(f.value)))
	}
	fmt.Fprintln(r.out, strings.Join(parts, " "))
}

func (r *RawPresenter) logJSON(timestamp, level, message string, fields []field) {
	entry := map[string]interface{}{
		"timestamp": timestamp,
		"level":     level,
		"message":   message,
	}
	if len(fields) > 0 {
		data := make(map[string]interface{}, len(fields))
		for _, f := range fields {
			if d, ok := f.value.(time.Duration); ok {
				data[f.key] = d.String()
				continue
			}
			data[f.key] = f.value
		}
		entry["data"] = data
	}

	jsonBytes, _ := json.Marshal(entry)
	fmt.Fprintln(r.out, string(jsonBytes))
}

// formatValue quotes strings containing spaces.
func (r *RawPresenter) formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		if strings.ContainsAny(val, " \t\"=") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case time.Duration:
		return val.String()
	case float64:
		return fmt.Sprintf("%.1f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Start logs the chunk bounds.
func (r *RawPresenter) Start(info RunInfo) {
	r.startTime = time.Now()
	r.log("INFO", "chunk_started",
		field{"chunk", info.Chunk},
		field{"total_chunks", info.TotalChunks},
		field{"start", info.Start},
		field{"end", info.End},
		field{"directories", info.Total},
		field{"recipes", info.Recipes},
		field{"missing", info.Missing},
		field{"workers", info.Workers},
		field{"timeout", info.Timeout},
	)
}

// RecipeDone logs one finished recipe.
func (r *RawPresenter) RecipeDone(u RecipeUpdate) {
	r.log("INFO", "recipe_done",
		field{"recipe", u.Name},
		field{"kind", u.Kind},
		field{"status", u.Status.String()},
		field{"done", u.Done},
		field{"total", u.Total},
	)
}

// Info logs an informational message.
func (r *RawPresenter) Info(msg string) {
	r.log("INFO", msg)
}

// Warning logs a warning.
func (r *RawPresenter) Warning(msg string) {
	r.log("WARN", msg)
}

// Finish logs the final counts.
func (r *RawPresenter) Finish(stats RunStats) {
	r.log("INFO", "chunk_completed",
		field{"duration", stats.Duration},
		field{"processed", stats.Processed},
		field{"executable", stats.Executable},
		field{"rules", stats.Rules},
		field{"importable", stats.Importable},
		field{"unresolved", stats.Ambiguous},
		field{"errors", stats.Errors},
		field{"warnings", stats.Warnings},
		field{"missing", stats.MissingMeta},
	)
	for _, f := range stats.Files {
		r.log("INFO", "file_written", field{"path", f})
	}
}

// Close is a no-op.
func (r *RawPresenter) Close() error {
	return nil
}
