// internal/platform/ui/presenter.go
package ui

import (
	"time"
)

// UIMode selects how progress is shown.
type UIMode string

const (
	UIModeCompact UIMode = "compact" // progress bar and summary table (default)
	UIModeRaw     UIMode = "raw"     // one logfmt line per event
	UIModeQuiet   UIMode = "quiet"   // no output
)

// ParseUIMode returns the mode named s, defaulting to compact.
func ParseUIMode(s string) UIMode {
	switch UIMode(s) {
	case UIModeRaw, UIModeQuiet:
		return UIMode(s)
	default:
		return UIModeCompact
	}
}

// Presenter shows the progress of one chunk.
type Presenter interface {
	// Start announces the chunk
	Start(info RunInfo)

	// RecipeDone reports one finished recipe
	RecipeDone(update RecipeUpdate)

	// Info shows an informational message
	Info(msg string)

	// Warning shows a warning
	Warning(msg string)

	// Finish shows the final counts
	Finish(stats RunStats)

	// Close releases terminal resources
	Close() error
}

// New returns the presenter for mode.
func New(mode UIMode) Presenter {
	switch mode {
	case UIModeQuiet:
		return NewNoopPresenter()
	case UIModeRaw:
		return NewRawPresenter(LogFormatText)
	default:
		return NewPTermPresenter()
	}
}

// RunInfo describes the chunk at start.
type RunInfo struct {
	Chunk       int
	TotalChunks int
	Start       int
	End         int
	Total       int
	Recipes     int
	Missing     int
	Workers     int
	Timeout     time.Duration
	Version     string
}

// RecipeUpdate is sent as each recipe finishes.
type RecipeUpdate struct {
	Name   string
	Kind   string
	Status Status
	Done   int
	Total  int
}

// RunStats holds the final bucket counts.
type RunStats struct {
	Duration    time.Duration
	Processed   int
	Executable  int
	Rules       int
	Importable  int
	Ambiguous   int
	Errors      int
	Warnings    int
	MissingMeta int
	Files       []string
}
