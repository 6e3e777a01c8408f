// internal/platform/ui/symbols.go
package ui

import "github.com/pterm/pterm"

// Status is the display state of a recipe.
type Status int

const (
	StatusSuccess Status = iota
	StatusWarning
	StatusError
	StatusSkipped
)

// StatusForKind maps an outcome kind to its display state.
func StatusForKind(kind string) Status {
	switch kind {
	case "executable", "importable":
		return StatusSuccess
	case "ambiguous":
		return StatusWarning
	case "error":
		return StatusError
	default:
		return StatusSkipped
	}
}

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Symbol returns the Unicode glyph for the status.
func (s Status) Symbol() string {
	switch s {
	case StatusSuccess:
		return "✓"
	case StatusWarning:
		return "⚠"
	case StatusError:
		return "✗"
	case StatusSkipped:
		return "⊘"
	default:
		return "?"
	}
}

// Color returns the pterm color for the status.
func (s Status) Color() pterm.Color {
	switch s {
	case StatusSuccess:
		return pterm.FgGreen
	case StatusWarning:
		return pterm.FgYellow
	case StatusError:
		return pterm.FgRed
	default:
		return pterm.FgGray
	}
}

// Style returns a pterm.Style for the status.
func (s Status) Style() *pterm.Style {
	return pterm.NewStyle(s.Color())
}

var (
	IconChunk   = "📦"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconError   = "✗"
	IconSuccess = "✓"
	IconTime    = "⏱"
	IconWorkers = "⚙️"
	IconFile    = "📄"
	IconRules   = "📜"
	IconMissing = "⊘"
)

var (
	SeparatorHeavy = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	SeparatorLight = "────────────────────────────────────────────"
)
