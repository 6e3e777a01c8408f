// internal/platform/ui/helpers.go
package ui

import (
	"fmt"
	"time"
)

// formatDuration renders d for humans.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	} else {
		minutes := int(d.Minutes())
		seconds := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	}
}

// summaryRows lays out the final counts as table rows, header first.
func summaryRows(stats RunStats) [][]string {
	return [][]string{
		{"Bucket", "Count"},
		{"Processed", fmt.Sprintf("%d", stats.Processed)},
		{"Executable packages", fmt.Sprintf("%d", stats.Executable)},
		{"Rules", fmt.Sprintf("%d", stats.Rules)},
		{"Importable packages", fmt.Sprintf("%d", stats.Importable)},
		{"Unresolved packages", fmt.Sprintf("%d", stats.Ambiguous)},
		{"Errors", fmt.Sprintf("%d", stats.Errors)},
		{"Warnings", fmt.Sprintf("%d", stats.Warnings)},
		{"Missing meta.yaml", fmt.Sprintf("%d", stats.MissingMeta)},
	}
}
