// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/pterm/pterm"
)

// PTermPresenter draws a header, a progress bar across the chunk's recipes
// and a summary table with pterm.
type PTermPresenter struct {
	mu sync.Mutex

	info      RunInfo
	startTime time.Time
	bar       *pterm.ProgressbarPrinter

	counts map[Status]int
}

// NewPTermPresenter creates a PTermPresenter.
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{counts: make(map[Status]int)}
}

// Start shows the chunk header and starts the progress bar.
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.info = info
	p.startTime = time.Now()

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("biorules - bioconda recipe ingestion")

	pterm.Println()

	box := pterm.DefaultBox.
		WithTitle(fmt.Sprintf("Chunk %d/%d", info.Chunk, info.TotalChunks)).
		WithTitleTopCenter().
		WithRightPadding(4).
		WithLeftPadding(4).
		WithBoxStyle(pterm.NewStyle(pterm.FgGreen))

	content := fmt.Sprintf("%s Directories: %s of %d\n", IconChunk, pterm.Cyan(fmt.Sprintf("%d-%d", info.Start, info.End)), info.Total)
	content += fmt.Sprintf("%s Recipes: %d\n", IconRules, info.Recipes)
	content += fmt.Sprintf("%s Missing meta.yaml: %d\n", IconMissing, info.Missing)
	content += fmt.Sprintf("%s Workers: %d\n", IconWorkers, info.Workers)
	content += fmt.Sprintf("%s Command timeout: %s", IconTime, info.Timeout)
	box.Println(content)

	pterm.Println()

	if info.Recipes > 0 {
		bar, err := pterm.DefaultProgressbar.
			WithTotal(info.Recipes).
			WithTitle("Probing recipes").
			Start()
		if err == nil {
			p.bar = bar
		}
	}
}

// RecipeDone advances the progress bar.
func (p *PTermPresenter) RecipeDone(u RecipeUpdate) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.counts[u.Status]++
	if p.bar == nil {
		return
	}
	p.bar.UpdateTitle(fmt.Sprintf("%s %s", u.Status.Style().Sprint(u.Status.Symbol()), u.Name))
	p.bar.Increment()
}

// Info shows an informational message.
func (p *PTermPresenter) Info(msg string) {
	pterm.Info.Println(msg)
}

// Warning shows a warning.
func (p *PTermPresenter) Warning(msg string) {
	pterm.Warning.Println(msg)
}

// Finish stops the bar and prints the summary table and written files.
func (p *PTermPresenter) Finish(stats RunStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopBar()

	pterm.Println()
	pterm.DefaultSection.Println("Summary")

	_ = pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(pterm.TableData(summaryRows(stats))).
		Render()

	pterm.Println()
	pterm.Printf("%s %s  %s %s  %s %s\n",
		StatusSuccess.Style().Sprint(IconSuccess), pterm.Green(fmt.Sprintf("%d resolved", stats.Executable+stats.Importable)),
		StatusWarning.Style().Sprint(IconWarning), pterm.Yellow(fmt.Sprintf("%d unresolved", stats.Ambiguous)),
		StatusError.Style().Sprint(IconError), pterm.Red(fmt.Sprintf("%d errors", stats.Errors)),
	)
	pterm.Printf("%s Duration: %s\n", IconTime, formatDuration(stats.Duration))

	if len(stats.Files) > 0 {
		pterm.Println()
		for _, f := range stats.Files {
			pterm.Printf("%s %s\n", IconFile, f)
		}
	}
	pterm.Println()
}

// Close stops the progress bar if it is still running.
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopBar()
	return nil
}

func (p *PTermPresenter) stopBar() {
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
}
