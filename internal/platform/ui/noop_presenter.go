// internal/platform/ui/noop_presenter.go
package ui

// NoopPresenter produces no output. Used in quiet mode.
type NoopPresenter struct{}

// NewNoopPresenter creates a NoopPresenter.
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

func (n *NoopPresenter) Start(info RunInfo)             {}
func (n *NoopPresenter) RecipeDone(update RecipeUpdate) {}
func (n *NoopPresenter) Info(msg string)                {}
func (n *NoopPresenter) Warning(msg string)             {}
func (n *NoopPresenter) Finish(stats RunStats)          {}
func (n *NoopPresenter) Close() error                   { return nil }
