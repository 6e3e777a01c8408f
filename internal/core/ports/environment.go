// internal/core/ports/environment.go
package ports

import (
	"context"

	"biorules/internal/core/domain"
)

// RunResult is what an out-of-process invocation reports back: its exit
// code and captured stderr. No other channel is used.
type RunResult struct {
	ExitCode int
	Stderr   string
	TimedOut bool
}

// Succeeded reports a zero exit that did not time out.
func (r RunResult) Succeeded() bool {
	return r.ExitCode == 0 && !r.TimedOut
}

// EnvironmentManager provisions ephemeral, isolated environments holding
// exactly one package.
type EnvironmentManager interface {
	// Provision creates an environment and installs pkg into it. On error
	// nothing is left on disk.
	Provision(ctx context.Context, pkg domain.PackageInfo) (Environment, error)
}

// Environment is a live ephemeral environment. Close removes it and must be
// called on every exit path.
type Environment interface {
	// Name returns the unique environment name
	Name() string

	// Run executes a test command inside the environment. A timeout is
	// signalled through ctx and reported in RunResult.TimedOut.
	Run(ctx context.Context, command string) (RunResult, error)

	// Close removes the environment's on-disk footprint
	Close() error
}
