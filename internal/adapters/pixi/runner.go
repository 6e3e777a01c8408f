// internal/adapters/pixi/runner.go
package pixi

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"time"

	"biorules/internal/core/ports"
	"biorules/internal/platform/errors"
	"biorules/internal/platform/logx"
)

// stderrLimit caps captured stderr per process.
const stderrLimit = 64 * 1024

// timeoutExitCode is reported for processes killed at their deadline.
const timeoutExitCode = 124

// Runner starts a process and waits for it.
type Runner interface {
	Run(ctx context.Context, dir, binary string, args ...string) (ports.RunResult, error)
}

// ExecRunner runs processes with os/exec. Stdout is discarded, stderr is
// captured.
type ExecRunner struct {
	logger    logx.Logger
	waitDelay time.Duration
}

// NewExecRunner creates an ExecRunner.
func NewExecRunner(logger logx.Logger) *ExecRunner {
	if logger == nil {
		logger = logx.New()
	}
	return &ExecRunner{
		logger:    logger.With("component", "pixi-runner"),
		waitDelay: 2 * time.Second,
	}
}

// Run executes binary with args in dir. A process still running when ctx
// expires is killed and reported with TimedOut set. The error is non-nil
// only when the process could not be started.
func (r *ExecRunner) Run(ctx context.Context, dir, binary string, args ...string) (ports.RunResult, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir
	cmd.Stdout = io.Discard

	stderr := &limitedBuffer{limit: stderrLimit}
	cmd.Stderr = stderr

	// children of the process may keep stderr open after the kill
	cmd.WaitDelay = r.waitDelay

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return ports.RunResult{ExitCode: -1}, errors.Wrapf(err, "starting %s", binary)
	}

	waitErr := cmd.Wait()
	elapsed := time.Since(start)

	if ctx.Err() == context.DeadlineExceeded {
		r.logger.Debug("process killed at deadline", "binary", binary, "elapsed_ms", elapsed.Milliseconds())
		return ports.RunResult{ExitCode: timeoutExitCode, Stderr: stderr.String(), TimedOut: true}, nil
	}

	exitCode := 0
	if waitErr != nil {
		var ee *exec.ExitError
		if errors.As(waitErr, &ee) && ee.ProcessState != nil {
			exitCode = ee.ProcessState.ExitCode()
		} else {
			exitCode = 1
		}
	} else if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}

	r.logger.Debug("process exited", "binary", binary, "exit_code", exitCode, "elapsed_ms", elapsed.Milliseconds())
	return ports.RunResult{ExitCode: exitCode, Stderr: stderr.String()}, nil
}

// limitedBuffer keeps the first limit bytes written and drops the rest.
type limitedBuffer struct {
	buf   bytes.Buffer
	limit int
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	if room := b.limit - b.buf.Len(); room > 0 {
		if len(p) > room {
			b.buf.Write(p[:room])
		} else {
			b.buf.Write(p)
		}
	}
	return len(p), nil
}

func (b *limitedBuffer) String() string {
	return b.buf.String()
}
