// internal/core/usecases/probe.go
package usecases

import (
	"context"
	"time"

	"biorules/internal/core/domain"
	"biorules/internal/core/ports"
	"biorules/internal/platform/errors"
	"biorules/internal/platform/logx"
)

// DefaultCommandTimeout bounds each candidate test command.
const DefaultCommandTimeout = 20 * time.Second

// Prober runs candidate test commands in an environment holding only the
// package under test.
type Prober struct {
	envs           ports.EnvironmentManager
	logger         logx.Logger
	commandTimeout time.Duration
	packageTimeout time.Duration
}

// ProberOptions configures a Prober.
type ProberOptions struct {
	Environments ports.EnvironmentManager
	Logger       logx.Logger

	// CommandTimeout applies to each command (default 20s)
	CommandTimeout time.Duration

	// PackageTimeout bounds all commands of one package together; 0 disables it
	PackageTimeout time.Duration
}

// NewProber creates a Prober.
func NewProber(opts ProberOptions) *Prober {
	if opts.CommandTimeout <= 0 {
		opts.CommandTimeout = DefaultCommandTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &Prober{
		envs:           opts.Environments,
		logger:         opts.Logger.With("component", "prober"),
		commandTimeout: opts.CommandTimeout,
		packageTimeout: opts.PackageTimeout,
	}
}

// Probe provisions an environment for pkg, runs every command in it and
// tears it down. The result has one entry per command, in order. A
// provisioning failure returns an error wrapping ErrProvision and no command
// is run.
func (p *Prober) Probe(ctx context.Context, pkg domain.PackageInfo, commands []string) (result domain.ProbeResult, err error) {
	logger := p.logger.With("package", pkg.Name, "spec", pkg.Spec())

	env, err := p.envs.Provision(ctx, pkg)
	if err != nil {
		return domain.ProbeResult{}, err
	}
	logger.Debug("environment provisioned", "env", env.Name())

	defer func() {
		if closeErr := env.Close(); closeErr != nil {
			logger.Warn("failed to remove environment", "env", env.Name(), "error", closeErr.Error())
		}
	}()

	pkgCtx := ctx
	if p.packageTimeout > 0 {
		var cancel context.CancelFunc
		pkgCtx, cancel = context.WithTimeout(ctx, p.packageTimeout)
		defer cancel()
	}

	result.Results = make([]domain.CommandResult, 0, len(commands))
	for _, cmd := range commands {
		if pkgCtx.Err() != nil {
			result.Results = append(result.Results, domain.CommandResult{Command: cmd, Outcome: domain.CommandTimeout})
			continue
		}
		outcome := p.runOne(pkgCtx, env, cmd, logger)
		result.Results = append(result.Results, domain.CommandResult{Command: cmd, Outcome: outcome})
	}

	logger.Debug("probe finished",
		"commands", len(commands),
		"passed", len(result.Successful()),
	)
	return result, nil
}

func (p *Prober) runOne(ctx context.Context, env ports.Environment, cmd string, logger logx.Logger) domain.CommandOutcome {
	cmdCtx, cancel := context.WithTimeout(ctx, p.commandTimeout)
	defer cancel()

	start := time.Now()
	res, err := env.Run(cmdCtx, cmd)
	elapsed := time.Since(start)

	switch {
	case res.TimedOut || errors.IsTimeout(err) || cmdCtx.Err() == context.DeadlineExceeded:
		logger.Debug("command timed out", "command", cmd, "elapsed_ms", elapsed.Milliseconds())
		return domain.CommandTimeout
	case err != nil:
		logger.Debug("command could not run", "command", cmd, "error", err.Error())
		return domain.CommandFail
	case res.Succeeded():
		logger.Debug("command passed", "command", cmd, "elapsed_ms", elapsed.Milliseconds())
		return domain.CommandPass
	default:
		logger.Debug("command failed", "command", cmd, "exit_code", res.ExitCode)
		return domain.CommandFail
	}
}
