// internal/platform/resilience/retry.go
package resilience

import (
	"context"
	"math"
	"time"

	"biorules/internal/core/domain"
	"biorules/internal/core/ports"
	"biorules/internal/platform/logx"
)

const maxBackoff = 60 * time.Second

// RetryingManager wraps an EnvironmentManager and retries failed
// provisioning with exponential backoff. Installs fail transiently when a
// channel is unreachable; a package that cannot be solved fails every time
// and costs maxRetries extra attempts.
type RetryingManager struct {
	next              ports.EnvironmentManager
	maxRetries        int
	backoffBase       time.Duration
	backoffMultiplier float64
	logger            logx.Logger
	sleep             func(ctx context.Context, d time.Duration) error
}

// NewRetryingManager creates a RetryingManager. maxRetries of 0 disables
// retries.
func NewRetryingManager(
	next ports.EnvironmentManager,
	maxRetries int,
	backoffBase time.Duration,
	backoffMultiplier float64,
	logger logx.Logger,
) *RetryingManager {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if backoffBase <= 0 {
		backoffBase = 1 * time.Second
	}
	if backoffMultiplier < 1.0 {
		backoffMultiplier = 2.0
	}
	if logger == nil {
		logger = logx.New()
	}

	return &RetryingManager{
		next:              next,
		maxRetries:        maxRetries,
		backoffBase:       backoffBase,
		backoffMultiplier: backoffMultiplier,
		logger:            logger.With("component", "retrying-manager"),
		sleep:             sleepContext,
	}
}

// Provision tries next.Provision up to maxRetries+1 times. The error of the
// last attempt is returned unchanged.
func (r *RetryingManager) Provision(ctx context.Context, pkg domain.PackageInfo) (ports.Environment, error) {
	logger := r.logger.With("package", pkg.Spec())

	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			logger.Info("retrying provision", "attempt", attempt, "max_retries", r.maxRetries)
		}

		env, err := r.next.Provision(ctx, pkg)
		if err == nil {
			if attempt > 0 {
				logger.Info("provision succeeded after retry", "attempts", attempt+1)
			}
			return env, nil
		}

		lastErr = err
		logger.Warn("provision failed", "attempt", attempt+1, "error", err.Error())

		if attempt == r.maxRetries {
			break
		}
		if ctx.Err() != nil {
			logger.Warn("context cancelled, aborting retries")
			break
		}

		backoff := r.calculateBackoff(attempt)
		logger.Debug("backing off before retry", "delay_ms", backoff.Milliseconds())
		if err := r.sleep(ctx, backoff); err != nil {
			logger.Warn("context cancelled during backoff")
			break
		}
	}

	return nil, lastErr
}

// calculateBackoff returns base * multiplier^attempt, capped at maxBackoff.
func (r *RetryingManager) calculateBackoff(attempt int) time.Duration {
	multiplier := math.Pow(r.backoffMultiplier, float64(attempt))
	backoff := time.Duration(float64(r.backoffBase) * multiplier)
	if backoff > maxBackoff {
		backoff = maxBackoff
	}
	return backoff
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
