// internal/adapters/pixi/manager.go
package pixi

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"biorules/internal/core/domain"
	"biorules/internal/core/ports"
	"biorules/internal/platform/errors"
	"biorules/internal/platform/logx"
)

// Config configures the pixi environment manager.
type Config struct {
	// Binary is the pixi executable (default "pixi")
	Binary string

	// WorkDir holds the environment directories (default ".")
	WorkDir string

	// Channels are written to each manifest (default conda-forge, bioconda)
	Channels []string

	// Platform is the conda platform (default detected from the host)
	Platform string

	// InstallTimeout bounds "pixi add"; 0 means no limit
	InstallTimeout time.Duration
}

// Manager provisions one pixi workspace per probed package.
type Manager struct {
	cfg    Config
	runner Runner
	logger logx.Logger
	newID  func() string
}

// NewManager creates a Manager. A nil runner uses ExecRunner.
func NewManager(cfg Config, runner Runner, logger logx.Logger) *Manager {
	if cfg.Binary == "" {
		cfg.Binary = "pixi"
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = "."
	}
	if len(cfg.Channels) == 0 {
		cfg.Channels = DefaultChannels
	}
	if cfg.Platform == "" {
		cfg.Platform = DetectPlatform()
	}
	if logger == nil {
		logger = logx.New()
	}
	if runner == nil {
		runner = NewExecRunner(logger)
	}
	return &Manager{
		cfg:    cfg,
		runner: runner,
		logger: logger.With("component", "pixi"),
		newID:  func() string { return uuid.NewString()[:8] },
	}
}

// EnvName builds the directory name of an environment: "pixi-<name>-<id>".
// Characters outside [A-Za-z0-9._-] in name are replaced with '-'.
func EnvName(pkg, id string) string {
	clean := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' || r == '.' {
			return r
		}
		return '-'
	}, pkg)
	return "pixi-" + clean + "-" + id
}

// Provision implements ports.EnvironmentManager. It writes a manifest into
// a fresh directory and installs pkg with "pixi add". On failure the
// directory is removed and the error wraps ErrProvision with pixi's stderr.
func (m *Manager) Provision(ctx context.Context, pkg domain.PackageInfo) (ports.Environment, error) {
	root, err := filepath.Abs(m.cfg.WorkDir)
	if err != nil {
		return nil, errors.Detail(errors.ErrProvision, "resolving work dir: %v", err)
	}
	name := EnvName(pkg.Name, m.newID())
	dir := filepath.Join(root, name)
	manifest := filepath.Join(dir, ManifestFileName)
	logger := m.logger.With("env", name, "spec", pkg.Spec())

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Detail(errors.ErrProvision, "creating %s: %v", dir, err)
	}

	fail := func(err error) (ports.Environment, error) {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			logger.Warn("failed to remove environment", "error", rmErr.Error())
		}
		return nil, err
	}

	if err := WriteManifest(manifest, NewManifest(name, m.cfg.Channels, m.cfg.Platform)); err != nil {
		return fail(errors.Detail(errors.ErrProvision, "%v", err))
	}

	installCtx := ctx
	if m.cfg.InstallTimeout > 0 {
		var cancel context.CancelFunc
		installCtx, cancel = context.WithTimeout(ctx, m.cfg.InstallTimeout)
		defer cancel()
	}

	logger.Debug("installing package")
	res, err := m.runner.Run(installCtx, dir, m.cfg.Binary, "add", "--manifest-path", manifest, pkg.Spec())
	switch {
	case err != nil:
		return fail(errors.Detail(errors.ErrProvision, "%v", err))
	case res.TimedOut:
		return fail(errors.Detail(errors.ErrProvision, "pixi add timed out after %s", m.cfg.InstallTimeout))
	case res.ExitCode != 0:
		return fail(errors.Detail(errors.ErrProvision, "%s", strings.TrimSpace(res.Stderr)))
	}

	return &environment{
		name:     name,
		dir:      dir,
		manifest: manifest,
		binary:   m.cfg.Binary,
		runner:   m.runner,
	}, nil
}

// environment is a provisioned pixi workspace.
type environment struct {
	name     string
	dir      string
	manifest string
	binary   string
	runner   Runner

	closeOnce sync.Once
	closeErr  error
}

func (e *environment) Name() string {
	return e.name
}

// Run executes command through "pixi run". The command is one argument;
// pixi parses it itself.
func (e *environment) Run(ctx context.Context, command string) (ports.RunResult, error) {
	return e.runner.Run(ctx, e.dir, e.binary, "run", "--manifest-path", e.manifest, command)
}

// Close removes the workspace directory. Repeated calls are no-ops.
func (e *environment) Close() error {
	e.closeOnce.Do(func() {
		e.closeErr = os.RemoveAll(e.dir)
	})
	return e.closeErr
}
