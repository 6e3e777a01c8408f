// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"biorules/internal/core/domain"
	"biorules/internal/core/ports"
	"biorules/internal/platform/errors"
	"biorules/internal/platform/logx"
)

// mockReader returns the recipe ID as the document text, unless an error is
// registered for it.
type mockReader struct {
	errs map[string]error
}

func (m *mockReader) ReadRecipe(r domain.Recipe) (string, error) {
	if err, ok := m.errs[r.ID]; ok {
		return "", err
	}
	return r.ID, nil
}

// mockRenderer passes text through, failing for registered inputs.
type mockRenderer struct {
	errs map[string]error
}

func (m *mockRenderer) Render(text string) (string, error) {
	if err, ok := m.errs[text]; ok {
		return "", err
	}
	return text, nil
}

// mockParser maps rendered text to canned metadata or errors.
type mockParser struct {
	docs map[string]domain.Metadata
	errs map[string]error
}

func (m *mockParser) Parse(rendered string) (domain.Metadata, error) {
	if err, ok := m.errs[rendered]; ok {
		return domain.Metadata{}, err
	}
	if md, ok := m.docs[rendered]; ok {
		return md, nil
	}
	return domain.Metadata{}, errors.ErrEmptyDocument
}

// mockManager is a ports.EnvironmentManager whose environments answer from
// a command table.
type mockManager struct {
	mu sync.Mutex

	provisionErr map[string]error
	results      map[string]ports.RunResult
	runErrs      map[string]error
	delays       map[string]time.Duration
	panicOn      string

	provisioned []string
	envs        []*mockEnv
}

func newMockManager() *mockManager {
	return &mockManager{
		provisionErr: map[string]error{},
		results:      map[string]ports.RunResult{},
		runErrs:      map[string]error{},
		delays:       map[string]time.Duration{},
	}
}

// pass registers commands that exit 0.
func (m *mockManager) pass(commands ...string) *mockManager {
	for _, c := range commands {
		m.results[c] = ports.RunResult{ExitCode: 0}
	}
	return m
}

// fail registers commands that exit non-zero.
func (m *mockManager) fail(commands ...string) *mockManager {
	for _, c := range commands {
		m.results[c] = ports.RunResult{ExitCode: 1, Stderr: "usage error"}
	}
	return m
}

func (m *mockManager) Provision(ctx context.Context, pkg domain.PackageInfo) (ports.Environment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.provisioned = append(m.provisioned, pkg.Spec())
	if pkg.Name == m.panicOn {
		panic("provision exploded")
	}
	if err, ok := m.provisionErr[pkg.Name]; ok {
		return nil, err
	}
	env := &mockEnv{name: fmt.Sprintf("pixi-%s-%d", pkg.Name, len(m.provisioned)), manager: m}
	m.envs = append(m.envs, env)
	return env, nil
}

func (m *mockManager) provisionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.provisioned)
}

// openEnvs counts environments that were never closed.
func (m *mockManager) openEnvs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	open := 0
	for _, e := range m.envs {
		if !e.isClosed() {
			open++
		}
	}
	return open
}

type mockEnv struct {
	name    string
	manager *mockManager

	mu     sync.Mutex
	ran    []string
	closed bool
}

func (e *mockEnv) Name() string { return e.name }

func (e *mockEnv) Run(ctx context.Context, command string) (ports.RunResult, error) {
	e.mu.Lock()
	e.ran = append(e.ran, command)
	e.mu.Unlock()

	e.manager.mu.Lock()
	delay := e.manager.delays[command]
	res, known := e.manager.results[command]
	runErr := e.manager.runErrs[command]
	e.manager.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ports.RunResult{ExitCode: -1, TimedOut: true}, errors.Wrap(errors.ErrTimeout, command)
		}
	}
	if runErr != nil {
		return ports.RunResult{ExitCode: -1}, runErr
	}
	if !known {
		return ports.RunResult{ExitCode: 127, Stderr: "command not found"}, nil
	}
	return res, nil
}

func (e *mockEnv) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}

func (e *mockEnv) isClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

func (e *mockEnv) commands() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.ran...)
}

// fixture wires a Pipeline around the mocks.
type fixture struct {
	reader   *mockReader
	renderer *mockRenderer
	parser   *mockParser
	envs     *mockManager
	pipeline *Pipeline
}

func newFixture(opts ...func(*ProberOptions)) *fixture {
	f := &fixture{
		reader:   &mockReader{errs: map[string]error{}},
		renderer: &mockRenderer{errs: map[string]error{}},
		parser:   &mockParser{docs: map[string]domain.Metadata{}, errs: map[string]error{}},
		envs:     newMockManager(),
	}
	po := ProberOptions{
		Environments:   f.envs,
		Logger:         logx.NewSilent(),
		CommandTimeout: time.Second,
	}
	for _, o := range opts {
		o(&po)
	}
	f.pipeline = NewPipeline(PipelineOptions{
		Reader:   f.reader,
		Renderer: f.renderer,
		Parser:   f.parser,
		Prober:   NewProber(po),
		Logger:   logx.NewSilent(),
	})
	return f
}

// commands registers a recipe whose test section lists commands.
func (f *fixture) commands(id, name string, version *string, commands ...string) domain.Recipe {
	f.parser.docs[id] = domain.Metadata{
		Package: domain.PackageInfo{Name: name, Version: version},
		Test:    domain.CommandsSpec(commands),
	}
	return domain.Recipe{ID: id, MetaPath: id + "/meta.yaml"}
}

// imports registers a recipe whose test section lists imports.
func (f *fixture) imports(id, name string, version *string, imports ...string) domain.Recipe {
	f.parser.docs[id] = domain.Metadata{
		Package: domain.PackageInfo{Name: name, Version: version},
		Test:    domain.ImportsSpec(imports),
	}
	return domain.Recipe{ID: id, MetaPath: id + "/meta.yaml"}
}

// failing registers a recipe whose parse fails with err.
func (f *fixture) failing(id string, err error) domain.Recipe {
	f.parser.errs[id] = err
	return domain.Recipe{ID: id, MetaPath: id + "/meta.yaml"}
}
