// internal/core/usecases/pipeline.go
package usecases

import (
	"context"
	"fmt"
	"strings"

	"biorules/internal/core/domain"
	"biorules/internal/core/ports"
	"biorules/internal/platform/errors"
	"biorules/internal/platform/logx"
)

// Pipeline turns one recipe into exactly one Outcome: read, render, parse,
// then either accept the imports or probe and resolve the commands.
type Pipeline struct {
	reader   ports.RecipeReader
	renderer ports.TemplateRenderer
	parser   ports.MetadataParser
	prober   *Prober
	logger   logx.Logger
}

// PipelineOptions configures a Pipeline.
type PipelineOptions struct {
	Reader   ports.RecipeReader
	Renderer ports.TemplateRenderer
	Parser   ports.MetadataParser
	Prober   *Prober
	Logger   logx.Logger
}

// NewPipeline creates a Pipeline.
func NewPipeline(opts PipelineOptions) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &Pipeline{
		reader:   opts.Reader,
		renderer: opts.Renderer,
		parser:   opts.Parser,
		prober:   opts.Prober,
		logger:   opts.Logger.With("component", "pipeline"),
	}
}

// Process classifies a single recipe. It never panics on bad input and never
// returns an error: every failure becomes an error-severity Issue in the
// outcome.
func (p *Pipeline) Process(ctx context.Context, recipe domain.Recipe) domain.Outcome {
	id := recipe.ID
	logger := p.logger.With("recipe", id)

	text, err := p.reader.ReadRecipe(recipe)
	if err != nil {
		return domain.ErrorOutcome(id, id, fmt.Sprintf("Error reading meta.yaml for package %s: %v", id, err), nil)
	}

	rendered, err := p.renderer.Render(text)
	if err != nil {
		return domain.ErrorOutcome(id, id, fmt.Sprintf("Template rendering error for package %s: %s", id, stripSentinel(err, errors.ErrTemplate)), nil)
	}

	meta, err := p.parser.Parse(rendered)
	if err != nil {
		logger.Debug("metadata rejected", "error", err.Error())
		return domain.ErrorOutcome(id, id, parseErrorMessage(id, err), nil)
	}

	var warnings []domain.Issue
	if !meta.Package.HasVersion() {
		warnings = append(warnings, domain.NewWarning(id, fmt.Sprintf("No version found for package %s", id)))
	}

	switch meta.Test.Kind {
	case domain.TestSpecImports:
		logger.Debug("importable", "package", meta.Package.Name, "imports", len(meta.Test.Imports))
		return domain.ImportableOutcome(id, meta.Package, meta.Test.Imports, warnings)

	case domain.TestSpecCommands:
		return p.processCommands(ctx, recipe, meta, warnings, logger)

	default:
		return domain.ErrorOutcome(id, id, fmt.Sprintf("No test commands or imports found for package %s", id), warnings)
	}
}

func (p *Pipeline) processCommands(ctx context.Context, recipe domain.Recipe, meta domain.Metadata, warnings []domain.Issue, logger logx.Logger) domain.Outcome {
	pkg := meta.Package
	commands := meta.Test.Commands

	if len(commands) == 0 {
		logger.Debug("empty command list, nothing to probe", "package", pkg.Name)
		return domain.AmbiguousOutcome(recipe.ID, pkg, commands, nil, warnings)
	}

	probe, err := p.prober.Probe(ctx, pkg, commands)
	if err != nil {
		logger.Warn("environment provisioning failed", "package", pkg.Name, "error", err.Error())
		return domain.ErrorOutcome(recipe.ID, pkg.Name,
			fmt.Sprintf("Error creating environment for package %s: %s", pkg.Name, stripSentinel(err, errors.ErrProvision)), warnings)
	}

	for _, cmd := range probe.TimedOut() {
		warnings = append(warnings, domain.NewWarning(pkg.Name, fmt.Sprintf("Command timed out for package %s: %s", pkg.Name, cmd)))
	}

	successful := probe.Successful()
	rules := ResolveRules(pkg.Name, successful)
	if len(rules) == 0 {
		logger.Debug("unresolved", "package", pkg.Name, "commands", len(commands), "passed", len(successful))
		return domain.AmbiguousOutcome(recipe.ID, pkg, commands, successful, warnings)
	}

	logger.Debug("executable", "package", pkg.Name, "rules", len(rules))
	return domain.ExecutableOutcome(recipe.ID, pkg, rules, warnings)
}

// parseErrorMessage maps parser sentinels to the issue text for recipe id.
func parseErrorMessage(id string, err error) string {
	switch {
	case errors.Is(err, errors.ErrEmptyDocument):
		return fmt.Sprintf("Error parsing meta.yaml for package %s", id)
	case errors.Is(err, errors.ErrNoPackageName):
		return fmt.Sprintf("No package name for package %s", id)
	case errors.Is(err, errors.ErrNoTestSection):
		return fmt.Sprintf("No test section found for package %s", id)
	case errors.Is(err, errors.ErrNoTestSpec):
		return fmt.Sprintf("No test commands or imports found for package %s", id)
	case errors.Is(err, errors.ErrMalformedDocument):
		return fmt.Sprintf("YAML parsing error for package %s: %s", id, stripSentinel(err, errors.ErrMalformedDocument))
	default:
		return fmt.Sprintf("Unexpected error for package %s: %v", id, err)
	}
}

// stripSentinel drops the "<sentinel>: " prefix so the issue carries only
// the underlying detail, such as the tool's stderr.
func stripSentinel(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}
