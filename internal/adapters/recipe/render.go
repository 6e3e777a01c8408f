// internal/adapters/recipe/render.go
package recipe

import (
	"github.com/nikolalohinski/gonja/v2"
	"github.com/nikolalohinski/gonja/v2/exec"

	"biorules/internal/platform/errors"
)

// neutralised lists the recipe-build helpers that render to nothing.
var neutralised = []string{
	"pin_subpackage",
	"compiler",
	"pin_compatible",
	"cdt",
	"stdlib",
}

// noop accepts any positional and keyword arguments and renders empty.
func noop(_ *exec.VarArgs) *exec.Value {
	return exec.AsValue("")
}

// Renderer renders Jinja-templated recipe documents. The build helpers a
// recipe may call and the environment lookups are bound to no-ops; any
// other undefined name renders as the empty string.
type Renderer struct {
	globals map[string]interface{}
}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	globals := make(map[string]interface{}, len(neutralised)+2)
	for _, name := range neutralised {
		globals[name] = noop
	}
	globals["environ"] = map[string]interface{}{"get": noop}
	globals["os"] = map[string]interface{}{
		"environ": map[string]interface{}{"get": noop},
	}
	return &Renderer{globals: globals}
}

// Render implements ports.TemplateRenderer.
func (r *Renderer) Render(text string) (string, error) {
	tpl, err := gonja.FromString(text)
	if err != nil {
		return "", errors.Detail(errors.ErrTemplate, "%v", err)
	}

	// each render gets its own context so template-level sets do not leak
	data := make(map[string]interface{}, len(r.globals))
	for k, v := range r.globals {
		data[k] = v
	}

	out, err := tpl.ExecuteToString(exec.NewContext(data))
	if err != nil {
		return "", errors.Detail(errors.ErrTemplate, "%v", err)
	}
	return out, nil
}
