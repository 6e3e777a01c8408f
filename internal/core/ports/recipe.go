// internal/core/ports/recipe.go
package ports

import "biorules/internal/core/domain"

// TemplateRenderer turns a templated metadata document into plain text.
type TemplateRenderer interface {
	Render(text string) (string, error)
}

// MetadataParser extracts package identity and test spec from a rendered
// document.
type MetadataParser interface {
	Parse(rendered string) (domain.Metadata, error)
}

// RecipeReader loads the raw text of a recipe's metadata document.
type RecipeReader interface {
	ReadRecipe(recipe domain.Recipe) (string, error)
}
