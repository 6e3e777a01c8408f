// internal/core/usecases/recipe_task.go
package usecases

import (
	"context"

	"biorules/internal/core/domain"
)

// RecipeTask adapts one recipe to workerpool.Task.
type RecipeTask struct {
	pipeline *Pipeline
	recipe   domain.Recipe
	priority int
	weight   int

	outcome domain.Outcome
	done    bool
}

// NewRecipeTask creates a RecipeTask.
func NewRecipeTask(pipeline *Pipeline, recipe domain.Recipe, priority, weight int) *RecipeTask {
	return &RecipeTask{
		pipeline: pipeline,
		recipe:   recipe,
		priority: priority,
		weight:   weight,
	}
}

// Execute processes the recipe. Failures are carried in the outcome, so the
// returned error is always nil.
func (rt *RecipeTask) Execute(ctx context.Context) error {
	rt.outcome = rt.pipeline.Process(ctx, rt.recipe)
	rt.done = true
	return nil
}

// Priority returns the task priority.
func (rt *RecipeTask) Priority() int {
	return rt.priority
}

// Weight returns the estimated cost of the task.
func (rt *RecipeTask) Weight() int {
	return rt.weight
}

// Name returns the recipe id.
func (rt *RecipeTask) Name() string {
	return rt.recipe.ID
}

// Outcome returns the result of Execute. ok is false if the task never
// completed.
func (rt *RecipeTask) Outcome() (outcome domain.Outcome, ok bool) {
	return rt.outcome, rt.done
}

// Recipe returns the underlying recipe.
func (rt *RecipeTask) Recipe() domain.Recipe {
	return rt.recipe
}
