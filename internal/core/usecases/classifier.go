// internal/core/usecases/classifier.go
package usecases

import (
	"context"
	"fmt"
	"sync"

	"biorules/internal/core/domain"
	"biorules/internal/platform/logx"
	"biorules/internal/platform/workerpool"
)

const defaultRecipeWeight = 50

// Classifier runs the pipeline over a batch of recipes and folds the
// outcomes into a Report.
type Classifier struct {
	pipeline *Pipeline
	pool     *workerpool.WorkerPool
	logger   logx.Logger
	progress func(done, total int, outcome domain.Outcome)

	progressMu sync.Mutex
	done       int
}

// ClassifierOptions configures a Classifier.
type ClassifierOptions struct {
	Pipeline *Pipeline
	Logger   logx.Logger

	// Workers is the number of recipes processed at once (default 1)
	Workers int

	// Progress, if set, is called after each recipe completes
	Progress func(done, total int, outcome domain.Outcome)
}

// NewClassifier creates a Classifier.
func NewClassifier(opts ClassifierOptions) *Classifier {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	return &Classifier{
		pipeline: opts.Pipeline,
		pool: workerpool.NewWorkerPool(workerpool.WorkerPoolConfig{
			Workers:   opts.Workers,
			Scheduler: workerpool.NewFIFOScheduler(),
			Logger:    opts.Logger,
		}),
		logger:   opts.Logger.With("component", "classifier"),
		progress: opts.Progress,
	}
}

// Classify processes recipes and returns the report. Outcomes are folded in
// recipe order whatever the worker count. Recipes skipped because ctx was
// cancelled are absent from the report.
func (c *Classifier) Classify(ctx context.Context, recipes []domain.Recipe) *domain.Report {
	report := domain.NewReport()
	c.progressMu.Lock()
	c.done = 0
	c.progressMu.Unlock()

	tasks := make([]workerpool.Task, len(recipes))
	recipeTasks := make([]*progressTask, len(recipes))
	for i, r := range recipes {
		pt := &progressTask{RecipeTask: NewRecipeTask(c.pipeline, r, 0, defaultRecipeWeight), classifier: c, total: len(recipes)}
		recipeTasks[i] = pt
		tasks[i] = pt
	}

	c.logger.Info("classifying recipes", "total", len(recipes), "workers", c.pool.Stats().Workers)

	for _, res := range c.pool.Run(ctx, tasks) {
		pt := recipeTasks[res.Index]
		outcome, ok := pt.Outcome()
		if res.Error != nil || !ok {
			id := pt.Recipe().ID
			msg := fmt.Sprintf("Unexpected error for package %s: %v", id, res.Error)
			outcome = domain.ErrorOutcome(id, id, msg, nil)
		}
		report.Add(outcome)
	}

	if ctx.Err() != nil {
		c.logger.Warn("classification interrupted", "error", ctx.Err().Error())
	}

	report.Finalize()
	c.logger.Info("classification finished", "summary", report.Summary())
	return report
}

// progressTask reports completion of a RecipeTask to the classifier's
// progress callback.
type progressTask struct {
	*RecipeTask
	classifier *Classifier
	total      int
}

func (pt *progressTask) Execute(ctx context.Context) error {
	err := pt.RecipeTask.Execute(ctx)
	pt.classifier.notify(pt.total, pt.RecipeTask.outcome)
	return err
}

func (c *Classifier) notify(total int, outcome domain.Outcome) {
	if c.progress == nil {
		return
	}
	c.progressMu.Lock()
	defer c.progressMu.Unlock()
	c.done++
	c.progress(c.done, total, outcome)
}
