package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/flanksource/commons/logger"
	"golang.org/x/sync/errgroup"

	"github.com/leafilms/docgen/deck"
	"github.com/leafilms/docgen/model"
	"github.com/leafilms/docgen/quote"
	"github.com/leafilms/docgen/source"
)

// DefaultConcurrency is used when neither the manifest nor the runner sets
// a limit.
const DefaultConcurrency = 4

// ErrOutputConflict is returned for a job whose output path was already
// written by another job of the same run.
var ErrOutputConflict = errors.New("output path already written by another job")

// claims tracks output paths written during one run.
type claims struct {
	mu    sync.Mutex
	paths map[string]string
}

// claim reserves path for job and returns the job that already holds it.
func (c *claims) claim(path, job string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if owner, ok := c.paths[path]; ok {
		return owner, false
	}
	c.paths[path] = job
	return "", true
}

// Result is the outcome of one job.
type Result struct {
	Job      Job
	Path     string
	Size     int
	Duration time.Duration
	Err      error
}

// Runner renders jobs concurrently. Jobs are independent: a failing job
// does not stop the others.
type Runner struct {
	Quotes  *quote.Renderer
	Decks   *deck.Renderer
	Fetcher source.Fetcher
	OutDir  string
	// Limit applies when the manifest does not set a concurrency.
	Limit int
}

// Run renders every job and returns one result per job in input order. The
// error joins the failures of all jobs.
func (r *Runner) Run(ctx context.Context, m Manifest) ([]Result, error) {
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return nil, err
	}

	limit := m.Concurrency
	if limit <= 0 {
		limit = r.Limit
	}
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	results := make([]Result, len(m.Jobs))
	written := &claims{paths: map[string]string{}}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, job := range m.Jobs {
		g.Go(func() error {
			results[i] = r.run(ctx, job, written)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Job.Name, res.Err))
		}
	}
	return results, errors.Join(errs...)
}

func (r *Runner) run(ctx context.Context, job Job, written *claims) Result {
	start := time.Now()
	res := Result{Job: job}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	data, name, err := r.render(ctx, job)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		logger.Warnf("job %s failed: %v", job.Name, err)
		return res
	}
	if job.Output != "" {
		name = job.Output
	}

	path := filepath.Join(r.OutDir, filepath.Base(name))
	if owner, ok := written.claim(path, job.Name); !ok {
		res.Err = fmt.Errorf("%w: %s (job %s)", ErrOutputConflict, path, owner)
		res.Duration = time.Since(start)
		logger.Warnf("job %s failed: %v", job.Name, res.Err)
		return res
	}
	res.Path = path
	if err := os.WriteFile(res.Path, data, 0o644); err != nil {
		res.Err = err
		return res
	}
	res.Size = len(data)
	res.Duration = time.Since(start)
	logger.Infof("job %s: wrote %s (%d bytes) in %s", job.Name, res.Path, res.Size, res.Duration)
	return res
}

func (r *Runner) render(ctx context.Context, job Job) ([]byte, string, error) {
	lang, err := model.ParseLanguage(job.Language)
	if err != nil {
		return nil, "", err
	}

	switch job.Kind {
	case KindQuote:
		if r.Quotes == nil || r.Fetcher == nil {
			return nil, "", errors.New("no quote renderer configured")
		}
		out, err := r.Quotes.Generate(ctx, r.Fetcher, job.Source, quote.Request{
			Language:        lang,
			IncludeTravel:   job.Travel,
			IncludeTax:      job.VAT,
			DiscountPercent: job.Discount,
		})
		if err != nil {
			return nil, "", err
		}
		return out.Data, out.Filename, nil

	case KindDeck:
		if r.Decks == nil {
			return nil, "", errors.New("no deck renderer configured")
		}
		content, err := source.LoadProject(job.Content)
		if err != nil {
			return nil, "", err
		}
		if job.Language == "" {
			lang = ""
		}
		data, err := r.Decks.Render(*content, job.ProjectType, job.ProjectName, lang)
		if err != nil {
			return nil, "", err
		}
		return data, quote.Sanitize(job.Name) + ".pdf", nil
	}
	return nil, "", fmt.Errorf("unknown job kind %q", job.Kind)
}
