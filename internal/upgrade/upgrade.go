// Package upgrade normalizes many table of contents files at once and
// writes the results as MyST project configuration.
package upgrade

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"tocnorm/internal/logger"
	"tocnorm/internal/resolve"
	"tocnorm/internal/toc"
)

// Options configures a Runner.
type Options struct {
	// Concurrency bounds the number of files processed at once.
	Concurrency int
	Format      Format
	// Write stores each result next to its source.
	Write bool
	// Extensions are tried on file references without one.
	Extensions []string
}

// Result is the outcome for one source file.
type Result struct {
	Source string
	// Document is set once the source has been validated.
	Document *toc.Document
	Entries  []toc.NavEntry
	// Output is the rendered configuration; Written names the file it was
	// stored in, if any.
	Output  []byte
	Written string
	Err     error
}

// Runner normalizes table of contents files found on a filesystem.
// Each file is resolved against its own directory.
type Runner struct {
	fs       afero.Fs
	opts     Options
	resolver resolve.Resolver
}

// NewRunner creates a runner over fs.
func NewRunner(fs afero.Fs, opts Options) *Runner {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	if opts.Format == "" {
		opts.Format = FormatYAML
	}

	return &Runner{
		fs:       fs,
		opts:     opts,
		resolver: resolve.NewExtensionResolver(fs, opts.Extensions...),
	}
}

// Run upgrades every source. A failing file does not stop the others:
// its error is kept in its Result. Results are in the order of sources.
// The returned error is set only when ctx ends the run early.
func (r *Runner) Run(ctx context.Context, sources []string) ([]Result, error) {
	return r.each(ctx, sources, r.upgrade)
}

// Check validates every source without resolving references or writing.
func (r *Runner) Check(ctx context.Context, sources []string) ([]Result, error) {
	return r.each(ctx, sources, r.check)
}

func (r *Runner) each(
	ctx context.Context,
	sources []string,
	fn func(ctx context.Context, source string) Result,
) ([]Result, error) {
	log := logger.FromContext(ctx)
	log.Debug("processing table of contents files", "count", len(sources), "concurrency", r.opts.Concurrency)

	results := make([]Result, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)

	for i, source := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = fn(ctx, source)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *Runner) check(ctx context.Context, source string) Result {
	res := Result{Source: source}
	log := logger.FromContext(ctx).With("source", source)

	raw, err := toc.LoadFile(r.fs, source)
	if err != nil {
		res.Err = err
		log.Error("cannot load table of contents", "error", err)

		return res
	}

	res.Document, res.Err = toc.Validate(raw)
	if res.Err != nil {
		log.Warn("invalid table of contents", "error", res.Err)
		return res
	}

	log.Info("table of contents is valid", "dialect", res.Document.Format.String())

	return res
}

func (r *Runner) upgrade(ctx context.Context, source string) Result {
	res := r.check(ctx, source)
	if res.Err != nil {
		return res
	}

	log := logger.FromContext(ctx).With("source", source)
	dir := filepath.Dir(source)

	n := toc.NewNormalizer(r.resolver, toc.WithLogger(log))

	res.Entries, res.Err = n.Build(res.Document, dir)
	if res.Err != nil {
		log.Warn("cannot build navigation tree", "error", res.Err)
		return res
	}

	res.Output, res.Err = Render(res.Entries, r.opts.Format)
	if res.Err != nil {
		return res
	}

	if r.opts.Write {
		target := filepath.Join(dir, r.opts.Format.FileName())

		if err := afero.WriteFile(r.fs, target, res.Output, 0o644); err != nil {
			res.Err = fmt.Errorf("failed to write %s: %w", target, err)
			return res
		}

		res.Written = target
		log.Info("wrote upgraded table of contents", "target", target)
	}

	return res
}

// Failed counts the results carrying an error.
func Failed(results []Result) int {
	n := 0

	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}

	return n
}
