package tablex

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/corpustools/tablex/model"
	"github.com/corpustools/tablex/profile"
)

// BatchExtractor processes many articles concurrently. Like Extractor,
// every configuration method returns a new instance.
type BatchExtractor struct {
	paths   []string
	workers int
	options ExtractOptions
}

// Batch prepares a concurrent extraction over many article files. The
// default worker count is the number of CPUs.
//
// Example:
//
//	coll, warnings, err := tablex.Batch(paths...).
//	    Workers(4).
//	    AutoLink().
//	    Collect(ctx)
func Batch(paths ...string) *BatchExtractor {
	return &BatchExtractor{
		paths:   append([]string(nil), paths...),
		workers: runtime.NumCPU(),
		options: defaultOptions(),
	}
}

// clone creates a copy of the BatchExtractor with a deep copy of options.
func (b *BatchExtractor) clone() *BatchExtractor {
	return &BatchExtractor{
		paths:   append([]string(nil), b.paths...),
		workers: b.workers,
		options: b.options.clone(),
	}
}

// Workers sets how many articles are processed at once. Values below 1
// mean 1.
func (b *BatchExtractor) Workers(n int) *BatchExtractor {
	if n < 1 {
		n = 1
	}
	newBatch := b.clone()
	newBatch.workers = n
	return newBatch
}

// WithProfile selects the selector profile for every article in the batch.
func (b *BatchExtractor) WithProfile(p *profile.Profile) *BatchExtractor {
	newBatch := b.clone()
	newBatch.options.profile = p
	return newBatch
}

// AutoLink discovers linked table files next to every article in the
// batch.
func (b *BatchExtractor) AutoLink() *BatchExtractor {
	newBatch := b.clone()
	newBatch.options.autoLink = true
	return newBatch
}

// Collect runs the batch and returns one document per input path, in input
// order regardless of which worker finished first. Articles are
// independent, so they run in parallel; the first failure cancels the
// remaining work and is returned. Warnings from all articles are
// concatenated in input order.
func (b *BatchExtractor) Collect(ctx context.Context) (model.TableCollection, []Warning, error) {
	docs := make([]*model.TableDocument, len(b.paths))
	warns := make([][]Warning, len(b.paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i, path := range b.paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ext := &Extractor{filename: path, options: b.options.clone()}
			doc, w, err := ext.Document()
			if err != nil {
				return err
			}
			docs[i] = doc
			warns[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	coll := make(model.TableCollection, 0, len(docs))
	var all []Warning
	for i, doc := range docs {
		coll = append(coll, doc)
		all = append(all, warns[i]...)
	}
	return coll, all, nil
}
