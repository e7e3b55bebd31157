package pipeline

import (
	"context"
	"sync"

	"github.com/de-tools/trip-atlas/pkg/models/domain"
	"github.com/de-tools/trip-atlas/pkg/services/analysis"
	"github.com/de-tools/trip-atlas/pkg/services/zones"
	"github.com/de-tools/trip-atlas/pkg/store/duckdb/trips"
	"github.com/rs/zerolog"
)

// Runner drives one category through the full pipeline:
// load -> clean -> enrich -> analyze.
type Runner struct {
	store    trips.Store
	lookup   *zones.Lookup
	rules    Rules
	analyzer *analysis.Analyzer
}

func NewRunner(store trips.Store, lookup *zones.Lookup, rules Rules, analyzer *analysis.Analyzer) *Runner {
	return &Runner{
		store:    store,
		lookup:   lookup,
		rules:    rules,
		analyzer: analyzer,
	}
}

// CategoryInput names one trip feed to process.
type CategoryInput struct {
	Category domain.Category
	Path     string
}

// CategoryResult is the outcome of one category pipeline. Err is set when
// the category failed (a SchemaError, typically); Summary is set otherwise.
type CategoryResult struct {
	Category domain.Category
	Summary  *analysis.Summary
	Dropped  int
	Err      error
}

// RunCategory processes a single category end to end.
func (r *Runner) RunCategory(ctx context.Context, category domain.Category, path string) (*analysis.Summary, int, error) {
	logger := zerolog.Ctx(ctx).With().Str("category", string(category)).Logger()
	ctx = logger.WithContext(ctx)

	raw, err := r.store.Load(ctx, category, path)
	if err != nil {
		return nil, 0, err
	}

	kept, dropped := Clean(raw, r.rules)
	logger.Info().
		Int("kept", len(kept)).
		Int("dropped", dropped).
		Msg("cleaned trip records")

	enriched := Enrich(kept, r.lookup)

	summary, err := r.analyzer.Run(ctx, category, enriched)
	if err != nil {
		return nil, dropped, err
	}
	return summary, dropped, nil
}

// RunAll processes the given categories in parallel. The category
// pipelines share no mutable state, so a failure in one never stops the
// others; each result carries its own error.
func (r *Runner) RunAll(ctx context.Context, inputs []CategoryInput) []CategoryResult {
	results := make([]CategoryResult, len(inputs))

	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input CategoryInput) {
			defer wg.Done()
			summary, dropped, err := r.RunCategory(ctx, input.Category, input.Path)
			results[i] = CategoryResult{
				Category: input.Category,
				Summary:  summary,
				Dropped:  dropped,
				Err:      err,
			}
		}(i, input)
	}
	wg.Wait()

	return results
}
