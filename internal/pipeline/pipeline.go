// Package pipeline orchestrates batch ingest: reading raw records,
// converting and constructing elements in parallel, storing them, and
// running the reference resolution phase over the complete batch.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/eraschle/railnorm/internal/converter"
	"github.com/eraschle/railnorm/internal/element"
	"github.com/eraschle/railnorm/internal/metrics"
	"github.com/eraschle/railnorm/internal/reader"
	"github.com/eraschle/railnorm/internal/repository"
)

// DefaultWorkers bounds the construction parallelism when the caller
// does not choose one.
const DefaultWorkers = 4

// Result summarizes one ingest run.
type Result struct {
	RecordsRead   int
	ElementsBuilt int
	RecordsFailed int
	Link          repository.LinkReport
}

// Pipeline wires one source's reader and converter to the element
// factory and the repository.
type Pipeline struct {
	reader    reader.Reader
	converter converter.Converter
	factory   *element.Factory
	repo      repository.Repository
	logger    *slog.Logger
	workers   int
}

// New creates an ingest pipeline.
func New(r reader.Reader, c converter.Converter, f *element.Factory, repo repository.Repository, logger *slog.Logger, workers int) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Pipeline{reader: r, converter: c, factory: f, repo: repo, logger: logger, workers: workers}
}

// Run executes the two ingest phases.
//
// Phase 1 constructs every element independently; construction never
// touches another element, so records are processed in parallel. A
// record that fails conversion or construction is logged and skipped;
// the batch continues. Phase 2 runs only after the whole batch is
// stored: the linker mirrors bidirectional references across the now
// complete element set.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	records, err := p.reader.Read(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: reading records: %w", err)
	}

	var result Result
	result.RecordsRead = len(records)

	var mu sync.Mutex
	built := make([]*element.Element, 0, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for _, rec := range records {
		rec := rec
		metrics.RecordsRead.WithLabelValues(rec.Source).Inc()
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			e, err := p.buildOne(rec)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// Per-record failure: log, count, continue.
				p.logger.Warn("skipping record", "source", rec.Source, "kind", rec.Kind, "error", err)
				metrics.BuildFailures.WithLabelValues(rec.Source).Inc()
				result.RecordsFailed++
				return nil
			}
			built = append(built, e)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	for _, e := range built {
		if err := p.repo.Save(ctx, e); err != nil {
			return result, fmt.Errorf("pipeline: storing %s: %w", e.ID(), err)
		}
		metrics.ElementsBuilt.WithLabelValues(string(e.Kind())).Inc()
		result.ElementsBuilt++
	}

	report, err := repository.NewLinker(p.repo, p.logger).Resolve(ctx)
	if err != nil {
		return result, fmt.Errorf("pipeline: resolving references: %w", err)
	}
	metrics.ReferencesMirrored.Add(float64(report.Mirrored))
	metrics.DanglingReferences.Add(float64(len(report.Dangling)))
	result.Link = report

	if err := p.repo.Flush(ctx); err != nil {
		return result, fmt.Errorf("pipeline: flushing repository: %w", err)
	}

	p.logger.Info("ingest complete",
		"records", result.RecordsRead,
		"built", result.ElementsBuilt,
		"failed", result.RecordsFailed,
		"mirrored", report.Mirrored,
		"dangling", len(report.Dangling))
	return result, nil
}

// buildOne converts and constructs a single element.
func (p *Pipeline) buildOne(rec reader.RawRecord) (*element.Element, error) {
	desc, err := p.converter.Convert(rec)
	if err != nil {
		return nil, err
	}
	return p.factory.Build(desc)
}
