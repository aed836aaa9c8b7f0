package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eraschle/railnorm/internal/component"
	"github.com/eraschle/railnorm/internal/element"
)

// DanglingReference identifies a declared reference whose target does
// not exist in the repository.
type DanglingReference struct {
	ElementID  string
	TargetKind string
	TargetID   string
}

// LinkReport summarizes one linker run.
type LinkReport struct {
	Checked  int
	Mirrored int
	Dangling []DanglingReference
}

// Linker is the explicit second resolution phase: after a batch of
// elements has been fully constructed and stored, it ensures every
// bidirectional reference has its mirrored counterpart on the target
// element. Element construction itself never looks up other elements;
// only this pass does.
type Linker struct {
	repo   Repository
	logger *slog.Logger
}

// NewLinker creates a linker over a repository.
func NewLinker(repo Repository, logger *slog.Logger) *Linker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Linker{repo: repo, logger: logger}
}

// Resolve walks every element's bidirectional references and mirrors the
// missing backward edges. Dangling targets are reported, not fatal.
func (l *Linker) Resolve(ctx context.Context) (LinkReport, error) {
	elements, err := l.repo.List(ctx)
	if err != nil {
		return LinkReport{}, fmt.Errorf("linker: listing elements: %w", err)
	}

	// Snapshot the declared references first so that edges mirrored
	// during this run are not themselves re-resolved.
	type declared struct {
		owner *element.Element
		refs  []component.Reference
	}
	batch := make([]declared, 0, len(elements))
	for _, e := range elements {
		batch = append(batch, declared{owner: e, refs: e.References()})
	}

	var report LinkReport
	for _, d := range batch {
		e := d.owner
		for _, ref := range d.refs {
			if !ref.Bidirectional {
				continue
			}
			report.Checked++

			target, err := l.repo.Get(ctx, ref.TargetID)
			if errors.Is(err, ErrNotFound) {
				report.Dangling = append(report.Dangling, DanglingReference{
					ElementID:  e.ID(),
					TargetKind: ref.TargetKind,
					TargetID:   ref.TargetID,
				})
				l.logger.Warn("dangling bidirectional reference",
					"element", e.ID(), "target_kind", ref.TargetKind, "target", ref.TargetID)
				continue
			}
			if err != nil {
				return report, fmt.Errorf("linker: resolving %s: %w", ref.TargetID, err)
			}

			if target.HasReference(e.Kind(), e.ID()) {
				continue
			}
			target.AddReference(e.Kind(), e.ID(), true)
			if err := l.repo.Save(ctx, target); err != nil {
				return report, fmt.Errorf("linker: saving %s: %w", target.ID(), err)
			}
			report.Mirrored++
		}
	}
	return report, nil
}
