// Package repository persists canonical elements and runs the second
// phase of reference resolution over complete batches.
package repository

import (
	"context"
	"errors"

	"github.com/eraschle/railnorm/internal/element"
)

// ErrNotFound is returned by Get and Delete when no element carries the
// requested identity.
var ErrNotFound = errors.New("element not found")

// Repository defines element persistence.
type Repository interface {
	// Save inserts or replaces an element by identity.
	Save(ctx context.Context, e *element.Element) error

	// Get retrieves a single element by identity.
	Get(ctx context.Context, id string) (*element.Element, error)

	// List returns all elements in insertion order, optionally filtered
	// by kind.
	List(ctx context.Context, kinds ...element.Kind) ([]*element.Element, error)

	// Delete removes an element by identity. References held by other
	// elements are left untouched; dangling targets are the linker's
	// concern to report.
	Delete(ctx context.Context, id string) error

	// Flush persists pending changes.
	Flush(ctx context.Context) error
}
