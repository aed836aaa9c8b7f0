package element

import (
	"fmt"

	"github.com/eraschle/railnorm/internal/vocab"
)

// MissingParameterError is returned when a requested tag is absent from
// an element's semantic index. The core never substitutes defaults for
// missing parameters; callers needing one check HasParam first.
type MissingParameterError struct {
	ElementID string
	Tag       vocab.ProcessTag
}

// Error implements the error interface.
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("element %s: no parameter tagged %q", e.ElementID, e.Tag)
}

// MissingComponentError is returned when a requested derived view does
// not exist on the element.
type MissingComponentError struct {
	ElementID string
	Component string
}

// Error implements the error interface.
func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("element %s: no %s component", e.ElementID, e.Component)
}

// UnknownElementKindError is returned when construction is given a kind
// tag that does not resolve to a known element kind.
type UnknownElementKindError struct {
	Kind string
}

// Error implements the error interface.
func (e *UnknownElementKindError) Error() string {
	return fmt.Sprintf("unknown element kind %q", e.Kind)
}

// ReferenceResolutionError is returned when a reference-shaped tag's
// target kind cannot be resolved to a known element kind.
type ReferenceResolutionError struct {
	Tag        vocab.ProcessTag
	TargetKind string
}

// Error implements the error interface.
func (e *ReferenceResolutionError) Error() string {
	return fmt.Sprintf("reference tag %q: target kind %q is not a known element kind", e.Tag, e.TargetKind)
}
