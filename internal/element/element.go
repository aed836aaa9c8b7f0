// Package element holds the aggregate root of the canonical model: the
// infrastructure element, its semantic index, its derived components,
// and the factory that builds correctly specialized elements from raw
// descriptions.
package element

import (
	"github.com/eraschle/railnorm/internal/component"
	"github.com/eraschle/railnorm/internal/param"
	"github.com/eraschle/railnorm/internal/units"
	"github.com/eraschle/railnorm/internal/vocab"
)

// Element is the canonical representation of one infrastructure element.
//
// It owns its parameter list and component map exclusively; other
// elements are linked only by identifier through Reference components.
// Identity is assigned once at construction and never changes; equality
// is defined solely by identity.
type Element struct {
	id     string
	name   string
	kind   Kind
	domain string

	params []param.Parameter
	index  component.Index

	comps   []component.Component
	factory component.Factory
}

// New creates an element with the given identity. The identity, name,
// kind and domain parameters are attached so that the parameter list
// remains the single serializable source of truth.
func New(id, name string, kind Kind, domain string) *Element {
	e := &Element{
		id:     id,
		name:   name,
		kind:   kind,
		domain: domain,
		index:  make(component.Index),
	}
	e.attach(param.Tagged("uuid", id, vocab.TypeIdentifier, vocab.TagUUID, units.None))
	e.attach(param.Tagged("name", name, vocab.TypeString, vocab.TagName, units.None))
	e.attach(param.Tagged("element_type", string(kind), vocab.TypeString, vocab.TagElementType, units.None))
	if domain != "" {
		e.attach(param.Tagged("domain", domain, vocab.TypeString, vocab.TagDomain, units.None))
	}
	return e
}

// ID returns the stable identity.
func (e *Element) ID() string { return e.id }

// Name returns the display name.
func (e *Element) Name() string { return e.name }

// Kind returns the element kind tag.
func (e *Element) Kind() Kind { return e.kind }

// Domain returns the engineering domain tag.
func (e *Element) Domain() string { return e.domain }

// Equal reports identity equality.
func (e *Element) Equal(other *Element) bool {
	return other != nil && e.id == other.id
}

// Params returns a copy of the ordered parameter list.
func (e *Element) Params() []param.Parameter {
	out := make([]param.Parameter, len(e.params))
	copy(out, e.params)
	return out
}

// HasParam reports whether a parameter carrying the tag is attached.
func (e *Element) HasParam(tag vocab.ProcessTag) bool {
	_, ok := e.index[tag]
	return ok
}

// Param returns the most recently attached parameter carrying the tag.
// Absent tags fail with *MissingParameterError; there is no implicit
// default.
func (e *Element) Param(tag vocab.ProcessTag) (param.Parameter, error) {
	p, ok := e.index[tag]
	if !ok {
		return param.Parameter{}, &MissingParameterError{ElementID: e.id, Tag: tag}
	}
	return p, nil
}

// Float returns the tag's value as float64.
func (e *Element) Float(tag vocab.ProcessTag) (float64, error) {
	p, err := e.Param(tag)
	if err != nil {
		return 0, err
	}
	return p.Float()
}

// SetParam upserts the parameter for its tag: any prior parameter with
// the same tag is removed and the new one appended, keeping the index
// the exact projection of the list. Components whose derivation inputs
// include the tag are recomputed.
func (e *Element) SetParam(p param.Parameter) error {
	if p.Process == vocab.TagNone {
		return &MissingParameterError{ElementID: e.id, Tag: vocab.TagNone}
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if _, exists := e.index[p.Process]; exists {
		kept := e.params[:0]
		for _, old := range e.params {
			if old.Process != p.Process {
				kept = append(kept, old)
			}
		}
		e.params = kept
	}
	e.attach(p)
	if component.DerivationTags[p.Process] {
		e.deriveComponents()
	}
	return nil
}

// attach appends a parameter and updates the semantic index, last write
// wins. Untagged parameters extend the list only.
func (e *Element) attach(p param.Parameter) {
	e.params = append(e.params, p)
	if p.Process != vocab.TagNone {
		e.index[p.Process] = p
	}
}

// deriveComponents replaces the derived location and dimension views
// from the current index. Reference components persist untouched.
func (e *Element) deriveComponents() {
	kept := e.comps[:0]
	for _, c := range e.comps {
		if c.Type() == component.TypeReference {
			kept = append(kept, c)
		}
	}
	e.comps = append(kept, e.factory.Derive(e.index)...)
}

// Component returns the component stored under the given name.
func (e *Element) Component(name string) (component.Component, bool) {
	for _, c := range e.comps {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// HasComponent reports whether a component with the name exists.
func (e *Element) HasComponent(name string) bool {
	_, ok := e.Component(name)
	return ok
}

// Components returns all components in insertion order.
func (e *Element) Components() []component.Component {
	out := make([]component.Component, len(e.comps))
	copy(out, e.comps)
	return out
}

// ComponentsByType returns all components of a kind, ordered by
// insertion.
func (e *Element) ComponentsByType(t component.Type) []component.Component {
	var out []component.Component
	for _, c := range e.comps {
		if c.Type() == t {
			out = append(out, c)
		}
	}
	return out
}

// Location returns the location component (point or line). Elements
// without position parameters fail with *MissingComponentError so that
// consumers cannot silently compute with zeros.
func (e *Element) Location() (component.Component, error) {
	c, ok := e.Component("location")
	if !ok {
		return nil, &MissingComponentError{ElementID: e.id, Component: "location"}
	}
	return c, nil
}

// Dimension returns the dimension component.
func (e *Element) Dimension() (component.Dimension, error) {
	c, ok := e.Component("dimension")
	if !ok {
		return component.Dimension{}, &MissingComponentError{ElementID: e.id, Component: "dimension"}
	}
	return c.(component.Dimension), nil
}

// AddReference declares a directed reference to another element. The
// target is recorded by kind and identifier only; it need not exist yet.
// Adding the same target again replaces the earlier declaration.
func (e *Element) AddReference(targetKind Kind, targetID string, bidirectional bool) {
	ref := component.Reference{
		RelName:       string(targetKind),
		TargetKind:    string(targetKind),
		TargetID:      targetID,
		Bidirectional: bidirectional,
	}
	for i, c := range e.comps {
		if c.Name() == ref.Name() {
			e.comps[i] = ref
			return
		}
	}
	e.comps = append(e.comps, ref)
}

// References returns the declared references, optionally filtered by
// target kind.
func (e *Element) References(kinds ...Kind) []component.Reference {
	var out []component.Reference
	for _, c := range e.comps {
		ref, ok := c.(component.Reference)
		if !ok {
			continue
		}
		if len(kinds) == 0 {
			out = append(out, ref)
			continue
		}
		for _, k := range kinds {
			if ref.TargetKind == string(k) {
				out = append(out, ref)
				break
			}
		}
	}
	return out
}

// HasReference reports whether a reference to the given target exists.
func (e *Element) HasReference(targetKind Kind, targetID string) bool {
	for _, ref := range e.References(targetKind) {
		if ref.TargetID == targetID {
			return true
		}
	}
	return false
}
