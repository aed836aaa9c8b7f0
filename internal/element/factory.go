package element

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/eraschle/railnorm/internal/param"
	"github.com/eraschle/railnorm/internal/units"
	"github.com/eraschle/railnorm/internal/vocab"
)

// Description is the raw form a converter hands to the factory: a kind
// tag plus the ordered parameter descriptors mapped from one source
// record.
type Description struct {
	Kind   string
	Domain string
	Source string
	Params []param.Parameter
}

// Factory builds correctly specialized elements from descriptions.
type Factory struct {
	registry *vocab.Registry
	logger   *slog.Logger
}

// NewFactory creates an element factory bound to a tag registry.
func NewFactory(registry *vocab.Registry, logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{registry: registry, logger: logger}
}

// Build constructs an element from a raw description.
//
// Unknown kind tags fail with *UnknownElementKindError. A single
// malformed parameter value is dropped, leaving its tag absent, rather
// than aborting the whole element. Identity, name, kind and domain
// parameters are injected when the description omits them. Reference-
// shaped tags are scanned and declared as references; an unresolvable
// target kind fails with *ReferenceResolutionError. Component derivation
// runs once, after all parameters are attached.
func (f *Factory) Build(desc Description) (*Element, error) {
	clean := f.cleanParams(desc)

	present := make(map[vocab.ProcessTag]bool, len(clean))
	for _, p := range clean {
		if p.Process != vocab.TagNone {
			present[p.Process] = true
		}
	}

	kind, err := ResolveKind(desc.Kind, present)
	if err != nil {
		return nil, err
	}

	id := valueOrDefault(clean, vocab.TagUUID, uuid.NewString())
	name := valueOrDefault(clean, vocab.TagName, fmt.Sprintf("%s-%s", kind, shortID(id)))
	domain := valueOrDefault(clean, vocab.TagDomain, desc.Domain)

	e := New(id, name, kind, domain)
	for _, p := range clean {
		switch p.Process {
		case vocab.TagUUID, vocab.TagName, vocab.TagElementType, vocab.TagDomain:
			// Injected by New from the resolved values.
			continue
		}
		e.attach(p)
	}

	if err := f.declareReferences(e); err != nil {
		return nil, err
	}

	e.deriveComponents()
	return e, nil
}

// cleanParams validates each descriptor, coercing declared-numeric
// string values and dropping malformed ones. Malformed is not fatal at
// the field level.
func (f *Factory) cleanParams(desc Description) []param.Parameter {
	out := make([]param.Parameter, 0, len(desc.Params))
	for _, p := range desc.Params {
		if p.Unit == "" {
			p.Unit = units.None
		}
		if p.IsNumeric() {
			coerced, ok := coerceNumber(p.Value)
			if !ok {
				f.logger.Warn("dropping malformed parameter",
					"source", desc.Source, "field", p.Name, "value", p.Value)
				continue
			}
			p.Value = coerced
		}
		if err := p.Validate(); err != nil {
			f.logger.Warn("dropping invalid parameter",
				"source", desc.Source, "field", p.Name, "error", err)
			continue
		}
		out = append(out, p)
	}
	return out
}

// declareReferences scans the element's parameters for reference-shaped
// tags and declares the corresponding references.
func (f *Factory) declareReferences(e *Element) error {
	for _, p := range e.params {
		if !p.Process.IsReference() {
			continue
		}
		rawKind := p.Process.ReferenceKind()
		targetKind, err := ParseKind(rawKind)
		if err != nil {
			return &ReferenceResolutionError{Tag: p.Process, TargetKind: rawKind}
		}
		targetID, err := p.Text()
		if err != nil || targetID == "" {
			f.logger.Warn("skipping reference with empty target",
				"element", e.ID(), "tag", p.Process)
			continue
		}
		// Reference-shaped tags declare two-way relationships. The
		// backward edge is added by the resolution phase once the
		// whole batch exists, never during construction.
		e.AddReference(targetKind, targetID, true)
	}
	return nil
}

// coerceNumber converts a declared-numeric value to float64, accepting
// numeric strings as clients frequently export numbers as text.
func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(n, ",", ".")), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// valueOrDefault reads a string-valued tag from the descriptors, falling
// back to the given default.
func valueOrDefault(params []param.Parameter, tag vocab.ProcessTag, fallback string) string {
	for i := len(params) - 1; i >= 0; i-- {
		if params[i].Process != tag {
			continue
		}
		if s, err := params[i].Text(); err == nil && s != "" {
			return s
		}
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
