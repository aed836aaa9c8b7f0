package element

import (
	"encoding/json"
	"fmt"

	"github.com/eraschle/railnorm/internal/component"
	"github.com/eraschle/railnorm/internal/param"
	"github.com/eraschle/railnorm/internal/units"
	"github.com/eraschle/railnorm/internal/vocab"
)

// ToDict renders the element in the canonical serialization shape
// consumers persist. Derived components are included for convenience but
// are recomputed, not trusted, when the element is rebuilt.
func (e *Element) ToDict() map[string]any {
	params := make([]map[string]any, 0, len(e.params))
	for _, p := range e.params {
		entry := map[string]any{
			"name":     p.Name,
			"value":    p.Value,
			"datatype": string(p.DataType),
		}
		if p.Process != vocab.TagNone {
			entry["process"] = string(p.Process)
		}
		if p.Unit != units.None && p.Unit != "" {
			entry["unit"] = string(p.Unit)
		}
		params = append(params, entry)
	}

	comps := make(map[string]any, len(e.comps))
	for _, c := range e.comps {
		comps[c.Name()] = renderComponent(c)
	}

	dict := map[string]any{
		"name":         e.name,
		"uuid":         e.id,
		"element_type": string(e.kind),
		"parameters":   params,
	}
	if e.domain != "" {
		dict["domain"] = e.domain
	}
	if len(comps) > 0 {
		dict["components"] = comps
	}
	return dict
}

// MarshalJSON serializes the element via its canonical dict shape.
func (e *Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.ToDict())
}

func renderComponent(c component.Component) map[string]any {
	switch v := c.(type) {
	case component.PointLocation:
		return map[string]any{
			"type":     string(component.TypeLocation),
			"variant":  "point",
			"position": renderCoordinate(v.Position),
			"rotation": renderRotation(v.Rotation),
		}
	case component.LineLocation:
		return map[string]any{
			"type":    string(component.TypeLocation),
			"variant": "line",
			"start": map[string]any{
				"position": renderCoordinate(v.Start.Position),
				"rotation": renderRotation(v.Start.Rotation),
			},
			"end": map[string]any{
				"position": renderCoordinate(v.End.Position),
				"rotation": renderRotation(v.End.Rotation),
			},
			"length": v.Length(),
		}
	case component.Dimension:
		out := map[string]any{
			"type":  string(component.TypeDimension),
			"shape": string(v.Shape),
		}
		if v.Shape == component.ShapeRound {
			out["diameter"] = v.Diameter
			out["radius"] = v.Radius
		} else {
			out["width"] = v.Width
			out["height"] = v.Height
			out["depth"] = v.Depth
		}
		if v.Length != 0 {
			out["length"] = v.Length
		}
		return out
	case component.Reference:
		return map[string]any{
			"type":          string(component.TypeReference),
			"name":          v.RelName,
			"target_kind":   v.TargetKind,
			"target_id":     v.TargetID,
			"bidirectional": v.Bidirectional,
		}
	default:
		return map[string]any{}
	}
}

func renderCoordinate(c component.Coordinate) map[string]any {
	return map[string]any{"x": c.X, "y": c.Y, "z": c.Z}
}

func renderRotation(r component.Rotation) map[string]any {
	return map[string]any{"x": r.X, "y": r.Y, "z": r.Z}
}

// FromDict rebuilds an element from its canonical dict shape. Location
// and dimension components are re-derived from the parameters; reference
// components are restored from the serialized component map.
func FromDict(dict map[string]any) (*Element, error) {
	id, _ := dict["uuid"].(string)
	if id == "" {
		return nil, fmt.Errorf("element dict: missing uuid")
	}
	rawKind, _ := dict["element_type"].(string)
	kind, err := ParseKind(rawKind)
	if err != nil {
		return nil, err
	}
	name, _ := dict["name"].(string)
	domain, _ := dict["domain"].(string)

	e := New(id, name, kind, domain)

	rawParams, _ := dict["parameters"].([]any)
	for _, raw := range rawParams {
		entry, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %s: malformed parameter entry", id)
		}
		p, err := paramFromDict(entry)
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", id, err)
		}
		switch p.Process {
		case vocab.TagUUID, vocab.TagName, vocab.TagElementType, vocab.TagDomain:
			continue
		}
		e.attach(p)
	}

	if rawComps, ok := dict["components"].(map[string]any); ok {
		for _, raw := range rawComps {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if t, _ := entry["type"].(string); t != string(component.TypeReference) {
				continue
			}
			targetKind, _ := entry["target_kind"].(string)
			targetID, _ := entry["target_id"].(string)
			bidi, _ := entry["bidirectional"].(bool)
			parsed, err := ParseKind(targetKind)
			if err != nil {
				return nil, fmt.Errorf("element %s: %w", id, err)
			}
			e.AddReference(parsed, targetID, bidi)
		}
	}

	e.deriveComponents()
	return e, nil
}

func paramFromDict(entry map[string]any) (param.Parameter, error) {
	name, _ := entry["name"].(string)
	rawUnit, _ := entry["unit"].(string)
	unit, err := units.ParseUnit(rawUnit)
	if err != nil {
		return param.Parameter{}, fmt.Errorf("parameter %q: %w", name, err)
	}
	rawType, _ := entry["datatype"].(string)
	rawTag, _ := entry["process"].(string)

	p := param.Parameter{
		Name:     name,
		Value:    entry["value"],
		DataType: vocab.DataType(rawType),
		Process:  vocab.ProcessTag(rawTag),
		Unit:     unit,
	}
	if err := p.Validate(); err != nil {
		return param.Parameter{}, err
	}
	return p, nil
}
