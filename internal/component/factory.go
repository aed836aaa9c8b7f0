package component

import (
	"github.com/eraschle/railnorm/internal/param"
	"github.com/eraschle/railnorm/internal/vocab"
)

// Index is the semantic view a factory derives from: the element's
// mapping from process tag to its most recently attached parameter.
type Index map[vocab.ProcessTag]param.Parameter

// Factory derives location and dimension components from a semantic
// index. Derivation is a pure function of the index and idempotent;
// calling it again on unchanged input yields the same result. A
// component that cannot be derived is simply absent from the result.
//
// References are not derived here: they are declared explicitly by
// subtype construction logic or converters.
type Factory struct{}

// DerivationTags lists every tag whose change requires re-derivation.
var DerivationTags = func() map[vocab.ProcessTag]bool {
	tags := map[vocab.ProcessTag]bool{vocab.TagLength: true}
	groups := [][]vocab.ProcessTag{
		vocab.PositionTags,
		vocab.EndPositionTags,
		vocab.RoundDimensionTags,
		vocab.RectDimensionTags,
		{vocab.TagRotationX, vocab.TagRotationY, vocab.TagRotationZ},
		{vocab.TagRotationXEnd, vocab.TagRotationYEnd, vocab.TagRotationZEnd},
	}
	for _, group := range groups {
		for _, tag := range group {
			tags[tag] = true
		}
	}
	return tags
}()

// Derive computes all derivable components from the index.
func (f Factory) Derive(index Index) []Component {
	var out []Component
	if loc, ok := f.DeriveLocation(index); ok {
		out = append(out, loc)
	}
	if dim, ok := f.DeriveDimension(index); ok {
		out = append(out, dim)
	}
	return out
}

// DeriveLocation builds the location component. At least one of the
// start position tags must be present; if any end position tag exists
// as well, the result is a line, otherwise a point. An index with no
// position tags at all yields no component, never a zero-valued one.
func (f Factory) DeriveLocation(index Index) (Component, bool) {
	if !anyPresent(index, vocab.PositionTags) {
		return nil, false
	}
	start := PointLocation{
		Position: Coordinate{
			X: floatAt(index, vocab.TagCoordX),
			Y: floatAt(index, vocab.TagCoordY),
			Z: floatAt(index, vocab.TagCoordZ),
		},
		Rotation: Rotation{
			X: floatAt(index, vocab.TagRotationX),
			Y: floatAt(index, vocab.TagRotationY),
			Z: floatAt(index, vocab.TagRotationZ),
		},
	}
	if !anyPresent(index, vocab.EndPositionTags) {
		return start, true
	}
	end := PointLocation{
		Position: Coordinate{
			X: floatAt(index, vocab.TagCoordXEnd),
			Y: floatAt(index, vocab.TagCoordYEnd),
			Z: floatAt(index, vocab.TagCoordZEnd),
		},
		Rotation: Rotation{
			X: floatAt(index, vocab.TagRotationXEnd),
			Y: floatAt(index, vocab.TagRotationYEnd),
			Z: floatAt(index, vocab.TagRotationZEnd),
		},
	}
	return LineLocation{Start: start, End: end}, true
}

// DeriveDimension builds the dimension component. A diameter or radius
// tag selects the round variant; otherwise width/height/depth tags
// select the rectangular one. When no length tag exists but the index
// describes a line location, the length is computed from the two end
// points.
func (f Factory) DeriveDimension(index Index) (Component, bool) {
	round := anyPresent(index, vocab.RoundDimensionTags)
	rect := anyPresent(index, vocab.RectDimensionTags)
	if !round && !rect {
		return nil, false
	}

	dim := Dimension{Length: f.deriveLength(index)}
	if round {
		dim.Shape = ShapeRound
		dim.Diameter = floatAt(index, vocab.TagDiameter)
		dim.Radius = floatAt(index, vocab.TagRadius)
		// The two round measures imply each other.
		if dim.Diameter == 0 && dim.Radius != 0 {
			dim.Diameter = dim.Radius * 2
		}
		if dim.Radius == 0 && dim.Diameter != 0 {
			dim.Radius = dim.Diameter / 2
		}
		return dim, true
	}

	dim.Shape = ShapeRectangular
	dim.Width = floatAt(index, vocab.TagWidth)
	dim.Height = floatAt(index, vocab.TagHeight)
	dim.Depth = floatAt(index, vocab.TagDepth)
	return dim, true
}

// deriveLength prefers an explicit length parameter and falls back to
// the geometric length of the line location, if one is derivable.
func (f Factory) deriveLength(index Index) float64 {
	if _, ok := index[vocab.TagLength]; ok {
		return floatAt(index, vocab.TagLength)
	}
	loc, ok := f.DeriveLocation(index)
	if !ok {
		return 0
	}
	if line, isLine := loc.(LineLocation); isLine {
		return line.Length()
	}
	return 0
}

// anyPresent reports whether the index carries any of the given tags.
func anyPresent(index Index, tags []vocab.ProcessTag) bool {
	for _, tag := range tags {
		if _, ok := index[tag]; ok {
			return true
		}
	}
	return false
}

// floatAt reads a tag's numeric value, treating absent or non-numeric
// entries as the neutral value. This is the access-layer default the
// derivation rules rely on once a component's existence is established.
func floatAt(index Index, tag vocab.ProcessTag) float64 {
	p, ok := index[tag]
	if !ok {
		return 0
	}
	v, err := p.Float()
	if err != nil {
		return 0
	}
	return v
}
