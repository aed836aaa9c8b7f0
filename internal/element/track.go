package element

import (
	"fmt"
	"math"

	"github.com/eraschle/railnorm/internal/vocab"
)

// Radius is the curve radius of a track at one of its ends. A straight
// alignment is represented explicitly by the Straight flag; the model
// never stores an infinity sentinel.
type Radius struct {
	Value    float64
	Straight bool
}

// CurvedTrack is a thin accessor wrapper over a curved-track element.
// Kind-specific behavior is composition over the generic aggregate, not
// a subtype.
type CurvedTrack struct {
	*Element
}

// AsCurvedTrack wraps an element with curved-track accessors. Elements
// of any other kind are rejected.
func AsCurvedTrack(e *Element) (CurvedTrack, error) {
	if e.Kind() != KindCurvedTrack {
		return CurvedTrack{}, fmt.Errorf("element %s: kind %s is not a curved track", e.ID(), e.Kind())
	}
	return CurvedTrack{Element: e}, nil
}

// StartRadius returns the curve radius at the track start.
func (c CurvedTrack) StartRadius() Radius {
	return c.radiusAt(vocab.TagRadiusStart)
}

// EndRadius returns the curve radius at the track end.
func (c CurvedTrack) EndRadius() Radius {
	return c.radiusAt(vocab.TagRadiusEnd)
}

// ClothoidParameter returns the clothoid transition parameter and
// whether it is present.
func (c CurvedTrack) ClothoidParameter() (float64, bool) {
	v, err := c.Float(vocab.TagClothoidParameter)
	if err != nil {
		return 0, false
	}
	return v, true
}

// radiusAt maps an absent or infinite radius parameter to the explicit
// straight representation.
func (c CurvedTrack) radiusAt(tag vocab.ProcessTag) Radius {
	v, err := c.Float(tag)
	if err != nil || math.IsInf(v, 0) {
		return Radius{Straight: true}
	}
	return Radius{Value: v}
}
