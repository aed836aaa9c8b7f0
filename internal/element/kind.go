package element

import (
	"github.com/eraschle/railnorm/internal/vocab"
)

// Kind is the element's category tag. It drives subtype resolution and
// which cross-element references are declared automatically.
type Kind string

const (
	KindFoundation    Kind = "foundation"
	KindMast          Kind = "mast"
	KindTrack         Kind = "track"
	KindCurvedTrack   Kind = "curved_track"
	KindJoch          Kind = "joch"
	KindCantilever    Kind = "cantilever"
	KindSleeper       Kind = "sleeper"
	KindDrainagePipe  Kind = "drainage_pipe"
	KindDrainageShaft Kind = "drainage_shaft"
	KindLinear        Kind = "linear"
	KindGeneric       Kind = "generic"
)

// ValidKinds is the set of all known element kinds.
var ValidKinds = []Kind{
	KindFoundation,
	KindMast,
	KindTrack,
	KindCurvedTrack,
	KindJoch,
	KindCantilever,
	KindSleeper,
	KindDrainagePipe,
	KindDrainageShaft,
	KindLinear,
	KindGeneric,
}

// IsValid returns true if the kind is recognized.
func (k Kind) IsValid() bool {
	for _, v := range ValidKinds {
		if k == v {
			return true
		}
	}
	return false
}

// String returns the kind's canonical identifier.
func (k Kind) String() string { return string(k) }

// ParseKind resolves a raw kind tag. Unknown tags fail construction;
// callers needing a fallback must catch the error and decide themselves.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", &UnknownElementKindError{Kind: s}
	}
	return k, nil
}

// ResolveKind resolves a raw kind tag against the shape of the supplied
// parameters, applying the promotion tie-breaks: curve-describing tags
// promote a track to a curved track, and an end-point coordinate
// promotes an otherwise generic kind to a linear element.
func ResolveKind(raw string, tags map[vocab.ProcessTag]bool) (Kind, error) {
	kind, err := ParseKind(raw)
	if err != nil {
		return "", err
	}
	switch kind {
	case KindTrack:
		for _, tag := range vocab.CurveTags {
			if tags[tag] {
				return KindCurvedTrack, nil
			}
		}
	case KindGeneric:
		for _, tag := range vocab.EndPositionTags {
			if tags[tag] {
				return KindLinear, nil
			}
		}
	}
	return kind, nil
}
