package converter

import (
	"sort"
	"strings"

	"github.com/eraschle/railnorm/internal/element"
	"github.com/eraschle/railnorm/internal/param"
	"github.com/eraschle/railnorm/internal/reader"
	"github.com/eraschle/railnorm/internal/units"
	"github.com/eraschle/railnorm/internal/vocab"
)

// synonym binds a lowercase field-name substring to a tag. Longer, more
// specific substrings are tried first.
type synonym struct {
	match string
	tag   vocab.ProcessTag
}

// synonyms is the fallback guessing table for clients that deliver no
// mapping file. German and English survey conventions are covered.
var synonyms = []synonym{
	{"x_end", vocab.TagCoordXEnd},
	{"y_end", vocab.TagCoordYEnd},
	{"z_end", vocab.TagCoordZEnd},
	{"x2", vocab.TagCoordXEnd},
	{"y2", vocab.TagCoordYEnd},
	{"z2", vocab.TagCoordZEnd},
	{"durchmesser", vocab.TagDiameter},
	{"diameter", vocab.TagDiameter},
	{"radius", vocab.TagRadius},
	{"breite", vocab.TagWidth},
	{"width", vocab.TagWidth},
	{"hoehe", vocab.TagHeight},
	{"height", vocab.TagHeight},
	{"tiefe", vocab.TagDepth},
	{"depth", vocab.TagDepth},
	{"laenge", vocab.TagLength},
	{"length", vocab.TagLength},
	{"material", vocab.TagMaterial},
	{"name", vocab.TagName},
	{"bezeichnung", vocab.TagName},
	{"guid", vocab.TagUUID},
	{"uuid", vocab.TagUUID},
	{"gauge", vocab.TagTrackGauge},
	{"spurweite", vocab.TagTrackGauge},
	{"clothoid", vocab.TagClothoidParameter},
	{"klothoid", vocab.TagClothoidParameter},
	{"station", vocab.TagStation},
	{"x", vocab.TagCoordX},
	{"y", vocab.TagCoordY},
	{"z", vocab.TagCoordZ},
}

// GenericConverter guesses tags from a lowercase-substring match on the
// source field name. It is the last-resort converter for unmapped
// clients; projects with a mapping file should prefer MappingConverter.
type GenericConverter struct {
	registry *vocab.Registry
}

// NewGenericConverter builds the fallback converter.
func NewGenericConverter(registry *vocab.Registry) *GenericConverter {
	return &GenericConverter{registry: registry}
}

// Convert maps one record, guessing a tag for each field. Fields no
// synonym matches pass through untagged.
func (c *GenericConverter) Convert(rec reader.RawRecord) (element.Description, error) {
	if err := requireKind(rec); err != nil {
		return element.Description{}, err
	}

	names := make([]string, 0, len(rec.Fields))
	for name := range rec.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make([]param.Parameter, 0, len(names))
	for _, name := range names {
		value := rec.Fields[name]
		tag, ok := c.guess(name)
		if !ok {
			params = append(params, untagged(name, value))
			continue
		}
		def, _ := c.registry.Lookup(tag)
		unit := def.DefaultUnit
		if def.DataType != vocab.TypeNumber {
			unit = units.None
		}
		params = append(params, param.Tagged(name, value, def.DataType, tag, unit))
	}

	return element.Description{
		Kind:   rec.Kind,
		Source: rec.Source,
		Params: params,
	}, nil
}

// guess matches the field name against the synonym table. Exact matches
// win over substring matches so that "x" does not claim "xylophon"
// before an exact "x" column is considered.
func (c *GenericConverter) guess(field string) (vocab.ProcessTag, bool) {
	lower := strings.ToLower(strings.TrimSpace(field))
	// Reference-shaped fields ("<kind>_uuid") carry their tag literally
	// and must not be claimed by the generic uuid synonym.
	if strings.HasSuffix(lower, "_uuid") {
		if tag := vocab.ProcessTag(lower); c.registry.Known(tag) {
			return tag, true
		}
	}
	for _, s := range synonyms {
		if lower == s.match {
			return s.tag, true
		}
	}
	for _, s := range synonyms {
		// Single-letter synonyms only match exactly; substring matching
		// on "x" would claim nearly every field.
		if len(s.match) == 1 {
			continue
		}
		if strings.Contains(lower, s.match) {
			return s.tag, true
		}
	}
	return "", false
}
