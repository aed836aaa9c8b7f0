package converter

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eraschle/railnorm/internal/element"
	"github.com/eraschle/railnorm/internal/param"
	"github.com/eraschle/railnorm/internal/reader"
	"github.com/eraschle/railnorm/internal/units"
	"github.com/eraschle/railnorm/internal/vocab"
)

// FieldMapping binds one source field name to its canonical meaning.
type FieldMapping struct {
	Source   string `yaml:"source"`
	Process  string `yaml:"process"`
	DataType string `yaml:"datatype,omitempty"`
	Unit     string `yaml:"unit,omitempty"`
}

// Mapping is a per-client mapping file: which source fields carry which
// tags, in which units.
type Mapping struct {
	Client string         `yaml:"client"`
	Domain string         `yaml:"domain,omitempty"`
	Fields []FieldMapping `yaml:"fields"`
}

// LoadMapping reads a mapping file.
func LoadMapping(path string) (Mapping, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Mapping{}, fmt.Errorf("mapping: reading %s: %w", path, err)
	}
	var m Mapping
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Mapping{}, fmt.Errorf("mapping: decoding %s: %w", path, err)
	}
	return m, nil
}

// MappingConverter maps records using an explicit per-client field
// mapping. Field names match case-insensitively; fields the mapping does
// not claim pass through untagged.
type MappingConverter struct {
	mapping  Mapping
	registry *vocab.Registry
	bySource map[string]FieldMapping
}

// NewMappingConverter builds a converter from a loaded mapping. Mappings
// naming tags the registry does not know, invalid datatypes or unknown
// units are rejected up front, not record by record.
func NewMappingConverter(m Mapping, registry *vocab.Registry) (*MappingConverter, error) {
	bySource := make(map[string]FieldMapping, len(m.Fields))
	for _, fm := range m.Fields {
		if fm.Source == "" {
			return nil, fmt.Errorf("mapping %s: field with empty source name", m.Client)
		}
		tag := vocab.ProcessTag(fm.Process)
		if !registry.Known(tag) {
			return nil, fmt.Errorf("mapping %s: field %q: unknown process tag %q", m.Client, fm.Source, fm.Process)
		}
		if fm.DataType != "" && !vocab.DataType(fm.DataType).IsValid() {
			return nil, fmt.Errorf("mapping %s: field %q: unknown datatype %q", m.Client, fm.Source, fm.DataType)
		}
		if _, err := units.ParseUnit(fm.Unit); err != nil {
			return nil, fmt.Errorf("mapping %s: field %q: %w", m.Client, fm.Source, err)
		}
		bySource[strings.ToLower(fm.Source)] = fm
	}
	return &MappingConverter{mapping: m, registry: registry, bySource: bySource}, nil
}

// Convert maps one record onto an element description. Field order is
// stable (sorted by source name) so that repeated conversions of the
// same record produce identical descriptions.
func (c *MappingConverter) Convert(rec reader.RawRecord) (element.Description, error) {
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
		fm, ok := c.bySource[strings.ToLower(name)]
		if !ok {
			params = append(params, untagged(name, value))
			continue
		}
		params = append(params, c.tagged(name, value, fm))
	}

	return element.Description{
		Kind:   rec.Kind,
		Domain: c.mapping.Domain,
		Source: rec.Source,
		Params: params,
	}, nil
}

// tagged builds the descriptor for a mapped field, filling datatype and
// unit from the registry definition when the mapping omits them.
func (c *MappingConverter) tagged(name string, value any, fm FieldMapping) param.Parameter {
	tag := vocab.ProcessTag(fm.Process)
	def, _ := c.registry.Lookup(tag)

	dataType := vocab.DataType(fm.DataType)
	if dataType == "" {
		dataType = def.DataType
	}
	unit := units.Unit(fm.Unit)
	if fm.Unit == "" {
		unit = def.DefaultUnit
	}
	if dataType != vocab.TypeNumber {
		unit = units.None
	}
	return param.Tagged(name, value, dataType, tag, unit)
}
