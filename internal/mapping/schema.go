package mapping

import (
	"slices"

	"ugc-mapper/internal/ugc"
)

// File is the root of a YAML mapping configuration file.
type File struct {
	// Version of the file format.
	Version string `yaml:"version,omitempty"`
	// Template is the id of the template the slots belong to.
	Template string `yaml:"template,omitempty"`
	// Slots holds one configuration per configured template slot.
	Slots []SlotConfig `yaml:"slots"`
}

// Source says where a field mapping gets its raw value.
type Source struct {
	Kind SourceKind
	// Column is the table column index for SourceColumn.
	Column int
	// Value is the literal for SourceStatic.
	Value string
}

// ColumnSource binds to table column i.
func ColumnSource(i int) Source {
	return Source{Kind: SourceColumn, Column: i}
}

// RowIndexSource binds to the 0-based row index.
func RowIndexSource() Source {
	return Source{Kind: SourceRowIndex}
}

// StaticSource binds to a fixed literal.
func StaticSource(v string) Source {
	return Source{Kind: SourceStatic, Value: v}
}

// FieldMapping is the rule producing one nested value.
type FieldMapping struct {
	// TargetType is the type the raw value is coerced to.
	TargetType ugc.ParamType
	// TargetKey is the field's display key, used for header matching.
	TargetKey string
	// Source selects the raw value.
	Source Source
}

// SlotConfig configures how one template slot is generated. SlotIndex is
// the stable identity of the configuration across edits.
type SlotConfig struct {
	SlotIndex    int
	Label        string
	DeclaredType ugc.ParamType
	Mapping      SlotMapping
}

// Strategy returns the strategy of the configured variant. A missing
// mapping behaves like IgnoreMapping.
func (c SlotConfig) Strategy() Strategy {
	if c.Mapping == nil {
		return StrategyIgnore
	}

	return c.Mapping.Strategy()
}

// Clone returns a deep copy of the configuration.
func (c SlotConfig) Clone() SlotConfig {
	if c.Mapping != nil {
		c.Mapping = c.Mapping.clone()
	}

	return c
}

// CloneAll deep-copies a configuration list.
func CloneAll(configs []SlotConfig) []SlotConfig {
	if configs == nil {
		return nil
	}

	out := make([]SlotConfig, len(configs))
	for i := range configs {
		out[i] = configs[i].Clone()
	}

	return out
}

// SlotMapping is the strategy-specific part of a slot configuration. The
// set of implementations is closed; switch over them with a type switch.
type SlotMapping interface {
	Strategy() Strategy
	clone() SlotMapping
}

// ScalarMapping sets a single value entered by hand. A lone instance has no
// natural row correspondence, so scalars are never read from the table.
type ScalarMapping struct {
	StaticValue string
}

// ScalarListMapping collects list elements from one column of every row.
type ScalarListMapping struct {
	Column int
}

// StructMapping builds one nested structure from the first table row.
type StructMapping struct {
	InnerStructID string
	Fields        []FieldMapping
}

// StructListMapping builds one nested structure per table row.
type StructListMapping struct {
	InnerStructID string
	Fields        []FieldMapping
}

// DictMapping builds one key/value entry per table row.
type DictMapping struct {
	KeyType   ugc.ParamType
	ValueType ugc.ParamType
	Key       FieldMapping
	Value     FieldMapping
}

// IgnoreMapping leaves the slot exactly as the template has it.
type IgnoreMapping struct{}

func (ScalarMapping) Strategy() Strategy     { return StrategyScalar }
func (ScalarListMapping) Strategy() Strategy { return StrategyScalarList }
func (StructMapping) Strategy() Strategy     { return StrategyStruct }
func (StructListMapping) Strategy() Strategy { return StrategyStructList }
func (DictMapping) Strategy() Strategy       { return StrategyDict }
func (IgnoreMapping) Strategy() Strategy     { return StrategyIgnore }

func (m ScalarMapping) clone() SlotMapping     { return m }
func (m ScalarListMapping) clone() SlotMapping { return m }
func (m DictMapping) clone() SlotMapping       { return m }
func (m IgnoreMapping) clone() SlotMapping     { return m }

func (m StructMapping) clone() SlotMapping {
	m.Fields = slices.Clone(m.Fields)
	return m
}

func (m StructListMapping) clone() SlotMapping {
	m.Fields = slices.Clone(m.Fields)
	return m
}

// StructFields returns the inner structure id and field mappings of a
// Struct or StructList variant.
func StructFields(m SlotMapping) (string, []FieldMapping, bool) {
	switch v := m.(type) {
	case StructMapping:
		return v.InnerStructID, v.Fields, true
	case StructListMapping:
		return v.InnerStructID, v.Fields, true
	default:
		return "", nil, false
	}
}

// WithStructFields returns a copy of a Struct or StructList variant with
// its field list replaced. Other variants are returned unchanged.
func WithStructFields(m SlotMapping, fields []FieldMapping) SlotMapping {
	switch v := m.(type) {
	case StructMapping:
		v.Fields = fields
		return v
	case StructListMapping:
		v.Fields = fields
		return v
	default:
		return m
	}
}
