package mapping

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"ugc-mapper/internal/ugc"
)

// slotYAML is the flat on-disk form of a SlotConfig. Which keys are
// meaningful depends on the strategy.
type slotYAML struct {
	Slot      int           `yaml:"slot"`
	Label     string        `yaml:"label,omitempty"`
	Type      ugc.ParamType `yaml:"type,omitempty"`
	Strategy  string        `yaml:"strategy,omitempty"`
	Static    *string       `yaml:"static,omitempty"`
	Column    *int          `yaml:"column,omitempty"`
	StructID  string        `yaml:"struct_id,omitempty"`
	Fields    []fieldYAML   `yaml:"fields,omitempty"`
	KeyType   ugc.ParamType `yaml:"key_type,omitempty"`
	ValueType ugc.ParamType `yaml:"value_type,omitempty"`
	Key       *fieldYAML    `yaml:"key,omitempty"`
	Value     *fieldYAML    `yaml:"value,omitempty"`
}

// fieldYAML is the on-disk form of a FieldMapping. Exactly one of Column,
// RowIndex and Static must be set.
type fieldYAML struct {
	Type     ugc.ParamType `yaml:"type,omitempty"`
	Key      string        `yaml:"key,omitempty"`
	Column   *int          `yaml:"column,omitempty"`
	RowIndex bool          `yaml:"row_index,omitempty"`
	Static   *string       `yaml:"static,omitempty"`
}

var errNoSource = errors.New("field has no source: expected one of column, row_index, static")

// --- SlotConfig YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for SlotConfig.
// A missing strategy is derived from the declared type.
func (c *SlotConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw slotYAML

	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	strategy := Classify(raw.Type)
	if raw.Strategy != "" {
		strategy, err = ParseStrategy(raw.Strategy)
		if err != nil {
			return fmt.Errorf("slot %d: %w", raw.Slot, err)
		}
	}

	m, err := raw.mapping(strategy)
	if err != nil {
		return fmt.Errorf("slot %d: %w", raw.Slot, err)
	}

	*c = SlotConfig{
		SlotIndex:    raw.Slot,
		Label:        raw.Label,
		DeclaredType: raw.Type,
		Mapping:      m,
	}

	return nil
}

func (raw *slotYAML) mapping(strategy Strategy) (SlotMapping, error) {
	switch strategy {
	case StrategyScalar:
		var v string
		if raw.Static != nil {
			v = *raw.Static
		}

		return ScalarMapping{StaticValue: v}, nil

	case StrategyScalarList:
		var col int
		if raw.Column != nil {
			col = *raw.Column
		}

		return ScalarListMapping{Column: col}, nil

	case StrategyStruct, StrategyStructList:
		fields := make([]FieldMapping, 0, len(raw.Fields))

		for i := range raw.Fields {
			fm, err := raw.Fields[i].fieldMapping()
			if err != nil {
				return nil, fmt.Errorf("field %d: %w", i, err)
			}

			fields = append(fields, fm)
		}

		if strategy == StrategyStruct {
			return StructMapping{InnerStructID: raw.StructID, Fields: fields}, nil
		}

		return StructListMapping{InnerStructID: raw.StructID, Fields: fields}, nil

	case StrategyDict:
		m := DictMapping{
			KeyType:   defaultType(raw.KeyType),
			ValueType: defaultType(raw.ValueType),
			Key:       FieldMapping{Source: ColumnSource(0)},
			Value:     FieldMapping{Source: ColumnSource(1)},
		}

		if raw.Key != nil {
			fm, err := raw.Key.fieldMapping()
			if err != nil {
				return nil, fmt.Errorf("key: %w", err)
			}

			m.Key = fm
		}

		if raw.Value != nil {
			fm, err := raw.Value.fieldMapping()
			if err != nil {
				return nil, fmt.Errorf("value: %w", err)
			}

			m.Value = fm
		}

		if m.Key.TargetType == "" {
			m.Key.TargetType = m.KeyType
		}

		if m.Value.TargetType == "" {
			m.Value.TargetType = m.ValueType
		}

		return m, nil

	default:
		return IgnoreMapping{}, nil
	}
}

func (f *fieldYAML) fieldMapping() (FieldMapping, error) {
	fm := FieldMapping{TargetType: defaultType(f.Type), TargetKey: f.Key}

	set := 0

	if f.Column != nil {
		fm.Source = ColumnSource(*f.Column)
		set++
	}

	if f.RowIndex {
		fm.Source = RowIndexSource()
		set++
	}

	if f.Static != nil {
		fm.Source = StaticSource(*f.Static)
		set++
	}

	switch set {
	case 0:
		return FieldMapping{}, errNoSource
	case 1:
		return fm, nil
	default:
		return FieldMapping{}, fmt.Errorf("field %q has %d sources, expected exactly one", f.Key, set)
	}
}

// MarshalYAML implements custom YAML marshaling for SlotConfig.
func (c SlotConfig) MarshalYAML() (any, error) {
	out := slotYAML{
		Slot:     c.SlotIndex,
		Label:    c.Label,
		Type:     c.DeclaredType,
		Strategy: c.Strategy().String(),
	}

	switch m := c.Mapping.(type) {
	case ScalarMapping:
		out.Static = &m.StaticValue
	case ScalarListMapping:
		out.Column = &m.Column
	case StructMapping:
		out.StructID = m.InnerStructID
		out.Fields = fieldsYAML(m.Fields)
	case StructListMapping:
		out.StructID = m.InnerStructID
		out.Fields = fieldsYAML(m.Fields)
	case DictMapping:
		out.KeyType = m.KeyType
		out.ValueType = m.ValueType
		key, value := toFieldYAML(m.Key), toFieldYAML(m.Value)
		out.Key = &key
		out.Value = &value
	}

	return out, nil
}

func fieldsYAML(fields []FieldMapping) []fieldYAML {
	out := make([]fieldYAML, 0, len(fields))
	for _, f := range fields {
		out = append(out, toFieldYAML(f))
	}

	return out
}

func toFieldYAML(f FieldMapping) fieldYAML {
	out := fieldYAML{Type: f.TargetType, Key: f.TargetKey}

	switch f.Source.Kind {
	case SourceColumn:
		col := f.Source.Column
		out.Column = &col
	case SourceRowIndex:
		out.RowIndex = true
	case SourceStatic:
		v := f.Source.Value
		out.Static = &v
	}

	return out
}

func defaultType(t ugc.ParamType) ugc.ParamType {
	if t == "" {
		return ugc.TypeString
	}

	return t
}
