package plan

import (
	"fmt"

	"ugc-mapper/internal/mapping"
	"ugc-mapper/internal/match"
	"ugc-mapper/internal/ugc"
)

// Derive builds one configuration per template slot. Labels come from the
// slot key, then the template definition's key at the same index, then a
// "Slot n" placeholder. Columns are pre-bound by header name.
func Derive(tpl *ugc.Instance, reg *ugc.Registry, columns []string) []mapping.SlotConfig {
	if tpl == nil {
		return nil
	}

	def, _ := reg.Get(tpl.StructID.String())
	configs := make([]mapping.SlotConfig, 0, len(tpl.Fields))

	for i := range tpl.Fields {
		slot := &tpl.Fields[i]
		label := SlotLabel(slot, def, i)

		configs = append(configs, mapping.SlotConfig{
			SlotIndex:    i,
			Label:        label,
			DeclaredType: slot.Type,
			Mapping:      deriveMapping(slot, label, reg, columns),
		})
	}

	return configs
}

// DeriveIfEmpty returns existing unchanged when it holds any configuration
// and a fresh derivation otherwise, so user edits are never clobbered.
func DeriveIfEmpty(existing []mapping.SlotConfig, tpl *ugc.Instance, reg *ugc.Registry, columns []string) []mapping.SlotConfig {
	if len(existing) > 0 {
		return existing
	}

	return Derive(tpl, reg, columns)
}

// SlotLabel returns the display label of the slot at index i.
func SlotLabel(slot *ugc.Slot, def *ugc.Definition, i int) string {
	if slot.Key != "" {
		return slot.Key
	}

	if key := def.KeyAt(i); key != "" {
		return key
	}

	return fmt.Sprintf("Slot %d", i+1)
}

// FieldLabel returns the display label of a struct field mapping: the
// inner definition's key at the same index, then the target key, then a
// "Field n" placeholder.
func FieldLabel(fm mapping.FieldMapping, def *ugc.Definition, i int) string {
	if key := def.KeyAt(i); key != "" {
		return key
	}

	if fm.TargetKey != "" {
		return fm.TargetKey
	}

	return fmt.Sprintf("Field %d", i+1)
}

func deriveMapping(slot *ugc.Slot, label string, reg *ugc.Registry, columns []string) mapping.SlotMapping {
	switch mapping.Classify(slot.Type) {
	case mapping.StrategyScalarList:
		col := match.FindColumn(columns, label)
		if col == match.NotFound {
			col = 0
		}

		return mapping.ScalarListMapping{Column: col}

	case mapping.StrategyStruct:
		id := slot.InnerStructID()

		return mapping.StructMapping{
			InnerStructID: id,
			Fields:        deriveFields(slot, reg, id, columns, mapping.StaticSource("")),
		}

	case mapping.StrategyStructList:
		id := slot.InnerStructID()

		return mapping.StructListMapping{
			InnerStructID: id,
			Fields:        deriveFields(slot, reg, id, columns, mapping.ColumnSource(0)),
		}

	case mapping.StrategyDict:
		keyType, valueType := slot.DictTypes()

		return mapping.DictMapping{
			KeyType:   keyType,
			ValueType: valueType,
			Key:       mapping.FieldMapping{TargetType: keyType, Source: mapping.ColumnSource(0)},
			Value:     mapping.FieldMapping{TargetType: valueType, Source: mapping.ColumnSource(1)},
		}

	default:
		return mapping.ScalarMapping{}
	}
}

// deriveFields resolves the field shape of a struct slot from the registry,
// falling back to the template's embedded sample and then to one
// placeholder string field.
func deriveFields(slot *ugc.Slot, reg *ugc.Registry, id string, columns []string, fallback mapping.Source) []mapping.FieldMapping {
	var shape []ugc.Slot
	if def, ok := reg.Get(id); ok {
		shape = def.Slots()
	} else {
		shape = slot.SampleFields()
	}

	if len(shape) == 0 {
		return []mapping.FieldMapping{{TargetType: ugc.TypeString, Source: fallback}}
	}

	fields := make([]mapping.FieldMapping, 0, len(shape))

	for _, p := range shape {
		src := fallback
		if col := match.FindColumn(columns, p.Key); col != match.NotFound {
			src = mapping.ColumnSource(col)
		}

		t := p.Type
		if t == "" {
			t = ugc.TypeString
		}

		fields = append(fields, mapping.FieldMapping{TargetType: t, TargetKey: p.Key, Source: src})
	}

	return fields
}
