package gen

import (
	"encoding/json"

	"ugc-mapper/internal/mapping"
	"ugc-mapper/internal/table"
	"ugc-mapper/internal/ugc"
)

// resolveFields builds the typed entries of one nested structure.
func resolveFields(row []string, rowIndex int, fields []mapping.FieldMapping) []ugc.Param {
	params := make([]ugc.Param, 0, len(fields))
	for _, fm := range fields {
		params = append(params, ugc.Param{Type: fm.TargetType, Value: Resolve(row, rowIndex, fm)})
	}

	return params
}

func buildStruct(slot *ugc.Slot, tbl *table.Table, m mapping.StructMapping) json.RawMessage {
	params := resolveFields(tbl.Row(0), 0, m.Fields)

	return patchObject(slot, m.InnerStructID, params, func() any {
		return ugc.StructValue{StructID: m.InnerStructID, Type: ugc.TypeStruct, Value: params}
	})
}

func buildStructList(slot *ugc.Slot, tbl *table.Table, m mapping.StructListMapping) json.RawMessage {
	structID := m.InnerStructID
	if structID == "" {
		structID = ugc.DefaultStructID
	}

	entries := make([]ugc.Param, 0, tbl.Len())

	for i := range tbl.Len() {
		entries = append(entries, ugc.Param{
			Type: ugc.TypeStruct,
			Value: ugc.StructValue{
				StructID: structID,
				Type:     ugc.TypeStruct,
				Value:    resolveFields(tbl.Row(i), i, m.Fields),
			},
		})
	}

	return patchObject(slot, m.InnerStructID, entries, func() any {
		return ugc.StructValue{StructID: structID, Type: ugc.TypeStructList, Value: entries}
	})
}

// dictPayload is the default payload written for a Dict slot whose
// template value is not an object.
type dictPayload struct {
	Type      ugc.ParamType   `json:"type"`
	KeyType   ugc.ParamType   `json:"key_type"`
	ValueType ugc.ParamType   `json:"value_type"`
	Value     []ugc.DictEntry `json:"value"`
}

func buildDict(slot *ugc.Slot, tbl *table.Table, m mapping.DictMapping) json.RawMessage {
	keyType, valueType := orString(m.KeyType), orString(m.ValueType)
	entries := make([]ugc.DictEntry, 0, tbl.Len())

	for i := range tbl.Len() {
		row := tbl.Row(i)
		entries = append(entries, ugc.DictEntry{
			Key:   ugc.Param{Type: keyType, Value: Resolve(row, i, m.Key)},
			Value: ugc.Param{Type: valueType, Value: Resolve(row, i, m.Value)},
		})
	}

	obj, ok := slot.Object()
	if !ok {
		return encode(dictPayload{Type: ugc.TypeDict, KeyType: keyType, ValueType: valueType, Value: entries})
	}

	obj[ugc.KeyValue] = encode(entries)
	obj[ugc.KeyKeyType] = encode(keyType)
	obj[ugc.KeyValueType] = encode(valueType)

	return encode(obj)
}

// patchObject replaces the nested "value" of a struct payload and, when
// structID is set, its "structId". Other keys of the template's payload
// are kept. A payload that is not an object is replaced by fallback().
func patchObject(slot *ugc.Slot, structID string, value any, fallback func() any) json.RawMessage {
	obj, ok := slot.Object()
	if !ok {
		return encode(fallback())
	}

	obj[ugc.KeyValue] = encode(value)
	if structID != "" {
		obj[ugc.KeyStructID] = encode(structID)
	}

	return encode(obj)
}

func orString(t ugc.ParamType) ugc.ParamType {
	if t == "" {
		return ugc.TypeString
	}

	return t
}
