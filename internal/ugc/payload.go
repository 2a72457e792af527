package ugc

import "encoding/json"

// Keys of composite payload objects.
const (
	KeyStructID  = keyStructID
	KeyType      = keyType
	KeyValue     = keyValue
	KeyKeyType   = "key_type"
	KeyValueType = "value_type"
)

// DefaultStructID is written into generated struct-list entries whose
// inner structure id is unknown.
const DefaultStructID = "0"

// Param is one typed value inside a struct or dictionary payload.
type Param struct {
	Type  ParamType `json:"param_type"`
	Value any       `json:"value"`
}

// StructValue is the payload of a Struct slot and of each struct-list entry.
type StructValue struct {
	StructID string    `json:"structId"`
	Type     ParamType `json:"type"`
	Value    []Param   `json:"value"`
}

// DictEntry is one key/value pair of a Dict payload.
type DictEntry struct {
	Key   Param `json:"key"`
	Value Param `json:"value"`
}

// Object decodes the slot payload as a JSON object. The second result is
// false when the payload is missing, null or not an object.
func (s Slot) Object() (map[string]json.RawMessage, bool) {
	if len(s.Value) == 0 {
		return nil, false
	}

	obj, err := decodeObject(s.Value)
	if err != nil {
		return nil, false
	}

	return obj, true
}

// InnerStructID returns the structure id embedded in a Struct or StructList
// payload, or "" when there is none.
func (s Slot) InnerStructID() string {
	obj, ok := s.Object()
	if !ok {
		return ""
	}

	var id FlexString
	if raw, ok := obj[keyStructID]; ok {
		_ = json.Unmarshal(raw, &id)
	}

	return id.String()
}

// DictTypes returns the key and value types declared by a Dict payload.
// Missing or empty declarations default to String.
func (s Slot) DictTypes() (ParamType, ParamType) {
	keyType, valueType := TypeString, TypeString

	obj, ok := s.Object()
	if !ok {
		return keyType, valueType
	}

	var t ParamType
	if raw, ok := obj[KeyKeyType]; ok && json.Unmarshal(raw, &t) == nil && t != "" {
		keyType = t
	}

	t = ""
	if raw, ok := obj[KeyValueType]; ok && json.Unmarshal(raw, &t) == nil && t != "" {
		valueType = t
	}

	return keyType, valueType
}

// SampleFields returns the field list embedded in a Struct payload. For a
// StructList payload it returns the fields of the first embedded entry.
// Entries that are not slot objects are skipped.
func (s Slot) SampleFields() []Slot {
	obj, ok := s.Object()
	if !ok {
		return nil
	}

	items := decodeSlots(obj[keyValue])
	if len(items) == 0 {
		return nil
	}

	first := items[0]
	if s.Type != TypeStructList || first.Type != TypeStruct {
		return items
	}

	inner, ok := first.Object()
	if !ok {
		return items
	}

	if nested := decodeSlots(inner[keyValue]); len(nested) > 0 {
		return nested
	}

	return items
}

func decodeSlots(raw json.RawMessage) []Slot {
	if len(raw) == 0 {
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}

	out := make([]Slot, 0, len(elems))

	for _, e := range elems {
		var slot Slot
		if err := json.Unmarshal(e, &slot); err != nil {
			continue
		}

		out = append(out, slot)
	}

	return out
}
