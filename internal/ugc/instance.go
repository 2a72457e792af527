package ugc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Top-level keys of an instance document.
const (
	keyStructID = "structId"
	keyType     = "type"
	keyName     = "name"
	keyValue    = "value"
	keyOriginID = "basic_struct_id"
)

// Keys of a slot object.
const (
	keyParamType = "param_type"
	keyKey       = "key"
)

// FlexString is a string that also accepts a JSON number, as structure ids
// are written either way by the platform's exporters.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var str string

		err := json.Unmarshal(data, &str)
		if err != nil {
			return err
		}

		*s = FlexString(str)

		return nil
	}

	var n json.Number

	err := json.Unmarshal(data, &n)
	if err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}

	*s = FlexString(n.String())

	return nil
}

// String returns the underlying string.
func (s FlexString) String() string {
	return string(s)
}

// Instance is a concrete, typed tree of parameter values conforming to a
// structure id. Templates, generated output and definition contents all
// use this shape.
type Instance struct {
	// StructID identifies the structure the instance conforms to.
	StructID FlexString
	// Type is the declared type, "Struct" for every top-level document.
	Type ParamType
	// Name is the optional display name; it also names the output file.
	Name string
	// Fields holds the positional slots ("value" in the document).
	Fields []Slot
	// OriginID is the optional "basic_struct_id" of the document.
	OriginID FlexString
	// Extra keeps unknown top-level keys so they survive a round trip.
	Extra map[string]json.RawMessage
}

// Slot is one positional field of an instance.
type Slot struct {
	// Type is the declared parameter type.
	Type ParamType
	// Key is the optional display name.
	Key string
	// Value is the type-dependent payload, kept verbatim.
	Value json.RawMessage
	// Extra keeps unknown slot keys.
	Extra map[string]json.RawMessage

	// raw is the slot as it was decoded; it is written back verbatim while
	// the slot is unchanged.
	raw json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler.
func (in *Instance) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("instance: %w", err)
	}

	var out Instance

	fields := []struct {
		key string
		dst any
	}{
		{keyStructID, &out.StructID},
		{keyType, &out.Type},
		{keyName, &out.Name},
		{keyValue, &out.Fields},
		{keyOriginID, &out.OriginID},
	}

	for _, f := range fields {
		raw, ok := obj[f.key]
		if !ok {
			continue
		}

		delete(obj, f.key)

		if isNull(raw) {
			continue
		}

		err := json.Unmarshal(raw, f.dst)
		if err != nil {
			return fmt.Errorf("instance %q: %w", f.key, err)
		}
	}

	if len(obj) > 0 {
		out.Extra = obj
	}

	*in = out

	return nil
}

// MarshalJSON implements json.Marshaler. Known keys are written first in
// document order, unknown keys follow sorted by name.
func (in Instance) MarshalJSON() ([]byte, error) {
	var w objectWriter

	w.field(keyStructID, in.StructID)

	if in.Type != "" {
		w.field(keyType, in.Type)
	}

	if in.Name != "" {
		w.field(keyName, in.Name)
	}

	fields := in.Fields
	if fields == nil {
		fields = []Slot{}
	}

	w.field(keyValue, fields)

	if in.OriginID != "" {
		w.field(keyOriginID, in.OriginID)
	}

	w.extra(in.Extra)

	return w.bytes()
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Slot) UnmarshalJSON(data []byte) error {
	out, err := decodeSlot(data)
	if err != nil {
		return err
	}

	out.raw = slices.Clone(bytes.TrimSpace(data))
	*s = out

	return nil
}

func decodeSlot(data []byte) (Slot, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return Slot{}, fmt.Errorf("slot: %w", err)
	}

	var out Slot

	if raw, ok := obj[keyParamType]; ok {
		delete(obj, keyParamType)

		if !isNull(raw) {
			if err := json.Unmarshal(raw, &out.Type); err != nil {
				return Slot{}, fmt.Errorf("slot %q: %w", keyParamType, err)
			}
		}
	}

	if raw, ok := obj[keyKey]; ok {
		delete(obj, keyKey)

		var key FlexString
		if err := json.Unmarshal(raw, &key); err != nil {
			return Slot{}, fmt.Errorf("slot %q: %w", keyKey, err)
		}

		out.Key = key.String()
	}

	if raw, ok := obj[keyValue]; ok {
		delete(obj, keyValue)
		out.Value = slices.Clone(raw)
	}

	if len(obj) > 0 {
		out.Extra = obj
	}

	return out, nil
}

// MarshalJSON implements json.Marshaler. A slot that still matches what it
// was decoded from is written back unchanged, key spelling included.
func (s Slot) MarshalJSON() ([]byte, error) {
	if s.unchanged() {
		return s.raw, nil
	}

	var w objectWriter

	w.field(keyParamType, s.Type)

	if s.Key != "" {
		w.field(keyKey, s.Key)
	}

	if s.Value == nil {
		w.raw(keyValue, json.RawMessage("null"))
	} else {
		w.raw(keyValue, s.Value)
	}

	w.extra(s.Extra)

	return w.bytes()
}

func (s Slot) unchanged() bool {
	if s.raw == nil {
		return false
	}

	orig, err := decodeSlot(s.raw)
	if err != nil {
		return false
	}

	return orig.Type == s.Type &&
		orig.Key == s.Key &&
		bytes.Equal(orig.Value, s.Value) &&
		maps.EqualFunc(orig.Extra, s.Extra, func(a, b json.RawMessage) bool { return bytes.Equal(a, b) })
}

// Clone returns a deep copy that shares no memory with in.
func (in *Instance) Clone() *Instance {
	if in == nil {
		return nil
	}

	out := *in
	out.Extra = cloneRawMap(in.Extra)

	if in.Fields != nil {
		out.Fields = make([]Slot, len(in.Fields))
		for i := range in.Fields {
			out.Fields[i] = in.Fields[i].Clone()
		}
	}

	return &out
}

// Clone returns a deep copy of the slot.
func (s Slot) Clone() Slot {
	s.raw = slices.Clone(s.raw)
	s.Value = slices.Clone(s.Value)
	s.Extra = cloneRawMap(s.Extra)

	return s
}

// DisplayName returns the slot key, or the instance-local placeholder
// "Slot n" (1-based) when the slot carries no key.
func (s Slot) DisplayName(index int) string {
	if s.Key != "" {
		return s.Key
	}

	return fmt.Sprintf("Slot %d", index+1)
}

var errNotObject = errors.New("expected a JSON object")

func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage

	err := json.Unmarshal(data, &obj)
	if err != nil {
		return nil, err
	}

	if obj == nil {
		return nil, errNotObject
	}

	return obj, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func cloneRawMap(m map[string]json.RawMessage) map[string]json.RawMessage {
	if m == nil {
		return nil
	}

	out := make(map[string]json.RawMessage, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}

	return out
}

// Marshal encodes v like json.Marshal but leaves <, > and & unescaped, so
// text copied from a document is written back the way it was read.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// objectWriter writes a JSON object with a caller-controlled key order.
type objectWriter struct {
	buf bytes.Buffer
	n   int
	err error
}

func (w *objectWriter) field(key string, v any) {
	if w.err != nil {
		return
	}

	raw, err := Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("%s: %w", key, err)
		return
	}

	w.raw(key, raw)
}

func (w *objectWriter) raw(key string, raw json.RawMessage) {
	if w.err != nil {
		return
	}

	if w.n == 0 {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte(',')
	}

	k, _ := Marshal(key)
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(raw)
	w.n++
}

func (w *objectWriter) extra(m map[string]json.RawMessage) {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		w.raw(k, m[k])
	}
}

func (w *objectWriter) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	if w.n == 0 {
		return []byte("{}"), nil
	}

	w.buf.WriteByte('}')

	return w.buf.Bytes(), nil
}
