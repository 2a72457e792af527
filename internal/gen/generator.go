package gen

import (
	"encoding/json"
	"fmt"

	"ugc-mapper/internal/mapping"
	"ugc-mapper/internal/table"
	"ugc-mapper/internal/ugc"
)

// Generate returns a copy of tpl with every configured slot rewritten from
// tbl. The result shares no memory with tpl and always has the template's
// slot count, order, types and keys. Configurations are applied in order,
// so a later configuration for the same slot wins.
func Generate(tpl *ugc.Instance, tbl *table.Table, configs []mapping.SlotConfig) *ugc.Instance {
	out := tpl.Clone()
	if out == nil {
		return nil
	}

	for i := range configs {
		c := &configs[i]
		if c.SlotIndex < 0 || c.SlotIndex >= len(out.Fields) {
			continue
		}

		slot := &out.Fields[c.SlotIndex]

		declared := c.DeclaredType
		if declared == "" {
			declared = slot.Type
		}

		switch m := c.Mapping.(type) {
		case mapping.ScalarMapping:
			slot.Value = encode(Coerce(m.StaticValue, declared))
		case mapping.ScalarListMapping:
			slot.Value = encode(collectList(tbl, m.Column, declared.Base()))
		case mapping.StructMapping:
			slot.Value = buildStruct(slot, tbl, m)
		case mapping.StructListMapping:
			slot.Value = buildStructList(slot, tbl, m)
		case mapping.DictMapping:
			slot.Value = buildDict(slot, tbl, m)
		}
	}

	return out
}

// encode marshals values built from strings, finite numbers and the
// payload types of package ugc, none of which can fail to encode.
func encode(v any) json.RawMessage {
	data, err := ugc.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("gen: encoding %T: %v", v, err))
	}

	return data
}
