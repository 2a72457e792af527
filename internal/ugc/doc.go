// Package ugc models the documents of the UGC configuration platform:
// parameter type names, structure instances (templates and generated
// output share one shape), structure definitions and the id-indexed
// registry that holds them.
//
// Slot payloads are kept as raw JSON. The mapping engine only rewrites
// the payloads of configured slots, so every other slot survives a
// load/generate/save cycle unchanged.
//
// # Document shapes
//
//	{
//	  "structId": "1077936134",
//	  "type": "Struct",
//	  "name": "...",
//	  "value": [
//	    {"param_type": "String", "value": ""},
//	    {"param_type": "StringList", "value": []},
//	    {"param_type": "Struct", "value": {"structId": "1077936130", "type": "Struct", "value": [...]}},
//	    {"param_type": "StructList", "value": {"structId": "1077936130", "value": [...]}},
//	    {"param_type": "Dict", "value": {"type": "Dict", "key_type": "String", "value_type": "String", "value": []}}
//	  ],
//	  "basic_struct_id": "6e2fd6dc"
//	}
//
// Structure definitions use the same shape; their slots carry a "key"
// display name.
package ugc
