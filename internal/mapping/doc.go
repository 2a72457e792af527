// Package mapping defines per-slot mapping configurations, the strategy
// classification of parameter types, YAML persistence of configuration
// files, and validation of configurations against a template, the
// structure registry and a table.
//
// # Strategies
//
// Every slot type classifies into exactly one strategy:
//
//	StructList  type is exactly "StructList"
//	Dict        type is exactly "Dict"
//	Struct      type is exactly "Struct"
//	ScalarList  type name ends with "List"
//	Scalar      anything else
//
// A slot configuration carries one SlotMapping variant per strategy, each
// holding only what that strategy needs. IgnoreMapping leaves a slot as the
// template has it.
//
// # File format
//
//	version: "1"
//	template: "1077936134"
//	slots:
//	  - slot: 0
//	    label: Title
//	    type: String
//	    strategy: scalar
//	    static: Hello
//	  - slot: 1
//	    label: Tags
//	    type: StringList
//	    strategy: scalar_list
//	    column: 2
//	  - slot: 21
//	    label: Minion
//	    type: StructList
//	    strategy: struct_list
//	    struct_id: "1077936130"
//	    fields:
//	      - {type: String, key: Name, column: 4}
//	      - {type: Int32, key: Order, row_index: true}
//	      - {type: ConfigReference, key: Config, static: "0"}
//	  - slot: 22
//	    label: Lookup
//	    type: Dict
//	    strategy: dict
//	    key_type: String
//	    value_type: Int32
//	    key: {type: String, column: 0}
//	    value: {type: Int32, column: 1}
//
// Each field names exactly one source: column, row_index or static.
package mapping
