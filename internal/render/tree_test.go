package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ugc-mapper/internal/ugc"
)

func TestTree(t *testing.T) {
	in, err := ugc.ParseTemplate([]byte(`{
	  "structId": "7",
	  "type": "Struct",
	  "name": "Level",
	  "value": [
	    {"param_type": "String", "key": "Title", "value": "Hello"},
	    {"param_type": "StringList", "key": "Tags", "value": ["a", "b"]},
	    {"param_type": "Struct", "key": "Boss", "value": {"structId": "100", "type": "Struct", "value": [
	      {"param_type": "Int32", "value": 5}
	    ]}},
	    {"param_type": "Dict", "value": {"key_type": "String", "value_type": "Int32", "value": [
	      {"key": {"param_type": "String", "value": "k"}, "value": {"param_type": "Int32", "value": 1}}
	    ]}},
	    {"param_type": "Int32List", "key": "Empty", "value": []}
	  ]
	}`))
	require.NoError(t, err)

	want := strings.Join([]string{
		"Level #7",
		`├── Title <String>: "Hello"`,
		"├── Tags <StringList>",
		`│   ├── [0]: "a"`,
		`│   └── [1]: "b"`,
		"├── Boss <Struct> #100",
		"│   └── [0] <Int32>: 5",
		"├── Slot 4 <Dict> {String: Int32}",
		`│   └── [0] "k" => 1`,
		"└── Empty <Int32List>: []",
		"",
	}, "\n")

	assert.Equal(t, want, Tree(in))
}

func TestTreeUnnamed(t *testing.T) {
	in := &ugc.Instance{Type: ugc.TypeStruct, Fields: []ugc.Slot{{Type: ugc.TypeBool}}}

	assert.Equal(t, "Struct\n└── Slot 1 <Bool>: null\n", Tree(in))
	assert.Empty(t, Tree(nil))
}
