package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ugc-mapper/internal/mapping"
	"ugc-mapper/internal/ugc"
)

const testTemplate = `{
  "structId": "1077936134",
  "type": "Struct",
  "name": "Level",
  "value": [
    {"param_type": "String", "key": "Title", "value": ""},
    {"param_type": "StringList", "value": []},
    {"param_type": "Float", "value": 0},
    {"param_type": "StructList", "key": "Minions", "value": {"structId": "100", "type": "StructList", "value": []}},
    {"param_type": "Struct", "key": "Boss", "value": {"structId": "100", "type": "Struct", "value": []}},
    {"param_type": "Struct", "key": "Loot", "value": {"structId": "999", "type": "Struct", "value": [
      {"param_type": "Int32", "key": "Gold", "value": 0},
      {"key": "Note", "value": ""}
    ]}},
    {"param_type": "StructList", "key": "Empty", "value": {"structId": "", "value": []}},
    {"param_type": "Dict", "key": "Lookup", "value": {"key_type": "Int32", "value_type": "Bool", "value": []}},
    {"param_type": "Dict", "key": "Plain", "value": {}}
  ]
}`

func parseTemplate(t *testing.T) *ugc.Instance {
	t.Helper()

	tpl, err := ugc.ParseTemplate([]byte(testTemplate))
	require.NoError(t, err)

	return tpl
}

func testRegistry() *ugc.Registry {
	return ugc.NewRegistry(
		&ugc.Definition{
			ID:   "1077936134",
			Name: "Level",
			Content: &ugc.Instance{Fields: []ugc.Slot{
				{Type: ugc.TypeString, Key: "Title"},
				{Type: ugc.TypeStringList, Key: "Tags"},
			}},
		},
		&ugc.Definition{
			ID:   "100",
			Name: "Minion",
			Content: &ugc.Instance{Fields: []ugc.Slot{
				{Type: ugc.TypeString, Key: "Name"},
				{Type: ugc.TypeInt32, Key: "HP"},
			}},
		},
	)
}

func TestDerive(t *testing.T) {
	columns := []string{"Name", " tags ", "Gold"}

	got := Derive(parseTemplate(t), testRegistry(), columns)

	want := []mapping.SlotConfig{
		{SlotIndex: 0, Label: "Title", DeclaredType: ugc.TypeString, Mapping: mapping.ScalarMapping{}},
		{SlotIndex: 1, Label: "Tags", DeclaredType: ugc.TypeStringList, Mapping: mapping.ScalarListMapping{Column: 1}},
		{SlotIndex: 2, Label: "Slot 3", DeclaredType: ugc.TypeFloat, Mapping: mapping.ScalarMapping{}},
		{SlotIndex: 3, Label: "Minions", DeclaredType: ugc.TypeStructList, Mapping: mapping.StructListMapping{
			InnerStructID: "100",
			Fields: []mapping.FieldMapping{
				{TargetType: ugc.TypeString, TargetKey: "Name", Source: mapping.ColumnSource(0)},
				{TargetType: ugc.TypeInt32, TargetKey: "HP", Source: mapping.ColumnSource(0)},
			},
		}},
		{SlotIndex: 4, Label: "Boss", DeclaredType: ugc.TypeStruct, Mapping: mapping.StructMapping{
			InnerStructID: "100",
			Fields: []mapping.FieldMapping{
				{TargetType: ugc.TypeString, TargetKey: "Name", Source: mapping.ColumnSource(0)},
				{TargetType: ugc.TypeInt32, TargetKey: "HP", Source: mapping.StaticSource("")},
			},
		}},
		{SlotIndex: 5, Label: "Loot", DeclaredType: ugc.TypeStruct, Mapping: mapping.StructMapping{
			InnerStructID: "999",
			Fields: []mapping.FieldMapping{
				{TargetType: ugc.TypeInt32, TargetKey: "Gold", Source: mapping.ColumnSource(2)},
				{TargetType: ugc.TypeString, TargetKey: "Note", Source: mapping.StaticSource("")},
			},
		}},
		{SlotIndex: 6, Label: "Empty", DeclaredType: ugc.TypeStructList, Mapping: mapping.StructListMapping{
			Fields: []mapping.FieldMapping{
				{TargetType: ugc.TypeString, Source: mapping.ColumnSource(0)},
			},
		}},
		{SlotIndex: 7, Label: "Lookup", DeclaredType: ugc.TypeDict, Mapping: mapping.DictMapping{
			KeyType:   ugc.TypeInt32,
			ValueType: ugc.TypeBool,
			Key:       mapping.FieldMapping{TargetType: ugc.TypeInt32, Source: mapping.ColumnSource(0)},
			Value:     mapping.FieldMapping{TargetType: ugc.TypeBool, Source: mapping.ColumnSource(1)},
		}},
		{SlotIndex: 8, Label: "Plain", DeclaredType: ugc.TypeDict, Mapping: mapping.DictMapping{
			KeyType:   ugc.TypeString,
			ValueType: ugc.TypeString,
			Key:       mapping.FieldMapping{TargetType: ugc.TypeString, Source: mapping.ColumnSource(0)},
			Value:     mapping.FieldMapping{TargetType: ugc.TypeString, Source: mapping.ColumnSource(1)},
		}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Derive() mismatch (-want +got):\n%s", diff)
	}
}

func TestDerive_NoRegistryNoColumns(t *testing.T) {
	got := Derive(parseTemplate(t), nil, nil)
	require.Len(t, got, 9)

	assert.Equal(t, "Slot 2", got[1].Label)
	assert.Equal(t, mapping.ScalarListMapping{Column: 0}, got[1].Mapping)

	_, fields, ok := mapping.StructFields(got[3].Mapping)
	require.True(t, ok)
	assert.Equal(t, []mapping.FieldMapping{{TargetType: ugc.TypeString, Source: mapping.ColumnSource(0)}}, fields)
}

func TestDerive_NilTemplate(t *testing.T) {
	assert.Nil(t, Derive(nil, testRegistry(), nil))
}

func TestDerive_Idempotent(t *testing.T) {
	tpl := parseTemplate(t)
	reg := testRegistry()
	columns := []string{"Name"}

	first := Derive(tpl, reg, columns)
	second := Derive(tpl, reg, columns)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second Derive() differs (-first +second):\n%s", diff)
	}
}

func TestDeriveIfEmpty(t *testing.T) {
	tpl := parseTemplate(t)
	edited := []mapping.SlotConfig{
		{SlotIndex: 0, Label: "Title", DeclaredType: ugc.TypeString, Mapping: mapping.ScalarMapping{StaticValue: "mine"}},
	}

	got := DeriveIfEmpty(edited, tpl, testRegistry(), nil)
	assert.Equal(t, edited, got)

	got = DeriveIfEmpty(nil, tpl, testRegistry(), nil)
	assert.Len(t, got, len(tpl.Fields))
}

func TestFieldLabel(t *testing.T) {
	def, _ := testRegistry().Get("100")

	assert.Equal(t, "Name", FieldLabel(mapping.FieldMapping{TargetKey: "Other"}, def, 0))
	assert.Equal(t, "Other", FieldLabel(mapping.FieldMapping{TargetKey: "Other"}, def, 5))
	assert.Equal(t, "Field 6", FieldLabel(mapping.FieldMapping{}, def, 5))
	assert.Equal(t, "Field 1", FieldLabel(mapping.FieldMapping{}, nil, 0))
}

func TestSlotLabel(t *testing.T) {
	def, _ := testRegistry().Get("1077936134")

	assert.Equal(t, "Own", SlotLabel(&ugc.Slot{Key: "Own"}, def, 1))
	assert.Equal(t, "Tags", SlotLabel(&ugc.Slot{}, def, 1))
	assert.Equal(t, "Slot 4", SlotLabel(&ugc.Slot{}, def, 3))
}
