package ugc

import "strings"

// ParamType names a primitive or composite parameter type.
// Every list variant is its scalar base name suffixed with "List".
type ParamType string

const (
	TypeString          ParamType = "String"
	TypeStringList      ParamType = "StringList"
	TypeInt32           ParamType = "Int32"
	TypeInt32List       ParamType = "Int32List"
	TypeFloat           ParamType = "Float"
	TypeFloatList       ParamType = "FloatList"
	TypeBool            ParamType = "Bool"
	TypeBoolList        ParamType = "BoolList"
	TypeVector3         ParamType = "Vector3"
	TypeVector3List     ParamType = "Vector3List"
	TypeEntity          ParamType = "Entity"
	TypeEntityList      ParamType = "EntityList"
	TypeGUID            ParamType = "Guid"
	TypeGUIDList        ParamType = "GuidList"
	TypeConfigRef       ParamType = "ConfigReference"
	TypeConfigRefList   ParamType = "ConfigReferenceList"
	TypeEntityRef       ParamType = "EntityReference"
	TypeEntityRefList   ParamType = "EntityReferenceList"
	TypeArmy            ParamType = "Army"
	TypeArmyList        ParamType = "ArmyList"
	TypeStruct          ParamType = "Struct"
	TypeStructList      ParamType = "StructList"
	TypeDict            ParamType = "Dict"
)

const listSuffix = "List"

// IsList reports whether the type name carries the "List" suffix.
func (t ParamType) IsList() bool {
	return strings.HasSuffix(string(t), listSuffix) && len(t) > len(listSuffix)
}

// Base returns the singular type for a list type, or t itself.
// "Int32List" -> "Int32", "StructList" -> "Struct".
func (t ParamType) Base() ParamType {
	if !t.IsList() {
		return t
	}

	return ParamType(strings.TrimSuffix(string(t), listSuffix))
}

// IsInteger reports whether values of the type are emitted as integers.
func (t ParamType) IsInteger() bool {
	switch t {
	case TypeInt32, TypeEntity, TypeGUID, TypeConfigRef, TypeEntityRef, TypeArmy:
		return true
	default:
		return false
	}
}

var typeLabels = map[ParamType]string{
	TypeString:     "string",
	TypeInt32:      "integer",
	TypeFloat:      "float",
	TypeBool:       "boolean",
	TypeVector3:    "3D vector",
	TypeEntity:     "entity",
	TypeGUID:       "GUID",
	TypeConfigRef:  "config ID",
	TypeEntityRef:  "component ID",
	TypeArmy:       "faction",
	TypeStruct:     "struct",
	TypeStructList: "struct list",
	TypeDict:       "dictionary",
}

// Label returns a human readable name for the type, falling back to the
// raw type name for types the platform does not document.
func (t ParamType) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}

	if t.IsList() {
		if l, ok := typeLabels[t.Base()]; ok {
			return l + " list"
		}
	}

	return string(t)
}
