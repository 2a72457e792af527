package mapping

import (
	"fmt"

	"ugc-mapper/internal/ugc"
)

//go:generate go tool stringer -type=Strategy,SourceKind -linecomment -output=strategy_string.go

// Strategy is the generation rule applied to one slot.
type Strategy int

const (
	StrategyScalar     Strategy = iota // scalar
	StrategyScalarList                 // scalar_list
	StrategyStruct                     // struct
	StrategyStructList                 // struct_list
	StrategyDict                       // dict
	StrategyIgnore                     // ignore
)

// Classify maps a declared parameter type to its strategy. It is total
// and never returns StrategyIgnore.
func Classify(t ugc.ParamType) Strategy {
	switch {
	case t == ugc.TypeStructList:
		return StrategyStructList
	case t == ugc.TypeDict:
		return StrategyDict
	case t == ugc.TypeStruct:
		return StrategyStruct
	case t.IsList():
		return StrategyScalarList
	default:
		return StrategyScalar
	}
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	for st := StrategyScalar; st <= StrategyIgnore; st++ {
		if st.String() == s {
			return st, nil
		}
	}

	return 0, fmt.Errorf("unknown strategy %q", s)
}

// SourceKind selects where a field mapping reads its raw value.
type SourceKind int

const (
	SourceColumn   SourceKind = iota // column
	SourceRowIndex                   // row_index
	SourceStatic                     // static
)
