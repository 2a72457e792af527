package gen

import (
	"regexp"
	"strconv"
	"strings"

	"ugc-mapper/internal/ugc"
)

// Default values written for empty input.
const (
	DefaultVector3 = "0,0,0"
	BoolTrue       = "True"
	BoolFalse      = "False"
)

var (
	intPrefix   = regexp.MustCompile(`^[+-]?[0-9]+`)
	floatPrefix = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?`)
)

// Coerce converts one raw cell into a value of the given base type.
//
// Integer-like types parse the leading base-10 integer ("12abc" is 12,
// "3.7" is 3) and yield 0 when there is none or it overflows int64. Float
// parses the leading decimal and yields 0 on failure; it is always a bare
// finite number. Bool is the string "True" for "true", "1" or "yes" in any
// case and "False" otherwise. Vector3 passes through with "0,0,0" for
// empty input. Everything else passes through verbatim.
func Coerce(raw string, t ugc.ParamType) any {
	switch {
	case t.IsInteger():
		return parseInt(raw)
	case t == ugc.TypeFloat:
		return parseFloat(raw)
	case t == ugc.TypeBool:
		return parseBool(raw)
	case t == ugc.TypeVector3:
		if raw == "" {
			return DefaultVector3
		}

		return raw
	default:
		return raw
	}
}

func parseInt(raw string) int64 {
	m := intPrefix.FindString(strings.TrimLeft(raw, " \t\r\n"))
	if m == "" {
		return 0
	}

	n, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0
	}

	return n
}

func parseFloat(raw string) float64 {
	m := floatPrefix.FindString(strings.TrimLeft(raw, " \t\r\n"))
	if m == "" {
		return 0
	}

	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}

	return f
}

func parseBool(raw string) string {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return BoolTrue
	default:
		return BoolFalse
	}
}
