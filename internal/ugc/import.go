package ugc

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// ErrParse is wrapped by every import failure caused by malformed input.
var ErrParse = errors.New("parse error")

// Locations of the registry key candidates in a definition document,
// in priority order.
var definitionIDPaths = []jp.Expr{
	jp.MustParseString("$.structId"),
	jp.MustParseString("$.basic_struct_id"),
}

var namePath = jp.MustParseString("$.name")

// ParseDefinition parses a structure definition document. The registry key
// is idOverride when non-empty, else the document's structId, else its
// basic_struct_id, else the file name without extension. The definition
// name is the document's name, else the file name.
func ParseDefinition(data []byte, filename, idOverride string) (*Definition, error) {
	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: structure %s: %v", ErrParse, filename, err)
	}

	if _, ok := doc.(map[string]any); !ok {
		return nil, fmt.Errorf("%w: structure %s: top level is not an object", ErrParse, filename)
	}

	var content Instance
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("%w: structure %s: %v", ErrParse, filename, err)
	}

	base := filepath.Base(filename)

	id := strings.TrimSpace(idOverride)
	for _, x := range definitionIDPaths {
		if id != "" {
			break
		}

		id = scalarString(x.First(doc))
	}

	if id == "" {
		id = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if id == "" {
		return nil, fmt.Errorf("%w: structure %s: cannot determine a structure id", ErrParse, filename)
	}

	name := scalarString(namePath.First(doc))
	if name == "" {
		name = base
	}

	return &Definition{ID: id, Name: name, Content: &content}, nil
}

// ParseTemplate parses a target/template document.
func ParseTemplate(data []byte) (*Instance, error) {
	var in Instance
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%w: template: %v", ErrParse, err)
	}

	return &in, nil
}

// LoadDefinitionFile reads and parses a structure definition file.
func LoadDefinitionFile(path, idOverride string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read structure file %s: %w", path, err)
	}

	return ParseDefinition(data, path, idOverride)
}

// LoadTemplateFile reads and parses a template file.
func LoadTemplateFile(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", path, err)
	}

	in, err := ParseTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// scalarString renders a parsed JSON scalar as a registry key. Empty
// strings, zero numbers, false and non-scalars count as absent.
func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case int64:
		if t == 0 {
			return ""
		}

		return strconv.FormatInt(t, 10)
	case float64:
		if t == 0 {
			return ""
		}

		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		if !t {
			return ""
		}

		return strconv.FormatBool(t)
	default:
		return ""
	}
}
