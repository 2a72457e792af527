// Package render draws a structure instance as an indented text tree.
package render

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/ohler55/ojg/oj"

	"ugc-mapper/internal/ugc"
)

type node struct {
	label    string
	children []node
}

// Tree renders an instance, one slot per top-level branch:
//
//	Level #1077936134
//	├── Title <String>: "Hello"
//	└── Tags <StringList>
//	    ├── [0]: "a"
//	    └── [1]: "b"
func Tree(in *ugc.Instance) string {
	if in == nil {
		return ""
	}

	root := node{label: rootLabel(in)}

	for i, s := range in.Fields {
		label := fmt.Sprintf("%s <%s>", s.DisplayName(i), s.Type)
		root.children = append(root.children, payloadNode(label, s.Value))
	}

	var sb strings.Builder
	sb.WriteString(root.label)
	sb.WriteString("\n")
	renderTree(&sb, root.children, "")

	return sb.String()
}

func rootLabel(in *ugc.Instance) string {
	name := in.Name
	if name == "" {
		name = string(in.Type)
	}

	if id := in.StructID.String(); id != "" {
		return name + " #" + id
	}

	return name
}

func payloadNode(label string, raw []byte) node {
	if len(raw) == 0 {
		return node{label: label + ": null"}
	}

	v, err := oj.Parse(raw)
	if err != nil {
		return node{label: label + ": " + string(raw)}
	}

	return valueNode(label, v)
}

func valueNode(label string, v any) node {
	switch t := v.(type) {
	case []any:
		if len(t) == 0 {
			return node{label: label + ": []"}
		}

		n := node{label: label}
		for i, e := range t {
			n.children = append(n.children, elemNode(i, e))
		}

		return n

	case map[string]any:
		return objectNode(label, t)

	default:
		return node{label: label + ": " + oj.JSON(v)}
	}
}

// objectNode renders struct and dict payloads by their nested "value"
// list, annotated with the structure id or key/value types.
func objectNode(label string, obj map[string]any) node {
	if id, ok := obj[ugc.KeyStructID]; ok {
		label += " #" + scalar(id)
	}

	kt, hasKT := obj[ugc.KeyKeyType]
	vt, hasVT := obj[ugc.KeyValueType]

	if hasKT || hasVT {
		label += fmt.Sprintf(" {%s: %s}", scalar(kt), scalar(vt))
	}

	if inner, ok := obj[ugc.KeyValue]; ok {
		return valueNode(label, inner)
	}

	n := node{label: label}
	for _, k := range slices.Sorted(maps.Keys(obj)) {
		n.children = append(n.children, valueNode(k, obj[k]))
	}

	return n
}

func elemNode(i int, e any) node {
	label := fmt.Sprintf("[%d]", i)

	obj, ok := e.(map[string]any)
	if !ok {
		return valueNode(label, e)
	}

	if pt, ok := obj["param_type"]; ok {
		if key, ok := obj["key"]; ok {
			label += " " + scalar(key)
		}

		return valueNode(fmt.Sprintf("%s <%s>", label, scalar(pt)), obj[ugc.KeyValue])
	}

	key, hasKey := obj["key"].(map[string]any)
	value, hasValue := obj[ugc.KeyValue].(map[string]any)

	if hasKey && hasValue {
		return node{label: fmt.Sprintf("%s %s => %s", label, oj.JSON(key[ugc.KeyValue]), oj.JSON(value[ugc.KeyValue]))}
	}

	return objectNode(label, obj)
}

func scalar(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return oj.JSON(v)
}

func renderTree(sb *strings.Builder, nodes []node, prefix string) {
	for i, n := range nodes {
		isLast := i == len(nodes)-1

		sb.WriteString(prefix)

		if isLast {
			sb.WriteString("└── ")
		} else {
			sb.WriteString("├── ")
		}

		sb.WriteString(n.label)
		sb.WriteString("\n")

		if len(n.children) > 0 {
			newPrefix := prefix
			if isLast {
				newPrefix += "    "
			} else {
				newPrefix += "│   "
			}

			renderTree(sb, n.children, newPrefix)
		}
	}
}
