package mapping

import (
	"fmt"

	"ugc-mapper/internal/diagnostic"
	"ugc-mapper/internal/match"
	"ugc-mapper/internal/table"
	"ugc-mapper/internal/ugc"
)

// Diagnostic codes reported by Validate.
const (
	CodeTemplateNil       = "template_is_nil"
	CodeSlotOutOfRange    = "slot_out_of_range"
	CodeStrategyMismatch  = "strategy_mismatch"
	CodeDefinitionMissing = "definition_missing"
	CodeColumnOutOfRange  = "column_out_of_range"
	CodeUnmatchedLabel    = "unmatched_label"
)

// Validate checks a configuration list against a template, the registry
// and a table. Its findings never block generation: out-of-range slots are
// skipped and out-of-range columns resolve to empty cells.
func Validate(configs []SlotConfig, tpl *ugc.Instance, reg *ugc.Registry, tbl *table.Table) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if tpl == nil {
		res.AddError(CodeTemplateNil, "template is nil", "", "")
		return res
	}

	columns := tbl.Header()

	for i := range configs {
		c := &configs[i]
		name := slotName(c)

		if c.SlotIndex < 0 || c.SlotIndex >= len(tpl.Fields) {
			res.AddWarning(CodeSlotOutOfRange,
				fmt.Sprintf("slot index %d is outside the template's %d slots", c.SlotIndex, len(tpl.Fields)),
				name, "")

			continue
		}

		strategy := c.Strategy()
		if strategy == StrategyIgnore {
			continue
		}

		if want := Classify(tpl.Fields[c.SlotIndex].Type); want != strategy {
			res.AddWarning(CodeStrategyMismatch,
				fmt.Sprintf("slot type %s expects strategy %s, configured %s", tpl.Fields[c.SlotIndex].Type, want, strategy),
				name, "")
		}

		switch m := c.Mapping.(type) {
		case ScalarListMapping:
			validateColumn(res, name, "", m.Column, columns)
			validateLabel(res, name, "", c.Label, columns)
		case StructMapping, StructListMapping:
			id, fields, _ := StructFields(m)
			if !reg.Has(id) {
				res.AddWarning(CodeDefinitionMissing,
					fmt.Sprintf("structure definition %q is not in the registry", id), name, "")
			}

			for j := range fields {
				validateField(res, name, fieldName(&fields[j], j), &fields[j], columns)
			}
		case DictMapping:
			validateField(res, name, "key", &m.Key, columns)
			validateField(res, name, "value", &m.Value, columns)
		}
	}

	return res
}

func validateField(res *diagnostic.Diagnostics, slot, field string, fm *FieldMapping, columns []string) {
	if fm.Source.Kind != SourceColumn {
		return
	}

	validateColumn(res, slot, field, fm.Source.Column, columns)

	if fm.TargetKey != "" {
		validateLabel(res, slot, field, fm.TargetKey, columns)
	}
}

func validateColumn(res *diagnostic.Diagnostics, slot, field string, col int, columns []string) {
	if col >= 0 && col < len(columns) {
		return
	}

	res.AddWarning(CodeColumnOutOfRange,
		fmt.Sprintf("column %d is outside the table's %d columns and reads as empty", col, len(columns)),
		slot, field)
}

func validateLabel(res *diagnostic.Diagnostics, slot, field, label string, columns []string) {
	if len(columns) == 0 || match.FindColumn(columns, label) != match.NotFound {
		return
	}

	res.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticInfo,
		Code:        CodeUnmatchedLabel,
		Message:     fmt.Sprintf("no column named %q", label),
		Slot:        slot,
		Field:       field,
		Suggestions: match.Suggest(columns, label, match.DefaultMinScore, match.DefaultMaxSuggestions).Names(),
	})
}

func slotName(c *SlotConfig) string {
	if c.Label != "" {
		return fmt.Sprintf("%d:%s", c.SlotIndex, c.Label)
	}

	return fmt.Sprintf("%d", c.SlotIndex)
}

func fieldName(fm *FieldMapping, i int) string {
	if fm.TargetKey != "" {
		return fm.TargetKey
	}

	return fmt.Sprintf("field %d", i+1)
}
