package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsCollect(t *testing.T) {
	var d Diagnostics

	d.AddWarning("definition_missing", "structure 42 is not registered", "slot 3 (Minions)", "")
	d.AddInfo("unmatched_label", "no column named Tags", "slot 1 (Tags)", "")
	d.Add(Diagnostic{Severity: DiagnosticWarning, Code: "column_out_of_range", Message: "column 5 of 2"})

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())
	assert.Len(t, d.Warnings, 2)
	assert.Len(t, d.All(), 3)
	assert.True(t, d.HasCode("unmatched_label"))
	assert.False(t, d.HasCode("slot_out_of_range"))

	d.AddError("slot_out_of_range", "slot 9 does not exist", "slot 10", "")
	assert.True(t, d.HasErrors())
	require.Error(t, d.Error())
	assert.Equal(t, "[slot 10]: [slot_out_of_range] slot 9 does not exist", d.Error().Error())
}

func TestDiagnosticString(t *testing.T) {
	diag := Diagnostic{
		Code:        "unmatched_label",
		Message:     "no column named Tags",
		Slot:        "slot 2 (Tags)",
		Field:       "Name",
		Suggestions: []string{"Tag", "Tags_"},
	}

	assert.Equal(t,
		"[slot 2 (Tags)] Name: [unmatched_label] no column named Tags (did you mean Tag, Tags_?)",
		diag.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(9).String())
}
