package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	require.NoError(t, d.Error())
	assert.True(t, d.IsValid())

	d.AddError("missing_key", `missing required key "root"`, "generic/bare", "")
	d.AddError("unknown_field", `unknown key "chapter"`, "", "entries[1]", `"chapters"`)
	d.AddWarning("noop", "ignored", "", "")

	assert.True(t, d.HasErrors())
	assert.Equal(t, []string{"missing_key", "unknown_field"}, d.Codes())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`[generic/bare]: [missing_key] missing required key "root"; `+
			`entries[1]: [unknown_field] unknown key "chapter" (did you mean "chapters"?)`,
		err.Error())
}

func TestDiagnostics_Attribute(t *testing.T) {
	var d Diagnostics
	d.AddError("a", "outer", "", "")
	d.AddError("b", "inner", "entry/url", "entries[0]")
	d.AddWarning("c", "warn", "", "")

	d.Attribute("generic/shorthand")

	assert.Equal(t, "generic/shorthand", d.Errors[0].Shape)
	assert.Equal(t, "entry/url", d.Errors[1].Shape)
	assert.Equal(t, "generic/shorthand", d.Warnings[0].Shape)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("x", "x", "", "")
	b.AddError("y", "y", "", "")
	b.AddInfo("z", "z", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Infos, 1)
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
