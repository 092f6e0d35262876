package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type location struct {
	coordinate, name string
}

func (l location) Coordinate() string    { return l.coordinate }
func (l location) QualifiedName() string { return l.name }

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "full",
			diag: Diagnostic{Code: CodeOptionalDetached, Message: "removed", Coordinate: "B2", QualifiedName: "parent.notes"},
			want: "[B2] parent.notes: [optional-detached] removed",
		},
		{
			name: "message only",
			diag: Diagnostic{Message: "plain"},
			want: "plain",
		},
		{
			name: "coordinate without name",
			diag: Diagnostic{Message: "m", Coordinate: "A1"},
			want: "[A1]: m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestDiagnostics_Add(t *testing.T) {
	var d Diagnostics

	d.AddWarning(CodeBlankTolerated, location{"C1", "other"}, "blank cell for %q", "Other")

	require.Len(t, d.Warnings, 1)
	assert.Equal(t, Diagnostic{
		Severity:      SeverityWarning,
		Code:          CodeBlankTolerated,
		Message:       `blank cell for "Other"`,
		Coordinate:    "C1",
		QualifiedName: "other",
	}, d.Warnings[0])

	d.AddInfo(CodeSkipped, nil, "no location")

	require.Len(t, d.Infos, 1)
	assert.Empty(t, d.Infos[0].Coordinate)
}

func TestDiagnostics_Collect(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo(CodeSkipped, nil, "i")
	d.AddWarning(CodeBlankTolerated, location{"C1", "c"}, "w")
	d.AddError("bad", nil, "e1")
	d.AddError("bad", nil, "e2")

	assert.True(t, d.HasErrors())
	require.Error(t, d.Error())
	assert.Equal(t, "[bad] e1; [bad] e2", d.Error().Error())

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[2].Severity)
	assert.Equal(t, SeverityInfo, all[3].Severity)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddWarning("x", nil, "one")
	b.AddWarning("x", nil, "two")
	b.AddInfo("y", nil, "three")

	a.Merge(b)

	assert.Len(t, a.Warnings, 2)
	assert.Len(t, a.Infos, 1)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
