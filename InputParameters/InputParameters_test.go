package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var caseYAML = []byte(`
Title: "Reference Case"
XMin: -7.
XMax: 7.
XStep: 0.1
YMin: -5.
YMax: 5.
YStep: 0.1
Position: [0.5, -0.25]
Depth: 2.75
Omega: [5, -8, 30]
DV: [0.00144, 0.00128, 0.00072]
Nu: 0.25
OutputFile: out.csv
`)

func TestCaseParametersParse(t *testing.T) {
	cp := &CaseParameters{}
	require.NoError(t, cp.Parse(caseYAML))
	assert.Equal(t, "Reference Case", cp.Title)
	assert.Equal(t, 0.1, cp.XStep)
	assert.Equal(t, [2]float64{0.5, -0.25}, cp.Position)
	assert.Equal(t, [3]float64{5, -8, 30}, cp.Omega)
	assert.Equal(t, [3]float64{0.00144, 0.00128, 0.00072}, cp.DV)
	assert.Equal(t, 0.25, cp.Nu)
	assert.Equal(t, "out.csv", cp.OutputFile)
	require.NoError(t, cp.Validate())

	p := cp.SourceParameters()
	assert.Equal(t, 2.75, p.Source.Depth)
	assert.Equal(t, 0.25, p.Nu)
	ok, _ := p.Source.IsValid()
	assert.True(t, ok)

	x, y := cp.Grid()
	require.Equal(t, 14241, len(x))
	require.Equal(t, 14241, len(y))
}

func TestCaseParametersValidate(t *testing.T) {
	cp := &CaseParameters{}
	require.NoError(t, cp.Parse(caseYAML))

	bad := *cp
	bad.XStep = 0
	assert.Error(t, bad.Validate())

	bad = *cp
	bad.YMax, bad.YMin = bad.YMin, bad.YMax
	assert.Error(t, bad.Validate())

	bad = *cp
	bad.DV = [3]float64{1, -1, 0}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same sign")

	bad = *cp
	bad.Depth = -1
	assert.Error(t, bad.Validate())
}
