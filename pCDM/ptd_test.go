package pCDM

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volcdef/gopcdm/utils"
)

func TestPTDDispSurfLengthPreservation(t *testing.T) {
	x, y := utils.MeshGrid2D(-3, 0.5, 3, -2, 0.5, 2)
	ue, un, uv := PTDDispSurf(x, y, [2]float64{0.3, -0.1}, 2, 35, 1.2, 0.001, 0.25)
	require.Equal(t, len(x), len(ue))
	require.Equal(t, len(x), len(un))
	require.Equal(t, len(x), len(uv))
}

func TestPTDDispSurfPotencyLinearity(t *testing.T) {
	var (
		x, y = utils.MeshGrid2D(-3, 0.5, 3, -2, 0.5, 2)
		xy0  = [2]float64{0.3, -0.1}
	)
	ue1, un1, uv1 := PTDDispSurf(x, y, xy0, 2, 35, 1.2, 0.001, 0.25)
	ue2, un2, uv2 := PTDDispSurf(x, y, xy0, 2, 35, 1.2, 0.002, 0.25)
	for i := range ue1 {
		assert.InEpsilon(t, 2*ue1[i], ue2[i], 1.e-12)
		assert.InEpsilon(t, 2*un1[i], un2[i], 1.e-12)
		assert.InEpsilon(t, 2*uv1[i], uv2[i], 1.e-12)
	}
}

// A horizontal dislocation plane (dip 0) over a source at the origin gives a
// point-symmetric field: east/north flip sign under (x, y) -> (-x, -y) and
// the vertical component is even.
func TestPTDDispSurfHorizontalPlaneSymmetry(t *testing.T) {
	var (
		x = []float64{1.5, -1.5, 0.4, -0.4}
		y = []float64{0.75, -0.75, -2.1, 2.1}
	)
	ue, un, uv := PTDDispSurf(x, y, [2]float64{0, 0}, 3, 20, 0, 0.001, 0.25)
	for i := 0; i < len(x); i += 2 {
		assert.InDelta(t, -ue[i], ue[i+1], 1.e-18)
		assert.InDelta(t, -un[i], un[i+1], 1.e-18)
		assert.InDelta(t, uv[i], uv[i+1], 1.e-18)
	}
}

// With the strike at 90 degrees the rotation into the fault frame is the
// identity and the kernel must reduce to the plain Okada expressions.
func TestPTDDispSurfIdentityRotation(t *testing.T) {
	var (
		px, py         = 1.25, -0.75
		d              = 2.0
		dip            = 0.9
		dv             = 0.0015
		nu             = 0.25
		sinDip, cosDip = math.Sin(dip), math.Cos(dip)
	)
	r := math.Sqrt(px*px + py*py + d*d)
	q := py*sinDip - d*cosDip
	nuS := 1 - 2*nu
	rCb, rd := r*r*r, r+d
	I1 := nuS * py * (1/(r*rd*rd) - px*px*(3*r+d)/(rCb*rd*rd*rd))
	I2 := nuS * px * (1/(r*rd*rd) - py*py*(3*r+d)/(rCb*rd*rd*rd))
	I3 := nuS*px/rCb - I2
	I5 := nuS * (1/(r*rd) - px*px*(2*r+d)/(rCb*rd*rd))
	q3r5 := 3 * q * q / math.Pow(r, 5)
	sc := dv / (2 * math.Pi)

	ue, un, uv := PTDDispSurf([]float64{px}, []float64{py}, [2]float64{0, 0}, d, 90, dip, dv, nu)
	require.InEpsilon(t, sc*(px*q3r5-I3*sinDip*sinDip), ue[0], 1.e-12)
	require.InEpsilon(t, sc*(py*q3r5-I1*sinDip*sinDip), un[0], 1.e-12)
	require.InEpsilon(t, sc*(d*q3r5-I5*sinDip*sinDip), uv[0], 1.e-12)
}

func TestPTDDispSurfDoesNotMutateInputs(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	PTDDispSurf(x, y, [2]float64{0.5, 0.5}, 2, 30, 1, 0.001, 0.25)
	assert.Equal(t, []float64{1, 2, 3}, x)
	assert.Equal(t, []float64{4, 5, 6}, y)
}
