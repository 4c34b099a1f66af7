package pCDM

import (
	"math"

	"github.com/volcdef/gopcdm/utils"
)

// PTDDispSurf calculates the surface displacements associated with a tensile
// point dislocation (PTD) in an elastic half-space (Okada, 1985).
//
// x and y are the observation coordinates, xy0 the horizontal source
// position, strike is in degrees and dip in radians. dv is the signed potency
// of the dislocation; for a PTD, M0 = dv*mu. nu is the Poisson's ratio of the
// medium.
//
// The function is pure and performs no validation; callers guarantee
// len(x) == len(y). An observation point coinciding with a zero-depth source
// yields non-finite values for that point, a known limitation of the
// analytic solution.
func PTDDispSurf(x, y []float64, xy0 [2]float64, depth, strike, dipRad, dv, nu float64) (ue, un, uv []float64) {
	var (
		n = len(x)
		d = depth
	)
	// Translate to the source position, then rotate into the fault-strike
	// frame so the dislocation algebra sees the plane axis-aligned.
	xt := utils.NewVector(n, x).Copy().AddScalar(-xy0[0])
	yt := utils.NewVector(n, y).Copy().AddScalar(-xy0[1])

	beta := (strike - 90.) * math.Pi / 180.
	Rz := utils.NewMatrix(2, 2, []float64{
		math.Cos(beta), -math.Sin(beta),
		math.Sin(beta), math.Cos(beta),
	})
	XY := utils.NewMatrix(2, n).SetRow(0, xt.DataP()).SetRow(1, yt.DataP())
	AB := Rz.Mul(XY)
	aX := AB.Row(0)
	aY := AB.Row(1)

	var (
		sinDip, cosDip = math.Sin(dipRad), math.Cos(dipRad)
		nuS            = 1. - 2.*nu
	)
	aXSq := aX.Copy().POW(2)
	aYSq := aY.Copy().POW(2)
	r := aXSq.Copy().Add(aYSq).AddScalar(d * d).Apply(math.Sqrt)
	q := aY.Copy().Scale(sinDip).AddScalar(-d * cosDip)

	// Intermediate terms shared between the Okada integrals
	rCb := r.Copy().POW(3)
	rd := r.Copy().AddScalar(d)
	rdSq := rd.Copy().POW(2)
	rdCb := rd.Copy().POW(3)
	r3d := r.Copy().Scale(3).AddScalar(d)
	r2d := r.Copy().Scale(2).AddScalar(d)
	invRRdSq := r.Copy().ElMul(rdSq).Apply(func(val float64) float64 { return 1. / val })
	invRRd := r.Copy().ElMul(rd).Apply(func(val float64) float64 { return 1. / val })

	I1 := invRRdSq.Copy().Subtract(aXSq.Copy().ElMul(r3d).ElDiv(rCb.Copy().ElMul(rdCb))).ElMul(aY).Scale(nuS)
	I2 := invRRdSq.Copy().Subtract(aYSq.Copy().ElMul(r3d).ElDiv(rCb.Copy().ElMul(rdCb))).ElMul(aX).Scale(nuS)
	I3 := aX.Copy().ElDiv(rCb).Scale(nuS).Subtract(I2)
	I5 := invRRd.Subtract(aXSq.Copy().ElMul(r2d).ElDiv(rCb.Copy().ElMul(rdSq))).Scale(nuS)

	sinDipSq := sinDip * sinDip
	q3r5 := q.Copy().POW(2).Scale(3).ElDiv(r.Copy().POW(5))

	// Note: for a PTD M0 = DV*mu
	scale := dv / (2. * math.Pi)
	ueRot := aX.Copy().ElMul(q3r5).Subtract(I3.Copy().Scale(sinDipSq)).Scale(scale)
	unRot := aY.Copy().ElMul(q3r5).Subtract(I1.Copy().Scale(sinDipSq)).Scale(scale)
	uvOut := q3r5.Copy().Scale(d).Subtract(I5.Copy().Scale(sinDipSq)).Scale(scale)

	// Rotate east/north back into the input frame; vertical is invariant.
	UT := utils.NewMatrix(2, n).SetRow(0, ueRot.DataP()).SetRow(1, unRot.DataP())
	EN := Rz.Transpose().Mul(UT)

	ue = EN.Row(0).DataP()
	un = EN.Row(1).DataP()
	uv = uvOut.DataP()
	return
}
