package pCDM

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance used when deciding whether two parameter sets are the same
// source. Numeric drift below this never triggers a recompute.
const equalityTol = 1.e-12

// PointCDMParameters describes a single point compound dislocation source.
type PointCDMParameters struct {
	// Position: easting, northing; same coordinate system and unit as the
	// input x, y coordinates.
	HorizontalCoord [2]float64
	// Positive value for the depth of the point source.
	Depth float64
	// Clockwise rotation about the x, y, z axes in degrees.
	Omega [3]float64
	// Potencies of the PTDs that before applying the rotations are normal to
	// the X, Y and Z axes, respectively. The potency has the unit of volume
	// (the unit of displacements and CDM semi-axes to the power of 3).
	DV [3]float64
}

// IsValid checks the supplied parameters. If they are not valid, a
// user-friendly error message is returned alongside.
func (p PointCDMParameters) IsValid() (ok bool, errorMessage string) {
	if !(p.DV[0] >= 0 && p.DV[1] >= 0 && p.DV[2] >= 0) &&
		!(p.DV[0] <= 0 && p.DV[1] <= 0 && p.DV[2] <= 0) {
		return false, "Potencies (DV x, y, z) must have the same sign."
	}
	if p.Depth < 0 {
		return false, "Depth must be a positive value."
	}
	return true, ""
}

// Equals reports component-wise approximate equality, not byte equality.
func (p PointCDMParameters) Equals(o PointCDMParameters) bool {
	eq := func(a, b float64) bool {
		return scalar.EqualWithinAbsOrRel(a, b, equalityTol, equalityTol)
	}
	for i := range p.HorizontalCoord {
		if !eq(p.HorizontalCoord[i], o.HorizontalCoord[i]) {
			return false
		}
	}
	if !eq(p.Depth, o.Depth) {
		return false
	}
	for i := range p.Omega {
		if !eq(p.Omega[i], o.Omega[i]) {
			return false
		}
	}
	for i := range p.DV {
		if !eq(p.DV[i], o.DV[i]) {
			return false
		}
	}
	return true
}

// Parameters bundles a source with the Poisson's ratio of the half-space.
// Nu is a property of the medium, shared by all sources evaluated against
// the same coordinates.
type Parameters struct {
	Source PointCDMParameters
	Nu     float64
}

func (p Parameters) Equals(o Parameters) bool {
	return p.Source.Equals(o.Source) &&
		scalar.EqualWithinAbsOrRel(p.Nu, o.Nu, equalityTol, equalityTol)
}
