/*
Package pCDM calculates the surface displacements associated with a point
Compound Dislocation Model: a superposition of three mutually orthogonal
point tensile dislocations in an elastic half-space, rotated as a rigid unit.

Based on Mehdi Nikkhoo's work and MATLAB script:
http://volcanodeformation.com/software.html

	Created: 2015.5.22
	Last modified: 2016.10.18
*/
package pCDM

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/volcdef/gopcdm/utils"
)

// State tracks the validity of the backend's stored results relative to its
// inputs. Whenever the backend leaves ResultsReady, the result arrays are
// cleared, so they can never be stale with respect to the recorded state.
type State uint8

const (
	Uninitialized State = iota
	ParametersChanged
	InvalidParameters
	ResultsReady
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case ParametersChanged:
		return "parametersChanged"
	case InvalidParameters:
		return "invalidParameters"
	case ResultsReady:
		return "resultsReady"
	}
	return "unknown"
}

// Backend drives the pCDM displacement computation through a small state
// machine. It is a synchronous, single-threaded component: one instance per
// goroutine, independent instances share nothing.
type Backend struct {
	params     Parameters
	haveParams bool

	x, y []float64

	ue, un, uv []float64

	state   State
	lastErr string

	onStateChange func(State)
}

func NewBackend() *Backend {
	return &Backend{state: Uninitialized}
}

// OnStateChange registers a callback invoked synchronously after the state
// actually changes value. Repeated transitions into the same state do not
// notify. Pass nil to fall back to polling State().
func (bk *Backend) OnStateChange(fn func(State)) {
	bk.onStateChange = fn
}

func (bk *Backend) State() State {
	return bk.state
}

// LastError returns the validation message recorded when the backend entered
// InvalidParameters, or "" if the last transition was not a failure.
func (bk *Backend) LastError() string {
	return bk.lastErr
}

// SetHorizontalCoords replaces the stored observation coordinates. Arrays of
// mismatched length, or empty input, put the backend into InvalidParameters.
func (bk *Backend) SetHorizontalCoords(x, y []float64) {
	bk.x = append([]float64(nil), x...)
	bk.y = append([]float64(nil), y...)
	if len(x) != len(y) {
		bk.lastErr = "Input X, Y must have same size."
		bk.setState(InvalidParameters)
		return
	}
	if len(x) == 0 {
		bk.lastErr = "No input set."
		bk.setState(InvalidParameters)
		return
	}
	bk.lastErr = ""
	bk.setState(ParametersChanged)
}

// SetParameters stores the model parameters. Parameters equal (within
// numeric tolerance) to the current ones are a no-op, so callers can resend
// unchanged settings without discarding results. Invalid source parameters
// put the backend into InvalidParameters with a descriptive LastError.
func (bk *Backend) SetParameters(p Parameters) {
	if bk.haveParams && p.Equals(bk.params) {
		return
	}
	bk.params = p
	bk.haveParams = true
	if ok, msg := p.Source.IsValid(); !ok {
		bk.lastErr = msg
		bk.setState(InvalidParameters)
		return
	}
	bk.lastErr = ""
	bk.setState(ParametersChanged)
}

func (bk *Backend) Parameters() Parameters {
	return bk.params
}

// Run evaluates the model for the stored coordinates and parameters and
// returns the resulting state. It is idempotent: in ResultsReady (nothing to
// do) and InvalidParameters (nothing can be done) it returns immediately.
func (bk *Backend) Run() State {
	switch bk.state {
	case InvalidParameters, ResultsReady:
		return bk.state
	}
	if len(bk.x) != len(bk.y) {
		bk.lastErr = "Input X, Y must have same size."
		bk.setState(InvalidParameters)
		return bk.state
	}
	if len(bk.x) == 0 {
		bk.lastErr = "No input set."
		bk.setState(InvalidParameters)
		return bk.state
	}

	var (
		src   = bk.params.Source
		n     = len(bk.x)
		toRad = math.Pi / 180.
	)
	// Decompose the source orientation into a strike/dip pair per orthogonal
	// PTD. Negated angles encode the clockwise rotation convention.
	R := rotZ(-src.Omega[2] * toRad).
		Mul(rotY(-src.Omega[1] * toRad)).
		Mul(rotX(-src.Omega[0] * toRad))

	ue := make([]float64, n)
	un := make([]float64, n)
	uv := make([]float64, n)
	for i := 0; i < 3; i++ {
		if src.DV[i] == 0 {
			// Zero weight: skip the kernel, and with it any degenerate
			// strike/dip the rotated axis may carry.
			continue
		}
		strike, dipRad := strikeDip(R, i)
		e, nn, v := PTDDispSurf(
			bk.x, bk.y, src.HorizontalCoord, src.Depth,
			strike, dipRad, src.DV[i], bk.params.Nu)
		floats.Add(ue, e)
		floats.Add(un, nn)
		floats.Add(uv, v)
	}

	bk.ue, bk.un, bk.uv = ue, un, uv
	bk.setState(ResultsReady)
	return bk.state
}

// Results returns the displacement components by reference. Valid only in
// ResultsReady; otherwise all three are nil.
func (bk *Backend) Results() (ue, un, uv []float64) {
	return bk.ue, bk.un, bk.uv
}

// TakeResults moves the result arrays out to the caller and demotes the
// backend to ParametersChanged, so a fresh Run is required before results
// can be read again. In any state but ResultsReady it returns nil slices and
// leaves the state alone.
func (bk *Backend) TakeResults() (ue, un, uv []float64) {
	if bk.state != ResultsReady {
		return nil, nil, nil
	}
	ue, un, uv = bk.ue, bk.un, bk.uv
	bk.setState(ParametersChanged)
	return
}

func (bk *Backend) setState(s State) {
	if s != ResultsReady {
		bk.ue, bk.un, bk.uv = nil, nil, nil
	}
	if s == bk.state {
		return
	}
	bk.state = s
	if bk.onStateChange != nil {
		bk.onStateChange(s)
	}
}

// strikeDip derives the orientation of the PTD normal to rotated axis col.
// The strike follows the horizontal projection of the rotated axis; when
// that projection has zero magnitude (axis pointing straight up or down)
// the strike is defined to be 0 rather than left to atan2 of a zero vector.
func strikeDip(R utils.Matrix, col int) (strikeDeg, dipRad float64) {
	vx, vy := -R.At(1, col), R.At(0, col)
	if math.Hypot(vx, vy) > 0 {
		strikeDeg = math.Atan2(vx, vy) * 180. / math.Pi
	}
	dipRad = math.Acos(R.At(2, col))
	return
}

func rotX(a float64) utils.Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return utils.NewMatrix(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

func rotY(a float64) utils.Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return utils.NewMatrix(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

func rotZ(a float64) utils.Matrix {
	c, s := math.Cos(a), math.Sin(a)
	return utils.NewMatrix(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}
