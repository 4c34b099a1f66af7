package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/volcdef/gopcdm/pCDM"
	"github.com/volcdef/gopcdm/utils"
)

// Parameters obtained from the YAML case file
type CaseParameters struct {
	Title string `yaml:"Title"`

	// Observation grid: regular steps, inclusive bounds
	XMin  float64 `yaml:"XMin"`
	XMax  float64 `yaml:"XMax"`
	XStep float64 `yaml:"XStep"`
	YMin  float64 `yaml:"YMin"`
	YMax  float64 `yaml:"YMax"`
	YStep float64 `yaml:"YStep"`

	// Source description
	Position [2]float64 `yaml:"Position"` // Easting, northing
	Depth    float64    `yaml:"Depth"`
	Omega    [3]float64 `yaml:"Omega"` // Clockwise rotation about x, y, z in degrees
	DV       [3]float64 `yaml:"DV"`    // Potencies, unit of volume
	Nu       float64    `yaml:"Nu"`    // Poisson's ratio of the half-space

	OutputFile string `yaml:"OutputFile"`
}

func (cp *CaseParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, cp)
}

func (cp *CaseParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("[%g:%g:%g]\t= X range (min:step:max)\n", cp.XMin, cp.XStep, cp.XMax)
	fmt.Printf("[%g:%g:%g]\t= Y range (min:step:max)\n", cp.YMin, cp.YStep, cp.YMax)
	fmt.Printf("(%g, %g)\t= Position (easting, northing)\n", cp.Position[0], cp.Position[1])
	fmt.Printf("%8.5f\t\t= Depth\n", cp.Depth)
	fmt.Printf("%v\t= Omega (deg)\n", cp.Omega)
	fmt.Printf("%v\t= DV (potencies)\n", cp.DV)
	fmt.Printf("%8.5f\t\t= Nu\n", cp.Nu)
}

// Validate checks the grid ranges and the embedded source parameters, using
// the same predicate the backend applies, so a case file that parses and
// validates here will not be rejected downstream.
func (cp *CaseParameters) Validate() error {
	if cp.XStep <= 0 || cp.YStep <= 0 {
		return fmt.Errorf("grid steps must be positive, have XStep = %g, YStep = %g", cp.XStep, cp.YStep)
	}
	if cp.XMax < cp.XMin || cp.YMax < cp.YMin {
		return fmt.Errorf("grid bounds are inverted")
	}
	if ok, msg := cp.SourceParameters().Source.IsValid(); !ok {
		return fmt.Errorf("invalid source parameters: %s", msg)
	}
	return nil
}

func (cp *CaseParameters) SourceParameters() pCDM.Parameters {
	return pCDM.Parameters{
		Source: pCDM.PointCDMParameters{
			HorizontalCoord: cp.Position,
			Depth:           cp.Depth,
			Omega:           cp.Omega,
			DV:              cp.DV,
		},
		Nu: cp.Nu,
	}
}

// Grid expands the configured ranges into flattened observation coordinates,
// x varying slowest.
func (cp *CaseParameters) Grid() (x, y []float64) {
	return utils.MeshGrid2D(cp.XMin, cp.XStep, cp.XMax, cp.YMin, cp.YStep, cp.YMax)
}
