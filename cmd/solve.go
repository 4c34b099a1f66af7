/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/csv"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/volcdef/gopcdm/InputParameters"
	"github.com/volcdef/gopcdm/pCDM"
)

type ModelSolve struct {
	CaseFile   string
	OutputFile string
	Quiet      bool
	Profile    bool
}

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the pCDM forward model for a YAML case file",
	Long: `
Reads a case file describing the observation grid and the pCDM source,
computes the east/north/vertical surface displacements and writes them as
CSV (x, y, ue, un, uv),

gopcdm solve -I case.yaml -o displacements.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		ms := &ModelSolve{}
		ms.CaseFile, _ = cmd.Flags().GetString("caseFile")
		ms.OutputFile, _ = cmd.Flags().GetString("outputFile")
		ms.Quiet, _ = cmd.Flags().GetBool("quiet")
		ms.Profile, _ = cmd.Flags().GetBool("cpuprofile")
		cp := processInput(ms)
		RunSolve(ms, cp)
	},
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().StringP("caseFile", "I", "", "YAML case file with grid ranges and source parameters")
	SolveCmd.Flags().StringP("outputFile", "o", "", "CSV output file, overrides OutputFile from the case file")
	SolveCmd.Flags().BoolP("quiet", "q", false, "suppress the case parameter listing")
	SolveCmd.Flags().Bool("cpuprofile", false, "write a CPU profile of the solve to the current directory")
}

func processInput(ms *ModelSolve) (cp *InputParameters.CaseParameters) {
	var (
		err error
	)
	if len(ms.CaseFile) == 0 {
		fmt.Printf("error: must supply a case file (-I, --caseFile) in YAML format\n")
		exampleFile := `
########################################
Title: "Test Case"
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
OutputFile: displacements.csv
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(ms.CaseFile); err != nil {
		fmt.Printf("error reading case file: %s\n", err.Error())
		os.Exit(1)
	}
	cp = &InputParameters.CaseParameters{}
	if err = cp.Parse(data); err != nil {
		fmt.Printf("error parsing case file: %s\n", err.Error())
		os.Exit(1)
	}
	if err = cp.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if len(ms.OutputFile) != 0 {
		cp.OutputFile = ms.OutputFile
	}
	return
}

func RunSolve(ms *ModelSolve, cp *InputParameters.CaseParameters) {
	if !ms.Quiet {
		cp.Print()
	}
	if ms.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	x, y := cp.Grid()
	fmt.Printf("Observation points: %d\n", len(x))

	bk := pCDM.NewBackend()
	bk.OnStateChange(func(s pCDM.State) {
		if !ms.Quiet {
			fmt.Printf("backend state -> %s\n", s)
		}
	})
	bk.SetHorizontalCoords(x, y)
	bk.SetParameters(cp.SourceParameters())

	start := time.Now()
	if bk.Run() != pCDM.ResultsReady {
		fmt.Printf("error: %s\n", bk.LastError())
		os.Exit(1)
	}
	fmt.Printf("Solve time: %s\n", time.Since(start))

	ue, un, uv := bk.TakeResults()
	if len(cp.OutputFile) == 0 {
		cp.OutputFile = "displacements.csv"
	}
	if err := writeResults(cp.OutputFile, x, y, ue, un, uv); err != nil {
		fmt.Printf("error writing results: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(x), cp.OutputFile)
}

func writeResults(fileName string, x, y, ue, un, uv []float64) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err = w.Write([]string{"x", "y", "ue", "un", "uv"}); err != nil {
		return err
	}
	fc := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for i := range x {
		if err = w.Write([]string{fc(x[i]), fc(y[i]), fc(ue[i]), fc(un[i]), fc(uv[i])}); err != nil {
			return err
		}
	}
	return nil
}
