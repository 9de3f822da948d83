package main

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlp/arrays"
	"github.com/katalvlaran/lvlp/model"
	"github.com/katalvlaran/lvlp/solver"
)

// report is the YAML document printed on stdout.
type report struct {
	Directory   string             `yaml:"directory"`
	Sense       string             `yaml:"sense"`
	Variables   []variableReport   `yaml:"variables"`
	Constraints []constraintReport `yaml:"constraints"`
	Solution    *solutionReport    `yaml:"solution,omitempty"`
}

type variableReport struct {
	Name  string  `yaml:"name"`
	Kind  string  `yaml:"kind"`
	Lower float64 `yaml:"lower"`
	Upper string  `yaml:"upper"` // "inf" when unbounded
	Cost  float64 `yaml:"cost"`
}

type constraintReport struct {
	Name      string             `yaml:"name"`
	Requested string             `yaml:"requested,omitempty"` // set only when renamed
	Coeffs    map[string]float64 `yaml:"coeffs,flow"`         // nonzero entries only
	Op        string             `yaml:"op"`
	RHS       float64            `yaml:"rhs"`
}

type solutionReport struct {
	Status    string             `yaml:"status"`
	Objective *float64           `yaml:"objective,omitempty"`
	Values    map[string]float64 `yaml:"values,omitempty"`
	Slacks    map[string]float64 `yaml:"slacks,omitempty"`
}

func newReport(dir string, m *model.Model, am *arrays.ArrayModel) *report {
	rep := &report{
		Directory:   dir,
		Sense:       am.Sense.String(),
		Variables:   make([]variableReport, am.NumVariables()),
		Constraints: make([]constraintReport, am.NumConstraints()),
	}
	for j, name := range am.VarNames {
		rep.Variables[j] = variableReport{
			Name:  name,
			Kind:  am.Kinds[j].String(),
			Lower: am.Lower[j],
			Upper: am.Upper[j].String(),
			Cost:  am.Objective[j],
		}
	}

	cons := m.Constraints()
	for i, name := range am.ConstraintNames {
		coeffs := make(map[string]float64)
		for j, a := range am.Row(i) {
			if a != 0 {
				coeffs[am.VarNames[j]] = a
			}
		}
		cr := constraintReport{Name: name, Coeffs: coeffs, Op: am.Ops[i].String(), RHS: am.RHS[i]}
		if cons[i].Renamed() {
			cr.Requested = cons[i].RequestedName
		}
		rep.Constraints[i] = cr
	}

	return rep
}

func newSolutionReport(res *solver.Result) *solutionReport {
	return &solutionReport{
		Status:    res.Status.String(),
		Objective: res.Objective,
		Values:    res.Values,
		Slacks:    res.Slacks,
	}
}

func writeReport(w io.Writer, rep *report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}

	return enc.Close()
}
