package parser_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlp/model"
	"github.com/katalvlaran/lvlp/parser"
)

// parseWith replaces one table of the baseline and parses it.
func parseWith(t *testing.T, name, content string) (*model.Model, error) {
	t.Helper()

	return parser.ParseDir(dataDir, parser.WithFs(memFs(t, baseTables().with(name, content))))
}

// TestVariableTableErrors walks each rejection of the variables pass.
func TestVariableTableErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    error
		line    int
		field   string
	}{
		{"empty name", "name,low,up,type\n,0,1,int\n", parser.ErrEmptyName, 2, "name"},
		{"duplicate", "name,low,up,type\nx,0,1,\ny,,,\nx,0,2,\n", parser.ErrDuplicateVariable, 4, "name"},
		{"low above up", "name,low,up,type\nx,5,2,continuous\n", parser.ErrBoundOrder, 2, "up"},
		{"bad low", "name,low,up,type\nx,abc,2,\n", parser.ErrBadNumber, 2, "low"},
		{"bad up", "name,low,up,type\nx,0,ten,\n", parser.ErrBadNumber, 2, "up"},
		{"nan low", "name,low,up,type\nx,NaN,,\n", parser.ErrBadNumber, 2, "low"},
		{"plus inf low", "name,low,up,type\nx,inf,,\n", parser.ErrBadNumber, 2, "low"},
		{"minus inf up", "name,low,up,type\nx,,-inf,\n", parser.ErrBadNumber, 2, "up"},
		{"no rows", "name,low,up,type\n", parser.ErrEmptyTable, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseWith(t, "variables.csv", tc.content)
			pe := requireParseError(t, err, tc.want, tc.line)
			require.Equal(t, tc.field, pe.Field)
			require.Contains(t, pe.File, "variables.csv")
		})
	}
}

func TestVariableBoundsAndKinds(t *testing.T) {
	vars := "name,low,up,type\n" +
		"x,,,\n" + // defaults
		"y,-inf,inf,real\n" + // free
		"z,5,10,binary\n" + // declared bounds kept verbatim
		"w,-3,-1,whatever\n" // unknown kind ⇒ continuous
	m, err := parser.ParseDir(dataDir, parser.WithFs(memFs(t, tables{
		"variables.csv":   vars,
		"objective.csv":   "var,coeff,sense\nx,1,min\n",
		"constraints.csv": "name,expr,sense,rhs\nc,x + y + z + w,<=,100\n",
	})))
	require.NoError(t, err)

	x, _ := m.Variable("x")
	require.Equal(t, 0.0, x.Lower)
	require.Equal(t, model.Bound{}, x.Upper)
	require.Equal(t, model.Continuous, x.Kind)

	y, _ := m.Variable("y")
	require.True(t, math.IsInf(y.Lower, -1))
	require.False(t, y.Upper.Set)

	z, _ := m.Variable("z")
	require.Equal(t, model.Binary, z.Kind)
	require.Equal(t, 5.0, z.Lower)
	require.Equal(t, model.Bounded(10), z.Upper)

	w, _ := m.Variable("w")
	require.Equal(t, model.Continuous, w.Kind)
	require.Equal(t, -3.0, w.Lower)
}

func TestObjectiveTableErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    error
		line    int
		field   string
	}{
		{"empty var", "var,coeff,sense\n,1,min\n", parser.ErrEmptyName, 2, "var"},
		{"undeclared", "var,coeff,sense\nq,1,min\n", parser.ErrUnknownVariable, 2, "var"},
		{"missing coeff", "var,coeff,sense\nx,,min\n", parser.ErrBadNumber, 2, "coeff"},
		{"bad coeff", "var,coeff,sense\nx,3x,min\n", parser.ErrBadNumber, 2, "coeff"},
		{"duplicate", "var,coeff,sense\nx,1,min\ny,1,min\nx,2,min\n", parser.ErrDuplicateVariable, 4, "var"},
		{"mixed sense", "var,coeff,sense\nx,1,max\ny,1,min\n", parser.ErrMixedSense, 3, "sense"},
		{"mixed via default", "var,coeff,sense\nx,1,maximize\ny,1,\n", parser.ErrMixedSense, 3, "sense"},
		{"no rows", "var,coeff,sense\n", parser.ErrEmptyTable, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseWith(t, "objective.csv", tc.content)
			pe := requireParseError(t, err, tc.want, tc.line)
			require.Equal(t, tc.field, pe.Field)
		})
	}
}

func TestObjectiveSenseSynonyms(t *testing.T) {
	m, err := parseWith(t, "objective.csv", "var,coeff,sense\nx,1,MAXIMIZE\ny,-2,Max\n")
	require.NoError(t, err)
	require.Equal(t, model.Maximize, m.Objective.Sense)

	m, err = parseWith(t, "objective.csv", "var,coeff,sense\nx,1,upwards\n")
	require.NoError(t, err)
	require.Equal(t, model.Minimize, m.Objective.Sense)
}

func TestConstraintTableErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    error
		line    int
		field   string
	}{
		{"bad operator", "name,expr,sense,rhs\nc,x,<,1\n", parser.ErrBadOperator, 2, "sense"},
		{"missing rhs", "name,expr,sense,rhs\nc,x,<=,\n", parser.ErrBadNumber, 2, "rhs"},
		{"bad rhs", "name,expr,sense,rhs\nc,x,<=,four\n", parser.ErrBadNumber, 2, "rhs"},
		{"bad term", "name,expr,sense,rhs\nc,x + 2*3*y,<=,1\n", parser.ErrBadExpression, 2, "expr"},
		{"empty expr", "name,expr,sense,rhs\nc,,<=,1\n", parser.ErrBadExpression, 2, "expr"},
		{"undeclared", "name,expr,sense,rhs\nok,x,<=,1\nc,x + q,<=,1\n", parser.ErrUnknownVariable, 3, "expr"},
		{"coefficient sum overflows", "name,expr,sense,rhs\nc,1e308x + 1e308x,<=,1\n", parser.ErrBadExpression, 2, "expr"},
		{"moved rhs overflows", "name,expr,sense,rhs\nc,x - 1e308,<=,1e308\n", parser.ErrBadNumber, 2, "rhs"},
		{"no rows", "name,expr,sense,rhs\n", parser.ErrEmptyTable, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseWith(t, "constraints.csv", tc.content)
			pe := requireParseError(t, err, tc.want, tc.line)
			require.Equal(t, tc.field, pe.Field)
		})
	}
}

// TestConstantMigration checks RHS = rawRHS - constant and that substituting a
// point gives the same truth value for the raw and the stored row.
func TestConstantMigration(t *testing.T) {
	m, err := parseWith(t, "constraints.csv", "name,expr,sense,rhs\nc,2*x + y + 3 - 1,>=,10\n")
	require.NoError(t, err)

	c := m.Constraints()[0]
	require.Equal(t, 10.0, c.RawRHS)
	require.Equal(t, 2.0, c.MovedConstant)
	require.Equal(t, 8.0, c.RHS)
	require.Equal(t, model.GreaterEqual, c.Op)
	require.Equal(t, "2*x + y + 3 - 1", c.Expr)

	for _, pt := range []map[string]float64{{"x": 3, "y": 2}, {"x": 3, "y": 1}, {"x": 0, "y": 0}} {
		raw := 2*pt["x"] + pt["y"] + 3 - 1
		require.Equal(t, raw >= 10, c.Satisfied(pt, 0), "point %v", pt)
	}
}

// TestConstraintNaming covers generated names, suffixing and operator spellings.
func TestConstraintNaming(t *testing.T) {
	rows := "name,expr,sense,rhs\n" +
		"cap,x,≤,1\n" +
		",y,≥,0\n" +
		"cap,x + y,==,2\n" +
		"cap#2,y,=,1\n" +
		"cap,x,<=,3\n"
	m, err := parseWith(t, "constraints.csv", rows)
	require.NoError(t, err)

	cs := m.Constraints()
	require.Len(t, cs, 5)

	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	require.Equal(t, []string{"cap", "c_3", "cap#2", "cap#2#2", "cap#3"}, names)

	require.False(t, cs[0].Renamed())
	require.Equal(t, "c_3", cs[1].RequestedName)
	require.True(t, cs[2].Renamed())
	require.Equal(t, "cap", cs[2].RequestedName)
	require.Equal(t, "cap#2", cs[3].RequestedName)
	require.Equal(t, "cap", cs[4].RequestedName)

	require.Equal(t, model.LessEqual, cs[0].Op)
	require.Equal(t, model.GreaterEqual, cs[1].Op)
	require.Equal(t, model.Equal, cs[2].Op)
	require.Equal(t, model.Equal, cs[3].Op)
}

// TestReferencesResolve: every referenced name exists after a successful parse.
func TestReferencesResolve(t *testing.T) {
	m, err := parser.ParseDir(dataDir, parser.WithFs(memFs(t, baseTables())))
	require.NoError(t, err)
	for name := range m.Objective.Coeffs {
		require.True(t, m.HasVariable(name))
	}
	for _, c := range m.Constraints() {
		for name := range c.Coeffs {
			require.True(t, m.HasVariable(name))
		}
	}
}
