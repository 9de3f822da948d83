package parser_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const dataDir = "/data"

// Baseline tables: the two-variable model used across tests.
const (
	baseVariables   = "name,low,up,type\nx,0,10,continuous\ny,0,,integer\n"
	baseObjective   = "var,coeff,sense\nx,3,max\ny,2,max\n"
	baseConstraints = "name,expr,sense,rhs\nc1,x + y,<=,4\n"
)

// tables maps file name → content; an empty content omits the file.
type tables map[string]string

// baseTables returns a fresh copy of the baseline directory.
func baseTables() tables {
	return tables{
		"variables.csv":   baseVariables,
		"objective.csv":   baseObjective,
		"constraints.csv": baseConstraints,
	}
}

// with returns a copy with name replaced by content ("" deletes it).
func (tb tables) with(name, content string) tables {
	out := make(tables, len(tb)+1)
	for k, v := range tb {
		out[k] = v
	}
	if content == "" {
		delete(out, name)
	} else {
		out[name] = content
	}

	return out
}

// memFs materializes tb under dataDir in an in-memory filesystem.
func memFs(t *testing.T, tb tables) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(dataDir, 0o755))
	for name, content := range tb {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dataDir, name), []byte(content), 0o644))
	}

	return fs
}
