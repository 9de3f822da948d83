// SPDX-License-Identifier: MIT

package lvlp

import (
	"context"

	"github.com/katalvlaran/lvlp/arrays"
	"github.com/katalvlaran/lvlp/model"
	"github.com/katalvlaran/lvlp/parser"
	"github.com/katalvlaran/lvlp/solver"
)

// Load parses the tables in dir and builds their array form.
//
// Errors are either a *parser.ParseError (bad input) or an
// *arrays.InternalError (a builder invariant broke); the two never overlap.
func Load(dir string, opts ...parser.Option) (*model.Model, *arrays.ArrayModel, error) {
	m, err := parser.ParseDir(dir, opts...)
	if err != nil {
		return nil, nil, err
	}
	am, err := arrays.Build(m)
	if err != nil {
		return m, nil, err
	}

	return m, am, nil
}

// Solve loads dir and hands the arrays to b.
func Solve(ctx context.Context, dir string, b solver.Backend, opts ...parser.Option) (*arrays.ArrayModel, *solver.Result, error) {
	_, am, err := Load(dir, opts...)
	if err != nil {
		return nil, nil, err
	}
	res, err := b.Solve(ctx, am)
	if err != nil {
		return am, nil, err
	}

	return am, res, nil
}
