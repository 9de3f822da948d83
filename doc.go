// Package lvlp turns a directory of CSV tables describing a linear or
// mixed-integer program into dense, index-aligned arrays a solver can consume.
//
// 🚀 What is lvlp?
//
//	A small, pure-Go pipeline in two stages:
//		• Model Parser: variables.csv, objective.csv (or objectives.csv) and
//		  constraints.csv → validated *model.Model, failing fast with a
//		  *parser.ParseError that names file, line, field and reason
//		• Array Builder: *model.Model → *arrays.ArrayModel (objective vector,
//		  bounds, kinds, gonum constraint matrix, operators, right-hand sides)
//
// Solving is a separate concern behind solver.Backend; solver/simplex is a
// pure-Go backend for continuous models built on gonum's LP simplex.
//
// Under the hood the work is split into subpackages:
//
//	model/          — Variable, Objective, Constraint and the ordered Model
//	linexpr/        — affine expression parser ("2*x - y + 3")
//	parser/         — table loading and cross-file validation
//	arrays/         — dense array form + evaluation helpers
//	solver/         — backend contract, bound normalization, results
//	solver/simplex/ — gonum-based LP backend
//	cmd/lvlp/       — command-line front end
//
// Quick example of an input directory:
//
//	variables.csv     name,low,up,type      x,0,10,continuous   y,0,,integer
//	objective.csv     var,coeff,sense       x,3,max             y,2,max
//	constraints.csv   name,expr,sense,rhs   c1,x + y,<=,4
//
// yields variable order [x y], objective [3 2], one row [1 1] "<=" 4.
//
//	go get github.com/katalvlaran/lvlp
package lvlp
