// SPDX-License-Identifier: MIT

// Package parser reads a directory of three delimited tables (variables,
// objective, constraints) and returns a cross-validated *model.Model.
//
// Contract:
//   - Fail-fast: the first violation aborts and is returned as *ParseError
//     carrying file, 1-based line (header = 1), field and reason.
//   - No low-level error escapes unwrapped; sentinels in errors.go are
//     reachable through errors.Is.
//   - The only non-fatal condition is a duplicate constraint name, which is
//     suffixed (name#2, name#3, ...) and reported through the logger.
//
// The tables are read through an afero.Fs (OS filesystem by default) so
// callers and tests may supply in-memory or read-only trees.
package parser

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/katalvlaran/lvlp/model"
)

// ParseDir parses the tables found in dir.
func ParseDir(dir string, opts ...Option) (*model.Model, error) {
	o := gatherOptions(opts...)

	ok, err := afero.DirExists(o.fs, dir)
	if err != nil {
		return nil, fail(dir, 0, "", fmt.Errorf("%w: %w", ErrUnreadable, err), err.Error())
	}
	if !ok {
		return nil, fail(dir, 0, "", ErrDirNotFound, "directory not found")
	}

	varPath, err := requireFile(o.fs, filepath.Join(dir, o.variablesFile))
	if err != nil {
		return nil, err
	}
	objPath, err := firstExisting(o.fs, dir, o.objectiveFiles)
	if err != nil {
		return nil, err
	}
	conPath, err := requireFile(o.fs, filepath.Join(dir, o.constraintsFile))
	if err != nil {
		return nil, err
	}

	m := model.New()

	vrows, err := loadTable(o.fs, varPath, o.comma, variableColumns, decodeVariable)
	if err != nil {
		return nil, err
	}
	if err = addVariables(varPath, vrows, m); err != nil {
		return nil, err
	}

	orows, err := loadTable(o.fs, objPath, o.comma, objectiveColumns, decodeObjective)
	if err != nil {
		return nil, err
	}
	if m.Objective, err = buildObjective(objPath, varPath, orows, m); err != nil {
		return nil, err
	}

	crows, err := loadTable(o.fs, conPath, o.comma, constraintColumns, decodeConstraint)
	if err != nil {
		return nil, err
	}
	if err = addConstraints(conPath, varPath, crows, m, o.logger); err != nil {
		return nil, err
	}

	return m, nil
}

// requireFile checks that path exists and is a regular file.
func requireFile(fsys afero.Fs, path string) (string, error) {
	fi, err := fsys.Stat(path)
	if err != nil || fi.IsDir() {
		return "", fail(path, 0, "", ErrFileNotFound, "file not found")
	}

	return path, nil
}

// firstExisting returns the first candidate under dir that is a regular file.
func firstExisting(fsys afero.Fs, dir string, names []string) (string, error) {
	paths := make([]string, len(names))
	for i, n := range names {
		paths[i] = filepath.Join(dir, n)
		if fi, err := fsys.Stat(paths[i]); err == nil && !fi.IsDir() {
			return paths[i], nil
		}
	}

	return "", fail(dir, 0, "", ErrFileNotFound, fmt.Sprintf("none of %v found", paths))
}
