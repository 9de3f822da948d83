// SPDX-License-Identifier: MIT

package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// Required header fields per table.
var (
	variableColumns   = []string{"name", "low", "up", "type"}
	objectiveColumns  = []string{"var", "coeff", "sense"}
	constraintColumns = []string{"name", "expr", "sense", "rhs"}
)

// Typed rows. Decoding happens inside loadTable; nothing past this file sees
// raw records.
type (
	variableRow struct {
		line              int
		name, low, up, kt string
	}
	objectiveRow struct {
		line                int
		name, coeff, sense string
	}
	constraintRow struct {
		line                   int
		name, expr, sense, rhs string
	}
)

// columns resolves header names to positions for one record.
type columns struct {
	pos    map[string]int
	fields []string
}

// get returns the trimmed value of col, or "" when the record is short.
func (c columns) get(col string) string {
	i := c.pos[col]
	if i >= len(c.fields) {
		return ""
	}

	return strings.TrimSpace(c.fields[i])
}

func decodeVariable(line int, c columns) variableRow {
	return variableRow{line: line, name: c.get("name"), low: c.get("low"), up: c.get("up"), kt: c.get("type")}
}

func decodeObjective(line int, c columns) objectiveRow {
	return objectiveRow{line: line, name: c.get("var"), coeff: c.get("coeff"), sense: c.get("sense")}
}

func decodeConstraint(line int, c columns) constraintRow {
	return constraintRow{line: line, name: c.get("name"), expr: c.get("expr"), sense: c.get("sense"), rhs: c.get("rhs")}
}

// loadTable reads path, checks the header against required and decodes each
// record with decode. The file is closed on every path.
func loadTable[R any](fsys afero.Fs, path string, comma rune, required []string, decode func(int, columns) R) (rows []R, err error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fail(path, 0, "", fmt.Errorf("%w: %w", ErrUnreadable, err), fmt.Sprintf("cannot open: %v", err))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			rows, err = nil, fail(path, 0, "", fmt.Errorf("%w: %w", ErrUnreadable, cerr), fmt.Sprintf("cannot close: %v", cerr))
		}
	}()

	r := csv.NewReader(f)
	r.Comma = comma
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fail(path, 1, "", ErrMissingColumns,
			fmt.Sprintf("missing header row; expected columns %v", required))
	}
	if err != nil {
		return nil, csvFailure(path, err)
	}

	pos := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}
	var missing []string
	for _, col := range required {
		if _, ok := pos[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fail(path, 1, "", ErrMissingColumns,
			fmt.Sprintf("missing columns %v; expected %v", missing, required))
	}

	for {
		rec, rerr := r.Read()
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return nil, csvFailure(path, rerr)
		}
		line, _ := r.FieldPos(0)
		rows = append(rows, decode(line, columns{pos: pos, fields: rec}))
	}

	return rows, nil
}

// csvFailure converts a reader error to a ParseError, keeping the CSV line.
func csvFailure(path string, err error) *ParseError {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fail(path, pe.Line, "", fmt.Errorf("%w: %w", ErrMalformedCSV, err), pe.Err.Error())
	}

	return fail(path, 0, "", fmt.Errorf("%w: %w", ErrUnreadable, err), err.Error())
}

// parseReal parses a required finite real.
func parseReal(path string, line int, field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fail(path, line, field, ErrBadNumber,
			fmt.Sprintf("expected a finite real number, got %q", raw))
	}

	return v, nil
}
