// Package dataio reads the catalog and order source files into the core's
// record types and writes the result tables back out. It owns the
// required-column checks; the core never sees a malformed table.
package dataio

import (
	"fmt"
	"strconv"
	"strings"

	"pedidocalc/pkg/catalog"
)

// MissingColumnError reports a required column absent from an input table.
// It aborts the run before any computation happens.
type MissingColumnError struct {
	Source string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column in %s: %s", e.Source, e.Column)
}

// headerIndex maps every required column to its position in the header row.
// Header cells are trimmed and lowercased first, so cosmetic differences in
// the source headers don't matter. The first absent required column fails
// with a MissingColumnError naming it.
func headerIndex(source string, header []string, required []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		positions[strings.ToLower(strings.TrimSpace(h))] = i
	}
	out := make(map[string]int, len(required))
	for _, col := range required {
		pos, ok := positions[col]
		if !ok {
			return nil, &MissingColumnError{Source: source, Column: col}
		}
		out[col] = pos
	}
	return out, nil
}

// cell tolerates ragged rows: a position past the row's end reads as empty.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseAmount reads an optional numeric cell. Empty means null; anything
// else must parse as a float.
func parseAmount(s string) (catalog.Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return catalog.Amount{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return catalog.Amount{}, fmt.Errorf("not a number: %q", s)
	}
	return catalog.Num(v), nil
}
