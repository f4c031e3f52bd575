package forcedata

import (
	"fmt"
	"strings"
)

// Kind identifies how a force is applied to the beam.
type Kind int

const (
	// Point is a concentrated load (kN) acting at a single position.
	Point Kind = iota
	// Uniform is a uniformly distributed load (kN/m) over the full span.
	Uniform
)

func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case Uniform:
		return "udl"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Unit returns the magnitude unit for the kind.
func (k Kind) Unit() string {
	if k == Uniform {
		return "kN/m"
	}
	return "kN"
}

// ParseKind parses the force type column. Common spreadsheet spellings
// are accepted case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "point", "p", "pl", "concentrated":
		return Point, nil
	case "udl", "uniform", "distributed", "w":
		return Uniform, nil
	}
	return 0, fmt.Errorf("unknown force type %q", s)
}

// Load is one force record read from the input workbook.
type Load struct {
	Position  float64 // m from the left support; ignored for Uniform
	Magnitude float64 // kN for Point, kN/m for Uniform; downward positive
	Kind      Kind
}

// Table holds the ordered force records parsed from one sheet together
// with the warnings produced by rows that were skipped.
type Table struct {
	Sheet    string
	Loads    []Load
	Warnings []*RowError
}

// MaxPosition returns the largest point-load position, 0 if there is none.
func (t *Table) MaxPosition() float64 {
	var m float64
	for _, ld := range t.Loads {
		if ld.Kind == Point && ld.Position > m {
			m = ld.Position
		}
	}
	return m
}
