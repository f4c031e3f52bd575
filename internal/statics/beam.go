// Package statics evaluates internal forces of a simply supported beam
// (pin + roller) under point loads and a full-span uniformly distributed
// load, using the closed-form equilibrium equations.
//
// Sign convention: applied magnitudes are downward positive (gravity
// loads), reactions are upward positive, sagging moment is positive.
// Positions are metres from the left support, forces kN, moments kN·m.
package statics

import (
	"fmt"
	"sort"

	"github.com/structeng/beamreport/internal/forcedata"
)

// SimplySupported is a single-span beam on a pin and a roller.
type SimplySupported struct {
	Span  float64 // m
	Loads []forcedata.Load

	// Precomputed on construction
	udl       float64 // total distributed intensity (kN/m)
	points    []forcedata.Load
	reactionA float64 // kN, upward
	reactionB float64 // kN, upward
}

// NewSimplySupported validates the configuration and resolves the
// support reactions. Every point-load position must lie within the span.
func NewSimplySupported(span float64, loads []forcedata.Load) (*SimplySupported, error) {
	if span <= 0 {
		return nil, fmt.Errorf("invalid span: %.3f m", span)
	}

	b := &SimplySupported{Span: span, Loads: loads}
	for _, ld := range loads {
		switch ld.Kind {
		case forcedata.Point:
			if ld.Position < 0 || ld.Position > span {
				return nil, fmt.Errorf("load position %.3f m outside span [0, %.3f]", ld.Position, span)
			}
			b.points = append(b.points, ld)
		case forcedata.Uniform:
			b.udl += ld.Magnitude
		default:
			return nil, fmt.Errorf("unsupported load kind %v", ld.Kind)
		}
	}

	sort.Slice(b.points, func(i, j int) bool {
		return b.points[i].Position < b.points[j].Position
	})

	// ΣM about the left support: R_B·L = Σ P·a + w·L·(L/2)
	var momentAboutA, total float64
	for _, p := range b.points {
		momentAboutA += p.Magnitude * p.Position
		total += p.Magnitude
	}
	momentAboutA += b.udl * span * span / 2
	total += b.udl * span

	b.reactionB = momentAboutA / span
	b.reactionA = total - b.reactionB

	return b, nil
}

// Reactions returns the left and right support reactions (kN, upward).
func (b *SimplySupported) Reactions() (ra, rb float64) {
	return b.reactionA, b.reactionB
}

// TotalLoad returns the total applied load (kN).
func (b *SimplySupported) TotalLoad() float64 {
	return b.reactionA + b.reactionB
}

// ShearAt returns the internal shear V(x) using the limit from the left,
// so immediately at a point load the jump has not yet been taken.
func (b *SimplySupported) ShearAt(x float64) float64 {
	v := b.reactionA - b.udl*x
	for _, p := range b.points {
		if p.Position < x {
			v -= p.Magnitude
		}
	}
	return v
}

// shearAfter is the limit of V from the right of x.
func (b *SimplySupported) shearAfter(x float64) float64 {
	v := b.reactionA - b.udl*x
	for _, p := range b.points {
		if p.Position <= x {
			v -= p.Magnitude
		}
	}
	return v
}

// MomentAt returns the internal bending moment M(x).
func (b *SimplySupported) MomentAt(x float64) float64 {
	m := b.reactionA*x - b.udl*x*x/2
	for _, p := range b.points {
		if p.Position < x {
			m -= p.Magnitude * (x - p.Position)
		}
	}
	return m
}

// ShearJumpAt returns the shear discontinuity at x, equal to the sum of
// the point loads applied there (0 where the SFD is continuous).
func (b *SimplySupported) ShearJumpAt(x float64) float64 {
	return b.ShearAt(x) - b.shearAfter(x)
}
