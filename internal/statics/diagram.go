package statics

import (
	"fmt"
	"math"
	"sort"
)

// Sample is one diagram station: shear and moment at position X.
type Sample struct {
	X float64 // m
	V float64 // kN
	M float64 // kN·m
}

// Diagram holds the sampled shear force and bending moment curves for
// one beam. Stations at point loads appear twice, carrying the shear
// limits from the left and from the right, so the SFD plots its jumps
// as vertical segments.
type Diagram struct {
	Beam    *SimplySupported
	Samples []Sample
}

// Diagram samples the curves at n evenly spaced stations (n >= 2,
// including both supports) plus a doubled station at every interior
// point load.
func (b *SimplySupported) Diagram(n int) (*Diagram, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 stations, got %d", n)
	}

	xs := make([]float64, 0, n+len(b.points))
	for i := 0; i < n; i++ {
		xs = append(xs, b.Span*float64(i)/float64(n-1))
	}
	for _, p := range b.points {
		if p.Position > 0 && p.Position < b.Span {
			xs = append(xs, p.Position)
		}
	}
	sort.Float64s(xs)

	d := &Diagram{Beam: b}
	const eps = 1e-9
	for i, x := range xs {
		if i > 0 && x-xs[i-1] < eps {
			continue // duplicate station from an even grid hitting a load
		}
		m := b.MomentAt(x)
		left := b.ShearAt(x)
		right := b.shearAfter(x)
		d.Samples = append(d.Samples, Sample{X: x, V: left, M: m})
		if math.Abs(left-right) > eps {
			d.Samples = append(d.Samples, Sample{X: x, V: right, M: m})
		}
	}
	return d, nil
}

// ShearRange returns the minimum and maximum shear over the beam.
func (d *Diagram) ShearRange() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range d.Samples {
		lo = math.Min(lo, s.V)
		hi = math.Max(hi, s.V)
	}
	return lo, hi
}

// MaxShear returns the largest absolute shear (kN).
func (d *Diagram) MaxShear() float64 {
	lo, hi := d.ShearRange()
	return math.Max(math.Abs(lo), math.Abs(hi))
}

// MaxMoment returns the peak bending moment and its position. The peak
// is found analytically: it occurs where the shear crosses zero, either
// at a point load or inside a segment where the UDL drives V through 0.
func (d *Diagram) MaxMoment() (m, x float64) {
	b := d.Beam

	candidates := []float64{0, b.Span}
	for _, p := range b.points {
		candidates = append(candidates, p.Position)
	}

	// Zero crossings of V within each segment between discontinuities.
	if b.udl != 0 {
		bounds := []float64{0}
		for _, p := range b.points {
			bounds = append(bounds, p.Position)
		}
		bounds = append(bounds, b.Span)
		for i := 0; i+1 < len(bounds); i++ {
			// V(x) = shearAfter(lo) - udl·(x - lo), linear in the segment
			lo := bounds[i]
			x0 := lo + b.shearAfter(lo)/b.udl
			if x0 > lo && x0 < bounds[i+1] {
				candidates = append(candidates, x0)
			}
		}
	}

	x = candidates[0]
	m = b.MomentAt(x)
	for _, c := range candidates[1:] {
		if mc := b.MomentAt(c); mc > m {
			m, x = mc, c
		}
	}
	return m, x
}

// Curves splits the samples into plottable (x, V) and (x, M) series.
func (d *Diagram) Curves() (xs, shear, moment []float64) {
	for _, s := range d.Samples {
		xs = append(xs, s.X)
		shear = append(shear, s.V)
		moment = append(moment, s.M)
	}
	return xs, shear, moment
}
