package statics

import (
	"math"
	"testing"

	"github.com/structeng/beamreport/internal/forcedata"
)

const tol = 1e-9

func almost(a, b float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// Central point load P on span L: R = P/2 each side, V = ±P/2,
// Mmax = P·L/4 at midspan.
func TestCentralPointLoad(t *testing.T) {
	b, err := NewSimplySupported(8, []forcedata.Load{
		{Position: 4, Magnitude: 20, Kind: forcedata.Point},
	})
	if err != nil {
		t.Fatalf("NewSimplySupported: %v", err)
	}

	ra, rb := b.Reactions()
	if !almost(ra, 10) || !almost(rb, 10) {
		t.Errorf("reactions = %.4f, %.4f, want 10, 10", ra, rb)
	}

	if v := b.ShearAt(2); !almost(v, 10) {
		t.Errorf("V(2) = %.4f, want 10", v)
	}
	if v := b.ShearAt(6); !almost(v, -10) {
		t.Errorf("V(6) = %.4f, want -10", v)
	}
	if m := b.MomentAt(4); !almost(m, 40) { // PL/4 = 20·8/4
		t.Errorf("M(4) = %.4f, want 40", m)
	}
	if m := b.MomentAt(0); !almost(m, 0) {
		t.Errorf("M(0) = %.4f, want 0", m)
	}
	if m := b.MomentAt(8); !almost(m, 0) {
		t.Errorf("M(L) = %.4f, want 0", m)
	}
}

// Off-centre load: R_A = P·b/L, R_B = P·a/L, Mmax = P·a·b/L under the load.
func TestOffCentrePointLoad(t *testing.T) {
	// P = 30 kN at a = 2 m on L = 6 m, so b = 4 m.
	b, err := NewSimplySupported(6, []forcedata.Load{
		{Position: 2, Magnitude: 30, Kind: forcedata.Point},
	})
	if err != nil {
		t.Fatalf("NewSimplySupported: %v", err)
	}

	ra, rb := b.Reactions()
	if !almost(ra, 20) { // 30·4/6
		t.Errorf("R_A = %.4f, want 20", ra)
	}
	if !almost(rb, 10) { // 30·2/6
		t.Errorf("R_B = %.4f, want 10", rb)
	}

	d, err := b.Diagram(13)
	if err != nil {
		t.Fatalf("Diagram: %v", err)
	}
	m, x := d.MaxMoment()
	if !almost(m, 40) { // P·a·b/L = 30·2·4/6
		t.Errorf("Mmax = %.4f, want 40", m)
	}
	if !almost(x, 2) {
		t.Errorf("Mmax position = %.4f, want 2", x)
	}
}

// Full-span UDL w: R = w·L/2, V linear from +wL/2 to -wL/2,
// Mmax = w·L²/8 at midspan.
func TestUniformLoad(t *testing.T) {
	b, err := NewSimplySupported(10, []forcedata.Load{
		{Magnitude: 6, Kind: forcedata.Uniform},
	})
	if err != nil {
		t.Fatalf("NewSimplySupported: %v", err)
	}

	ra, rb := b.Reactions()
	if !almost(ra, 30) || !almost(rb, 30) {
		t.Errorf("reactions = %.4f, %.4f, want 30, 30", ra, rb)
	}

	if v := b.ShearAt(0); !almost(v, 30) {
		t.Errorf("V(0) = %.4f, want 30", v)
	}
	if v := b.ShearAt(5); !almost(v, 0) {
		t.Errorf("V(L/2) = %.4f, want 0", v)
	}
	if v := b.ShearAt(10); !almost(v, -30) {
		t.Errorf("V(L) = %.4f, want -30", v)
	}

	d, err := b.Diagram(11)
	if err != nil {
		t.Fatalf("Diagram: %v", err)
	}
	m, x := d.MaxMoment()
	if !almost(m, 75) { // wL²/8 = 6·100/8
		t.Errorf("Mmax = %.4f, want 75", m)
	}
	if !almost(x, 5) {
		t.Errorf("Mmax position = %.4f, want 5", x)
	}
}

// Combined loading superposes the individual closed-form results.
func TestSuperposition(t *testing.T) {
	loads := []forcedata.Load{
		{Position: 3, Magnitude: 15, Kind: forcedata.Point},
		{Magnitude: 4, Kind: forcedata.Uniform},
	}
	b, err := NewSimplySupported(9, loads)
	if err != nil {
		t.Fatalf("NewSimplySupported: %v", err)
	}

	point, _ := NewSimplySupported(9, loads[:1])
	udl, _ := NewSimplySupported(9, loads[1:])

	for _, x := range []float64{0, 1.5, 3, 4.5, 7, 9} {
		if got, want := b.ShearAt(x), point.ShearAt(x)+udl.ShearAt(x); !almost(got, want) {
			t.Errorf("V(%.1f) = %.4f, want %.4f", x, got, want)
		}
		if got, want := b.MomentAt(x), point.MomentAt(x)+udl.MomentAt(x); !almost(got, want) {
			t.Errorf("M(%.1f) = %.4f, want %.4f", x, got, want)
		}
	}
}

// The shear discontinuity at every load point equals the applied load.
func TestShearJumps(t *testing.T) {
	loads := []forcedata.Load{
		{Position: 2, Magnitude: 10, Kind: forcedata.Point},
		{Position: 5, Magnitude: 25, Kind: forcedata.Point},
		{Position: 7.5, Magnitude: 5, Kind: forcedata.Point},
		{Magnitude: 2, Kind: forcedata.Uniform},
	}
	b, err := NewSimplySupported(10, loads)
	if err != nil {
		t.Fatalf("NewSimplySupported: %v", err)
	}

	var sum float64
	for _, ld := range loads {
		if ld.Kind != forcedata.Point {
			continue
		}
		jump := b.ShearJumpAt(ld.Position)
		if !almost(jump, ld.Magnitude) {
			t.Errorf("jump at %.1f = %.4f, want %.4f", ld.Position, jump, ld.Magnitude)
		}
		sum += jump
	}
	if !almost(sum, 40) {
		t.Errorf("total jump = %.4f, want 40", sum)
	}

	// Continuous everywhere else.
	if j := b.ShearJumpAt(4); !almost(j, 0) {
		t.Errorf("jump at 4 = %.4f, want 0", j)
	}
}

func TestValidation(t *testing.T) {
	if _, err := NewSimplySupported(0, nil); err == nil {
		t.Error("expected error for zero span")
	}
	if _, err := NewSimplySupported(-5, nil); err == nil {
		t.Error("expected error for negative span")
	}
	_, err := NewSimplySupported(4, []forcedata.Load{
		{Position: 6, Magnitude: 10, Kind: forcedata.Point},
	})
	if err == nil {
		t.Error("expected error for load outside span")
	}
}

func TestDiagramSamples(t *testing.T) {
	b, err := NewSimplySupported(6, []forcedata.Load{
		{Position: 2, Magnitude: 12, Kind: forcedata.Point},
	})
	if err != nil {
		t.Fatalf("NewSimplySupported: %v", err)
	}

	d, err := b.Diagram(7) // stations every 1 m, one lands on the load
	if err != nil {
		t.Fatalf("Diagram: %v", err)
	}

	// 7 grid stations, the one at the load doubled.
	if len(d.Samples) != 8 {
		t.Fatalf("got %d samples, want 8", len(d.Samples))
	}

	// Samples are ordered and both shear limits appear at x = 2.
	var atLoad []Sample
	for i, s := range d.Samples {
		if i > 0 && s.X < d.Samples[i-1].X {
			t.Fatalf("samples out of order at %d", i)
		}
		if s.X == 2 {
			atLoad = append(atLoad, s)
		}
	}
	if len(atLoad) != 2 {
		t.Fatalf("got %d samples at the load, want 2", len(atLoad))
	}
	if !almost(atLoad[0].V-atLoad[1].V, 12) {
		t.Errorf("shear jump in samples = %.4f, want 12", atLoad[0].V-atLoad[1].V)
	}
	if !almost(atLoad[0].M, atLoad[1].M) {
		t.Errorf("moment must be continuous at the load")
	}

	if _, err := b.Diagram(1); err == nil {
		t.Error("expected error for a single station")
	}
}
