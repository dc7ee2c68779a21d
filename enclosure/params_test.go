package enclosure

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestDerivedDimensions(t *testing.T) {
	p := DefaultParameters()
	wantFloor := -p.BallDiameter/2 - p.SensorThickness - p.Clearance
	if got := p.CaseFloorZ(); got != wantFloor {
		t.Errorf("CaseFloorZ = %g, want %g", got, wantFloor)
	}
	if got, want := p.InternalWidth(), p.MCUWidth+2*p.ButtonSize+4*p.Padding; got != want {
		t.Errorf("InternalWidth = %g, want %g", got, want)
	}
	if got, want := p.InternalLength(), p.SensorLength/2+p.MCULength+2*p.Padding; got != want {
		t.Errorf("InternalLength = %g, want %g", got, want)
	}
	if got, want := p.InternalHeight(), -p.CaseFloorZ()+p.WallThickness; got != want {
		t.Errorf("InternalHeight = %g, want %g", got, want)
	}
	if got, want := p.CaseWidth(), p.InternalWidth()+2*p.WallThickness; got != want {
		t.Errorf("CaseWidth = %g, want %g", got, want)
	}
	if got, want := p.CaseLength(), p.InternalLength()+2*p.WallThickness; got != want {
		t.Errorf("CaseLength = %g, want %g", got, want)
	}
	if got, want := p.CaseHeight(), p.InternalHeight()+p.WallThickness; got != want {
		t.Errorf("CaseHeight = %g, want %g", got, want)
	}
}

func TestWallThicknessShiftsHeightsLinearly(t *testing.T) {
	p := DefaultParameters()
	const delta = 1.25
	q := p
	q.WallThickness += delta
	if got := q.InternalHeight() - p.InternalHeight(); got != delta {
		t.Errorf("InternalHeight shifted by %g, want %g", got, delta)
	}
	// CaseHeight carries the roof on top of the interior, but the interior
	// itself already grows by one delta, so the exterior grows by two.
	if got := q.CaseHeight() - p.CaseHeight(); got != 2*delta {
		t.Errorf("CaseHeight shifted by %g, want %g", got, 2*delta)
	}
}

func TestBallOpeningUndersize(t *testing.T) {
	p := DefaultParameters()
	if got, want := p.BallOpeningDiameter(), p.BallDiameter-1; got != want {
		t.Errorf("BallOpeningDiameter = %g, want %g", got, want)
	}
}

func TestPillarQuadrants(t *testing.T) {
	p := DefaultParameters()
	c := p.CaseCenter()
	dx := p.InternalWidth()/2 - p.Padding
	dy := p.InternalLength()/2 - p.Padding
	seen := make(map[[2]int]bool)
	for _, pos := range p.PillarPositions() {
		sx := sign(pos.X - c.X)
		sy := sign(pos.Y - c.Y)
		if math.Abs(math.Abs(pos.X-c.X)-dx) > 1e-12 {
			t.Errorf("pillar %v: |x-cx| = %g, want %g", pos, math.Abs(pos.X-c.X), dx)
		}
		if math.Abs(math.Abs(pos.Y-c.Y)-dy) > 1e-12 {
			t.Errorf("pillar %v: |y-cy| = %g, want %g", pos, math.Abs(pos.Y-c.Y), dy)
		}
		seen[[2]int{sx, sy}] = true
	}
	if len(seen) != 4 {
		t.Errorf("pillars cover %d quadrants, want 4", len(seen))
	}
}

func sign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}

func rotZ(v r3.Vec, theta float64) r3.Vec {
	c, s := math.Cos(theta), math.Sin(theta)
	return r3.Vec{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y, Z: v.Z}
}

func TestBearingSeatRotationClosure(t *testing.T) {
	p := DefaultParameters()
	seat := p.BearingSeat()
	if want := -p.BallRadius() * math.Cos(45*math.Pi/180); math.Abs(seat.Z-want) > 1e-12 {
		t.Errorf("seat height = %g, want %g", seat.Z, want)
	}
	const step = 2 * math.Pi / 3
	v := seat
	for i := 0; i < 3; i++ {
		if got, want := math.Hypot(v.X, v.Y), p.BearingOffset; math.Abs(got-want) > 1e-9 {
			t.Errorf("seat %d radius = %g, want %g", i, got, want)
		}
		if math.Abs(v.Z-seat.Z) > 1e-12 {
			t.Errorf("seat %d height = %g, want %g", i, v.Z, seat.Z)
		}
		v = rotZ(v, step)
	}
	// Three 120° steps must land back on the first seat.
	if math.Abs(v.X-seat.X) > 1e-9 || math.Abs(v.Y-seat.Y) > 1e-9 || math.Abs(v.Z-seat.Z) > 1e-9 {
		t.Errorf("rotation not closed: got %v, want %v", v, seat)
	}
}

func TestLoadParametersOverride(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "params.yaml")
	if err := os.WriteFile(fn, []byte("wall_thickness: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadParameters(fn)
	if err != nil {
		t.Fatal(err)
	}
	if p.WallThickness != 4 {
		t.Errorf("WallThickness = %g, want 4", p.WallThickness)
	}
	def := DefaultParameters()
	if p.BallDiameter != def.BallDiameter || p.MCULength != def.MCULength {
		t.Errorf("unrelated fields changed: %+v", p)
	}
	if got, want := p.InternalHeight(), -p.CaseFloorZ()+4; got != want {
		t.Errorf("InternalHeight after override = %g, want %g", got, want)
	}
}

func TestLoadParametersRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"syntax", "wall_thickness: [", "parse"},
		{"negative", "ball_diameter: -3\n", "must be positive"},
		{"no lip", "ball_diameter: 0.5\n", "opening lip"},
		{"head under shaft", "screw_head_diameter: 2\n", "exceed shaft diameter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(fn, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadParameters(fn)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q does not mention %q", err, tt.errPart)
			}
		})
	}
}

func TestLoadParametersMissingFile(t *testing.T) {
	if _, err := LoadParameters(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
