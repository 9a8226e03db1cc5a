package solarkit

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestPropagateUnitCircular(t *testing.T) {
	// A body of unit semi-major axis and unit period on a circular orbit.
	unit, err := NewBody("unit", 1, 1, 0, 0, 1, 1, 1, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	var pr Propagator
	ν, r, err := pr.Polar(unit, 0)
	if err != nil || ν != 0 || r != 1 {
		t.Fatalf("t=0: ν=%f r=%f err=%v", ν, r, err)
	}
	ν, r, err = pr.Polar(unit, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if ok, aerr := anglesEqual(ν, math.Pi); !ok {
		t.Fatalf("half a period: %s", aerr)
	}
	if r != 1 {
		t.Fatalf("circular radius changed: %f", r)
	}
	if p, _ := pr.Position(unit, 0.25); !pointsEqual(p, Point{0, 1, 0}) {
		t.Fatalf("quarter period: %+v", p)
	}
	// The phase shifts the whole motion.
	shifted, err := NewBody("shifted", 1, 1, 0, 0, 1, 1, 1, math.Pi, "")
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := pr.Position(shifted, 0); !pointsEqual(p, Point{-1, 0, 0}) {
		t.Fatal("the phase must place the body at t=0")
	}
	// Only the ratio t/P matters, so periods in days work just as well.
	days, err := NewBody("Sol-Earth", 1, 1, 0, 0, 1, 1, 365.25, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	ν, r, err = pr.Polar(days, 182.625)
	if err != nil {
		t.Fatal(err)
	}
	if ok, aerr := anglesEqual(ν, math.Pi); !ok || r != 1 {
		t.Fatalf("half a period in days: r=%f %v", r, aerr)
	}
}

func TestPropagateDeterminism(t *testing.T) {
	var pr Propagator
	for _, b := range []Body{Mercury, Earth, Pluto} {
		for _, tt := range []float64{0, 0.1, 17.5, -3.2} {
			p1, err1 := pr.Position(b, tt)
			p2, err2 := pr.Position(b, tt)
			if err1 != nil || err2 != nil {
				t.Fatal(err1, err2)
			}
			if p1 != p2 {
				t.Fatalf("%s at t=%f: %+v != %+v", b.Name, tt, p1, p2)
			}
		}
	}
}

func TestPropagatePeriodicity(t *testing.T) {
	var pr Propagator
	for _, b := range []Body{Mercury, Venus, Earth, Mars, Pluto} {
		p0, err := pr.Position(b, 0.4)
		if err != nil {
			t.Fatal(err)
		}
		p1, err := pr.Position(b, 0.4+b.Period)
		if err != nil {
			t.Fatal(err)
		}
		if d := p0.Sub(p1).Norm(); d > 1e-6*b.A {
			t.Fatalf("%s drifted %g AU over one revolution", b.Name, d)
		}
	}
}

func TestPropagateNegativeTime(t *testing.T) {
	var pr Propagator
	fwd, err := pr.Position(Mars, Mars.Period-0.2)
	if err != nil {
		t.Fatal(err)
	}
	back, err := pr.Position(Mars, -0.2)
	if err != nil {
		t.Fatal(err)
	}
	if d := fwd.Sub(back).Norm(); d > 1e-9 {
		t.Fatalf("rewinding diverges by %g", d)
	}
}

func TestPropagateEccentric(t *testing.T) {
	var pr Propagator
	// Mercury starts at perihelion and reaches aphelion half a period later.
	ν, r, err := pr.Polar(Mercury, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ν != 0 || !scalar.EqualWithinRel(r, Mercury.Periapsis(), 1e-9) {
		t.Fatalf("t=0: ν=%f r=%f", ν, r)
	}
	ν, r, err = pr.Polar(Mercury, Mercury.Period/2)
	if err != nil {
		t.Fatal(err)
	}
	if ok, aerr := anglesEqual(ν, math.Pi); !ok {
		t.Fatalf("aphelion: %s", aerr)
	}
	if !scalar.EqualWithinRel(r, Mercury.Apoapsis(), 1e-9) {
		t.Fatalf("aphelion distance: %f", r)
	}
	// The radius stays between the apsides everywhere.
	for tt := 0.0; tt < Mercury.Period; tt += Mercury.Period / 97 {
		_, r, err := pr.Polar(Mercury, tt)
		if err != nil {
			t.Fatal(err)
		}
		if r < Mercury.Periapsis()-1e-12 || r > Mercury.Apoapsis()+1e-12 {
			t.Fatalf("t=%f: r=%f outside the apsides", tt, r)
		}
	}
}

func TestPropagateTilt(t *testing.T) {
	var pr Propagator
	flat, err := pr.Position(Mercury, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	if flat.Z != 0 {
		t.Fatal("2D positions must stay in the drawing plane")
	}
	tilted, err := pr.Position3(Mercury, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	if tilted.Z == 0 {
		t.Fatal("Mercury's orbit is inclined")
	}
	if !scalar.EqualWithinRel(tilted.Norm(), flat.Norm(), 1e-12) {
		t.Fatal("tilting must preserve the distance to the focus")
	}
	if tilted.Y != flat.Y {
		t.Fatal("a tilt about the second axis moved the second axis")
	}
	// A flat orbit renders the same in both modes.
	flatEarth, err := NewBody("flatland", 1, 1, 0.0167, 0, 1, 1, 1, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	p2, _ := pr.Position(flatEarth, 0.3)
	p3, _ := pr.Position3(flatEarth, 0.3)
	if p2 != p3 {
		t.Fatal("zero inclination must not change the render")
	}
}

func TestStateAtVisViva(t *testing.T) {
	var pr Propagator
	μ := Earth.GM()
	for _, tt := range []float64{0, 0.123, 0.5, 0.75} {
		pos, vel, err := pr.StateAt(Earth, tt)
		if err != nil {
			t.Fatal(err)
		}
		want := math.Sqrt(μ * (2/pos.Norm() - 1/Earth.A))
		if !scalar.EqualWithinRel(vel.Norm(), want, 1e-9) {
			t.Fatalf("t=%f: |v|=%f, vis-viva wants %f", tt, vel.Norm(), want)
		}
	}
	// Circular speed is 2πa/P everywhere on the orbit.
	circ, err := NewBody("rounder", 1, 2.5, 0, 0, 1, 1, 4, 0, "")
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []float64{0, 1.1, 3.9} {
		_, vel, err := pr.StateAt(circ, tt)
		if err != nil {
			t.Fatal(err)
		}
		if !scalar.EqualWithinRel(vel.Norm(), 2*math.Pi*2.5/4, 1e-12) {
			t.Fatalf("t=%f: circular speed %f", tt, vel.Norm())
		}
	}
}

func TestPositionConvenience(t *testing.T) {
	p1, err := Position(Earth, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := Propagator{}.Position(Earth, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Fatal("the convenience wrapper must match the zero propagator")
	}
	p3, err := Position3(Mercury, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if p3.Z == 0 {
		t.Fatal("the 3D convenience wrapper must tilt")
	}
}
