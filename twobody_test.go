package solarkit

import (
	"math"
	"testing"
)

func TestTwoBodyAgreesWithKepler(t *testing.T) {
	tb, err := NewTwoBody(Earth)
	if err != nil {
		t.Fatal(err)
	}
	quarter := Earth.Period / 4
	step := Earth.Period / 10000
	tb.Propagate(quarter, step)
	if math.Abs(tb.t-quarter) > step+1e-12 {
		t.Fatalf("integration stopped at t=%f, wanted about %f", tb.t, quarter)
	}
	// Compare at the integrator's own final time, wherever the last step
	// landed.
	want, err := Position(Earth, tb.t)
	if err != nil {
		t.Fatal(err)
	}
	if d := tb.Position().Sub(want).Norm(); d > 1e-6 {
		t.Fatalf("integration diverged by %g AU after a quarter period", d)
	}
	_, vwant, err := Propagator{}.StateAt(Earth, tb.t)
	if err != nil {
		t.Fatal(err)
	}
	if d := tb.Velocity().Sub(vwant).Norm(); d > 1e-5 {
		t.Fatalf("velocities diverged by %g AU/yr", d)
	}
}

func TestTwoBodyClosure(t *testing.T) {
	tb, err := NewTwoBody(Mercury)
	if err != nil {
		t.Fatal(err)
	}
	start := tb.Position()
	tb.Propagate(Mercury.Period, Mercury.Period/20000)
	want, err := Position(Mercury, tb.t)
	if err != nil {
		t.Fatal(err)
	}
	if d := tb.Position().Sub(want).Norm(); d > 1e-5 {
		t.Fatalf("eccentric integration diverged by %g AU", d)
	}
	// One revolution brings the orbit back onto itself.
	if d := tb.Position().Sub(start).Norm(); d > 1e-3 {
		t.Fatalf("the orbit failed to close by %g AU", d)
	}
}

func TestTwoBodySeed(t *testing.T) {
	tb, err := NewTwoBody(Earth)
	if err != nil {
		t.Fatal(err)
	}
	if !pointsEqual(tb.Position(), Point{Earth.Periapsis(), 0, 0}) {
		t.Fatalf("the integration starts at periapsis, got %+v", tb.Position())
	}
	// GetState hands out a copy, not the integrator's backing slice.
	s := tb.GetState()
	s[0] = 42
	if tb.Position().X == 42 {
		t.Fatal("GetState leaked the internal state")
	}
}
