package solarkit

import (
	"math"

	"github.com/ChristopherRabotin/ode"
)

// TwoBody integrates a body's planar two-body motion numerically, as an
// independent cross-check of the closed-form propagation. The state is
// [x y vx vy] about the focus implied by the body's own elements.
type TwoBody struct {
	Body Body

	μ     float64
	state []float64
	step  float64
	t     float64
	tEnd  float64
}

// NewTwoBody returns an integrator seeded with the body's state at t=0.
func NewTwoBody(b Body) (*TwoBody, error) {
	pos, vel, err := Propagator{}.StateAt(b, 0)
	if err != nil {
		return nil, err
	}
	return &TwoBody{Body: b, μ: b.GM(), state: []float64{pos.X, pos.Y, vel.X, vel.Y}}, nil
}

// Propagate integrates from the current time until the given one.
func (tb *TwoBody) Propagate(until, step float64) {
	tb.tEnd = until
	tb.step = step
	ode.NewRK4(tb.t, step, tb).Solve() // Blocking.
}

// Time returns the simulated time of the latest state. The stop condition is
// checked between full steps, so it may exceed the requested end by up to one
// step.
func (tb *TwoBody) Time() float64 {
	return tb.t
}

// Position returns the integrated position.
func (tb *TwoBody) Position() Point {
	return Point{X: tb.state[0], Y: tb.state[1]}
}

// Velocity returns the integrated velocity.
func (tb *TwoBody) Velocity() Point {
	return Point{X: tb.state[2], Y: tb.state[3]}
}

// GetState returns the latest state vector.
func (tb *TwoBody) GetState() []float64 {
	s := make([]float64, len(tb.state))
	copy(s, tb.state)
	return s
}

// SetState stores the propagated state.
func (tb *TwoBody) SetState(t float64, s []float64) {
	copy(tb.state, s)
	// Increment the time.
	tb.t += tb.step
}

// Stop returns whether the propagation is done.
func (tb *TwoBody) Stop(t float64) bool {
	return tb.t >= tb.tEnd
}

// Func is the two-body equation of motion.
func (tb *TwoBody) Func(t float64, s []float64) []float64 {
	r := math.Sqrt(s[0]*s[0] + s[1]*s[1])
	r3 := r * r * r
	return []float64{s[2], s[3], -tb.μ * s[0] / r3, -tb.μ * s[1] / r3}
}
