package solarkit

import (
	"fmt"
	"math"
)

// Body defines a celestial body via its orbital elements and display hints.
// Bodies are plain immutable records: build them with NewBody, copy by value.
// The unit conventions follow the stock catalog (AU, Earth masses, Earth
// radii), but the computations only ever use ratios, so any consistent unit
// set works. Period fixes the simulation time unit: a propagation time t is
// expressed in the same unit as every Period of the system.
type Body struct {
	Name      string
	M         float64 // Mass in Earth masses.
	A         float64 // Semi-major axis in AU.
	Ecc       float64 // Orbital eccentricity.
	Incl      float64 // Orbital inclination β in degrees.
	R         float64 // Radius in Earth radii.
	RotPeriod float64 // Rotational period in days, negative for retrograde rotation.
	Period    float64 // Orbital period, in the simulation time unit.
	Phase     float64 // Phase angle at t=0 in radians.
	Color     string  // Display hint for the rendering backend.
}

// NewBody returns a validated body. Invalid elements are rejected with a
// ValidationError, never clamped.
func NewBody(name string, m, a, ecc, β, r, trot, p, φ0 float64, color string) (Body, error) {
	b := Body{name, m, a, ecc, β, r, trot, p, φ0, color}
	if err := b.validate(); err != nil {
		return Body{}, err
	}
	return b, nil
}

func (b Body) validate() error {
	for _, el := range []struct {
		field string
		value float64
	}{
		{"m", b.M}, {"a", b.A}, {"ecc", b.Ecc}, {"beta", b.Incl},
		{"R", b.R}, {"trot", b.RotPeriod}, {"P", b.Period}, {"phase", b.Phase},
	} {
		if math.IsNaN(el.value) || math.IsInf(el.value, 0) {
			return ValidationError{b.Name, el.field, el.value, "element must be finite"}
		}
	}
	if b.A <= 0 {
		return ValidationError{b.Name, "a", b.A, "semi-major axis must be strictly positive"}
	}
	if b.Period <= 0 {
		return ValidationError{b.Name, "P", b.Period, "orbital period must be strictly positive"}
	}
	if b.Ecc < 0 || b.Ecc >= 1 {
		return ValidationError{b.Name, "ecc", b.Ecc, "eccentricity must be in [0,1)"}
	}
	if b.M < 0 {
		return ValidationError{b.Name, "m", b.M, "mass cannot be negative"}
	}
	if b.R < 0 {
		return ValidationError{b.Name, "R", b.R, "radius cannot be negative"}
	}
	return nil
}

// MeanMotion returns the mean angular velocity n = 2π/P in radians per time unit.
func (b Body) MeanMotion() float64 {
	return 2 * math.Pi / b.Period
}

// SemiParameter returns the semi-latus rectum p = a(1-e²).
func (b Body) SemiParameter() float64 {
	return b.A * (1 - b.Ecc*b.Ecc)
}

// Periapsis returns the closest distance to the focus.
func (b Body) Periapsis() float64 {
	return b.A * (1 - b.Ecc)
}

// Apoapsis returns the farthest distance from the focus.
func (b Body) Apoapsis() float64 {
	return b.A * (1 + b.Ecc)
}

// GM returns the gravitational parameter μ = 4π²a³/P² of the focus implied by
// this body's own elements (Kepler's third law), in AU³ per squared time unit.
func (b Body) GM() float64 {
	return 4 * math.Pi * math.Pi * math.Pow(b.A, 3) / (b.Period * b.Period)
}

// String implements the Stringer interface.
func (b Body) String() string {
	return fmt.Sprintf("%s a=%g e=%g P=%g", b.Name, b.A, b.Ecc, b.Period)
}
