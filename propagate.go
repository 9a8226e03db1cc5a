package solarkit

import "math"

// eccentricityε is the threshold below which an orbit is propagated as
// circular, skipping the Kepler solve.
const eccentricityε = 1e-9

// Propagator computes where bodies are along their orbits. The zero value
// uses the package configuration for the Kepler solver, so
// Propagator{}.Position(b, t) just works.
type Propagator struct {
	Tolerance float64 // Newton residual tolerance (0 means configured default)
	MaxIter   int     // Newton iteration cap (0 means configured default)
}

func (pr Propagator) tolerances() (float64, int) {
	tol, cap := pr.Tolerance, pr.MaxIter
	if tol <= 0 {
		tol = skConfig().tolerance
	}
	if cap <= 0 {
		cap = skConfig().maxIter
	}
	return tol, cap
}

// eccentricAt solves Kepler's equation for b at time t.
func (pr Propagator) eccentricAt(b Body, t float64) (float64, error) {
	M := wrap2π(b.Phase + b.MeanMotion()*t)
	tol, cap := pr.tolerances()
	E, iters, ok := keplerE(M, b.Ecc, tol, cap)
	if !ok {
		return 0, ConvergenceError{Body: b.Name, Ecc: b.Ecc, MeanAnomaly: M, Iterations: iters}
	}
	return E, nil
}

// Polar returns the true anomaly ν in [0, 2π) and the focal distance r of b
// at time t, in the plane of its orbit. Negative times rewind the orbit.
func (pr Propagator) Polar(b Body, t float64) (ν, r float64, err error) {
	if b.Ecc < eccentricityε {
		return wrap2π(b.Phase + b.MeanMotion()*t), b.A, nil
	}
	E, err := pr.eccentricAt(b, t)
	if err != nil {
		return 0, 0, err
	}
	return TrueAnomaly(E, b.Ecc), b.A * (1 - b.Ecc*math.Cos(E)), nil
}

// Position returns the in-plane position of b at time t, periapsis on the +X
// axis.
func (pr Propagator) Position(b Body, t float64) (Point, error) {
	ν, r, err := pr.Polar(b, t)
	if err != nil {
		return Point{}, err
	}
	sν, cν := math.Sincos(ν)
	return Point{X: r * cν, Y: r * sν}, nil
}

// Position3 returns the position of b at time t with its orbital plane tilted
// by the body's inclination about the second axis.
func (pr Propagator) Position3(b Body, t float64) (Point, error) {
	p, err := pr.Position(b, t)
	if err != nil {
		return Point{}, err
	}
	if b.Incl == 0 {
		return p, nil
	}
	return MxP(R2(Deg2rad(b.Incl)), p), nil
}

// StateAt returns the in-plane position and velocity of b at time t. The
// velocity unit follows from the body's period unit (AU/year for the stock
// catalog).
func (pr Propagator) StateAt(b Body, t float64) (pos, vel Point, err error) {
	n := b.MeanMotion()
	if b.Ecc < eccentricityε {
		sθ, cθ := math.Sincos(wrap2π(b.Phase + n*t))
		pos = Point{X: b.A * cθ, Y: b.A * sθ}
		vel = Point{X: -b.A * n * sθ, Y: b.A * n * cθ}
		return pos, vel, nil
	}
	E, err := pr.eccentricAt(b, t)
	if err != nil {
		return Point{}, Point{}, err
	}
	sE, cE := math.Sincos(E)
	denom := 1 - b.Ecc*cE
	sν, cν := math.Sincos(TrueAnomaly(E, b.Ecc))
	r := b.A * denom
	pos = Point{X: r * cν, Y: r * sν}
	vel = Point{X: -b.A * n * sE / denom, Y: b.A * n * math.Sqrt(1-b.Ecc*b.Ecc) * cE / denom}
	return pos, vel, nil
}

// Position returns the in-plane position of b at time t using the default
// propagator.
func Position(b Body, t float64) (Point, error) {
	return Propagator{}.Position(b, t)
}

// Position3 is Position with the body's orbital tilt applied.
func Position3(b Body, t float64) (Point, error) {
	return Propagator{}.Position3(b, t)
}
