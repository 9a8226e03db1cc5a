package solarkit

import "math"

// SolveKepler returns the eccentric anomaly E in [0, 2π) solving Kepler's
// equation E - e·sinE = M, to the package tolerance. Failing to converge
// within the iteration cap returns a ConvergenceError, never an approximate
// anomaly.
func SolveKepler(M, e float64) (float64, error) {
	cfg := skConfig()
	E, iters, ok := keplerE(M, e, cfg.tolerance, cfg.maxIter)
	if !ok {
		return E, ConvergenceError{Ecc: e, MeanAnomaly: M, Iterations: iters}
	}
	return E, nil
}

// keplerE runs Newton iterations on Kepler's equation. The tolerance applies
// to the equation residual, not the step size.
func keplerE(M, e, tol float64, maxIter int) (E float64, iters int, ok bool) {
	M = wrap2π(M)
	// Danby's starter keeps the iteration count low for moderate
	// eccentricities; for wild orbits π is the safe start.
	if e < 0.8 {
		E = M + e*math.Sin(M)*(1+e*math.Cos(M))
	} else {
		E = math.Pi
	}
	for iters = 0; iters < maxIter; iters++ {
		f := E - e*math.Sin(E) - M
		if math.Abs(f) < tol {
			return wrap2π(E), iters, true
		}
		E -= f / (1 - e*math.Cos(E))
	}
	if math.Abs(E-e*math.Sin(E)-M) < tol {
		return wrap2π(E), iters, true
	}
	return E, iters, false
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly ν in [0, 2π).
func TrueAnomaly(E, e float64) float64 {
	sE, cE := math.Sincos(E / 2)
	return wrap2π(2 * math.Atan2(math.Sqrt(1+e)*sE, math.Sqrt(1-e)*cE))
}
