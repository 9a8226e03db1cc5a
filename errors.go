package solarkit

import (
	"errors"
	"fmt"
)

// ErrNotRunning is returned by animation calls which require a running animation.
var ErrNotRunning = errors.New("animation is not running")

// ValidationError reports an orbital element no physical body can have.
// The offending field and value are kept so the caller can correct its input.
type ValidationError struct {
	Body   string
	Field  string
	Value  float64
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid body %q: %s=%v (%s)", e.Body, e.Field, e.Value, e.Reason)
}

// ConvergenceError reports that the Kepler solver did not reach the configured
// tolerance within its iteration cap. The position for that body and time is
// unknown, never approximated.
type ConvergenceError struct {
	Body        string
	Ecc         float64
	MeanAnomaly float64
	Iterations  int
}

func (e ConvergenceError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("kepler solver did not converge after %d iterations (e=%g M=%g)", e.Iterations, e.Ecc, e.MeanAnomaly)
	}
	return fmt.Sprintf("kepler solver did not converge for %q after %d iterations (e=%g M=%g)", e.Body, e.Iterations, e.Ecc, e.MeanAnomaly)
}

// DuplicateBodyError reports an attempt to add a body whose name is taken.
type DuplicateBodyError struct {
	System string
	Body   string
}

func (e DuplicateBodyError) Error() string {
	return fmt.Sprintf("body %q already in system %q", e.Body, e.System)
}

// UnknownBodyError reports a reference to a body the system does not hold.
type UnknownBodyError struct {
	System string
	Body   string
}

func (e UnknownBodyError) Error() string {
	return fmt.Sprintf("no body %q in system %q", e.Body, e.System)
}

// AlreadyRunningError reports a second animation start over a system which is
// owned by a running animation.
type AlreadyRunningError struct {
	System string
}

func (e AlreadyRunningError) Error() string {
	return fmt.Sprintf("system %q is already being animated", e.System)
}
