package solarkit

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// BodyPoint is one body's rendered position, tagged for the drawing backend.
type BodyPoint struct {
	Name  string
	Color string
	Point
}

// Frame is everything a backend needs to draw one instant of a system: the
// selected body positions, in selection order, and the position of the focus.
type Frame struct {
	Time      float64
	Center    Point
	Positions []BodyPoint
}

// Position returns the rendered position of the named body in this frame.
func (f Frame) Position(name string) (BodyPoint, bool) {
	for _, bp := range f.Positions {
		if bp.Name == name {
			return bp, true
		}
	}
	return BodyPoint{}, false
}

// Path is a drawable polyline, used both for orbit loci and for spinograph
// chords. Closed tells the backend to join the last point back to the first.
type Path struct {
	Name   string
	Color  string
	Points []Point
	Closed bool
}

// Renderer turns a system into drawable frames and orbit loci. A nil or empty
// selection renders whichever bodies the system holds at render time; a named
// selection keeps its order and fails if a body has since been removed.
type Renderer struct {
	sys    *System
	names  []string
	threeD bool
	prop   Propagator
}

// NewRenderer returns a renderer over sys for the named bodies, or for the
// whole system when names is empty. With threeD set, each body is tilted by
// its orbital inclination.
func NewRenderer(sys *System, names []string, threeD bool) (*Renderer, error) {
	for _, n := range names {
		if _, ok := sys.Body(n); !ok {
			return nil, UnknownBodyError{System: sys.Name, Body: n}
		}
	}
	return &Renderer{sys: sys, names: append([]string(nil), names...), threeD: threeD}, nil
}

// selection resolves the rendered bodies against the system as it is now.
func (r *Renderer) selection() ([]Body, error) {
	if len(r.names) == 0 {
		return r.sys.Bodies(), nil
	}
	out := make([]Body, len(r.names))
	for i, n := range r.names {
		b, ok := r.sys.Body(n)
		if !ok {
			return nil, UnknownBodyError{System: r.sys.Name, Body: n}
		}
		out[i] = b
	}
	return out, nil
}

func (r *Renderer) position(b Body, t float64) (Point, error) {
	if r.threeD {
		return r.prop.Position3(b, t)
	}
	return r.prop.Position(b, t)
}

// Frame renders the selection at time t. A solver failure on any body aborts
// the whole frame, so a frame either holds every selected body or nothing.
func (r *Renderer) Frame(t float64) (Frame, error) {
	sel, err := r.selection()
	if err != nil {
		return Frame{}, err
	}
	fr := Frame{Time: t, Positions: make([]BodyPoint, len(sel))}
	for i, b := range sel {
		p, err := r.position(b, t)
		if err != nil {
			return Frame{}, err
		}
		fr.Positions[i] = BodyPoint{Name: b.Name, Color: b.Color, Point: p}
	}
	return fr, nil
}

// OrbitPath returns the named body's full orbit as a polyline of n points
// swept uniformly in true anomaly, first and last point coinciding. Asking
// for fewer than two points is a programmer error.
func (r *Renderer) OrbitPath(name string, n int) (Path, error) {
	b, ok := r.sys.Body(name)
	if !ok {
		return Path{}, UnknownBodyError{System: r.sys.Name, Body: name}
	}
	if n < 2 {
		panic("solarkit: an orbit path needs at least two points")
	}
	νs := floats.Span(make([]float64, n), 0, 2*math.Pi)
	semiP := b.SemiParameter()
	var tilt *mat.Dense
	if r.threeD && b.Incl != 0 {
		tilt = R2(Deg2rad(b.Incl))
	}
	pts := make([]Point, n)
	for i, ν := range νs {
		sν, cν := math.Sincos(ν)
		rad := semiP / (1 + b.Ecc*cν)
		pt := Point{X: rad * cν, Y: rad * sν}
		if tilt != nil {
			pt = MxP(tilt, pt)
		}
		pts[i] = pt
	}
	return Path{Name: b.Name, Color: b.Color, Points: pts, Closed: true}, nil
}

// Span returns the default animation span for this renderer, four revolutions
// of the slowest selected body.
func (r *Renderer) Span() (float64, error) {
	sel, err := r.selection()
	if err != nil {
		return 0, err
	}
	var pmax float64
	for _, b := range sel {
		if b.Period > pmax {
			pmax = b.Period
		}
	}
	return 4 * pmax, nil
}

// RenderFrame renders every body of sys at time t in two dimensions.
func RenderFrame(sys *System, t float64) (Frame, error) {
	return (&Renderer{sys: sys}).Frame(t)
}
