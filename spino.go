package solarkit

import "fmt"

// SpinoSample is one strand of a spinograph: the traced body positions at one
// instant. The points joined in selection order form the chord; Δθ is the
// angle the second body leads the first by, the quantity that makes the
// pattern.
type SpinoSample struct {
	Time   float64
	Points []Point
	Δθ     float64
}

// Spinograph accumulates chord strands between co-orbiting bodies. Strands
// are only ever appended, so a trace can be taken incrementally and drawn as
// it grows. Span and Dt may be overridden before the first Take.
type Spinograph struct {
	Span float64 // time covered by a complete trace
	Dt   float64 // strand cadence

	r       *Renderer
	t       float64
	samples []SpinoSample
}

// NewSpinograph returns a spinograph tracing the named bodies of sys, or
// every body when names is empty. The selection is pinned at construction and
// needs at least two bodies, else there is nothing to stretch a chord
// between. The default cadence covers ten animation spans of the slowest
// traced body in 1234 strands.
func NewSpinograph(sys *System, names []string, threeD bool) (*Spinograph, error) {
	r, err := NewRenderer(sys, names, threeD)
	if err != nil {
		return nil, err
	}
	sel, err := r.selection()
	if err != nil {
		return nil, err
	}
	if len(sel) < 2 {
		return nil, fmt.Errorf("spinograph needs at least two bodies, system %q offers %d", sys.Name, len(sel))
	}
	pinned := make([]string, len(sel))
	var pmax float64
	for i, b := range sel {
		pinned[i] = b.Name
		if b.Period > pmax {
			pmax = b.Period
		}
	}
	r.names = pinned
	span := 10 * 4 * pmax
	return &Spinograph{Span: span, Dt: span / 1234, r: r}, nil
}

// Take computes the next n strands and appends them to the trace. Earlier
// strands are never recomputed, so Take(2) then Take(3) leaves the same trace
// as a single Take(5). On a solver failure the strands built so far are
// returned with the error and the failed instant stays next in line.
func (sp *Spinograph) Take(n int) ([]SpinoSample, error) {
	out := make([]SpinoSample, 0, n)
	for k := 0; k < n; k++ {
		fr, err := sp.r.Frame(sp.t)
		if err != nil {
			return out, err
		}
		pts := make([]Point, len(fr.Positions))
		for i, bp := range fr.Positions {
			pts[i] = bp.Point
		}
		s := SpinoSample{Time: sp.t, Points: pts, Δθ: wrap2π(pts[1].Angle() - pts[0].Angle())}
		sp.samples = append(sp.samples, s)
		out = append(out, s)
		sp.t += sp.Dt
	}
	return out, nil
}

// Samples returns the strands taken so far. The slice is a copy.
func (sp *Spinograph) Samples() []SpinoSample {
	out := make([]SpinoSample, len(sp.samples))
	copy(out, sp.samples)
	return out
}

// Len returns the number of strands taken so far.
func (sp *Spinograph) Len() int {
	return len(sp.samples)
}

// Chords returns the trace as drawable polylines, one per strand. Colors are
// left to the backend, which usually maps them over strand time.
func (sp *Spinograph) Chords() []Path {
	out := make([]Path, len(sp.samples))
	for i, s := range sp.samples {
		out[i] = Path{Name: fmt.Sprintf("chord %d", i), Points: s.Points}
	}
	return out
}

// Reset discards the trace and rewinds to t=0. Span and Dt are kept.
func (sp *Spinograph) Reset() {
	sp.t = 0
	sp.samples = nil
}
