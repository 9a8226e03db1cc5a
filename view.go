package solarkit

// RelativeFrame renders the selection at time t as seen from the named origin
// body: the origin sits at the frame center and the focus moves to the
// negated origin position. The origin must be in the system but does not have
// to be part of the selection.
func (r *Renderer) RelativeFrame(origin string, t float64) (Frame, error) {
	ob, ok := r.sys.Body(origin)
	if !ok {
		return Frame{}, UnknownBodyError{System: r.sys.Name, Body: origin}
	}
	op, err := r.position(ob, t)
	if err != nil {
		return Frame{}, err
	}
	fr, err := r.Frame(t)
	if err != nil {
		return Frame{}, err
	}
	for i := range fr.Positions {
		fr.Positions[i].Point = fr.Positions[i].Point.Sub(op)
	}
	fr.Center = op.Neg()
	return fr, nil
}
