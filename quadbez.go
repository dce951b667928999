package measure

// QuadBez is a quadratic Bézier segment with start point P0, control point P1
// and end point P2.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

var _ subdivider[QuadBez] = QuadBez{}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

// ControlLen returns the length of the control polygon, |P0P1| + |P1P2|. It is
// never less than the arc length of the curve and approaches it as the curve is
// subdivided.
func (q QuadBez) ControlLen() float64 {
	return q.P0.Distance(q.P1) + q.P1.Distance(q.P2)
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Subdivide splits the curve at t = 0.5 using de Casteljau. Both halves are
// built from midpoints only and together describe exactly the original curve.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	l1 := q.P0.Midpoint(q.P1)
	r1 := q.P1.Midpoint(q.P2)
	pm := l1.Midpoint(r1)
	return QuadBez{q.P0, l1, pm},
		QuadBez{pm, r1, q.P2}
}

// IsInf reports whether any of the curve's points has an infinite coordinate.
func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

// IsNaN reports whether any of the curve's points has a NaN coordinate.
func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}
