package measure

// CubicBez is a cubic Bézier segment with start point P0, control points P1
// and P2, and end point P3.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var _ subdivider[CubicBez] = CubicBez{}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// ControlLen returns the length of the control polygon, |P0P1| + |P1P2| +
// |P2P3|. It is never less than the arc length of the curve and approaches it
// as the curve is subdivided.
func (c CubicBez) ControlLen() float64 {
	return c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Subdivide subdivides the cubic into halves, using de Casteljau. Only
// midpoints are taken, so no parametric evaluation is involved.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	inner := c.P1.Midpoint(c.P2)
	l1 := c.P0.Midpoint(c.P1)
	l2 := l1.Midpoint(inner)
	r2 := c.P2.Midpoint(c.P3)
	r1 := r2.Midpoint(inner)
	pm := l2.Midpoint(r1)
	return CubicBez{c.P0, l1, l2, pm},
		CubicBez{pm, r1, r2, c.P3}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}
