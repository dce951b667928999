package measure

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(2, 4).Sub(Pt(1, 1)), Vec(1, 3))
}

func TestPointMidpoint(t *testing.T) {
	diff(t, Pt(1, 7).Midpoint(Pt(4, -3)), Pt(2.5, 2))
	diff(t, Pt(-2, 3).Midpoint(Pt(-2, 3)), Pt(-2, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestVecAngle(t *testing.T) {
	diff(t, 0.0, Vec(3, 0).Angle())
	diff(t, -Vec(0, 1).Angle(), Vec(0, -1).Angle())
	diff(t, 5.0, Vec(3, -4).Hypot())
}
