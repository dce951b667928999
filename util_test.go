package measure

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// flatness returns the difference between the control polygon's length and
// the chord's length.
func flatness[C subdivider[C]](c C) float64 {
	return c.ControlLen() - c.Start().Distance(c.End())
}

// sampledLength approximates the arc length of a curve by a fine polyline.
func sampledLength(eval func(float64) Point, n int) float64 {
	l := 0.0
	prev := eval(0)
	for i := 1; i <= n; i++ {
		p := eval(float64(i) / float64(n))
		l += p.Distance(prev)
		prev = p
	}
	return l
}
