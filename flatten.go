package measure

import "log/slog"

// DefaultTolerance is the flatness gap, in path units, below which a curve
// piece is measured by the length of its control polygon.
const DefaultTolerance = 1e-5

// pieceWarnThreshold is the number of flat pieces of a single curve after
// which curveLength logs that the curve is expensive to measure.
const pieceWarnThreshold = 1 << 16

// subdivider is implemented by [QuadBez] and [CubicBez].
type subdivider[C any] interface {
	Start() Point
	End() Point
	ControlLen() float64
	Subdivide() (C, C)
}

// curveLength returns the length of c, approximated by flattening it until
// every piece's flatness is within the traversal's tolerance.
//
// Pieces are visited depth-first, left to right, which is the order of the
// curve's parametrization. In seeking modes every flat piece is recorded in
// tr.Previous and tr.Current, and measuring stops at the first piece that
// takes tr.RunningLength past the desired length. The returned length then
// only covers the curve up to and including that piece.
func curveLength[C subdivider[C]](tr *Traversal, c C) float64 {
	seeking := tr.Mode.seeking()
	// Right halves waiting for their left sibling to be fully flattened.
	var stack []C
	length := 0.0
	pieces := 0
	for {
		// The flatness gap: control polygon length minus chord length.
		d := c.ControlLen()
		if d-c.Start().Distance(c.End()) > tr.opts.tolerance {
			left, right := c.Subdivide()
			stack = append(stack, right)
			c = left
			continue
		}

		length += d
		pieces++
		if pieces == pieceWarnThreshold {
			Logger().Debug("curve needs many pieces to flatten",
				slog.Int("pieces", pieces),
				slog.Float64("tolerance", tr.opts.tolerance))
		}
		if seeking {
			tr.Previous = c.Start()
			tr.Current = c.End()
			if tr.RunningLength+length > tr.desired {
				break
			}
		}
		if len(stack) == 0 {
			break
		}
		c = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
	tr.pieces += pieces
	return length
}
