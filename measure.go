package measure

import (
	"iter"
	"log/slog"
)

// Length returns the length of a path.
//
// Lines contribute their exact length. Curves are flattened until every piece
// is within the tolerance (see [WithTolerance]), and contribute the length of
// the pieces' control polygons, which slightly overestimates their arc length.
func Length(seq iter.Seq[PathElement], opts ...Option) float64 {
	tr := NewTraversal(TotalLength, opts...)
	traverse(tr, seq)
	return tr.RunningLength
}

// PointAt returns the point at arc length d along a path, measured from
// its first point. Within a curve, the point is interpolated along the flat
// piece containing it.
//
// If the path is shorter than d, PointAt returns the path's last point
// and false. NaN and negative values of d select the first point.
func PointAt(seq iter.Seq[PathElement], d float64, opts ...Option) (Point, bool) {
	tr := NewTraversal(PointAtLength, opts...)
	tr.SetDesiredLength(d)
	traverse(tr, seq)
	return tr.Current, tr.Succeeded
}

// NormalAngleAt returns the direction of a path at arc length d, as an
// angle in radians (see [Vec2.Angle]). At the boundary between two commands,
// the direction of the earlier one is used. Commands of zero length have no
// direction and are skipped.
//
// If the path is shorter than d, NormalAngleAt returns 0 and false.
func NormalAngleAt(seq iter.Seq[PathElement], d float64, opts ...Option) (float64, bool) {
	tr := NewTraversal(NormalAngleAtLength, opts...)
	tr.SetDesiredLength(d)
	traverse(tr, seq)
	return tr.NormalAngle, tr.Succeeded
}

// SegmentIndexAt returns the index, within seq, of the element
// containing arc length d.
//
// If the path is shorter than d, SegmentIndexAt returns the number of
// elements and false.
func SegmentIndexAt(seq iter.Seq[PathElement], d float64, opts ...Option) (int, bool) {
	tr := NewTraversal(PointAtLength, opts...)
	tr.SetDesiredLength(d)
	traverse(tr, seq)
	return tr.SegmentIndex, tr.Succeeded
}

// traverse feeds seq to tr, keeping tr.RunningLength primed, until the
// sequence ends or, in seeking modes, the desired length has been reached.
func traverse(tr *Traversal, seq iter.Seq[PathElement]) {
	seeking := tr.Mode.seeking()
	for el := range seq {
		tr.Previous = tr.Current
		tr.RunningLength += tr.Apply(el)
		if seeking && tr.RunningLength >= tr.desired && settle(tr, el) {
			tr.Succeeded = true
			return
		}
		tr.SegmentIndex++
	}
	if seeking {
		Logger().Debug("desired length not reached",
			slog.Float64("desired", tr.desired),
			slog.Float64("length", tr.RunningLength))
	}
}

// settle computes the result of a seeking traversal whose running length has
// reached the desired length. It reports false if the result must be taken
// from a later command.
func settle(tr *Traversal, el PathElement) bool {
	dir := tr.Current.Sub(tr.Previous)
	h := dir.Hypot()
	switch tr.Mode {
	case PointAtLength:
		if h > 0 {
			// RunningLength can overshoot the desired length by up to one
			// flat piece or one line; walk back along it.
			overshoot := tr.RunningLength - tr.desired
			tr.Current = tr.Current.Translate(dir.Mul(-overshoot / h))
		}
		return true
	case NormalAngleAtLength:
		// A move jumps from the previous subpath and has no direction.
		if el.Kind == MoveToKind || h == 0 {
			return false
		}
		tr.NormalAngle = dir.Angle()
		return true
	default:
		return true
	}
}
