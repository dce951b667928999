// Package measure computes lengths along 2D paths made of lines and quadratic
// and cubic Béziers: the total length of a path, the point at a given distance
// from its start, and the direction of the path at that point. Typical uses
// are measuring strokes, placing markers, and moving objects along a path.
//
// # Measuring curves
//
// Curves are measured by adaptive flattening. A curve whose control polygon
// is longer than its chord by more than a tolerance (see [DefaultTolerance]
// and [WithTolerance]) is split in half with de Casteljau's algorithm, and
// both halves are measured in turn. A curve that is flat enough contributes
// the length of its control polygon. Subdivision uses an explicit stack, so
// pathological curves cannot exhaust the goroutine stack, and visits pieces
// in the order of the curve's parametrization.
//
// # Traversals
//
// A [Traversal] is fed path commands one at a time and returns the length
// each of them contributes. The same type serves three queries, selected by
// its [Mode]: [TotalLength], [PointAtLength] and [NormalAngleAtLength]. In the
// two seeking modes, curve commands stop flattening as soon as the desired
// length is passed and leave the flat piece containing it in
// [Traversal.Previous] and [Traversal.Current].
//
// Most users don't need to drive a traversal themselves. [Length], [PointAt],
// [NormalAngleAt] and [SegmentIndexAt] run one over a sequence of
// [PathElement], and [BezPath] offers the same as methods.
//
// # Logging
//
// The package logs nothing by default. See [SetLogger].
package measure
