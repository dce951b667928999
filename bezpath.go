package measure

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is a single command of a Bézier path. Points that the kind
// doesn't use are zero.
//
// A valid path has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s)", el.P0, el.P1)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a sequence of path elements, possibly containing several
// subpaths.
type BezPath []PathElement

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Length returns the length of the path. See [Length].
func (p BezPath) Length(opts ...Option) float64 {
	return Length(p.Elements(), opts...)
}

// PointAt returns the point at arc length d along the path. See [PointAt].
func (p BezPath) PointAt(d float64, opts ...Option) (Point, bool) {
	return PointAt(p.Elements(), d, opts...)
}

// NormalAngleAt returns the direction of the path at arc length d. See
// [NormalAngleAt].
func (p BezPath) NormalAngleAt(d float64, opts ...Option) (float64, bool) {
	return NormalAngleAt(p.Elements(), d, opts...)
}

// IsInf reports whether any element has an infinite coordinate.
func (p BezPath) IsInf() bool {
	for i := range p {
		if p[i].P0.IsInf() || p[i].P1.IsInf() || p[i].P2.IsInf() {
			return true
		}
	}
	return false
}

// IsNaN reports whether any element has a NaN coordinate.
func (p BezPath) IsNaN() bool {
	for i := range p {
		if p[i].P0.IsNaN() || p[i].P1.IsNaN() || p[i].P2.IsNaN() {
			return true
		}
	}
	return false
}
