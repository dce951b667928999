package measure

import (
	"fmt"
	"log/slog"
	"math"
)

// Mode selects what a [Traversal] is measuring.
type Mode int

const (
	// TotalLength sums the length of every command.
	TotalLength Mode = iota + 1
	// PointAtLength looks for the point at the desired length.
	PointAtLength
	// NormalAngleAtLength looks for the direction of the path at the desired
	// length.
	NormalAngleAtLength
)

func (m Mode) String() string {
	switch m {
	case TotalLength:
		return "TotalLength"
	case PointAtLength:
		return "PointAtLength"
	case NormalAngleAtLength:
		return "NormalAngleAtLength"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// seeking reports whether the mode searches for a specific arc length.
func (m Mode) seeking() bool {
	return m == PointAtLength || m == NormalAngleAtLength
}

// Option configures a [Traversal].
type Option func(*options)

type options struct {
	tolerance float64
}

func defaultOptions() options {
	return options{
		tolerance: DefaultTolerance,
	}
}

// WithTolerance sets the flatness tolerance used when measuring curves. Smaller
// values are more accurate and more expensive. Values that aren't positive and
// finite select [DefaultTolerance].
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 && !math.IsInf(tol, 0) {
			o.tolerance = tol
		} else {
			o.tolerance = DefaultTolerance
		}
	}
}

// Traversal is the state of a single measurement of a path. The path is fed to
// it one command at a time, in order, and every command returns the length it
// contributed.
//
// The caller drives the traversal: it sums the returned lengths, stores the
// sum in RunningLength before every curve command, and in seeking modes stops
// issuing commands once the sum reaches the desired length. Nothing in
// Traversal prevents a later command from moving Current past the point that
// was found. [Length], [PointAt] and [NormalAngleAt] implement this
// protocol for sequences of path elements.
//
// A Traversal must not be used concurrently.
//
// Calling any drawing command before MoveTo is a programming error; the
// result is meaningless but harmless.
type Traversal struct {
	Mode Mode

	// Succeeded is not used by Traversal. Callers can use it to record that
	// the desired length was reached.
	Succeeded bool
	// RunningLength is the length of all commands processed before the
	// current one. Curve commands in seeking modes compare it, plus the
	// length measured so far within the curve, to the desired length.
	RunningLength float64

	// Start is the first point of the current subpath.
	Start Point
	// Current is the end point of the last command. In seeking modes, curve
	// commands set it to the end of the flat piece that crossed the desired
	// length instead.
	Current Point
	// Previous is the start of the flat piece ending at Current, as set by
	// curve commands in seeking modes. Callers may set it before commands to
	// track the start of lines.
	Previous Point

	// Anchor1 and Anchor2 are the tangent anchor pair: Anchor1 − Anchor2, or
	// its negation, is the direction of the path as it leaves Current.
	//
	// After QuadTo(p1, p2), Anchor1 is p1 and Anchor2 is p2. After
	// CubicTo(p1, p2, p3), Anchor1 is p3 and Anchor2 is p2. MoveTo, LineTo and
	// ClosePath set both anchors to the new current point, so the direction of
	// a line can't be recovered from them.
	Anchor1 Point
	Anchor2 Point

	// SegmentIndex is not used by Traversal. Callers can use it to count
	// commands.
	SegmentIndex int
	// NormalAngle is not used by Traversal. Callers can use it to store the
	// angle, in radians, derived from Previous and Current.
	NormalAngle float64

	desired float64
	started bool
	pieces  int
	opts    options
}

// NewTraversal returns a traversal measuring in the given mode.
func NewTraversal(mode Mode, opts ...Option) *Traversal {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Traversal{
		Mode: mode,
		opts: o,
	}
}

// SetDesiredLength sets the length that seeking modes search for. It must be
// called before the first command; later calls are ignored.
//
// NaN and negative lengths are treated as 0, that is, the start of the path.
// A length of +Inf is never reached.
func (tr *Traversal) SetDesiredLength(d float64) {
	if tr.started {
		Logger().Debug("ignoring desired length set after traversal started",
			slog.Float64("desired", d))
		return
	}
	if math.IsNaN(d) || d < 0 {
		Logger().Debug("clamping desired length to 0", slog.Float64("desired", d))
		d = 0
	}
	tr.desired = d
}

// DesiredLength returns the length that seeking modes search for.
func (tr *Traversal) DesiredLength() float64 {
	return tr.desired
}

// Tolerance returns the flatness tolerance used for curves.
func (tr *Traversal) Tolerance() float64 {
	return tr.opts.tolerance
}

// Pieces returns the number of flat pieces that curves have been divided into
// so far.
func (tr *Traversal) Pieces() int {
	return tr.pieces
}

// MoveTo starts a new subpath at p. It contributes no length.
func (tr *Traversal) MoveTo(p Point) float64 {
	tr.started = true
	tr.Current = p
	tr.Start = p
	tr.Anchor1 = p
	tr.Anchor2 = p
	return 0
}

// LineTo measures a line from the current point to p.
func (tr *Traversal) LineTo(p Point) float64 {
	tr.started = true
	d := tr.Current.Distance(p)
	tr.Current = p
	tr.Anchor1 = p
	tr.Anchor2 = p
	return d
}

// QuadTo measures a quadratic Bézier from the current point, with control
// point p1 and end point p2.
//
// In [TotalLength] mode, Current moves to p2. In seeking modes, Current is
// left where the flattening stopped.
func (tr *Traversal) QuadTo(p1, p2 Point) float64 {
	tr.started = true
	q := QuadBez{tr.Current, p1, p2}
	if q.IsNaN() || q.IsInf() {
		Logger().Debug("measuring non-finite curve", slog.Any("curve", q))
	}
	d := curveLength(tr, q)
	tr.Anchor1 = p1
	tr.Anchor2 = p2
	if !tr.Mode.seeking() {
		tr.Current = p2
	}
	return d
}

// CubicTo measures a cubic Bézier from the current point, with control points
// p1 and p2 and end point p3.
//
// In [TotalLength] mode, Current moves to p3. In seeking modes, Current is
// left where the flattening stopped.
func (tr *Traversal) CubicTo(p1, p2, p3 Point) float64 {
	tr.started = true
	c := CubicBez{tr.Current, p1, p2, p3}
	if c.IsNaN() || c.IsInf() {
		Logger().Debug("measuring non-finite curve", slog.Any("curve", c))
	}
	d := curveLength(tr, c)
	// Stored end first, unlike QuadTo.
	tr.Anchor1 = p3
	tr.Anchor2 = p2
	if !tr.Mode.seeking() {
		tr.Current = p3
	}
	return d
}

// ClosePath measures the line from the current point back to the start of the
// subpath, and moves there.
func (tr *Traversal) ClosePath() float64 {
	tr.started = true
	d := tr.Current.Distance(tr.Start)
	tr.Current = tr.Start
	tr.Anchor1 = tr.Start
	tr.Anchor2 = tr.Start
	return d
}

// Apply dispatches a path element to the matching command and returns its
// length. Elements of unknown kind contribute nothing.
func (tr *Traversal) Apply(el PathElement) float64 {
	switch el.Kind {
	case MoveToKind:
		return tr.MoveTo(el.P0)
	case LineToKind:
		return tr.LineTo(el.P0)
	case QuadToKind:
		return tr.QuadTo(el.P0, el.P1)
	case CubicToKind:
		return tr.CubicTo(el.P0, el.P1, el.P2)
	case ClosePathKind:
		return tr.ClosePath()
	default:
		return 0
	}
}
