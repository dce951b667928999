package main

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"

	"honnef.co/go/measure"
)

var errSyntax = errors.New("bad path data")

func skipCommaWhitespace(data []byte) int {
	i := 0
	for i < len(data) && (data[i] == ' ' || data[i] == ',' || data[i] == '\n' || data[i] == '\r' || data[i] == '\t') {
		i++
	}
	return i
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'Q', 'q', 'C', 'c', 'Z', 'z':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

type pathReader struct {
	data []byte
	i    int
}

func (r *pathReader) num() (float64, error) {
	r.i += skipCommaWhitespace(r.data[r.i:])
	f, n := strconv.ParseFloat(r.data[r.i:])
	if n == 0 {
		return 0, fmt.Errorf("%w: expected number at offset %d", errSyntax, r.i)
	}
	r.i += n
	return f, nil
}

func (r *pathReader) point(rel bool, cur measure.Point) (measure.Point, error) {
	x, err := r.num()
	if err != nil {
		return measure.Point{}, err
	}
	y, err := r.num()
	if err != nil {
		return measure.Point{}, err
	}
	if rel {
		x += cur.X
		y += cur.Y
	}
	return measure.Pt(x, y), nil
}

// parsePath reads SVG path data made of M, L, H, V, Q, C and Z commands and
// their relative forms. Numbers following a command without a new command
// letter repeat it, with MoveTo repeating as LineTo.
func parsePath(s string) (measure.BezPath, error) {
	r := &pathReader{data: []byte(s)}
	var p measure.BezPath
	var cur, start measure.Point
	var cmd byte
	for {
		r.i += skipCommaWhitespace(r.data[r.i:])
		if r.i == len(r.data) {
			break
		}
		if c := r.data[r.i]; isCommand(c) {
			cmd = c
			r.i++
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", errSyntax, c, r.i)
		} else if isLetter(c) {
			return nil, fmt.Errorf("%w: unsupported command %q", errSyntax, c)
		}

		rel := 'a' <= cmd && cmd <= 'z'
		switch cmd {
		case 'M', 'm':
			pt, err := r.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p.MoveTo(pt)
			start = pt
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l':
			pt, err := r.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p.LineTo(pt)
		case 'H', 'h':
			x, err := r.num()
			if err != nil {
				return nil, err
			}
			if rel {
				x += cur.X
			}
			p.LineTo(measure.Pt(x, cur.Y))
		case 'V', 'v':
			y, err := r.num()
			if err != nil {
				return nil, err
			}
			if rel {
				y += cur.Y
			}
			p.LineTo(measure.Pt(cur.X, y))
		case 'Q', 'q':
			p1, err := r.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p2, err := r.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p.QuadTo(p1, p2)
		case 'C', 'c':
			p1, err := r.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p2, err := r.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p3, err := r.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p.CubicTo(p1, p2, p3)
		case 'Z', 'z':
			p.ClosePath()
			cur = start
			continue
		}
		cur, _ = p[len(p)-1].EndPoint()
	}
	if len(p) > 0 && p[0].Kind != measure.MoveToKind {
		return nil, fmt.Errorf("%w: path must start with a move", errSyntax)
	}
	return p, nil
}
