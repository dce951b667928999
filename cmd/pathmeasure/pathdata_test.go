package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tdewolff/test"

	"honnef.co/go/measure"
)

func TestParsePath(t *testing.T) {
	var tests = []struct {
		data string
		want measure.BezPath
	}{
		{"", nil},
		{"M1 2", measure.BezPath{measure.MoveTo(measure.Pt(1, 2))}},
		{"M0,0 L10,0 Z", measure.BezPath{
			measure.MoveTo(measure.Pt(0, 0)),
			measure.LineTo(measure.Pt(10, 0)),
			measure.ClosePath(),
		}},
		{"m1 1 2 0 0 2", measure.BezPath{
			measure.MoveTo(measure.Pt(1, 1)),
			measure.LineTo(measure.Pt(3, 1)),
			measure.LineTo(measure.Pt(3, 3)),
		}},
		{"M0 0H5V5h-5v-5", measure.BezPath{
			measure.MoveTo(measure.Pt(0, 0)),
			measure.LineTo(measure.Pt(5, 0)),
			measure.LineTo(measure.Pt(5, 5)),
			measure.LineTo(measure.Pt(0, 5)),
			measure.LineTo(measure.Pt(0, 0)),
		}},
		{"M0 0Q5 5 10 0q5-5 10 0", measure.BezPath{
			measure.MoveTo(measure.Pt(0, 0)),
			measure.QuadTo(measure.Pt(5, 5), measure.Pt(10, 0)),
			measure.QuadTo(measure.Pt(15, -5), measure.Pt(20, 0)),
		}},
		{"M1 1c0 1 1 1 1 0C3 0 3 1 4 1", measure.BezPath{
			measure.MoveTo(measure.Pt(1, 1)),
			measure.CubicTo(measure.Pt(1, 2), measure.Pt(2, 2), measure.Pt(2, 1)),
			measure.CubicTo(measure.Pt(3, 0), measure.Pt(3, 1), measure.Pt(4, 1)),
		}},
		{"M2 2l1 0zl0 1", measure.BezPath{
			measure.MoveTo(measure.Pt(2, 2)),
			measure.LineTo(measure.Pt(3, 2)),
			measure.ClosePath(),
			measure.LineTo(measure.Pt(2, 3)),
		}},
		{"M.5.5l1e1 0", measure.BezPath{
			measure.MoveTo(measure.Pt(0.5, 0.5)),
			measure.LineTo(measure.Pt(10.5, 0.5)),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			p, err := parsePath(tt.data)
			test.Error(t, err)
			test.T(t, len(p), len(tt.want))
			for i := range tt.want {
				test.T(t, p[i], tt.want[i])
			}
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	var tests = []string{
		"L1 2",
		"1 2",
		"M1",
		"M1 2 L3",
		"M0 0 A1 1 0 0 0 2 2",
		"M0 0 Z 1 2",
		"Z",
		"M0 0 L#",
	}
	for _, data := range tests {
		t.Run(data, func(t *testing.T) {
			_, err := parsePath(data)
			test.That(t, errors.Is(err, errSyntax), "expected syntax error, got", err)
		})
	}
}

func TestLengthCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := &Length{Tolerance: 1e-5, Path: "M0 0h3v4z"}
	test.Error(t, cmd.run(&buf))
	test.String(t, buf.String(), "12\n")
}

func TestPointCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := &Point{Distance: 13, Tolerance: 1e-5, Path: "M0 0L10 0L10 10"}
	test.Error(t, cmd.run(&buf))
	test.String(t, buf.String(), "10 3\n")

	cmd.Distance = 21
	buf.Reset()
	err := cmd.run(&buf)
	test.That(t, errors.Is(err, errNotReached), "expected miss, got", err)
	test.T(t, buf.Len(), 0)
}

func TestAngleCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := &Angle{Distance: 15, Tolerance: 1e-5, Path: "M0 0L10 0L10 10"}
	test.Error(t, cmd.run(&buf))

	var deg float64
	_, err := fmt.Sscan(buf.String(), &deg)
	test.Error(t, err)
	test.Float(t, deg, 90)
}

func TestParsePathErrorMessages(t *testing.T) {
	var tests = []struct {
		data string
		want string
	}{
		{"M0 0 A1 1 0 0 0 2 2", "unsupported command 'A'"},
		{"M0 0 s1 1 2 2", "unsupported command 's'"},
		{"M0 0 _", "expected number"},
		{"M0 0 [1 2]", "expected number"},
		{"M0 0 `", "expected number"},
		{"^", "unexpected '^'"},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			_, err := parsePath(tt.data)
			test.That(t, err != nil && strings.Contains(err.Error(), tt.want), "got", err, "want", tt.want)
		})
	}
}
