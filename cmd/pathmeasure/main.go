// Command pathmeasure measures SVG-style path data: its total length, the
// point at a distance along it, or its direction at that distance.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/tdewolff/argp"

	"honnef.co/go/measure"
)

var errNotReached = errors.New("distance is beyond the end of the path")

type Length struct {
	Tolerance float64 `short:"t" default:"1e-5" desc:"Flatness tolerance for curves"`
	Verbose   bool    `short:"v" desc:"Log debug information to stderr"`
	Path      string  `index:"0" desc:"Path data"`
}

type Point struct {
	Distance  float64 `short:"d" default:"0" desc:"Distance along the path"`
	Tolerance float64 `short:"t" default:"1e-5" desc:"Flatness tolerance for curves"`
	Verbose   bool    `short:"v" desc:"Log debug information to stderr"`
	Path      string  `index:"0" desc:"Path data"`
}

type Angle struct {
	Distance  float64 `short:"d" default:"0" desc:"Distance along the path"`
	Tolerance float64 `short:"t" default:"1e-5" desc:"Flatness tolerance for curves"`
	Verbose   bool    `short:"v" desc:"Log debug information to stderr"`
	Path      string  `index:"0" desc:"Path data"`
}

func main() {
	root := argp.NewCmd(&Length{}, "Measure lengths along paths of lines and Bézier curves")
	root.AddCmd(&Point{}, "point", "Point at a distance along the path")
	root.AddCmd(&Angle{}, "angle", "Direction of the path at a distance, in degrees")
	root.Parse()
	root.PrintHelp()
}

func setup(path string, verbose bool) (measure.BezPath, error) {
	if verbose {
		measure.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	p, err := parsePath(path)
	if err != nil {
		return nil, fmt.Errorf("parsing path: %w", err)
	}
	if p.IsNaN() || p.IsInf() {
		return nil, fmt.Errorf("%w: path has non-finite coordinates", errSyntax)
	}
	return p, nil
}

func (cmd *Length) Run() error {
	if cmd.Path == "" {
		return argp.ShowUsage
	}
	return cmd.run(os.Stdout)
}

func (cmd *Length) run(w io.Writer) error {
	p, err := setup(cmd.Path, cmd.Verbose)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%g\n", p.Length(measure.WithTolerance(cmd.Tolerance)))
	return err
}

func (cmd *Point) Run() error {
	if cmd.Path == "" {
		return argp.ShowUsage
	}
	return cmd.run(os.Stdout)
}

func (cmd *Point) run(w io.Writer) error {
	p, err := setup(cmd.Path, cmd.Verbose)
	if err != nil {
		return err
	}
	pt, ok := p.PointAt(cmd.Distance, measure.WithTolerance(cmd.Tolerance))
	if !ok {
		return fmt.Errorf("point at %g: %w", cmd.Distance, errNotReached)
	}
	_, err = fmt.Fprintf(w, "%g %g\n", pt.X, pt.Y)
	return err
}

func (cmd *Angle) Run() error {
	if cmd.Path == "" {
		return argp.ShowUsage
	}
	return cmd.run(os.Stdout)
}

func (cmd *Angle) run(w io.Writer) error {
	p, err := setup(cmd.Path, cmd.Verbose)
	if err != nil {
		return err
	}
	a, ok := p.NormalAngleAt(cmd.Distance, measure.WithTolerance(cmd.Tolerance))
	if !ok {
		return fmt.Errorf("angle at %g: %w", cmd.Distance, errNotReached)
	}
	_, err = fmt.Fprintf(w, "%g\n", a*180/math.Pi)
	return err
}
