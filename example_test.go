package measure_test

import (
	"fmt"
	"math"

	"honnef.co/go/measure"
)

func ExampleBezPath_Length() {
	var p measure.BezPath
	p.MoveTo(measure.Pt(0, 0))
	p.LineTo(measure.Pt(10, 0))
	p.ClosePath()
	fmt.Println(p.Length())
	// Output: 20
}

func ExamplePointAt() {
	p := measure.BezPath{
		measure.MoveTo(measure.Pt(0, 0)),
		measure.LineTo(measure.Pt(10, 0)),
		measure.LineTo(measure.Pt(10, 10)),
	}
	pt, ok := measure.PointAt(p.Elements(), 15)
	fmt.Println(pt, ok)
	_, ok = measure.PointAt(p.Elements(), 25)
	fmt.Println(ok)
	// Output:
	// (10, 5) true
	// false
}

func ExampleNormalAngleAt() {
	p := measure.BezPath{
		measure.MoveTo(measure.Pt(0, 0)),
		measure.LineTo(measure.Pt(0, 10)),
	}
	angle, _ := measure.NormalAngleAt(p.Elements(), 5)
	fmt.Printf("%.1f°\n", angle*180/math.Pi)
	// Output: 90.0°
}

// A traversal can also be driven by hand. The caller sums the lengths
// returned by each command.
func ExampleTraversal() {
	tr := measure.NewTraversal(measure.TotalLength)
	total := tr.MoveTo(measure.Pt(0, 0))
	total += tr.LineTo(measure.Pt(3, 4))
	total += tr.CubicTo(measure.Pt(3, 4), measure.Pt(6, 8), measure.Pt(6, 8))
	total += tr.ClosePath()
	fmt.Printf("%.6f\n", total)
	// Output: 20.000000
}
