package io2d

import "math"

const twoPi = 2 * math.Pi

// EllipseSpec describes an elliptical arc: an axis-aligned ellipse and an
// angle range in radians. AlphaEnd must be greater than or equal to
// AlphaStart; the full ellipse is [0, 2π].
type EllipseSpec struct {
	Center Point
	Rx, Ry float64

	AlphaStart, AlphaEnd float64
}

// EllipseInRect derives an ellipse spec from the bounding box spanned by
// pt1 and pt2, with the given angle range.
func EllipseInRect(pt1, pt2 Point, alphaStart, alphaEnd float64) EllipseSpec {
	rx := (pt2.X - pt1.X) / 2
	ry := (pt2.Y - pt1.Y) / 2
	return EllipseSpec{
		Center:     Pt(pt1.X+rx, pt1.Y+ry),
		Rx:         rx,
		Ry:         ry,
		AlphaStart: alphaStart,
		AlphaEnd:   alphaEnd,
	}
}

// at returns the point on the ellipse at angle alpha.
func (e EllipseSpec) at(alpha float64) Point {
	return Pt(
		e.Center.X+math.Cos(alpha)*e.Rx,
		e.Center.Y+math.Sin(alpha)*e.Ry,
	)
}

// Sample converts the arc into an ordered point sequence.
//
// The angular step is 2π divided by the approximate perimeter
// 2π·sqrt((rx²+ry²)/2), which spaces samples roughly one unit of arc
// length apart regardless of ellipse size. The final point is emitted
// exactly at AlphaEnd so the sequence never stops short of the endpoint;
// for a full [a, a+2π] range the last point coincides with the first.
//
// A fully degenerate ellipse (both radii zero) has no usable perimeter;
// it samples to the two endpoints only.
func (e EllipseSpec) Sample() []Point {
	perimeter := 2 * math.Pi * math.Sqrt((e.Rx*e.Rx+e.Ry*e.Ry)/2)
	step := (2 * math.Pi) / perimeter
	if perimeter <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return []Point{e.at(e.AlphaStart), e.at(e.AlphaEnd)}
	}

	var points []Point
	alpha := e.AlphaStart
	for ; alpha <= e.AlphaEnd; alpha += step {
		points = append(points, e.at(alpha))
	}
	// The loop overshoots; close the remaining gap with one sample
	// exactly at the end angle.
	if alpha-step < e.AlphaEnd {
		points = append(points, e.at(e.AlphaEnd))
	}
	return points
}

// Fan converts the arc into a triangle fan around the ellipse center, one
// triangle per consecutive sample pair. This is exact for the convex
// closed curve case; it is not a general triangulator.
func (e EllipseSpec) Fan() []Triangle {
	points := e.Sample()
	triangles := make([]Triangle, 0, len(points))
	for i := 1; i < len(points); i++ {
		triangles = append(triangles, Triangle{
			A: e.Center,
			B: points[i-1],
			C: points[i],
		})
	}
	return triangles
}
