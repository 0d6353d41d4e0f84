package io2d

import "math"

// Shape generators: they turn the analytic shape variants into surface
// submissions, choosing the hairline or thick pipeline from the style.

func strokeLine(dst Surface, l Line, style StrokeStyle) {
	if style.IsHairline() {
		dst.DrawLine(l.P1, l.P2)
		return
	}
	strokeSegment(dst, l.P1, l.P2, style.Width)
}

// strokeSegment expands one segment to a quad and submits it as a strip.
// Zero-length segments are skipped.
func strokeSegment(dst Surface, a, b Point, width float64) {
	quad, ok := ExpandSegment(a, b, width)
	if !ok {
		Logger().Debug("io2d: skipping zero-length stroke segment", "at", a)
		return
	}
	dst.FillTriangleStrip(quad[:])
}

// strokePolyline strokes consecutive point pairs. Thick strokes expand
// each pair independently; there are no joins at interior vertices.
func strokePolyline(dst Surface, points []Point, style StrokeStyle) {
	if len(points) < 2 {
		return
	}
	if style.IsHairline() {
		dst.DrawLineStrip(points)
		return
	}
	for _, quad := range ExpandPolyline(points, style.Width) {
		dst.FillTriangleStrip(quad[:])
	}
}

func strokeRect(dst Surface, r Rect, style StrokeStyle) {
	if style.IsHairline() {
		dst.DrawLineStrip([]Point{
			r.P1,
			Pt(r.P2.X, r.P1.Y),
			r.P2,
			Pt(r.P1.X, r.P2.Y),
			r.P1,
		})
		return
	}
	// Four independent edges. Corners are neither mitered nor joined;
	// the small gap or overlap there is accepted.
	strokeSegment(dst, r.P1, Pt(r.P2.X, r.P1.Y), style.Width)
	strokeSegment(dst, Pt(r.P2.X, r.P1.Y), r.P2, style.Width)
	strokeSegment(dst, r.P2, Pt(r.P1.X, r.P2.Y), style.Width)
	strokeSegment(dst, Pt(r.P1.X, r.P2.Y), r.P1, style.Width)
}

// cornerArcs returns the four quarter-ellipse corner specs of the
// rounded rectangle in top-left, top-right, bottom-right, bottom-left
// order.
func (r RoundRect) cornerArcs() [4]EllipseSpec {
	return [4]EllipseSpec{
		EllipseInRect(
			r.P1,
			Pt(r.P1.X+r.Rx*2, r.P1.Y+r.Ry*2),
			math.Pi, 3*math.Pi/2),
		EllipseInRect(
			Pt(r.P2.X-r.Rx*2, r.P1.Y),
			Pt(r.P2.X, r.P1.Y+r.Ry*2),
			3*math.Pi/2, 2*math.Pi),
		EllipseInRect(
			Pt(r.P2.X-r.Rx*2, r.P2.Y-r.Ry*2),
			r.P2,
			0, math.Pi/2),
		EllipseInRect(
			Pt(r.P1.X, r.P2.Y-r.Ry*2),
			Pt(r.P1.X+r.Rx*2, r.P2.Y),
			math.Pi/2, math.Pi),
	}
}

// edges returns the four straight edge segments of a rounded rectangle,
// inset by the corner radii.
func (r RoundRect) edges() [4]Segment {
	return [4]Segment{
		{Pt(r.P1.X+r.Rx, r.P1.Y), Pt(r.P2.X-r.Rx, r.P1.Y)}, // top
		{Pt(r.P2.X, r.P1.Y+r.Ry), Pt(r.P2.X, r.P2.Y-r.Ry)}, // right
		{Pt(r.P2.X-r.Rx, r.P2.Y), Pt(r.P1.X+r.Rx, r.P2.Y)}, // bottom
		{Pt(r.P1.X, r.P2.Y-r.Ry), Pt(r.P1.X, r.P1.Y+r.Ry)}, // left
	}
}

func strokeRoundRect(dst Surface, r RoundRect, style StrokeStyle) {
	edges := r.edges()
	arcs := r.cornerArcs()

	if style.IsHairline() {
		dst.DrawLines(edges[:])
		for _, arc := range arcs {
			dst.DrawLineStrip(arc.Sample())
		}
		return
	}
	for _, e := range edges {
		strokeSegment(dst, e.A, e.B, style.Width)
	}
	for _, arc := range arcs {
		strokePolyline(dst, arc.Sample(), style)
	}
}

// fillRoundRect covers the shape with two overlapping axis-aligned
// rectangles (the horizontal and vertical bars of the interior) plus one
// triangle fan per corner. The union is exact; the bars overlap in the
// middle, which double-blends under a non-opaque fill.
func fillRoundRect(dst Surface, r RoundRect) {
	dst.FillRect(Pt(r.P1.X, r.P1.Y+r.Ry), Pt(r.P2.X, r.P2.Y-r.Ry))
	dst.FillRect(Pt(r.P1.X+r.Rx, r.P1.Y), Pt(r.P2.X-r.Rx, r.P2.Y))
	for _, arc := range r.cornerArcs() {
		dst.FillTriangles(arc.Fan())
	}
}
