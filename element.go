package io2d

// PathElement is one recorded drawing command in a Path. The variant set
// is closed: Line, Rect, Ellipse, RoundRect and SubPath, each owning its
// defining geometry and nothing else. Stroke and fill geometry is
// produced by a single dispatch function per operation so the compiler
// keeps the set exhaustively checkable.
type PathElement interface {
	isPathElement()
}

// Line is a straight segment between two points.
type Line struct {
	P1, P2 Point
}

func (Line) isPathElement() {}

// Rect is an axis-aligned rectangle spanned by two corner points.
type Rect struct {
	P1, P2 Point
}

func (Rect) isPathElement() {}

// Ellipse is an elliptical arc inscribed in the bounding box spanned by
// two corner points, covering the angle range [AlphaStart, AlphaEnd].
type Ellipse struct {
	P1, P2               Point
	AlphaStart, AlphaEnd float64
}

func (Ellipse) isPathElement() {}

// Spec derives the sampling spec from the bounding box and angle range.
func (e Ellipse) Spec() EllipseSpec {
	return EllipseInRect(e.P1, e.P2, e.AlphaStart, e.AlphaEnd)
}

// RoundRect is an axis-aligned rectangle with elliptical corners of radii
// Rx and Ry.
type RoundRect struct {
	P1, P2 Point
	Rx, Ry float64
}

func (RoundRect) isPathElement() {}

func (*SubPath) isPathElement() {}

// strokeElement produces the stroke geometry for one element and submits
// it to dst. The style's color is assumed to be set on dst already.
func strokeElement(dst Surface, e PathElement, style StrokeStyle) {
	switch el := e.(type) {
	case Line:
		strokeLine(dst, el, style)
	case Rect:
		strokeRect(dst, el, style)
	case Ellipse:
		strokePolyline(dst, el.Spec().Sample(), style)
	case RoundRect:
		strokeRoundRect(dst, el, style)
	case *SubPath:
		strokePolyline(dst, el.points, style)
	}
}

// fillElement produces the fill geometry for one element and submits it
// to dst. Lines have no interior and fill nothing.
func fillElement(dst Surface, e PathElement) {
	switch el := e.(type) {
	case Line:
		// no interior
	case Rect:
		dst.FillRect(el.P1, el.P2)
	case Ellipse:
		dst.FillTriangles(el.Spec().Fan())
	case RoundRect:
		fillRoundRect(dst, el)
	case *SubPath:
		fillSubPath(dst, el)
	}
}
