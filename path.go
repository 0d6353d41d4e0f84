package io2d

// Path is an ordered sequence of path elements: analytic shapes and
// free-form sub-paths. It is built per drawing pass, consumed by Stroke
// and Fill, and reset with Begin; nothing persists across passes.
//
// Elements are visited in insertion order for both operations, so later
// elements render on top.
type Path struct {
	elements []PathElement
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// Begin clears all recorded elements.
func (p *Path) Begin() {
	p.elements = p.elements[:0]
}

// Add appends a path element.
func (p *Path) Add(e PathElement) {
	p.elements = append(p.elements, e)
}

// Elements returns the recorded elements in insertion order.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Line records a straight segment.
func (p *Path) Line(pt1, pt2 Point) {
	p.Add(Line{P1: pt1, P2: pt2})
}

// Rectangle records an axis-aligned rectangle.
func (p *Path) Rectangle(pt1, pt2 Point) {
	p.Add(Rect{P1: pt1, P2: pt2})
}

// RoundRect records a rectangle with elliptical corners of radii rx, ry.
func (p *Path) RoundRect(pt1, pt2 Point, rx, ry float64) {
	p.Add(RoundRect{P1: pt1, P2: pt2, Rx: rx, Ry: ry})
}

// Ellipse records a full ellipse inscribed in the given bounding box.
func (p *Path) Ellipse(pt1, pt2 Point) {
	p.EllipseArc(pt1, pt2, 0, twoPi)
}

// EllipseArc records an elliptical arc over [alphaStart, alphaEnd].
func (p *Path) EllipseArc(pt1, pt2 Point, alphaStart, alphaEnd float64) {
	p.Add(Ellipse{P1: pt1, P2: pt2, AlphaStart: alphaStart, AlphaEnd: alphaEnd})
}

// MoveTo opens a new sub-path at pt.
func (p *Path) MoveTo(pt Point) {
	p.Add(newSubPath(pt))
}

// LineTo extends the current sub-path with a straight run to pt.
// With no open sub-path the pen is up and the command is a no-op.
func (p *Path) LineTo(pt Point) {
	if s := p.CurrentSubPath(); s != nil {
		s.lineTo(pt)
	}
}

// ArcTo extends the current sub-path with a corner fillet: the corner
// formed at p1 between the current point and p2 is replaced by a tangent
// arc of the given radius. With no open sub-path it is a no-op.
func (p *Path) ArcTo(p1, p2 Point, radius float64) {
	if s := p.CurrentSubPath(); s != nil {
		s.arcTo(p1, p2, radius)
	}
}

// ClosePath seals the current sub-path into a ring. With no open
// sub-path it is a no-op.
func (p *Path) ClosePath() {
	if s := p.CurrentSubPath(); s != nil {
		s.close()
	}
}

// CurrentSubPath returns the open sub-path commands currently extend:
// the most recently added element, if it is a sub-path and still open.
// It returns nil otherwise, which callers use to lazily open one.
func (p *Path) CurrentSubPath() *SubPath {
	if len(p.elements) == 0 {
		return nil
	}
	s, ok := p.elements[len(p.elements)-1].(*SubPath)
	if !ok || s.closed {
		return nil
	}
	return s
}

// Stroke outlines every element in insertion order with the given style.
func (p *Path) Stroke(dst Surface, style StrokeStyle) {
	dst.SetColor(style.Color)
	for _, e := range p.elements {
		strokeElement(dst, e, style)
	}
}

// Fill fills every element in insertion order with the given style.
// Elements that fail to produce fill geometry are skipped; one bad shape
// never aborts the rest of the path.
func (p *Path) Fill(dst Surface, style FillStyle) {
	dst.SetColor(style.Color)
	for _, e := range p.elements {
		fillElement(dst, e)
	}
}
