package io2d

// Canvas is the drawing front end: it owns the current path, the active
// stroke and fill styles, and the surface all geometry is submitted to.
//
// The surface's frame lifecycle (begin/flush/end) stays with whoever
// created the surface; the canvas only submits geometry into the current
// frame. A canvas is single-threaded and ephemeral per frame.
type Canvas struct {
	surface Surface
	width   float64
	height  float64

	// StrokeStyle is applied by Stroke to every accumulated element.
	StrokeStyle StrokeStyle

	// FillStyle is applied by Fill to every accumulated element.
	FillStyle FillStyle

	path *Path
}

// NewCanvas creates a canvas of the given size drawing onto surface.
func NewCanvas(surface Surface, width, height float64, opts ...CanvasOption) *Canvas {
	c := &Canvas{
		surface:     surface,
		width:       width,
		height:      height,
		StrokeStyle: DefaultStrokeStyle(),
		FillStyle:   DefaultFillStyle(),
		path:        NewPath(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height float64) {
	return c.width, c.height
}

// Path exposes the canvas's path accumulator.
func (c *Canvas) Path() *Path {
	return c.path
}

// BeginPath discards the accumulated path and starts a new one.
func (c *Canvas) BeginPath() {
	c.path.Begin()
}

// Line adds a straight segment to the path.
func (c *Canvas) Line(pt1, pt2 Point) {
	c.path.Line(pt1, pt2)
}

// Rectangle adds an axis-aligned rectangle to the path.
func (c *Canvas) Rectangle(pt1, pt2 Point) {
	c.path.Rectangle(pt1, pt2)
}

// RoundRect adds a rounded rectangle with corner radii rx, ry.
func (c *Canvas) RoundRect(pt1, pt2 Point, rx, ry float64) {
	c.path.RoundRect(pt1, pt2, rx, ry)
}

// Ellipse adds a full ellipse inscribed in the given bounding box.
func (c *Canvas) Ellipse(pt1, pt2 Point) {
	c.path.Ellipse(pt1, pt2)
}

// EllipseArc adds an elliptical arc over [alphaStart, alphaEnd] radians.
func (c *Canvas) EllipseArc(pt1, pt2 Point, alphaStart, alphaEnd float64) {
	c.path.EllipseArc(pt1, pt2, alphaStart, alphaEnd)
}

// MoveTo opens a new free-form sub-path at pt.
func (c *Canvas) MoveTo(pt Point) {
	c.path.MoveTo(pt)
}

// LineTo extends the current sub-path; no-op while the pen is up.
func (c *Canvas) LineTo(pt Point) {
	c.path.LineTo(pt)
}

// ArcTo rounds the corner at p1 toward p2 with the given fillet radius;
// no-op while the pen is up.
func (c *Canvas) ArcTo(p1, p2 Point, radius float64) {
	c.path.ArcTo(p1, p2, radius)
}

// ClosePath seals the current sub-path; no-op while the pen is up.
func (c *Canvas) ClosePath() {
	c.path.ClosePath()
}

// Stroke outlines the accumulated path with the current stroke style.
func (c *Canvas) Stroke() {
	c.path.Stroke(c.surface, c.StrokeStyle)
}

// Fill fills the accumulated path with the current fill style.
func (c *Canvas) Fill() {
	c.path.Fill(c.surface, c.FillStyle)
}

// Clear fills the whole canvas with the current fill style's color.
func (c *Canvas) Clear() {
	c.surface.SetColor(c.FillStyle.Color)
	c.surface.FillRect(Pt(0, 0), Pt(c.width, c.height))
}
