package io2d

// Surface is the drawing-surface protocol the engine feeds. It mirrors
// the submission primitives of an immediate-mode rasterizer: a current
// draw color plus batched line and filled-triangle submission. The engine
// calls these once per produced geometry batch and has no other
// dependency on the rendering backend.
//
// Frame lifecycle (begin/flush/end) belongs to the surface owner, not to
// the engine.
type Surface interface {
	// SetColor sets the color applied to subsequent submissions.
	SetColor(c RGBA)

	// DrawLine draws a single hairline from a to b.
	DrawLine(a, b Point)

	// DrawLines draws a batch of independent hairline segments.
	DrawLines(segments []Segment)

	// DrawLineStrip draws hairlines connecting consecutive points.
	DrawLineStrip(points []Point)

	// FillTriangles fills a batch of independent triangles.
	FillTriangles(triangles []Triangle)

	// FillTriangleStrip fills the triangle strip over points: one
	// triangle per consecutive point triple.
	FillTriangleStrip(points []Point)

	// FillRect fills the axis-aligned rectangle spanned by min and max.
	FillRect(min, max Point)
}
