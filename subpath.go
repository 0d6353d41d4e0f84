package io2d

// SubPath is one continuous run of connected points, built incrementally
// by move/line/arc-to commands and optionally sealed by ClosePath. It is
// owned by the Path that created it; points are never shared.
type SubPath struct {
	points []Point
	closed bool
}

// newSubPath opens a sub-path at the pen position pt.
func newSubPath(pt Point) *SubPath {
	return &SubPath{points: []Point{pt}}
}

// Points returns the accumulated point sequence.
func (s *SubPath) Points() []Point {
	return s.points
}

// Closed reports whether ClosePath sealed this sub-path.
func (s *SubPath) Closed() bool {
	return s.closed
}

// lineTo appends a straight-line destination.
func (s *SubPath) lineTo(pt Point) {
	s.points = append(s.points, pt)
}

// arcTo rounds the corner formed by the current point, p1 and p2 with a
// fillet of the given radius and appends the arc's points. The straight
// run from the current point to the arc start is implied by consecutive-
// point rendering, so no extra point is inserted for it. Degenerate
// corners (collinear directions, non-positive radius) are skipped.
func (s *SubPath) arcTo(p1, p2 Point, radius float64) {
	arc, ok := RoundCorner(s.points[len(s.points)-1], p1, p2, radius)
	if !ok {
		Logger().Debug("io2d: skipping degenerate arc-to corner", "vertex", p1)
		return
	}
	s.points = append(s.points, arc...)
}

// close appends the first point again, turning the run into a ring.
// Closing is terminal: the sub-path accepts no further commands.
func (s *SubPath) close() {
	if len(s.points) > 0 {
		s.points = append(s.points, s.points[0])
	}
	s.closed = true
}

// fillSubPath triangulates the sub-path's outline and submits the result.
// A closed ring carries its first point twice; the duplicate is dropped
// before ear clipping. Triangulation failure leaves the shape unfilled
// for this draw call only.
func fillSubPath(dst Surface, s *SubPath) {
	outline := s.points
	if s.closed && len(outline) > 1 {
		outline = outline[:len(outline)-1]
	}
	triangles := Triangulate(outline)
	if len(triangles) == 0 {
		return
	}
	dst.FillTriangles(triangles)
}
