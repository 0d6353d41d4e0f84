package io2d

// ExpandSegment converts the segment a→b plus a width into the four
// corners of a filled quad, ordered for triangle-strip submission.
//
// The corners are obtained by shifting both endpoints half the width
// along the unit perpendicular of a→b:
//
//	0  a   1
//	+--+--+
//	|    /|
//	|   / |
//	|  /  |
//	| /   |
//	|/    |
//	+--+--+
//	2  b   3
//
// Walking the rectangle outline would visit the b-side corners in the
// order 1, 3, 2; a strip drawn that way folds into a bowtie. The returned
// order (a-Δ, a+Δ, b-Δ, b+Δ) makes triangles (0,1,2) and (1,2,3) tile the
// quad correctly.
//
// Coincident endpoints have no direction to expand along; ok is false and
// the quad must be skipped.
func ExpandSegment(a, b Point, width float64) (quad [4]Point, ok bool) {
	d := b.Distance(a)
	if d == 0 {
		return quad, false
	}
	shift := Pt(-(b.Y-a.Y)/d, (b.X-a.X)/d).Mul(width / 2)

	quad[0] = a.Sub(shift)
	quad[1] = a.Add(shift)
	quad[2] = b.Sub(shift)
	quad[3] = b.Add(shift)
	return quad, true
}

// ExpandPolyline expands every consecutive point pair into a quad.
// No joins are inserted at interior vertices, so adjacent quads can show
// a notch at sharp corners. Degenerate pairs are skipped.
func ExpandPolyline(points []Point, width float64) [][4]Point {
	if len(points) < 2 {
		return nil
	}
	quads := make([][4]Point, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		quad, ok := ExpandSegment(points[i-1], points[i], width)
		if !ok {
			Logger().Debug("io2d: skipping zero-length segment in polyline", "index", i)
			continue
		}
		quads = append(quads, quad)
	}
	return quads
}
