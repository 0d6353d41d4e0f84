package io2d

// Triangulate reduces a simple polygon to triangles by ear clipping.
//
// The polygon must be wound so that consecutive vertex triples of its
// convex corners satisfy cross(prev, curr, next) < 0: clockwise for a
// y-up coordinate system, counter-clockwise as seen on a y-down screen.
// This sign convention is a hard precondition; a polygon wound the other
// way has no corner the convexity test accepts and triangulation fails.
// It is deliberately not auto-corrected.
//
// Each pass scans vertex triples in index order and clips the first ear
// found: a convex corner whose triangle contains no other remaining
// vertex. If a full scan finds no ear (non-simple input, wrong winding),
// Triangulate returns nil — no partial result.
//
// Re-scanning remaining vertices per clipped ear makes the worst case
// O(n²); fine for interactive path sizes.
func Triangulate(polygon []Point) []Triangle {
	n := len(polygon)
	if n < 3 {
		return nil
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	triangles := make([]Triangle, 0, n-2)
	for len(indices) > 3 {
		clipped := false
		for i := range indices {
			prev := indices[(i-1+len(indices))%len(indices)]
			curr := indices[i]
			next := indices[(i+1)%len(indices)]

			a, b, c := polygon[prev], polygon[curr], polygon[next]
			if corner(a, b, c) >= 0 {
				continue // reflex or collinear
			}
			if containsAny(polygon, indices, prev, curr, next) {
				continue
			}

			triangles = append(triangles, Triangle{A: a, B: b, C: c})
			indices = append(indices[:i], indices[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			Logger().Debug("io2d: ear clipping found no ear, polygon not filled",
				"vertices", n, "remaining", len(indices))
			return nil
		}
	}

	triangles = append(triangles, Triangle{
		A: polygon[indices[0]],
		B: polygon[indices[1]],
		C: polygon[indices[2]],
	})
	return triangles
}

// corner returns the cross product of the turn at b in the triple
// (a, b, c). Negative means convex under the engine's winding convention.
func corner(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(b))
}

// containsAny reports whether any remaining vertex other than the ear's
// own three lies inside or on the candidate triangle.
func containsAny(polygon []Point, indices []int, prev, curr, next int) bool {
	a, b, c := polygon[prev], polygon[curr], polygon[next]
	for _, idx := range indices {
		if idx == prev || idx == curr || idx == next {
			continue
		}
		if containsPoint(a, b, c, polygon[idx]) {
			return true
		}
	}
	return false
}

// containsPoint reports whether q is inside or on the triangle (a, b, c),
// which is wound so its edge crosses are non-positive. q is outside only
// when it is strictly outside at least one edge.
func containsPoint(a, b, c, q Point) bool {
	return corner(a, b, q) <= 0 &&
		corner(b, c, q) <= 0 &&
		corner(c, a, q) <= 0
}
