package io2d

import "math"

// filletEpsilon rejects corner angles too close to 0 or π, where the
// tangent-circle construction has no solution.
const filletEpsilon = 1e-9

// RoundCorner replaces the sharp corner at vertex with a circular fillet
// of the given radius, tangent to both the incoming segment prev→vertex
// and the outgoing segment vertex→next. It returns the arc's point
// sequence from the incoming tangent point to the outgoing one.
//
// The tangent points lie radius/tan(θ/2) along each segment from the
// vertex, and the arc center lies radius/sin(θ/2) along the angle
// bisector, where θ is the angle between the two segments. The sweep
// direction follows the turn direction of the corner and always takes
// the short way around.
//
// ok is false for degenerate corners: a non-positive radius, a zero
// direction vector, or incoming/outgoing directions that are parallel or
// anti-parallel (θ of 0 or π).
func RoundCorner(prev, vertex, next Point, radius float64) (arc []Point, ok bool) {
	if radius <= 0 {
		return nil, false
	}
	d1 := prev.Sub(vertex)
	d2 := next.Sub(vertex)
	if d1.Length() == 0 || d2.Length() == 0 {
		return nil, false
	}
	d1 = d1.Normalize()
	d2 = d2.Normalize()

	dot := math.Max(-1, math.Min(1, d1.Dot(d2)))
	angle := math.Acos(dot)
	if angle < filletEpsilon || math.Pi-angle < filletEpsilon {
		return nil, false
	}

	dist := radius / math.Tan(angle/2)
	t1 := vertex.Add(d1.Mul(dist))
	t2 := vertex.Add(d2.Mul(dist))
	center := vertex.Add(d1.Add(d2).Normalize().Mul(radius / math.Sin(angle/2)))

	a1 := math.Atan2(t1.Y-center.Y, t1.X-center.X)
	a2 := math.Atan2(t2.Y-center.Y, t2.X-center.X)

	// Pick the sweep that matches the corner's turn direction, adjusting
	// by a full turn so the arc goes the short way.
	delta := a2 - a1
	if d1.Cross(d2) < 0 {
		if delta < 0 {
			delta += 2 * math.Pi
		}
	} else {
		if delta > 0 {
			delta -= 2 * math.Pi
		}
	}

	// Roughly one point every 2 units of arc length, floored at 4
	// segments so tiny fillets still look round.
	segments := int(math.Max(4, math.Round(math.Abs(delta)*radius/2)))

	arc = make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		a := a1 + delta*float64(i)/float64(segments)
		arc = append(arc, Pt(
			center.X+math.Cos(a)*radius,
			center.Y+math.Sin(a)*radius,
		))
	}
	return arc, true
}
