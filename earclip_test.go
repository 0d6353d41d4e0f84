package io2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shoelace returns the unsigned polygon area.
func shoelace(points []Point) float64 {
	sum := 0.0
	for i := range points {
		j := (i + 1) % len(points)
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return math.Abs(sum) / 2
}

// clockwiseRegularPolygon builds a regular n-gon in the winding the
// triangulator accepts: clockwise for y-up coordinates.
func clockwiseRegularPolygon(n int, radius float64) []Point {
	points := make([]Point, n)
	for i := range points {
		a := -twoPi * float64(i) / float64(n)
		points[i] = Pt(radius*math.Cos(a), radius*math.Sin(a))
	}
	return points
}

func TestTriangulate_SingleTriangle(t *testing.T) {
	poly := []Point{Pt(0, 0), Pt(0, 10), Pt(10, 0)}
	got := Triangulate(poly)
	require.Len(t, got, 1)
	assert.Equal(t, Triangle{A: poly[0], B: poly[1], C: poly[2]}, got[0])
}

func TestTriangulate_ConvexPolygons(t *testing.T) {
	for _, n := range []int{4, 5, 6, 12, 30} {
		poly := clockwiseRegularPolygon(n, 10)
		got := Triangulate(poly)
		require.Len(t, got, n-2, "n=%d", n)

		total := 0.0
		for _, tri := range got {
			total += tri.Area()
		}
		assert.InDelta(t, shoelace(poly), total, 1e-9, "n=%d", n)
	}
}

func TestTriangulate_ConcavePolygon(t *testing.T) {
	// L-shape, wound clockwise (y-up).
	poly := []Point{
		Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 6), Pt(4, 6), Pt(4, 0),
	}
	got := Triangulate(poly)
	require.Len(t, got, len(poly)-2)

	total := 0.0
	for _, tri := range got {
		total += tri.Area()
	}
	assert.InDelta(t, shoelace(poly), total, 1e-9)
}

func TestTriangulate_WrongWindingFails(t *testing.T) {
	// The convexity test's sign convention is a documented precondition:
	// the opposite winding has no acceptable ear and must fail cleanly.
	poly := clockwiseRegularPolygon(6, 10)
	reversed := make([]Point, len(poly))
	for i, p := range poly {
		reversed[len(poly)-1-i] = p
	}
	assert.Nil(t, Triangulate(reversed))
}

func TestTriangulate_TooFewVertices(t *testing.T) {
	assert.Nil(t, Triangulate(nil))
	assert.Nil(t, Triangulate([]Point{Pt(0, 0)}))
	assert.Nil(t, Triangulate([]Point{Pt(0, 0), Pt(1, 1)}))
}
