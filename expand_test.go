package io2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandSegment_QuadGeometry(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Point
		width float64
	}{
		{"horizontal", Pt(0, 0), Pt(10, 0), 4},
		{"vertical", Pt(5, 5), Pt(5, 25), 2},
		{"diagonal", Pt(1, 2), Pt(7, 11), 3.5},
		{"negative direction", Pt(10, 10), Pt(-10, -30), 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quad, ok := ExpandSegment(tt.a, tt.b, tt.width)
			require.True(t, ok)

			// The corner pairs across the segment are exactly width apart.
			assert.InDelta(t, tt.width, quad[0].Distance(quad[1]), 1e-9)
			assert.InDelta(t, tt.width, quad[2].Distance(quad[3]), 1e-9)

			// The long edges are parallel to b-a.
			dir := tt.b.Sub(tt.a)
			assert.InDelta(t, 0, dir.Cross(quad[2].Sub(quad[0])), 1e-9)
			assert.InDelta(t, 0, dir.Cross(quad[3].Sub(quad[1])), 1e-9)

			// The endpoints sit midway between their corner pairs.
			assert.True(t, quad[0].Add(quad[1]).Mul(0.5).Approx(tt.a, 1e-9))
			assert.True(t, quad[2].Add(quad[3]).Mul(0.5).Approx(tt.b, 1e-9))
		})
	}
}

func TestExpandSegment_StripOrderDoesNotBowtie(t *testing.T) {
	a, b := Pt(0, 0), Pt(20, 0)
	const width = 6.0

	quad, ok := ExpandSegment(a, b, width)
	require.True(t, ok)

	// Drawn as a strip, triangles (0,1,2) and (1,2,3) must tile the full
	// rectangle. A bowtie ordering loses half the area.
	t1 := Triangle{quad[0], quad[1], quad[2]}
	t2 := Triangle{quad[1], quad[2], quad[3]}
	assert.InDelta(t, a.Distance(b)*width, t1.Area()+t2.Area(), 1e-9)
	assert.InDelta(t, t1.Area(), t2.Area(), 1e-9)
}

func TestExpandSegment_ZeroLength(t *testing.T) {
	_, ok := ExpandSegment(Pt(3, 3), Pt(3, 3), 5)
	assert.False(t, ok, "coincident endpoints have no expansion direction")
}

func TestExpandPolyline(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   int
	}{
		{"empty", nil, 0},
		{"single point", []Point{Pt(0, 0)}, 0},
		{"two points", []Point{Pt(0, 0), Pt(10, 0)}, 1},
		{"open polyline", []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}, 3},
		{"degenerate pair skipped", []Point{Pt(0, 0), Pt(0, 0), Pt(10, 0)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quads := ExpandPolyline(tt.points, 2)
			assert.Len(t, quads, tt.want)
		})
	}
}
