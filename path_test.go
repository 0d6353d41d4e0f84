package io2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_PenUpCommandsAreNoOps(t *testing.T) {
	p := NewPath()

	p.LineTo(Pt(10, 10))
	p.ArcTo(Pt(20, 20), Pt(30, 30), 5)
	p.ClosePath()

	assert.Empty(t, p.Elements())
	assert.Nil(t, p.CurrentSubPath())
}

func TestPath_SubPathStateMachine(t *testing.T) {
	p := NewPath()

	p.MoveTo(Pt(0, 0))
	s := p.CurrentSubPath()
	require.NotNil(t, s)
	assert.Len(t, s.Points(), 1)
	assert.False(t, s.Closed())

	p.LineTo(Pt(10, 0))
	p.LineTo(Pt(10, 10))
	assert.Len(t, s.Points(), 3)

	p.ClosePath()
	assert.True(t, s.Closed())
	assert.Equal(t, Pt(0, 0), s.Points()[len(s.Points())-1],
		"close must append the first point again")

	// Closed is terminal: the sub-path no longer accepts commands.
	assert.Nil(t, p.CurrentSubPath())
	p.LineTo(Pt(50, 50))
	assert.Len(t, s.Points(), 4)
}

func TestPath_MoveToOpensFreshSubPath(t *testing.T) {
	p := NewPath()

	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(5, 5))
	first := p.CurrentSubPath()

	p.MoveTo(Pt(100, 100))
	second := p.CurrentSubPath()

	require.NotNil(t, second)
	assert.NotSame(t, first, second)
	assert.Len(t, p.Elements(), 2)
	assert.Len(t, first.Points(), 2, "new sub-path must not touch the old one")
}

func TestPath_CurrentSubPathTagCheck(t *testing.T) {
	p := NewPath()

	// A shape element is not a sub-path; the lookup must not match it.
	p.Rectangle(Pt(0, 0), Pt(10, 10))
	assert.Nil(t, p.CurrentSubPath())

	// A shape added after an open sub-path hides it from the lookup.
	p.MoveTo(Pt(0, 0))
	require.NotNil(t, p.CurrentSubPath())
	p.Rectangle(Pt(20, 20), Pt(30, 30))
	assert.Nil(t, p.CurrentSubPath())
}

func TestPath_ArcToAppendsFilletPoints(t *testing.T) {
	p := NewPath()

	p.MoveTo(Pt(50, 120))
	p.ArcTo(Pt(100, 120), Pt(100, 170), 50)

	s := p.CurrentSubPath()
	require.NotNil(t, s)
	points := s.Points()
	require.Greater(t, len(points), 1, "arc-to must append the fillet arc")

	// The arc starts on the incoming segment and ends on the outgoing one.
	assert.InDelta(t, 120, points[1].Y, 1e-9)
	assert.InDelta(t, 100, points[len(points)-1].X, 1e-9)
}

func TestPath_ArcToDegenerateCornerIsSkipped(t *testing.T) {
	p := NewPath()

	p.MoveTo(Pt(0, 0))
	p.ArcTo(Pt(10, 0), Pt(20, 0), 5) // collinear: no tangent circle

	s := p.CurrentSubPath()
	require.NotNil(t, s)
	assert.Len(t, s.Points(), 1, "degenerate corner must leave the sub-path unchanged")
}

func TestPath_BeginDiscardsElements(t *testing.T) {
	p := NewPath()
	p.Line(Pt(0, 0), Pt(1, 1))
	p.MoveTo(Pt(2, 2))
	require.Len(t, p.Elements(), 2)

	p.Begin()
	assert.Empty(t, p.Elements())
	assert.Nil(t, p.CurrentSubPath())
}

func TestPath_FailedTriangulationSkipsElementOnly(t *testing.T) {
	rec := &recordingSurface{}
	p := NewPath()

	// Wrong winding for the triangulator: this sub-path cannot fill.
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.LineTo(Pt(10, 10))
	p.LineTo(Pt(0, 10))
	p.ClosePath()

	// A rectangle after it must still fill.
	p.Rectangle(Pt(20, 20), Pt(30, 30))

	p.Fill(rec, DefaultFillStyle())
	assert.Empty(t, rec.triangles, "unfillable sub-path contributes nothing")
	assert.Len(t, rec.rects, 1, "one bad shape must not abort the rest of the path")
}
