package io2d

import (
	"github.com/vcappello/io2d/internal/raster"
)

// SoftwareSurface is a CPU implementation of Surface backed by a Pixmap.
// It is the reference backend: every submission is scan-converted through
// internal/raster immediately, so there is no flush step.
//
// Hairlines are rendered as quads one unit wide; a dedicated line
// rasterizer is not part of this backend.
type SoftwareSurface struct {
	pixmap     *Pixmap
	rasterizer *raster.Rasterizer
	color      RGBA
}

var _ Surface = (*SoftwareSurface)(nil)

// NewSoftwareSurface creates a software surface of the given pixel size.
func NewSoftwareSurface(width, height int) *SoftwareSurface {
	return &SoftwareSurface{
		pixmap:     NewPixmap(width, height),
		rasterizer: raster.New(width, height),
		color:      RGB(0, 0, 0),
	}
}

// Pixmap returns the pixel buffer the surface draws into.
func (s *SoftwareSurface) Pixmap() *Pixmap {
	return s.pixmap
}

// SetColor sets the color applied to subsequent submissions.
func (s *SoftwareSurface) SetColor(c RGBA) {
	s.color = c
}

// fillPolygon scan-converts one polygon with the current color.
func (s *SoftwareSurface) fillPolygon(points []Point) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	s.rasterizer.FillPolygon(s.pixmap, xs, ys, s.color.Color())
}

// DrawLine draws a single hairline from a to b.
func (s *SoftwareSurface) DrawLine(a, b Point) {
	quad, ok := ExpandSegment(a, b, 1)
	if !ok {
		return
	}
	// Strip order to outline order: swap the b-side corners.
	s.fillPolygon([]Point{quad[0], quad[1], quad[3], quad[2]})
}

// DrawLines draws a batch of independent hairline segments.
func (s *SoftwareSurface) DrawLines(segments []Segment) {
	for _, seg := range segments {
		s.DrawLine(seg.A, seg.B)
	}
}

// DrawLineStrip draws hairlines connecting consecutive points.
func (s *SoftwareSurface) DrawLineStrip(points []Point) {
	for i := 1; i < len(points); i++ {
		s.DrawLine(points[i-1], points[i])
	}
}

// FillTriangles fills a batch of independent triangles.
func (s *SoftwareSurface) FillTriangles(triangles []Triangle) {
	for _, t := range triangles {
		s.fillPolygon([]Point{t.A, t.B, t.C})
	}
}

// FillTriangleStrip fills one triangle per consecutive point triple.
func (s *SoftwareSurface) FillTriangleStrip(points []Point) {
	for i := 2; i < len(points); i++ {
		s.fillPolygon([]Point{points[i-2], points[i-1], points[i]})
	}
}

// FillRect fills the axis-aligned rectangle spanned by min and max.
func (s *SoftwareSurface) FillRect(min, max Point) {
	s.fillPolygon([]Point{
		min,
		Pt(max.X, min.Y),
		max,
		Pt(min.X, max.Y),
	})
}
