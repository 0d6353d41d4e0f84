// Package raster scan-converts flat polygons into a pixel buffer.
// It is a thin wrapper over golang.org/x/image/vector: the engine above
// it has already reduced every shape to polygons, quads and triangles,
// so a single fill entry point is all that is needed.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// Rasterizer fills polygons into a destination image. It reuses one
// vector.Rasterizer across fills to avoid per-call allocation.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	width  int
	height int
	z      *vector.Rasterizer
}

// New creates a rasterizer for destinations of the given size.
func New(width, height int) *Rasterizer {
	return &Rasterizer{
		width:  width,
		height: height,
		z:      vector.NewRasterizer(width, height),
	}
}

// FillPolygon fills the polygon with vertices (xs[i], ys[i]) into dst
// with the given color. Polygons with fewer than three vertices have no
// area and are ignored.
func (r *Rasterizer) FillPolygon(dst draw.Image, xs, ys []float64, c color.Color) {
	if len(xs) < 3 || len(xs) != len(ys) {
		return
	}
	r.z.Reset(r.width, r.height)
	r.z.DrawOp = draw.Over
	r.z.MoveTo(float32(xs[0]), float32(ys[0]))
	for i := 1; i < len(xs); i++ {
		r.z.LineTo(float32(xs[i]), float32(ys[i]))
	}
	r.z.ClosePath()
	r.z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}
