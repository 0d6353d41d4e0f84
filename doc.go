// Package io2d is a 2D vector-path geometry engine.
//
// # Overview
//
// io2d turns declarative path commands — lines, rectangles, ellipses,
// rounded rectangles and free-form sub-paths with rounded corners — into
// flat renderable geometry: point sequences for strokes and triangle sets
// for fills. It is independent of any particular rasterizer; everything
// it produces is submitted through the small [Surface] protocol.
//
// # Quick Start
//
//	import "github.com/vcappello/io2d"
//
//	surface := io2d.NewSoftwareSurface(512, 512)
//	c := io2d.NewCanvas(surface, 512, 512)
//
//	c.BeginPath()
//	c.Rectangle(io2d.Pt(10, 10), io2d.Pt(50, 50))
//	c.FillStyle.Color = io2d.ARGB(0xffe9edc9)
//	c.Fill()
//	c.StrokeStyle = c.StrokeStyle.WithWidth(3).WithColor(io2d.ARGB(0xffccd5ae))
//	c.Stroke()
//
//	surface.Pixmap().SavePNG("out.png")
//
// # Architecture
//
// The library is organized into:
//   - Geometry kernels: ellipse sampling, thick-segment expansion,
//     corner fillets, ear-clipping triangulation
//   - Path layer: PathElement variants, Path accumulator, Canvas
//   - Surfaces: the Surface protocol plus a CPU reference
//     implementation backed by internal/raster
//
// All operations are pure, synchronous, in-memory computations. A Canvas
// and its Path are exclusively owned by one goroutine per frame; there is
// no sharing and no locking.
package io2d
