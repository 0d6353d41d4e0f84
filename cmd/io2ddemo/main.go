// Command io2ddemo renders the io2d demo scene to a PNG file.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/vcappello/io2d"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	surface := io2d.NewSoftwareSurface(*width, *height)
	c := io2d.NewCanvas(surface, float64(*width), float64(*height))

	c.FillStyle.Color = io2d.ARGB(0xfffefae0)
	c.Clear()

	drawShapes(c)
	drawArcTo(c)

	if err := surface.Pixmap().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func drawShapes(c *io2d.Canvas) {
	c.BeginPath()
	c.Line(io2d.Pt(10, 10), io2d.Pt(50, 50))
	c.Rectangle(io2d.Pt(10, 10), io2d.Pt(50, 50))
	c.Ellipse(io2d.Pt(100, 100), io2d.Pt(300, 300))

	c.FillStyle.Color = io2d.ARGB(0xffe9edc9)
	c.Fill()

	c.StrokeStyle = c.StrokeStyle.
		WithWidth(3).
		WithColor(io2d.ARGB(0xffccd5ae))
	c.Stroke()

	c.BeginPath()
	c.EllipseArc(io2d.Pt(400, 400), io2d.Pt(500, 500), math.Pi, 3*math.Pi/2)
	c.RoundRect(io2d.Pt(100, 400), io2d.Pt(400, 600), 20, 20)

	c.FillStyle.Color = io2d.ARGB(0xfffaedcd)
	c.Fill()

	c.StrokeStyle = c.StrokeStyle.
		WithWidth(3).
		WithColor(io2d.ARGB(0xffd4a373))
	c.Stroke()
}

// drawArcTo shows a corner fillet with its three control points marked.
func drawArcTo(c *io2d.Canvas) {
	p0 := io2d.Pt(50, 120)
	p1 := io2d.Pt(100, 120)
	p2 := io2d.Pt(100, 170)

	c.BeginPath()
	c.MoveTo(p0)
	c.ArcTo(p1, p2, 50)
	c.ClosePath()

	c.StrokeStyle = c.StrokeStyle.
		WithWidth(3).
		WithColor(io2d.ARGB(0xffd4a373))
	c.Stroke()

	dot(c, p0, io2d.ARGB(0x80ff0000))
	dot(c, p1, io2d.ARGB(0x800000ff))
	dot(c, p2, io2d.ARGB(0x80ff0000))
}

func dot(c *io2d.Canvas, at io2d.Point, color io2d.RGBA) {
	c.BeginPath()
	c.Ellipse(io2d.Pt(at.X-5, at.Y-5), io2d.Pt(at.X+5, at.Y+5))
	c.FillStyle.Color = color
	c.Fill()
}
