package io2d

// HairlineWidth is the stroke width drawn as a plain line strip instead of
// expanded quads.
const HairlineWidth = 1.0

// StrokeStyle defines how path outlines are drawn.
//
// A width of exactly HairlineWidth selects the hairline pipeline: the
// surface receives raw line strips. Any other positive width selects
// thick-segment expansion, where every segment becomes a filled quad.
type StrokeStyle struct {
	// Color is the stroke color.
	Color RGBA

	// Width is the stroke width in user units. Default: 1.0 (hairline).
	Width float64
}

// DefaultStrokeStyle returns an opaque black hairline stroke.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Color: RGB(0, 0, 0),
		Width: HairlineWidth,
	}
}

// WithColor returns a copy of the StrokeStyle with the given color.
func (s StrokeStyle) WithColor(c RGBA) StrokeStyle {
	s.Color = c
	return s
}

// WithWidth returns a copy of the StrokeStyle with the given width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// IsHairline reports whether the stroke uses the line-strip pipeline.
func (s StrokeStyle) IsHairline() bool {
	return s.Width == HairlineWidth
}

// FillStyle defines how path interiors are filled.
type FillStyle struct {
	// Color is the fill color.
	Color RGBA
}

// DefaultFillStyle returns an opaque black fill.
func DefaultFillStyle() FillStyle {
	return FillStyle{Color: RGB(0, 0, 0)}
}

// WithColor returns a copy of the FillStyle with the given color.
func (f FillStyle) WithColor(c RGBA) FillStyle {
	f.Color = c
	return f
}
