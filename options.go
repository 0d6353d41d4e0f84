package io2d

// CanvasOption configures a Canvas at construction time.
type CanvasOption func(*Canvas)

// WithStrokeStyle sets the initial stroke style.
func WithStrokeStyle(s StrokeStyle) CanvasOption {
	return func(c *Canvas) {
		c.StrokeStyle = s
	}
}

// WithFillStyle sets the initial fill style.
func WithFillStyle(f FillStyle) CanvasOption {
	return func(c *Canvas) {
		c.FillStyle = f
	}
}
