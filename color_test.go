package io2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestARGB_Unpack(t *testing.T) {
	tests := []struct {
		name string
		argb uint32
		want RGBA
	}{
		{"opaque white", 0xffffffff, RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"opaque black", 0xff000000, RGBA{R: 0, G: 0, B: 0, A: 1}},
		{"transparent", 0x00000000, RGBA{}},
		{"half red", 0x80ff0000, RGBA{R: 1, G: 0, B: 0, A: 128.0 / 255}},
		{"channel order", 0xff102030, RGBA{R: 16.0 / 255, G: 32.0 / 255, B: 48.0 / 255, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ARGB(tt.argb)
			assert.InDelta(t, tt.want.R, got.R, 1e-12)
			assert.InDelta(t, tt.want.G, got.G, 1e-12)
			assert.InDelta(t, tt.want.B, got.B, 1e-12)
			assert.InDelta(t, tt.want.A, got.A, 1e-12)
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"rrggbb", "#ff8000", RGBA{R: 1, G: 128.0 / 255, B: 0, A: 1}},
		{"short rgb", "f80", RGBA{R: 1, G: 136.0 / 255, B: 0, A: 1}},
		{"rrggbbaa", "00ff0080", RGBA{R: 0, G: 1, B: 0, A: 128.0 / 255}},
		{"invalid falls back to black", "nope", RGBA{R: 0, G: 0, B: 0, A: 1}},
		{"partially valid still falls back", "12g", RGBA{R: 0, G: 0, B: 0, A: 1}},
		{"invalid rrggbb", "0011zz", RGBA{R: 0, G: 0, B: 0, A: 1}},
		{"wrong length", "12345", RGBA{R: 0, G: 0, B: 0, A: 1}},
		{"empty", "", RGBA{R: 0, G: 0, B: 0, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			assert.InDelta(t, tt.want.R, got.R, 1e-9)
			assert.InDelta(t, tt.want.G, got.G, 1e-9)
			assert.InDelta(t, tt.want.B, got.B, 1e-9)
			assert.InDelta(t, tt.want.A, got.A, 1e-9)
		})
	}
}

func TestColor_RoundTrip(t *testing.T) {
	orig := RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1}
	got := FromColor(orig.Color())
	assert.InDelta(t, orig.R, got.R, 1.0/255)
	assert.InDelta(t, orig.G, got.G, 1.0/255)
	assert.InDelta(t, orig.B, got.B, 1.0/255)
	assert.InDelta(t, orig.A, got.A, 1.0/255)
}
