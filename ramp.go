// Package digitalavator converts raster images into ASCII art and
// optionally re-rasterizes the resulting text into a PNG bitmap.
package digitalavator

// Ramp is the fixed character set used to quantize luminance, ordered
// from the visually densest glyph to blank. Dark pixels map to the
// front of the string, bright pixels to the back.
const Ramp = "@$B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. "

// rampIndex maps a normalized, gamma-corrected luminance value in [0, 1]
// to an index into Ramp. The mapping is floor(v * (len-1)), clamped so
// out-of-range inputs never index outside the ramp.
func rampIndex(v float64) int {
	idx := int(v * float64(len(Ramp)-1))
	if idx < 0 {
		return 0
	}
	if idx > len(Ramp)-1 {
		return len(Ramp) - 1
	}
	return idx
}
