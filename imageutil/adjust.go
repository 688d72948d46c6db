package imageutil

import "math"

// AdjustContrast applies a symmetric contrast stretch around mid-gray:
// v' = clamp((v - 128) * factor + 128, 0, 255). A factor above 1 spreads
// values away from 128, below 1 compresses them toward it. Results are
// rounded to the nearest integer before clamping.
func AdjustContrast(img *GrayImage, factor float64) *GrayImage {
	// The per-value mapping is the same for every pixel, so compute it
	// once per possible sample value.
	var table [256]uint8
	for v := 0; v < 256; v++ {
		adjusted := math.Round((float64(v)-128)*factor + 128)
		switch {
		case adjusted < 0:
			table[v] = 0
		case adjusted > 255:
			table[v] = 255
		default:
			table[v] = uint8(adjusted)
		}
	}

	out := NewGrayImage(img.Width(), img.Height())
	for i, v := range img.Pix {
		out.Pix[i] = table[v]
	}
	return out
}
