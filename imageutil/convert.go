package imageutil

import "image"

// ToGrayscale converts an image to grayscale using the standard
// luminance formula: Y = 0.299*R + 0.587*G + 0.114*B
// This is the BT.601 weighting, the same conversion PIL applies for
// mode "L", so the result is stable for inputs that are already gray.
func ToGrayscale(img image.Image) *GrayImage {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	gray := NewGrayImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// Channels come back 16-bit; reduce to 8-bit before weighting.
			r8 := int(r >> 8)
			g8 := int(g >> 8)
			b8 := int(b >> 8)
			// Integer math for speed, scaled by 1000 with rounding.
			lum := (299*r8 + 587*g8 + 114*b8 + 500) / 1000
			if lum > 255 {
				lum = 255
			}
			gray.Pix[y*gray.Stride+x] = uint8(lum)
		}
	}

	return gray
}
