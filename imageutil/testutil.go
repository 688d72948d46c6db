package imageutil

import (
	"image"
	"image/color"
)

// CreateSolidImage creates a width x height RGBA image filled with a
// single color. Used by tests that need a uniform luminance field.
func CreateSolidImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// CreateGradientImage creates a horizontal black-to-white gradient.
func CreateGradientImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(x * 255 / max(width-1, 1))
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

// CreateGrayRamp creates a GrayImage whose pixel values step through the
// whole [0, 255] range row-major.
func CreateGrayRamp(width, height int) *GrayImage {
	img := NewGrayImage(width, height)
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 255 / max(len(img.Pix)-1, 1))
	}
	return img
}
