// Package imageutil provides the pure Go image processing primitives used
// by the ASCII art pipeline: grayscale conversion, tone adjustment,
// resampling, and image file I/O.
package imageutil

import (
	"image"
	"image/color"
)

// GrayImage wraps image.Gray with convenience accessors for the
// single-channel luminance buffers the converter works on.
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a new GrayImage with the specified dimensions.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{
		Gray: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// GrayImageFromImage converts any image.Image to GrayImage using the
// standard color model conversion.
func GrayImageFromImage(img image.Image) *GrayImage {
	if g, ok := img.(*image.Gray); ok && g.Bounds().Min == (image.Point{}) {
		return &GrayImage{Gray: g}
	}
	bounds := img.Bounds()
	gray := NewGrayImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return gray
}

// Width returns the image width.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// GetGray returns the grayscale value at (x, y).
func (img *GrayImage) GetGray(x, y int) uint8 {
	return img.GrayAt(x, y).Y
}

// SetGrayValue sets the grayscale value at (x, y).
func (img *GrayImage) SetGrayValue(x, y int, v uint8) {
	img.Gray.SetGray(x, y, color.Gray{Y: v})
}

// Clone creates a deep copy of the image.
func (img *GrayImage) Clone() *GrayImage {
	clone := NewGrayImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}
