package imageutil

import (
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Interpolation specifies the resampling filter used for resizing.
type Interpolation int

const (
	// InterpolationLanczos uses a Lanczos3 kernel. This is the
	// high-quality, ring-free filter the converter relies on.
	InterpolationLanczos Interpolation = iota

	// InterpolationCatmullRom uses a Catmull-Rom bicubic kernel.
	InterpolationCatmullRom

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

// ResizeGray resizes a grayscale image to the specified dimensions using
// the given interpolation method.
func ResizeGray(img *GrayImage, width, height int, interp Interpolation) *GrayImage {
	if interp == InterpolationLanczos {
		resized := resize.Resize(uint(width), uint(height), img.Gray, resize.Lanczos3)
		return GrayImageFromImage(resized)
	}

	dst := NewGrayImage(width, height)
	dstRect := image.Rect(0, 0, width, height)

	var scaler draw.Scaler
	switch interp {
	case InterpolationCatmullRom:
		scaler = draw.CatmullRom
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	default:
		scaler = draw.CatmullRom
	}

	scaler.Scale(dst.Gray, dstRect, img.Gray, img.Bounds(), draw.Over, nil)
	return dst
}
