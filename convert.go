package digitalavator

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/CMouse123456/DigitalAvator/imageutil"
)

// charAspect compensates for monospace glyphs being roughly twice as
// tall as wide, so the rendered text keeps the source image's visual
// aspect ratio.
const charAspect = 0.5

// Convert turns a decoded image into a grid of ramp characters
// approximating its luminance. The pipeline is: BT.601 grayscale,
// symmetric contrast stretch around mid-gray, Lanczos resize to
// (width, width*aspect*0.5), normalization to [0,1], gamma correction,
// and quantization into the 70-character ramp.
//
// The target height is truncated toward zero (minimum 1), matching
// int() conversion semantics: a 100x50 source at width 10 yields
// exactly 2 lines.
//
// Convert is a pure function of its inputs and performs no I/O.
func Convert(img image.Image, width int, contrast, gamma float64) ([]string, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: output width must be positive, got %d",
			ErrInvalidParameter, width)
	}
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return nil, fmt.Errorf("%w: source image has no pixels (%dx%d)",
			ErrInvalidParameter, srcW, srcH)
	}

	gray := imageutil.ToGrayscale(img)
	gray = imageutil.AdjustContrast(gray, contrast)

	height := int(float64(width) * float64(srcH) / float64(srcW) * charAspect)
	if height < 1 {
		height = 1
	}
	resized := imageutil.ResizeGray(gray, width, height, imageutil.InterpolationLanczos)

	var stream strings.Builder
	stream.Grow(width * height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := float64(resized.GetGray(x, y)) / 255.0
			v = math.Pow(v, gamma)
			stream.WriteByte(Ramp[rampIndex(v)])
		}
	}

	return splitLines(stream.String(), width), nil
}

// ConvertFile decodes the image at path and converts it. Decoding
// failures are reported as ErrImageDecode.
func ConvertFile(path string, width int, contrast, gamma float64) ([]string, error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	return Convert(img, width, contrast, gamma)
}

// splitLines chops the row-major character stream into lines of exactly
// width characters. A short final line is accepted, not an error.
func splitLines(stream string, width int) []string {
	lines := make([]string, 0, (len(stream)+width-1)/width)
	for start := 0; start < len(stream); start += width {
		end := start + width
		if end > len(stream) {
			end = len(stream)
		}
		lines = append(lines, stream[start:end])
	}
	return lines
}
