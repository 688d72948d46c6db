package digitalavator

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// defaultResolver backs the package-level Render function. Font
// resolution is cached here for the life of the process.
var defaultResolver = NewFontResolver()

// Render draws a character grid into an RGB bitmap using a resolved
// monospace face at fontSize. The bitmap is CharWidth*len(lines[0])
// wide and CharHeight*len(lines) tall, filled with bg, with each line
// drawn antialiased in fg at its row offset.
func Render(lines []string, fontSize int, bg, fg color.Color) (image.Image, error) {
	return RenderWith(defaultResolver, lines, fontSize, bg, fg)
}

// RenderWith is Render with an explicit font resolver.
func RenderWith(fonts *FontResolver, lines []string, fontSize int, bg, fg color.Color) (image.Image, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: character grid is empty", ErrInvalidParameter)
	}
	if fontSize <= 0 {
		return nil, fmt.Errorf("%w: font size must be positive, got %d",
			ErrInvalidParameter, fontSize)
	}

	rf, err := fonts.Resolve(fontSize)
	if err != nil {
		return nil, err
	}

	width := rf.Metrics.CharWidth * len(lines[0])
	height := rf.Metrics.CharHeight * len(lines)

	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()

	dc.SetFontFace(rf.Face)
	dc.SetColor(fg)
	ascent := rf.Face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		dc.DrawString(line, 0, float64(i*rf.Metrics.CharHeight+ascent))
	}

	return dc.Image(), nil
}
