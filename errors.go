package digitalavator

import "errors"

// Error kinds reported by the pipeline. Callers match them with
// errors.Is; the wrapped message carries the specifics.
var (
	// ErrImageDecode indicates the input image is missing, unreadable,
	// or not in a supported format.
	ErrImageDecode = errors.New("cannot decode input image")

	// ErrInvalidParameter indicates a zero or negative output width, a
	// degenerate source image, or an empty character grid.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrFontResolution indicates every font resolution strategy failed.
	// The built-in bitmap face makes this effectively unreachable, but
	// the renderer still models it.
	ErrFontResolution = errors.New("no usable monospace font")
)
