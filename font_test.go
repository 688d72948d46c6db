package digitalavator

import (
	"errors"
	"image"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// builtinOnlyResolver resolves through the embedded bitmap face only,
// so tests do not depend on fonts installed on the host.
func builtinOnlyResolver() *FontResolver {
	return &FontResolver{
		cache: make(map[int]*ResolvedFont),
		strategies: []fontStrategy{
			{name: "builtin", resolve: resolveBuiltin},
		},
	}
}

func TestResolveAlwaysSucceeds(t *testing.T) {
	r := NewFontResolver()
	rf, err := r.Resolve(10)
	if err != nil {
		t.Fatalf("Resolve should always succeed via the builtin face: %v", err)
	}
	if rf.Metrics.CharWidth <= 0 || rf.Metrics.CharHeight <= 0 {
		t.Errorf("Resolved metrics must be positive, got %+v", rf.Metrics)
	}
	if rf.Name == "" {
		t.Error("Resolved font should report its source name")
	}
}

func TestResolveCachesPerSize(t *testing.T) {
	r := builtinOnlyResolver()

	first, err := r.Resolve(8)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	second, err := r.Resolve(8)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if first != second {
		t.Error("Same size should return the cached *ResolvedFont")
	}

	other, err := r.Resolve(12)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if other == first {
		t.Error("Different sizes should resolve independently")
	}
}

func TestResolveBuiltinMetrics(t *testing.T) {
	r := builtinOnlyResolver()
	rf, err := r.Resolve(8)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	// The builtin face has a fixed 8-pixel advance regardless of the
	// requested size.
	if rf.Metrics.CharWidth != 8 {
		t.Errorf("Builtin face advance should be 8, got %d", rf.Metrics.CharWidth)
	}
}

func TestResolveExhaustedStrategies(t *testing.T) {
	r := &FontResolver{
		cache: make(map[int]*ResolvedFont),
		strategies: []fontStrategy{
			{name: "paths", resolve: func(int) (font.Face, string, error) {
				return nil, "", errors.New("no such file")
			}},
		},
	}
	_, err := r.Resolve(10)
	if !errors.Is(err, ErrFontResolution) {
		t.Errorf("Exhausted strategies should yield ErrFontResolution, got %v", err)
	}
}

// degenerateFace reports no usable metrics, exercising the fixed
// fallback cell.
type degenerateFace struct{}

func (degenerateFace) Close() error { return nil }
func (degenerateFace) Glyph(fixed.Point26_6, rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	return image.Rectangle{}, nil, image.Point{}, 0, false
}
func (degenerateFace) GlyphBounds(rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return fixed.Rectangle26_6{}, 0, false
}
func (degenerateFace) GlyphAdvance(rune) (fixed.Int26_6, bool) { return 0, false }
func (degenerateFace) Kern(rune, rune) fixed.Int26_6           { return 0 }
func (degenerateFace) Metrics() font.Metrics                   { return font.Metrics{} }

func TestMeasureFaceFallback(t *testing.T) {
	m := measureFace(degenerateFace{})
	if m.CharWidth != fallbackCharWidth || m.CharHeight != fallbackCharHeight {
		t.Errorf("Degenerate face should use the %dx%d fallback cell, got %+v",
			fallbackCharWidth, fallbackCharHeight, m)
	}
}
