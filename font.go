package digitalavator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
)

// Fallback cell size used when a resolved face reports degenerate
// metrics.
const (
	fallbackCharWidth  = 6
	fallbackCharHeight = 12
)

// GlyphMetrics describes the fixed character cell of a monospace face:
// the advance width of a glyph and the line height.
type GlyphMetrics struct {
	CharWidth  int
	CharHeight int
}

// ResolvedFont is a monospace face resolved at a specific size together
// with its measured cell metrics.
type ResolvedFont struct {
	Face    font.Face
	Name    string
	Metrics GlyphMetrics
}

// fontStrategy is one way of obtaining a face at a given size. Each
// strategy either succeeds with a face or reports an error, and the
// resolver takes the first success.
type fontStrategy struct {
	name    string
	resolve func(size int) (font.Face, string, error)
}

// defaultFontPaths lists platform font files tried in order before any
// directory scan. Missing files simply fail the attempt.
var defaultFontPaths = []string{
	"/System/Library/Fonts/Menlo.ttc",                          // macOS
	"/usr/share/fonts/truetype/ubuntu/UbuntuMono-R.ttf",        // Ubuntu
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",      // Debian
	"C:/Windows/Fonts/consola.ttf",                             // Windows
	"C:/Windows/Fonts/lucon.ttf",                               // Windows
	"C:/Windows/Fonts/CascadiaMono.ttf",                        // Windows
}

// commonFontNames are family name fragments matched case-insensitively
// against font files found in the standard font directories.
var commonFontNames = []string{
	"consola", "cour", "menlo", "dejavusansmono", "ubuntumono",
}

// fontSearchDirs are scanned by the family-name strategy.
var fontSearchDirs = []string{
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"/Library/Fonts",
	"/System/Library/Fonts",
	"C:/Windows/Fonts",
}

// FontResolver resolves monospace faces through an ordered list of
// strategies and caches the result per font size. The cache lives for
// the process and is never invalidated; font files do not change during
// a run. All methods are safe for concurrent use.
type FontResolver struct {
	mu         sync.Mutex
	cache      map[int]*ResolvedFont
	strategies []fontStrategy
}

// NewFontResolver creates a resolver with the default strategy order:
// known font file paths, then a family-name scan of the system font
// directories, then the built-in bitmap face. The built-in face always
// loads, so resolution only fails if the strategy list is replaced.
func NewFontResolver() *FontResolver {
	return &FontResolver{
		cache: make(map[int]*ResolvedFont),
		strategies: []fontStrategy{
			{name: "font-paths", resolve: resolveFromPaths},
			{name: "family-scan", resolve: resolveByFamilyName},
			{name: "builtin", resolve: resolveBuiltin},
		},
	}
}

// Resolve returns a monospace face at the given size, trying each
// strategy in order and caching the first success per size key.
func (r *FontResolver) Resolve(size int) (*ResolvedFont, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rf, ok := r.cache[size]; ok {
		return rf, nil
	}

	var lastErr error
	for _, s := range r.strategies {
		face, name, err := s.resolve(size)
		if err != nil {
			lastErr = err
			continue
		}
		rf := &ResolvedFont{
			Face:    face,
			Name:    name,
			Metrics: measureFace(face),
		}
		r.cache[size] = rf
		return rf, nil
	}
	return nil, fmt.Errorf("%w: all %d strategies failed, last: %v",
		ErrFontResolution, len(r.strategies), lastErr)
}

// measureFace derives the character cell from a face by measuring the
// advance of "A" and the line height from the face metrics. Degenerate
// results fall back to a fixed 6x12 cell.
func measureFace(face font.Face) GlyphMetrics {
	adv, ok := face.GlyphAdvance('A')
	m := face.Metrics()
	width := adv.Ceil()
	height := (m.Ascent + m.Descent).Ceil()
	if !ok || width <= 0 || height <= 0 {
		return GlyphMetrics{CharWidth: fallbackCharWidth, CharHeight: fallbackCharHeight}
	}
	return GlyphMetrics{CharWidth: width, CharHeight: height}
}

// resolveFromPaths tries each known font file path in order.
func resolveFromPaths(size int) (font.Face, string, error) {
	var lastErr error
	for _, path := range defaultFontPaths {
		face, err := loadTrueTypeFace(path, size)
		if err != nil {
			lastErr = err
			continue
		}
		return face, path, nil
	}
	return nil, "", fmt.Errorf("no default font path usable: %w", lastErr)
}

// resolveByFamilyName walks the system font directories looking for a
// file whose name contains one of the common monospace family names.
func resolveByFamilyName(size int) (font.Face, string, error) {
	for _, dir := range fontSearchDirs {
		var found string
		_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			base := strings.ToLower(d.Name())
			if !strings.HasSuffix(base, ".ttf") {
				return nil
			}
			name := strings.ReplaceAll(strings.TrimSuffix(base, ".ttf"), " ", "")
			for _, want := range commonFontNames {
				if strings.Contains(name, want) {
					found = path
					return filepath.SkipAll
				}
			}
			return nil
		})
		if found == "" {
			continue
		}
		face, err := loadTrueTypeFace(found, size)
		if err != nil {
			continue
		}
		return face, found, nil
	}
	return nil, "", fmt.Errorf("no monospace family found in font directories")
}

// resolveBuiltin returns the embedded bitmap face. It ignores the
// requested size; the face has a fixed 8x16 cell.
func resolveBuiltin(int) (font.Face, string, error) {
	return inconsolata.Regular8x16, "builtin/inconsolata-8x16", nil
}

// loadTrueTypeFace parses a TTF file and creates a face at the given
// point size. TTC collections are rejected by the parser, which the
// resolver treats as an ordinary miss.
func loadTrueTypeFace(path string, size int) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ttf, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
