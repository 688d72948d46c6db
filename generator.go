package digitalavator

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/CMouse123456/DigitalAvator/imageutil"
)

// PreviewLines is how many grid lines the in-memory preview keeps.
const PreviewLines = 100

// Default parameter values, mirroring the interactive form's initial
// slider positions.
const (
	DefaultOutputWidth = 200
	DefaultContrast    = 1.2
	DefaultGamma       = 0.8
	DefaultFontSize    = 8
)

// Generator runs the full pipeline for one input image: convert to a
// character grid, then produce the requested artifacts. Parameters are
// plain fields; a Generator is cheap and carries no state between
// invocations apart from its font resolver's cache.
type Generator struct {
	OutputWidth int
	Contrast    float64
	Gamma       float64
	FontSize    int

	Background color.Color
	Foreground color.Color

	GeneratePreview bool
	SaveText        bool
	SaveImage       bool

	OutputDir string

	fonts *FontResolver
}

// Option is a functional option for configuring a Generator.
type Option func(*Generator)

// NewGenerator creates a Generator with the original defaults: width
// 200, contrast 1.2, gamma 0.8, font size 8, near-black background,
// white text, and all three artifacts enabled.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		OutputWidth:     DefaultOutputWidth,
		Contrast:        DefaultContrast,
		Gamma:           DefaultGamma,
		FontSize:        DefaultFontSize,
		Background:      color.RGBA{R: 3, G: 3, B: 3, A: 255},
		Foreground:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		GeneratePreview: true,
		SaveText:        true,
		SaveImage:       true,
		OutputDir:       ".",
		fonts:           defaultResolver,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithOutputWidth sets the character grid width.
func WithOutputWidth(width int) Option {
	return func(g *Generator) { g.OutputWidth = width }
}

// WithContrast sets the contrast stretch factor.
func WithContrast(contrast float64) Option {
	return func(g *Generator) { g.Contrast = contrast }
}

// WithGamma sets the gamma correction exponent.
func WithGamma(gamma float64) Option {
	return func(g *Generator) { g.Gamma = gamma }
}

// WithFontSize sets the point size used for PNG rendering.
func WithFontSize(size int) Option {
	return func(g *Generator) { g.FontSize = size }
}

// WithColors sets the PNG background and text colors.
func WithColors(bg, fg color.Color) Option {
	return func(g *Generator) {
		g.Background = bg
		g.Foreground = fg
	}
}

// WithOutputDir sets the directory artifacts are written to. It is
// created on demand.
func WithOutputDir(dir string) Option {
	return func(g *Generator) { g.OutputDir = dir }
}

// WithArtifacts selects which outputs to produce.
func WithArtifacts(preview, text, image bool) Option {
	return func(g *Generator) {
		g.GeneratePreview = preview
		g.SaveText = text
		g.SaveImage = image
	}
}

// WithFontResolver replaces the shared font resolver.
func WithFontResolver(fonts *FontResolver) Option {
	return func(g *Generator) { g.fonts = fonts }
}

// Result holds everything one invocation produced. Paths are empty for
// artifacts that were not requested.
type Result struct {
	Lines     []string
	Preview   []string
	TextPath  string
	ImagePath string
}

// Generate runs the pipeline for inputPath. Artifacts are written to
// OutputDir as {base}_ascii.txt and {base}_ascii.png, overwriting any
// existing files. The first failing step aborts the invocation;
// artifacts completed before the failure are left in place, nothing
// after it is written. The output directory is only created once
// conversion has succeeded, so a bad input or width leaves the
// filesystem untouched.
func (g *Generator) Generate(inputPath string) (*Result, error) {
	lines, err := ConvertFile(inputPath, g.OutputWidth, g.Contrast, g.Gamma)
	if err != nil {
		return nil, err
	}

	res := &Result{Lines: lines}
	if g.GeneratePreview {
		n := len(lines)
		if n > PreviewLines {
			n = PreviewLines
		}
		res.Preview = lines[:n]
	}

	if !g.SaveText && !g.SaveImage {
		return res, nil
	}

	if err := os.MkdirAll(g.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	if g.SaveText {
		path := filepath.Join(g.OutputDir, base+"_ascii.txt")
		data := []byte(strings.Join(lines, "\n"))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write text file: %w", err)
		}
		res.TextPath = path
	}

	if g.SaveImage {
		img, err := RenderWith(g.fonts, lines, g.FontSize, g.Background, g.Foreground)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(g.OutputDir, base+"_ascii.png")
		if err := imageutil.SavePNG(img, path); err != nil {
			return nil, fmt.Errorf("failed to write PNG file: %w", err)
		}
		res.ImagePath = path
	}

	return res, nil
}
