package digitalavator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CMouse123456/DigitalAvator/imageutil"
)

// writeTestInput saves a small gradient image under dir and returns its
// path.
func writeTestInput(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := imageutil.SavePNG(imageutil.CreateGradientImage(80, 40), path); err != nil {
		t.Fatalf("Failed to write test input: %v", err)
	}
	return path
}

func TestGenerateAllArtifacts(t *testing.T) {
	tmp := t.TempDir()
	input := writeTestInput(t, tmp, "portrait.png")
	outDir := filepath.Join(tmp, "out")

	g := NewGenerator(
		WithOutputWidth(40),
		WithOutputDir(outDir),
		WithFontResolver(builtinOnlyResolver()),
	)
	res, err := g.Generate(input)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if res.TextPath != filepath.Join(outDir, "portrait_ascii.txt") {
		t.Errorf("Unexpected text path %q", res.TextPath)
	}
	if res.ImagePath != filepath.Join(outDir, "portrait_ascii.png") {
		t.Errorf("Unexpected image path %q", res.ImagePath)
	}
	for _, p := range []string{res.TextPath, res.ImagePath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("Artifact %q should exist: %v", p, err)
		}
	}

	data, err := os.ReadFile(res.TextPath)
	if err != nil {
		t.Fatalf("Failed to read text artifact: %v", err)
	}
	if got := string(data); got != strings.Join(res.Lines, "\n") {
		t.Error("Text artifact should be the grid joined by newlines, verbatim")
	}
}

func TestGenerateTextOnly(t *testing.T) {
	tmp := t.TempDir()
	input := writeTestInput(t, tmp, "photo.png")
	outDir := filepath.Join(tmp, "out")

	g := NewGenerator(
		WithOutputWidth(30),
		WithOutputDir(outDir),
		WithArtifacts(false, true, false),
	)
	res, err := g.Generate(input)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if res.Preview != nil {
		t.Error("Preview disabled, Result.Preview should be nil")
	}
	if _, err := os.Stat(filepath.Join(outDir, "photo_ascii.txt")); err != nil {
		t.Errorf("Text artifact should exist: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "photo_ascii.png")); !os.IsNotExist(err) {
		t.Error("PNG artifact should not exist when image saving is disabled")
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("Failed to read output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected exactly one artifact, found %d", len(entries))
	}
}

func TestGeneratePreviewTruncation(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "tall.png")
	// 100x500 source at width 100 gives 100*5*0.5 = 250 lines.
	if err := imageutil.SavePNG(imageutil.CreateGradientImage(100, 500), path); err != nil {
		t.Fatalf("Failed to write test input: %v", err)
	}

	g := NewGenerator(
		WithOutputWidth(100),
		WithOutputDir(tmp),
		WithArtifacts(true, false, false),
	)
	res, err := g.Generate(path)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(res.Lines) != 250 {
		t.Fatalf("Expected 250 lines, got %d", len(res.Lines))
	}
	if len(res.Preview) != PreviewLines {
		t.Errorf("Preview should hold %d lines, got %d", PreviewLines, len(res.Preview))
	}
}

func TestGenerateMissingInput(t *testing.T) {
	tmp := t.TempDir()
	outDir := filepath.Join(tmp, "out")

	g := NewGenerator(WithOutputDir(outDir))
	_, err := g.Generate(filepath.Join(tmp, "missing.png"))
	if !errors.Is(err, ErrImageDecode) {
		t.Fatalf("Missing input should yield ErrImageDecode, got %v", err)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Error("Output directory must not be created for a failed decode")
	}
}

func TestGenerateInvalidWidthWritesNothing(t *testing.T) {
	tmp := t.TempDir()
	input := writeTestInput(t, tmp, "photo.png")
	outDir := filepath.Join(tmp, "out")

	g := NewGenerator(WithOutputWidth(0), WithOutputDir(outDir))
	_, err := g.Generate(input)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("Width 0 should yield ErrInvalidParameter, got %v", err)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Error("No output files may be created for invalid parameters")
	}
}

func TestGenerateOverwritesExisting(t *testing.T) {
	tmp := t.TempDir()
	input := writeTestInput(t, tmp, "photo.png")

	txt := filepath.Join(tmp, "photo_ascii.txt")
	if err := os.WriteFile(txt, []byte("stale"), 0644); err != nil {
		t.Fatalf("Failed to seed stale artifact: %v", err)
	}

	g := NewGenerator(
		WithOutputWidth(20),
		WithOutputDir(tmp),
		WithArtifacts(false, true, false),
	)
	if _, err := g.Generate(input); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(txt)
	if err != nil {
		t.Fatalf("Failed to read artifact: %v", err)
	}
	if string(data) == "stale" {
		t.Error("Existing artifact should be overwritten")
	}
}

func TestNewGeneratorDefaults(t *testing.T) {
	g := NewGenerator()
	if g.OutputWidth != 200 || g.Contrast != 1.2 || g.Gamma != 0.8 || g.FontSize != 8 {
		t.Errorf("Unexpected defaults: %+v", g)
	}
	if !g.GeneratePreview || !g.SaveText || !g.SaveImage {
		t.Error("All artifacts should default to enabled")
	}
}
