// Command avatorize is the scripted consumer: it runs the same pipeline
// as the interactive form, driven by flags.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	digitalavator "github.com/CMouse123456/DigitalAvator"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outDir := flag.String("outdir", ".",
		"Directory to write artifacts to (created if absent)")
	width := flag.Int("width", digitalavator.DefaultOutputWidth,
		"Output width in characters")
	contrast := flag.Float64("contrast", digitalavator.DefaultContrast,
		"Contrast stretch factor (typical 0.5-3.0)")
	gamma := flag.Float64("gamma", digitalavator.DefaultGamma,
		"Gamma correction exponent (typical 0.1-2.0)")
	fontSize := flag.Int("fontsize", digitalavator.DefaultFontSize,
		"Font size for PNG rendering")
	saveText := flag.Bool("text", true,
		"Write the character grid to {base}_ascii.txt")
	saveImage := flag.Bool("image", true,
		"Render the grid to {base}_ascii.png")
	preview := flag.Bool("preview", false,
		"Print the first 100 lines to stdout")
	flag.Parse()

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	g := digitalavator.NewGenerator(
		digitalavator.WithOutputWidth(*width),
		digitalavator.WithContrast(*contrast),
		digitalavator.WithGamma(*gamma),
		digitalavator.WithFontSize(*fontSize),
		digitalavator.WithOutputDir(*outDir),
		digitalavator.WithArtifacts(*preview, *saveText, *saveImage),
	)

	res, err := g.Generate(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *preview {
		fmt.Println(strings.Join(res.Preview, "\n"))
	}
	if res.TextPath != "" {
		fmt.Printf("Text output written to %s\n", res.TextPath)
	}
	if res.ImagePath != "" {
		fmt.Printf("PNG output written to %s\n", res.ImagePath)
	}
}
