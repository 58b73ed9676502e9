// Command preprintmark overlays a diagonal watermark onto every page of a
// PDF document.
//
//	preprintmark [flags] <input_pdf> <output_pdf>
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"preprintmark/internal/watermark"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("preprintmark", flag.ContinueOnError)
	fs.SetOutput(out)
	text := fs.String("text", watermark.DefaultText, "The watermark text.")
	angle := fs.Float64("angle", watermark.DefaultAngle, "Rotation angle in degrees.")
	opacity := fs.Float64("opacity", watermark.DefaultOpacity, "Watermark opacity between 0 and 1.")
	verbose := fs.Bool("v", false, "Enable debug output.")
	fs.Usage = func() {
		fmt.Fprintln(out, "Usage: preprintmark [flags] <input_pdf> <output_pdf>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() < 2 {
		fs.Usage()
		return 1
	}
	inPath, outPath := fs.Arg(0), fs.Arg(1)

	if _, err := os.Stat(inPath); os.IsNotExist(err) {
		fmt.Fprintf(out, "❌ Error: Input file %s not found\n", inPath)
		return 1
	}

	cfg := watermark.DefaultConfig()
	cfg.Text = *text
	cfg.Angle = *angle
	cfg.Opacity = *opacity

	if *verbose {
		if n, err := watermark.PageCount(inPath); err == nil {
			fmt.Fprintf(out, "stamping %d page(s) of %s\n", n, inPath)
		}
	}

	if err := watermark.Apply(inPath, outPath, cfg); err != nil {
		fmt.Fprintf(out, "❌ Error processing %s: %v\n", inPath, err)
		return 1
	}

	fmt.Fprintf(out, "✅ Successfully added watermark to %s\n", outPath)
	return 0
}
