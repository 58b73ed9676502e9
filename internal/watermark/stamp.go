package watermark

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// stampDesc pins the overlay to its natural size and orientation. Rotation
// and opacity are already baked into the overlay page, so the stamp pass
// applies it verbatim on top of each page.
const stampDesc = "pos:c, scalefactor:1 abs, rotation:0, opacity:1"

// PageCount reports the number of pages in the document at path.
func PageCount(path string) (int, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return ctx.PageCount, nil
}

// Apply stamps the overlay described by cfg onto every page of the document
// at inPath and writes the result to outPath, creating or overwriting it.
// Page order and count are preserved. The same rendered overlay is reused for
// every page, so inputs with unusual page sizes receive it at its fixed A4
// geometry.
func Apply(inPath, outPath string, cfg Config) error {
	if _, err := PageCount(inPath); err != nil {
		return err
	}

	overlay, err := Page(cfg)
	if err != nil {
		return err
	}

	tmp, err := writeTempOverlay(overlay)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	wm, err := api.PDFWatermark(tmp, stampDesc, true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("creating watermark: %w", err)
	}

	if err := api.AddWatermarksFile(inPath, outPath, nil, wm, nil); err != nil {
		return fmt.Errorf("stamping %s: %w", inPath, err)
	}
	return nil
}

// writeTempOverlay spills the rendered overlay to a temp file for pdfcpu,
// which takes its watermark source from a path. The caller removes the file.
func writeTempOverlay(data []byte) (string, error) {
	f, err := os.CreateTemp("", "preprint-overlay-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp overlay file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("writing temp overlay file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("closing temp overlay file: %w", err)
	}
	return f.Name(), nil
}
