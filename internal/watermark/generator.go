// Package watermark renders a "PREPRINT" overlay page and stamps it onto
// every page of a PDF document.
package watermark

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Defaults for the overlay.
const (
	DefaultText     = "PREPRINT"
	DefaultAngle    = 45.0
	DefaultOpacity  = 0.3
	DefaultFontSize = 60.0
)

// Config collects the overlay parameters.
type Config struct {
	Text     string
	Angle    float64 // degrees, counter-clockwise about the page center
	Opacity  float64 // alpha in [0,1]
	FontSize float64 // points
}

// DefaultConfig returns the standard preprint banner configuration.
func DefaultConfig() Config {
	return Config{
		Text:     DefaultText,
		Angle:    DefaultAngle,
		Opacity:  DefaultOpacity,
		FontSize: DefaultFontSize,
	}
}

// creationDate is pinned so that identical configs render byte-identical
// overlay documents.
var creationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Page renders a single-page A4 document carrying cfg.Text in bold gray,
// horizontally centered with its baseline on the page's geometric center and
// rotated cfg.Angle degrees about that center. The page size is a fixed A4
// reference; it does not adapt to the document the overlay is stamped onto.
func Page(cfg Config) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetCreationDate(creationDate)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", cfg.FontSize)
	pdf.SetTextColor(128, 128, 128)
	pdf.SetAlpha(cfg.Opacity, "Normal")

	w, h := pdf.GetPageSize()
	pdf.TransformBegin()
	pdf.TransformRotate(cfg.Angle, w/2, h/2)
	pdf.Text(w/2-pdf.GetStringWidth(cfg.Text)/2, h/2, cfg.Text)
	pdf.TransformEnd()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering overlay page: %w", err)
	}
	return buf.Bytes(), nil
}
