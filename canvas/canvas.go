// Package canvas is a stateful 2D drawing surface for PDF output.
//
// All coordinates are absolute page coordinates in points with the origin
// at the bottom-left corner and y increasing upward. Each page carries its
// own size, so a single document may mix orientations.
package canvas

// Font styles understood by the underlying PDF engine.
const (
	StyleRegular    = ""
	StyleBold       = "B"
	StyleItalic     = "I"
	StyleBoldItalic = "BI"
)

// Standard page sizes in points.
var (
	A4         = Size{Width: 595.28, Height: 841.89}
	Widescreen = Size{Width: 1920, Height: 1080}
)

// Size is a page size in points.
type Size struct {
	Width  float64
	Height float64
}

// Font selects a font family, style and size.
type Font struct {
	Family string
	Style  string
	Size   float64
}

// Helvetica returns the regular Helvetica core font at size.
func Helvetica(size float64) Font {
	return Font{Family: "Helvetica", Style: StyleRegular, Size: size}
}

// HelveticaBold returns the bold Helvetica core font at size.
func HelveticaBold(size float64) Font {
	return Font{Family: "Helvetica", Style: StyleBold, Size: size}
}

// HelveticaOblique returns the oblique Helvetica core font at size.
func HelveticaOblique(size float64) Font {
	return Font{Family: "Helvetica", Style: StyleItalic, Size: size}
}

// RectStyle controls how a rectangle is painted.
type RectStyle string

const (
	Fill       RectStyle = "F"
	Stroke     RectStyle = "D"
	FillStroke RectStyle = "FD"
)

// Image is an encoded bitmap ready for placement. Name identifies the image
// inside one document; drawing the same name twice reuses the embedded data.
type Image struct {
	Name string
	// Type is the encoded format, "PNG" or "JPG".
	Type string
	Data []byte
}

// Canvas is the drawing contract shared by the renderers.
type Canvas interface {
	// AddPage starts a new page of the given size and resets drawing state.
	AddPage(size Size)
	PageSize() Size
	PageCount() int

	SetFont(font Font)
	Font() Font
	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(width float64)
	// SetAlpha sets the opacity for subsequent fills, strokes and images.
	SetAlpha(alpha float64)

	// DrawString draws text with its left edge at x and baseline at y.
	DrawString(x, y float64, text string)
	// DrawRightString draws text with its right edge at x and baseline at y.
	DrawRightString(x, y float64, text string)
	// StringWidth measures text in points for the given font.
	StringWidth(text string, font Font) float64

	Line(x1, y1, x2, y2 float64)
	Rect(x, y, width, height float64, style RectStyle)
	// DrawImage scales img to width×height with its bottom-left corner at (x, y).
	DrawImage(img Image, x, y, width, height float64) error

	// ClipRect restricts drawing to the rectangle until ClipEnd is called.
	ClipRect(x, y, width, height float64)
	ClipEnd()
}
