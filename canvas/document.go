package canvas

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Document is a Canvas backed by an in-memory gofpdf document.
// A Document is not safe for concurrent use; each render owns its own.
type Document struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
	cfg       documentConfig

	size   Size
	font   Font
	pages  int
	err    error
	closed bool
}

var _ Canvas = (*Document)(nil)

// New creates an empty document. No page exists until AddPage is called.
func New(opts ...Option) *Document {
	cfg := documentConfig{
		compress:    true,
		creator:     "docgen",
		defaultSize: A4,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: cfg.defaultSize.Width, Ht: cfg.defaultSize.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(cfg.compress)
	pdf.SetCreator(cfg.creator, true)
	if cfg.title != "" {
		pdf.SetTitle(cfg.title, true)
	}
	if cfg.author != "" {
		pdf.SetAuthor(cfg.author, true)
	}
	if !cfg.createdAt.IsZero() {
		pdf.SetCreationDate(cfg.createdAt)
	} else {
		pdf.SetCreationDate(time.Now())
	}

	d := &Document{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		cfg:       cfg,
		font:      Helvetica(12),
	}
	pdf.SetFont(d.font.Family, d.font.Style, d.font.Size)
	return d
}

// AddPage starts a new page. Fill and stroke colors reset to black, line
// width to 1pt and opacity to 1.
func (d *Document) AddPage(size Size) {
	if d.closed {
		d.fail("AddPage", ErrClosed)
		return
	}
	if size.Width <= 0 || size.Height <= 0 {
		size = d.cfg.defaultSize
	}
	d.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: size.Width, Ht: size.Height})
	d.size = size
	d.pages++

	d.pdf.SetFont(d.font.Family, d.font.Style, d.font.Size)
	d.SetFillColor(Black)
	d.SetStrokeColor(Black)
	d.pdf.SetLineWidth(1)
	d.pdf.SetAlpha(1, "Normal")
}

func (d *Document) PageSize() Size {
	return d.size
}

func (d *Document) PageCount() int {
	return d.pages
}

func (d *Document) SetFont(font Font) {
	d.font = font
	d.pdf.SetFont(font.Family, font.Style, font.Size)
}

func (d *Document) Font() Font {
	return d.font
}

// SetFillColor sets the color used for filled shapes and text.
func (d *Document) SetFillColor(c Color) {
	d.pdf.SetFillColor(c.R, c.G, c.B)
	d.pdf.SetTextColor(c.R, c.G, c.B)
}

func (d *Document) SetStrokeColor(c Color) {
	d.pdf.SetDrawColor(c.R, c.G, c.B)
}

func (d *Document) SetLineWidth(width float64) {
	d.pdf.SetLineWidth(width)
}

func (d *Document) SetAlpha(alpha float64) {
	if d.pages == 0 {
		return
	}
	d.pdf.SetAlpha(alpha, "Normal")
}

func (d *Document) DrawString(x, y float64, text string) {
	if !d.ready("DrawString") {
		return
	}
	d.pdf.Text(x, d.flip(y), d.translate(text))
}

func (d *Document) DrawRightString(x, y float64, text string) {
	if !d.ready("DrawRightString") {
		return
	}
	encoded := d.translate(text)
	d.pdf.Text(x-d.pdf.GetStringWidth(encoded), d.flip(y), encoded)
}

// StringWidth measures text with font without changing the current font.
func (d *Document) StringWidth(text string, font Font) float64 {
	if font == d.font {
		return d.pdf.GetStringWidth(d.translate(text))
	}
	current := d.font
	d.pdf.SetFont(font.Family, font.Style, font.Size)
	width := d.pdf.GetStringWidth(d.translate(text))
	d.pdf.SetFont(current.Family, current.Style, current.Size)
	return width
}

func (d *Document) Line(x1, y1, x2, y2 float64) {
	if !d.ready("Line") {
		return
	}
	d.pdf.Line(x1, d.flip(y1), x2, d.flip(y2))
}

func (d *Document) Rect(x, y, width, height float64, style RectStyle) {
	if !d.ready("Rect") {
		return
	}
	d.pdf.Rect(x, d.flip(y+height), width, height, string(style))
}

// DrawImage embeds img and places it. An image the PDF engine cannot parse
// is reported as an error and leaves the document usable.
func (d *Document) DrawImage(img Image, x, y, width, height float64) error {
	if !d.ready("DrawImage") {
		return d.err
	}
	if img.Name == "" || len(img.Data) == 0 {
		return newError("DrawImage", ErrInvalidImage)
	}

	opts := gofpdf.ImageOptions{ImageType: img.Type, ReadDpi: false, AllowNegativePosition: true}
	d.pdf.RegisterImageOptionsReader(img.Name, opts, bytes.NewReader(img.Data))
	if d.pdf.Err() {
		err := d.pdf.Error()
		d.pdf.ClearError()
		return newError("DrawImage", err)
	}
	d.pdf.ImageOptions(img.Name, x, d.flip(y+height), width, height, false, opts, 0, "")
	return nil
}

func (d *Document) ClipRect(x, y, width, height float64) {
	if !d.ready("ClipRect") {
		return
	}
	d.pdf.ClipRect(x, d.flip(y+height), width, height, false)
}

func (d *Document) ClipEnd() {
	if !d.ready("ClipEnd") {
		return
	}
	d.pdf.ClipEnd()
}

// Output seals the document and returns the encoded PDF. The document
// cannot be drawn on afterwards.
func (d *Document) Output() ([]byte, error) {
	if d.closed {
		return nil, newError("Output", ErrClosed)
	}
	d.closed = true
	if d.err != nil {
		return nil, d.err
	}
	if d.pages == 0 {
		return nil, newError("Output", ErrNoPage)
	}

	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, newError("Output", err)
	}
	return buf.Bytes(), nil
}

// Err returns the first drawing error recorded on the document.
func (d *Document) Err() error {
	if d.err != nil {
		return d.err
	}
	if d.pdf.Err() {
		return newError("pdf", d.pdf.Error())
	}
	return nil
}

func (d *Document) flip(y float64) float64 {
	return d.size.Height - y
}

func (d *Document) ready(op string) bool {
	switch {
	case d.closed:
		d.fail(op, ErrClosed)
		return false
	case d.pages == 0:
		d.fail(op, ErrNoPage)
		return false
	}
	return d.err == nil
}

func (d *Document) fail(op string, err error) {
	if d.err == nil {
		d.err = newError(op, err)
	}
}
