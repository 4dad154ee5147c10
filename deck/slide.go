package deck

import (
	"path"
	"path/filepath"

	"github.com/flanksource/commons/logger"

	"github.com/leafilms/docgen/canvas"
	"github.com/leafilms/docgen/imageio"
	"github.com/leafilms/docgen/layout"
	"github.com/leafilms/docgen/model"
)

// Slide geometry in points on the 1920x1080 page.
const (
	margin    = 60.0
	pageWidth = 1920.0
	pageTop   = 1080.0 - margin
	titleTop  = pageTop - 60

	logoW       = 200.0
	logoH       = 80.0
	captionDrop = 80.0
	captionGap  = 40.0

	brandW = 100.0
	brandH = 50.0

	imagesDrop   = 620.0
	pairHeight   = 650.0
	singleHeight = 500.0
	imageGap     = 10.0
	imagesGap    = 60.0
	noImagesDrop = 100.0

	summaryMin   = 200.0
	summaryFloor = 150.0
	titleStep    = 25.0
	sectionStep  = 40.0
	excerptLimit = 80

	footerY       = 30.0
	pageMarkX     = 20.0
	pageMarkY     = 20.0
	gradientInset = 20.0
)

var (
	placeholderFill = canvas.RGB(0.9, 0.9, 0.9)
	placeholderText = canvas.RGB(0.5, 0.5, 0.5)
	footerColor     = canvas.RGB(0.3, 0.3, 0.3)
)

// slide is the drawing state of one deck render.
type slide struct {
	c       canvas.Canvas
	r       *Renderer
	req     Request
	content model.ProjectContent
	bg      backdrop
}

// centered draws text horizontally centered on the page.
func (s *slide) centered(y float64, text string, font canvas.Font) {
	s.c.SetFont(font)
	s.c.DrawString(layout.CenterX(s.c, text, font, s.c.PageSize().Width), y, text)
}

// logo draws the customer logo box and the caption under it and returns the
// cursor below the caption.
func (s *slide) logo(img model.Image, y float64) float64 {
	x := (pageWidth - logoW) / 2
	boxY := y - logoH

	if loaded := s.upload(img); loaded == nil || !s.fill(loaded, x, boxY, logoW, logoH) {
		s.logoPlaceholder(x, boxY)
	}

	s.c.SetFillColor(canvas.White)
	captionY := boxY - captionDrop
	s.centered(captionY, s.r.caption, canvas.Helvetica(32))
	return captionY - captionGap
}

func (s *slide) logoPlaceholder(x, y float64) {
	s.c.SetStrokeColor(canvas.White)
	s.c.SetLineWidth(2)
	s.c.Rect(x, y, logoW, logoH, canvas.Stroke)

	font := canvas.Helvetica(12)
	s.c.SetFont(font)
	s.c.SetFillColor(canvas.White)
	const text = "Customer Logo"
	s.c.DrawString(x+(logoW-s.c.StringWidth(text, font))/2, y+logoH/2, text)
}

func (s *slide) subtitle(y float64) {
	s.c.SetFillColor(canvas.Black)
	s.centered(y, s.r.Subtitle(s.req.ProjectType, s.req.Language), canvas.Helvetica(20))
}

// brandLogo draws the company logo letterboxed in the top-right corner.
func (s *slide) brandLogo() {
	if s.r.logoPath == "" {
		return
	}
	img := imageio.Resolve(s.r.logoPath)
	if img == nil {
		logger.Debugf("brand logo %s not available", s.r.logoPath)
		return
	}
	fit, err := layout.Contain(float64(img.Width), float64(img.Height), brandW, brandH)
	if err != nil {
		logger.Warnf("brand logo %s: %v", img.Source, err)
		return
	}
	x, y := fit.Origin(pageWidth-brandW-margin, pageTop-brandH)
	if err := s.c.DrawImage(img.Embed, x, y, fit.Width, fit.Height); err != nil {
		logger.Warnf("brand logo %s: %v", img.Source, err)
	}
}

// pair places a 4:5 and a 5:4 image side by side, centered as a pair, with
// their bottom edge at y.
func (s *slide) pair(left, right model.Image, y float64) float64 {
	leftW := pairHeight * 4 / 5
	rightW := pairHeight * 5 / 4
	x := (pageWidth - (leftW + imageGap + rightW)) / 2

	s.slot(left, x, y, leftW, pairHeight)
	s.slot(right, x+leftW+imageGap, y, rightW, pairHeight)
	return y - pairHeight - imagesGap
}

func (s *slide) single(img model.Image, y float64) float64 {
	w := singleHeight * 4 / 5
	s.slot(img, (pageWidth-w)/2, y, w, singleHeight)
	return y - singleHeight - imagesGap
}

// slot fills the box with the uploaded image, or a labeled placeholder when
// the image cannot be used.
func (s *slide) slot(img model.Image, x, y, w, h float64) {
	if loaded := s.upload(img); loaded != nil && s.fill(loaded, x, y, w, h) {
		return
	}
	s.c.SetFillColor(placeholderFill)
	s.c.Rect(x, y, w, h, canvas.Fill)
	s.c.SetFillColor(placeholderText)
	s.c.SetFont(canvas.Helvetica(20))
	s.c.DrawString(x+10, y+h/2, "Image: "+string(img.PlaceholderType))
}

// upload loads an uploaded image, logging why it is unusable when it is.
func (s *slide) upload(img model.Image) *imageio.Image {
	p := filepath.Join(s.r.uploadsDir, filepath.FromSlash(path.Clean("/"+img.Filename)))
	loaded, err := imageio.Load(p)
	switch {
	case err == nil:
		return loaded
	case imageio.IsMissing(err):
		logger.Warnf("%s image %s not found", img.PlaceholderType, p)
	default:
		logger.Warnf("%s image: %v", img.PlaceholderType, err)
	}
	return nil
}

// fill center-crops img into the box, clipping the overflow.
func (s *slide) fill(img *imageio.Image, x, y, w, h float64) bool {
	fit, err := layout.Fit(float64(img.Width), float64(img.Height), w, h)
	if err != nil {
		logger.Warnf("%s: %v", img.Source, err)
		return false
	}
	ox, oy := fit.Origin(x, y)

	s.c.ClipRect(x, y, w, h)
	err = s.c.DrawImage(img.Embed, ox, oy, fit.Width, fit.Height)
	s.c.ClipEnd()
	if err != nil {
		logger.Warnf("%s: %v", img.Source, err)
		return false
	}
	return true
}

// summary prints the goals and concept excerpts while there is room above
// the footer.
func (s *slide) summary(y float64) {
	if y <= summaryMin {
		return
	}
	lang := s.req.Language
	sections := []struct{ title, text string }{
		{lang.Pick("Mål", "Goals"), s.content.Content.Goals},
		{lang.Pick("Konsept", "Concept"), s.content.Content.Concept},
	}

	s.c.SetFillColor(canvas.White)
	for _, section := range sections {
		if y < summaryFloor {
			break
		}
		s.c.SetFont(canvas.HelveticaBold(16))
		s.c.DrawString(margin, y, section.title)
		y -= titleStep

		s.c.SetFont(canvas.Helvetica(11))
		s.c.DrawString(margin, y, layout.Truncate(section.text, excerptLimit))
		y -= sectionStep
	}
}

func (s *slide) footer() {
	s.c.SetFillColor(footerColor)
	s.centered(footerY, s.r.website, canvas.Helvetica(20))
}

func (s *slide) pageMark() {
	s.c.SetFillColor(canvas.White)
	s.c.SetFont(canvas.Helvetica(12))
	s.c.DrawString(pageMarkX, pageMarkY, "1")
}
