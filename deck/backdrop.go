package deck

import (
	"github.com/flanksource/commons/logger"

	"github.com/leafilms/docgen/canvas"
	"github.com/leafilms/docgen/imageio"
)

var (
	paperColor    = canvas.RGB(0.95, 0.95, 0.93)
	veilColor     = canvas.White
	orangeColor   = canvas.RGB(1, 0.6, 0.2)
	blueColor     = canvas.RGB(0.2, 0.4, 0.8)
	veilAlpha     = 0.7
	fallbackAlpha = 0.6
)

// backdrop holds the background layers found for one render. Either layer
// may be nil.
type backdrop struct {
	paper    *imageio.Image
	gradient *imageio.Image
}

func (r *Renderer) backdrop() backdrop {
	var b backdrop
	if b.paper = imageio.Resolve(r.backgroundPaths(r.paper)...); b.paper == nil {
		logger.Debugf("no paper texture under %s, using a flat fill", r.assetsDir)
	}
	r.reportLayered()
	if b.gradient = imageio.Resolve(r.backgroundPaths(r.gradient)...); b.gradient == nil {
		logger.Debugf("no gradient background under %s, using flat halves", r.assetsDir)
	}
	return b
}

// reportLayered logs editor files lying next to the gradient candidates.
func (r *Renderer) reportLayered() {
	for _, path := range r.backgroundPaths(layeredGradients) {
		format, err := imageio.Detect(path)
		if err != nil {
			continue
		}
		if format == imageio.FormatPSD {
			logger.Warnf("%s is a layered %s file and cannot be embedded, export it as JPEG or PNG", path, format)
		}
	}
}

// draw paints the background layers. The first page gets a white veil and
// an inset gradient; later pages get the gradient full-bleed.
func (b backdrop) draw(c canvas.Canvas, first bool) {
	size := c.PageSize()

	if b.paper != nil {
		drawBackground(c, b.paper, 0, 0, size.Width, size.Height)
	} else {
		c.SetFillColor(paperColor)
		c.Rect(0, 0, size.Width, size.Height, canvas.Fill)
	}

	if b.gradient == nil {
		c.SetAlpha(fallbackAlpha)
		c.SetFillColor(orangeColor)
		c.Rect(0, 0, size.Width/2, size.Height, canvas.Fill)
		c.SetFillColor(blueColor)
		c.Rect(size.Width/2, 0, size.Width/2, size.Height, canvas.Fill)
		c.SetAlpha(1)
		return
	}

	if !first {
		drawBackground(c, b.gradient, 0, 0, size.Width, size.Height)
		return
	}
	c.SetAlpha(veilAlpha)
	c.SetFillColor(veilColor)
	c.Rect(0, 0, size.Width, size.Height, canvas.Fill)
	c.SetAlpha(1)
	drawBackground(c, b.gradient, gradientInset, gradientInset, size.Width-2*gradientInset, size.Height-2*gradientInset)
}

// drawBackground stretches img over the box.
func drawBackground(c canvas.Canvas, img *imageio.Image, x, y, w, h float64) {
	if err := c.DrawImage(img.Embed, x, y, w, h); err != nil {
		logger.Warnf("background %s: %v", img.Source, err)
	}
}
