// Package deck renders the two-page 1920x1080 project description.
package deck

import (
	"fmt"
	"strings"
	"time"

	"github.com/flanksource/commons/logger"

	"github.com/leafilms/docgen/canvas"
	"github.com/leafilms/docgen/model"
)

// Request carries the per-render values that do not come from the content.
type Request struct {
	ProjectType model.ProjectType
	ProjectName string
	Language    model.Language
}

// Renderer draws project description decks. It keeps only configuration, so
// one Renderer can serve concurrent renders.
type Renderer struct {
	assetsDir  string
	paper      []string
	gradient   []string
	uploadsDir string
	logoPath   string
	caption    string
	website    string
	year       int
	docOptions []canvas.Option
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		assetsDir:  "assets",
		paper:      paperTextures,
		gradient:   gradients,
		uploadsDir: "uploads",
		caption:    DefaultCaption,
		website:    DefaultWebsite,
		year:       time.Now().Year(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws content into a new two-page document. projectType, projectName
// and lang override the values carried by content when they are set.
func (r *Renderer) Render(content model.ProjectContent, projectType, projectName string, lang model.Language) ([]byte, error) {
	if err := content.Validate(); err != nil {
		return nil, err
	}
	req, err := newRequest(content, projectType, projectName, lang)
	if err != nil {
		return nil, err
	}

	opts := append([]canvas.Option{canvas.WithTitle(req.ProjectName)}, r.docOptions...)
	doc := canvas.New(opts...)

	r.Draw(doc, content, req)

	data, err := doc.Output()
	if err != nil {
		return nil, fmt.Errorf("render project description: %w", err)
	}
	logger.Debugf("rendered project description %q (%d bytes)", req.ProjectName, len(data))
	return data, nil
}

func newRequest(content model.ProjectContent, projectType, projectName string, lang model.Language) (Request, error) {
	req := Request{
		ProjectType: content.ProjectType,
		ProjectName: content.ProjectName,
		Language:    content.Language,
	}
	if projectType != "" {
		t, err := model.ParseProjectType(projectType)
		if err != nil {
			return req, err
		}
		req.ProjectType = t
	}
	if projectName != "" {
		req.ProjectName = projectName
	}
	if lang != "" {
		req.Language = lang
	}
	l, err := model.ParseLanguage(string(req.Language))
	if err != nil {
		return req, err
	}
	req.Language = l
	return req, nil
}

// Draw lays out both pages on c.
func (r *Renderer) Draw(c canvas.Canvas, content model.ProjectContent, req Request) {
	s := &slide{
		c:       c,
		r:       r,
		req:     req,
		content: content,
		bg:      r.backdrop(),
	}
	sel := model.SelectImages(content.Images)

	c.AddPage(canvas.Widescreen)
	s.bg.draw(c, true)

	y := titleTop
	if sel.Logo != nil {
		y = s.logo(*sel.Logo, y)
	} else {
		s.subtitle(y)
	}
	y -= imagesDrop

	s.brandLogo()

	switch {
	case sel.Pair():
		y = s.pair(*sel.Left, *sel.Right, y)
	case sel.Single != nil:
		y = s.single(*sel.Single, y)
	default:
		y -= noImagesDrop
	}

	s.summary(y)
	s.footer()

	c.AddPage(canvas.Widescreen)
	s.bg.draw(c, false)
	s.pageMark()
}

// Subtitle is the line drawn in place of the customer logo.
func (r *Renderer) Subtitle(t model.ProjectType, lang model.Language) string {
	word := lang.Pick("PRODUKSJON", "PRODUCTION")
	return strings.TrimSpace(fmt.Sprintf("%s %s %d", strings.ToUpper(string(t)), word, r.year))
}
