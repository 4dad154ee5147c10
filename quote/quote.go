// Package quote renders price quotes on A4 portrait pages.
package quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/flanksource/commons/logger"

	"github.com/leafilms/docgen/canvas"
	"github.com/leafilms/docgen/imageio"
	"github.com/leafilms/docgen/model"
	"github.com/leafilms/docgen/source"
)

// Request carries the per-render switches.
type Request struct {
	Language        model.Language
	IncludeTravel   bool
	IncludeTax      bool
	DiscountPercent float64
}

// Result is a finished quote.
type Result struct {
	Data     []byte
	Filename string
}

// Renderer draws price quotes. It holds no per-render state and is safe for
// concurrent use.
type Renderer struct {
	logoPath   string
	logo       *imageio.Image
	brandName  string
	handle     string
	docOptions []canvas.Option
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{brandName: DefaultBrandName, handle: DefaultHandle}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Generate resolves the sheet behind url, fetches it and renders the quote.
// An invalid url fails before anything is fetched or drawn, and a failed
// fetch aborts without output.
func (r *Renderer) Generate(ctx context.Context, fetcher source.Fetcher, url string, req Request) (*Result, error) {
	id, err := source.SheetID(url)
	if err != nil {
		return nil, err
	}

	sheet, err := fetcher.Fetch(ctx, id)
	if err != nil {
		if !errors.Is(err, source.ErrNoData) {
			err = fmt.Errorf("%w: %w", source.ErrNoData, err)
		}
		return nil, fmt.Errorf("fetch sheet %s: %w", id, err)
	}
	if sheet == nil {
		return nil, fmt.Errorf("fetch sheet %s: %w", id, source.ErrNoData)
	}

	q, err := sheet.Quote()
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", id, err)
	}
	return r.Render(*q, req)
}

// Render draws q into a new A4 document and returns the bytes together with
// the suggested file name. req.DiscountPercent replaces q.DiscountPercent.
func (r *Renderer) Render(q model.QuoteData, req Request) (*Result, error) {
	q.LineItems = append([]model.LineItem(nil), q.LineItems...)
	q.DiscountPercent = req.DiscountPercent
	q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}
	lang, err := model.ParseLanguage(string(req.Language))
	if err != nil {
		return nil, err
	}
	req.Language = lang

	filename := Filename(req.Language, q.Metadata, r.handle)
	opts := append([]canvas.Option{
		canvas.WithTitle(filename),
		canvas.WithAuthor(r.brandName),
	}, r.docOptions...)
	doc := canvas.New(opts...)

	r.Draw(doc, q, req)

	data, err := doc.Output()
	if err != nil {
		return nil, fmt.Errorf("render quote: %w", err)
	}
	logger.Debugf("rendered %s (%d bytes, %d pages)", filename, len(data), doc.PageCount())
	return &Result{Data: data, Filename: filename}, nil
}

// Draw lays the quote out on c, starting a new A4 page. q is expected to be
// normalized.
func (r *Renderer) Draw(c canvas.Canvas, q model.QuoteData, req Request) {
	p := &page{
		c:    c,
		q:    q,
		req:  req,
		lang: req.Language,
		r:    r,
	}
	c.AddPage(canvas.A4)

	y := p.header(headerTop)
	y = p.offer(y)
	y = p.terms(y)
	y = p.table(y)
	p.totals(y)
}

func (r *Renderer) brandLogo() *imageio.Image {
	if r.logo != nil {
		return r.logo
	}
	if r.logoPath == "" {
		return nil
	}
	img := imageio.Resolve(r.logoPath)
	if img == nil {
		logger.Warnf("brand logo %s not available, leaving the logo area empty", r.logoPath)
	}
	return img
}
