package quote

import (
	"fmt"
	"strings"

	"github.com/flanksource/commons/logger"

	"github.com/leafilms/docgen/canvas"
	"github.com/leafilms/docgen/layout"
	"github.com/leafilms/docgen/model"
)

// Page geometry in points.
const (
	headerTop    = 800.0
	pageTop      = 800.0
	bottomMargin = 50.0
	termsFloor   = 60.0

	leftX         = 50.0
	ruleEndX      = 550.0
	companyX      = 360.0
	companyValueX = companyX + 100
	quantityX     = 250.0
	amountX       = 400.0
	discountX     = 500.0
	totalsX       = 472.0

	logoX    = 410.0
	logoDrop = 50.0
	logoW    = 150.0
	logoH    = 75.0

	companyStep = 15.0
	offerStep   = 15.0
	rowStep     = 12.0
	totalsStep  = 15.0
)

var offerColumns = []float64{50, 360, 500, 650}

var termsFlow = layout.Flow{
	Font:         canvas.Helvetica(9),
	MaxWidth:     ruleEndX - leftX,
	LineHeight:   9,
	ParagraphGap: 5,
}

// page is the drawing state of one quote render.
type page struct {
	c    canvas.Canvas
	q    model.QuoteData
	req  Request
	lang model.Language
	r    *Renderer
}

// room starts a new page when y has reached the bottom margin and returns the
// cursor to continue at.
func (p *page) room(y float64) float64 {
	if y >= bottomMargin {
		return y
	}
	font := p.c.Font()
	p.c.AddPage(canvas.A4)
	p.c.SetFont(font)
	return pageTop
}

func (p *page) header(y float64) float64 {
	md := p.q.Metadata
	p.c.SetFont(canvas.Helvetica(11))
	p.c.DrawString(leftX, y, md.Get(model.KeyOurContact, "N/A")+"/"+md.Get(model.KeyCustomer, "N/A"))
	p.logo(logoX, y-logoDrop, logoW, logoH)
	y -= 70

	p.c.SetFont(canvas.HelveticaBold(11))
	p.c.DrawString(companyX, y, p.r.brandName)
	p.c.SetFont(canvas.Helvetica(10))

	colY := y - companyStep
	for _, entry := range p.q.CompanyInfo {
		p.c.DrawString(companyX, colY, entry.Label+":")
		for _, line := range strings.Split(entry.Value, "\n") {
			p.c.DrawString(companyValueX, colY, line)
			colY -= companyStep
		}
	}
	return y - 130
}

// logo draws the brand logo letterboxed into the box.
func (p *page) logo(x, y, w, h float64) {
	img := p.r.brandLogo()
	if img == nil {
		return
	}
	fit, err := layout.Contain(float64(img.Width), float64(img.Height), w, h)
	if err != nil {
		logger.Warnf("brand logo %s: %v", img.Source, err)
		return
	}
	ox, oy := fit.Origin(x, y)
	if err := p.c.DrawImage(img.Embed, ox, oy, fit.Width, fit.Height); err != nil {
		logger.Warnf("brand logo %s: %v", img.Source, err)
	}
}

type field struct {
	label, value string
}

func (p *page) offerFields() []field {
	md := p.q.Metadata
	get := func(key string) string { return md.Get(key, "N/A") }
	if p.lang == model.EN {
		return []field{
			{"Version:", get(model.KeyVersion)},
			{"Offer Date:", get(model.KeyOfferDate)},
			{"Project:", get(model.KeyProject)},
			{"Reference:", get(model.KeyReference)},
			{"Their contact:", get(model.KeyTheirReference)},
			{"Customer number:", get(model.KeyCustomerNumber)},
			{"Our contact:", get(model.KeyOurContact)},
			{"Payment details:", get(model.KeyPaymentDetails)},
			{"Delivery date:", get(model.KeyDeliveryDate)},
		}
	}
	return []field{
		{"Versjon:", get(model.KeyVersion)},
		{"Tilbud dato:", get(model.KeyOfferDate)},
		{"Prosjekt:", get(model.KeyProject)},
		{"Referanse:", get(model.KeyReference)},
		{"Deres kontakt:", get(model.KeyTheirReference)},
		{"Kundenummer:", get(model.KeyCustomerNumber)},
		{"Vår kontakt:", get(model.KeyOurContact)},
		{"Betalings info:", get(model.KeyPaymentDetails)},
		{"Levering dato:", get(model.KeyDeliveryDate)},
	}
}

// offer draws the offer fields column-major under the heading. The returned
// cursor sits at the first field row; the terms block drops below it.
func (p *page) offer(y float64) float64 {
	p.c.SetFont(canvas.HelveticaBold(10))
	p.c.DrawString(leftX, y, p.lang.Pick("Tilbud", "Offer"))
	y -= 20

	p.c.SetFont(canvas.Helvetica(10))
	for i, column := range layout.DistributeColumns(p.offerFields(), len(offerColumns)) {
		x := offerColumns[i]
		rowY := y
		for _, f := range column {
			p.c.DrawString(x, rowY, f.label)
			p.c.DrawString(x+100, rowY, f.value)
			rowY -= offerStep
		}
	}
	return y
}

// terms flows the legal text, continuing on a new page when a line would
// fall below the bottom margin.
func (p *page) terms(y float64) float64 {
	p.c.SetFont(canvas.HelveticaBold(10))
	y = p.room(y - 120)
	p.c.DrawString(leftX, y, p.lang.Pick("Vilkår", "Terms and Conditions"))
	y -= 20

	p.c.SetFont(termsFlow.Font)
	lines, next := termsFlow.Layout(p.c, Terms(p.lang, p.req.IncludeTravel), y)
	shift := 0.0
	for _, line := range lines {
		ly := line.Y + shift
		if ly < bottomMargin {
			shift += pageTop - ly
			ly = p.room(ly)
		}
		p.c.DrawString(leftX, ly, line.Text)
	}
	y = next + shift - 20
	return max(y, termsFloor)
}

func (p *page) tableHeader(y float64) float64 {
	p.c.SetFont(canvas.HelveticaOblique(10))
	p.c.DrawString(leftX, y, p.lang.Pick("Beskrivelse", "Description"))
	p.c.DrawString(quantityX, y, p.lang.Pick("Antall", "Quantity"))
	p.c.DrawString(amountX, y, "Sum (NOK)")
	if percent := p.q.DiscountPercent; percent > 0 {
		p.c.DrawString(discountX, y, fmt.Sprintf(p.lang.Pick("Rabatt (%s%%)", "Discount (%s%%)"), model.FormatNumber(percent)))
	}
	y -= 15
	p.c.Line(leftX, y, ruleEndX, y)
	y -= 15
	p.c.SetFont(canvas.Helvetica(10))
	return y
}

func (p *page) quantity(category string) string {
	days := p.q.DaysFor(category)
	if days == nil {
		return "-"
	}
	return model.FormatDays(days) + " " + p.lang.Pick("dager", "days")
}

func (p *page) table(y float64) float64 {
	y = p.tableHeader(y)
	percent := p.q.DiscountPercent

	for _, item := range p.q.Rows() {
		if y < bottomMargin {
			p.room(y)
			y = p.tableHeader(pageTop)
		}
		p.c.DrawString(leftX, y, item.Category)
		p.c.DrawString(quantityX, y, p.quantity(item.Category))
		p.c.DrawString(amountX, y, model.FormatAmount(item.Amount))
		if percent > 0 && model.IsDiscountable(item.Category) {
			p.c.DrawString(discountX, y, "-"+model.FormatAmount(model.DiscountOf(item.Amount, percent)))
		}
		y -= rowStep
	}

	y = p.room(y)
	p.c.Line(leftX, y, ruleEndX, y)
	y -= rowStep
	return y
}

// totalLine draws a label with a right-anchored NOK amount in the current
// font.
func (p *page) totalLine(y float64, label string, amount float64) float64 {
	y = p.room(y)
	p.c.DrawString(leftX, y, label)
	p.c.DrawRightString(totalsX, y, model.FormatAmount(amount)+" NOK")
	return y - totalsStep
}

func (p *page) totals(y float64) float64 {
	t := p.q.ComputeTotals(p.req.IncludeTax)

	p.c.SetFont(canvas.HelveticaBold(10))
	if t.ExclTax != nil {
		y = p.totalLine(y, p.lang.Pick("Produksjon totalt eksl. mva:", "Production total (excl. VAT):"), *t.ExclTax)
	}
	if t.InclTax != nil {
		y = p.totalLine(y, p.lang.Pick("Produksjon totalt inkl. mva:", "Production total (incl. VAT):"), *t.InclTax)
	}

	d := t.Discount
	if d == nil {
		return y
	}

	p.c.SetFont(canvas.Helvetica(10))
	y = p.room(y)
	p.c.DrawString(leftX, y, fmt.Sprintf(p.lang.Pick("%s%% rabatt:", "%s%% discount:"), model.FormatNumber(d.Percent)))
	p.c.DrawRightString(totalsX, y, "-"+model.FormatAmount(d.Amount)+" NOK")
	y -= totalsStep

	p.c.SetFont(canvas.HelveticaBold(10))
	if d.NewExclTax != nil {
		y = p.totalLine(y, p.lang.Pick("Ny pris eksl. MVA:", "New price excl. VAT:"), *d.NewExclTax)
	}
	final := p.lang.Pick("Ny pris eksl. MVA:", "New price excl. VAT:")
	if d.FinalInclTax {
		final = p.lang.Pick("Ny pris inkl. MVA:", "New price incl. VAT:")
	}
	y = p.totalLine(y, final, d.Final)
	return y - 5
}
