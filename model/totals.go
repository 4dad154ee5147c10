package model

// nonDiscountable lists the categories a discount never applies to: travel
// and production expenses in both languages, plus the two totals rows.
var nonDiscountable = map[string]struct{}{
	"Produksjonsutgifter": {},
	"Production expenses": {},
	"Fly":                 {},
	"Flight":              {},
	"Overnatting":         {},
	"Accommodation":       {},
	"Dagpenger":           {},
	"Per diem":            {},
	"Transport":           {},
	"Reise":               {},
	"Travel":              {},
	LabelTotalExclTax:     {},
	LabelTotalInclTax:     {},
}

// IsDiscountable reports whether a discount applies to category.
func IsDiscountable(category string) bool {
	_, excluded := nonDiscountable[category]
	return !excluded
}

// DiscountOf returns percent of amount. percent is a plain number, 10 means
// ten percent.
func DiscountOf(amount, percent float64) float64 {
	return amount * (percent / 100)
}

// DiscountableSubtotal sums every discountable line item.
func (q QuoteData) DiscountableSubtotal() float64 {
	var sum float64
	for _, item := range q.LineItems {
		if IsDiscountable(item.Category) {
			sum += item.Amount
		}
	}
	return sum
}

// Totals is what the totals block prints.
type Totals struct {
	ExclTax *float64
	// InclTax is set only when tax is included and the quote carries the
	// incl. tax total.
	InclTax  *float64
	Discount *Discount
}

// Discount is the discount section of the totals block.
type Discount struct {
	Percent float64
	Amount  float64
	// NewExclTax is set when tax is included and an excl. tax total exists.
	NewExclTax *float64
	Final      float64
	// FinalInclTax tells whether Final is the price with tax.
	FinalInclTax bool
}

// ComputeTotals derives the totals block. With a zero discount the result
// is the same as with no discount logic at all.
func (q QuoteData) ComputeTotals(includeTax bool) Totals {
	t := Totals{ExclTax: q.TotalExclTax}
	if includeTax && q.TotalInclTax != nil {
		t.InclTax = q.TotalInclTax
	}
	if q.DiscountPercent <= 0 {
		return t
	}

	base := q.TotalExclTax
	if includeTax && q.TotalInclTax != nil && *q.TotalInclTax != 0 {
		base = q.TotalInclTax
	}
	if base == nil || *base == 0 {
		return t
	}

	amount := DiscountOf(q.DiscountableSubtotal(), q.DiscountPercent)
	d := &Discount{
		Percent:      q.DiscountPercent,
		Amount:       amount,
		Final:        *base - amount,
		FinalInclTax: base == q.TotalInclTax,
	}
	if includeTax && q.TotalExclTax != nil && *q.TotalExclTax != 0 {
		d.NewExclTax = Float(*q.TotalExclTax - amount)
	}
	t.Discount = d
	return t
}
