package model

import (
	"sort"
	"strings"
)

// Reserved category labels. The two totals rows are captured as totals and
// never rendered as line items.
const (
	LabelTotalExclTax   = "Produksjon totalt eksl. mva"
	LabelTotalInclTax   = "Produksjon totalt inkl. mva"
	LabelPostProduction = "Post produksjon"
	LabelPreProduction  = "Oppstart/planlegging"
)

// LineItem is one (category, amount) pair of a price quote.
type LineItem struct {
	Category string  `json:"category" yaml:"category" validate:"required"`
	Amount   float64 `json:"amount" yaml:"amount"`
}

// CompanyEntry is one label of the company-info block. Value may span
// several lines.
type CompanyEntry struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// QuoteData is the input of the price quote renderer.
type QuoteData struct {
	LineItems          []LineItem     `json:"line_items" yaml:"line_items" validate:"dive"`
	TotalExclTax       *float64       `json:"total_excl_tax,omitempty" yaml:"total_excl_tax,omitempty"`
	TotalInclTax       *float64       `json:"total_incl_tax,omitempty" yaml:"total_incl_tax,omitempty"`
	QuantityDays       *float64       `json:"quantity_days,omitempty" yaml:"quantity_days,omitempty" validate:"omitempty,gte=0"`
	PostProductionDays *float64       `json:"post_production_days,omitempty" yaml:"post_production_days,omitempty" validate:"omitempty,gte=0"`
	PreProductionDays  *float64       `json:"pre_production_days,omitempty" yaml:"pre_production_days,omitempty" validate:"omitempty,gte=0"`
	Metadata           Metadata       `json:"metadata" yaml:"metadata"`
	CompanyInfo        []CompanyEntry `json:"company_info" yaml:"company_info"`
	DiscountPercent    float64        `json:"discount_percent" yaml:"discount_percent" validate:"gte=0,lte=100"`
}

// Normalize aggregates repeated categories, sorts them alphabetically and
// moves the reserved totals rows into TotalExclTax/TotalInclTax unless those
// are already set.
func (q *QuoteData) Normalize() {
	items := Aggregate(q.LineItems)
	rows := items[:0]
	for _, item := range items {
		switch item.Category {
		case LabelTotalExclTax:
			if q.TotalExclTax == nil {
				q.TotalExclTax = Float(item.Amount)
			}
		case LabelTotalInclTax:
			if q.TotalInclTax == nil {
				q.TotalInclTax = Float(item.Amount)
			}
		default:
			rows = append(rows, item)
		}
	}
	q.LineItems = rows
	q.Metadata = NewMetadata(q.Metadata)
}

// Rows returns the line items that appear in the rendered table: everything
// except the reserved totals labels, in the stored order.
func (q QuoteData) Rows() []LineItem {
	var rows []LineItem
	for _, item := range q.LineItems {
		if IsReserved(item.Category) {
			continue
		}
		rows = append(rows, item)
	}
	return rows
}

// DaysFor returns the day count shown in the quantity column for category.
func (q QuoteData) DaysFor(category string) *float64 {
	switch category {
	case LabelPostProduction:
		return q.PostProductionDays
	case LabelPreProduction:
		return q.PreProductionDays
	default:
		return q.QuantityDays
	}
}

// Aggregate sums the amounts of repeated categories and returns one item per
// category sorted by label. Category labels are trimmed first.
func Aggregate(items []LineItem) []LineItem {
	sums := make(map[string]float64, len(items))
	for _, item := range items {
		sums[strings.TrimSpace(item.Category)] += item.Amount
	}
	out := make([]LineItem, 0, len(sums))
	for category, amount := range sums {
		out = append(out, LineItem{Category: category, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// IsReserved reports whether category is one of the two totals labels.
func IsReserved(category string) bool {
	return category == LabelTotalExclTax || category == LabelTotalInclTax
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// Metadata maps free-text labels to values. Keys are compared trimmed.
type Metadata map[string]string

// NewMetadata copies m with keys and values trimmed.
func NewMetadata(m map[string]string) Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// Get returns the value stored for key, or fallback when key is absent.
func (m Metadata) Get(key, fallback string) string {
	if v, ok := m[key]; ok {
		return v
	}
	for k, v := range m {
		if strings.TrimSpace(k) == key {
			return strings.TrimSpace(v)
		}
	}
	return fallback
}

// Metadata keys read by the quote renderer.
const (
	KeyCustomer       = "Kunde"
	KeyVersion        = "Versjon"
	KeyOfferDate      = "Tilbud dato"
	KeyProject        = "Prosjekt"
	KeyReference      = "Referanse"
	KeyTheirReference = "Deres referanse"
	KeyCustomerNumber = "Kundenummer"
	KeyOurContact     = "Vår kontakt"
	KeyPaymentDetails = "Betalingsdetaljer"
	KeyDeliveryDate   = "Leveringsdato"
)
