package source

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/leafilms/docgen/model"
)

// Sheet holds the raw cell values of a quote spreadsheet.
type Sheet struct {
	// Sums are the rows of columns A:C: category, description, amount.
	Sums [][]string `json:"sums" yaml:"sums"`
	// Details are label/value rows describing the customer and the offer.
	Details [][]string `json:"details" yaml:"details"`
	// Company are label/value rows of the company-info block. A row with an
	// empty label continues the previous label.
	Company [][]string `json:"company" yaml:"company"`

	Days               string `json:"days" yaml:"days"`
	PostProductionDays string `json:"post_production_days" yaml:"post_production_days"`
	PreProductionDays  string `json:"pre_production_days" yaml:"pre_production_days"`
}

// Quote converts the sheet into normalized quote data.
func (s Sheet) Quote() (*model.QuoteData, error) {
	if len(s.Sums) == 0 && len(s.Details) == 0 {
		return nil, fmt.Errorf("%w: sheet has no sums or details", ErrNoData)
	}

	items, excl, incl := GroupSums(s.Sums)
	q := &model.QuoteData{
		LineItems:    items,
		TotalExclTax: excl,
		TotalInclTax: incl,
		Metadata:     Details(s.Details),
		CompanyInfo:  CompanyInfo(s.Company),
	}

	var err error
	if q.QuantityDays, err = model.ParseDays(s.Days); err != nil {
		return nil, err
	}
	if q.PostProductionDays, err = model.ParseDays(s.PostProductionDays); err != nil {
		return nil, err
	}
	if q.PreProductionDays, err = model.ParseDays(s.PreProductionDays); err != nil {
		return nil, err
	}

	q.Normalize()
	return q, nil
}

var amountPattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)

// GroupSums reads category rows. Column A names the category and a blank
// column A continues the previous one; column C holds an unsigned amount
// that may use a decimal comma. Rows whose amount is not a number are
// skipped. The two totals rows are also returned as totals.
func GroupSums(rows [][]string) (items []model.LineItem, exclTax, inclTax *float64) {
	var current string
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		raw := strings.ReplaceAll(strings.TrimSpace(row[2]), ",", ".")
		if !amountPattern.MatchString(raw) {
			continue
		}
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}

		unit := strings.TrimSpace(row[0])
		switch unit {
		case model.LabelTotalExclTax:
			exclTax = model.Float(amount)
		case model.LabelTotalInclTax:
			inclTax = model.Float(amount)
		}
		if unit != "" {
			current = unit
		}
		if current != "" {
			items = append(items, model.LineItem{Category: current, Amount: amount})
		}
	}
	return items, exclTax, inclTax
}

// CompanyInfo builds the carry-forward map of the company-info block. A row
// with a label starts an entry; a row with an empty label appends its value
// as a new line of the previous entry.
func CompanyInfo(rows [][]string) []model.CompanyEntry {
	var entries []model.CompanyEntry
	index := map[string]int{}
	current := -1

	for _, row := range rows {
		label := ""
		if len(row) > 0 {
			label = strings.TrimSpace(row[0])
		}
		value := ""
		if len(row) > 1 {
			value = strings.TrimSpace(row[1])
		}

		if label != "" {
			if value == "" {
				value = " "
			}
			if i, ok := index[label]; ok {
				entries[i].Value = value
				current = i
				continue
			}
			index[label] = len(entries)
			current = len(entries)
			entries = append(entries, model.CompanyEntry{Label: label, Value: value})
			continue
		}
		if current >= 0 && value != "" {
			entries[current].Value += "\n" + value
		}
	}
	return entries
}

// Details builds the trimmed label/value metadata map. Rows without a value
// column are ignored.
func Details(rows [][]string) model.Metadata {
	m := model.Metadata{}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		m[strings.TrimSpace(row[0])] = strings.TrimSpace(row[1])
	}
	return m
}
