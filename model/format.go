package model

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amounts = message.NewPrinter(language.English)

// FormatAmount renders a currency value with thousands separators and two
// decimals, e.g. 10000 -> "10,000.00".
func FormatAmount(v float64) string {
	return amounts.Sprintf("%.2f", v)
}

// FormatNumber renders v without a fractional part when it has none:
// 3.0 -> "3", 2.5 -> "2.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDays renders an optional day count, or "" when it is absent.
func FormatDays(v *float64) string {
	if v == nil {
		return ""
	}
	return FormatNumber(*v)
}

// ParseDays parses a day count that may use a decimal comma. An empty string
// is an absent value.
func ParseDays(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid day count %q: %w", s, err)
	}
	return &v, nil
}
