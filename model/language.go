package model

import (
	"fmt"
	"strings"
)

// Language selects the strings a document is rendered with. It never changes
// layout geometry.
type Language string

const (
	NO Language = "NO"
	EN Language = "EN"
)

// ParseLanguage accepts "no"/"en" in any case. An empty string means NO.
func ParseLanguage(s string) (Language, error) {
	switch l := Language(strings.ToUpper(strings.TrimSpace(s))); l {
	case "":
		return NO, nil
	case NO, EN:
		return l, nil
	default:
		return "", fmt.Errorf("unknown language %q, expected NO or EN", s)
	}
}

// Pick returns no for Norwegian and en otherwise.
func (l Language) Pick(no, en string) string {
	if l == EN {
		return en
	}
	return no
}

func (l Language) String() string {
	return string(l)
}
