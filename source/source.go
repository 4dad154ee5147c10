// Package source is the boundary between the renderers and wherever quote
// data comes from. It extracts sheet identifiers from URLs, fetches sheets
// through an injectable Fetcher and turns raw sheet rows into model values.
package source

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrInvalidSourceURL is returned when no sheet identifier can be
	// extracted from a source URL.
	ErrInvalidSourceURL = errors.New("invalid source URL")
	// ErrNoData is returned when a sheet could not be fetched or holds
	// nothing usable.
	ErrNoData = errors.New("no source data")
)

var sheetIDPattern = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)

// SheetID extracts the document identifier from a spreadsheet URL. Both
// ".../d/<id>/edit" and ".../d/<id>" forms are accepted.
func SheetID(url string) (string, error) {
	m := sheetIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSourceURL, url)
	}
	return m[1], nil
}

// Fetcher retrieves the raw rows of a sheet by identifier.
type Fetcher interface {
	Fetch(ctx context.Context, sheetID string) (*Sheet, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, sheetID string) (*Sheet, error)

func (f FetcherFunc) Fetch(ctx context.Context, sheetID string) (*Sheet, error) {
	return f(ctx, sheetID)
}
