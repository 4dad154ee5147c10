package pdfinfo

import (
	"math"
	"strings"
	"testing"
)

// AssertStructure checks the %PDF header and that pdfcpu can validate the
// document.
func AssertStructure(t testing.TB, data []byte) {
	t.Helper()
	if !HasMagic(data) {
		t.Fatalf("generated data doesn't look like a PDF (missing %%PDF header)")
	}
	if err := Validate(data); err != nil {
		t.Fatalf("PDF structure validation failed: %v", err)
	}
}

// AssertPages checks the page count and that every page has the given size,
// within a tenth of a point.
func AssertPages(t testing.TB, data []byte, pages int, width, height float64) {
	t.Helper()
	info, err := Read(data)
	if err != nil {
		t.Fatalf("failed to read PDF: %v", err)
	}
	if info.Pages != pages {
		t.Fatalf("expected %d pages, got %d", pages, info.Pages)
	}
	for i, d := range info.Dims {
		if math.Abs(d.Width-width) > 0.1 || math.Abs(d.Height-height) > 0.1 {
			t.Errorf("page %d is %.2fx%.2f, expected %.2fx%.2f", i+1, d.Width, d.Height, width, height)
		}
	}
}

// AssertContainsText checks that every expected string occurs in the
// extracted text of the document.
func AssertContainsText(t testing.TB, data []byte, expected ...string) {
	t.Helper()
	text, err := Text(data)
	if err != nil {
		t.Fatalf("failed to extract text: %v", err)
	}
	for _, want := range expected {
		if !strings.Contains(text, want) {
			t.Errorf("PDF text does not contain %q", want)
		}
	}
}
