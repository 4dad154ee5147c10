// Package pdfinfo inspects generated PDFs: structure, page count and page
// dimensions through pdfcpu, and plain text through ledongthuc/pdf.
package pdfinfo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrNotPDF is returned for data without the %PDF header.
var ErrNotPDF = errors.New("missing %PDF header")

// Dim is a page size in points.
type Dim struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Info summarises a PDF document.
type Info struct {
	Pages int   `json:"pages" yaml:"pages"`
	Size  int   `json:"size" yaml:"size"`
	Dims  []Dim `json:"dims" yaml:"dims"`
}

var disableConfigDir sync.Once

func configuration() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	return model.NewDefaultConfiguration()
}

// HasMagic reports whether data starts with the PDF header.
func HasMagic(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF"))
}

// Validate runs pdfcpu's structural validation over data.
func Validate(data []byte) error {
	if !HasMagic(data) {
		return ErrNotPDF
	}
	if err := api.Validate(bytes.NewReader(data), configuration()); err != nil {
		return fmt.Errorf("validate pdf: %w", err)
	}
	return nil
}

// Read validates data and returns its page count and page dimensions.
func Read(data []byte) (*Info, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	pages, err := api.PageCount(bytes.NewReader(data), configuration())
	if err != nil {
		return nil, fmt.Errorf("count pages: %w", err)
	}
	dims, err := api.PageDims(bytes.NewReader(data), configuration())
	if err != nil {
		return nil, fmt.Errorf("read page dimensions: %w", err)
	}

	info := &Info{Pages: pages, Size: len(data)}
	for _, d := range dims {
		info.Dims = append(info.Dims, Dim{Width: d.Width, Height: d.Height})
	}
	return info, nil
}

// Text extracts the plain text of every page.
func Text(data []byte) (string, error) {
	r, err := reader(data)
	if err != nil {
		return "", err
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	out, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	return string(out), nil
}

// PageText extracts the plain text of one page, numbered from 1.
func PageText(data []byte, page int) (string, error) {
	r, err := reader(data)
	if err != nil {
		return "", err
	}
	if page < 1 || page > r.NumPage() {
		return "", fmt.Errorf("page %d out of range 1..%d", page, r.NumPage())
	}
	p := r.Page(page)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d is empty", page)
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("extract text of page %d: %w", page, err)
	}
	return text, nil
}

func reader(data []byte) (*pdf.Reader, error) {
	if !HasMagic(data) {
		return nil, ErrNotPDF
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return r, nil
}
