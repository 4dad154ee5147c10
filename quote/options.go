package quote

import (
	"github.com/leafilms/docgen/canvas"
	"github.com/leafilms/docgen/imageio"
)

const (
	DefaultBrandName = "LEA FILMS"
	DefaultHandle    = "leafilms"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogoPath sets the brand logo drawn top right. The file is read on
// every render; a missing or unreadable logo is skipped.
func WithLogoPath(path string) Option {
	return func(r *Renderer) {
		r.logoPath = path
	}
}

// WithLogo uses an already decoded brand logo.
func WithLogo(img *imageio.Image) Option {
	return func(r *Renderer) {
		r.logo = img
	}
}

// WithBrand sets the company name printed above the company info and the
// handle appended to file names.
func WithBrand(name, handle string) Option {
	return func(r *Renderer) {
		if name != "" {
			r.brandName = name
		}
		if handle != "" {
			r.handle = handle
		}
	}
}

// WithDocumentOptions passes options to every canvas document created.
func WithDocumentOptions(opts ...canvas.Option) Option {
	return func(r *Renderer) {
		r.docOptions = append(r.docOptions, opts...)
	}
}
