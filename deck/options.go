package deck

import (
	"path/filepath"

	"github.com/leafilms/docgen/canvas"
)

const (
	DefaultCaption = "Content Production 25"
	DefaultWebsite = "www.leafilms.no"
)

var (
	paperTextures = []string{
		"texture_papir.jpg",
		"texture_papir.png",
		"texture_papir",
		"paper_texture.jpg",
		"paper_texture.png",
		"papir_tekstur.jpg",
		"papir_tekstur.png",
		"texture.jpg",
		"texture.png",
	}
	gradients = []string{
		"Grainy Gradient Background 10.jpg",
		"Grainy Gradient Background 10.png",
		"gradient_background.jpg",
		"gradient_background.png",
	}
	layeredGradients = []string{
		"Grainy Gradient Background 10.psd",
	}
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithAssetsDir sets the directory holding backgrounds/, where the paper
// texture and gradient candidates are looked up.
func WithAssetsDir(dir string) Option {
	return func(r *Renderer) {
		r.assetsDir = dir
	}
}

// WithBackgrounds replaces the ordered candidate lists for the paper texture
// and the gradient overlay. Relative paths are resolved against the assets
// directory's backgrounds/ folder.
func WithBackgrounds(paper, gradient []string) Option {
	return func(r *Renderer) {
		r.paper = paper
		r.gradient = gradient
	}
}

// WithUploadsDir sets where uploaded images are stored.
func WithUploadsDir(dir string) Option {
	return func(r *Renderer) {
		r.uploadsDir = dir
	}
}

// WithLogoPath sets the brand logo drawn top right.
func WithLogoPath(path string) Option {
	return func(r *Renderer) {
		r.logoPath = path
	}
}

// WithCaption sets the text drawn under the customer logo.
func WithCaption(caption string) Option {
	return func(r *Renderer) {
		if caption != "" {
			r.caption = caption
		}
	}
}

// WithWebsite sets the footer URL.
func WithWebsite(website string) Option {
	return func(r *Renderer) {
		if website != "" {
			r.website = website
		}
	}
}

// WithYear sets the year printed in the fallback subtitle.
func WithYear(year int) Option {
	return func(r *Renderer) {
		r.year = year
	}
}

// WithDocumentOptions passes options to every canvas document created.
func WithDocumentOptions(opts ...canvas.Option) Option {
	return func(r *Renderer) {
		r.docOptions = append(r.docOptions, opts...)
	}
}

func (r *Renderer) backgroundPaths(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if filepath.IsAbs(name) {
			out = append(out, name)
			continue
		}
		out = append(out, filepath.Join(r.assetsDir, "backgrounds", name))
	}
	return out
}
