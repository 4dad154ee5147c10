package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ProjectType is the kind of production a deck describes.
type ProjectType string

const (
	Event       ProjectType = "event"
	Advertising ProjectType = "advertising"
	Product     ProjectType = "product"
	Branding    ProjectType = "branding"
)

// ParseProjectType accepts the four known types in any case.
func ParseProjectType(s string) (ProjectType, error) {
	switch t := ProjectType(strings.ToLower(strings.TrimSpace(s))); t {
	case Event, Advertising, Product, Branding:
		return t, nil
	default:
		return "", fmt.Errorf("unknown project type %q", s)
	}
}

// PlaceholderType tags the slot an uploaded image is meant for.
type PlaceholderType string

const (
	PlaceholderLogo    PlaceholderType = "logo"
	PlaceholderContent PlaceholderType = "content"
	PlaceholderHeader  PlaceholderType = "header"
	PlaceholderFooter  PlaceholderType = "footer"
)

// Image references an uploaded file by its stored name.
type Image struct {
	Filename        string          `json:"filename" yaml:"filename" validate:"required"`
	PlaceholderType PlaceholderType `json:"placeholder_type" yaml:"placeholder_type" validate:"required"`
}

// GeneratedContent holds the text fields of a project description.
type GeneratedContent struct {
	Goals          string `json:"goals" yaml:"goals"`
	Concept        string `json:"concept" yaml:"concept"`
	TargetAudience string `json:"target_audience" yaml:"target_audience"`
	KeyFeatures    string `json:"key_features" yaml:"key_features"`
	Timeline       string `json:"timeline" yaml:"timeline"`
	SuccessMetrics string `json:"success_metrics" yaml:"success_metrics"`
}

// ProjectContent is the input of the project description renderer.
type ProjectContent struct {
	ProjectType ProjectType      `json:"project_type" yaml:"project_type" validate:"omitempty,oneof=event advertising product branding"`
	ProjectName string           `json:"project_name" yaml:"project_name"`
	Content     GeneratedContent `json:"generated_content" yaml:"generated_content"`
	Images      []Image          `json:"images" yaml:"images" validate:"dive"`
	Language    Language         `json:"language" yaml:"language" validate:"omitempty,oneof=NO EN"`
}

// ImageSelection is the outcome of picking images for the deck.
type ImageSelection struct {
	Logo *Image
	// Left and Right are set together for the side-by-side layout.
	Left, Right *Image
	// Single is set when the only uploaded image is a non-logo image.
	Single *Image
}

// Pair reports whether the side-by-side layout applies.
func (s ImageSelection) Pair() bool {
	return s.Left != nil && s.Right != nil
}

// SelectImages picks the brand mark and main images. The first logo-tagged
// image is the logo. The main pair is the first two content-tagged images,
// falling back to the first two non-logo images in source order. When a
// list of two or more holds a single non-logo image it fills both slots.
// A list of exactly one non-logo image uses the single layout.
func SelectImages(images []Image) ImageSelection {
	var sel ImageSelection
	if logo, ok := lo.Find(images, isLogo); ok {
		sel.Logo = &logo
	}

	nonLogo := lo.Reject(images, func(img Image, _ int) bool { return isLogo(img) })
	switch {
	case len(images) >= 2:
		content := lo.Filter(images, func(img Image, _ int) bool {
			return img.PlaceholderType == PlaceholderContent
		})
		switch {
		case len(content) >= 2:
			sel.Left, sel.Right = &content[0], &content[1]
		case len(nonLogo) >= 2:
			sel.Left, sel.Right = &nonLogo[0], &nonLogo[1]
		case len(nonLogo) == 1:
			sel.Left, sel.Right = &nonLogo[0], &nonLogo[0]
		}
	case len(images) == 1 && len(nonLogo) == 1:
		sel.Single = &nonLogo[0]
	}
	return sel
}

func isLogo(img Image) bool {
	return img.PlaceholderType == PlaceholderLogo
}
