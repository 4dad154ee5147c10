// Package batch renders many quotes and decks from one manifest.
package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Kind selects the renderer of a job.
type Kind string

const (
	KindQuote Kind = "quote"
	KindDeck  Kind = "deck"
)

// Job is one document to render.
type Job struct {
	Name string `yaml:"name" validate:"required"`
	Kind Kind   `yaml:"kind" validate:"required,oneof=quote deck"`
	// Output overrides the file name written to the output directory.
	Output   string `yaml:"output,omitempty"`
	Language string `yaml:"language,omitempty" validate:"omitempty,oneof=NO EN no en"`

	Source   string  `yaml:"source,omitempty" validate:"required_if=Kind quote"`
	Travel   bool    `yaml:"travel,omitempty"`
	VAT      bool    `yaml:"vat,omitempty"`
	Discount float64 `yaml:"discount,omitempty" validate:"gte=0,lte=100"`

	Content     string `yaml:"content,omitempty" validate:"required_if=Kind deck"`
	ProjectType string `yaml:"project_type,omitempty"`
	ProjectName string `yaml:"project_name,omitempty"`
}

// Manifest lists the jobs of a batch.
type Manifest struct {
	// Concurrency caps the number of renders running at once. Zero means the
	// runner's limit.
	Concurrency int   `yaml:"concurrency,omitempty" validate:"gte=0"`
	Jobs        []Job `yaml:"jobs" validate:"required,unique=Name,dive"`
}

var validate = validator.New()

// LoadManifest reads a YAML manifest. Relative content paths are resolved
// against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var m Manifest
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	base := filepath.Dir(path)
	for i := range m.Jobs {
		if c := m.Jobs[i].Content; c != "" && !filepath.IsAbs(c) {
			m.Jobs[i].Content = filepath.Join(base, c)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return &m, nil
}

// Validate checks every job.
func (m Manifest) Validate() error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, ", "))
}
