// Package docgen wires configuration, logging and the renderers together.
package docgen

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/leafilms/docgen/batch"
	"github.com/leafilms/docgen/canvas"
	"github.com/leafilms/docgen/deck"
	"github.com/leafilms/docgen/quote"
	"github.com/leafilms/docgen/source"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "DOCGEN"

// Config holds the asset locations and brand settings shared by all renders.
type Config struct {
	AssetsDir   string `envconfig:"ASSETS_DIR" default:"assets" yaml:"assets_dir"`
	UploadsDir  string `envconfig:"UPLOADS_DIR" default:"uploads" yaml:"uploads_dir"`
	DataDir     string `envconfig:"DATA_DIR" default:"data" yaml:"data_dir"`
	LogoPath    string `envconfig:"LOGO_PATH" default:"logo.png" yaml:"logo_path"`
	BrandName   string `envconfig:"BRAND_NAME" default:"LEA FILMS" yaml:"brand_name"`
	BrandHandle string `envconfig:"BRAND_HANDLE" default:"leafilms" yaml:"brand_handle"`
	Website     string `envconfig:"WEBSITE" default:"www.leafilms.no" yaml:"website"`
	ProjectText string `envconfig:"PROJECT_TEXT" default:"Content Production 25" yaml:"project_text"`
	// Year printed in the deck's fallback subtitle; zero means the current year.
	Year        int `envconfig:"YEAR" yaml:"year"`
	Concurrency int `envconfig:"CONCURRENCY" default:"4" yaml:"concurrency"`
}

// LoadConfig reads DOCGEN_* environment variables and overlays the YAML file
// at path when one is given.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, err
	}
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c Config) documentOptions() []canvas.Option {
	return []canvas.Option{canvas.WithAuthor(c.BrandName), canvas.WithCreator("docgen " + Version)}
}

// Quotes returns a quote renderer for this configuration.
func (c Config) Quotes() *quote.Renderer {
	return quote.New(
		quote.WithLogoPath(c.LogoPath),
		quote.WithBrand(c.BrandName, c.BrandHandle),
		quote.WithDocumentOptions(c.documentOptions()...),
	)
}

// Decks returns a project description renderer for this configuration.
func (c Config) Decks() *deck.Renderer {
	opts := []deck.Option{
		deck.WithAssetsDir(c.AssetsDir),
		deck.WithUploadsDir(c.UploadsDir),
		deck.WithLogoPath(c.LogoPath),
		deck.WithCaption(c.ProjectText),
		deck.WithWebsite(c.Website),
		deck.WithDocumentOptions(c.documentOptions()...),
	}
	if c.Year > 0 {
		opts = append(opts, deck.WithYear(c.Year))
	}
	return deck.New(opts...)
}

// Fetcher returns the source of quote sheets.
func (c Config) Fetcher() source.Fetcher {
	return source.FileFetcher{Dir: c.DataDir}
}

// Runner returns a batch runner writing into outDir.
func (c Config) Runner(outDir string) *batch.Runner {
	return &batch.Runner{
		Quotes:  c.Quotes(),
		Decks:   c.Decks(),
		Fetcher: c.Fetcher(),
		OutDir:  outDir,
		Limit:   c.Concurrency,
	}
}
