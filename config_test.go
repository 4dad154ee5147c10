package docgen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafilms/docgen/batch"
	"github.com/leafilms/docgen/model"
	"github.com/leafilms/docgen/pdfinfo"
	"github.com/leafilms/docgen/quote"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Equal(t, "uploads", cfg.UploadsDir)
	assert.Equal(t, "LEA FILMS", cfg.BrandName)
	assert.Equal(t, "leafilms", cfg.BrandHandle)
	assert.Equal(t, "www.leafilms.no", cfg.Website)
	assert.Equal(t, "Content Production 25", cfg.ProjectText)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Zero(t, cfg.Year)
}

func TestLoadConfigEnvAndFile(t *testing.T) {
	t.Setenv("DOCGEN_BRAND_NAME", "ACME FILM")
	t.Setenv("DOCGEN_WEBSITE", "www.acme.no")
	t.Setenv("DOCGEN_YEAR", "2026")

	path := filepath.Join(t.TempDir(), "docgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("website: www.override.no\nuploads_dir: /srv/uploads\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "ACME FILM", cfg.BrandName)
	assert.Equal(t, "www.override.no", cfg.Website)
	assert.Equal(t, "/srv/uploads", cfg.UploadsDir)
	assert.Equal(t, 2026, cfg.Year)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("DOCGEN_CONCURRENCY", "many")
	_, err = LoadConfig("")
	assert.Error(t, err)
}

func TestFlagsOverrideConfig(t *testing.T) {
	t.Setenv("DOCGEN_BRAND_HANDLE", "acme")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindAllFlags(fs)
	t.Cleanup(func() {
		Flags.Overrides = Config{}
		Flags.LevelCount = 0
	})

	require.NoError(t, fs.Parse([]string{"--brand-name", "Studio", "--year", "2030", "-v"}))
	cfg, err := flags.Config(fs)
	require.NoError(t, err)

	assert.Equal(t, "Studio", cfg.BrandName)
	assert.Equal(t, 2030, cfg.Year)
	assert.Equal(t, "acme", cfg.BrandHandle, "unset flags keep the environment value")
	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Equal(t, 1, flags.LevelCount)
}

func TestConfigRenderers(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		AssetsDir:   filepath.Join(dir, "assets"),
		UploadsDir:  filepath.Join(dir, "uploads"),
		DataDir:     filepath.Join(dir, "data"),
		BrandName:   "ACME FILM",
		BrandHandle: "acme",
		Website:     "www.acme.no",
		ProjectText: "Kampanje",
		Year:        2025,
	}

	data, err := cfg.Decks().Render(model.ProjectContent{}, "event", "Fest", model.EN)
	require.NoError(t, err)
	pdfinfo.AssertPages(t, data, 2, 1920, 1080)
	pdfinfo.AssertContainsText(t, data, "EVENT PRODUCTION 2025", "www.acme.no")

	res, err := cfg.Quotes().Render(model.QuoteData{LineItems: []model.LineItem{{Category: "Opptak", Amount: 100}}}, quote.Request{Language: model.EN})
	require.NoError(t, err)
	assert.Equal(t, "price_offer_N_A_N_A_v0_@acme.pdf", res.Filename)
	pdfinfo.AssertContainsText(t, res.Data, "ACME FILM")
}

func TestConfigRunner(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "sheet1.yaml"), []byte(`
sums:
  - ["Opptak", "", "2500"]
details:
  - ["Kunde", "Fjord"]
`), 0o644))
	cfg := Config{DataDir: filepath.Join(dir, "data"), Concurrency: 2}

	r := cfg.Runner(filepath.Join(dir, "out"))
	assert.Equal(t, 2, r.Limit)

	results, err := r.Run(context.Background(), batch.Manifest{Jobs: []batch.Job{
		{Name: "fjord", Kind: batch.KindQuote, Source: "https://docs.google.com/spreadsheets/d/sheet1/edit"},
	}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.FileExists(t, results[0].Path)
}
