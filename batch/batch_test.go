package batch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafilms/docgen/deck"
	"github.com/leafilms/docgen/pdfinfo"
	"github.com/leafilms/docgen/quote"
	"github.com/leafilms/docgen/source"
)

func sheet() *source.Sheet {
	return &source.Sheet{
		Sums: [][]string{
			{"Opptak", "", "1000"},
			{"Produksjon totalt eksl. mva", "", "1000"},
		},
		Details: [][]string{{"Kunde", "Fjord AS"}, {"Prosjekt", "Vinter"}},
	}
}

func staticFetcher() source.Fetcher {
	return source.FetcherFunc(func(ctx context.Context, id string) (*source.Sheet, error) {
		return sheet(), nil
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newRunner(t *testing.T, fetcher source.Fetcher) *Runner {
	assets := t.TempDir()
	return &Runner{
		Quotes:  quote.New(),
		Decks:   deck.New(deck.WithAssetsDir(assets), deck.WithUploadsDir(assets), deck.WithYear(2025)),
		Fetcher: fetcher,
		OutDir:  filepath.Join(t.TempDir(), "out"),
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.yaml")
	writeFile(t, path, `
concurrency: 3
jobs:
  - name: fjord
    kind: quote
    source: https://docs.google.com/spreadsheets/d/abc123/edit
    language: EN
    vat: true
    discount: 10
  - name: fest
    kind: deck
    content: decks/fest.yaml
    project_type: event
`)

	m, err := LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Concurrency)
	require.Len(t, m.Jobs, 2)
	assert.Equal(t, Job{
		Name:     "fjord",
		Kind:     KindQuote,
		Source:   "https://docs.google.com/spreadsheets/d/abc123/edit",
		Language: "EN",
		VAT:      true,
		Discount: 10,
	}, m.Jobs[0])
	assert.Equal(t, filepath.Join(dir, "decks", "fest.yaml"), m.Jobs[1].Content)
}

func TestLoadManifestRejectsInvalidJobs(t *testing.T) {
	tests := map[string]string{
		"quote without source": `
jobs:
  - name: a
    kind: quote
`,
		"deck without content": `
jobs:
  - name: a
    kind: deck
`,
		"duplicate names": `
jobs:
  - {name: a, kind: quote, source: x}
  - {name: a, kind: quote, source: y}
`,
		"discount out of range": `
jobs:
  - {name: a, kind: quote, source: x, discount: 120}
`,
		"unknown kind": `
jobs:
  - {name: a, kind: invoice}
`,
		"unknown field": `
jobs:
  - {name: a, kind: quote, source: x, colour: red}
`,
		"no jobs": `concurrency: 2`,
	}
	for name, manifest := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "batch.yaml")
			writeFile(t, path, manifest)

			_, err := LoadManifest(path)
			assert.Error(t, err)
		})
	}
}

func TestRunIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "fest.yaml")
	writeFile(t, content, `
project_type: event
project_name: Sommerfest
generated_content:
  goals: Flere besøkende
`)
	r := newRunner(t, staticFetcher())
	m := Manifest{Jobs: []Job{
		{Name: "fjord", Kind: KindQuote, Source: "https://docs.google.com/spreadsheets/d/abc/edit"},
		{Name: "broken", Kind: KindQuote, Source: "not a sheet url"},
		{Name: "Sommer fest", Kind: KindDeck, Content: content},
		{Name: "named", Kind: KindQuote, Source: "https://docs.google.com/spreadsheets/d/abc/edit", Output: "custom.pdf", Language: "EN"},
	}}

	results, err := r.Run(context.Background(), m)

	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrInvalidSourceURL)
	assert.Contains(t, err.Error(), "broken")
	require.Len(t, results, 4)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, filepath.Join(r.OutDir, "pristilbud_Fjord_AS_Vinter_v0_@leafilms.pdf"), results[0].Path)

	assert.ErrorIs(t, results[1].Err, source.ErrInvalidSourceURL)
	assert.Empty(t, results[1].Path)

	require.NoError(t, results[2].Err)
	assert.Equal(t, filepath.Join(r.OutDir, "Sommer_fest.pdf"), results[2].Path)

	require.NoError(t, results[3].Err)
	assert.Equal(t, filepath.Join(r.OutDir, "custom.pdf"), results[3].Path)

	for _, i := range []int{0, 2, 3} {
		data, err := os.ReadFile(results[i].Path)
		require.NoError(t, err)
		assert.Equal(t, results[i].Size, len(data))
		pdfinfo.AssertStructure(t, data)
	}
	deckPDF, err := os.ReadFile(results[2].Path)
	require.NoError(t, err)
	pdfinfo.AssertPages(t, deckPDF, 2, 1920, 1080)
}

func TestRunRespectsLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	fetcher := source.FetcherFunc(func(ctx context.Context, id string) (*source.Sheet, error) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		return sheet(), nil
	})
	r := newRunner(t, fetcher)
	r.Limit = 5

	var jobs []Job
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		jobs = append(jobs, Job{Name: name, Kind: KindQuote, Source: "https://docs.google.com/spreadsheets/d/" + name, Output: name + ".pdf"})
	}

	results, err := r.Run(context.Background(), Manifest{Concurrency: 2, Jobs: jobs})
	require.NoError(t, err)
	assert.Len(t, results, 6)
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.GreaterOrEqual(t, peak.Load(), int32(1))
}

func TestRunCanceled(t *testing.T) {
	r := newRunner(t, staticFetcher())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := r.Run(ctx, Manifest{Jobs: []Job{
		{Name: "a", Kind: KindQuote, Source: "https://docs.google.com/spreadsheets/d/a"},
	}})

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}

func TestRunWithoutRenderers(t *testing.T) {
	r := &Runner{OutDir: t.TempDir()}

	results, err := r.Run(context.Background(), Manifest{Jobs: []Job{
		{Name: "q", Kind: KindQuote, Source: "https://docs.google.com/spreadsheets/d/a"},
		{Name: "d", Kind: KindDeck, Content: "x.yaml"},
	}})

	assert.Error(t, err)
	for _, res := range results {
		assert.Error(t, res.Err)
	}
}

func TestRunRejectsDuplicateOutputs(t *testing.T) {
	r := newRunner(t, staticFetcher())
	content := filepath.Join(t.TempDir(), "fest.yaml")
	writeFile(t, content, "project_name: Fest\n")

	results, err := r.Run(context.Background(), Manifest{Jobs: []Job{
		{Name: "abc", Kind: KindQuote, Source: "https://docs.google.com/spreadsheets/d/abc"},
		{Name: "xyz", Kind: KindQuote, Source: "https://docs.google.com/spreadsheets/d/xyz"},
		{Name: "a/b", Kind: KindDeck, Content: content},
		{Name: "a:b", Kind: KindDeck, Content: content},
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutputConflict)
	require.Len(t, results, 4)

	for _, pair := range [][2]int{{0, 1}, {2, 3}} {
		a, b := results[pair[0]], results[pair[1]]
		if a.Err != nil {
			a, b = b, a
		}
		require.NoError(t, a.Err)
		assert.ErrorIs(t, b.Err, ErrOutputConflict)
		assert.Contains(t, b.Err.Error(), a.Job.Name)
		assert.Empty(t, b.Path)
		assert.FileExists(t, a.Path)
	}

	entries, err := os.ReadDir(r.OutDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
