package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafilms/docgen/pdfinfo"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestQuoteCommand(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(data, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(data, "sheet9.yaml"), []byte(`
sums:
  - ["Opptak", "", "1200,50"]
details:
  - ["Kunde", "Fjord"]
  - ["Prosjekt", "Vinter"]
  - ["Versjon", "v1"]
`), 0o644))
	out := filepath.Join(dir, "out")

	err := run(t, "quote", "--source", "https://docs.google.com/spreadsheets/d/sheet9/edit",
		"--data-dir", data, "--lang", "EN", "--discount", "5", "-o", out)
	require.NoError(t, err)

	pdf, err := os.ReadFile(filepath.Join(out, "price_offer_Fjord_Vinter_v1_@leafilms.pdf"))
	require.NoError(t, err)
	pdfinfo.AssertContainsText(t, pdf, "1,200.50")
}

func TestQuoteCommandRejectsInvalidURL(t *testing.T) {
	err := run(t, "quote", "--source", "https://example.com", "-o", t.TempDir())
	assert.Error(t, err)
}

func TestDeckCommand(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "fest.yaml")
	require.NoError(t, os.WriteFile(content, []byte("project_type: event\nproject_name: Fest\n"), 0o644))
	out := filepath.Join(dir, "decks", "fest.pdf")

	err := run(t, "deck", "--content", content, "--assets-dir", dir, "--uploads-dir", dir, "--year", "2025", "-o", out)
	require.NoError(t, err)

	pdf, err := os.ReadFile(out)
	require.NoError(t, err)
	pdfinfo.AssertPages(t, pdf, 2, 1920, 1080)
	pdfinfo.AssertContainsText(t, pdf, "EVENT PRODUKSJON 2025")
}

func TestBatchCommandReportsFailures(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
jobs:
  - {name: broken, kind: quote, source: not-a-url}
`), 0o644))

	err := run(t, "batch", manifest, "-o", filepath.Join(dir, "out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 jobs failed")
}

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	content := filepath.Join(dir, "fest.yaml")
	require.NoError(t, os.WriteFile(content, []byte("project_name: Fest\n"), 0o644))
	out := filepath.Join(dir, "fest.pdf")
	require.NoError(t, run(t, "deck", "--content", content, "--assets-dir", dir, "--uploads-dir", dir, "-o", out))

	assert.NoError(t, run(t, "inspect", out))
	assert.Error(t, run(t, "inspect", content))
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()

	path, err := writeOutput(dir, "a.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.pdf"), path)

	path, err = writeOutput(filepath.Join(dir, "nested", "b.PDF"), "ignored.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested", "b.PDF"), path)
	assert.FileExists(t, path)
}
