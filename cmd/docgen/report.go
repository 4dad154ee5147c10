package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/leafilms/docgen/batch"
	"github.com/leafilms/docgen/pdfinfo"
)

type styles struct {
	success lipgloss.Style
	failed  lipgloss.Style
	info    lipgloss.Style
	label   lipgloss.Style
}

func newStyles() styles {
	renderer := lipgloss.NewRenderer(os.Stderr)
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return styles{
		success: renderer.NewStyle().Foreground(lipgloss.Color("10")),
		failed:  renderer.NewStyle().Foreground(lipgloss.Color("9")),
		info:    renderer.NewStyle().Foreground(lipgloss.Color("8")),
		label:   renderer.NewStyle().Bold(true).Width(10),
	}
}

// printResults writes one line per job to stderr.
func printResults(results []batch.Result) {
	s := newStyles()
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "%s %s %s\n", s.failed.Render("✗"), res.Job.Name, s.failed.Render(res.Err.Error()))
			continue
		}
		fmt.Fprintf(os.Stderr, "%s %s %s\n", s.success.Render("✓"), res.Path,
			s.info.Render(fmt.Sprintf("(%s, %s, %s)", res.Job.Kind, humanSize(res.Size), res.Duration.Round(time.Millisecond))))
	}
}

func printInfo(path string, info *pdfinfo.Info) {
	s := newStyles()
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n", s.label.Render("file"), path)
	fmt.Fprintf(&b, "%s%d\n", s.label.Render("pages"), info.Pages)
	fmt.Fprintf(&b, "%s%s\n", s.label.Render("size"), humanSize(info.Size))
	for i, d := range info.Dims {
		fmt.Fprintf(&b, "%s%.2f x %.2f pt\n", s.label.Render(fmt.Sprintf("page %d", i+1)), d.Width, d.Height)
	}
	fmt.Print(b.String())
}

func countFailed(results []batch.Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
