// Package layout holds the placement arithmetic shared by the renderers:
// word wrapping, paragraph flow, image fitting and column distribution.
package layout

import (
	"strings"

	"github.com/leafilms/docgen/canvas"
)

// Measurer reports the rendered width of a string in points.
type Measurer interface {
	StringWidth(text string, font canvas.Font) float64
}

// Wrap greedily breaks text on whitespace into lines no wider than maxWidth.
// A word that alone exceeds maxWidth is placed on its own line unbroken.
// Empty or whitespace-only text yields no lines.
func Wrap(m Measurer, text string, font canvas.Font, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.StringWidth(candidate, font) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// Paragraphs splits text on line breaks. "\r\n" and "\r" count as breaks.
func Paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Flow lays out multi-paragraph text top-down from a caller-owned cursor.
// Every wrapped line moves the cursor down by LineHeight; every paragraph,
// including an empty one, adds ParagraphGap after its lines.
type Flow struct {
	Font         canvas.Font
	MaxWidth     float64
	LineHeight   float64
	ParagraphGap float64
}

// Line is one positioned line of flowed text.
type Line struct {
	Text string
	Y    float64
}

// Layout computes the baseline of every line starting at y and returns the
// lines with the cursor after the last paragraph gap.
func (f Flow) Layout(m Measurer, text string, y float64) ([]Line, float64) {
	var out []Line
	for _, paragraph := range Paragraphs(text) {
		for _, line := range Wrap(m, paragraph, f.Font, f.MaxWidth) {
			out = append(out, Line{Text: line, Y: y})
			y -= f.LineHeight
		}
		y -= f.ParagraphGap
	}
	return out, y
}

// Draw renders text at x from cursor y and returns the advanced cursor.
func (f Flow) Draw(c canvas.Canvas, x, y float64, text string) float64 {
	c.SetFont(f.Font)
	lines, next := f.Layout(c, text, y)
	for _, line := range lines {
		c.DrawString(x, line.Y, line.Text)
	}
	return next
}

// Truncate shortens s to at most limit characters followed by "..." when it
// is longer than limit. Shorter strings are returned unchanged.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if limit < 0 || len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// CenterX returns the x at which text of font is centered within width.
func CenterX(m Measurer, text string, font canvas.Font, width float64) float64 {
	return (width - m.StringWidth(text, font)) / 2
}
