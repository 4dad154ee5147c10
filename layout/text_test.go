package layout

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafilms/docgen/canvas"
)

// monoMeasurer treats every rune as half an em wide.
type monoMeasurer struct{}

func (monoMeasurer) StringWidth(text string, font canvas.Font) float64 {
	return float64(utf8.RuneCountInString(text)) * font.Size * 0.5
}

func TestWrap(t *testing.T) {
	font := canvas.Helvetica(10) // 5pt per rune

	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{name: "empty", text: "", maxWidth: 100, want: nil},
		{name: "whitespace only", text: "  \t ", maxWidth: 100, want: nil},
		{name: "fits on one line", text: "one two", maxWidth: 100, want: []string{"one two"}},
		{name: "exact fit", text: "aaaa bbbb", maxWidth: 45, want: []string{"aaaa bbbb"}},
		{name: "breaks greedily", text: "aaaa bbbb cccc", maxWidth: 45, want: []string{"aaaa bbbb", "cccc"}},
		{name: "collapses runs of whitespace", text: "  a   b  ", maxWidth: 100, want: []string{"a b"}},
		{name: "long word alone", text: "a verylongword b", maxWidth: 30, want: []string{"a", "verylongword", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(monoMeasurer{}, tt.text, font, tt.maxWidth))
		})
	}
}

func TestWrapNeverExceedsWidthExceptSingleWords(t *testing.T) {
	m := monoMeasurer{}
	font := canvas.Helvetica(9)
	text := "Leafilms will be responsible for the overall planning, production, and delivery " +
		"of the project as outlined in this offer. Supercalifragilisticexpialidocious words happen."

	for _, maxWidth := range []float64{20, 50, 80, 120, 200, 500} {
		for _, line := range Wrap(m, text, font, maxWidth) {
			if m.StringWidth(line, font) > maxWidth {
				assert.NotContains(t, line, " ", "only a single word may exceed %v: %q", maxWidth, line)
			}
		}
	}
}

func TestWrapWithCoreFontMetrics(t *testing.T) {
	doc := canvas.New()
	font := canvas.Helvetica(9)

	lines := Wrap(doc, strings.Repeat("word ", 200), font, 500)
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, doc.StringWidth(line, font), 500.0)
	}
}

func TestFlowLayout(t *testing.T) {
	flow := Flow{Font: canvas.Helvetica(10), MaxWidth: 45, LineHeight: 9, ParagraphGap: 5}

	lines, y := flow.Layout(monoMeasurer{}, "aaaa bbbb cccc\n\nlast", 100)

	require.Len(t, lines, 3)
	assert.Equal(t, Line{Text: "aaaa bbbb", Y: 100}, lines[0])
	assert.Equal(t, Line{Text: "cccc", Y: 91}, lines[1])
	// first paragraph: 2 lines + gap, blank paragraph: gap only
	assert.Equal(t, Line{Text: "last", Y: 100 - 18 - 5 - 5}, lines[2])
	assert.Equal(t, 100-18-5-5-9-5.0, y)
}

func TestFlowBlankParagraphsAdvanceByGap(t *testing.T) {
	flow := Flow{Font: canvas.Helvetica(10), MaxWidth: 100, LineHeight: 9, ParagraphGap: 5}

	lines, y := flow.Layout(monoMeasurer{}, "\n   \n", 50)

	assert.Empty(t, lines)
	assert.Equal(t, 50-3*5.0, y)
}

func TestFlowDrawRecordsLines(t *testing.T) {
	doc := canvas.New()
	doc.AddPage(canvas.A4)
	rec := canvas.NewRecorder(doc)
	flow := Flow{Font: canvas.Helvetica(9), MaxWidth: 500, LineHeight: 9, ParagraphGap: 5}

	y := flow.Draw(rec, 50, 700, "first\r\nsecond")

	assert.Equal(t, []string{"first", "second"}, rec.Texts())
	assert.Equal(t, 700-2*9-2*5.0, y)
	for _, op := range rec.Filter(canvas.OpText) {
		assert.Equal(t, 50.0, op.X)
		assert.Equal(t, canvas.Helvetica(9), op.Font)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 80))
	assert.Equal(t, strings.Repeat("x", 80), Truncate(strings.Repeat("x", 80), 80))
	assert.Equal(t, strings.Repeat("x", 80)+"...", Truncate(strings.Repeat("x", 81), 80))
	assert.Equal(t, "æøå...", Truncate("æøåæøå", 3))
}
