package canvas

import "sync"

// OpKind names a recorded drawing operation.
type OpKind string

const (
	OpPage        OpKind = "page"
	OpText        OpKind = "text"
	OpRightText   OpKind = "text-right"
	OpLine        OpKind = "line"
	OpRect        OpKind = "rect"
	OpImage       OpKind = "image"
	OpClip        OpKind = "clip"
	OpClipEnd     OpKind = "clip-end"
	OpFillColor   OpKind = "fill-color"
	OpStrokeColor OpKind = "stroke-color"
	OpAlpha       OpKind = "alpha"
)

// Op is one drawing call captured by a Recorder.
type Op struct {
	Kind   OpKind
	Page   int
	X, Y   float64
	X2, Y2 float64
	Width  float64
	Height float64
	Text   string
	Font   Font
	Color  Color
	Style  RectStyle
	Image  string
	Alpha  float64
}

// Recorder forwards every call to an inner Canvas and keeps a log of the
// drawing operations, which makes layouts inspectable in tests.
type Recorder struct {
	Canvas

	mu  sync.Mutex
	ops []Op
}

// NewRecorder wraps inner.
func NewRecorder(inner Canvas) *Recorder {
	return &Recorder{Canvas: inner}
}

// Ops returns a copy of the recorded operations.
func (r *Recorder) Ops() []Op {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Op(nil), r.ops...)
}

// Texts returns the recorded strings in drawing order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops() {
		if op.Kind == OpText || op.Kind == OpRightText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Filter returns the recorded operations of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops() {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops the recorded operations.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.ops = nil
	r.mu.Unlock()
}

func (r *Recorder) record(op Op) {
	r.mu.Lock()
	op.Page = r.Canvas.PageCount()
	r.ops = append(r.ops, op)
	r.mu.Unlock()
}

func (r *Recorder) AddPage(size Size) {
	r.Canvas.AddPage(size)
	r.record(Op{Kind: OpPage, Width: size.Width, Height: size.Height})
}

func (r *Recorder) SetFillColor(c Color) {
	r.Canvas.SetFillColor(c)
	r.record(Op{Kind: OpFillColor, Color: c})
}

func (r *Recorder) SetStrokeColor(c Color) {
	r.Canvas.SetStrokeColor(c)
	r.record(Op{Kind: OpStrokeColor, Color: c})
}

func (r *Recorder) SetAlpha(alpha float64) {
	r.Canvas.SetAlpha(alpha)
	r.record(Op{Kind: OpAlpha, Alpha: alpha})
}

func (r *Recorder) DrawString(x, y float64, text string) {
	r.Canvas.DrawString(x, y, text)
	r.record(Op{Kind: OpText, X: x, Y: y, Text: text, Font: r.Canvas.Font()})
}

func (r *Recorder) DrawRightString(x, y float64, text string) {
	r.Canvas.DrawRightString(x, y, text)
	r.record(Op{Kind: OpRightText, X: x, Y: y, Text: text, Font: r.Canvas.Font()})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.Canvas.Line(x1, y1, x2, y2)
	r.record(Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2})
}

func (r *Recorder) Rect(x, y, width, height float64, style RectStyle) {
	r.Canvas.Rect(x, y, width, height, style)
	r.record(Op{Kind: OpRect, X: x, Y: y, Width: width, Height: height, Style: style})
}

func (r *Recorder) DrawImage(img Image, x, y, width, height float64) error {
	if err := r.Canvas.DrawImage(img, x, y, width, height); err != nil {
		return err
	}
	r.record(Op{Kind: OpImage, X: x, Y: y, Width: width, Height: height, Image: img.Name})
	return nil
}

func (r *Recorder) ClipRect(x, y, width, height float64) {
	r.Canvas.ClipRect(x, y, width, height)
	r.record(Op{Kind: OpClip, X: x, Y: y, Width: width, Height: height})
}

func (r *Recorder) ClipEnd() {
	r.Canvas.ClipEnd()
	r.record(Op{Kind: OpClipEnd})
}
