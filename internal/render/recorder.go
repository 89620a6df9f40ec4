// internal/render/recorder.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpQuad OpKind = iota
	OpRect
	OpLine
	OpText
)

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind
	Image *ebiten.Image
	Quad  Quad
	Text  string
	Color color.Color
	// Width is the stroke width of OpLine.
	Width float64
}

// Recorder is a Canvas that remembers what was drawn instead of drawing it.
// It backs headless runs and tests.
type Recorder struct {
	W, H int
	Ops  []Op
}

var _ Canvas = (*Recorder)(nil)

// NewRecorder creates a recorder with the given screen size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) DrawQuad(img *ebiten.Image, q Quad) {
	r.Ops = append(r.Ops, Op{Kind: OpQuad, Image: img, Quad: q})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Quad: Quad{X: x, Y: y, W: w, H: h}, Color: clr})
}

func (r *Recorder) Line(x0, y0, x1, y1, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Quad: Quad{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, Color: clr, Width: width})
}

func (r *Recorder) Text(s string, x, y float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Quad: Quad{X: x, Y: y}, Text: s, Color: clr})
}

func (r *Recorder) Size() (int, int) {
	return r.W, r.H
}

// Quads returns the recorded texture draws using img, or all of them when
// img is nil.
func (r *Recorder) Quads(img *ebiten.Image) []Quad {
	var out []Quad
	for _, op := range r.Ops {
		if op.Kind == OpQuad && (img == nil || op.Image == img) {
			out = append(out, op.Quad)
		}
	}
	return out
}

// Texts returns every recorded string in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Replay issues every recorded call on dst in the original order.
func (r *Recorder) Replay(dst Canvas) {
	for _, op := range r.Ops {
		q := op.Quad
		switch op.Kind {
		case OpQuad:
			dst.DrawQuad(op.Image, q)
		case OpRect:
			dst.FillRect(q.X, q.Y, q.W, q.H, op.Color)
		case OpLine:
			dst.Line(q.X, q.Y, q.X+q.W, q.Y+q.H, op.Width, op.Color)
		case OpText:
			dst.Text(op.Text, q.X, q.Y, op.Color)
		}
	}
}
