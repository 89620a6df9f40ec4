// internal/render/canvas.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Quad describes where a texture lands on screen.
type Quad struct {
	X, Y, W, H float64
	// Rotation in radians around the quad centre.
	Rotation float64
	// Alpha multiplies the texture opacity; zero is treated as opaque.
	Alpha float32
}

// Canvas is the draw surface the game renders to, in screen pixels.
type Canvas interface {
	DrawQuad(img *ebiten.Image, q Quad)
	FillRect(x, y, w, h float64, clr color.Color)
	Line(x0, y0, x1, y1, width float64, clr color.Color)
	Text(s string, x, y float64, clr color.Color)
	Size() (int, int)
}

// Screen draws onto an ebiten image.
type Screen struct {
	dst  *ebiten.Image
	face font.Face
}

var _ Canvas = (*Screen)(nil)

// NewScreen wraps dst with the default bitmap font.
func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{dst: dst, face: basicfont.Face7x13}
}

func (s *Screen) DrawQuad(img *ebiten.Image, q Quad) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(q.W/float64(b.Dx()), q.H/float64(b.Dy()))
	if q.Rotation != 0 {
		op.GeoM.Translate(-q.W/2, -q.H/2)
		op.GeoM.Rotate(q.Rotation)
		op.GeoM.Translate(q.W/2, q.H/2)
	}
	op.GeoM.Translate(q.X, q.Y)
	if q.Alpha > 0 && q.Alpha < 1 {
		op.ColorScale.ScaleAlpha(q.Alpha)
	}
	op.Filter = ebiten.FilterNearest
	s.dst.DrawImage(img, op)
}

func (s *Screen) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s *Screen) Line(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// Text draws s with its baseline at y.
func (s *Screen) Text(str string, x, y float64, clr color.Color) {
	text.Draw(s.dst, str, s.face, int(x), int(y), clr)
}

func (s *Screen) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}
