// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"

	"initerse/internal/config"
	"initerse/internal/input"
	"initerse/internal/render"
	"initerse/internal/tower"
	"initerse/internal/utils"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PanelAction is what the user asked the inspection panel to do this frame.
type PanelAction int

const (
	PanelIdle PanelAction = iota
	PanelClose
	PanelCollect
)

// InfoPanel displays the inspection panel of the focused machine.
type InfoPanel struct {
	fade  *gween.Tween
	alpha float32
}

// NewInfoPanel creates a hidden panel.
func NewInfoPanel() *InfoPanel {
	return &InfoPanel{alpha: 1}
}

// Open restarts the fade-in; called whenever focus lands on a new cell.
func (p *InfoPanel) Open() {
	p.fade = gween.New(0, 1, config.PanelFadeSeconds, ease.OutQuad)
	p.alpha = 0
}

// Update advances the fade animation.
func (p *InfoPanel) Update(dt float64) {
	if p.fade == nil {
		return
	}
	alpha, done := p.fade.Update(float32(dt))
	p.alpha = alpha
	if done {
		p.fade = nil
		p.alpha = 1
	}
}

// Alpha returns the current opacity of the panel.
func (p *InfoPanel) Alpha() float32 {
	return p.alpha
}

// PanelRect returns the area the panel covers on a screen of the given size.
func PanelRect(screenW, screenH int) utils.Rect {
	x, y := config.PanelMarginX, config.PanelMarginY
	return utils.Rect{X: x, Y: y, W: float64(screenW) - x*2, H: float64(screenH) - y*2}
}

func closeRect(r utils.Rect) utils.Rect {
	return utils.Rect{X: r.X + r.W - config.PanelCloseSize, Y: r.Y, W: config.PanelCloseSize, H: config.PanelCloseSize}
}

func collectLabel(m *tower.Machine) string {
	return fmt.Sprintf("Collect (%.0f %s)", m.Buffer, m.Unit())
}

func collectRect(r utils.Rect, label string) utils.Rect {
	return utils.Rect{X: r.X + 5, Y: r.Y + 80 - 28, W: float64(len(label)) * config.CollectCharWidth, H: 40}
}

func fadeColor(c color.RGBA, alpha float32) color.RGBA {
	c.A = uint8(float32(c.A) * alpha)
	return c
}

// Draw renders the panel for m and returns the rectangle it occupies so the
// caller can keep clicks inside it from reaching the world.
func (p *InfoPanel) Draw(c render.Canvas, m *tower.Machine, f input.Frame) (utils.Rect, PanelAction) {
	if m.IsEmpty() {
		panic("ui: inspection panel on the Empty machine")
	}
	w, h := c.Size()
	r := PanelRect(w, h)

	c.FillRect(r.X, r.Y, r.W, r.H, fadeColor(config.PanelColor, p.alpha))
	c.Text(m.Name(), r.X+10, r.Y+32, config.TextLightColor)

	// крестик закрытия
	c.Line(r.X+r.W-20, r.Y+10, r.X+r.W-10, r.Y+20, 2, config.TextLightColor)
	c.Line(r.X+r.W-20, r.Y+20, r.X+r.W-10, r.Y+10, 2, config.TextLightColor)

	label := collectLabel(m)
	collect := NewButton(collectRect(r, label), "", config.CollectColor)
	collect.Draw(c)
	c.Text(label, r.X+10, r.Y+80, config.TextLightColor)
	c.Text(fmt.Sprintf("Rate: %g %s/s", m.Rate, m.Unit()), r.X+10, r.Y+120, config.TextLightColor)

	switch {
	case f.LeftClickIn(closeRect(r)):
		return r, PanelClose
	case collect.IsClicked(f):
		return r, PanelCollect
	}
	return r, PanelIdle
}
