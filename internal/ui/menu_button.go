// internal/ui/menu_button.go
package ui

import (
	"image/color"

	"initerse/internal/config"
	"initerse/internal/input"
	"initerse/internal/render"
	"initerse/internal/utils"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	Rect    utils.Rect
	Text    string
	bgColor color.Color
	fgColor color.Color
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect utils.Rect, text string) *MenuButton {
	return &MenuButton{
		Rect:    rect,
		Text:    text,
		bgColor: config.HotbarColor,
		fgColor: config.TextLightColor,
	}
}

// CenteredMenuButton places a button of size w×h in the middle of the screen,
// shifted down by dy.
func CenteredMenuButton(screenW, screenH int, w, h, dy float64, text string) *MenuButton {
	return NewMenuButton(utils.Rect{
		X: (float64(screenW) - w) / 2,
		Y: (float64(screenH)-h)/2 + dy,
		W: w,
		H: h,
	}, text)
}

// Draw отрисовывает кнопку.
func (b *MenuButton) Draw(c render.Canvas) {
	r := b.Rect
	c.FillRect(r.X, r.Y, r.W, r.H, b.bgColor)
	// рамка
	c.Line(r.X, r.Y, r.X+r.W, r.Y, 2, b.fgColor)
	c.Line(r.X+r.W, r.Y, r.X+r.W, r.Y+r.H, 2, b.fgColor)
	c.Line(r.X+r.W, r.Y+r.H, r.X, r.Y+r.H, 2, b.fgColor)
	c.Line(r.X, r.Y+r.H, r.X, r.Y, 2, b.fgColor)

	textWidth := float64(len(b.Text) * config.TextCharWidth)
	c.Text(b.Text, r.X+(r.W-textWidth)/2, r.Y+(r.H+config.TextOffsetY)/2, b.fgColor)
}

// IsClicked проверяет, был ли клик по кнопке.
func (b *MenuButton) IsClicked(f input.Frame) bool {
	return f.LeftClickIn(b.Rect)
}
