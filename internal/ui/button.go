// internal/ui/button.go
package ui

import (
	"image/color"

	"initerse/internal/config"
	"initerse/internal/input"
	"initerse/internal/render"
	"initerse/internal/utils"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect      utils.Rect
	Text      string
	TextColor color.Color
	BgColor   color.Color
}

// NewButton создает новую кнопку.
func NewButton(rect utils.Rect, text string, bg color.Color) *Button {
	return &Button{
		Rect:      rect,
		Text:      text,
		TextColor: config.TextLightColor,
		BgColor:   bg,
	}
}

// IsClicked проверяет, был ли сделан клик по кнопке (по отпусканию левой кнопки).
func (b *Button) IsClicked(f input.Frame) bool {
	return f.LeftClickIn(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(c render.Canvas) {
	c.FillRect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, b.BgColor)
	if b.Text != "" {
		c.Text(b.Text, b.Rect.X+5, b.Rect.Y+b.Rect.H/2+config.TextOffsetY/2, b.TextColor)
	}
}
