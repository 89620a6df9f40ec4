// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	BaseTileSize     = 48.0
	MinTileSize      = 3.0
	MaxTileSize      = 256.0
	ZoomFactor       = 1.1
	BaseUpdateRadius = 50

	HotbarSlots   = 10
	HotbarMarginX = 100.0
	HotbarHeight  = 50.0

	PanelMarginX     = 100.0
	PanelMarginY     = 50.0
	PanelCloseSize   = 30.0
	PanelFadeSeconds = 0.15
	CollectCharWidth = 15.0 // ширина символа для кнопки "Collect"

	PreviewAlpha = 150.0 / 255.0

	StarParticleMaxLifetime = 10.0
	StarParticleMaxAmount   = 200
	StarParticleScale       = 0.25

	PlayerAcceleration = 2.5
	PlayerMaxVelocity  = 10.0
	PlayerDamping      = 0.9
	PlayerStopVelocity = 0.01
	PlayerStart        = 0.001 // небольшой сдвиг, чтобы не стоять ровно на границе клетки

	TextCharWidth = 7
	TextOffsetY   = 13
)

var (
	BackgroundColor = color.RGBA{5, 5, 15, 255}
	HotbarColor     = color.RGBA{128, 128, 128, 255}
	HotbarSelected  = color.RGBA{240, 240, 240, 90}
	PanelColor      = color.RGBA{80, 80, 80, 255}
	CollectColor    = color.RGBA{255, 255, 255, 30}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	StarColor       = color.RGBA{255, 255, 230, 255}
)
