// internal/app/game.go
package app

import (
	"context"
	"errors"
	"fmt"

	"initerse/internal/assets"
	"initerse/internal/config"
	"initerse/internal/event"
	"initerse/internal/input"
	"initerse/internal/render"
	"initerse/internal/save"
	"initerse/internal/tower"
	"initerse/internal/ui"
	"initerse/internal/world"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Game holds the main game state and logic.
type Game struct {
	World     *world.World
	BuildMode *BuildMode
	Hotbar    *ui.Hotbar
	Player    *Player
	Events    *event.Dispatcher

	textures assets.Textures
	store    save.Store
	saveName string
	session  uuid.UUID
	logger   *zap.Logger

	screenW, screenH int
	onHotbar         bool
	// overlay holds the inspection panel drawn during the last Update.
	overlay *render.Recorder
}

// NewGame wires a game around an existing world.
func NewGame(w *world.World, textures assets.Textures, store save.Store, events *event.Dispatcher, settings config.Settings, logger *zap.Logger) *Game {
	return &Game{
		World:     w,
		BuildMode: NewBuildMode(),
		Hotbar:    ui.NewHotbar(),
		Player:    NewPlayer(),
		Events:    events,
		textures:  textures,
		store:     store,
		saveName:  settings.Save.Name,
		session:   uuid.New(),
		logger:    logger.Named("game"),
		screenW:   config.ScreenWidth,
		screenH:   config.ScreenHeight,
		overlay:   render.NewRecorder(config.ScreenWidth, config.ScreenHeight),
	}
}

// Session identifies this run in the saves it writes.
func (g *Game) Session() uuid.UUID {
	return g.session
}

// SetScreenSize updates the layout used for hit testing.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW, g.screenH = w, h
	g.overlay.W, g.overlay.H = w, h
}

// Update runs one frame: movement, zoom, hotbar, build mode, simulation,
// then the inspection panel.
func (g *Game) Update(ctx context.Context, f input.Frame, dt float64) error {
	g.Player.Update(f.Direction(), dt)
	g.World.ControlTileSize(f.WheelY)

	g.onHotbar = g.Hotbar.Update(f, g.BuildMode, g.screenW, g.screenH)
	g.BuildMode.Update(f, g.World, g.Player.Pos, g.onHotbar, g)
	g.World.Update(g.Player.Pos, dt)

	g.overlay.Reset()
	res := g.World.Interact(g.overlay, f, g.Player.Pos, g.BuildMode)
	if res.FocusChanged {
		g.Events.Dispatch(event.Event{Type: event.FocusChanged, Data: event.FocusData{Coord: res.Focus, HasFocus: res.HasFocus}})
	}
	if res.Unit != "" {
		g.Events.Dispatch(event.Event{Type: event.ResourceCollected, Data: event.CollectData{Coord: res.Focus, Amount: res.Collected, Unit: res.Unit}})
	}

	if f.SaveReleased {
		if err := g.Save(ctx); err != nil {
			g.logger.Error("save failed", zap.Error(err))
		}
	}
	return nil
}

// Draw renders the world, the build preview, the hotbar and the panel.
func (g *Game) Draw(c render.Canvas) {
	g.World.Draw(c, g.textures, g.Player.Pos)
	g.BuildMode.Draw(c, g.textures, g.World, g.Player.Pos)
	g.Hotbar.Draw(c, g.textures, g.BuildMode.Current())
	g.drawStock(c)
	g.overlay.Replay(c)
}

func (g *Game) drawStock(c render.Canvas) {
	y := float64(config.TextOffsetY)
	for _, unit := range units() {
		amount := g.World.Stock(unit)
		if amount == 0 {
			continue
		}
		c.Text(fmt.Sprintf("%s: %.0f", unit, amount), 10, y, config.TextLightColor)
		y += config.TextOffsetY + 4
	}
}

// units lists every resource unit once, in registry order.
func units() []string {
	var out []string
	seen := map[string]bool{}
	for _, def := range tower.Definitions() {
		if def.Unit == "" || seen[def.Unit] {
			continue
		}
		seen[def.Unit] = true
		out = append(out, def.Unit)
	}
	return out
}

// Save writes the world to the configured store.
func (g *Game) Save(ctx context.Context) error {
	if err := save.Save(ctx, g.store, g.saveName, g.World, g.session); err != nil {
		return err
	}
	g.logger.Info("world saved", zap.String("name", g.saveName), zap.Int("machines", g.World.Len()))
	g.Events.Dispatch(event.Event{Type: event.WorldSaved, Data: event.SaveData{Name: g.saveName, Session: g.session.String(), Machines: g.World.Len()}})
	return nil
}

// Load replaces the world with the configured save. A missing save is not
// an error: the session simply starts empty.
func (g *Game) Load(ctx context.Context) error {
	snap, err := save.Load(ctx, g.store, g.saveName, g.World)
	if errors.Is(err, save.ErrNotFound) {
		g.logger.Info("no save yet, starting empty", zap.String("name", g.saveName))
		return nil
	}
	if err != nil {
		return err
	}
	g.logger.Info("world loaded",
		zap.String("name", g.saveName),
		zap.Stringer("written_by", snap.Session),
		zap.Int("machines", len(snap.Machines)))
	g.Events.Dispatch(event.Event{Type: event.WorldLoaded, Data: event.SaveData{Name: g.saveName, Session: snap.Session.String(), Machines: len(snap.Machines)}})
	return nil
}

// Close saves the world on the way out.
func (g *Game) Close(ctx context.Context) error {
	if err := g.Save(ctx); err != nil {
		return fmt.Errorf("save on exit: %w", err)
	}
	return nil
}
