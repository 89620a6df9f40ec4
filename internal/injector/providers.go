// internal/injector/providers.go
package injector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"initerse/internal/app"
	"initerse/internal/assets"
	"initerse/internal/config"
	"initerse/internal/defs"
	"initerse/internal/event"
	"initerse/internal/input"
	"initerse/internal/logging"
	"initerse/internal/save"
	"initerse/internal/state"
	"initerse/internal/world"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// CelestialsFile is the decoration list inside the assets directory.
const CelestialsFile = "celestials.json"

// Runtime is everything main needs to drive the frame loop.
type Runtime struct {
	States *state.StateMachine
	Game   *app.Game
	Logger *zap.Logger
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideKeymap,
	ProvideCelestials,
	ProvideWorld,
	ProvideTextures,
	wire.Bind(new(assets.Textures), new(*assets.TextureCache)),
	ProvideStore,
	ProvideDispatcher,
	ProvideGame,
	ProvidePoller,
	ProvideStateMachine,
	wire.Struct(new(Runtime), "*"),
)

func ProvideLogger(settings config.Settings) (*zap.Logger, func(), error) {
	logger, err := logging.New(settings.LogLevel, settings.LogFormat)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = logger.Sync() }, nil
}

func ProvideKeymap(settings config.Settings, logger *zap.Logger) config.Keymap {
	return config.LoadKeymap(settings.KeybindsPath, logger)
}

// ProvideCelestials loads the decorations. They are cosmetic, so a missing
// or broken file only costs a warning.
func ProvideCelestials(settings config.Settings, logger *zap.Logger) []defs.CelestialDefinition {
	path := filepath.Join(settings.AssetsDir, CelestialsFile)
	list, err := defs.LoadCelestialDefinitions(path, logger)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Celestials disabled", zap.String("path", path), zap.Error(err))
		}
		return nil
	}
	return list
}

func ProvideWorld(settings config.Settings, celestials []defs.CelestialDefinition) *world.World {
	return world.New(world.Options{
		TileSize:     settings.TileSize,
		UpdateRadius: settings.UpdateRadius,
		Seed:         settings.Seed,
		Celestials:   celestials,
	})
}

// ProvideTextures warms the cache with every tower texture, the star
// particle and the celestial sprites.
func ProvideTextures(ctx context.Context, settings config.Settings, celestials []defs.CelestialDefinition, logger *zap.Logger) (*assets.TextureCache, error) {
	cache := assets.NewTextureCache(assets.FileLoader(settings.AssetsDir), logger)
	extra := []string{world.StarParticleAsset}
	for _, c := range celestials {
		extra = append(extra, c.Path)
	}
	if err := cache.Warm(ctx, extra...); err != nil {
		return nil, fmt.Errorf("warm textures: %w", err)
	}
	return cache, nil
}

func ProvideStore(ctx context.Context, settings config.Settings, logger *zap.Logger) (save.Store, func(), error) {
	store, err := save.Open(ctx, settings.Save, logger.Named("save"))
	if err != nil {
		return nil, nil, err
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("Closing save store", zap.Error(err))
		}
	}, nil
}

func ProvideDispatcher(logger *zap.Logger) *event.Dispatcher {
	d := event.NewDispatcher()
	d.SubscribeAll(event.NewLogListener(logger))
	return d
}

// ProvideGame builds the game and restores the last save when asked to.
// A corrupt save aborts start-up instead of being overwritten on exit.
func ProvideGame(ctx context.Context, w *world.World, textures assets.Textures, store save.Store, events *event.Dispatcher, settings config.Settings, logger *zap.Logger) (*app.Game, error) {
	g := app.NewGame(w, textures, store, events, settings, logger)
	if settings.Save.LoadOnStart {
		if err := g.Load(ctx); err != nil {
			return nil, fmt.Errorf("load %q: %w", settings.Save.Name, err)
		}
	}
	return g, nil
}

func ProvidePoller(keys config.Keymap) state.Poller {
	return func() input.Frame {
		return input.Poll(keys)
	}
}

// ProvideStateMachine starts on the menu, which hands over to the game or
// to the keybind editor.
func ProvideStateMachine(ctx context.Context, g *app.Game, poll state.Poller, keys config.Keymap, settings config.Settings, logger *zap.Logger) *state.StateMachine {
	sm := state.NewStateMachine()
	gs := state.NewGameState(ctx, sm, g, poll)
	menu := state.NewMenuState(sm, poll, func() state.State { return gs })
	menu.WithKeybinds(func() state.State {
		return state.NewKeybindState(sm, poll, menu, keys, settings.KeybindsPath, logger)
	})
	sm.SetState(menu)
	return sm
}
