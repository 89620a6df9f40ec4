// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"initerse/internal/config"
	"initerse/internal/injector"
	"initerse/internal/render"
	"initerse/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	logger         *zap.Logger
	lastUpdateTime time.Time
	ctx            context.Context
}

func (a *AppGame) Update() error {
	if ebiten.IsWindowBeingClosed() || a.ctx.Err() != nil {
		if err := a.stateMachine.Close(context.WithoutCancel(a.ctx)); err != nil {
			a.logger.Error("shutdown", zap.Error(err))
		}
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(render.NewScreen(screen))
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func run(settingsPath string) error {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rt, cleanup, err := injector.InitializeRuntime(ctx, settings)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer cleanup()
	rt.Logger.Info("session started", zap.Stringer("session", rt.Game.Session()))

	app := &AppGame{
		stateMachine:   rt.States,
		logger:         rt.Logger,
		lastUpdateTime: time.Now(),
		ctx:            ctx,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("initerse")
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	settingsPath := flag.String("settings", "settings.yaml", "path to the settings file")
	flag.Parse()

	if err := run(*settingsPath); err != nil {
		log.Fatal(err)
	}
}
