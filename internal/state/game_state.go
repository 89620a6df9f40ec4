// internal/state/game_state.go
package state

import (
	"context"

	"initerse/internal/app"
	"initerse/internal/render"
)

// GameState — состояние игры
type GameState struct {
	sm   *StateMachine
	game *app.Game
	poll Poller
	// ctx bounds the saves triggered from inside the frame loop.
	ctx context.Context
}

func NewGameState(ctx context.Context, sm *StateMachine, game *app.Game, poll Poller) *GameState {
	return &GameState{sm: sm, game: game, poll: poll, ctx: ctx}
}

// Game returns the running game.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) error {
	f := g.poll()
	if f.PauseReleased {
		g.sm.SetState(NewPauseState(g.sm, g, g.poll))
		return nil
	}
	return g.game.Update(g.ctx, f, deltaTime)
}

func (g *GameState) Draw(c render.Canvas) {
	w, h := c.Size()
	g.game.SetScreenSize(w, h)
	g.game.Draw(c)
}

func (g *GameState) Exit() {}

// Close saves the world.
func (g *GameState) Close(ctx context.Context) error {
	return g.game.Close(ctx)
}
