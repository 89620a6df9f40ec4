// internal/state/pause_state.go
package state

import (
	"context"
	"image/color"

	"initerse/internal/config"
	"initerse/internal/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the previous state and draws it dimmed.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	poll          Poller
}

func NewPauseState(sm *StateMachine, prevState State, poll Poller) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		poll:          poll,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) error {
	f := s.poll()
	if f.PauseReleased || f.EscapeReleased {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(c render.Canvas) {
	if s.previousState != nil {
		s.previousState.Draw(c)
	}
	w, h := c.Size()
	c.FillRect(0, 0, float64(w), float64(h), color.RGBA{0, 0, 0, 128})

	pauseText := "PAUSED"
	c.Text(pauseText, (float64(w)-float64(len(pauseText)*config.TextCharWidth))/2, float64(h)/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}

// Close passes through to the paused state, so quitting while paused saves.
func (s *PauseState) Close(ctx context.Context) error {
	if c, ok := s.previousState.(Closer); ok {
		return c.Close(ctx)
	}
	return nil
}
