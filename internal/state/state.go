// internal/state/state.go
package state

import (
	"context"

	"initerse/internal/input"
	"initerse/internal/render"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64) error
	Draw(c render.Canvas)
	Exit()
}

// Closer is implemented by states that own something to flush on exit.
type Closer interface {
	Close(ctx context.Context) error
}

// Poller returns the input of the current tick.
type Poller func() input.Frame

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.current != nil {
		return sm.current.Update(deltaTime)
	}
	return nil
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(c render.Canvas) {
	if sm.current != nil {
		sm.current.Draw(c)
	}
}

// Close flushes the current state if it needs it.
func (sm *StateMachine) Close(ctx context.Context) error {
	if c, ok := sm.current.(Closer); ok {
		return c.Close(ctx)
	}
	return nil
}
