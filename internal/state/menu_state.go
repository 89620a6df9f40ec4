// internal/state/menu_state.go
package state

import (
	"initerse/internal/config"
	"initerse/internal/render"
	"initerse/internal/ui"
)

// MenuState — стартовый экран, ждёт пробел, Enter или клик по кнопке.
type MenuState struct {
	sm    *StateMachine
	poll  Poller
	next  func() State
	start *ui.MenuButton

	keybinds     func() State
	keybindsOpen *ui.MenuButton
}

func NewMenuState(sm *StateMachine, poll Poller, next func() State) *MenuState {
	return &MenuState{
		sm:    sm,
		poll:  poll,
		next:  next,
		start: ui.CenteredMenuButton(config.ScreenWidth, config.ScreenHeight, 200, 50, 40, "Start"),
	}
}

// WithKeybinds adds a button opening the state built by open.
func (m *MenuState) WithKeybinds(open func() State) *MenuState {
	m.keybinds = open
	m.keybindsOpen = ui.CenteredMenuButton(config.ScreenWidth, config.ScreenHeight, 200, 50, 100, "Keybinds")
	return m
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) error {
	f := m.poll()
	switch {
	case f.StartReleased || m.start.IsClicked(f):
		m.sm.SetState(m.next())
	case m.keybinds != nil && m.keybindsOpen.IsClicked(f):
		m.sm.SetState(m.keybinds())
	}
	return nil
}

func (m *MenuState) Draw(c render.Canvas) {
	w, h := c.Size()
	c.FillRect(0, 0, float64(w), float64(h), config.BackgroundColor)
	title := "initerse"
	hint := "Press SPACE to start"
	c.Text(title, (float64(w)-float64(len(title)*config.TextCharWidth))/2, float64(h)/2-40, config.TextLightColor)
	c.Text(hint, (float64(w)-float64(len(hint)*config.TextCharWidth))/2, float64(h)/2-10, config.TextLightColor)
	m.start.Draw(c)
	if m.keybindsOpen != nil {
		m.keybindsOpen.Draw(c)
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
