// internal/state/keybind_state.go
package state

import (
	"fmt"

	"initerse/internal/config"
	"initerse/internal/render"
	"initerse/internal/ui"
	"initerse/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// KeybindState lets the player rebind the movement actions. Back writes the
// table to the keybind file and returns to the previous state.
type KeybindState struct {
	sm     *StateMachine
	poll   Poller
	back   State
	keys   config.Keymap
	path   string
	logger *zap.Logger

	// modifying is the action waiting for a key while waiting is set.
	modifying config.Action
	waiting   bool
}

func NewKeybindState(sm *StateMachine, poll Poller, back State, keys config.Keymap, path string, logger *zap.Logger) *KeybindState {
	return &KeybindState{sm: sm, poll: poll, back: back, keys: keys, path: path, logger: logger}
}

func actionButton(i int, label string) *ui.MenuButton {
	return ui.NewMenuButton(utils.Rect{
		X: config.ScreenWidth/2 - 100,
		Y: config.ScreenHeight/2 - 200 + 50*float64(i),
		W: 200,
		H: 50,
	}, label)
}

func backButton() *ui.MenuButton {
	return ui.NewMenuButton(utils.Rect{X: config.ScreenWidth/2 - 100, Y: config.ScreenHeight/2 + 100, W: 200, H: 50}, "Back")
}

func (s *KeybindState) label(a config.Action) string {
	if s.waiting && s.modifying == a {
		return "Press a key"
	}
	return fmt.Sprintf("%s: %s", a, s.keys[a])
}

func (s *KeybindState) Enter() {}

func (s *KeybindState) Update(deltaTime float64) error {
	f := s.poll()
	if s.waiting {
		if len(f.Pressed) > 0 {
			s.assign(s.modifying, f.Pressed[0])
		}
		return nil
	}
	for i, a := range config.Actions() {
		if actionButton(i, s.label(a)).IsClicked(f) {
			s.modifying, s.waiting = a, true
			return nil
		}
	}
	if backButton().IsClicked(f) || f.EscapeReleased {
		if err := s.keys.Save(s.path); err != nil {
			s.logger.Warn("Error saving keybinds", zap.String("path", s.path), zap.Error(err))
		}
		s.sm.SetState(s.back)
	}
	return nil
}

func (s *KeybindState) assign(a config.Action, key ebiten.Key) {
	s.keys[a] = key
	s.waiting = false
	s.logger.Debug("Keybind changed", zap.Stringer("action", a), zap.Stringer("key", key))
}

func (s *KeybindState) Draw(c render.Canvas) {
	w, h := c.Size()
	c.FillRect(0, 0, float64(w), float64(h), config.BackgroundColor)
	c.Text("Keybinds", float64(w)/2-28, 100, config.TextLightColor)
	for i, a := range config.Actions() {
		actionButton(i, s.label(a)).Draw(c)
	}
	backButton().Draw(c)
}

func (s *KeybindState) Exit() {}
