// internal/config/keybinds.go
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Action: действие, на которое можно назначить клавишу.
type Action int

const (
	ActionForward Action = iota
	ActionBackward
	ActionLeft
	ActionRight
	actionCount
)

var actionNames = [actionCount]string{"Forward", "Backward", "Left", "Right"}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

// ParseAction resolves an action by its name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// DefaultKey is the AZERTY layout the game shipped with.
func (a Action) DefaultKey() ebiten.Key {
	switch a {
	case ActionForward:
		return ebiten.KeyZ
	case ActionBackward:
		return ebiten.KeyS
	case ActionLeft:
		return ebiten.KeyQ
	case ActionRight:
		return ebiten.KeyD
	}
	return ebiten.KeyEscape
}

// Keymap maps every action to a physical key.
type Keymap map[Action]ebiten.Key

// DefaultKeymap returns a keymap with every action on its default key.
func DefaultKeymap() Keymap {
	km := make(Keymap, actionCount)
	for _, a := range Actions() {
		km[a] = a.DefaultKey()
	}
	return km
}

const keybindHint = `need an action and keybind (e.g. Forward = "Z")`

func parseKeybindLine(line string) (Action, ebiten.Key, error) {
	name, raw, ok := strings.Cut(line, "=")
	if !ok {
		return 0, 0, errors.New(keybindHint)
	}
	action, err := ParseAction(strings.TrimSpace(name))
	if err != nil {
		return 0, 0, err
	}
	raw = strings.Trim(strings.TrimSpace(raw), `"`)
	if raw == "" {
		return 0, 0, errors.New(keybindHint)
	}
	var key ebiten.Key
	if err := key.UnmarshalText([]byte(raw)); err != nil {
		return 0, 0, fmt.Errorf("invalid key %q: %w", raw, err)
	}
	return action, key, nil
}

// ReadKeymap parses keybind lines. Bad lines are skipped with a warning and
// missing actions fall back to their default key, so the result is always usable.
func ReadKeymap(r io.Reader, logger *zap.Logger) (Keymap, error) {
	km := make(Keymap, actionCount)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		action, key, err := parseKeybindLine(line)
		if err != nil {
			logger.Warn("Couldn't parse keybind", zap.Int("line", lineNo), zap.String("text", line), zap.Error(err))
			continue
		}
		km[action] = key
	}
	for _, a := range Actions() {
		if _, ok := km[a]; !ok {
			km[a] = a.DefaultKey()
		}
	}
	if err := sc.Err(); err != nil {
		return km, fmt.Errorf("failed to read keybinds: %w", err)
	}
	return km, nil
}

// LoadKeymap reads the keybind file, falling back to defaults when it is
// missing or unreadable.
func LoadKeymap(path string, logger *zap.Logger) Keymap {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Couldn't open keybinds", zap.String("path", path), zap.Error(err))
		}
		logger.Info("Couldn't read config, using default keybinds", zap.String("path", path))
		return DefaultKeymap()
	}
	defer f.Close()
	km, err := ReadKeymap(f, logger)
	if err != nil {
		logger.Warn("Keybinds partially read", zap.Error(err))
	}
	return km
}

// WriteTo serialises the keymap in action order.
func (km Keymap) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, a := range Actions() {
		key, ok := km[a]
		if !ok {
			key = a.DefaultKey()
		}
		n, err := fmt.Fprintf(w, "%s = %q\n", a, key.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Save writes the keymap to path.
func (km Keymap) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create keybinds file: %w", err)
	}
	if _, err := km.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write keybinds: %w", err)
	}
	return f.Close()
}
