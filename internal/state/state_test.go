package state

import (
	"context"
	"path/filepath"
	"testing"

	"initerse/internal/app"
	"initerse/internal/config"
	"initerse/internal/event"
	"initerse/internal/input"
	"initerse/internal/render"
	"initerse/internal/save"
	"initerse/internal/tower"
	"initerse/internal/utils"
	"initerse/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTextures map[tower.Type]*ebiten.Image

func (f fakeTextures) Get(t tower.Type) *ebiten.Image {
	if img, ok := f[t]; ok {
		return img
	}
	img := ebiten.NewImage(4, 4)
	f[t] = img
	return img
}

func (f fakeTextures) Image(string) (*ebiten.Image, bool) { return nil, false }

// script feeds one frame per poll and idles afterwards.
type script struct{ frames []input.Frame }

func (s *script) poll() input.Frame {
	if len(s.frames) == 0 {
		return input.Frame{}
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

func newGameState(t *testing.T, sm *StateMachine, s *script, store save.Store) *GameState {
	t.Helper()
	g := app.NewGame(world.New(world.DefaultOptions()), fakeTextures{}, store, event.NewDispatcher(), config.DefaultSettings(), zap.NewNop())
	return NewGameState(context.Background(), sm, g, s.poll)
}

type countingState struct{ enter, exit, update int }

func (c *countingState) Enter()               { c.enter++ }
func (c *countingState) Update(float64) error { c.update++; return nil }
func (c *countingState) Draw(render.Canvas)   {}
func (c *countingState) Exit()                { c.exit++ }

func TestStateMachineEntersAndExits(t *testing.T) {
	sm := NewStateMachine()
	a, b := &countingState{}, &countingState{}

	sm.SetState(a)
	require.NoError(t, sm.Update(0.1))
	sm.SetState(b)

	assert.Equal(t, countingState{enter: 1, exit: 1, update: 1}, *a)
	assert.Equal(t, 1, b.enter)
	assert.Same(t, b, sm.Current())
	assert.NoError(t, sm.Close(context.Background()), "states without Close")
}

func TestMenuStartsGame(t *testing.T) {
	sm := NewStateMachine()
	s := &script{frames: []input.Frame{{}, {StartReleased: true}}}
	gs := newGameState(t, sm, s, save.NewMemoryStore())
	sm.SetState(NewMenuState(sm, s.poll, func() State { return gs }))

	require.NoError(t, sm.Update(0.016))
	assert.IsType(t, &MenuState{}, sm.Current())
	require.NoError(t, sm.Update(0.016))
	assert.Same(t, gs, sm.Current())

	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	NewMenuState(sm, s.poll, nil).Draw(rec)
	assert.Contains(t, rec.Texts(), "Press SPACE to start")
	assert.Contains(t, rec.Texts(), "Start")
}

func TestMenuStartButton(t *testing.T) {
	sm := NewStateMachine()
	s := &script{}
	gs := newGameState(t, sm, s, save.NewMemoryStore())
	menu := NewMenuState(sm, s.poll, func() State { return gs })
	sm.SetState(menu)

	r := menu.start.Rect
	s.frames = []input.Frame{{CursorX: r.X + r.W/2, CursorY: r.Y + r.H/2, LeftReleased: true}}
	require.NoError(t, sm.Update(0.016))
	assert.Same(t, gs, sm.Current())
}

func TestPauseFreezesTheWorld(t *testing.T) {
	sm := NewStateMachine()
	s := &script{}
	gs := newGameState(t, sm, s, save.NewMemoryStore())
	sm.SetState(gs)
	require.True(t, gs.Game().PlaceTower(utils.Coord{}, tower.Electron))

	s.frames = []input.Frame{{PauseReleased: true}}
	require.NoError(t, sm.Update(1))
	require.IsType(t, &PauseState{}, sm.Current())

	require.NoError(t, sm.Update(1))
	assert.Zero(t, gs.Game().World.GetTower(utils.Coord{}).Buffer)

	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	sm.Draw(rec)
	assert.Contains(t, rec.Texts(), "PAUSED")

	s.frames = []input.Frame{{EscapeReleased: true}}
	require.NoError(t, sm.Update(1))
	assert.Same(t, gs, sm.Current())

	require.NoError(t, sm.Update(0.5))
	assert.InDelta(t, 0.5, gs.Game().World.GetTower(utils.Coord{}).Buffer, 1e-9)
}

func TestCloseWhilePausedSaves(t *testing.T) {
	store := save.NewMemoryStore()
	sm := NewStateMachine()
	s := &script{frames: []input.Frame{{PauseReleased: true}}}
	gs := newGameState(t, sm, s, store)
	sm.SetState(gs)
	require.True(t, gs.Game().PlaceTower(utils.Coord{X: 1}, tower.Energy))
	require.NoError(t, sm.Update(0.016))

	require.NoError(t, sm.Close(context.Background()))

	data, err := store.Read(context.Background(), config.DefaultSettings().Save.Name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1\t0\tEnergy\t")
}

func center(r utils.Rect) (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func TestKeybindEditorRebindsAndSaves(t *testing.T) {
	sm := NewStateMachine()
	s := &script{}
	keys := config.DefaultKeymap()
	path := filepath.Join(t.TempDir(), "config.toml")
	menu := NewMenuState(sm, s.poll, nil)
	menu.WithKeybinds(func() State { return NewKeybindState(sm, s.poll, menu, keys, path, zap.NewNop()) })
	sm.SetState(menu)

	mx, my := center(menu.keybindsOpen.Rect)
	fx, fy := center(actionButton(0, "").Rect)
	bx, by := center(backButton().Rect)
	s.frames = []input.Frame{
		{CursorX: mx, CursorY: my, LeftReleased: true},
		{CursorX: fx, CursorY: fy, LeftReleased: true},
		{},
		{Pressed: []ebiten.Key{ebiten.KeyW}},
	}
	for range 2 {
		require.NoError(t, sm.Update(0.016))
	}
	editor, ok := sm.Current().(*KeybindState)
	require.True(t, ok)
	assert.Equal(t, "Press a key", editor.label(config.ActionForward))

	for range 2 {
		require.NoError(t, sm.Update(0.016))
	}
	assert.Equal(t, ebiten.KeyW, keys[config.ActionForward])
	assert.Equal(t, "Forward: W", editor.label(config.ActionForward))

	s.frames = []input.Frame{{CursorX: bx, CursorY: by, LeftReleased: true}}
	require.NoError(t, sm.Update(0.016))
	assert.Same(t, menu, sm.Current())

	saved := config.LoadKeymap(path, zap.NewNop())
	assert.Equal(t, ebiten.KeyW, saved[config.ActionForward])
	assert.Equal(t, ebiten.KeyS, saved[config.ActionBackward])
}
