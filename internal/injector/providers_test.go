package injector

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"initerse/internal/config"
	"initerse/internal/event"
	"initerse/internal/save"
	"initerse/internal/state"
	"initerse/internal/tower"
	"initerse/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTextures struct{}

func (fakeTextures) Get(tower.Type) *ebiten.Image { return nil }

func (fakeTextures) Image(string) (*ebiten.Image, bool) { return nil, false }

func testSettings(t *testing.T) config.Settings {
	s := config.DefaultSettings()
	s.AssetsDir = t.TempDir()
	s.Save.Dir = t.TempDir()
	return s
}

func TestProvideCelestialsToleratesMissingFile(t *testing.T) {
	assert.Nil(t, ProvideCelestials(testSettings(t), zap.NewNop()))
}

func TestProvideCelestialsReadsAssetsDir(t *testing.T) {
	s := testSettings(t)
	data := `[{"id": "sun", "flavor": "star", "path": "sun.png", "size": [4, 4], "position": [10, -3]}]`
	require.NoError(t, os.WriteFile(filepath.Join(s.AssetsDir, CelestialsFile), []byte(data), 0o644))

	list := ProvideCelestials(s, zap.NewNop())
	require.Len(t, list, 1)
	assert.Equal(t, "sun.png", list[0].Path)
}

func TestProvideWorldUsesSettings(t *testing.T) {
	s := testSettings(t)
	s.TileSize = 1000
	s.UpdateRadius = 8

	w := ProvideWorld(s, nil)
	assert.Equal(t, config.MaxTileSize, w.TileSize())
	assert.Equal(t, 8, w.UpdateRadius())
}

func TestProvideGameRestoresSave(t *testing.T) {
	ctx := context.Background()
	s := testSettings(t)
	store, cleanup, err := ProvideStore(ctx, s, zap.NewNop())
	require.NoError(t, err)
	defer cleanup()

	first, err := ProvideGame(ctx, ProvideWorld(s, nil), fakeTextures{}, store, event.NewDispatcher(), s, zap.NewNop())
	require.NoError(t, err)
	require.True(t, first.PlaceTower(utils.Coord{X: 2, Y: 2}, tower.Electron))
	require.NoError(t, first.Save(ctx))

	second, err := ProvideGame(ctx, ProvideWorld(s, nil), fakeTextures{}, store, event.NewDispatcher(), s, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, tower.Electron, second.World.GetTower(utils.Coord{X: 2, Y: 2}).Type())
}

func TestProvideGameRefusesCorruptSave(t *testing.T) {
	ctx := context.Background()
	s := testSettings(t)
	store := save.NewMemoryStore()
	require.NoError(t, store.Write(ctx, s.Save.Name, []byte("not a save")))

	_, err := ProvideGame(ctx, ProvideWorld(s, nil), fakeTextures{}, store, event.NewDispatcher(), s, zap.NewNop())
	assert.ErrorIs(t, err, save.ErrMalformed)
}

func TestProvideStateMachineStartsOnMenu(t *testing.T) {
	ctx := context.Background()
	s := testSettings(t)
	g, err := ProvideGame(ctx, ProvideWorld(s, nil), fakeTextures{}, save.NewMemoryStore(), ProvideDispatcher(zap.NewNop()), s, zap.NewNop())
	require.NoError(t, err)

	keys := config.DefaultKeymap()
	sm := ProvideStateMachine(ctx, g, ProvidePoller(keys), keys, s, zap.NewNop())
	assert.IsType(t, &state.MenuState{}, sm.Current())
}
