package save

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"initerse/internal/config"
	"initerse/internal/tower"
	"initerse/internal/utils"
	"initerse/internal/world"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func storeContract(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.Read(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Write(ctx, "slot", []byte("first")))
	require.NoError(t, store.Write(ctx, "slot", []byte("second")))
	got, err := store.Read(ctx, "slot")
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	assert.Error(t, store.Write(ctx, "../escape", []byte("x")))
	assert.Error(t, store.Write(ctx, "", []byte("x")))
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saves")
	store, err := NewFileStore(dir, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	storeContract(t, store)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files are cleaned up")
	assert.Equal(t, "slot.save", entries[0].Name())
}

func TestFileStoreHonoursCancelledContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Write(ctx, "slot", []byte("x")), context.Canceled)
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("INITERSE_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("INITERSE_TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	store, err := NewPostgresStore(ctx, dsn, zap.NewNop())
	require.NoError(t, err)
	defer store.Close()

	_, _ = store.db.ExecContext(ctx, `DELETE FROM world_saves WHERE name IN ('slot', 'missing')`)
	storeContract(t, store)
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), config.SaveSettings{Backend: "floppy"}, zap.NewNop())
	assert.Error(t, err)

	store, err := Open(context.Background(), config.SaveSettings{Backend: config.StoreFile, Dir: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)
}

func TestSaveAndLoadElectronScenario(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	w := world.New(world.Options{UpdateRadius: 2})
	_, ok := w.Place(utils.Coord{}, tower.Electron)
	require.True(t, ok)
	w.Update(utils.Vec2{}, 2.0)
	require.Equal(t, 2.0, w.GetTower(utils.Coord{}).Buffer)

	session := uuid.New()
	require.NoError(t, Save(ctx, store, "world", w, session))

	reloaded := world.New(world.DefaultOptions())
	snap, err := Load(ctx, store, "world", reloaded)
	require.NoError(t, err)
	assert.Equal(t, session, snap.Session)
	m := reloaded.GetTower(utils.Coord{})
	assert.Equal(t, tower.Electron, m.Type())
	assert.Equal(t, 2.0, m.Buffer)
	assert.Equal(t, 1.0, m.Rate)
}

func TestLoadFailureLeavesWorldUntouched(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Write(ctx, "broken", []byte(build(
		"0\t0\tElectron\tbuffer: 1; rate: 1",
		"1\t0\tPhoton\tbuffer: 1",
	))))

	w := world.New(world.DefaultOptions())
	_, ok := w.Place(utils.Coord{X: 9, Y: 9}, tower.Energy)
	require.True(t, ok)

	_, err := Load(ctx, store, "broken", w)
	require.Error(t, err)
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, tower.Energy, w.GetTower(utils.Coord{X: 9, Y: 9}).Type())
	assert.True(t, w.GetTower(utils.Coord{}).IsEmpty())

	_, err = Load(ctx, store, "nothing", w)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, w.Len())
}
