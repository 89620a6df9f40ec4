package assets

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"initerse/internal/tower"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func solid(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func fakeLoader(missing ...string) (LoadFunc, *[]string) {
	var mu sync.Mutex
	var calls []string
	return func(path string) (image.Image, error) {
		mu.Lock()
		calls = append(calls, path)
		mu.Unlock()
		for _, m := range missing {
			if m == path {
				return nil, errors.New("file not found")
			}
		}
		return solid(color.White), nil
	}, &calls
}

func TestWarmLoadsEveryTower(t *testing.T) {
	load, calls := fakeLoader()
	cache := NewTextureCache(load, zap.NewNop())
	require.False(t, cache.Warmed())

	require.NoError(t, cache.Warm(context.Background(), "star_particle.png"))

	assert.True(t, cache.Warmed())
	assert.Len(t, *calls, len(tower.Types())+1)
	for _, typ := range tower.Types() {
		assert.NotNil(t, cache.Get(typ))
	}
	_, ok := cache.Image("star_particle.png")
	assert.True(t, ok)
}

func TestWarmSubstitutesEmptyTexture(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	load, _ := fakeLoader(tower.Lookup(tower.Energy).AssetPath, "missing.png")
	cache := NewTextureCache(load, zap.New(core))

	require.NoError(t, cache.Warm(context.Background(), "missing.png"))

	assert.Same(t, cache.Get(tower.Empty), cache.Get(tower.Energy))
	assert.NotSame(t, cache.Get(tower.Empty), cache.Get(tower.Electron))
	_, ok := cache.Image("missing.png")
	assert.False(t, ok)
	assert.Equal(t, 2, logs.Len())
}

func TestWarmUsesPlaceholderWithoutEmptyTexture(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	load, _ := fakeLoader(tower.Lookup(tower.Empty).AssetPath, tower.Lookup(tower.Energy).AssetPath)
	cache := NewTextureCache(load, zap.New(core))

	require.NoError(t, cache.Warm(context.Background()))

	assert.True(t, cache.Warmed())
	empty := cache.Get(tower.Empty)
	assert.Equal(t, 1, empty.Bounds().Dx())
	assert.Same(t, empty, cache.Get(tower.Energy))
	assert.NotSame(t, empty, cache.Get(tower.Electron))
	assert.Equal(t, 1, logs.FilterMessage("Couldn't load fallback texture, using placeholder").Len())
}

func TestWarmWithoutAssetsDirectory(t *testing.T) {
	cache := NewTextureCache(FileLoader(filepath.Join(t.TempDir(), "assets")), zap.NewNop())

	require.NoError(t, cache.Warm(context.Background(), "star_particle.png"))

	assert.True(t, cache.Warmed())
	for _, typ := range tower.Types() {
		assert.Same(t, cache.Get(tower.Empty), cache.Get(typ))
	}
	_, ok := cache.Image("star_particle.png")
	assert.False(t, ok)
}

func TestWarmCancelled(t *testing.T) {
	load, _ := fakeLoader()
	cache := NewTextureCache(load, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, cache.Warm(ctx), context.Canceled)
}

func TestWarmIsLoadOnce(t *testing.T) {
	load, _ := fakeLoader()
	cache := NewTextureCache(load, zap.NewNop())
	require.NoError(t, cache.Warm(context.Background()))
	first := cache.Get(tower.Electron)

	require.NoError(t, cache.Warm(context.Background()))
	assert.Same(t, first, cache.Get(tower.Electron))
}

func TestGetBeforeWarmPanics(t *testing.T) {
	cache := NewTextureCache(nil, zap.NewNop())
	assert.Panics(t, func() { cache.Get(tower.Electron) })
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(filepath.Join(dir, "electron.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solid(color.Black)))
	require.NoError(t, f.Close())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("nope"), 0o644))

	load := FileLoader(dir)
	img, err := load("electron.png")
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, err = load("broken.png")
	assert.Error(t, err)
	_, err = load("absent.png")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
