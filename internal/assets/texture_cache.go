// internal/assets/texture_cache.go
package assets

import (
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"initerse/internal/tower"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var placeholderColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// LoadFunc decodes the image stored at path.
type LoadFunc func(path string) (image.Image, error)

// FileLoader returns a LoadFunc reading PNG files relative to dir.
func FileLoader(dir string) LoadFunc {
	return func(path string) (image.Image, error) {
		f, err := os.Open(filepath.Join(dir, path))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		return img, nil
	}
}

// TextureCache управляет загрузкой и кэшированием текстур башен.
// Entries are filled once by Warm and never evicted for the session.
type TextureCache struct {
	load     LoadFunc
	logger   *zap.Logger
	textures map[tower.Type]*ebiten.Image
	images   map[string]*ebiten.Image
}

// NewTextureCache creates an empty cache; call Warm before the first frame.
func NewTextureCache(load LoadFunc, logger *zap.Logger) *TextureCache {
	return &TextureCache{
		load:     load,
		logger:   logger,
		textures: make(map[tower.Type]*ebiten.Image),
		images:   make(map[string]*ebiten.Image),
	}
}

// Warm loads every tower texture plus the given extra paths. Decoding runs in
// parallel; GPU images are created on the calling goroutine afterwards.
// A tower texture that fails to load is replaced by the Empty texture. When
// the Empty texture is missing too, a magenta placeholder takes its place.
// Only cancellation aborts the warm-up.
func (c *TextureCache) Warm(ctx context.Context, extra ...string) error {
	defs := tower.Definitions()
	decoded := make([]image.Image, len(defs))
	failed := make([]error, len(defs))
	extraDecoded := make([]image.Image, len(extra))

	g, ctx := errgroup.WithContext(ctx)
	for i, def := range defs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := c.load(def.AssetPath)
			decoded[i], failed[i] = img, err
			return nil
		})
	}
	for i, path := range extra {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := c.load(path)
			if err != nil {
				c.logger.Warn("Couldn't load image", zap.String("path", path), zap.Error(err))
				return nil
			}
			extraDecoded[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("texture warm-up cancelled: %w", err)
	}

	fallback := c.fallback(decoded[tower.Empty], failed[tower.Empty])
	for i, def := range defs {
		if _, ok := c.textures[def.Type]; ok {
			continue
		}
		if failed[i] != nil {
			c.logger.Warn("Couldn't load image, using empty texture",
				zap.Stringer("tower", def.Type), zap.String("path", def.AssetPath), zap.Error(failed[i]))
			c.textures[def.Type] = fallback
			continue
		}
		if def.Type == tower.Empty {
			c.textures[def.Type] = fallback
			continue
		}
		c.textures[def.Type] = ebiten.NewImageFromImage(decoded[i])
	}
	for i, path := range extra {
		if extraDecoded[i] != nil {
			if _, ok := c.images[path]; !ok {
				c.images[path] = ebiten.NewImageFromImage(extraDecoded[i])
			}
		}
	}
	c.logger.Debug("Textures warmed", zap.Int("towers", len(c.textures)), zap.Int("extra", len(c.images)))
	return nil
}

// fallback returns the texture used for Empty and for every tower whose
// image failed to load.
func (c *TextureCache) fallback(img image.Image, err error) *ebiten.Image {
	if existing, ok := c.textures[tower.Empty]; ok {
		return existing
	}
	if err == nil {
		return ebiten.NewImageFromImage(img)
	}
	c.logger.Warn("Couldn't load fallback texture, using placeholder",
		zap.String("path", tower.Lookup(tower.Empty).AssetPath), zap.Error(err))
	placeholder := ebiten.NewImage(1, 1)
	placeholder.Fill(placeholderColor)
	return placeholder
}

// Get returns the cached texture of t. Asking before Warm is a contract
// violation and panics.
func (c *TextureCache) Get(t tower.Type) *ebiten.Image {
	img, ok := c.textures[t]
	if !ok {
		panic(fmt.Sprintf("assets: texture of %v requested before warm-up", t))
	}
	return img
}

// Image returns an extra image loaded by Warm.
func (c *TextureCache) Image(path string) (*ebiten.Image, bool) {
	img, ok := c.images[path]
	return img, ok
}

// Warmed reports whether every tower texture is available.
func (c *TextureCache) Warmed() bool {
	return len(c.textures) == len(tower.Types())
}

// Textures is the read side of the cache used by the renderers.
type Textures interface {
	Get(t tower.Type) *ebiten.Image
	Image(path string) (*ebiten.Image, bool)
}

var _ Textures = (*TextureCache)(nil)
