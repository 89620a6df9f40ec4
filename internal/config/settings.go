// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Store backends understood by save.Open.
const (
	StoreFile     = "file"
	StorePostgres = "postgres"
)

// Settings: параметры сессии, читаются из settings.yaml.
type Settings struct {
	LogLevel     string       `yaml:"log_level"`
	LogFormat    string       `yaml:"log_format"`
	KeybindsPath string       `yaml:"keybinds_path"`
	AssetsDir    string       `yaml:"assets_dir"`
	Seed         int64        `yaml:"seed"`
	TileSize     float64      `yaml:"tile_size"`
	UpdateRadius int          `yaml:"update_radius"`
	Save         SaveSettings `yaml:"save"`
}

// SaveSettings selects where world saves go.
type SaveSettings struct {
	Backend     string `yaml:"backend"`
	Dir         string `yaml:"dir"`
	Name        string `yaml:"name"`
	PostgresDSN string `yaml:"postgres_dsn"`
	LoadOnStart bool   `yaml:"load_on_start"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:     "info",
		LogFormat:    "console",
		KeybindsPath: "config.toml",
		AssetsDir:    "assets",
		TileSize:     BaseTileSize,
		UpdateRadius: BaseUpdateRadius,
		Save: SaveSettings{
			Backend:     StoreFile,
			Dir:         "saves",
			Name:        "world",
			LoadOnStart: true,
		},
	}
}

// DecodeSettings reads YAML on top of the defaults and validates the result.
func DecodeSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings reads the settings file. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer f.Close()
	return DecodeSettings(f)
}

// Validate checks ranges and fills gaps left by a partial file.
func (s *Settings) Validate() error {
	if s.TileSize < MinTileSize || s.TileSize > MaxTileSize {
		return fmt.Errorf("tile_size %v out of range [%v, %v]", s.TileSize, MinTileSize, MaxTileSize)
	}
	if s.UpdateRadius <= 0 {
		return fmt.Errorf("update_radius must be positive, got %d", s.UpdateRadius)
	}
	switch s.Save.Backend {
	case StoreFile:
		if s.Save.Dir == "" {
			s.Save.Dir = "saves"
		}
	case StorePostgres:
		if s.Save.PostgresDSN == "" {
			return errors.New("save.postgres_dsn is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown save backend %q", s.Save.Backend)
	}
	if s.Save.Name == "" {
		s.Save.Name = "world"
	}
	return nil
}
