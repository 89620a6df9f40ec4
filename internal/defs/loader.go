// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// LoadCelestialDefinitions reads the celestial configuration file. Entries
// that fail validation are skipped with a warning; an unreadable or
// unparsable file is an error.
func LoadCelestialDefinitions(path string, logger *zap.Logger) ([]CelestialDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read celestial definitions file: %w", err)
	}

	var raw []CelestialDefinition
	if err := json.Unmarshal(file, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal celestial definitions: %w", err)
	}

	defs := make([]CelestialDefinition, 0, len(raw))
	for i, def := range raw {
		if err := def.Validate(); err != nil {
			logger.Warn("Skipping one celestial entry", zap.Int("index", i), zap.String("id", def.ID), zap.Error(err))
			continue
		}
		defs = append(defs, def)
	}

	logger.Info("Loaded celestial definitions", zap.Int("count", len(defs)))
	return defs, nil
}
