// internal/defs/celestials.go
package defs

import (
	"errors"
	"fmt"
)

// CelestialFlavor defines the category of a decorative body.
type CelestialFlavor string

const (
	FlavorStar     CelestialFlavor = "star"
	FlavorPlanet   CelestialFlavor = "planet"
	FlavorAsteroid CelestialFlavor = "asteroid"
)

// CelestialDefinition describes a large decorative body drawn over the grid.
// Celestials never occupy cells and never take part in simulation.
type CelestialDefinition struct {
	ID     string          `json:"id"`
	Flavor CelestialFlavor `json:"flavor"`
	// Path of the texture, relative to the assets directory.
	Path string `json:"path"`
	// Size in cells.
	Size [2]int `json:"size"`
	// Position of the top-left cell.
	Position [2]int32 `json:"position"`
}

// Validate checks the fields a definition needs to be drawable.
func (d CelestialDefinition) Validate() error {
	switch d.Flavor {
	case FlavorStar, FlavorPlanet, FlavorAsteroid:
	case "":
		return errors.New("no flavor key in config")
	default:
		return fmt.Errorf("invalid flavor for celestial (%q)", d.Flavor)
	}
	if d.Path == "" {
		return errors.New("no path key in config")
	}
	if d.Size[0] <= 0 || d.Size[1] <= 0 {
		return fmt.Errorf("invalid size %v", d.Size)
	}
	return nil
}
