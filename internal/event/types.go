// internal/event/types.go
package event

import (
	"initerse/internal/tower"
	"initerse/internal/utils"
)

const (
	TowerPlaced       EventType = "TowerPlaced"  // Башня построена
	TowerRemoved      EventType = "TowerRemoved" // Башня снесена
	FocusChanged      EventType = "FocusChanged"
	ResourceCollected EventType = "ResourceCollected"
	WorldSaved        EventType = "WorldSaved"
	WorldLoaded       EventType = "WorldLoaded"
)

// Types returns every event type in declaration order.
func Types() []EventType {
	return []EventType{TowerPlaced, TowerRemoved, FocusChanged, ResourceCollected, WorldSaved, WorldLoaded}
}

// TowerData is the payload of TowerPlaced and TowerRemoved.
type TowerData struct {
	Coord utils.Coord
	Type  tower.Type
}

// FocusData is the payload of FocusChanged. HasFocus is false when the
// panel was closed.
type FocusData struct {
	Coord    utils.Coord
	HasFocus bool
}

// CollectData is the payload of ResourceCollected.
type CollectData struct {
	Coord  utils.Coord
	Amount float64
	Unit   string
}

// SaveData is the payload of WorldSaved and WorldLoaded.
type SaveData struct {
	Name     string
	Session  string
	Machines int
}
