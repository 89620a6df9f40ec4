// internal/world/world.go
package world

import (
	"slices"

	"initerse/internal/config"
	"initerse/internal/defs"
	"initerse/internal/tower"
	"initerse/internal/ui"
	"initerse/internal/utils"
)

// Options configures a new World.
type Options struct {
	TileSize     float64
	UpdateRadius int
	Seed         int64
	Celestials   []defs.CelestialDefinition
}

// DefaultOptions returns the options the game starts with.
func DefaultOptions() Options {
	return Options{
		TileSize:     config.BaseTileSize,
		UpdateRadius: config.BaseUpdateRadius,
	}
}

// World is the sparse grid of placed machines. Each machine is owned by
// exactly one cell; absence of a key means Empty.
type World struct {
	machines     map[utils.Coord]*tower.Machine
	tileSize     float64
	updateRadius int

	// focus is a key into machines, looked up again on every access.
	focus    utils.Coord
	hasFocus bool
	panel    *ui.InfoPanel

	stock      map[string]float64
	stars      *StarField
	celestials []defs.CelestialDefinition
}

// New creates an empty world.
func New(opts Options) *World {
	if opts.TileSize == 0 {
		opts.TileSize = config.BaseTileSize
	}
	if opts.UpdateRadius <= 0 {
		opts.UpdateRadius = config.BaseUpdateRadius
	}
	return &World{
		machines:     make(map[utils.Coord]*tower.Machine),
		tileSize:     utils.Clamp(opts.TileSize, config.MinTileSize, config.MaxTileSize),
		updateRadius: opts.UpdateRadius,
		panel:        ui.NewInfoPanel(),
		stock:        make(map[string]float64),
		stars:        NewStarField(opts.Seed),
		celestials:   opts.Celestials,
	}
}

// SetTower stores m at c and returns the previous occupant. An Empty machine
// erases the cell instead of being stored.
func (w *World) SetTower(c utils.Coord, m *tower.Machine) (*tower.Machine, bool) {
	prev, had := w.machines[c]
	if m.IsEmpty() {
		delete(w.machines, c)
	} else {
		w.machines[c] = m
	}
	return prev, had
}

// Place builds a default machine of type t at c. It reports false when the
// factory cannot produce t; the world is left untouched in that case.
func (w *World) Place(c utils.Coord, t tower.Type) (*tower.Machine, bool) {
	m, ok := tower.New(t)
	if !ok {
		return nil, false
	}
	w.SetTower(c, m)
	return m, true
}

// GetTower returns the machine at c, or the shared Empty sentinel.
func (w *World) GetTower(c utils.Coord) *tower.Machine {
	if m, ok := w.machines[c]; ok {
		return m
	}
	return tower.EmptyMachine()
}

// TryGetTower returns the machine at c if the cell is occupied.
func (w *World) TryGetTower(c utils.Coord) (*tower.Machine, bool) {
	m, ok := w.machines[c]
	return m, ok
}

// Len returns the number of placed machines.
func (w *World) Len() int {
	return len(w.machines)
}

// Coords returns every occupied coordinate in row order.
func (w *World) Coords() []utils.Coord {
	out := make([]utils.Coord, 0, len(w.machines))
	for c := range w.machines {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b utils.Coord) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// Each calls fn for every machine in row order.
func (w *World) Each(fn func(c utils.Coord, m *tower.Machine)) {
	for _, c := range w.Coords() {
		fn(c, w.machines[c])
	}
}

// Replace swaps the whole grid for machines, used after a successful load.
// Empty entries are dropped and focus is cleared.
func (w *World) Replace(machines map[utils.Coord]*tower.Machine) {
	w.machines = make(map[utils.Coord]*tower.Machine, len(machines))
	for c, m := range machines {
		if !m.IsEmpty() {
			w.machines[c] = m
		}
	}
	w.hasFocus = false
}

// Stock returns the amount collected so far for a resource unit.
func (w *World) Stock(unit string) float64 {
	return w.stock[unit]
}

// Collect drains the machine at c into the stockpile.
func (w *World) Collect(c utils.Coord) (float64, string) {
	m, ok := w.machines[c]
	if !ok {
		return 0, ""
	}
	amount := m.Collect()
	w.stock[m.Unit()] += amount
	return amount, m.Unit()
}

// UpdateRadius returns the side of the simulated square.
func (w *World) UpdateRadius() int {
	return w.updateRadius
}
