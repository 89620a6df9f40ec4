// internal/tower/machine.go
package tower

import (
	"fmt"

	"initerse/internal/utils"
)

// Grid is the read-only view of the world a machine sees while updating.
type Grid interface {
	TryGetTower(c utils.Coord) (*Machine, bool)
}

// Machine is the live state of one placed tower. The tag is fixed at
// construction and selects the behavior every method dispatches to.
type Machine struct {
	typ    Type
	Buffer float64
	Rate   float64
}

var emptyMachine = &Machine{typ: Empty}

// EmptyMachine returns the shared sentinel standing in for absent cells.
func EmptyMachine() *Machine {
	return emptyMachine
}

// New builds a machine in its default state. It reports false for tags the
// factory cannot instantiate; Empty yields the sentinel.
func New(t Type) (*Machine, bool) {
	switch t {
	case Empty:
		return emptyMachine, true
	case Electron, StringCreator, AntimatterCollector, Energy:
		return &Machine{typ: t, Rate: definitions[t].Rate}, true
	}
	return nil, false
}

// Type returns the immutable tag.
func (m *Machine) Type() Type {
	return m.typ
}

// IsEmpty reports whether m stands for "nothing here".
func (m *Machine) IsEmpty() bool {
	return m == nil || m.typ == Empty
}

func (m *Machine) Name() string {
	return Lookup(m.typ).Name
}

func (m *Machine) Unit() string {
	return Lookup(m.typ).Unit
}

// Update advances the machine by dt seconds. Current variants only touch
// their own buffer; grid is there for machines that read their neighbours.
func (m *Machine) Update(grid Grid, dt float64) {
	switch m.typ {
	case Empty:
	case Electron, StringCreator, Energy:
		m.Buffer += m.Rate * dt
	case AntimatterCollector:
		// собирает с фиксированной скоростью
		m.Buffer += definitions[AntimatterCollector].Rate * dt
	default:
		panic(fmt.Sprintf("tower: update on %v", m.typ))
	}
}

// Collect drains the buffer and returns what was in it.
func (m *Machine) Collect() float64 {
	if m.IsEmpty() {
		return 0
	}
	amount := m.Buffer
	m.Buffer = 0
	return amount
}
