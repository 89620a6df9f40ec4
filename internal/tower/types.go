// internal/tower/types.go
package tower

import (
	"errors"
	"fmt"
)

// Type is the closed set of tower tags. Empty means "no machine here".
type Type uint8

const (
	Empty Type = iota
	Electron
	StringCreator
	AntimatterCollector
	Energy
	typeCount
)

// ErrUnknownType is returned when a tag name or value is not part of the set.
var ErrUnknownType = errors.New("unknown tower type")

var typeNames = [typeCount]string{
	Empty:               "Empty",
	Electron:            "Electron",
	StringCreator:       "StringCreator",
	AntimatterCollector: "AntimatterCollector",
	Energy:              "Energy",
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeNames[t]
}

// Valid reports whether t is one of the declared tags.
func (t Type) Valid() bool {
	return t < typeCount
}

// ParseType resolves a tag from its String form.
func ParseType(name string) (Type, error) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Types returns every tag in enumeration order, Empty included.
func Types() []Type {
	out := make([]Type, 0, typeCount)
	for t := Type(0); t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}
