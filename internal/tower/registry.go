// internal/tower/registry.go
package tower

// Definition holds all the static data for a specific type of tower.
type Definition struct {
	Type      Type
	Name      string
	AssetPath string
	// Buildable towers get a hotbar slot.
	Buildable bool
	// Unit labels the resource shown by the inspection panel.
	Unit string
	// Rate is the default collection speed per second.
	Rate float64
}

var definitions = [typeCount]Definition{
	Empty: {
		Type:      Empty,
		Name:      "Empty",
		AssetPath: "empty.png",
	},
	Electron: {
		Type:      Electron,
		Name:      "Electron",
		AssetPath: "electron.png",
		Buildable: true,
		Unit:      "strings",
		Rate:      1,
	},
	StringCreator: {
		Type:      StringCreator,
		Name:      "String creator",
		AssetPath: "string creator.png",
		Buildable: true,
		Unit:      "strings",
		Rate:      1,
	},
	AntimatterCollector: {
		Type:      AntimatterCollector,
		Name:      "Antimatter collector",
		AssetPath: "antimatter_collector.png",
		Buildable: true,
		Unit:      "antimatter",
		Rate:      1,
	},
	Energy: {
		Type:      Energy,
		Name:      "Energy",
		AssetPath: "energy.png",
		Buildable: true,
		Unit:      "J",
		Rate:      1e9,
	},
}

// Lookup returns the definition of t. Unknown tags resolve to Empty's
// definition, the same fallback the asset path uses.
func Lookup(t Type) Definition {
	if !t.Valid() {
		return definitions[Empty]
	}
	return definitions[t]
}

// Definitions returns every definition in enumeration order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions[:])
	return out
}

// Buildable returns the tags that belong on the hotbar, in enumeration order.
func Buildable() []Type {
	var out []Type
	for _, def := range definitions {
		if def.Buildable && def.Type != Empty {
			out = append(out, def.Type)
		}
	}
	return out
}
