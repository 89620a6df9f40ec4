// internal/save/save.go
package save

import (
	"bytes"
	"context"
	"fmt"

	"initerse/internal/world"

	"github.com/google/uuid"
)

// Save encodes the world and hands it to the store under name.
func Save(ctx context.Context, store Store, name string, w *world.World, session uuid.UUID) error {
	var buf bytes.Buffer
	if err := Encode(&buf, w, session); err != nil {
		return fmt.Errorf("encode world: %w", err)
	}
	if err := store.Write(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("store %q: %w", name, err)
	}
	return nil
}

// Load replaces the world's machines with the named save. On any error the
// world is left as it was.
func Load(ctx context.Context, store Store, name string, w *world.World) (Snapshot, error) {
	data, err := store.Read(ctx, name)
	if err != nil {
		return Snapshot{}, err
	}
	snap, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Snapshot{}, fmt.Errorf("decode %q: %w", name, err)
	}
	w.Replace(snap.Machines)
	return snap, nil
}
