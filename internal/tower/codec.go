// internal/tower/codec.go
package tower

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrMalformedPayload is returned when a machine record cannot be decoded.
var ErrMalformedPayload = errors.New("malformed machine payload")

const (
	fieldBuffer = "buffer"
	fieldRate   = "rate"
	fieldSep    = "; "
)

// fields lists the payload keys each tag persists, in output order.
func fields(t Type) []string {
	switch t {
	case Electron, StringCreator, Energy:
		return []string{fieldBuffer, fieldRate}
	case AntimatterCollector:
		return []string{fieldBuffer}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Encode serialises the machine's mutable state. Empty is never stored, so
// encoding it is a programming error.
func Encode(m *Machine) string {
	if m.IsEmpty() {
		panic("tower: encode of the Empty machine")
	}
	keys := fields(m.typ)
	if keys == nil {
		panic(fmt.Sprintf("tower: encode of %v", m.typ))
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		var v float64
		switch k {
		case fieldBuffer:
			v = m.Buffer
		case fieldRate:
			v = m.Rate
		}
		parts = append(parts, k+": "+formatFloat(v))
	}
	return strings.Join(parts, fieldSep)
}

// Decode rebuilds a machine of type t from an Encode payload. Every key the
// tag persists must be present exactly once; anything else is rejected.
func Decode(t Type, raw string) (*Machine, error) {
	if t == Empty {
		panic("tower: decode of the Empty machine")
	}
	m, ok := New(t)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownType, t)
	}
	want := fields(t)
	seen := make(map[string]bool, len(want))
	for _, part := range strings.Split(raw, fieldSep) {
		key, value, ok := strings.Cut(part, ": ")
		if !ok {
			return nil, fmt.Errorf("%w: %v field %q", ErrMalformedPayload, t, part)
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: %v duplicate field %q", ErrMalformedPayload, t, key)
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v field %q: %w", ErrMalformedPayload, t, key, err)
		}
		switch {
		case key == fieldBuffer:
			m.Buffer = v
		case key == fieldRate && slices.Contains(want, fieldRate):
			m.Rate = v
		default:
			return nil, fmt.Errorf("%w: %v unexpected field %q", ErrMalformedPayload, t, key)
		}
		seen[key] = true
	}
	for _, k := range want {
		if !seen[k] {
			return nil, fmt.Errorf("%w: %v missing field %q", ErrMalformedPayload, t, k)
		}
	}
	return m, nil
}
