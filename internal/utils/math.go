// internal/utils/math.go
package utils

import "cmp"

// Clamp ограничивает значение диапазоном [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
