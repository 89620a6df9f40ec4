package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGIsSeeded(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestRangeStaysInBounds(t *testing.T) {
	p := NewPRNGService(11)
	for i := 0; i < 1000; i++ {
		v := p.Range(-2.5, 4)
		assert.GreaterOrEqual(t, v, -2.5)
		assert.Less(t, v, 4.0)
	}
	assert.Equal(t, 3.0, p.Range(3, 3))
	assert.Equal(t, 3.0, p.Range(3, 1))
}
