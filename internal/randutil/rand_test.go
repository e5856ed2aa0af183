package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNewOrRandom(t *testing.T) {
	_, seed := NewOrRandom(42)
	assert.Equal(t, int64(42), seed)

	_, seed = NewOrRandom(0)
	assert.NotZero(t, seed)
}
