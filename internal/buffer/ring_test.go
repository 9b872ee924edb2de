package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing_Push(t *testing.T) {
	size := 10

	ring := NewRing(size)

	for i := 0; i < 1000; i++ {
		ring.Push(float64(i))
		if i > size-1 {
			assert.Equal(t, size, ring.Size())
			assert.True(t, ring.Full())
		} else {
			assert.Equal(t, i+1, ring.Size())
		}
	}
}

func TestRing_Avg(t *testing.T) {
	size := 3

	ring := NewRing(size)

	for i := 0; i < 100; i++ {
		ring.Push(float64(i))
		if i > size-1 {
			// average of i-2, i-1, i
			assert.Equal(t, float64(i-1), ring.Avg())
		} else {
			assert.Equal(t, float64(i)/2, ring.Avg())
		}
	}
}

func TestRing_Empty(t *testing.T) {
	ring := NewRing(0)
	assert.Equal(t, 0, ring.Size())
	assert.Equal(t, 0.0, ring.Avg())

	ring.Push(1)
	ring.Push(2)
	assert.Equal(t, 1, ring.Size())
	assert.Equal(t, 2.0, ring.Avg())
}
