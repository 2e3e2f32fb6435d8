package partmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kabufuda/solver/internal/packed"
)

func TestSet(t *testing.T) {
	s := New(16)

	var keys []packed.Key
	for i := 0; i < 100; i++ {
		var k packed.Key
		k[0], k[len(k)-1] = byte(i), byte(i*3)
		keys = append(keys, k)
	}

	for i, k := range keys {
		assert.True(t, s.Add(k))
		assert.Equal(t, i+1, s.Size())
	}
	for _, k := range keys {
		assert.False(t, s.Add(k))
	}
	assert.Equal(t, len(keys), s.Size())
}

func TestSetSinglePart(t *testing.T) {
	s := New(0)
	assert.True(t, s.Add(packed.Key{}))
	assert.False(t, s.Add(packed.Key{}))
	assert.Equal(t, 1, s.Size())
}
