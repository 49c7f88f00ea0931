package bulk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campuspass/campuspass/constants"
)

func TestClampChunkSize(t *testing.T) {
	assert.Equal(t, constants.DefaultChunkSize, clampChunkSize(0))
	assert.Equal(t, constants.MinChunkSize, clampChunkSize(1))
	assert.Equal(t, constants.MinChunkSize, clampChunkSize(-5))
	assert.Equal(t, 250, clampChunkSize(250))
	assert.Equal(t, constants.MaxChunkSize, clampChunkSize(10_000))
}

func TestChunksPreserveOrderAndBounds(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	got := chunks(items, 10)
	assert.Len(t, got, 3)
	assert.Len(t, got[0], 10)
	assert.Len(t, got[1], 10)
	assert.Len(t, got[2], 5)

	var flat []int
	for _, c := range got {
		flat = append(flat, c...)
	}
	assert.Equal(t, items, flat)

	assert.Nil(t, chunks([]int{}, 10))
	assert.Len(t, chunks(items, 100), 1)
}
