package bigarr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2048, ChunkBytes)
}

func TestTileSlot(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Col, Row uint8
		ExpSlot  uint8
	}{
		{0, 0, 0},
		{1, 0, 1},
		{15, 0, 15},
		{0, 1, 16},
		{5, 5, 85},
		{5, 6, 101},
		{15, 15, 255},
		{0x1F, 0x12, 0x2F}, // high nibbles are ignored
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%d,%d", tcase.Col, tcase.Row)
		)

		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tcase.ExpSlot, tileSlot(tcase.Col, tcase.Row))
		})
	}
}

func TestChunkAt(t *testing.T) {
	t.Parallel()

	var c Chunk

	*c.At(3, 2) = 99

	assert.Equal(t, uint64(99), c[3+16*2])
	assert.Same(t, &c[255], c.At(15, 15))
	assert.Len(t, c.Values(), ChunkSize)
}

func TestChunkOccupancy(t *testing.T) {
	t.Parallel()

	var c Chunk

	assert.True(t, c.isZero())
	assert.Equal(t, [4]uint64{}, c.occupancy())

	c[0] = 1
	c[63] = 7
	c[64] = 8
	c[255] = 9

	assert.False(t, c.isZero())
	assert.Equal(t, [4]uint64{
		0x8000000000000001,
		0x0000000000000001,
		0,
		0x8000000000000000,
	}, c.occupancy())
}
