package bigarr

import "unsafe"

const (
	// ChunkSize is the number of slots in a Chunk.
	ChunkSize = 256
	// ChunkBytes is the memory footprint of a Chunk.
	ChunkBytes = int(unsafe.Sizeof(Chunk{}))
	// Depth is the number of chunk levels between the root and a value.
	Depth = 8

	innerLevels = Depth - 1 // levels holding child handles
	slotMask    = ChunkSize - 1
	byteWidth   = 8
	nibbleWidth = 4
	nibbleMask  = 0xF
	tileSide    = 16
)

// Chunk is a block of 256 slots. Above the leaf level a slot holds a child handle
// (0 means no child), at the leaf level it holds a value.
type Chunk [ChunkSize]uint64

// At returns the cell at (col, row) when the chunk is viewed as a 16x16 tile.
func (c *Chunk) At(col, row uint8) *uint64 {
	return &c[tileSlot(col, row)]
}

// Values returns the chunk slots as a slice.
func (c *Chunk) Values() []uint64 {
	return c[:]
}

// occupancy returns a 256-bit map of the non-empty slots.
func (c *Chunk) occupancy() (bmp [4]uint64) {
	for i, v := range c {
		if v != 0 {
			bmp[i>>6] |= uint64(1) << (i & 0x3F)
		}
	}
	return
}

func (c *Chunk) isZero() bool {
	for _, v := range c {
		if v != 0 {
			return false
		}
	}
	return true
}

func tileSlot(col, row uint8) uint8 {
	return col&nibbleMask | (row&nibbleMask)<<nibbleWidth
}
