package bigarr

import "math/bits"

// spatialPath returns the slot selectors for (x, y), root first. Each selector
// packs one nibble of x (column) and one nibble of y (row), most significant
// nibbles first.
func spatialPath(x, y uint32) (path [Depth]uint8) {
	// byte swapping flips the nibble pairs, so take the high nibble of each
	// byte before the low one
	x, y = bits.ReverseBytes32(x), bits.ReverseBytes32(y)

	for i := 0; i < Depth; i += 2 {
		lx1, ly1 := uint8(x&nibbleMask), uint8(y&nibbleMask)
		x, y = x>>nibbleWidth, y>>nibbleWidth
		lx2, ly2 := uint8(x&nibbleMask), uint8(y&nibbleMask)
		x, y = x>>nibbleWidth, y>>nibbleWidth

		path[i] = tileSlot(lx2, ly2)
		path[i+1] = tileSlot(lx1, ly1)
	}

	return
}

// SpatialKey returns the linear key addressing the same cell as (x, y).
func SpatialKey(x, y uint32) uint64 {
	var key uint64
	for _, sel := range spatialPath(x, y) {
		key = key<<byteWidth | uint64(sel)
	}
	return key
}

// Tile returns the leaf chunk holding (x, y) viewed as a 16x16 tile, and the
// cell's column and row in it. Cells whose coordinates differ only in the lowest
// nibble share a tile.
func (a *Array) Tile(x, y uint32) (*Chunk, uint8, uint8, error) {
	if a.closed {
		return nil, 0, 0, ErrClosed
	}

	var (
		path = spatialPath(x, y)
		cur  = a.root
		sel  = path[innerLevels]
	)

	for n := 0; n < innerLevels; n++ {
		h := cur[path[n]]
		if h == 0 {
			chain, err := a.grow(cur, path[n:innerLevels])
			if err != nil {
				return nil, 0, 0, err
			}
			cur = chain[len(chain)-1]
			break
		}
		cur = a.chunks[h]
	}

	return cur, sel & nibbleMask, sel >> nibbleWidth, nil
}

// Slot2 returns the cell at (x, y), creating every missing chunk on its path.
func (a *Array) Slot2(x, y uint32) (*uint64, error) {
	tile, col, row, err := a.Tile(x, y)
	if err != nil {
		return nil, err
	}
	return tile.At(col, row), nil
}

// Index2 is like Slot2 but panics if the chunks cannot be allocated.
func (a *Array) Index2(x, y uint32) *uint64 {
	cell, err := a.Slot2(x, y)
	if err != nil {
		panic(err)
	}
	return cell
}
