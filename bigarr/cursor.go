package bigarr

import "math/bits"

// frame is one step of a cursor's descent: a chunk and the slot taken in it.
type frame struct {
	chunk *Chunk
	slot  uint8
}

// cursor walks leaves in key order. It keeps the descent path so that moving
// to the next leaf only climbs as far as the nearest ancestor with a next slot.
type cursor struct {
	arr   *Array
	stack [innerLevels]frame
	sp    int
	leaf  *Chunk
	off   int
}

func (a *Array) newCursor(start uint64, count int) (*cursor, error) {
	if a.closed {
		return nil, ErrClosed
	}
	if count == 0 {
		return nil, nil
	}
	if last := start + uint64(count-1); last < start {
		return nil, ErrKeyRange
	}

	cur := &cursor{arr: a}
	if err := cur.descend(a.root, bits.ReverseBytes64(start)); err != nil {
		return nil, err
	}
	return cur, nil
}

// descend goes from cur at level c.sp down to a leaf, taking slots from the low
// bytes of ix and creating missing chunks on the way.
func (c *cursor) descend(cur *Chunk, ix uint64) error {
	for c.sp < innerLevels {
		sel := uint8(ix)
		c.stack[c.sp] = frame{chunk: cur, slot: sel}

		h := cur[sel]
		if h != 0 {
			cur = c.arr.chunks[h]
			c.sp++
			ix >>= byteWidth
			continue
		}

		// the rest of the path is missing - allocate it in one go
		var (
			n    = innerLevels - c.sp
			sels [innerLevels]uint8
		)
		for i := 0; i < n; i++ {
			sels[i] = uint8(ix)
			ix >>= byteWidth
		}
		chain, err := c.arr.grow(cur, sels[:n])
		if err != nil {
			return err
		}
		for i, next := range chain[:n-1] {
			c.stack[c.sp+1+i] = frame{chunk: next, slot: sels[i+1]}
		}
		c.sp = innerLevels
		cur = chain[n-1]
	}

	c.leaf, c.off = cur, int(uint8(ix))
	return nil
}

// cells returns the remaining cells of the current leaf.
func (c *cursor) cells() []uint64 {
	return c.leaf[c.off:]
}

// advance moves to the first cell of the next leaf.
func (c *cursor) advance() error {
	for c.sp > 0 {
		c.sp--
		f := c.stack[c.sp]
		if f.slot != slotMask {
			return c.descend(f.chunk, uint64(f.slot)+1)
		}
	}
	return ErrKeyRange
}

// CopyOut copies len(dst) consecutive values starting at key start into dst.
// Missing chunks are created and read back as zero. A range running past the
// last uint64 key fails with ErrKeyRange before anything is touched.
func (a *Array) CopyOut(start uint64, dst []uint64) error {
	cur, err := a.newCursor(start, len(dst))
	if err != nil || cur == nil {
		return err
	}

	for {
		n := copy(dst, cur.cells())
		dst = dst[n:]
		if len(dst) == 0 {
			return nil
		}
		if err := cur.advance(); err != nil {
			return err
		}
	}
}

// CopyIn stores src at consecutive keys starting at start.
func (a *Array) CopyIn(start uint64, src []uint64) error {
	cur, err := a.newCursor(start, len(src))
	if err != nil || cur == nil {
		return err
	}

	for {
		n := copy(cur.cells(), src)
		src = src[n:]
		if len(src) == 0 {
			return nil
		}
		if err := cur.advance(); err != nil {
			return err
		}
	}
}
