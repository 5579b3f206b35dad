package bigarr

import "math/bits"

// Slot returns the cell holding key, creating every missing chunk on its path.
//
// The key is byte-swapped first, so taking the low byte and shifting right by 8
// visits the key bytes most significant first. Neighbouring keys therefore share
// every chunk above the leaf.
func (a *Array) Slot(key uint64) (*uint64, error) {
	leaf, off, err := a.Block(key)
	if err != nil {
		return nil, err
	}
	return &leaf[off], nil
}

// Index is like Slot but panics if the chunks cannot be allocated.
func (a *Array) Index(key uint64) *uint64 {
	cell, err := a.Slot(key)
	if err != nil {
		panic(err)
	}
	return cell
}

// Get returns the value at key. Like every access it vivifies the path.
func (a *Array) Get(key uint64) uint64 {
	return *a.Index(key)
}

// Set stores val at key.
func (a *Array) Set(key, val uint64) {
	*a.Index(key) = val
}

// Block returns the leaf chunk holding key and the key's slot in it.
// Keys sharing all but the lowest byte live in the same leaf, so a caller that
// stays within 256 neighbours can work on the chunk directly.
func (a *Array) Block(key uint64) (*Chunk, uint8, error) {
	if a.closed {
		return nil, 0, ErrClosed
	}

	var (
		ix  = bits.ReverseBytes64(key)
		cur = a.root
	)

	for n := 0; n < innerLevels; n++ {
		h := cur[ix&slotMask]
		if h == 0 {
			// the rest of the path is missing - allocate it in one go
			var sels [innerLevels]uint8
			for i := n; i < innerLevels; i++ {
				sels[i-n] = uint8(ix)
				ix >>= byteWidth
			}
			chain, err := a.grow(cur, sels[:innerLevels-n])
			if err != nil {
				return nil, 0, err
			}
			return chain[len(chain)-1], uint8(ix), nil
		}
		cur = a.chunks[h]
		ix >>= byteWidth
	}

	return cur, uint8(ix), nil
}

// Peek returns the value at key without creating anything. The second result
// is false if the path to key was never created.
func (a *Array) Peek(key uint64) (uint64, bool) {
	if a.closed {
		return 0, false
	}

	var (
		ix  = bits.ReverseBytes64(key)
		cur = a.root
	)

	for n := 0; n < innerLevels; n++ {
		h := cur[ix&slotMask]
		if h == 0 {
			return 0, false
		}
		cur = a.chunks[h]
		ix >>= byteWidth
	}

	return cur[uint8(ix)], true
}
