package bigarr

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

// Stats describes the shape of an array.
type Stats struct {
	Chunks   int                 // chunks reachable from the root, root included
	PerDepth [Depth]int          // chunks per level, PerDepth[0] is the root
	Links    [innerLevels]uint64 // child handles held per inner level
	Bytes    int                 // memory held by the chunks
	Alloc    AllocStats          // allocator counters
}

// Stats walks the array and counts its chunks.
func (a *Array) Stats() Stats {
	st := Stats{Alloc: a.alloc.Stats()}
	if a.closed {
		return st
	}

	a.count(a.root, 0, &st)
	for _, n := range st.PerDepth {
		st.Chunks += n
	}
	st.Bytes = st.Chunks * ChunkBytes

	return st
}

func (a *Array) count(c *Chunk, level int, st *Stats) {
	st.PerDepth[level]++
	if level == innerLevels {
		return // values
	}

	bmp := c.occupancy()
	st.Links[level] += popcount.CountSlice(bmp[:])

	for w, word := range bmp {
		for word != 0 {
			i := w<<6 | bits.TrailingZeros64(word)
			word &= word - 1
			a.count(a.chunks[c[i]], level+1, st)
		}
	}
}
