// Package bitset is a sparse set of uint64 values kept as bits in a bigarr.Array.
//
// Value v is bit v&63 of word v>>6, so 16384 neighbouring values share a single
// leaf chunk.
package bitset

import (
	"github.com/hideo55/go-popcount"

	"github.com/aglyzov/go-bigarr/bigarr"
)

const (
	wordShift = 6
	wordMask  = 1<<wordShift - 1
)

type Set struct {
	words *bigarr.Array
	size  uint64
}

// New creates an empty set. Uses default config if cfg is nil.
func New(cfg *bigarr.Config) (*Set, error) {
	words, err := bigarr.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Set{words: words}, nil
}

func (t *Set) Len() uint64 {
	if t == nil {
		return 0
	}
	return t.size
}

// Has never allocates: a value on a path that was never created is absent.
func (t *Set) Has(val uint64) bool {
	if t == nil {
		return false
	}
	word, ok := t.words.Peek(val >> wordShift)
	return ok && word&(1<<(val&wordMask)) != 0
}

func (t *Set) Add(val uint64) (add bool) {
	var (
		word = t.words.Index(val >> wordShift)
		bit  = uint64(1) << (val & wordMask)
	)
	if *word&bit == 0 {
		*word |= bit
		t.size++
		add = true
	}
	return
}

func (t *Set) Remove(val uint64) (del bool) {
	if !t.Has(val) {
		return false
	}
	*t.words.Index(val>>wordShift) &^= 1 << (val & wordMask)
	t.size--
	return true
}

// Count returns the number of values in [lo, hi]. The covering words are read
// in bulk, which creates their chunks like any other array access.
func (t *Set) Count(lo, hi uint64) (uint64, error) {
	if t == nil || lo > hi {
		return 0, nil
	}

	var (
		first = lo >> wordShift
		last  = hi >> wordShift
		buf   = make([]uint64, 1024)
		cnt   uint64
	)

	for w := first; ; {
		n := uint64(len(buf))
		if last-w < n {
			n = last - w + 1
		}
		words := buf[:n]
		if err := t.words.CopyOut(w, words); err != nil {
			return 0, err
		}

		// trim the bits outside [lo, hi] in the edge words
		if w == first {
			words[0] &^= uint64(1)<<(lo&wordMask) - 1
		}
		if w+n-1 == last {
			words[n-1] &= ^uint64(0) >> (wordMask - hi&wordMask)
		}

		cnt += popcount.CountSlice(words)

		if w+n-1 == last {
			return cnt, nil
		}
		w += n
	}
}

// Close releases the underlying array.
func (t *Set) Close() error {
	return t.words.Close()
}
