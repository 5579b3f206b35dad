package bigarr

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by any operation on a closed array.
	ErrClosed = errors.New("bigarr: array is closed")
	// ErrKeyRange is returned when a bulk range runs past the last uint64 key.
	ErrKeyRange = errors.New("bigarr: key range overflows uint64")
)

// Array is a sparse uint64 -> uint64 array.
type Array struct {
	alloc  Allocator
	chunks []*Chunk // handle -> chunk; handle 0 marks an empty slot
	root   *Chunk
	closed bool
}

// New creates an array with the allocator selected by cfg.
// Uses default config if cfg is nil.
func New(cfg *Config) (*Array, error) {
	return NewWithAllocator(cfg.OrDefault().NewAllocator())
}

// NewWithAllocator creates an array whose chunks come from alloc.
// The array owns alloc from now on and closes it in Close.
func NewWithAllocator(alloc Allocator) (*Array, error) {
	a := &Array{
		alloc:  alloc,
		chunks: make([]*Chunk, 1, 64),
	}

	chunks, err := a.fetch(1)
	if err != nil {
		return nil, fmt.Errorf("bigarr: root chunk: %w", err)
	}
	a.root = chunks[0]

	return a, nil
}

// Allocator returns the allocator backing the array.
func (a *Array) Allocator() Allocator {
	return a.alloc
}

// fetch gets n chunks from the allocator and checks what it got.
func (a *Array) fetch(n int) ([]*Chunk, error) {
	chunks, err := a.alloc.Alloc(n)
	if err != nil {
		return nil, err
	}

	short := len(chunks) != n
	for _, c := range chunks {
		if c == nil {
			short = true
		}
	}
	if short {
		for _, c := range chunks {
			if c != nil {
				_ = a.alloc.Release(c)
			}
		}
		return nil, fmt.Errorf("%w: want %d, got %d", ErrShortAlloc, n, len(chunks))
	}

	return chunks, nil
}

// grow creates the missing tail below parent in a single allocation.
// sels[0] is the slot in parent, sels[i] the slot in the i-th new chunk.
// Nothing is linked unless the allocation succeeded.
func (a *Array) grow(parent *Chunk, sels []uint8) ([]*Chunk, error) {
	chain, err := a.fetch(len(sels))
	if err != nil {
		return nil, err
	}

	for i, c := range chain {
		a.chunks = append(a.chunks, c)
		parent[sels[i]] = uint64(len(a.chunks) - 1)
		parent = c
	}

	return chain, nil
}
