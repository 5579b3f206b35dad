package bigarr

// HeapAllocator allocates every chunk separately on the Go heap.
type HeapAllocator struct {
	stats AllocStats
}

// NewHeapAllocator returns a new HeapAllocator.
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{}
}

// Alloc returns n independently allocated chunks.
func (h *HeapAllocator) Alloc(n int) ([]*Chunk, error) {
	chunks := make([]*Chunk, n)
	for i := range chunks {
		chunks[i] = new(Chunk)
	}
	h.stats.Allocs += uint64(n)
	h.stats.Batches++
	return chunks, nil
}

// Release drops a chunk. The memory goes back to the runtime once the array
// forgets it.
func (h *HeapAllocator) Release(c *Chunk) error {
	if c == nil {
		return ErrUnknownChunk
	}
	h.stats.Releases++
	return nil
}

// Stats returns the allocator counters.
func (h *HeapAllocator) Stats() AllocStats {
	return h.stats
}

// Close is a no-op for heap chunks.
func (h *HeapAllocator) Close() error {
	return nil
}
