package bigarr

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// span is one anonymous mapping shared by a batch of chunks. The mapping is
// unmapped as a whole once every chunk in it has been released.
type span struct {
	mem  mmap.MMap
	dead []bool
	live int
}

type spanRef struct {
	span *span
	idx  int
}

// MmapAllocator hands out chunks from anonymous memory mappings. A single Alloc
// call maps all requested chunks at once, Release frees them one at a time.
type MmapAllocator struct {
	owners  map[uintptr]spanRef
	verify  bool
	perPage int
	stats   AllocStats
}

// NewMmapAllocator returns a new MmapAllocator. With verifyZero set every fresh
// mapping is scanned and rejected unless it reads back as zero.
func NewMmapAllocator(verifyZero bool) *MmapAllocator {
	perPage := pageSize() / ChunkBytes
	if perPage < 1 {
		perPage = 1
	}
	return &MmapAllocator{
		owners:  make(map[uintptr]spanRef),
		verify:  verifyZero,
		perPage: perPage,
	}
}

func chunkAddr(c *Chunk) uintptr {
	return uintptr(unsafe.Pointer(c))
}

// Alloc maps n contiguous chunks in one call.
func (m *MmapAllocator) Alloc(n int) ([]*Chunk, error) {
	if n <= 0 {
		return nil, nil
	}

	mem, err := mmap.MapRegion(nil, n*ChunkBytes, mapProt, mmap.ANON, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %d chunks: %v", ErrMapFailed, n, err)
	}

	chunks := make([]*Chunk, n)
	for i := range chunks {
		chunks[i] = (*Chunk)(unsafe.Pointer(&mem[i*ChunkBytes]))
	}

	if m.verify {
		for i, c := range chunks {
			if !c.isZero() {
				_ = mem.Unmap()
				return nil, fmt.Errorf("%w: chunk %d of %d", ErrDirtyChunk, i, n)
			}
		}
	}

	s := &span{
		mem:  mem,
		dead: make([]bool, n),
		live: n,
	}
	for i, c := range chunks {
		m.owners[chunkAddr(c)] = spanRef{span: s, idx: i}
	}

	m.stats.Allocs += uint64(n)
	m.stats.Batches++
	m.stats.Mappings++

	return chunks, nil
}

// Release frees one chunk. The OS pages behind it are returned as soon as no
// live chunk shares them, the mapping itself goes away with its last chunk.
func (m *MmapAllocator) Release(c *Chunk) error {
	if c == nil {
		return ErrUnknownChunk
	}
	ref, ok := m.owners[chunkAddr(c)]
	if !ok {
		return ErrUnknownChunk
	}

	s := ref.span
	if s.dead[ref.idx] {
		return ErrDoubleRelease
	}
	s.dead[ref.idx] = true
	s.live--
	m.stats.Releases++

	if s.live == 0 {
		return m.unmap(s)
	}

	// hand back the page if every chunk on it is dead
	var (
		first = ref.idx / m.perPage * m.perPage
		last  = first + m.perPage
	)
	if last > len(s.dead) {
		last = len(s.dead)
	}
	for i := first; i < last; i++ {
		if !s.dead[i] {
			return nil
		}
	}
	if err := adviseFree(s.mem[first*ChunkBytes : last*ChunkBytes]); err != nil {
		return fmt.Errorf("bigarr: release page: %w", err)
	}
	return nil
}

func (m *MmapAllocator) unmap(s *span) error {
	for i := range s.dead {
		delete(m.owners, chunkAddr((*Chunk)(unsafe.Pointer(&s.mem[i*ChunkBytes]))))
	}
	m.stats.Mappings--
	if err := s.mem.Unmap(); err != nil {
		return fmt.Errorf("%w: unmap: %v", ErrMapFailed, err)
	}
	return nil
}

// Stats returns the allocator counters.
func (m *MmapAllocator) Stats() AllocStats {
	return m.stats
}

// Close unmaps every mapping that still has live chunks.
func (m *MmapAllocator) Close() error {
	seen := make(map[*span]struct{})
	for _, ref := range m.owners {
		seen[ref.span] = struct{}{}
	}

	var errs []error
	for s := range seen {
		m.stats.Releases += uint64(s.live)
		s.live = 0
		if err := m.unmap(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
