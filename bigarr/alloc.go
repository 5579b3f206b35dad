package bigarr

import "errors"

var (
	// ErrMapFailed is returned when the OS refuses an anonymous mapping.
	ErrMapFailed = errors.New("bigarr: memory mapping failed")
	// ErrDirtyChunk is returned when fresh chunk memory is not zero-filled.
	ErrDirtyChunk = errors.New("bigarr: allocated chunk is not zeroed")
	// ErrShortAlloc is returned when an allocator hands out fewer chunks than requested.
	ErrShortAlloc = errors.New("bigarr: allocator returned too few chunks")
	// ErrUnknownChunk is returned when releasing a chunk the allocator does not own.
	ErrUnknownChunk = errors.New("bigarr: chunk not owned by allocator")
	// ErrDoubleRelease is returned when a chunk is released twice.
	ErrDoubleRelease = errors.New("bigarr: chunk released twice")
)

// Allocator supplies and releases chunk storage.
//
// Alloc returns n zero-filled chunks. Release frees exactly one chunk, no matter
// how many chunks were handed out together with it.
type Allocator interface {
	Alloc(n int) ([]*Chunk, error)
	Release(c *Chunk) error
	Stats() AllocStats
	Close() error
}

// AllocStats holds allocator counters.
type AllocStats struct {
	Allocs   uint64 // chunks handed out
	Releases uint64 // chunks released
	Batches  uint64 // calls to Alloc
	Mappings uint64 // OS mappings currently held (mmap only)
}

// Live returns the number of chunks handed out and not yet released.
func (s AllocStats) Live() uint64 {
	return s.Allocs - s.Releases
}
