package bigarr

// Backend selects where chunk memory comes from.
type Backend int

const (
	// BackendHeap allocates every chunk on the Go heap.
	BackendHeap Backend = iota
	// BackendMmap maps missing paths in batches of anonymous memory.
	BackendMmap
)

func (b Backend) String() string {
	switch b {
	case BackendHeap:
		return "heap"
	case BackendMmap:
		return "mmap"
	default:
		return "unknown"
	}
}

// Config holds array parameters.
type Config struct {
	Backend    Backend // chunk storage, default BackendHeap
	VerifyZero bool    // scan fresh mapped chunks for non-zero words (mmap only)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendHeap,
	}
}

// OrDefault returns DefaultConfig if c is nil, otherwise normalizes c.
func (c *Config) OrDefault() *Config {
	if c == nil {
		return DefaultConfig()
	}
	if c.Backend != BackendHeap && c.Backend != BackendMmap {
		c.Backend = BackendHeap
	}
	return c
}

// NewAllocator builds the allocator selected by the config.
func (c *Config) NewAllocator() Allocator {
	c = c.OrDefault()
	if c.Backend == BackendMmap {
		return NewMmapAllocator(c.VerifyZero)
	}
	return NewHeapAllocator()
}
