package bigarr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected allocation failure")

// flakyAllocator wraps an allocator and fails once it is armed.
type flakyAllocator struct {
	Allocator
	armed bool
	short bool // hand out one chunk less instead of failing
}

func (f *flakyAllocator) Alloc(n int) ([]*Chunk, error) {
	if !f.armed {
		return f.Allocator.Alloc(n)
	}
	if f.short && n > 1 {
		chunks, err := f.Allocator.Alloc(n)
		if err != nil {
			return nil, err
		}
		_ = f.Allocator.Release(chunks[n-1])
		return chunks[:n-1], nil
	}
	return nil, errInjected
}

var backends = []*struct {
	Name   string
	Config *Config
}{
	{"heap", &Config{Backend: BackendHeap}},
	{"mmap", &Config{Backend: BackendMmap, VerifyZero: true}},
}

func newArray(t testing.TB, cfg *Config) *Array {
	t.Helper()

	arr, err := New(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		if !arr.closed {
			require.NoError(t, arr.Close())
		}
	})

	return arr
}
