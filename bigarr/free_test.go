package bigarr

import (
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClose_ReleasesEverything(t *testing.T) {
	t.Parallel()

	for _, b := range backends {
		b := b

		t.Run(b.Name, func(t *testing.T) {
			t.Parallel()

			var (
				arr  = newArray(t, b.Config)
				fake = gofakeit.New(2024)
			)

			for i := 0; i < 2000; i++ {
				arr.Set(fake.Uint64(), fake.Uint64())
				*arr.Index2(fake.Uint32(), fake.Uint32()) = 1
			}
			require.NoError(t, arr.CopyOut(0xFFFFF000, make([]uint64, 10_000)))

			// leaf values that look like handles must not be followed
			for key := uint64(0); key < ChunkSize; key++ {
				arr.Set(key, key+1)
			}

			var (
				chunks = arr.Stats().Chunks
				alloc  = arr.Allocator()
			)

			st := alloc.Stats()
			require.Equal(t, uint64(chunks), st.Live())

			require.NoError(t, arr.Close())

			st = alloc.Stats()
			assert.Equal(t, st.Allocs, st.Releases)
			assert.Zero(t, st.Live())
			assert.Zero(t, st.Mappings)
			assert.Nil(t, arr.root)
			assert.Nil(t, arr.chunks)
		})
	}
}

// strictAllocator refuses to release some chunks and remembers the rest.
type strictAllocator struct {
	Allocator
	released map[*Chunk]int
	refuse   int
}

func (s *strictAllocator) Release(c *Chunk) error {
	s.released[c]++
	if s.refuse > 0 {
		s.refuse--
		return errInjected
	}
	return s.Allocator.Release(c)
}

func TestClose_ExactlyOnce(t *testing.T) {
	t.Parallel()

	strict := &strictAllocator{
		Allocator: NewHeapAllocator(),
		released:  map[*Chunk]int{},
	}

	arr, err := NewWithAllocator(strict)
	require.NoError(t, err)

	for key := uint64(0); key < 1<<12; key += 3 {
		arr.Set(key<<24, key)
	}
	chunks := arr.Stats().Chunks

	require.NoError(t, arr.Close())

	assert.Len(t, strict.released, chunks)
	for _, n := range strict.released {
		assert.Equal(t, 1, n)
	}
}

func TestClose_JoinsErrors(t *testing.T) {
	t.Parallel()

	strict := &strictAllocator{
		Allocator: NewHeapAllocator(),
		released:  map[*Chunk]int{},
		refuse:    2,
	}

	arr, err := NewWithAllocator(strict)
	require.NoError(t, err)

	arr.Set(1, 1)
	arr.Set(1<<56, 1)
	chunks := arr.Stats().Chunks

	err = arr.Close()
	assert.ErrorIs(t, err, errInjected)
	assert.Len(t, strict.released, chunks) // teardown went on
	assert.True(t, errors.Is(arr.Close(), ErrClosed))
}

func TestFree_LeafMisuse(t *testing.T) {
	t.Parallel()

	arr := newArray(t, nil)

	assert.Panics(t, func() {
		var errs []error
		arr.free(arr.root, 1, &errs)
	})
}
