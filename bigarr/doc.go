// Package bigarr defines a sparse array indexed by the full uint64 range (or by
// a pair of uint32 coordinates) that stores uint64 values in 256-slot Chunks.
//
// The array is a fixed-depth trie:
//
//	depth:   1      2      3      4      5      6      7      8
//	       [root]-[inner]-[inner]-[inner]-[inner]-[inner]-[inner]-[leaf]
//	key:    b7     b6     b5     b4     b3     b2     b1     b0
//
// Every level consumes one byte of the key, most significant byte first, so keys
// that differ only in their low bytes share all the chunks above the leaf. Inner
// chunks keep child handles in their slots, leaf chunks keep raw values. Which
// view applies is decided by depth only.
//
// The 2D view addresses the same chunks as 16x16 tiles:
//
//	selector = col + 16*row    (one nibble of x and one of y per level)
//
// so a cell (x, y) is the cell of the linear key SpatialKey(x, y).
//
// Chunks come from an Allocator. HeapAllocator allocates every chunk on the Go
// heap, MmapAllocator maps a whole missing path in one anonymous mapping and still
// releases chunks one by one.
//
// Every access vivifies its path. Nothing is ever deleted except by Close.
// An Array is not safe for concurrent use.
package bigarr
