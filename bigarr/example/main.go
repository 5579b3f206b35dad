package main

import (
	"fmt"
	"os"

	"github.com/aglyzov/go-bigarr/bigarr"
)

func main() {
	arr, err := bigarr.New(&bigarr.Config{Backend: bigarr.BackendMmap})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	*arr.Index(1) = 42
	*arr.Index(2) = 7
	*arr.Index(1 << 60) = 99

	buf := make([]uint64, 4)
	if err := arr.CopyOut(0, buf); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("CopyOut(0, 4) -> %v\n", buf)

	*arr.Index2(5, 5) = 55
	*arr.Index2(5, 6) = 56

	tile, col, row, _ := arr.Tile(5, 6)
	fmt.Printf("Tile(5, 6)    -> col=%d row=%d val=%d\n", col, row, *tile.At(col, row))

	st := arr.Stats()
	fmt.Printf("chunks=%d bytes=%d per-depth=%v\n", st.Chunks, st.Bytes, st.PerDepth)
	fmt.Printf("alloc=%+v\n", st.Alloc)

	if err := arr.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	st = arr.Stats()
	fmt.Printf("after close: live=%d mappings=%d\n", st.Alloc.Live(), st.Alloc.Mappings)
}
