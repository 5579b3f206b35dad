//go:build !(linux || darwin || freebsd)

package bigarr

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

const mapProt = mmap.RDWR

func pageSize() int {
	return os.Getpagesize()
}

// adviseFree is a no-op: pages are returned when the whole mapping goes away.
func adviseFree(b []byte) error {
	return nil
}
