//go:build linux || darwin || freebsd

package bigarr

import (
	"github.com/edsrzf/mmap-go"
	"golang.org/x/sys/unix"
)

// private anonymous memory, so MADV_DONTNEED really drops the pages
const mapProt = mmap.COPY

func pageSize() int {
	return unix.Getpagesize()
}

// adviseFree hands the pages behind b back to the OS. The mapping stays valid
// and reads back as zero.
func adviseFree(b []byte) error {
	return unix.Madvise(b, unix.MADV_DONTNEED)
}
