//go:build linux && rawvec_mmap && !(cgo && rawvec_cgo)

package rawvec

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	backendName = "mmap"
	offHeap     = true
)

var backend allocator = mmapAllocator{}

// mmapAllocator keeps slots in anonymous private mappings outside the Go heap.
type mmapAllocator struct{}

func (mmapAllocator) allocate(l Layout) (unsafe.Pointer, error) {
	data, err := unix.Mmap(-1, 0, int(l.Size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(&data[0]), nil
}

// reallocate lets the kernel extend the mapping or move its pages.
func (mmapAllocator) reallocate(p unsafe.Pointer, from, to Layout) (unsafe.Pointer, error) {
	data, err := unix.Mremap(mapped(p, from), int(to.Size), unix.MREMAP_MAYMOVE)
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(&data[0]), nil
}

func (mmapAllocator) deallocate(p unsafe.Pointer, l Layout) error {
	return unix.Munmap(mapped(p, l))
}

// mapped rebuilds the slice unix.Mmap returned for l; the unix package
// tracks live mappings by their last byte.
func mapped(p unsafe.Pointer, l Layout) []byte {
	return unsafe.Slice((*byte)(p), l.Size)
}
