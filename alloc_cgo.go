//go:build cgo && rawvec_cgo

package rawvec

// #include <stdlib.h>
import "C"

import (
	"errors"
	"unsafe"
)

const (
	backendName = "cgo"
	offHeap     = true
)

var backend allocator = cAllocator{}

var errOutOfMemory = errors.New("malloc returned NULL")

// cAllocator uses the C heap. malloc alignment covers every Go type.
type cAllocator struct{}

func (cAllocator) allocate(l Layout) (unsafe.Pointer, error) {
	p := C.malloc(C.size_t(l.Size))
	if p == nil {
		return nil, errOutOfMemory
	}
	return p, nil
}

func (cAllocator) reallocate(p unsafe.Pointer, _, to Layout) (unsafe.Pointer, error) {
	q := C.realloc(p, C.size_t(to.Size))
	if q == nil {
		return nil, errOutOfMemory
	}
	return q, nil
}

func (cAllocator) deallocate(p unsafe.Pointer, _ Layout) error {
	C.free(p)
	return nil
}
