//go:build !(linux && rawvec_mmap) && !(cgo && rawvec_cgo)

package rawvec

import (
	"reflect"
	"unsafe"
)

const (
	backendName = "heap"
	offHeap     = false
)

var backend allocator = heapAllocator{}

// heapAllocator hands out typed Go arrays so the garbage collector
// traces any pointers stored in the slots.
type heapAllocator struct{}

func (heapAllocator) allocate(l Layout) (unsafe.Pointer, error) {
	return reflect.New(reflect.ArrayOf(l.Slots, l.Elem)).UnsafePointer(), nil
}

// reallocate never extends in place; it copies into a fresh array with
// write barriers and leaves the old one to the collector.
func (h heapAllocator) reallocate(p unsafe.Pointer, from, to Layout) (unsafe.Pointer, error) {
	q, err := h.allocate(to)
	if err != nil {
		return nil, err
	}
	reflect.Copy(reflect.SliceAt(to.Elem, q, to.Slots), reflect.SliceAt(from.Elem, p, from.Slots))
	return q, nil
}

func (heapAllocator) deallocate(unsafe.Pointer, Layout) error {
	return nil
}
