// Package rawvec implements a growable array on top of raw memory blocks.
//
// # Overview
//
// Vec[T] owns exactly one contiguous block sized for Cap elements and tracks
// how many of them are initialized. It does not use a Go slice for storage:
// the block comes from an allocator backend and is addressed by offset.
//
// # Basic Usage
//
//	v := rawvec.New[int]()
//	defer v.Release() // Drop elements and free the block
//
//	for i := 1; i <= 5; i++ {
//		v.Push(i)
//	}
//	p, ok := v.Get(3) // *p == 4, ok == true
//	_, ok = v.Get(10) // ok == false
//
// # Growth
//
// An empty Vec holds no allocation. The first Push allocates four slots and
// every Push into a full Vec doubles the capacity, so Cap is always 0 or a
// power of two starting at 4. Growing may move the block; pointers returned
// by Get must not be kept across a Push.
//
// # Teardown
//
// Release calls Drop on every element implementing Dropper, exactly once,
// then frees the block with the same layout it was allocated with.
// Go has no destructors: pair every New with a deferred Release.
//
// # Contract Violations
//
// Zero-sized element types, arithmetic overflow while sizing or addressing
// the block, and allocation failure are not recoverable conditions. They
// panic with an error wrapping ErrZeroSized, ErrCapacityOverflow,
// ErrOffsetOverflow, ErrAllocFailed or ErrLayout.
//
// # Backends
//
// The default backend uses typed Go heap arrays, so T may contain pointers.
// Build with -tags rawvec_mmap (linux) for anonymous mappings grown with
// mremap, or -tags rawvec_cgo for C malloc/realloc/free. Off-heap backends
// only accept pointer-free element types.
//
// # Thread Safety
//
// A Vec assumes a single owner. There is no internal locking.
package rawvec
