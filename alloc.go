package rawvec

import "unsafe"

// allocator is the raw memory primitive behind a Vec. Exactly one
// implementation is compiled in, selected by build tags:
//
//	(default)     Go heap, typed blocks visible to the garbage collector
//	rawvec_mmap   anonymous mmap, grown with mremap (linux only)
//	rawvec_cgo    C malloc/realloc/free
type allocator interface {
	// allocate returns a block for l, aligned to l.Align.
	allocate(l Layout) (unsafe.Pointer, error)
	// reallocate returns a block for to holding the first from.Size bytes
	// of p. On success p must no longer be used; on failure p is untouched.
	reallocate(p unsafe.Pointer, from, to Layout) (unsafe.Pointer, error)
	// deallocate frees a block previously returned for l.
	deallocate(p unsafe.Pointer, l Layout) error
}

// Backend returns the name of the compiled-in allocator backend.
func Backend() string {
	return backendName
}
