package rawvec

import (
	"fmt"
	"unsafe"
)

// Dropper is implemented by element types that own resources.
// Release calls Drop exactly once on every live element.
type Dropper interface {
	Drop()
}

// Vec is a growable array of T stored in a single raw block.
// Slots [0, Len) are initialized; the rest of the block is never read.
// Not goroutine-safe.
type Vec[T any] struct {
	ptr    unsafe.Pointer // first slot, nil while cap == 0
	len    int
	cap    int
	layout Layout // layout the block at ptr was obtained with
	grows  int
	alloc  allocator
}

// New returns an empty Vec. Nothing is allocated until the first Push.
// It panics with ErrZeroSized if T has size 0.
func New[T any]() *Vec[T] {
	return newVec[T](backend)
}

func newVec[T any](a allocator) *Vec[T] {
	mustSized[T]("New")
	return &Vec[T]{alloc: a}
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int {
	return v.len
}

// Cap returns the number of allocated slots.
func (v *Vec[T]) Cap() int {
	return v.cap
}

// Get returns a pointer to element index, or false if index is out of range.
// The pointer is invalidated by the next Push that grows the Vec.
func (v *Vec[T]) Get(index int) (*T, bool) {
	if index < 0 || index >= v.len {
		return nil, false
	}
	return v.slot(index), true
}

// Push appends item. The first Push allocates four slots; a Push into a
// full Vec doubles the capacity and moves the block if the backend must.
// Overflow and allocation failure panic and leave the Vec unchanged.
func (v *Vec[T]) Push(item T) {
	mustSized[T]("Push")
	if v.len == v.cap {
		v.grow()
	}

	off, err := slotOffset(v.len, v.layout.ElemSize)
	if err != nil {
		fatal("Push", err)
	}
	*(*T)(unsafe.Add(v.ptr, off)) = item
	v.len++
}

// Release drops every element, frees the block and leaves the Vec empty.
// It is safe to call more than once, and the Vec may be reused afterwards.
func (v *Vec[T]) Release() {
	if v.cap == 0 {
		return
	}

	var zero T
	for i := 0; i < v.len; i++ {
		p := v.slot(i)
		drop(p)
		*p = zero
	}

	if err := v.allocator().deallocate(v.ptr, v.layout); err != nil {
		fatal("Release", err)
	}
	v.ptr = nil
	v.len = 0
	v.cap = 0
	v.layout = Layout{}
	v.grows = 0
}

// grow moves to the next capacity. State is only written once the
// backend call has succeeded.
func (v *Vec[T]) grow() {
	newCap, err := nextCapacity(v.cap)
	if err != nil {
		fatal("Push", err)
	}
	l, err := arrayLayout[T](newCap)
	if err != nil {
		fatal("Push", err)
	}

	var p unsafe.Pointer
	if v.cap == 0 {
		p, err = v.allocator().allocate(l)
	} else {
		p, err = v.allocator().reallocate(v.ptr, v.layout, l)
	}
	if err != nil {
		fatal("Push", fmt.Errorf("%w: %d bytes: %w", ErrAllocFailed, l.Size, err))
	}
	if p == nil {
		fatal("Push", fmt.Errorf("%w: %d bytes: nil block", ErrAllocFailed, l.Size))
	}
	if uintptr(p)%l.Align != 0 {
		fatal("Push", fmt.Errorf("%w: block %#x not aligned to %d", ErrLayout, uintptr(p), l.Align))
	}

	v.ptr = p
	v.cap = newCap
	v.layout = l
	v.grows++
}

// slot returns the address of slot i, which must be below cap.
func (v *Vec[T]) slot(i int) *T {
	return (*T)(unsafe.Add(v.ptr, uintptr(i)*v.layout.ElemSize))
}

func (v *Vec[T]) allocator() allocator {
	if v.alloc == nil {
		return backend
	}
	return v.alloc
}

// drop runs the element's Drop method, whether declared on T or *T.
func drop[T any](p *T) {
	if d, ok := any(p).(Dropper); ok {
		d.Drop()
		return
	}
	if d, ok := any(*p).(Dropper); ok {
		d.Drop()
	}
}

func mustSized[T any](op string) {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		fatal(op, ErrZeroSized)
	}
}
