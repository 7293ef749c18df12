package rawvec

import (
	"fmt"
	"math"
	"math/bits"
	"reflect"
)

// initialCapacity is the slot count of the first allocation.
const initialCapacity = 4

// Layout describes a block holding Slots contiguous elements.
// The same Layout that produced a block is used to grow and free it.
type Layout struct {
	Elem     reflect.Type
	ElemSize uintptr
	Align    uintptr
	Slots    int
	Size     uintptr // ElemSize * Slots
}

// arrayLayout returns the layout of a block of n elements of T.
func arrayLayout[T any](n int) (Layout, error) {
	elem := reflect.TypeFor[T]()
	size := elem.Size()
	align := uintptr(elem.Align())

	if size == 0 {
		return Layout{}, ErrZeroSized
	}
	if align == 0 || align&(align-1) != 0 {
		return Layout{}, fmt.Errorf("%w: alignment %d of %s is not a power of two", ErrLayout, align, elem)
	}
	if n < 0 {
		return Layout{}, fmt.Errorf("%w: negative slot count %d", ErrLayout, n)
	}
	hi, total := bits.Mul(uint(n), uint(size))
	if hi != 0 {
		return Layout{}, fmt.Errorf("%w: %d x %d bytes", ErrCapacityOverflow, n, size)
	}
	if total > math.MaxInt {
		return Layout{}, fmt.Errorf("%w: %d bytes exceeds address space", ErrLayout, total)
	}
	if offHeap && hasPointers(elem) {
		return Layout{}, fmt.Errorf("%w: %s holds Go pointers and cannot live in %s memory", ErrLayout, elem, backendName)
	}

	return Layout{
		Elem:     elem,
		ElemSize: size,
		Align:    align,
		Slots:    n,
		Size:     uintptr(total),
	}, nil
}

// nextCapacity returns the slot count after growing from c.
func nextCapacity(c int) (int, error) {
	if c == 0 {
		return initialCapacity, nil
	}
	if c > math.MaxInt/2 {
		return 0, fmt.Errorf("%w: cannot double %d", ErrCapacityOverflow, c)
	}
	return c * 2, nil
}

// slotOffset returns the byte offset of slot index.
func slotOffset(index int, size uintptr) (uintptr, error) {
	if index < 0 {
		return 0, fmt.Errorf("%w: negative index %d", ErrOffsetOverflow, index)
	}
	hi, off := bits.Mul(uint(index), uint(size))
	if hi != 0 || off >= math.MaxInt {
		return 0, fmt.Errorf("%w: slot %d of %d bytes", ErrOffsetOverflow, index, size)
	}
	return uintptr(off), nil
}

// hasPointers reports whether values of t contain anything the garbage
// collector must trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
