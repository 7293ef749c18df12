package rawvec

import (
	"fmt"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// Metrics contains statistical information about a Vec.
type Metrics struct {
	Len           int     // Initialized elements
	Cap           int     // Allocated slots
	ElemSize      int     // Bytes per element
	Align         int     // Element alignment
	BytesInUse    int     // Len * ElemSize
	BytesReserved int     // Cap * ElemSize
	Grows         int     // Allocate/reallocate calls since the last Release
	Utilization   float64 // Len / Cap (0.0-1.0)
}

// Metrics returns a snapshot of the Vec's size and growth statistics.
func (v *Vec[T]) Metrics() Metrics {
	var zero T
	size := int(unsafe.Sizeof(zero))
	m := Metrics{
		Len:           v.len,
		Cap:           v.cap,
		ElemSize:      size,
		Align:         int(unsafe.Alignof(zero)),
		BytesInUse:    v.len * size,
		BytesReserved: v.cap * size,
		Grows:         v.grows,
	}
	if v.cap > 0 {
		m.Utilization = float64(v.len) / float64(v.cap)
	}
	return m
}

func (m Metrics) String() string {
	return fmt.Sprintf(
		"Vec{len: %d, cap: %d, elem: %dB/%d, in use: %s, reserved: %s, usage: %.1f%%, grows: %d}",
		m.Len,
		m.Cap,
		m.ElemSize,
		m.Align,
		humanize.IBytes(uint64(m.BytesInUse)),
		humanize.IBytes(uint64(m.BytesReserved)),
		m.Utilization*100,
		m.Grows,
	)
}
