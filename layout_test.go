package rawvec

import (
	"math"
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayLayout(t *testing.T) {
	l, err := arrayLayout[int64](4)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeFor[int64](), l.Elem)
	assert.Equal(t, uintptr(8), l.ElemSize)
	assert.Equal(t, unsafe.Alignof(int64(0)), l.Align)
	assert.Equal(t, 4, l.Slots)
	assert.Equal(t, uintptr(32), l.Size)

	type padded struct {
		a int8
		b int32
	}
	l, err = arrayLayout[padded](16)
	require.NoError(t, err)
	assert.Equal(t, unsafe.Sizeof(padded{}), l.ElemSize)
	assert.Equal(t, 16*unsafe.Sizeof(padded{}), l.Size)
}

func TestArrayLayoutErrors(t *testing.T) {
	_, err := arrayLayout[struct{}](4)
	assert.ErrorIs(t, err, ErrZeroSized)

	_, err = arrayLayout[int64](-1)
	assert.ErrorIs(t, err, ErrLayout)

	_, err = arrayLayout[int64](math.MaxInt)
	assert.ErrorIs(t, err, ErrCapacityOverflow)

	// Fits in a uint but not in the address space.
	_, err = arrayLayout[[2]uint8](math.MaxInt/2 + 1)
	assert.ErrorIs(t, err, ErrLayout)
}

func TestArrayLayoutPointerTypes(t *testing.T) {
	_, err := arrayLayout[string](4)
	if offHeap {
		assert.ErrorIs(t, err, ErrLayout)
	} else {
		assert.NoError(t, err)
	}

	_, err = arrayLayout[[4]float32](4)
	assert.NoError(t, err)
}

func TestNextCapacity(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 4},
		{4, 8},
		{8, 16},
		{1024, 2048},
		{math.MaxInt / 2, math.MaxInt/2 + math.MaxInt/2},
	}

	for _, tt := range tests {
		got, err := nextCapacity(tt.in)
		require.NoError(t, err, "nextCapacity(%d)", tt.in)
		assert.Equal(t, tt.want, got, "nextCapacity(%d)", tt.in)
	}

	_, err := nextCapacity(math.MaxInt/2 + 1)
	assert.ErrorIs(t, err, ErrCapacityOverflow)
	_, err = nextCapacity(math.MaxInt)
	assert.ErrorIs(t, err, ErrCapacityOverflow)
}

func TestSlotOffset(t *testing.T) {
	off, err := slotOffset(0, 8)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0), off)

	off, err = slotOffset(3, 8)
	require.NoError(t, err)
	assert.Equal(t, uintptr(24), off)

	_, err = slotOffset(-1, 8)
	assert.ErrorIs(t, err, ErrOffsetOverflow)

	_, err = slotOffset(math.MaxInt, 8)
	assert.ErrorIs(t, err, ErrOffsetOverflow)

	_, err = slotOffset(math.MaxInt, 1)
	assert.ErrorIs(t, err, ErrOffsetOverflow)
}

func TestHasPointers(t *testing.T) {
	type flat struct {
		a, b int64
		c    [3]float32
	}
	type nested struct {
		f flat
		s []int
	}

	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"int", reflect.TypeFor[int](), false},
		{"float64", reflect.TypeFor[float64](), false},
		{"flat struct", reflect.TypeFor[flat](), false},
		{"array of ints", reflect.TypeFor[[8]int](), false},
		{"empty pointer array", reflect.TypeFor[[0]*int](), false},
		{"string", reflect.TypeFor[string](), true},
		{"pointer", reflect.TypeFor[*int](), true},
		{"unsafe pointer", reflect.TypeFor[unsafe.Pointer](), true},
		{"slice", reflect.TypeFor[[]byte](), true},
		{"map", reflect.TypeFor[map[int]int](), true},
		{"chan", reflect.TypeFor[chan int](), true},
		{"func", reflect.TypeFor[func()](), true},
		{"interface", reflect.TypeFor[any](), true},
		{"pointer array", reflect.TypeFor[[2]*int](), true},
		{"nested struct", reflect.TypeFor[nested](), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasPointers(tt.typ))
		})
	}
}
