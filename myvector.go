package gotraj

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"go.uber.org/zap"
)

// MaxElements is the largest size a MyVector may hold: one GiB of elements.
const MaxElements = (1 << 30) / int(unsafe.Sizeof(float32(0)))

// ErrOutOfBounds is returned by Lookup for an index outside [0, Size()).
var ErrOutOfBounds = errors.New("index out of bounds")

// MyVector is a growable float32 array. Writes past the end grow the buffer;
// reads past the end terminate the process. It is not safe for concurrent use.
type MyVector struct {
	values []float32
	size   int
}

func NewMyVector() *MyVector {
	return &MyVector{}
}

// newBuffer allocates zeroed vector storage.
var newBuffer = func(n int) []float32 {
	return make([]float32, n)
}

// NewMyVectorSized allocates n zeroed elements. A request above MaxElements or
// below zero is fatal.
func NewMyVectorSized(n int) *MyVector {
	if n < 0 {
		Logger().Fatal("invalid vector size", zap.Int("size", n))
	}
	if n > MaxElements {
		Logger().Fatal("requested vector size exceeds 1 GiB",
			zap.Int("size", n),
			zap.Int("max", MaxElements),
		)
	}
	return &MyVector{
		values: newBuffer(n),
		size:   n,
	}
}

// Clone returns a vector with its own copy of the elements.
func (v *MyVector) Clone() *MyVector {
	c := &MyVector{size: v.size}
	if v.values != nil {
		c.values = newBuffer(v.size)
		copy(c.values, v.values[:v.size])
	}
	return c
}

// Release drops the buffer and returns the vector to the empty state.
func (v *MyVector) Release() {
	v.values = nil
	v.size = 0
}

func (v *MyVector) Size() int {
	return v.size
}

func (v *MyVector) Cap() int {
	return cap(v.values)
}

// Set writes val at index. An index at or past Size grows the vector to
// max(index+1, 2*Size) elements, zero-filling the new tail. Growth is not
// bounded by MaxElements.
func (v *MyVector) Set(index int, val float32) {
	if index < 0 || index == math.MaxInt {
		Logger().Fatal("invalid vector index", zap.Int("index", index))
	}
	if index >= v.size {
		v.grow(grownSize(v.size, index))
	}
	v.values[index] = val
}

// grownSize is the size after a write at index on a vector of the given size.
// index must be below math.MaxInt.
func grownSize(size, index int) int {
	doubled := size * 2
	if doubled < size {
		doubled = math.MaxInt
	}
	return max(index+1, doubled)
}

func (v *MyVector) grow(newSize int) {
	values := newBuffer(newSize)
	copy(values, v.values[:v.size])
	v.values = values
	v.size = newSize
}

// At returns the element at index. An index outside [0, Size()) is fatal;
// use Lookup for a recoverable read.
func (v *MyVector) At(index int) float32 {
	if index < 0 || index >= v.size {
		Logger().Fatal("vector index out of range",
			zap.Int("index", index),
			zap.Int("size", v.size),
		)
	}
	return v.values[index]
}

func (v *MyVector) Lookup(index int) (float32, error) {
	if index < 0 || index >= v.size {
		return 0, fmt.Errorf("lookup %d in vector of size %d: %w", index, v.size, ErrOutOfBounds)
	}
	return v.values[index], nil
}

// Push appends val, growing the vector.
func (v *MyVector) Push(val float32) {
	v.Set(v.size, val)
}

// Values returns a copy of the elements.
func (v *MyVector) Values() []float32 {
	out := make([]float32, v.size)
	copy(out, v.values)
	return out
}
