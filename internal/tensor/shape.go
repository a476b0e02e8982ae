package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative and that the element count
// fits in an int. Zero-sized dimensions are allowed; such tensors hold no
// elements.
func (s Shape) Validate() error {
	empty := false
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d", ErrInvalidShape, i, dim)
		}
		if dim == 0 {
			empty = true
		}
	}
	if empty {
		return nil
	}

	n := 1
	for _, dim := range s {
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: element count of %v overflows int", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides calculates row-major strides for the shape.
// stride[i] is the product of all dimensions after i.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Offset maps a coordinate to its index in the flat row-major buffer.
func (s Shape) Offset(coords ...int) (int, error) {
	if len(coords) != len(s) {
		return 0, fmt.Errorf("%w: got %d coordinates for rank %d", ErrIndexOutOfRange, len(coords), len(s))
	}

	offset := 0
	stride := 1
	for axis := len(s) - 1; axis >= 0; axis-- {
		c := coords[axis]
		if c < 0 || c >= s[axis] {
			return 0, fmt.Errorf("%w: coordinate %d on axis %d of shape %v", ErrIndexOutOfRange, c, axis, s)
		}
		offset += c * stride
		stride *= s[axis]
	}
	return offset, nil
}

// Coords is the inverse of Offset.
func (s Shape) Coords(offset int) ([]int, error) {
	if offset < 0 || offset >= s.NumElements() {
		return nil, fmt.Errorf("%w: offset %d for shape %v", ErrIndexOutOfRange, offset, s)
	}

	coords := make([]int, len(s))
	for axis := len(s) - 1; axis >= 0; axis-- {
		coords[axis] = offset % s[axis]
		offset /= s[axis]
	}
	return coords, nil
}

// String formats the shape as [d0 d1 ...].
func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}
