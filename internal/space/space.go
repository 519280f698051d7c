package space

import "fmt"

// Space is a real vector space of fixed shape with elementwise
// multiplication, i.e. an algebra. Elements are flat scalar slices
// interpreted in row-major order.
//
// Every element created by a space records the space as its owner;
// Contains checks ownership identity, so elements of two spaces with
// equal shapes are still distinct.
//
// Example:
//
//	r3 := space.Rn[float64](3)
//	x, _ := r3.Element([]float64{1, 2, 3})
//	y := r3.Zero()
type Space[T DType] struct {
	shape Shape
	dtype DataType
}

// NewSpace creates a space whose elements have the given shape.
func NewSpace[T DType](shape Shape) (*Space[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	var dummy T
	return &Space[T]{
		shape: shape.Clone(),
		dtype: inferDataType(dummy),
	}, nil
}

// Rn creates the n-dimensional real space R^n.
// Panics if n <= 0; dimension is a compile-site constant in practice.
func Rn[T DType](n int) *Space[T] {
	s, err := NewSpace[T](Shape{n})
	if err != nil {
		panic(err)
	}
	return s
}

// Shape returns the shape of the space's elements.
func (s *Space[T]) Shape() Shape { return s.shape }

// DType returns the scalar type of the space's elements.
func (s *Space[T]) DType() DataType { return s.dtype }

// NumElements returns the number of scalar entries per element.
func (s *Space[T]) NumElements() int { return s.shape.NumElements() }

// Contains reports whether v is an element owned by this space.
func (s *Space[T]) Contains(v any) bool {
	el, ok := v.(*Element[T])
	return ok && el != nil && el.space == s
}

// Zero returns a new zero element of the space.
func (s *Space[T]) Zero() *Element[T] {
	return &Element[T]{
		space: s,
		data:  make([]T, s.NumElements()),
	}
}

// Element creates an element from a data slice. The data is copied.
func (s *Space[T]) Element(data []T) (*Element[T], error) {
	if len(data) != s.NumElements() {
		return nil, fmt.Errorf("%w: shape %v requires %d entries, got %d",
			ErrShapeMismatch, s.shape, s.NumElements(), len(data))
	}
	el := s.Zero()
	copy(el.data, data)
	return el, nil
}

// Full returns a new element with every entry set to value.
func (s *Space[T]) Full(value T) *Element[T] {
	el := s.Zero()
	for i := range el.data {
		el.data[i] = value
	}
	return el
}

// String returns a human-readable description of the space.
func (s *Space[T]) String() string {
	if len(s.shape) == 1 {
		return fmt.Sprintf("Rn(%d, %s)", s.shape[0], s.dtype)
	}
	return fmt.Sprintf("Space(%v, %s)", s.shape, s.dtype)
}
