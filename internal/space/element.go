package space

import (
	"fmt"
	"math"
)

// Element is a mutable value container belonging to exactly one space.
// Mutation happens only through explicit operations (Lincomb, Assign,
// Scale, Multiply, Set); arithmetic between elements of different
// spaces is rejected.
//
// Elements are caller-owned: the library never retains or mutates an
// element behind the caller's back, and no internal locking is done.
type Element[T DType] struct {
	space *Space[T]
	data  []T
}

// Space returns the owning space.
func (e *Element[T]) Space() *Space[T] { return e.space }

// Shape returns the element's shape.
func (e *Element[T]) Shape() Shape { return e.space.shape }

// Data returns a zero-copy view of the element's entries.
//
// WARNING: Modifications to the returned slice modify the element.
func (e *Element[T]) Data() []T { return e.data }

// At returns the entry at flat index i.
// Panics if i is out of bounds.
func (e *Element[T]) At(i int) T {
	if i < 0 || i >= len(e.data) {
		panic(fmt.Sprintf("index %d out of bounds for element of size %d", i, len(e.data)))
	}
	return e.data[i]
}

// Set sets the entry at flat index i.
// Panics if i is out of bounds.
func (e *Element[T]) Set(i int, value T) {
	if i < 0 || i >= len(e.data) {
		panic(fmt.Sprintf("index %d out of bounds for element of size %d", i, len(e.data)))
	}
	e.data[i] = value
}

// sameSpace rejects operands from other spaces.
func (e *Element[T]) sameSpace(others ...*Element[T]) error {
	for _, o := range others {
		if o.space != e.space {
			return fmt.Errorf("%w: have %s, want %s", ErrSpaceMismatch, o.space, e.space)
		}
	}
	return nil
}

// Lincomb computes the in-place linear combination e = a*x + b*y.
// x and y may alias e.
func (e *Element[T]) Lincomb(a T, x *Element[T], b T, y *Element[T]) error {
	if err := e.sameSpace(x, y); err != nil {
		return err
	}
	for i := range e.data {
		e.data[i] = a*x.data[i] + b*y.data[i]
	}
	return nil
}

// Assign copies x into e.
func (e *Element[T]) Assign(x *Element[T]) error {
	if err := e.sameSpace(x); err != nil {
		return err
	}
	copy(e.data, x.data)
	return nil
}

// Scale multiplies every entry of e by a in place.
func (e *Element[T]) Scale(a T) {
	for i := range e.data {
		e.data[i] *= a
	}
}

// Multiply computes the in-place elementwise product e = e * x.
// This is the algebra operation of the space.
func (e *Element[T]) Multiply(x *Element[T]) error {
	if err := e.sameSpace(x); err != nil {
		return err
	}
	for i := range e.data {
		e.data[i] *= x.data[i]
	}
	return nil
}

// Inner returns the Euclidean inner product <e, x>.
func (e *Element[T]) Inner(x *Element[T]) (T, error) {
	if err := e.sameSpace(x); err != nil {
		return 0, err
	}
	var sum T
	for i := range e.data {
		sum += e.data[i] * x.data[i]
	}
	return sum, nil
}

// Norm returns the Euclidean norm of e.
func (e *Element[T]) Norm() T {
	var sum float64
	for _, v := range e.data {
		sum += float64(v) * float64(v)
	}
	return T(math.Sqrt(sum))
}

// Clone returns a deep copy of e in the same space.
func (e *Element[T]) Clone() *Element[T] {
	out := e.space.Zero()
	copy(out.data, e.data)
	return out
}

// Equal reports exact entrywise equality with x.
// Elements of different spaces are never equal.
func (e *Element[T]) Equal(x *Element[T]) bool {
	if x == nil || x.space != e.space {
		return false
	}
	for i := range e.data {
		if e.data[i] != x.data[i] {
			return false
		}
	}
	return true
}

// AllClose reports entrywise equality with x up to tol.
func (e *Element[T]) AllClose(x *Element[T], tol float64) bool {
	if x == nil || x.space != e.space {
		return false
	}
	for i := range e.data {
		if math.Abs(float64(e.data[i])-float64(x.data[i])) > tol {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the element.
func (e *Element[T]) String() string {
	return fmt.Sprintf("%s.element(%v)", e.space, e.data)
}
