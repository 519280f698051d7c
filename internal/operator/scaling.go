package operator

import (
	"fmt"

	"github.com/odl-go/odl/internal/space"
)

// Scaling multiplies every element of a space by a fixed scalar.
// It is linear and self-adjoint; domain and range are the space itself.
//
// Example:
//
//	r3 := space.Rn[float64](3)
//	op := operator.NewScaling(r3, 2)
//	x, _ := r3.Element([]float64{1, 2, 3})
//	y, _ := op.Call(x) // [2, 4, 6]
type Scaling[T space.DType] struct {
	space  *space.Space[T]
	scalar T
}

// NewScaling creates a scaling operator on the given space.
func NewScaling[T space.DType](s *space.Space[T], scalar T) *Scaling[T] {
	return &Scaling[T]{space: s, scalar: scalar}
}

// Scalar returns the scaling factor.
func (op *Scaling[T]) Scalar() T { return op.scalar }

// Domain returns the space the operator acts on.
func (op *Scaling[T]) Domain() space.Set { return op.space }

// Range returns the space the operator acts on.
func (op *Scaling[T]) Range() space.Set { return op.space }

// Call returns a new element equal to scalar * x.
func (op *Scaling[T]) Call(x *space.Element[T]) (*space.Element[T], error) {
	if !op.space.Contains(x) {
		return nil, fmt.Errorf("%w: %s", ErrNotInDomain, op.space)
	}
	out := x.Clone()
	out.Scale(op.scalar)
	return out, nil
}

// Apply writes scalar * x into out.
func (op *Scaling[T]) Apply(x, out *space.Element[T]) error {
	if !op.space.Contains(x) {
		return fmt.Errorf("%w: %s", ErrNotInDomain, op.space)
	}
	if !op.space.Contains(out) {
		return fmt.Errorf("%w: %s", ErrNotInRange, op.space)
	}
	return out.Lincomb(op.scalar, x, 0, x)
}

// Inverse returns scaling by 1/scalar.
// Fails with ErrZeroScalar if the scalar is zero.
func (op *Scaling[T]) Inverse() (Operator[*space.Element[T], *space.Element[T]], error) {
	if op.scalar == 0 {
		return nil, ErrZeroScalar
	}
	return NewScaling(op.space, 1/op.scalar), nil
}

// Adjoint returns the operator itself: scaling is self-adjoint.
func (op *Scaling[T]) Adjoint() (Operator[*space.Element[T], *space.Element[T]], error) {
	return op, nil
}

// Derivative returns the operator itself: scaling is linear.
func (op *Scaling[T]) Derivative(*space.Element[T]) (Operator[*space.Element[T], *space.Element[T]], error) {
	return op, nil
}

// String returns a human-readable representation, e.g. "2*I".
func (op *Scaling[T]) String() string {
	return fmt.Sprintf("%v*I", op.scalar)
}

// Identity copies elements of a space unchanged. It is scaling by one
// and shares all of Scaling's capabilities.
type Identity[T space.DType] struct {
	*Scaling[T]
}

// NewIdentity creates the identity operator on the given space.
func NewIdentity[T space.DType](s *space.Space[T]) *Identity[T] {
	return &Identity[T]{Scaling: NewScaling[T](s, 1)}
}

// String returns "I".
func (op *Identity[T]) String() string { return "I" }
