package operator

import (
	"fmt"

	"github.com/odl-go/odl/internal/space"
)

// LinComb computes out = a*x + b*y for an ordered pair (x, y) of
// elements of the same space. Its domain is the Cartesian product
// space × space and its range is the space. It is linear; adjoint
// and inverse are not defined for it.
//
// Example:
//
//	r3 := space.Rn[float64](3)
//	op := operator.NewLinComb(r3, 1, 1)
//	z := r3.Zero()
//	op.Apply(space.Pair[float64]{A: x, B: y}, z) // z = x + y
type LinComb[T space.DType] struct {
	domain *space.Product[T]
	rng    *space.Space[T]
	a, b   T
}

// NewLinComb creates the linear-combination operator with
// coefficients a and b on the given space.
func NewLinComb[T space.DType](s *space.Space[T], a, b T) *LinComb[T] {
	return &LinComb[T]{
		domain: space.NewProduct(s, s),
		rng:    s,
		a:      a,
		b:      b,
	}
}

// Domain returns the product space × space.
func (op *LinComb[T]) Domain() space.Set { return op.domain }

// Range returns the underlying space.
func (op *LinComb[T]) Range() space.Set { return op.rng }

// Call returns a new element equal to a*x.A + b*x.B.
func (op *LinComb[T]) Call(x space.Pair[T]) (*space.Element[T], error) {
	out := op.rng.Zero()
	if err := op.Apply(x, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Apply writes a*x.A + b*x.B into out.
func (op *LinComb[T]) Apply(x space.Pair[T], out *space.Element[T]) error {
	if !op.domain.Contains(x) {
		return fmt.Errorf("%w: %s", ErrNotInDomain, op.domain)
	}
	if !op.rng.Contains(out) {
		return fmt.Errorf("%w: %s", ErrNotInRange, op.rng)
	}
	return out.Lincomb(op.a, x.A, op.b, x.B)
}

// String returns a human-readable representation, e.g. "1*x + 1*y".
func (op *LinComb[T]) String() string {
	return fmt.Sprintf("%v*x + %v*y", op.a, op.b)
}
