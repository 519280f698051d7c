package operator

import (
	"fmt"

	"github.com/odl-go/odl/internal/space"
)

// Multiply computes the elementwise product out = x * y for an
// ordered pair (x, y). This requires the space to be an algebra;
// spaces here carry elementwise multiplication, so the precondition
// is surfaced by the element operation rather than validated by the
// operator.
//
// Example:
//
//	r3 := space.Rn[float64](3)
//	op := operator.NewMultiply(r3)
//	z := r3.Zero()
//	op.Apply(space.Pair[float64]{A: x, B: y}, z) // z = x .* y
type Multiply[T space.DType] struct {
	domain *space.Product[T]
	rng    *space.Space[T]
}

// NewMultiply creates the elementwise-multiplication operator on the
// given space.
func NewMultiply[T space.DType](s *space.Space[T]) *Multiply[T] {
	return &Multiply[T]{
		domain: space.NewProduct(s, s),
		rng:    s,
	}
}

// Domain returns the product space × space.
func (op *Multiply[T]) Domain() space.Set { return op.domain }

// Range returns the underlying space.
func (op *Multiply[T]) Range() space.Set { return op.rng }

// Call returns a new element equal to x.A * x.B.
func (op *Multiply[T]) Call(x space.Pair[T]) (*space.Element[T], error) {
	out := op.rng.Zero()
	if err := op.Apply(x, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Apply writes the elementwise product x.A * x.B into out.
func (op *Multiply[T]) Apply(x space.Pair[T], out *space.Element[T]) error {
	if !op.domain.Contains(x) {
		return fmt.Errorf("%w: %s", ErrNotInDomain, op.domain)
	}
	if !op.rng.Contains(out) {
		return fmt.Errorf("%w: %s", ErrNotInRange, op.rng)
	}
	if err := out.Assign(x.B); err != nil {
		return err
	}
	return out.Multiply(x.A)
}

// String returns "x * y".
func (op *Multiply[T]) String() string { return "x * y" }
