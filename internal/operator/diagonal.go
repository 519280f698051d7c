package operator

import (
	"fmt"

	"github.com/odl-go/odl/internal/space"
)

// Diagonal applies one operator per tuple component:
// out[i] = ops[i](x[i]). Equivalent to a block matrix with the given
// operators on the diagonal and zeros elsewhere, but without the
// zero-block bookkeeping.
type Diagonal[T space.DType] struct {
	ops    []ElOp[T]
	domain *space.Power[T]
	rng    *space.Power[T]
}

// NewDiagonal creates a diagonal operator over one or more operators.
func NewDiagonal[T space.DType](ops ...ElOp[T]) (*Diagonal[T], error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("diagonal needs at least one operator")
	}
	var domBase, ranBase *space.Space[T]
	for i, op := range ops {
		dom, ran, err := entrySpaces(op)
		if err != nil {
			return nil, fmt.Errorf("operator %d: %w", i, err)
		}
		if domBase == nil {
			domBase, ranBase = dom, ran
			continue
		}
		if dom != domBase {
			return nil, fmt.Errorf("operator %d: domain %s differs from %s", i, dom, domBase)
		}
		if ran != ranBase {
			return nil, fmt.Errorf("operator %d: range %s differs from %s", i, ran, ranBase)
		}
	}
	domain, err := space.NewPower(domBase, len(ops))
	if err != nil {
		return nil, err
	}
	rng, err := space.NewPower(ranBase, len(ops))
	if err != nil {
		return nil, err
	}
	return &Diagonal[T]{ops: append([]ElOp[T](nil), ops...), domain: domain, rng: rng}, nil
}

func (d *Diagonal[T]) Domain() space.Set { return d.domain }

func (d *Diagonal[T]) Range() space.Set { return d.rng }

func (d *Diagonal[T]) Call(x space.Tuple[T]) (space.Tuple[T], error) {
	out := d.rng.Zero()
	if err := d.Apply(x, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Diagonal[T]) Apply(x, out space.Tuple[T]) error {
	if !d.domain.Contains(x) {
		return fmt.Errorf("%w: %s", ErrNotInDomain, d.domain)
	}
	if !d.rng.Contains(out) {
		return fmt.Errorf("%w: %s", ErrNotInRange, d.rng)
	}
	for i, op := range d.ops {
		if err := op.Apply(x[i], out[i]); err != nil {
			return err
		}
	}
	return nil
}

// Adjoint is the diagonal of the entry adjoints.
func (d *Diagonal[T]) Adjoint() (Operator[space.Tuple[T], space.Tuple[T]], error) {
	adjs := make([]ElOp[T], len(d.ops))
	for i, op := range d.ops {
		lin, ok := op.(Linear[*space.Element[T], *space.Element[T]])
		if !ok {
			return nil, fmt.Errorf("%w: operator %d has no adjoint", ErrUnsupported, i)
		}
		adj, err := lin.Adjoint()
		if err != nil {
			return nil, err
		}
		adjs[i] = adj
	}
	return NewDiagonal(adjs...)
}

// Inverse is the diagonal of the entry inverses.
func (d *Diagonal[T]) Inverse() (Operator[space.Tuple[T], space.Tuple[T]], error) {
	invs := make([]ElOp[T], len(d.ops))
	for i, op := range d.ops {
		invertible, ok := op.(Invertible[*space.Element[T], *space.Element[T]])
		if !ok {
			return nil, fmt.Errorf("%w: operator %d has no inverse", ErrUnsupported, i)
		}
		inv, err := invertible.Inverse()
		if err != nil {
			return nil, err
		}
		invs[i] = inv
	}
	return NewDiagonal(invs...)
}

// Derivative is the diagonal of the entry derivatives at the matching
// components of x.
func (d *Diagonal[T]) Derivative(x space.Tuple[T]) (Operator[space.Tuple[T], space.Tuple[T]], error) {
	if !d.domain.Contains(x) {
		return nil, fmt.Errorf("%w: %s", ErrNotInDomain, d.domain)
	}
	derivs := make([]ElOp[T], len(d.ops))
	for i, op := range d.ops {
		diff, ok := op.(Differentiable[*space.Element[T], *space.Element[T]])
		if !ok {
			return nil, fmt.Errorf("%w: operator %d has no derivative", ErrUnsupported, i)
		}
		deriv, err := diff.Derivative(x[i])
		if err != nil {
			return nil, err
		}
		derivs[i] = deriv
	}
	return NewDiagonal(derivs...)
}

func (d *Diagonal[T]) String() string {
	return fmt.Sprintf("diag(%d)", len(d.ops))
}
