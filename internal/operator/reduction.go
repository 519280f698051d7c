package operator

import (
	"fmt"

	"github.com/odl-go/odl/internal/space"
)

// Reduction sums the results of several operators applied to the
// components of a tuple: out = sum_i ops[i](x[i]). It is the formal
// adjoint of Broadcast over the same operators.
type Reduction[T space.DType] struct {
	ops    []ElOp[T]
	domain *space.Power[T]
	rng    *space.Space[T]
}

// NewReduction creates a reduction over one or more operators.
func NewReduction[T space.DType](ops ...ElOp[T]) (*Reduction[T], error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("reduction needs at least one operator")
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
	return &Reduction[T]{ops: append([]ElOp[T](nil), ops...), domain: domain, rng: ranBase}, nil
}

func (r *Reduction[T]) Domain() space.Set { return r.domain }

func (r *Reduction[T]) Range() space.Set { return r.rng }

func (r *Reduction[T]) Call(x space.Tuple[T]) (*space.Element[T], error) {
	out := r.rng.Zero()
	if err := r.Apply(x, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Reduction[T]) Apply(x space.Tuple[T], out *space.Element[T]) error {
	if !r.domain.Contains(x) {
		return fmt.Errorf("%w: %s", ErrNotInDomain, r.domain)
	}
	if !r.rng.Contains(out) {
		return fmt.Errorf("%w: %s", ErrNotInRange, r.rng)
	}
	tmp := r.rng.Zero()
	for i, op := range r.ops {
		if i == 0 {
			if err := op.Apply(x[0], out); err != nil {
				return err
			}
			continue
		}
		if err := op.Apply(x[i], tmp); err != nil {
			return err
		}
		if err := out.Lincomb(1, out, 1, tmp); err != nil {
			return err
		}
	}
	return nil
}

// Adjoint of a reduction is the broadcast of the entry adjoints.
func (r *Reduction[T]) Adjoint() (Operator[*space.Element[T], space.Tuple[T]], error) {
	adjs := make([]ElOp[T], len(r.ops))
	for i, op := range r.ops {
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
	return NewBroadcast(adjs...)
}

// Derivative is the reduction of the entry derivatives at the
// matching components of x.
func (r *Reduction[T]) Derivative(x space.Tuple[T]) (Operator[space.Tuple[T], *space.Element[T]], error) {
	if !r.domain.Contains(x) {
		return nil, fmt.Errorf("%w: %s", ErrNotInDomain, r.domain)
	}
	derivs := make([]ElOp[T], len(r.ops))
	for i, op := range r.ops {
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
	return NewReduction(derivs...)
}

func (r *Reduction[T]) String() string {
	return fmt.Sprintf("reduction(%d)", len(r.ops))
}
