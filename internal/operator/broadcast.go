package operator

import (
	"fmt"

	"github.com/odl-go/odl/internal/space"
)

// Broadcast applies several operators to one input element:
// out[i] = ops[i](x). All operators must share a domain, and all
// ranges must coincide so the result lives in a homogeneous power.
type Broadcast[T space.DType] struct {
	ops    []ElOp[T]
	domain *space.Space[T]
	rng    *space.Power[T]
}

// NewBroadcast creates a broadcast over one or more operators.
func NewBroadcast[T space.DType](ops ...ElOp[T]) (*Broadcast[T], error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("broadcast needs at least one operator")
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
	rng, err := space.NewPower(ranBase, len(ops))
	if err != nil {
		return nil, err
	}
	return &Broadcast[T]{ops: append([]ElOp[T](nil), ops...), domain: domBase, rng: rng}, nil
}

func (b *Broadcast[T]) Domain() space.Set { return b.domain }

func (b *Broadcast[T]) Range() space.Set { return b.rng }

func (b *Broadcast[T]) Call(x *space.Element[T]) (space.Tuple[T], error) {
	out := b.rng.Zero()
	if err := b.Apply(x, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *Broadcast[T]) Apply(x *space.Element[T], out space.Tuple[T]) error {
	if !b.domain.Contains(x) {
		return fmt.Errorf("%w: %s", ErrNotInDomain, b.domain)
	}
	if !b.rng.Contains(out) {
		return fmt.Errorf("%w: %s", ErrNotInRange, b.rng)
	}
	for i, op := range b.ops {
		if err := op.Apply(x, out[i]); err != nil {
			return err
		}
	}
	return nil
}

// Adjoint of a broadcast is the reduction of the entry adjoints.
func (b *Broadcast[T]) Adjoint() (Operator[space.Tuple[T], *space.Element[T]], error) {
	adjs := make([]ElOp[T], len(b.ops))
	for i, op := range b.ops {
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
	return NewReduction(adjs...)
}

// Derivative is the broadcast of the entry derivatives at x.
func (b *Broadcast[T]) Derivative(x *space.Element[T]) (Operator[*space.Element[T], space.Tuple[T]], error) {
	if !b.domain.Contains(x) {
		return nil, fmt.Errorf("%w: %s", ErrNotInDomain, b.domain)
	}
	derivs := make([]ElOp[T], len(b.ops))
	for i, op := range b.ops {
		diff, ok := op.(Differentiable[*space.Element[T], *space.Element[T]])
		if !ok {
			return nil, fmt.Errorf("%w: operator %d has no derivative", ErrUnsupported, i)
		}
		deriv, err := diff.Derivative(x)
		if err != nil {
			return nil, err
		}
		derivs[i] = deriv
	}
	return NewBroadcast(derivs...)
}

func (b *Broadcast[T]) String() string {
	return fmt.Sprintf("broadcast(%d)", len(b.ops))
}
