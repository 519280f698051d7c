package operator

import (
	"fmt"

	"github.com/odl-go/odl/internal/space"
)

// Projection picks a single component out of a power-space tuple.
// Its adjoint is the Embedding that places an element back at that
// component with zeros elsewhere.
type Projection[T space.DType] struct {
	domain *space.Power[T]
	index  int
}

// NewProjection creates the projection onto component index of pw.
func NewProjection[T space.DType](pw *space.Power[T], index int) (*Projection[T], error) {
	if index < 0 || index >= pw.N() {
		return nil, fmt.Errorf("projection index %d out of range for %s", index, pw)
	}
	return &Projection[T]{domain: pw, index: index}, nil
}

// Index returns the projected component index.
func (p *Projection[T]) Index() int { return p.index }

func (p *Projection[T]) Domain() space.Set { return p.domain }

func (p *Projection[T]) Range() space.Set { return p.domain.Base() }

func (p *Projection[T]) Call(x space.Tuple[T]) (*space.Element[T], error) {
	out := p.domain.Base().Zero()
	if err := p.Apply(x, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Projection[T]) Apply(x space.Tuple[T], out *space.Element[T]) error {
	if !p.domain.Contains(x) {
		return fmt.Errorf("%w: %s", ErrNotInDomain, p.domain)
	}
	if !p.domain.Base().Contains(out) {
		return fmt.Errorf("%w: %s", ErrNotInRange, p.domain.Base())
	}
	return out.Assign(x[p.index])
}

func (p *Projection[T]) Adjoint() (Operator[*space.Element[T], space.Tuple[T]], error) {
	return NewEmbedding(p.domain, p.index)
}

func (p *Projection[T]) Derivative(x space.Tuple[T]) (Operator[space.Tuple[T], *space.Element[T]], error) {
	if !p.domain.Contains(x) {
		return nil, fmt.Errorf("%w: %s", ErrNotInDomain, p.domain)
	}
	return p, nil
}

func (p *Projection[T]) String() string {
	return fmt.Sprintf("proj[%d]", p.index)
}

// Embedding places an element at one component of a power-space
// tuple, zeroing the others. Adjoint of Projection over the same
// power and index.
type Embedding[T space.DType] struct {
	rng   *space.Power[T]
	index int
}

// NewEmbedding creates the embedding into component index of pw.
func NewEmbedding[T space.DType](pw *space.Power[T], index int) (*Embedding[T], error) {
	if index < 0 || index >= pw.N() {
		return nil, fmt.Errorf("embedding index %d out of range for %s", index, pw)
	}
	return &Embedding[T]{rng: pw, index: index}, nil
}

// Index returns the target component index.
func (e *Embedding[T]) Index() int { return e.index }

func (e *Embedding[T]) Domain() space.Set { return e.rng.Base() }

func (e *Embedding[T]) Range() space.Set { return e.rng }

func (e *Embedding[T]) Call(x *space.Element[T]) (space.Tuple[T], error) {
	out := e.rng.Zero()
	if err := e.Apply(x, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Embedding[T]) Apply(x *space.Element[T], out space.Tuple[T]) error {
	if !e.rng.Base().Contains(x) {
		return fmt.Errorf("%w: %s", ErrNotInDomain, e.rng.Base())
	}
	if !e.rng.Contains(out) {
		return fmt.Errorf("%w: %s", ErrNotInRange, e.rng)
	}
	for i, el := range out {
		if i == e.index {
			if err := el.Assign(x); err != nil {
				return err
			}
			continue
		}
		el.Scale(0)
	}
	return nil
}

func (e *Embedding[T]) Adjoint() (Operator[space.Tuple[T], *space.Element[T]], error) {
	return NewProjection(e.rng, e.index)
}

func (e *Embedding[T]) Derivative(x *space.Element[T]) (Operator[*space.Element[T], space.Tuple[T]], error) {
	if !e.rng.Base().Contains(x) {
		return nil, fmt.Errorf("%w: %s", ErrNotInDomain, e.rng.Base())
	}
	return e, nil
}

func (e *Embedding[T]) String() string {
	return fmt.Sprintf("embed[%d]", e.index)
}
