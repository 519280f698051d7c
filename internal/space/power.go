package space

import "fmt"

// Tuple is an ordered n-tuple of elements, the member type of a
// Power space. Component order is significant.
type Tuple[T DType] []*Element[T]

// Power is the n-fold Cartesian power of a single space. Its members
// are Tuple values with every component in the base space. Operators
// built from blocks of elementwise operators use powers as their
// domain and range.
type Power[T DType] struct {
	base *Space[T]
	n    int
}

// NewPower creates the n-fold power of base.
func NewPower[T DType](base *Space[T], n int) (*Power[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("power must have at least one factor, got %d", n)
	}
	return &Power[T]{base: base, n: n}, nil
}

// Base returns the factor space.
func (p *Power[T]) Base() *Space[T] { return p.base }

// N returns the number of factors.
func (p *Power[T]) N() int { return p.n }

// Contains reports whether v is a Tuple of the right length with
// every component in the base space.
func (p *Power[T]) Contains(v any) bool {
	tup, ok := v.(Tuple[T])
	if !ok || len(tup) != p.n {
		return false
	}
	for _, el := range tup {
		if !p.base.Contains(el) {
			return false
		}
	}
	return true
}

// Zero returns a new tuple of zero elements.
func (p *Power[T]) Zero() Tuple[T] {
	tup := make(Tuple[T], p.n)
	for i := range tup {
		tup[i] = p.base.Zero()
	}
	return tup
}

// Element builds a tuple from the given components. The components
// are not copied; the tuple aliases them.
func (p *Power[T]) Element(els ...*Element[T]) (Tuple[T], error) {
	if len(els) != p.n {
		return nil, fmt.Errorf("%w: power has %d factors, got %d components",
			ErrShapeMismatch, p.n, len(els))
	}
	for i, el := range els {
		if !p.base.Contains(el) {
			return nil, fmt.Errorf("%w: component %d does not belong to %s",
				ErrSpaceMismatch, i, p.base)
		}
	}
	return Tuple[T](els), nil
}

// Equal reports whether q is the same power: identical base space
// and the same number of factors.
func (p *Power[T]) Equal(q *Power[T]) bool {
	return q != nil && p.base == q.base && p.n == q.n
}

// String returns a human-readable description, e.g. "Rn(3, float64)^2".
func (p *Power[T]) String() string {
	return fmt.Sprintf("%s^%d", p.base, p.n)
}
