package space

// Set is a generic domain/range descriptor for operators.
// Concrete sets decide membership for arbitrary values; an operator
// applied to a value outside its domain is a usage error.
type Set interface {
	// Contains reports whether v is a member of the set.
	Contains(v any) bool

	// String returns a human-readable description of the set.
	String() string
}

// universalSet matches any value. It is the default domain and range
// for callback-backed operators built without explicit sets.
type universalSet struct{}

func (universalSet) Contains(any) bool { return true }

func (universalSet) String() string { return "UniversalSet" }

// Universal is the match-anything set. It is a process-wide singleton,
// constructed once and never mutated.
var Universal Set = universalSet{}

// Product is the Cartesian product of two spaces. Its members are
// ordered Pair values whose components lie in the left and right
// space respectively. Binary operators use it as their domain.
type Product[T DType] struct {
	left  *Space[T]
	right *Space[T]
}

// NewProduct creates the Cartesian product left × right.
func NewProduct[T DType](left, right *Space[T]) *Product[T] {
	return &Product[T]{left: left, right: right}
}

// Left returns the first factor of the product.
func (p *Product[T]) Left() *Space[T] { return p.left }

// Right returns the second factor of the product.
func (p *Product[T]) Right() *Space[T] { return p.right }

// Contains reports whether v is a Pair with both components in the
// respective factor spaces.
func (p *Product[T]) Contains(v any) bool {
	pair, ok := v.(Pair[T])
	if !ok {
		return false
	}
	return p.left.Contains(pair.A) && p.right.Contains(pair.B)
}

// Element builds a pair from two elements. The components are not
// copied; the pair aliases them.
func (p *Product[T]) Element(a, b *Element[T]) (Pair[T], error) {
	if !p.left.Contains(a) {
		return Pair[T]{}, ErrSpaceMismatch
	}
	if !p.right.Contains(b) {
		return Pair[T]{}, ErrSpaceMismatch
	}
	return Pair[T]{A: a, B: b}, nil
}

// String returns a human-readable description of the product.
func (p *Product[T]) String() string {
	return p.left.String() + " x " + p.right.String()
}

// Pair is an ordered pair of elements, the member type of a Product.
type Pair[T DType] struct {
	A *Element[T]
	B *Element[T]
}
