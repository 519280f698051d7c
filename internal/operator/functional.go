package operator

import "github.com/odl-go/odl/internal/space"

// CallFunc applies an operator, returning a new result.
type CallFunc[X, Y any] func(x X) (Y, error)

// ApplyFunc applies an operator, writing the result into out.
type ApplyFunc[X, Y any] func(x X, out Y) error

// FnConfig configures a callback-backed operator. At least one of
// Call and Apply must be set; all other fields are optional.
// A nil Domain or Range defaults to the universal set.
type FnConfig[X, Y any] struct {
	Call       CallFunc[X, Y]
	Apply      ApplyFunc[X, Y]
	Inverse    Operator[Y, X]
	Derivative Operator[X, Y]
	Domain     space.Set
	Range      space.Set
}

// Fn is an ad-hoc operator assembled from plain functions, mostly
// intended for prototyping and testing. The missing primitive is
// derived from the supplied one: Apply from Call via assignment,
// Call from Apply via a fresh range element.
type Fn[X, Y any] struct {
	call       CallFunc[X, Y]
	apply      ApplyFunc[X, Y]
	inverse    Operator[Y, X]
	derivative Operator[X, Y]
	domain     space.Set
	rng        space.Set
}

// NewFn creates a callback-backed operator.
// Fails with ErrNoPrimitive if neither Call nor Apply is supplied.
func NewFn[X, Y any](cfg FnConfig[X, Y]) (*Fn[X, Y], error) {
	if cfg.Call == nil && cfg.Apply == nil {
		return nil, ErrNoPrimitive
	}
	if cfg.Domain == nil {
		cfg.Domain = space.Universal
	}
	if cfg.Range == nil {
		cfg.Range = space.Universal
	}
	return &Fn[X, Y]{
		call:       cfg.Call,
		apply:      cfg.Apply,
		inverse:    cfg.Inverse,
		derivative: cfg.Derivative,
		domain:     cfg.Domain,
		rng:        cfg.Range,
	}, nil
}

// Domain returns the operator's domain set.
func (op *Fn[X, Y]) Domain() space.Set { return op.domain }

// Range returns the operator's range set.
func (op *Fn[X, Y]) Range() space.Set { return op.rng }

// allocator is satisfied by range sets that can produce fresh
// elements, such as spaces (whose Zero returns the element type).
type allocator[Y any] interface {
	Zero() Y
}

// assignable is satisfied by output values that can take on the
// value of another element of the same type.
type assignable[Y any] interface {
	Assign(Y) error
}

// Call applies the operator and returns a new result.
// When only an apply function was supplied, a fresh output is
// allocated from the range; ranges that cannot allocate (such as the
// universal set) make Call fail with ErrNoAlloc.
func (op *Fn[X, Y]) Call(x X) (Y, error) {
	var zero Y
	if !op.domain.Contains(x) {
		return zero, ErrNotInDomain
	}
	if op.call != nil {
		return op.call(x)
	}
	alloc, ok := any(op.rng).(allocator[Y])
	if !ok {
		return zero, ErrNoAlloc
	}
	out := alloc.Zero()
	if err := op.apply(x, out); err != nil {
		return zero, err
	}
	return out, nil
}

// Apply applies the operator, writing the result into out.
// When only a call function was supplied, the result is copied into
// out via assignment; output types without assignment make Apply
// fail with ErrNoAssign.
func (op *Fn[X, Y]) Apply(x X, out Y) error {
	if !op.domain.Contains(x) {
		return ErrNotInDomain
	}
	if !op.rng.Contains(out) {
		return ErrNotInRange
	}
	if op.apply != nil {
		return op.apply(x, out)
	}
	y, err := op.call(x)
	if err != nil {
		return err
	}
	dst, ok := any(out).(assignable[Y])
	if !ok {
		return ErrNoAssign
	}
	return dst.Assign(y)
}

// Inverse returns the configured inverse operator.
// Fails with ErrUnsupported if none was supplied.
func (op *Fn[X, Y]) Inverse() (Operator[Y, X], error) {
	if op.inverse == nil {
		return nil, ErrUnsupported
	}
	return op.inverse, nil
}

// Derivative returns the configured derivative operator.
// Fails with ErrUnsupported if none was supplied.
func (op *Fn[X, Y]) Derivative(X) (Operator[X, Y], error) {
	if op.derivative == nil {
		return nil, ErrUnsupported
	}
	return op.derivative, nil
}

// LinearFnConfig configures a callback-backed linear operator.
// It extends FnConfig with an optional adjoint.
type LinearFnConfig[X, Y any] struct {
	FnConfig[X, Y]
	Adjoint Operator[Y, X]
}

// LinearFn is a callback-backed operator that additionally exposes
// an adjoint, making it usable where a linear operator is expected.
type LinearFn[X, Y any] struct {
	Fn[X, Y]
	adjoint Operator[Y, X]
}

// NewLinearFn creates a callback-backed linear operator.
// Fails with ErrNoPrimitive if neither Call nor Apply is supplied.
func NewLinearFn[X, Y any](cfg LinearFnConfig[X, Y]) (*LinearFn[X, Y], error) {
	fn, err := NewFn(cfg.FnConfig)
	if err != nil {
		return nil, err
	}
	return &LinearFn[X, Y]{Fn: *fn, adjoint: cfg.Adjoint}, nil
}

// Adjoint returns the configured adjoint operator.
// Fails with ErrUnsupported if none was supplied.
func (op *LinearFn[X, Y]) Adjoint() (Operator[Y, X], error) {
	if op.adjoint == nil {
		return nil, ErrUnsupported
	}
	return op.adjoint, nil
}
