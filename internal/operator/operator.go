// Package operator defines the operator contract and the default
// operators available on any space.
//
// An Operator maps elements of a domain set to elements of a range
// set. Application comes in two equivalent forms:
//   - Call: returns a freshly allocated result
//   - Apply: writes into a caller-supplied output element
//
// Concrete operators implement both directly. Callback-backed
// operators (Fn, LinearFn) may supply either one; the other is
// derived automatically.
//
// Optional capabilities are modeled as small interfaces asserted at
// use sites rather than an inheritance chain:
//   - Invertible: the operator has an inverse operator
//   - Differentiable: the operator has a derivative at a point
//   - Linear: the operator additionally exposes an adjoint
package operator

import (
	"errors"

	"github.com/odl-go/odl/internal/space"
)

// Operator maps values of type X in its domain to values of type Y
// in its range.
type Operator[X, Y any] interface {
	// Domain returns the set of admissible inputs.
	Domain() space.Set

	// Range returns the set the results belong to.
	Range() space.Set

	// Call applies the operator and returns a new result.
	Call(x X) (Y, error)

	// Apply applies the operator, writing the result into out.
	// The caller owns out; no allocation takes place.
	Apply(x X, out Y) error
}

// Invertible is implemented by operators that have an inverse.
// Constructing the inverse may fail (e.g. scaling by zero).
type Invertible[X, Y any] interface {
	Inverse() (Operator[Y, X], error)
}

// Differentiable is implemented by operators with a derivative.
// The derivative at a point is itself a linear operator.
type Differentiable[X, Y any] interface {
	Derivative(at X) (Operator[X, Y], error)
}

// Linear is an Operator that additionally exposes an adjoint.
type Linear[X, Y any] interface {
	Operator[X, Y]
	Adjoint() (Operator[Y, X], error)
}

// Domain errors for operator construction and application.
var (
	// ErrNotInDomain indicates an input outside the operator's domain.
	ErrNotInDomain = errors.New("operator: input not in domain")

	// ErrNotInRange indicates an output element outside the operator's range.
	ErrNotInRange = errors.New("operator: output not in range")

	// ErrZeroScalar indicates inversion of a scaling by zero.
	ErrZeroScalar = errors.New("operator: cannot invert scaling by zero")

	// ErrNoPrimitive indicates a callback operator built with neither
	// a call nor an apply function.
	ErrNoPrimitive = errors.New("operator: need at least one of call or apply")

	// ErrNoAlloc indicates a Call derived from Apply whose range set
	// cannot allocate a fresh output element.
	ErrNoAlloc = errors.New("operator: range cannot allocate elements")

	// ErrNoAssign indicates an Apply derived from Call whose output
	// type does not support assignment.
	ErrNoAssign = errors.New("operator: output does not support assignment")

	// ErrUnsupported indicates a capability the operator does not carry
	// (e.g. the adjoint of a generic nonlinear operator).
	ErrUnsupported = errors.New("operator: capability not supported")
)
