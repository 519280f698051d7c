// Copyright 2025 The ODL-Go Authors. All rights reserved.
// Use of this source code is governed by a Mozilla Public License 2.0
// license that can be found in the LICENSE file.

// Package operator provides the public API for operators in ODL-Go.
//
// An Operator maps elements of a domain set to elements of a range
// set, with two equivalent forms of application: Call returns a new
// element, Apply writes into a caller-supplied output. Optional
// capabilities (inverse, derivative, adjoint) are modeled as small
// interfaces asserted at use sites.
//
// Default operators available on any space:
//   - Scaling: multiply by a fixed scalar (self-adjoint)
//   - Identity: scaling by one
//   - LinComb: a*x + b*y on an ordered pair
//   - Multiply: elementwise product on an ordered pair
//
// Block combinators assemble operators over power spaces:
//   - Matrix: block matrix of operators, nil entries as zero blocks
//   - Broadcast / Reduction: one-to-many and many-to-one application
//   - Diagonal: one operator per tuple component
//   - Projection / Embedding: component selection and zero-padding
//
// Ad-hoc operators can be assembled from plain functions via NewFn
// and NewLinearFn, mostly for prototyping and testing:
//
//	double, _ := operator.NewFn(operator.FnConfig[float64, float64]{
//		Call: func(x float64) (float64, error) { return 2 * x, nil },
//	})
//	y, _ := double.Call(21) // 42
package operator

import (
	"github.com/odl-go/odl/internal/operator"
	"github.com/odl-go/odl/internal/space"
)

// Type aliases for public API

// Operator maps values of type X in its domain to values of type Y
// in its range.
type Operator[X, Y any] = operator.Operator[X, Y]

// Invertible is implemented by operators that have an inverse.
type Invertible[X, Y any] = operator.Invertible[X, Y]

// Differentiable is implemented by operators with a derivative.
type Differentiable[X, Y any] = operator.Differentiable[X, Y]

// Linear is an Operator that additionally exposes an adjoint.
type Linear[X, Y any] = operator.Linear[X, Y]

// Scaling multiplies every element of a space by a fixed scalar.
type Scaling[T space.DType] = operator.Scaling[T]

// Identity copies elements of a space unchanged.
type Identity[T space.DType] = operator.Identity[T]

// LinComb computes a*x + b*y on an ordered pair of elements.
type LinComb[T space.DType] = operator.LinComb[T]

// Multiply computes the elementwise product of an ordered pair.
type Multiply[T space.DType] = operator.Multiply[T]

// ElOp is an operator between single elements, the entry type of the
// block combinators (Matrix, Broadcast, Reduction, Diagonal).
type ElOp[T space.DType] = operator.ElOp[T]

// Matrix is a block matrix of elementwise operators acting between
// power spaces, with nil entries as zero blocks.
type Matrix[T space.DType] = operator.Matrix[T]

// Broadcast applies several operators to one input element.
type Broadcast[T space.DType] = operator.Broadcast[T]

// Reduction sums the results of several operators applied to the
// components of a tuple.
type Reduction[T space.DType] = operator.Reduction[T]

// Diagonal applies one operator per tuple component.
type Diagonal[T space.DType] = operator.Diagonal[T]

// Projection picks a single component out of a power-space tuple.
type Projection[T space.DType] = operator.Projection[T]

// Embedding places an element at one component of a power-space
// tuple, zeroing the others.
type Embedding[T space.DType] = operator.Embedding[T]

// Fn is an ad-hoc operator assembled from plain functions.
type Fn[X, Y any] = operator.Fn[X, Y]

// LinearFn is an ad-hoc operator with an optional adjoint.
type LinearFn[X, Y any] = operator.LinearFn[X, Y]

// FnConfig configures a callback-backed operator.
type FnConfig[X, Y any] = operator.FnConfig[X, Y]

// LinearFnConfig configures a callback-backed linear operator.
type LinearFnConfig[X, Y any] = operator.LinearFnConfig[X, Y]

// CallFunc applies an operator, returning a new result.
type CallFunc[X, Y any] = operator.CallFunc[X, Y]

// ApplyFunc applies an operator, writing the result into out.
type ApplyFunc[X, Y any] = operator.ApplyFunc[X, Y]

// Errors

var (
	// ErrNotInDomain indicates an input outside the operator's domain.
	ErrNotInDomain = operator.ErrNotInDomain

	// ErrNotInRange indicates an output outside the operator's range.
	ErrNotInRange = operator.ErrNotInRange

	// ErrZeroScalar indicates inversion of a scaling by zero.
	ErrZeroScalar = operator.ErrZeroScalar

	// ErrNoPrimitive indicates a callback operator built with neither
	// a call nor an apply function.
	ErrNoPrimitive = operator.ErrNoPrimitive

	// ErrNoAlloc indicates a derived Call whose range cannot allocate.
	ErrNoAlloc = operator.ErrNoAlloc

	// ErrNoAssign indicates a derived Apply whose output type does
	// not support assignment.
	ErrNoAssign = operator.ErrNoAssign

	// ErrUnsupported indicates a capability the operator lacks.
	ErrUnsupported = operator.ErrUnsupported
)

// Constructors

// NewScaling creates a scaling operator on the given space.
func NewScaling[T space.DType](s *space.Space[T], scalar T) *Scaling[T] {
	return operator.NewScaling(s, scalar)
}

// NewIdentity creates the identity operator on the given space.
func NewIdentity[T space.DType](s *space.Space[T]) *Identity[T] {
	return operator.NewIdentity(s)
}

// NewLinComb creates the linear-combination operator with
// coefficients a and b on the given space.
func NewLinComb[T space.DType](s *space.Space[T], a, b T) *LinComb[T] {
	return operator.NewLinComb(s, a, b)
}

// NewMultiply creates the elementwise-multiplication operator on the
// given space.
func NewMultiply[T space.DType](s *space.Space[T]) *Multiply[T] {
	return operator.NewMultiply(s)
}

// NewMatrix creates a block-operator matrix from rows of entries.
// Rows must be non-empty and rectangular; nil entries are zero blocks.
func NewMatrix[T space.DType](rows [][]ElOp[T]) (*Matrix[T], error) {
	return operator.NewMatrix(rows)
}

// NewBroadcast creates a broadcast over one or more operators sharing
// a domain.
func NewBroadcast[T space.DType](ops ...ElOp[T]) (*Broadcast[T], error) {
	return operator.NewBroadcast(ops...)
}

// NewReduction creates a reduction over one or more operators sharing
// a range.
func NewReduction[T space.DType](ops ...ElOp[T]) (*Reduction[T], error) {
	return operator.NewReduction(ops...)
}

// NewDiagonal creates a diagonal operator over one or more operators.
func NewDiagonal[T space.DType](ops ...ElOp[T]) (*Diagonal[T], error) {
	return operator.NewDiagonal(ops...)
}

// NewProjection creates the projection onto component index of pw.
func NewProjection[T space.DType](pw *space.Power[T], index int) (*Projection[T], error) {
	return operator.NewProjection(pw, index)
}

// NewEmbedding creates the embedding into component index of pw.
func NewEmbedding[T space.DType](pw *space.Power[T], index int) (*Embedding[T], error) {
	return operator.NewEmbedding(pw, index)
}

// NewFn creates a callback-backed operator from plain functions.
// Fails with ErrNoPrimitive if neither Call nor Apply is supplied.
func NewFn[X, Y any](cfg FnConfig[X, Y]) (*Fn[X, Y], error) {
	return operator.NewFn(cfg)
}

// NewLinearFn creates a callback-backed linear operator.
// Fails with ErrNoPrimitive if neither Call nor Apply is supplied.
func NewLinearFn[X, Y any](cfg LinearFnConfig[X, Y]) (*LinearFn[X, Y], error) {
	return operator.NewLinearFn(cfg)
}
