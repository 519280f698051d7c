// Copyright 2025 The ODL-Go Authors. All rights reserved.
// Use of this source code is governed by a Mozilla Public License 2.0
// license that can be found in the LICENSE file.

// Package space provides the public API for vector spaces and their
// elements in ODL-Go.
//
// The package defines the leaf types the operator layer builds on:
//   - Space[T]: a real n-dimensional space (an algebra, with
//     elementwise multiplication)
//   - Element[T]: a mutable value container owned by exactly one space
//   - Set: generic domain/range descriptors (Universal, Product)
//   - Shape, DType, DataType: core type definitions
//
// Example:
//
//	r3 := space.Rn[float64](3)
//	x, _ := r3.Element([]float64{1, 2, 3})
//	y := r3.Zero()
//	y.Lincomb(2, x, 0, x) // y = 2*x
package space

import (
	"github.com/odl-go/odl/internal/space"
)

// Type aliases for public API

// DType is a constraint for supported element scalar types.
// Supported types: float32, float64.
type DType = space.DType

// DataType represents the underlying scalar type of an element.
type DataType = space.DataType

// Scalar type constants.
const (
	Float32 DataType = space.Float32
	Float64 DataType = space.Float64
)

// Shape represents the dimensions of a space's elements.
// Example: Shape{3} is R^3, Shape{128, 128} a 128x128 image space.
type Shape = space.Shape

// Space is a real vector space of fixed shape.
//
// Every element created by a space belongs to that space; operators
// use spaces as their domain and range sets.
type Space[T DType] = space.Space[T]

// Element is a mutable value container belonging to exactly one
// space. Mutation happens only through explicit operations
// (Lincomb, Assign, Scale, Multiply, Set).
type Element[T DType] = space.Element[T]

// Set is a generic domain/range descriptor for operators.
type Set = space.Set

// Product is the Cartesian product of two spaces, the domain of
// binary operators.
type Product[T DType] = space.Product[T]

// Pair is an ordered pair of elements, the member type of a Product.
type Pair[T DType] = space.Pair[T]

// Power is the n-fold Cartesian power of a single space, the domain
// and range of block operators.
type Power[T DType] = space.Power[T]

// Tuple is an ordered n-tuple of elements, the member type of a Power.
type Tuple[T DType] = space.Tuple[T]

// Universal is the match-anything set, the default domain and range
// for ad-hoc operators. It is a singleton and never mutated.
var Universal = space.Universal

// Errors

// ErrShapeMismatch indicates element data that does not fit a
// space's shape.
var ErrShapeMismatch = space.ErrShapeMismatch

// ErrSpaceMismatch indicates an element that belongs to a different
// space than an operation requires.
var ErrSpaceMismatch = space.ErrSpaceMismatch

// Creation functions

// NewSpace creates a space whose elements have the given shape.
//
// Example:
//
//	img, err := space.NewSpace[float64](space.Shape{128, 128})
func NewSpace[T DType](shape Shape) (*Space[T], error) {
	return space.NewSpace[T](shape)
}

// Rn creates the n-dimensional real space R^n.
//
// Example:
//
//	r3 := space.Rn[float64](3)
func Rn[T DType](n int) *Space[T] {
	return space.Rn[T](n)
}

// NewProduct creates the Cartesian product left × right.
func NewProduct[T DType](left, right *Space[T]) *Product[T] {
	return space.NewProduct(left, right)
}

// NewPower creates the n-fold power base^n.
func NewPower[T DType](base *Space[T], n int) (*Power[T], error) {
	return space.NewPower(base, n)
}
