// Copyright 2025 The ODL-Go Authors. All rights reserved.
// Use of this source code is governed by a Mozilla Public License 2.0
// license that can be found in the LICENSE file.

// Package datasets provides the public API for reference-image
// loading in ODL-Go.
//
// Remote resources are fetched once into an explicit disk cache and
// standardized through a pure conversion pipeline (grayscale,
// resize, normalize). The Cambridge collection bundles the test
// images used in tomography and inverse-problems experiments.
//
// Example:
//
//	cache, _ := datasets.NewCache("")
//	img, err := datasets.BrainPhantom(ctx, cache, datasets.Shape{256, 256})
package datasets

import (
	"context"

	"github.com/odl-go/odl/internal/datasets"
	"github.com/odl-go/odl/internal/space"
)

// Type aliases for public API

// Image is a raw numeric image: float64 pixels with shape {h, w} for
// grayscale or {h, w, 3} for color.
type Image = datasets.Image

// Shape is re-exported for target-shape arguments.
type Shape = space.Shape

// Cache is a download-once disk cache for remote reference data.
type Cache = datasets.Cache

// Option configures a Cache.
type Option = datasets.Option

// ConvertOptions controls the Convert pipeline.
type ConvertOptions = datasets.ConvertOptions

// Normalization modes for Convert.
const (
	NormalizeMax = datasets.NormalizeMax
	NormalizeSum = datasets.NormalizeSum
)

// Errors

var (
	// ErrUnknownNormalize indicates an unrecognized normalization mode.
	ErrUnknownNormalize = datasets.ErrUnknownNormalize

	// ErrDegenerate indicates an image that normalizes by zero.
	ErrDegenerate = datasets.ErrDegenerate
)

// Cache construction

// NewCache creates a cache rooted at dir. An empty dir places the
// cache under the user cache directory.
func NewCache(dir string, opts ...Option) (*Cache, error) {
	return datasets.NewCache(dir, opts...)
}

// WithClient sets the HTTP client used for downloads.
var WithClient = datasets.WithClient

// WithLogger sets the logger for download and cache-hit events.
var WithLogger = datasets.WithLogger

// WithBaseURL overrides the base URL used by the named dataset
// functions.
var WithBaseURL = datasets.WithBaseURL

// Conversion

// Convert standardizes a raw image: optional luminance conversion,
// optional resize, then normalization into [0, 1].
func Convert(img *Image, opts ConvertOptions) (*Image, error) {
	return datasets.Convert(img, opts)
}

// Cambridge collection

// BrainPhantom returns the brain phantom for FDG PET simulations.
func BrainPhantom(ctx context.Context, c *Cache, shape Shape) (*Image, error) {
	return datasets.BrainPhantom(ctx, c, shape)
}

// ResolutionPhantom returns the resolution phantom for tomographic
// simulations.
func ResolutionPhantom(ctx context.Context, c *Cache, shape Shape) (*Image, error) {
	return datasets.ResolutionPhantom(ctx, c, shape)
}

// Building returns a photo of the Centre for Mathematical Sciences
// in Cambridge.
func Building(ctx context.Context, c *Cache, shape Shape, gray bool) (*Image, error) {
	return datasets.Building(ctx, c, shape, gray)
}

// Rings returns a photo of a married couple holding hands.
func Rings(ctx context.Context, c *Cache, shape Shape, gray bool) (*Image, error) {
	return datasets.Rings(ctx, c, shape, gray)
}

// BlurringKernel returns a motion-blur kernel scaled to sum to one.
func BlurringKernel(ctx context.Context, c *Cache, shape Shape) (*Image, error) {
	return datasets.BlurringKernel(ctx, c, shape)
}
