package datasets

import (
	"context"

	"github.com/odl-go/odl/internal/space"
)

// Images provided by the University of Cambridge.

const (
	dataSubset     = "images_cambridge"
	defaultBaseURL = "http://store.maths.cam.ac.uk/DAMTP/me404/data_sets/"
)

// fetchRotated fetches a named image from the Cambridge collection
// and applies its fixed 90-degree-multiple rotation.
func fetchRotated(ctx context.Context, c *Cache, name string, k int) (*Image, error) {
	img, err := c.FetchImage(ctx, name, dataSubset, c.baseURL+name)
	if err != nil {
		return nil, err
	}
	return img.Rot90(k), nil
}

// BrainPhantom returns the brain phantom for FDG PET simulations.
//
// The result is a grayscale image scaled to [0, 1], 1024x1024 unless
// a target shape is given.
func BrainPhantom(ctx context.Context, c *Cache, shape space.Shape) (*Image, error) {
	img, err := fetchRotated(ctx, c, "PET_phantom.png", 3)
	if err != nil {
		return nil, err
	}
	return Convert(img, ConvertOptions{Shape: shape})
}

// ResolutionPhantom returns the resolution phantom for tomographic
// simulations.
//
// The result is a grayscale image scaled to [0, 1], 1024x1024 unless
// a target shape is given.
func ResolutionPhantom(ctx context.Context, c *Cache, shape space.Shape) (*Image, error) {
	img, err := fetchRotated(ctx, c, "phantom_resolution.png", 3)
	if err != nil {
		return nil, err
	}
	return Convert(img, ConvertOptions{Shape: shape})
}

// Building returns a photo of the Centre for Mathematical Sciences
// in Cambridge.
//
// The result is a color image (grayscale if gray is true) scaled to
// [0, 1], 442x331 unless a target shape is given.
func Building(ctx context.Context, c *Cache, shape space.Shape, gray bool) (*Image, error) {
	img, err := fetchRotated(ctx, c, "cms.png", 3)
	if err != nil {
		return nil, err
	}
	return Convert(img, ConvertOptions{Shape: shape, Gray: gray})
}

// Rings returns a photo of a married couple holding hands.
//
// The result is a color image (grayscale if gray is true) scaled to
// [0, 1], 3264x2448 unless a target shape is given.
func Rings(ctx context.Context, c *Cache, shape space.Shape, gray bool) (*Image, error) {
	img, err := fetchRotated(ctx, c, "rings.png", 2)
	if err != nil {
		return nil, err
	}
	return Convert(img, ConvertOptions{Shape: shape, Gray: gray})
}

// BlurringKernel returns a motion-blur kernel for convolution
// simulations. Pixel values are inverted (255 - p) and the kernel is
// scaled to sum to one.
//
// The result is a grayscale image, 100x100 unless a target shape is
// given.
func BlurringKernel(ctx context.Context, c *Cache, shape space.Shape) (*Image, error) {
	img, err := c.FetchImage(ctx, "motionblur.png", dataSubset, c.baseURL+"motionblur.png")
	if err != nil {
		return nil, err
	}
	inverted := img.Clone()
	for i := range inverted.Data {
		inverted.Data[i] = 255 - inverted.Data[i]
	}
	return Convert(inverted, ConvertOptions{Shape: shape, Normalize: NormalizeSum})
}
