// Package datasets provides reference-image loading for tomography
// and inverse-problems experiments: a download-once disk cache plus
// a pure standardization pipeline.
package datasets

import (
	"fmt"
	goimage "image"

	"github.com/odl-go/odl/internal/space"
)

// Image is a raw numeric image: float64 pixels with shape {h, w} for
// grayscale or {h, w, 3} for color. Pixel values are in whatever
// range the source used (typically 0-255) until Convert normalizes
// them.
type Image struct {
	Data  []float64
	Shape space.Shape
}

// NewImage creates an image and validates that data fits the shape.
func NewImage(data []float64, shape space.Shape) (*Image, error) {
	if len(shape) != 2 && len(shape) != 3 {
		return nil, fmt.Errorf("image shape must be {h, w} or {h, w, 3}, got %v", shape)
	}
	if len(shape) == 3 && shape[2] != 3 {
		return nil, fmt.Errorf("color images must have 3 channels, got %d", shape[2])
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("shape %v requires %d pixels, got %d", shape, shape.NumElements(), len(data))
	}
	return &Image{Data: data, Shape: shape.Clone()}, nil
}

// IsColor reports whether the image has a channel dimension.
func (im *Image) IsColor() bool { return len(im.Shape) == 3 }

// Height returns the number of rows.
func (im *Image) Height() int { return im.Shape[0] }

// Width returns the number of columns.
func (im *Image) Width() int { return im.Shape[1] }

// channels returns 1 for grayscale and 3 for color.
func (im *Image) channels() int {
	if im.IsColor() {
		return im.Shape[2]
	}
	return 1
}

// At returns the pixel at row y, column x, channel c.
// For grayscale images c must be 0. Panics on out-of-bounds access.
func (im *Image) At(y, x, c int) float64 {
	ch := im.channels()
	if y < 0 || y >= im.Height() || x < 0 || x >= im.Width() || c < 0 || c >= ch {
		panic(fmt.Sprintf("pixel (%d, %d, %d) out of bounds for shape %v", y, x, c, im.Shape))
	}
	return im.Data[(y*im.Width()+x)*ch+c]
}

// Max returns the largest pixel value.
func (im *Image) Max() float64 {
	max := im.Data[0]
	for _, v := range im.Data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Min returns the smallest pixel value.
func (im *Image) Min() float64 {
	min := im.Data[0]
	for _, v := range im.Data[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Sum returns the total of all pixel values.
func (im *Image) Sum() float64 {
	var sum float64
	for _, v := range im.Data {
		sum += v
	}
	return sum
}

// Clone returns a deep copy of the image.
func (im *Image) Clone() *Image {
	data := make([]float64, len(im.Data))
	copy(data, im.Data)
	return &Image{Data: data, Shape: im.Shape.Clone()}
}

// Rot90 rotates the image by k*90 degrees counterclockwise and
// returns the result as a new image.
func (im *Image) Rot90(k int) *Image {
	k = ((k % 4) + 4) % 4
	out := im.Clone()
	for ; k > 0; k-- {
		out = out.rot90once()
	}
	return out
}

// rot90once rotates counterclockwise by 90 degrees: a pixel at
// (y, x) of the result comes from (x, W-1-y) of the input, where W
// is the result's height (the input's width).
func (im *Image) rot90once() *Image {
	h, w, ch := im.Height(), im.Width(), im.channels()
	shape := space.Shape{w, h}
	if im.IsColor() {
		shape = space.Shape{w, h, ch}
	}
	data := make([]float64, len(im.Data))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			for c := 0; c < ch; c++ {
				data[(y*h+x)*ch+c] = im.Data[(x*w+(w-1-y))*ch+c]
			}
		}
	}
	return &Image{Data: data, Shape: shape}
}

// fromGoImage converts a decoded standard-library image into a raw
// float image with 0-255 pixel values. Grayscale sources produce a
// {h, w} image, everything else {h, w, 3}.
func fromGoImage(src goimage.Image) *Image {
	bounds := src.Bounds()
	h, w := bounds.Dy(), bounds.Dx()

	switch src.(type) {
	case *goimage.Gray, *goimage.Gray16:
		data := make([]float64, h*w)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, _, _, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				data[y*w+x] = float64(r >> 8)
			}
		}
		return &Image{Data: data, Shape: space.Shape{h, w}}
	}

	data := make([]float64, h*w*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			data[i] = float64(r >> 8)
			data[i+1] = float64(g >> 8)
			data[i+2] = float64(b >> 8)
		}
	}
	return &Image{Data: data, Shape: space.Shape{h, w, 3}}
}
