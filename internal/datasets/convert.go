package datasets

import (
	"errors"
	"fmt"
	goimage "image"
	"math"

	"golang.org/x/image/draw"

	"github.com/odl-go/odl/internal/space"
)

// Normalization modes for Convert.
const (
	// NormalizeMax divides by the maximum value so it becomes 1.
	NormalizeMax = "max"

	// NormalizeSum divides by the total sum so it becomes 1.
	NormalizeSum = "sum"
)

// Conversion errors.
var (
	// ErrUnknownNormalize indicates an unrecognized normalization mode.
	ErrUnknownNormalize = errors.New("datasets: unknown normalization mode")

	// ErrDegenerate indicates an image that cannot be normalized
	// because its maximum (or sum) is zero.
	ErrDegenerate = errors.New("datasets: image normalizes by zero")
)

// ITU-R BT.709 luminance weights used for grayscale conversion.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// ConvertOptions controls the Convert pipeline. The zero value means
// keep the original shape, keep color, float64 output, max-normalize.
type ConvertOptions struct {
	// Shape is the optional target {h, w}. Nil keeps the input size.
	Shape space.Shape

	// Gray collapses color images to luminance.
	Gray bool

	// DType selects the output precision. Float32 rounds every pixel
	// through float32; the default Float64 keeps full precision.
	DType space.DataType

	// Normalize is NormalizeMax (default when empty) or NormalizeSum.
	Normalize string
}

// Convert standardizes a raw image: optional luminance conversion,
// optional resize, then normalization into [0, 1]. It is a pure
// function; the input image is not modified.
func Convert(img *Image, opts ConvertOptions) (*Image, error) {
	out := img.Clone()

	if opts.Gray && out.IsColor() {
		out = toGray(out)
	}

	if opts.Shape != nil {
		if len(opts.Shape) != 2 {
			return nil, fmt.Errorf("target shape must be {h, w}, got %v", opts.Shape)
		}
		if err := opts.Shape.Validate(); err != nil {
			return nil, fmt.Errorf("invalid target shape: %w", err)
		}
		out = resize(out, opts.Shape[0], opts.Shape[1])
	}

	switch opts.Normalize {
	case NormalizeMax, "":
		max := out.Max()
		if max == 0 {
			return nil, fmt.Errorf("%w: max is zero", ErrDegenerate)
		}
		for i := range out.Data {
			out.Data[i] /= max
		}
	case NormalizeSum:
		sum := out.Sum()
		if sum == 0 {
			return nil, fmt.Errorf("%w: sum is zero", ErrDegenerate)
		}
		for i := range out.Data {
			out.Data[i] /= sum
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNormalize, opts.Normalize)
	}

	if opts.DType == space.Float32 {
		for i := range out.Data {
			out.Data[i] = float64(float32(out.Data[i]))
		}
	}

	return out, nil
}

// toGray collapses a color image to luminance using BT.709 weights.
func toGray(img *Image) *Image {
	h, w := img.Height(), img.Width()
	data := make([]float64, h*w)
	for i := 0; i < h*w; i++ {
		data[i] = lumaR*img.Data[i*3] + lumaG*img.Data[i*3+1] + lumaB*img.Data[i*3+2]
	}
	return &Image{Data: data, Shape: space.Shape{h, w}}
}

// resize scales an image to h × w with Catmull-Rom interpolation.
// Pixel values are passed through a 16-bit intermediate, scaled by
// the image's value range; normalization afterwards absorbs the
// quantization.
func resize(img *Image, h, w int) *Image {
	min, max := img.Min(), img.Max()
	scale := max - min
	if scale == 0 {
		scale = 1
	}
	quantize := func(v float64) uint16 {
		q := math.Round((v - min) / scale * math.MaxUint16)
		if q < 0 {
			q = 0
		} else if q > math.MaxUint16 {
			q = math.MaxUint16
		}
		return uint16(q)
	}
	restore := func(q uint32) float64 {
		return float64(q)/math.MaxUint16*scale + min
	}

	if !img.IsColor() {
		src := goimage.NewGray16(goimage.Rect(0, 0, img.Width(), img.Height()))
		for y := 0; y < img.Height(); y++ {
			for x := 0; x < img.Width(); x++ {
				q := quantize(img.At(y, x, 0))
				i := y*src.Stride + x*2
				src.Pix[i] = uint8(q >> 8)
				src.Pix[i+1] = uint8(q)
			}
		}
		dst := goimage.NewGray16(goimage.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)

		data := make([]float64, h*w)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, _, _, _ := dst.At(x, y).RGBA()
				data[y*w+x] = restore(r)
			}
		}
		return &Image{Data: data, Shape: space.Shape{h, w}}
	}

	src := goimage.NewNRGBA64(goimage.Rect(0, 0, img.Width(), img.Height()))
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			i := y*src.Stride + x*8
			for c := 0; c < 3; c++ {
				q := quantize(img.At(y, x, c))
				src.Pix[i+c*2] = uint8(q >> 8)
				src.Pix[i+c*2+1] = uint8(q)
			}
			src.Pix[i+6] = 0xff
			src.Pix[i+7] = 0xff
		}
	}
	dst := goimage.NewNRGBA64(goimage.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)

	data := make([]float64, h*w*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := dst.At(x, y).RGBA()
			i := (y*w + x) * 3
			data[i] = restore(r)
			data[i+1] = restore(g)
			data[i+2] = restore(b)
		}
	}
	return &Image{Data: data, Shape: space.Shape{h, w, 3}}
}
