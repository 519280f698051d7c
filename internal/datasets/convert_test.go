package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odl-go/odl/internal/space"
)

func TestConvertNormalizeMax(t *testing.T) {
	img, err := NewImage([]float64{10, 20, 40, 80}, space.Shape{2, 2})
	require.NoError(t, err)

	out, err := Convert(img, ConvertOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1.0, out.Max(), "max must be exactly 1")
	assert.Equal(t, []float64{0.125, 0.25, 0.5, 1}, out.Data)
	assert.Equal(t, []float64{10, 20, 40, 80}, img.Data, "input must not be modified")
}

func TestConvertNormalizeSum(t *testing.T) {
	img, err := NewImage([]float64{1, 2, 3, 4}, space.Shape{2, 2})
	require.NoError(t, err)

	out, err := Convert(img, ConvertOptions{Normalize: NormalizeSum})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, out.Sum(), 1e-12, "sum must be 1")
	assert.Equal(t, []float64{0.1, 0.2, 0.3, 0.4}, out.Data)
}

func TestConvertUnknownNormalize(t *testing.T) {
	img, _ := NewImage([]float64{1, 2}, space.Shape{1, 2})

	_, err := Convert(img, ConvertOptions{Normalize: "foo"})
	assert.ErrorIs(t, err, ErrUnknownNormalize)
}

func TestConvertDegenerate(t *testing.T) {
	img, _ := NewImage([]float64{0, 0}, space.Shape{1, 2})

	_, err := Convert(img, ConvertOptions{})
	assert.ErrorIs(t, err, ErrDegenerate)

	_, err = Convert(img, ConvertOptions{Normalize: NormalizeSum})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestConvertGray(t *testing.T) {
	// Two pixels; BT.709 luminance must be applied per pixel before
	// normalization.
	img, err := NewImage([]float64{
		100, 200, 50, // pixel 0
		200, 400, 100, // pixel 1, exactly double
	}, space.Shape{1, 2, 3})
	require.NoError(t, err)

	out, err := Convert(img, ConvertOptions{Gray: true})
	require.NoError(t, err)

	assert.Equal(t, space.Shape{1, 2}, out.Shape)
	assert.InDelta(t, 0.5, out.Data[0], 1e-12, "pixel 0 is half of pixel 1")
	assert.Equal(t, 1.0, out.Data[1])
}

func TestConvertGrayNoopOnGrayscale(t *testing.T) {
	img, _ := NewImage([]float64{1, 2}, space.Shape{1, 2})

	out, err := Convert(img, ConvertOptions{Gray: true})
	require.NoError(t, err)
	assert.Equal(t, space.Shape{1, 2}, out.Shape)
}

func TestConvertResize(t *testing.T) {
	data := make([]float64, 16)
	for i := range data {
		data[i] = 42
	}
	img, _ := NewImage(data, space.Shape{4, 4})

	out, err := Convert(img, ConvertOptions{Shape: space.Shape{2, 2}})
	require.NoError(t, err)

	assert.Equal(t, space.Shape{2, 2}, out.Shape)
	for _, v := range out.Data {
		assert.InDelta(t, 1.0, v, 1e-3, "constant image stays constant through resize")
	}
}

func TestConvertResizeColor(t *testing.T) {
	data := make([]float64, 4*4*3)
	for i := range data {
		data[i] = 100
	}
	img, _ := NewImage(data, space.Shape{4, 4, 3})

	out, err := Convert(img, ConvertOptions{Shape: space.Shape{2, 2}})
	require.NoError(t, err)
	assert.Equal(t, space.Shape{2, 2, 3}, out.Shape)
}

func TestConvertBadTargetShape(t *testing.T) {
	img, _ := NewImage([]float64{1, 2}, space.Shape{1, 2})

	_, err := Convert(img, ConvertOptions{Shape: space.Shape{2}})
	assert.Error(t, err)

	_, err = Convert(img, ConvertOptions{Shape: space.Shape{0, 2}})
	assert.Error(t, err)
}

func TestConvertFloat32(t *testing.T) {
	img, _ := NewImage([]float64{1, 3}, space.Shape{1, 2})

	out, err := Convert(img, ConvertOptions{DType: space.Float32})
	require.NoError(t, err)
	for _, v := range out.Data {
		assert.Equal(t, float64(float32(v)), v, "values must fit float32")
	}
	assert.Equal(t, 1.0, out.Max())
}

func TestImageRot90(t *testing.T) {
	img, err := NewImage([]float64{1, 2, 3, 4}, space.Shape{2, 2})
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 4, 1, 3}, img.Rot90(1).Data)
	assert.Equal(t, []float64{4, 3, 2, 1}, img.Rot90(2).Data)
	assert.Equal(t, []float64{1, 2, 3, 4}, img.Rot90(4).Data, "full turn is identity")
	assert.Equal(t, img.Rot90(3).Data, img.Rot90(-1).Data, "negative k wraps")
}

func TestImageRot90Rectangular(t *testing.T) {
	// 2x3 image; one counterclockwise turn gives 3x2.
	img, err := NewImage([]float64{
		1, 2, 3,
		4, 5, 6,
	}, space.Shape{2, 3})
	require.NoError(t, err)

	out := img.Rot90(1)
	assert.Equal(t, space.Shape{3, 2}, out.Shape)
	assert.Equal(t, []float64{
		3, 6,
		2, 5,
		1, 4,
	}, out.Data)
}

func TestNewImageValidation(t *testing.T) {
	_, err := NewImage([]float64{1}, space.Shape{2})
	assert.Error(t, err, "1-D shape rejected")

	_, err = NewImage([]float64{1, 2, 3}, space.Shape{2, 2})
	assert.Error(t, err, "size mismatch rejected")

	_, err = NewImage([]float64{1, 2}, space.Shape{1, 1, 2})
	assert.Error(t, err, "2-channel color rejected")
}

func TestImageHelpers(t *testing.T) {
	img, _ := NewImage([]float64{3, -1, 4, 0}, space.Shape{2, 2})

	assert.Equal(t, 4.0, img.Max())
	assert.Equal(t, -1.0, img.Min())
	assert.Equal(t, 6.0, img.Sum())
	assert.Equal(t, 4.0, img.At(1, 0, 0))

	assert.Panics(t, func() { img.At(2, 0, 0) })
}
