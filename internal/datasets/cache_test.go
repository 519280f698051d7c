package datasets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/odl-go/odl/internal/space"
)

// grayPNG encodes an h x w grayscale PNG with the given pixel values.
func grayPNG(t *testing.T, pixels []uint8, h, w int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// colorPNG encodes an h x w color PNG filled with a single color.
func colorPNG(t *testing.T, c color.NRGBA, h, w int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCacheFetchDownloadsOnce(t *testing.T) {
	var hits atomic.Int32
	body := grayPNG(t, []uint8{0, 128, 255, 64}, 2, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(body)
	}))
	defer srv.Close()

	cache, err := NewCache(t.TempDir(), WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	ctx := context.Background()
	path1, err := cache.Fetch(ctx, "test.png", "images_test", srv.URL+"/test.png")
	require.NoError(t, err)
	path2, err := cache.Fetch(ctx, "test.png", "images_test", srv.URL+"/test.png")
	require.NoError(t, err)

	assert.Equal(t, path1, path2)
	assert.Equal(t, int32(1), hits.Load(), "second fetch must hit the cache")
	assert.Equal(t, filepath.Join(cache.Dir(), "images_test", "test.png"), path1)

	cached, err := os.ReadFile(path1)
	require.NoError(t, err)
	assert.Equal(t, body, cached, "cached file stores the resource verbatim")
}

func TestCacheFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	_, err = cache.Fetch(context.Background(), "missing.png", "images_test", srv.URL+"/missing.png")
	assert.ErrorContains(t, err, "unexpected status")

	// A failed download must not leave a cache entry behind.
	entries, err := os.ReadDir(filepath.Join(cache.Dir(), "images_test"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCacheFetchCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer srv.Close()

	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = cache.Fetch(ctx, "x.png", "images_test", srv.URL+"/x.png")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCacheFetchImageGray(t *testing.T) {
	body := grayPNG(t, []uint8{0, 128, 255, 64}, 2, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	img, err := cache.FetchImage(context.Background(), "g.png", "images_test", srv.URL+"/g.png")
	require.NoError(t, err)

	assert.Equal(t, space.Shape{2, 2}, img.Shape)
	assert.Equal(t, []float64{0, 128, 255, 64}, img.Data)
}

func TestCacheFetchImageColor(t *testing.T) {
	body := colorPNG(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, 2, 3)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	img, err := cache.FetchImage(context.Background(), "c.png", "images_test", srv.URL+"/c.png")
	require.NoError(t, err)

	assert.Equal(t, space.Shape{2, 3, 3}, img.Shape)
	assert.Equal(t, 10.0, img.At(0, 0, 0))
	assert.Equal(t, 20.0, img.At(0, 0, 1))
	assert.Equal(t, 30.0, img.At(1, 2, 2))
}

func TestCacheFetchImageNotAnImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("definitely not a png"))
	}))
	defer srv.Close()

	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	_, err = cache.FetchImage(context.Background(), "bad.png", "images_test", srv.URL+"/bad.png")
	assert.ErrorContains(t, err, "decoding")
}
