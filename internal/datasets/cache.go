package datasets

import (
	"context"
	"fmt"
	goimage "image"
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Cache is a download-once disk cache for remote reference data.
// Resources are keyed by subset and name; a resource is fetched
// remotely at most once per cache directory and never invalidated.
//
// The zero Cache is not usable; create one with NewCache. A Cache is
// an explicit object with a defined lifecycle rather than implicit
// process-wide state, so tests and callers can inject their own.
type Cache struct {
	dir     string
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithClient sets the HTTP client used for downloads.
func WithClient(client *http.Client) Option {
	return func(c *Cache) { c.client = client }
}

// WithLogger sets the logger for download and cache-hit events.
// The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Cache) { c.log = log }
}

// WithBaseURL overrides the base URL used by the named dataset
// functions. Mainly useful for tests against a local server.
func WithBaseURL(url string) Option {
	return func(c *Cache) { c.baseURL = url }
}

// NewCache creates a cache rooted at dir. An empty dir places the
// cache under the user cache directory.
func NewCache(dir string, opts ...Option) (*Cache, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolving cache dir: %w", err)
		}
		dir = filepath.Join(base, "odl")
	}
	c := &Cache{
		dir:     dir,
		baseURL: defaultBaseURL,
		client:  http.DefaultClient,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Dir returns the cache's root directory.
func (c *Cache) Dir() string { return c.dir }

// Fetch returns the local path of a named resource, downloading it
// from url on first use. Subsequent calls for the same subset and
// name hit the disk cache.
func (c *Cache) Fetch(ctx context.Context, name, subset, url string) (string, error) {
	path := filepath.Join(c.dir, subset, name)
	if _, err := os.Stat(path); err == nil {
		c.log.Debug("cache hit", zap.String("name", name), zap.String("subset", subset))
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating cache dir: %w", err)
	}

	c.log.Info("downloading dataset",
		zap.String("name", name),
		zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %q: %w", url, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %q: unexpected status %s", url, resp.Status)
	}

	// Write to a temp file first so a failed download never leaves a
	// truncated resource in the cache.
	tmp, err := os.CreateTemp(filepath.Dir(path), name+".partial-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("downloading %q: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("moving %q into cache: %w", name, err)
	}
	return path, nil
}

// FetchImage fetches a named resource and decodes it as an image
// (PNG or JPEG) into a raw float image with 0-255 pixel values.
func (c *Cache) FetchImage(ctx context.Context, name, subset, url string) (*Image, error) {
	path, err := c.Fetch(ctx, name, subset, url)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cached %q: %w", name, err)
	}
	defer f.Close()

	src, _, err := goimage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", name, err)
	}
	return fromGoImage(src), nil
}
