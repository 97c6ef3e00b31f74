package imaging

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dmitrymomot/socialkit/pkg/logger"
)

// ErrImageNotFound is returned when the locator does not resolve to a file.
var ErrImageNotFound = errors.New("image not found")

// FileRenderer resolves image locators against a file system and "displays"
// them by loading the bytes. Loaded images are kept in an LRU cache so that
// repeated displays of popular pictures skip the file system.
//
// The renderer is the external collaborator of image posts; the post layer
// swallows its errors, so a missing file only costs a log line there.
type FileRenderer struct {
	fsys   fs.FS
	cache  *lru.Cache[string, []byte]
	logger *slog.Logger
}

// Option configures a FileRenderer.
type Option func(*FileRenderer)

// WithLogger sets the logger for render activity.
func WithLogger(l *slog.Logger) Option {
	return func(r *FileRenderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewFileRenderer creates a renderer over fsys caching up to cacheSize images.
func NewFileRenderer(fsys fs.FS, cacheSize int, opts ...Option) (*FileRenderer, error) {
	cache, err := lru.New[string, []byte](max(cacheSize, 1))
	if err != nil {
		return nil, err
	}

	r := &FileRenderer{
		fsys:   fsys,
		cache:  cache,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Render loads the image behind locator, from cache when possible.
func (r *FileRenderer) Render(ctx context.Context, locator string) error {
	if data, ok := r.cache.Get(locator); ok {
		r.show(ctx, locator, len(data), true)
		return nil
	}

	data, err := fs.ReadFile(r.fsys, locator)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrImageNotFound, locator)
		}
		return fmt.Errorf("read image %s: %w", locator, err)
	}

	r.cache.Add(locator, data)
	r.show(ctx, locator, len(data), false)
	return nil
}

// CacheLen reports the number of cached images.
func (r *FileRenderer) CacheLen() int {
	return r.cache.Len()
}

func (r *FileRenderer) show(ctx context.Context, locator string, size int, cached bool) {
	r.logger.LogAttrs(ctx, slog.LevelDebug, "displaying image",
		slog.String("locator", locator),
		slog.Int("bytes", size),
		slog.Bool("cached", cached),
		logger.Component("imaging"),
	)
}
