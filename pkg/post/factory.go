package post

import (
	"fmt"
	"log/slog"
)

// Option configures post construction.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	renderer Renderer
}

// WithLogger sets the logger posts report like/comment activity to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRenderer sets the image renderer used by image posts' Display.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		if r != nil {
			o.renderer = r
		}
	}
}

// New creates a post of the given kind for author. Price and location are
// meaningful for sale posts only and ignored otherwise. An unknown kind fails
// with ErrUnknownKind.
func New(author Author, kind Kind, content string, price float64, location string, opts ...Option) (Post, error) {
	o := &options{renderer: noopRenderer{}}
	for _, opt := range opts {
		opt(o)
	}

	switch kind {
	case KindText:
		return &TextPost{base: newBase(author, kind, content, o.logger)}, nil
	case KindImage:
		return &ImagePost{
			base:     newBase(author, kind, content, o.logger),
			renderer: o.renderer,
		}, nil
	case KindSale:
		return &SalePost{
			base:     newBase(author, kind, content, o.logger),
			price:    price,
			location: location,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
