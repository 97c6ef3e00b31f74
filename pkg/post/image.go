package post

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/socialkit/pkg/logger"
)

// Renderer displays image data addressed by an opaque content locator.
// Implementations live outside the domain; see pkg/imaging for a file-backed
// one.
type Renderer interface {
	Render(ctx context.Context, locator string) error
}

// noopRenderer is used when no renderer is configured.
type noopRenderer struct{}

func (noopRenderer) Render(ctx context.Context, locator string) error { return nil }

// ImagePost is a post whose content is an opaque locator for image data.
type ImagePost struct {
	base
	renderer Renderer
}

// Display asks the renderer to show the image and returns the viewer-facing
// confirmation line. A renderer failure (missing file, bad data) is logged
// and swallowed: display is cosmetic and never affects post state.
func (p *ImagePost) Display(ctx context.Context) string {
	if err := p.renderer.Render(ctx, p.Content()); err != nil {
		p.logger.LogAttrs(ctx, slog.LevelWarn, "image render failed",
			logger.PostID(p.ID()),
			slog.String("locator", p.Content()),
			logger.Error(err),
		)
	}
	return "Shows picture"
}

func (p *ImagePost) Describe() string {
	return fmt.Sprintf("%s posted a picture", p.AuthorName())
}
