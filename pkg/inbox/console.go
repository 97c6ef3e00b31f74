package inbox

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/dmitrymomot/socialkit/pkg/notification"
)

// ConsoleDeliverer writes delivery lines to a writer, optionally colorized by
// notification kind. It is the rendering endpoint the domain packages stay
// free of: they produce notification values, this type decides how they look.
type ConsoleDeliverer struct {
	mu       sync.Mutex
	w        io.Writer
	colorize bool

	likeColor    *color.Color
	commentColor *color.Color
}

// ConsoleOption configures a ConsoleDeliverer.
type ConsoleOption func(*ConsoleDeliverer)

// WithColor enables ANSI-colored delivery lines.
func WithColor() ConsoleOption {
	return func(c *ConsoleDeliverer) {
		c.colorize = true
	}
}

// NewConsoleDeliverer creates a deliverer writing to w.
func NewConsoleDeliverer(w io.Writer, opts ...ConsoleOption) *ConsoleDeliverer {
	c := &ConsoleDeliverer{
		w:            w,
		likeColor:    color.New(color.FgGreen),
		commentColor: color.New(color.FgCyan),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *ConsoleDeliverer) Deliver(ctx context.Context, owner string, n notification.Notification) error {
	line := DeliveryLine(owner, n)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.colorize {
		_, err := fmt.Fprintln(c.w, line)
		return err
	}

	var err error
	switch n.Kind {
	case notification.KindNewLike:
		_, err = c.likeColor.Fprintln(c.w, line)
	case notification.KindNewComment:
		_, err = c.commentColor.Fprintln(c.w, line)
	default:
		_, err = fmt.Fprintln(c.w, line)
	}
	return err
}
