package inbox

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/socialkit/pkg/logger"
	"github.com/dmitrymomot/socialkit/pkg/notification"
)

// Inbox is a per-user, append-only notification log. Order of the log is
// arrival order, which under the single-writer model equals the causal order
// of the triggering actions.
type Inbox struct {
	owner     string
	deliverer Deliverer
	logger    *slog.Logger

	mu  sync.RWMutex
	log []notification.Notification
}

// Option configures an Inbox.
type Option func(*Inbox)

// WithDeliverer sets the real-time delivery channel for incoming notifications.
func WithDeliverer(d Deliverer) Option {
	return func(i *Inbox) {
		if d != nil {
			i.deliverer = d
		}
	}
}

// WithLogger sets the logger used for delivery failures.
func WithLogger(l *slog.Logger) Option {
	return func(i *Inbox) {
		if l != nil {
			i.logger = l
		}
	}
}

// New creates an inbox for the named owner.
func New(owner string, opts ...Option) *Inbox {
	i := &Inbox{
		owner:     owner,
		deliverer: NoopDeliverer{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Owner returns the owning username. Display only; identity lives with the user.
func (i *Inbox) Owner() string {
	return i.owner
}

// Notify appends the notification to the log and hands it to the deliverer.
//
// New-post notifications are appended silently: a single publish floods every
// follower's inbox, so per-follower delivery output is suppressed for that
// kind only. Delivery is best effort — a deliverer error is logged and never
// prevents the append nor propagates to the caller.
func (i *Inbox) Notify(ctx context.Context, n notification.Notification) {
	i.mu.Lock()
	i.log = append(i.log, n)
	i.mu.Unlock()

	if n.Kind == notification.KindNewPost {
		return
	}

	if err := i.deliverer.Deliver(ctx, i.owner, n); err != nil {
		i.logger.LogAttrs(ctx, slog.LevelWarn, "notification delivery failed, kept in inbox",
			logger.NotificationID(n.ID),
			logger.Username(i.owner),
			logger.Error(err),
		)
	}
}

// All returns the received notifications in arrival order.
func (i *Inbox) All() []notification.Notification {
	i.mu.RLock()
	defer i.mu.RUnlock()

	out := make([]notification.Notification, len(i.log))
	copy(out, i.log)
	return out
}

// Len reports the number of received notifications.
func (i *Inbox) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.log)
}
