package inbox

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/socialkit/pkg/logger"
	"github.com/dmitrymomot/socialkit/pkg/notification"
)

// Deliverer pushes a freshly received notification to its recipient in real
// time. Implementations decide the destination: console, subscriber channels,
// or nothing at all. Delivery failures are the caller's to swallow; the inbox
// log is already updated by the time Deliver runs.
type Deliverer interface {
	Deliver(ctx context.Context, owner string, n notification.Notification) error
}

// DeliveryLine formats the canonical delivery line for a notification:
//
//	notification to {owner}: {summary}
//
// with the comment body appended for comment notifications.
func DeliveryLine(owner string, n notification.Notification) string {
	line := fmt.Sprintf("notification to %s: %s", owner, n.Summary())
	if n.Kind == notification.KindNewComment {
		line += ": " + n.Comment
	}
	return line
}

// NoopDeliverer discards every notification. Used when no real-time channel
// is configured.
type NoopDeliverer struct{}

func (NoopDeliverer) Deliver(ctx context.Context, owner string, n notification.Notification) error {
	return nil
}

// MultiDeliverer fans a delivery out to several channels. Each channel is
// best effort: one failing deliverer does not stop the others.
type MultiDeliverer struct {
	deliverers []Deliverer
	logger     *slog.Logger
}

// NewMultiDeliverer combines the given deliverers into one.
func NewMultiDeliverer(deliverers []Deliverer, l *slog.Logger) *MultiDeliverer {
	if l == nil {
		l = slog.Default()
	}
	return &MultiDeliverer{deliverers: deliverers, logger: l}
}

func (m *MultiDeliverer) Deliver(ctx context.Context, owner string, n notification.Notification) error {
	for i, d := range m.deliverers {
		if err := d.Deliver(ctx, owner, n); err != nil {
			m.logger.LogAttrs(ctx, slog.LevelWarn, "delivery channel failed",
				logger.NotificationID(n.ID),
				logger.Username(owner),
				slog.Int("deliverer_index", i),
				logger.Error(err),
			)
		}
	}
	return nil
}
