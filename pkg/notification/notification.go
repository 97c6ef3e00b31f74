package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind tags the notification variant. The set is closed: social actions only
// ever produce one of the three kinds below.
type Kind string

const (
	KindNewPost    Kind = "new_post"
	KindNewLike    Kind = "new_like"
	KindNewComment Kind = "new_comment"
)

// Notification is an immutable record of a social event directed at a user.
// It is constructed once at the moment of the triggering action and never
// mutated afterwards.
type Notification struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"` // username that triggered the event
	Kind      Kind      `json:"kind"`
	Comment   string    `json:"comment,omitempty"` // set only for KindNewComment
	CreatedAt time.Time `json:"created_at"`
}

// NewPost creates a notification announcing that actor published a post.
func NewPost(actor string) Notification {
	return newNotification(actor, KindNewPost, "")
}

// NewLike creates a notification announcing that actor liked the recipient's post.
func NewLike(actor string) Notification {
	return newNotification(actor, KindNewLike, "")
}

// NewComment creates a notification announcing that actor commented on the
// recipient's post. The comment body is carried verbatim for delivery-time
// display; it is never part of the summary.
func NewComment(actor, comment string) Notification {
	return newNotification(actor, KindNewComment, comment)
}

func newNotification(actor string, kind Kind, comment string) Notification {
	return Notification{
		ID:        uuid.New().String(),
		Actor:     actor,
		Kind:      kind,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
}

// Summary renders the human-readable one-liner for the notification.
// The comment body is intentionally excluded; callers that want it read
// the Comment field directly.
func (n Notification) Summary() string {
	switch n.Kind {
	case KindNewPost:
		return fmt.Sprintf("%s has a new post", n.Actor)
	case KindNewLike:
		return fmt.Sprintf("%s liked your post", n.Actor)
	case KindNewComment:
		return fmt.Sprintf("%s commented on your post", n.Actor)
	default:
		return fmt.Sprintf("%s triggered an unknown event", n.Actor)
	}
}
