package inbox_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/socialkit/pkg/inbox"
	"github.com/dmitrymomot/socialkit/pkg/notification"
)

// recorderDeliverer captures every delivery for assertions.
type recorderDeliverer struct {
	mu        sync.Mutex
	delivered []notification.Notification
	err       error
}

func (r *recorderDeliverer) Deliver(ctx context.Context, owner string, n notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.delivered = append(r.delivered, n)
	return nil
}

func (r *recorderDeliverer) all() []notification.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notification.Notification(nil), r.delivered...)
}

func TestInboxNotify(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("appends in arrival order", func(t *testing.T) {
		t.Parallel()

		in := inbox.New("bob")
		in.Notify(ctx, notification.NewLike("alice"))
		in.Notify(ctx, notification.NewComment("carol", "nice"))
		in.Notify(ctx, notification.NewPost("alice"))

		got := in.All()
		require.Len(t, got, 3)
		assert.Equal(t, notification.KindNewLike, got[0].Kind)
		assert.Equal(t, notification.KindNewComment, got[1].Kind)
		assert.Equal(t, notification.KindNewPost, got[2].Kind)
		assert.Equal(t, 3, in.Len())
	})

	t.Run("new post is logged silently", func(t *testing.T) {
		t.Parallel()

		rec := &recorderDeliverer{}
		in := inbox.New("bob", inbox.WithDeliverer(rec))

		in.Notify(ctx, notification.NewPost("alice"))
		in.Notify(ctx, notification.NewLike("alice"))

		assert.Equal(t, 2, in.Len())
		delivered := rec.all()
		require.Len(t, delivered, 1)
		assert.Equal(t, notification.KindNewLike, delivered[0].Kind)
	})

	t.Run("delivery failure never propagates", func(t *testing.T) {
		t.Parallel()

		rec := &recorderDeliverer{err: errors.New("channel down")}
		in := inbox.New("bob",
			inbox.WithDeliverer(rec),
			inbox.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		)

		in.Notify(ctx, notification.NewComment("carol", "hey"))
		assert.Equal(t, 1, in.Len())
	})

	t.Run("all returns a snapshot", func(t *testing.T) {
		t.Parallel()

		in := inbox.New("bob")
		in.Notify(ctx, notification.NewLike("alice"))

		snapshot := in.All()
		snapshot[0].Actor = "mallory"

		assert.Equal(t, "alice", in.All()[0].Actor)
	})
}

func TestDeliveryLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    notification.Notification
		want string
	}{
		{
			name: "like",
			n:    notification.NewLike("alice"),
			want: "notification to bob: alice liked your post",
		},
		{
			name: "comment appends body",
			n:    notification.NewComment("carol", "where was this taken?"),
			want: "notification to bob: carol commented on your post: where was this taken?",
		},
		{
			name: "new post",
			n:    notification.NewPost("alice"),
			want: "notification to bob: alice has a new post",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, inbox.DeliveryLine("bob", tt.n))
		})
	}
}

func TestConsoleDeliverer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	d := inbox.NewConsoleDeliverer(&buf)

	err := d.Deliver(context.Background(), "bob", notification.NewLike("alice"))
	require.NoError(t, err)
	assert.Equal(t, "notification to bob: alice liked your post\n", buf.String())
}

func TestMultiDeliverer(t *testing.T) {
	t.Parallel()

	failing := &recorderDeliverer{err: errors.New("broken")}
	working := &recorderDeliverer{}
	d := inbox.NewMultiDeliverer(
		[]inbox.Deliverer{failing, working},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	err := d.Deliver(context.Background(), "bob", notification.NewLike("alice"))
	require.NoError(t, err)
	assert.Len(t, working.all(), 1)
}
