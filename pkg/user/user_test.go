package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/socialkit/pkg/notification"
	"github.com/dmitrymomot/socialkit/pkg/post"
	"github.com/dmitrymomot/socialkit/pkg/user"
)

func newUser(t *testing.T, name, password string) *user.User {
	t.Helper()
	u, err := user.New(name, password, user.WithBcryptCost(bcrypt.MinCost))
	require.NoError(t, err)
	return u
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	u := newUser(t, "alice", "qwerty")

	require.NoError(t, u.Authenticate("qwerty"))
	require.ErrorIs(t, u.Authenticate("qwertz"), user.ErrInvalidPassword)
	require.ErrorIs(t, u.Authenticate(""), user.ErrInvalidPassword)
}

func TestLoginStateMachine(t *testing.T) {
	t.Parallel()

	t.Run("starts logged in", func(t *testing.T) {
		t.Parallel()

		u := newUser(t, "alice", "qwerty")
		assert.True(t, u.LoggedIn())
	})

	t.Run("double login fails", func(t *testing.T) {
		t.Parallel()

		u := newUser(t, "alice", "qwerty")
		require.ErrorIs(t, u.LogIn("qwerty"), user.ErrAlreadyLoggedIn)
	})

	t.Run("double logout fails", func(t *testing.T) {
		t.Parallel()

		u := newUser(t, "alice", "qwerty")
		require.NoError(t, u.LogOut())
		require.ErrorIs(t, u.LogOut(), user.ErrNotLoggedIn)
	})

	t.Run("login requires the correct password", func(t *testing.T) {
		t.Parallel()

		u := newUser(t, "alice", "qwerty")
		require.NoError(t, u.LogOut())
		require.ErrorIs(t, u.LogIn("wrong"), user.ErrInvalidPassword)
		assert.False(t, u.LoggedIn())

		require.NoError(t, u.LogIn("qwerty"))
		assert.True(t, u.LoggedIn())
	})
}

func TestFollow(t *testing.T) {
	t.Parallel()

	t.Run("follow registers with the followee", func(t *testing.T) {
		t.Parallel()

		alice := newUser(t, "alice", "qwerty")
		bob := newUser(t, "bob", "hunter2")

		require.NoError(t, alice.Follow(bob))
		assert.Equal(t, 1, bob.Followers())
		assert.Zero(t, alice.Followers())
	})

	t.Run("requires login", func(t *testing.T) {
		t.Parallel()

		alice := newUser(t, "alice", "qwerty")
		bob := newUser(t, "bob", "hunter2")

		require.NoError(t, alice.LogOut())
		require.ErrorIs(t, alice.Follow(bob), user.ErrNotLoggedIn)
		require.ErrorIs(t, alice.Unfollow(bob), user.ErrNotLoggedIn)
	})

	t.Run("self-follow is rejected", func(t *testing.T) {
		t.Parallel()

		alice := newUser(t, "alice", "qwerty")
		require.ErrorIs(t, alice.Follow(alice), user.ErrSelfFollow)
		assert.Zero(t, alice.Followers())
	})

	t.Run("unfollow a non-followed user fails", func(t *testing.T) {
		t.Parallel()

		alice := newUser(t, "alice", "qwerty")
		bob := newUser(t, "bob", "hunter2")

		require.ErrorIs(t, alice.Unfollow(bob), user.ErrNotFollowing)
	})

	t.Run("unfollow removes the registration", func(t *testing.T) {
		t.Parallel()

		alice := newUser(t, "alice", "qwerty")
		bob := newUser(t, "bob", "hunter2")

		require.NoError(t, alice.Follow(bob))
		require.NoError(t, alice.Unfollow(bob))
		assert.Zero(t, bob.Followers())
		require.ErrorIs(t, alice.Unfollow(bob), user.ErrNotFollowing)
	})
}

func TestPublish(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates and records the post", func(t *testing.T) {
		t.Parallel()

		alice := newUser(t, "alice", "qwerty")
		p, err := alice.Publish(ctx, post.KindText, "hello", 0, "")
		require.NoError(t, err)
		assert.Equal(t, "alice", p.AuthorName())
		require.Len(t, alice.Posts(), 1)
		assert.Equal(t, p.ID(), alice.Posts()[0].ID())
	})

	t.Run("requires login", func(t *testing.T) {
		t.Parallel()

		alice := newUser(t, "alice", "qwerty")
		require.NoError(t, alice.LogOut())

		_, err := alice.Publish(ctx, post.KindText, "hello", 0, "")
		require.ErrorIs(t, err, user.ErrNotLoggedIn)
		assert.Empty(t, alice.Posts())
	})

	t.Run("unknown kind propagates", func(t *testing.T) {
		t.Parallel()

		alice := newUser(t, "alice", "qwerty")
		_, err := alice.Publish(ctx, post.Kind("Bogus"), "hello", 0, "")
		require.ErrorIs(t, err, post.ErrUnknownKind)
		assert.Empty(t, alice.Posts())
	})

	t.Run("fans out to every follower exactly once", func(t *testing.T) {
		t.Parallel()

		alice := newUser(t, "alice", "qwerty")
		bob := newUser(t, "bob", "hunter2")
		carol := newUser(t, "carol", "pa55word")

		require.NoError(t, bob.Follow(alice))
		require.NoError(t, carol.Follow(alice))

		_, err := alice.Publish(ctx, post.KindText, "hello", 0, "")
		require.NoError(t, err)

		for _, follower := range []*user.User{bob, carol} {
			got, err := follower.Notifications()
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, notification.KindNewPost, got[0].Kind)
			assert.Equal(t, "alice", got[0].Actor)
		}

		// The author does not notify itself.
		own, err := alice.Notifications()
		require.NoError(t, err)
		assert.Empty(t, own)
	})

	t.Run("no delivery after unfollow, none retroactively", func(t *testing.T) {
		t.Parallel()

		alice := newUser(t, "alice", "qwerty")
		bob := newUser(t, "bob", "hunter2")

		require.NoError(t, bob.Follow(alice))
		_, err := alice.Publish(ctx, post.KindText, "first", 0, "")
		require.NoError(t, err)

		require.NoError(t, bob.Unfollow(alice))
		_, err = alice.Publish(ctx, post.KindText, "second", 0, "")
		require.NoError(t, err)

		got, err := bob.Notifications()
		require.NoError(t, err)
		require.Len(t, got, 1)
	})
}

func TestNotifications(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("requires login", func(t *testing.T) {
		t.Parallel()

		alice := newUser(t, "alice", "qwerty")
		require.NoError(t, alice.LogOut())

		_, err := alice.Notifications()
		require.ErrorIs(t, err, user.ErrNotLoggedIn)
	})

	t.Run("arrival order across actions", func(t *testing.T) {
		t.Parallel()

		alice := newUser(t, "alice", "qwerty")
		bob := newUser(t, "bob", "hunter2")

		p, err := alice.Publish(ctx, post.KindText, "hello", 0, "")
		require.NoError(t, err)

		p.Like(ctx, bob)
		p.Comment(ctx, bob, "nice")

		got, err := alice.Notifications()
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, notification.KindNewLike, got[0].Kind)
		assert.Equal(t, notification.KindNewComment, got[1].Kind)
		assert.Equal(t, "nice", got[1].Comment)
	})
}

func TestString(t *testing.T) {
	t.Parallel()

	alice := newUser(t, "alice", "qwerty")
	bob := newUser(t, "bob", "hunter2")

	require.NoError(t, bob.Follow(alice))
	_, err := alice.Publish(context.Background(), post.KindText, "hello", 0, "")
	require.NoError(t, err)

	assert.Equal(t, "User name: alice, Number of posts: 1, Number of followers: 1", alice.String())
}
