package user

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/socialkit/pkg/inbox"
	"github.com/dmitrymomot/socialkit/pkg/logger"
	"github.com/dmitrymomot/socialkit/pkg/notification"
	"github.com/dmitrymomot/socialkit/pkg/post"
)

// User is an account in the social network. It owns its inbox and authored
// posts, and keeps references to its followers' inboxes for new-post fan-out.
// The plaintext password is digested at construction and never retained.
//
// A user starts logged in: signing up is the first session.
type User struct {
	username     string
	passwordHash []byte
	logger       *slog.Logger
	postOpts     []post.Option
	inbox        *inbox.Inbox

	mu        sync.Mutex
	loggedIn  bool
	followers map[string]*inbox.Inbox // follower username -> follower's inbox
	posts     []post.Post
}

// Option configures user construction.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	bcryptCost int
	inboxOpts  []inbox.Option
	postOpts   []post.Option
}

// WithLogger sets the user's logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBcryptCost sets the bcrypt cost for the password digest.
func WithBcryptCost(cost int) Option {
	return func(c *config) { c.bcryptCost = cost }
}

// WithInboxOptions passes options through to the user's inbox, typically to
// attach a deliverer.
func WithInboxOptions(opts ...inbox.Option) Option {
	return func(c *config) { c.inboxOpts = append(c.inboxOpts, opts...) }
}

// WithPostOptions passes options through to every post the user publishes,
// typically to attach an image renderer.
func WithPostOptions(opts ...post.Option) Option {
	return func(c *config) { c.postOpts = append(c.postOpts, opts...) }
}

// New creates a user with the given credentials, logged in.
func New(username, password string, opts ...Option) (*User, error) {
	c := &config{
		logger:     slog.Default(),
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(c)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return &User{
		username:     username,
		passwordHash: hash,
		logger:       c.logger,
		postOpts:     c.postOpts,
		inbox:        inbox.New(username, c.inboxOpts...),
		loggedIn:     true,
		followers:    make(map[string]*inbox.Inbox),
	}, nil
}

// Username returns the unique account name.
func (u *User) Username() string {
	return u.username
}

// Inbox returns the user's notification inbox.
func (u *User) Inbox() *inbox.Inbox {
	return u.inbox
}

// Authenticate verifies the password against the stored digest. It has no
// observable effect beyond the verdict.
func (u *User) Authenticate(password string) error {
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return fmt.Errorf("%w for %s", ErrInvalidPassword, u.username)
	}
	return nil
}

// LoggedIn reports the current login state.
func (u *User) LoggedIn() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.loggedIn
}

// LogIn authenticates and transitions to logged in. Logging in twice without
// an intervening LogOut fails with ErrAlreadyLoggedIn.
func (u *User) LogIn(password string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.loggedIn {
		return ErrAlreadyLoggedIn
	}
	if err := u.Authenticate(password); err != nil {
		return err
	}
	u.loggedIn = true
	u.logger.Info("user connected", logger.Username(u.username))
	return nil
}

// LogOut transitions to logged out. Logging out twice fails with ErrNotLoggedIn.
func (u *User) LogOut() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.loggedIn {
		return ErrNotLoggedIn
	}
	u.loggedIn = false
	u.logger.Info("user disconnected", logger.Username(u.username))
	return nil
}

// Follow subscribes u to other's future posts. Requires an active login.
// Self-follow is rejected so that a user's own inbox never ends up in its
// follower set.
func (u *User) Follow(other *User) error {
	if u.username == other.username {
		return ErrSelfFollow
	}
	if err := u.requireLogin(); err != nil {
		return err
	}

	other.addFollower(u.username, u.inbox)
	u.logger.Info("started following",
		logger.Username(u.username),
		slog.String("followee", other.username),
	)
	return nil
}

// Unfollow removes u from other's follower set. Requires an active login.
// Unfollowing a user that is not followed fails with ErrNotFollowing.
func (u *User) Unfollow(other *User) error {
	if err := u.requireLogin(); err != nil {
		return err
	}

	if !other.removeFollower(u.username) {
		return fmt.Errorf("%w: %s", ErrNotFollowing, other.username)
	}
	u.logger.Info("unfollowed",
		logger.Username(u.username),
		slog.String("followee", other.username),
	)
	return nil
}

// Publish creates a post through the factory, records it, and fans a fresh
// new-post notification out to every follower inbox exactly once. Requires an
// active login. Returns the created post.
func (u *User) Publish(ctx context.Context, kind post.Kind, content string, price float64, location string) (post.Post, error) {
	if err := u.requireLogin(); err != nil {
		return nil, err
	}

	p, err := post.New(u, kind, content, price, location, u.postOpts...)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	u.posts = append(u.posts, p)
	targets := make([]*inbox.Inbox, 0, len(u.followers))
	for _, in := range u.followers {
		targets = append(targets, in)
	}
	u.mu.Unlock()

	// Fan-out happens outside the user lock: each target only needs its own
	// inbox append.
	for _, in := range targets {
		in.Notify(ctx, notification.NewPost(u.username))
	}

	u.logger.LogAttrs(ctx, slog.LevelInfo, "post published",
		logger.Username(u.username),
		logger.PostID(p.ID()),
		logger.Kind(string(kind)),
		logger.Count(len(targets)),
	)
	return p, nil
}

// Notifications returns the user's inbox contents in arrival order.
// Requires an active login.
func (u *User) Notifications() ([]notification.Notification, error) {
	if err := u.requireLogin(); err != nil {
		return nil, err
	}
	return u.inbox.All(), nil
}

// Posts returns the user's published posts in publication order.
func (u *User) Posts() []post.Post {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]post.Post, len(u.posts))
	copy(out, u.posts)
	return out
}

// Followers reports the current follower count.
func (u *User) Followers() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.followers)
}

// String renders the roster line for the user.
func (u *User) String() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fmt.Sprintf("User name: %s, Number of posts: %d, Number of followers: %d",
		u.username, len(u.posts), len(u.followers))
}

func (u *User) requireLogin() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.loggedIn {
		return ErrNotLoggedIn
	}
	return nil
}

func (u *User) addFollower(follower string, in *inbox.Inbox) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.followers[follower] = in
}

func (u *User) removeFollower(follower string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.followers[follower]; !ok {
		return false
	}
	delete(u.followers, follower)
	return true
}
