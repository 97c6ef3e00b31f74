package network

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dmitrymomot/socialkit/pkg/logger"
	"github.com/dmitrymomot/socialkit/pkg/user"
)

const (
	minPasswordLen = 4
	maxPasswordLen = 8
)

// Network is the user registry of one social network: the directory of
// accounts by username, and the entry point for sign-up and session
// management.
//
// New hands out independent instances for dependency injection and tests;
// Init in lifecycle.go provides the process-wide construct-once instance.
type Network struct {
	name     string
	logger   *slog.Logger
	userOpts []user.Option

	mu    sync.RWMutex
	users map[string]*user.User
}

// Option configures a Network.
type Option func(*Network)

// WithLogger sets the network's logger, also handed to created users.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithUserOptions passes options through to every signed-up user, typically
// to attach deliverers and renderers.
func WithUserOptions(opts ...user.Option) Option {
	return func(n *Network) {
		n.userOpts = append(n.userOpts, opts...)
	}
}

// New creates a named, empty network.
func New(name string, opts ...Option) *Network {
	n := &Network{
		name:   name,
		logger: slog.Default(),
		users:  make(map[string]*user.User),
	}
	for _, opt := range opts {
		opt(n)
	}
	n.logger.Info("social network created", logger.Network(name))
	return n
}

// Name returns the network's name.
func (n *Network) Name() string {
	return n.name
}

// SignUp registers a new account and returns it, logged in. The password must
// be 4 to 8 characters; the username must be unused.
func (n *Network) SignUp(username, password string) (*user.User, error) {
	if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		return nil, fmt.Errorf("%w, provided %d", ErrPasswordLength, l)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, exists := n.users[username]; exists {
		return nil, fmt.Errorf("%w: %s", ErrUsernameTaken, username)
	}

	opts := append([]user.Option{user.WithLogger(n.logger)}, n.userOpts...)
	u, err := user.New(username, password, opts...)
	if err != nil {
		return nil, fmt.Errorf("sign up %s: %w", username, err)
	}
	n.users[username] = u

	n.logger.Info("user signed up",
		logger.Network(n.name),
		logger.Username(username),
	)
	return u, nil
}

// LogIn delegates to the named user's login, propagating its state and
// authentication errors.
func (n *Network) LogIn(username, password string) error {
	u, err := n.User(username)
	if err != nil {
		return err
	}
	return u.LogIn(password)
}

// LogOut delegates to the named user's logout.
func (n *Network) LogOut(username string) error {
	u, err := n.User(username)
	if err != nil {
		return err
	}
	return u.LogOut()
}

// User looks up a registered user by name.
func (n *Network) User(username string) (*user.User, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	u, ok := n.users[username]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, username)
	}
	return u, nil
}

// Users returns all registered users sorted by username.
func (n *Network) Users() []*user.User {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]*user.User, 0, len(n.users))
	for _, u := range n.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Username() < out[j].Username()
	})
	return out
}

// String renders the network roster: a header line followed by one line per
// registered user.
func (n *Network) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s social network:\n", n.name)
	for _, u := range n.Users() {
		b.WriteString(u.String())
		b.WriteByte('\n')
	}
	return b.String()
}
