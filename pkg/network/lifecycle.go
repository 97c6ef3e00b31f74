package network

import "sync"

// The process-wide instance. The original singleton pattern is replaced by an
// explicit initialization step: callers that want one shared network call
// Init once and pass the result around; nothing here is consulted implicitly.
var (
	instanceMu sync.Mutex
	instance   *Network
)

// InitOption configures Init's construct-once behavior.
type InitOption func(*initConfig)

type initConfig struct {
	reuseExisting bool
	netOpts       []Option
}

// WithReuseExisting makes a second Init return the existing instance instead
// of failing. The source material disagrees on which behavior the registry
// should have, so both are supported; failing is the default.
func WithReuseExisting() InitOption {
	return func(c *initConfig) { c.reuseExisting = true }
}

// WithNetworkOptions passes construction options to the network Init creates.
func WithNetworkOptions(opts ...Option) InitOption {
	return func(c *initConfig) { c.netOpts = append(c.netOpts, opts...) }
}

// Init creates the process-wide network instance. A second call fails with
// ErrAlreadyInitialized unless WithReuseExisting is set, in which case the
// first instance is returned and the new name is ignored.
func Init(name string, opts ...InitOption) (*Network, error) {
	c := &initConfig{}
	for _, opt := range opts {
		opt(c)
	}

	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance != nil {
		if c.reuseExisting {
			return instance, nil
		}
		return nil, ErrAlreadyInitialized
	}

	instance = New(name, c.netOpts...)
	return instance, nil
}

// Instance returns the process-wide network created by Init.
func Instance() (*Network, error) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance == nil {
		return nil, ErrNotInitialized
	}
	return instance, nil
}

// Reset clears the process-wide instance so Init can run again.
// Intended for tests.
func Reset() {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = nil
}
