package inbox

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dmitrymomot/socialkit/pkg/notification"
)

// StreamDeliverer pushes notifications to live subscribers, one broadcast
// domain per inbox owner. Subscribers with full buffers are dropped rather
// than blocking the triggering social action.
//
// The set of per-owner broadcast domains is LRU-bounded so that an unbounded
// user population cannot pin memory for owners nobody is watching.
type StreamDeliverer struct {
	mu         sync.Mutex
	streams    *lru.Cache[string, *ownerStream]
	bufferSize int
}

// Subscription receives the live notification feed of one inbox owner.
type Subscription struct {
	mu     sync.Mutex
	ch     chan notification.Notification
	closed bool
}

// Receive returns the channel the subscription's notifications arrive on.
// The channel is closed when the subscription is closed or evicted.
func (s *Subscription) Receive() <-chan notification.Notification {
	return s.ch
}

// Close stops the subscription. Idempotent.
func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		close(s.ch)
		s.closed = true
	}
}

func (s *Subscription) send(n notification.Notification) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- n:
		return true
	default:
		return false
	}
}

type ownerStream struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

func (o *ownerStream) broadcast(n notification.Notification) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for sub := range o.subs {
		if !sub.send(n) {
			// Slow or closed subscriber: cut it loose instead of blocking.
			delete(o.subs, sub)
			sub.Close()
		}
	}
}

func (o *ownerStream) closeAll() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for sub := range o.subs {
		sub.Close()
	}
	clear(o.subs)
}

// NewStreamDeliverer creates a stream deliverer. bufferSize is the per
// subscriber channel buffer (minimum 1), maxOwners bounds the number of
// owners with live broadcast state.
func NewStreamDeliverer(bufferSize, maxOwners int) (*StreamDeliverer, error) {
	streams, err := lru.NewWithEvict(max(maxOwners, 1), func(owner string, s *ownerStream) {
		s.closeAll()
	})
	if err != nil {
		return nil, err
	}
	return &StreamDeliverer{
		streams:    streams,
		bufferSize: max(bufferSize, 1),
	}, nil
}

// Deliver pushes the notification to every live subscriber of owner.
// Owners without subscribers cost nothing.
func (d *StreamDeliverer) Deliver(ctx context.Context, owner string, n notification.Notification) error {
	d.mu.Lock()
	s, ok := d.streams.Get(owner)
	d.mu.Unlock()
	if !ok {
		return nil
	}
	s.broadcast(n)
	return nil
}

// Subscribe opens a live feed for owner's deliveries. The subscription is
// closed when ctx is cancelled, Close is called, or the owner's broadcast
// state is evicted.
func (d *StreamDeliverer) Subscribe(ctx context.Context, owner string) *Subscription {
	sub := &Subscription{ch: make(chan notification.Notification, d.bufferSize)}

	d.mu.Lock()
	s, ok := d.streams.Get(owner)
	if !ok {
		s = &ownerStream{subs: make(map[*Subscription]struct{})}
		d.streams.Add(owner, s)
	}
	d.mu.Unlock()

	s.mu.Lock()
	s.subs[sub] = struct{}{}
	s.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			s.mu.Lock()
			delete(s.subs, sub)
			s.mu.Unlock()
			sub.Close()
		}()
	}

	return sub
}

// Close closes every live subscription.
func (d *StreamDeliverer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.streams.Purge()
}
