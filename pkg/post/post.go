package post

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/socialkit/pkg/inbox"
	"github.com/dmitrymomot/socialkit/pkg/logger"
	"github.com/dmitrymomot/socialkit/pkg/notification"
)

// Kind tags the post variant. The factory only accepts the tags below.
type Kind string

const (
	KindText  Kind = "Text"
	KindImage Kind = "Image"
	KindSale  Kind = "Sale"
)

// Author is the contract a post needs from its poster and from users acting
// on it: a stable name, password verification for privileged sale operations,
// and an inbox to route notifications to.
type Author interface {
	Username() string
	Authenticate(password string) error
	Inbox() *inbox.Inbox
}

// Comment is one entry of a post's comment log. The log is ordered and allows
// repeated comments by the same user.
type Comment struct {
	Author    string
	Text      string
	CreatedAt time.Time
}

// Post is the capability shared by every variant. Variant-specific fields
// (image display, sale price) are reached by asserting to *ImagePost or
// *SalePost.
type Post interface {
	ID() string
	Kind() Kind
	AuthorName() string
	Content() string

	Like(ctx context.Context, liker Author)
	Comment(ctx context.Context, commenter Author, text string)
	Likes() []string
	LikedBy(username string) bool
	Comments() []Comment

	// Describe renders the variant-specific human-readable form.
	Describe() string
}

// base carries the state and behavior every variant shares. Variants embed it
// and add their own fields plus Describe.
type base struct {
	id      string
	kind    Kind
	author  Author
	content string
	logger  *slog.Logger

	mu       sync.Mutex
	likes    map[string]struct{}
	comments []Comment
}

func newBase(author Author, kind Kind, content string, log *slog.Logger) base {
	if log == nil {
		log = slog.Default()
	}
	return base{
		id:      uuid.New().String(),
		kind:    kind,
		author:  author,
		content: content,
		logger:  log,
		likes:   make(map[string]struct{}),
	}
}

func (p *base) ID() string         { return p.id }
func (p *base) Kind() Kind         { return p.kind }
func (p *base) AuthorName() string { return p.author.Username() }
func (p *base) Content() string    { return p.content }

// Like adds liker to the like set and notifies the author.
//
// The author never appears in its own like set and never notifies itself.
// A repeated like by the same user is a no-op: the set is unchanged and no
// second notification is sent.
func (p *base) Like(ctx context.Context, liker Author) {
	name := liker.Username()
	if name == p.author.Username() {
		return
	}

	p.mu.Lock()
	if _, ok := p.likes[name]; ok {
		p.mu.Unlock()
		return
	}
	p.likes[name] = struct{}{}
	p.mu.Unlock()

	p.author.Inbox().Notify(ctx, notification.NewLike(name))
	p.logger.LogAttrs(ctx, slog.LevelDebug, "post liked",
		logger.PostID(p.id),
		logger.Username(name),
	)
}

// Comment appends to the comment log and notifies the author. The same user
// may comment any number of times; self-comments are recorded but never
// notify.
func (p *base) Comment(ctx context.Context, commenter Author, text string) {
	name := commenter.Username()

	p.mu.Lock()
	p.comments = append(p.comments, Comment{
		Author:    name,
		Text:      text,
		CreatedAt: time.Now(),
	})
	p.mu.Unlock()

	if name == p.author.Username() {
		return
	}

	p.author.Inbox().Notify(ctx, notification.NewComment(name, text))
	p.logger.LogAttrs(ctx, slog.LevelDebug, "post commented",
		logger.PostID(p.id),
		logger.Username(name),
	)
}

// Likes returns the usernames that liked the post, sorted for stable output.
func (p *base) Likes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.likes))
	for name := range p.likes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// LikedBy reports whether the named user liked the post.
func (p *base) LikedBy(username string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.likes[username]
	return ok
}

// Comments returns the comment log in arrival order.
func (p *base) Comments() []Comment {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Comment, len(p.comments))
	copy(out, p.comments)
	return out
}
