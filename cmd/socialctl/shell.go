package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/dmitrymomot/socialkit/pkg/inbox"
	"github.com/dmitrymomot/socialkit/pkg/network"
	"github.com/dmitrymomot/socialkit/pkg/post"
	"github.com/dmitrymomot/socialkit/pkg/user"
)

var errQuit = errors.New("quit")

type shell struct {
	net    *network.Network
	stream *inbox.StreamDeliverer
	out    io.Writer

	prompt  *color.Color
	errText *color.Color
}

func newShell(net *network.Network, stream *inbox.StreamDeliverer) *shell {
	return &shell{
		net:     net,
		stream:  stream,
		prompt:  color.New(color.FgYellow, color.Bold),
		errText: color.New(color.FgRed),
	}
}

func (s *shell) loop() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt.Sprintf("%s> ", s.net.Name()),
		HistoryFile:     "/tmp/socialctl_history",
		InterruptPrompt: "^C",
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	s.out = rl.Stdout()

	fmt.Fprintln(s.out, "socialkit console, type 'help' for commands")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil { // io.EOF on ^D
			return nil
		}

		if err := s.dispatch(strings.Fields(line)); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			s.errText.Fprintln(s.out, "error:", err)
		}
	}
}

func (s *shell) dispatch(args []string) error {
	if len(args) == 0 {
		return nil
	}
	ctx := context.Background()

	switch cmd, rest := args[0], args[1:]; cmd {
	case "help":
		s.printHelp()
		return nil
	case "quit", "exit":
		return errQuit
	case "signup":
		return s.signup(rest)
	case "login":
		return s.login(rest)
	case "logout":
		return s.logout(rest)
	case "follow":
		return s.follow(rest)
	case "unfollow":
		return s.unfollow(rest)
	case "post":
		return s.post(ctx, rest)
	case "sale":
		return s.sale(ctx, rest)
	case "like":
		return s.like(ctx, rest)
	case "comment":
		return s.comment(ctx, rest)
	case "discount":
		return s.discount(rest)
	case "sold":
		return s.sold(rest)
	case "show":
		return s.show(ctx, rest)
	case "notifications":
		return s.notifications(rest)
	case "users":
		fmt.Fprint(s.out, s.net.String())
		return nil
	case "watch":
		return s.watch(ctx, rest)
	default:
		return fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
}

func (s *shell) printHelp() {
	fmt.Fprint(s.out, `commands:
  signup <user> <password>
  login <user> <password>            logout <user>
  follow <user> <other>              unfollow <user> <other>
  post <user> Text|Image <content...>
  sale <user> <price> <location> <content...>
  like <user> <author> <post#>       comment <user> <author> <post#> <text...>
  discount <author> <post#> <percent> <password>
  sold <author> <post#> <password>
  show <author> <post#>              notifications <user>
  users                              watch <user>
  quit
`)
}

func (s *shell) signup(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: signup <user> <password>")
	}
	u, err := s.net.SignUp(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "welcome, %s\n", u.Username())
	return nil
}

func (s *shell) login(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: login <user> <password>")
	}
	if err := s.net.LogIn(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s connected\n", args[0])
	return nil
}

func (s *shell) logout(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: logout <user>")
	}
	if err := s.net.LogOut(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s disconnected\n", args[0])
	return nil
}

func (s *shell) follow(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: follow <user> <other>")
	}
	follower, followee, err := s.userPair(args[0], args[1])
	if err != nil {
		return err
	}
	if err := follower.Follow(followee); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s started following %s\n", args[0], args[1])
	return nil
}

func (s *shell) unfollow(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: unfollow <user> <other>")
	}
	follower, followee, err := s.userPair(args[0], args[1])
	if err != nil {
		return err
	}
	if err := follower.Unfollow(followee); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s unfollowed %s\n", args[0], args[1])
	return nil
}

func (s *shell) post(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.New("usage: post <user> Text|Image <content...>")
	}
	u, err := s.net.User(args[0])
	if err != nil {
		return err
	}
	p, err := u.Publish(ctx, post.Kind(args[1]), strings.Join(args[2:], " "), 0, "")
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, p.Describe())
	return nil
}

func (s *shell) sale(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return errors.New("usage: sale <user> <price> <location> <content...>")
	}
	u, err := s.net.User(args[0])
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("bad price %q: %w", args[1], err)
	}
	p, err := u.Publish(ctx, post.KindSale, strings.Join(args[3:], " "), price, args[2])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, p.Describe())
	return nil
}

func (s *shell) like(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: like <user> <author> <post#>")
	}
	u, err := s.net.User(args[0])
	if err != nil {
		return err
	}
	p, err := s.findPost(args[1], args[2])
	if err != nil {
		return err
	}
	p.Like(ctx, u)
	return nil
}

func (s *shell) comment(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return errors.New("usage: comment <user> <author> <post#> <text...>")
	}
	u, err := s.net.User(args[0])
	if err != nil {
		return err
	}
	p, err := s.findPost(args[1], args[2])
	if err != nil {
		return err
	}
	p.Comment(ctx, u, strings.Join(args[3:], " "))
	return nil
}

func (s *shell) discount(args []string) error {
	if len(args) != 4 {
		return errors.New("usage: discount <author> <post#> <percent> <password>")
	}
	sale, err := s.findSale(args[0], args[1])
	if err != nil {
		return err
	}
	percent, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("bad percent %q: %w", args[2], err)
	}
	if err := sale.Discount(percent, args[3]); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "new price: %v\n", sale.Price())
	return nil
}

func (s *shell) sold(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: sold <author> <post#> <password>")
	}
	sale, err := s.findSale(args[0], args[1])
	if err != nil {
		return err
	}
	if err := sale.MarkSold(args[2]); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s's product is sold\n", args[0])
	return nil
}

func (s *shell) show(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: show <author> <post#>")
	}
	p, err := s.findPost(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, p.Describe())
	if img, ok := p.(*post.ImagePost); ok {
		fmt.Fprintln(s.out, img.Display(ctx))
	}
	return nil
}

func (s *shell) notifications(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: notifications <user>")
	}
	u, err := s.net.User(args[0])
	if err != nil {
		return err
	}
	notifs, err := u.Notifications()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s's notifications:\n", u.Username())
	for _, n := range notifs {
		fmt.Fprintln(s.out, n.Summary())
	}
	return nil
}

// watch streams live deliveries for a user until interrupted by a new line.
func (s *shell) watch(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: watch <user>")
	}
	u, err := s.net.User(args[0])
	if err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sub := s.stream.Subscribe(watchCtx, u.Username())
	defer sub.Close()

	fmt.Fprintf(s.out, "watching %s, press enter to stop\n", u.Username())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for n := range sub.Receive() {
			fmt.Fprintln(s.out, inbox.DeliveryLine(u.Username(), n))
		}
	}()

	// Block until the user hits enter.
	var discard string
	_, _ = fmt.Scanln(&discard)
	cancel()
	<-done
	return nil
}

func (s *shell) userPair(a, b string) (x, y *user.User, err error) {
	ua, err := s.net.User(a)
	if err != nil {
		return nil, nil, err
	}
	ub, err := s.net.User(b)
	if err != nil {
		return nil, nil, err
	}
	return ua, ub, nil
}

func (s *shell) findPost(author, index string) (post.Post, error) {
	u, err := s.net.User(author)
	if err != nil {
		return nil, err
	}
	posts := u.Posts()
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 || i >= len(posts) {
		return nil, fmt.Errorf("no post #%s for %s", index, author)
	}
	return posts[i], nil
}

func (s *shell) findSale(author, index string) (*post.SalePost, error) {
	p, err := s.findPost(author, index)
	if err != nil {
		return nil, err
	}
	sale, ok := p.(*post.SalePost)
	if !ok {
		return nil, fmt.Errorf("post #%s of %s is not a sale post", index, author)
	}
	return sale, nil
}
