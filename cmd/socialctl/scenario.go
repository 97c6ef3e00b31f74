package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/socialkit/pkg/network"
	"github.com/dmitrymomot/socialkit/pkg/post"
)

// scenario is a scripted sequence of social actions, used for demos and
// smoke-testing a wired-up network from the command line.
type scenario struct {
	Steps []step `yaml:"steps"`
}

type step struct {
	Action   string  `yaml:"action"`
	User     string  `yaml:"user"`
	Password string  `yaml:"password,omitempty"`
	Target   string  `yaml:"target,omitempty"` // follow/unfollow
	Kind     string  `yaml:"kind,omitempty"`   // post
	Content  string  `yaml:"content,omitempty"`
	Price    float64 `yaml:"price,omitempty"`
	Location string  `yaml:"location,omitempty"`
	Author   string  `yaml:"author,omitempty"` // like/comment: whose post
	Post     int     `yaml:"post,omitempty"`   // like/comment: post index
	Text     string  `yaml:"text,omitempty"`   // comment body
	Percent  float64 `yaml:"percent,omitempty"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var sc scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &sc, nil
}

func (sc *scenario) run(net *network.Network, out io.Writer) error {
	ctx := context.Background()

	for i, st := range sc.Steps {
		if err := sc.runStep(ctx, net, out, st); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Action, err)
		}
	}
	return nil
}

func (sc *scenario) runStep(ctx context.Context, net *network.Network, out io.Writer, st step) error {
	switch st.Action {
	case "signup":
		_, err := net.SignUp(st.User, st.Password)
		return err

	case "login":
		return net.LogIn(st.User, st.Password)

	case "logout":
		return net.LogOut(st.User)

	case "follow", "unfollow":
		u, err := net.User(st.User)
		if err != nil {
			return err
		}
		target, err := net.User(st.Target)
		if err != nil {
			return err
		}
		if st.Action == "follow" {
			return u.Follow(target)
		}
		return u.Unfollow(target)

	case "post":
		u, err := net.User(st.User)
		if err != nil {
			return err
		}
		p, err := u.Publish(ctx, post.Kind(st.Kind), st.Content, st.Price, st.Location)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, p.Describe())
		return nil

	case "like", "comment":
		u, err := net.User(st.User)
		if err != nil {
			return err
		}
		author, err := net.User(st.Author)
		if err != nil {
			return err
		}
		posts := author.Posts()
		if st.Post < 0 || st.Post >= len(posts) {
			return fmt.Errorf("no post #%d for %s", st.Post, st.Author)
		}
		if st.Action == "like" {
			posts[st.Post].Like(ctx, u)
		} else {
			posts[st.Post].Comment(ctx, u, st.Text)
		}
		return nil

	case "discount", "sold":
		author, err := net.User(st.Author)
		if err != nil {
			return err
		}
		posts := author.Posts()
		if st.Post < 0 || st.Post >= len(posts) {
			return fmt.Errorf("no post #%d for %s", st.Post, st.Author)
		}
		sale, ok := posts[st.Post].(*post.SalePost)
		if !ok {
			return fmt.Errorf("post #%d of %s is not a sale post", st.Post, st.Author)
		}
		if st.Action == "discount" {
			if err := sale.Discount(st.Percent, st.Password); err != nil {
				return err
			}
			fmt.Fprintf(out, "new price: %v\n", sale.Price())
			return nil
		}
		return sale.MarkSold(st.Password)

	case "notifications":
		u, err := net.User(st.User)
		if err != nil {
			return err
		}
		notifs, err := u.Notifications()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s's notifications:\n", u.Username())
		for _, n := range notifs {
			fmt.Fprintln(out, n.Summary())
		}
		return nil

	case "users":
		fmt.Fprint(out, net.String())
		return nil

	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}
