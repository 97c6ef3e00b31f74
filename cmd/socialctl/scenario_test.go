package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/socialkit/pkg/network"
	"github.com/dmitrymomot/socialkit/pkg/user"
)

const demoScenario = `
steps:
  - action: signup
    user: alice
    password: qwerty1
  - action: signup
    user: bob
    password: hunter2
  - action: follow
    user: bob
    target: alice
  - action: post
    user: alice
    kind: Text
    content: hello world
  - action: like
    user: bob
    author: alice
    post: 0
  - action: comment
    user: bob
    author: alice
    post: 0
    text: welcome!
  - action: post
    user: alice
    kind: Sale
    content: bicycle
    price: 100
    location: Haifa
  - action: discount
    author: alice
    post: 1
    percent: 10
    password: qwerty1
  - action: notifications
    user: bob
  - action: users
`

func testNetwork() *network.Network {
	return network.New("Testbook",
		network.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		network.WithUserOptions(user.WithBcryptCost(bcrypt.MinCost)),
	)
}

func TestScenarioRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoScenario), 0o644))

	sc, err := loadScenario(path)
	require.NoError(t, err)
	require.Len(t, sc.Steps, 10)

	var out bytes.Buffer
	require.NoError(t, sc.run(testNetwork(), &out))

	assert.Contains(t, out.String(), "alice published a post:\n\"hello world\"")
	assert.Contains(t, out.String(), "new price: 90")
	assert.Contains(t, out.String(), "bob's notifications:\nalice has a new post")
	assert.Contains(t, out.String(), "User name: alice, Number of posts: 2, Number of followers: 1")
}

func TestScenarioErrors(t *testing.T) {
	t.Run("unknown action", func(t *testing.T) {
		sc := &scenario{Steps: []step{{Action: "teleport", User: "alice"}}}
		err := sc.run(testNetwork(), io.Discard)
		require.ErrorContains(t, err, `unknown action "teleport"`)
	})

	t.Run("step errors carry position", func(t *testing.T) {
		sc := &scenario{Steps: []step{{Action: "login", User: "ghost", Password: "nope"}}}
		err := sc.run(testNetwork(), io.Discard)
		require.ErrorIs(t, err, network.ErrUserNotFound)
		require.ErrorContains(t, err, "step 1 (login)")
	})

	t.Run("missing scenario file", func(t *testing.T) {
		_, err := loadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
