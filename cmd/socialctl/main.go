// Command socialctl is a console client for a socialkit network: an
// interactive shell for signing up users, publishing posts, and watching
// notifications arrive, plus a YAML scenario runner for scripted demos.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/socialkit/pkg/config"
	"github.com/dmitrymomot/socialkit/pkg/imaging"
	"github.com/dmitrymomot/socialkit/pkg/inbox"
	"github.com/dmitrymomot/socialkit/pkg/logger"
	"github.com/dmitrymomot/socialkit/pkg/network"
	"github.com/dmitrymomot/socialkit/pkg/post"
	"github.com/dmitrymomot/socialkit/pkg/user"
)

type appConfig struct {
	NetworkName string `env:"SOCIALKIT_NETWORK_NAME" envDefault:"socialkit"`
	LogLevel    string `env:"SOCIALKIT_LOG_LEVEL" envDefault:"warn"`
	LogFormat   string `env:"SOCIALKIT_LOG_FORMAT" envDefault:"text"`
	ImageDir    string `env:"SOCIALKIT_IMAGE_DIR" envDefault:"."`
	ImageCache  int    `env:"SOCIALKIT_IMAGE_CACHE" envDefault:"64"`
}

func main() {
	scriptPath := flag.String("script", "", "run a YAML scenario instead of the interactive shell")
	flag.Parse()

	if err := run(*scriptPath); err != nil {
		fmt.Fprintln(os.Stderr, "socialctl:", err)
		os.Exit(1)
	}
}

func run(scriptPath string) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithLevel(parseLevel(cfg.LogLevel)),
		logger.WithOutput(os.Stderr),
	)
	logger.SetAsDefault(log)

	renderer, err := imaging.NewFileRenderer(os.DirFS(cfg.ImageDir), cfg.ImageCache, imaging.WithLogger(log))
	if err != nil {
		return err
	}

	stream, err := inbox.NewStreamDeliverer(16, 1024)
	if err != nil {
		return err
	}
	defer stream.Close()

	deliverer := inbox.NewMultiDeliverer([]inbox.Deliverer{
		inbox.NewConsoleDeliverer(os.Stdout, inbox.WithColor()),
		stream,
	}, log)

	net, err := network.Init(cfg.NetworkName, network.WithNetworkOptions(
		network.WithLogger(log),
		network.WithUserOptions(
			user.WithInboxOptions(inbox.WithDeliverer(deliverer)),
			user.WithPostOptions(post.WithRenderer(renderer)),
		),
	))
	if err != nil {
		return err
	}

	if scriptPath != "" {
		sc, err := loadScenario(scriptPath)
		if err != nil {
			return err
		}
		return sc.run(net, os.Stdout)
	}

	sh := newShell(net, stream)
	return sh.loop()
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return level
}
