package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"Ponk/audio"
	"Ponk/config"
	"Ponk/core"
	"Ponk/logger"
	"Ponk/terminal"
	"Ponk/window"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		logger.Log.Error(err.Error())
		fmt.Fprintln(os.Stderr, err)
		logger.Log.Close()
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := config.Flags()
	if err := flags.Parse(args); err != nil {
		return err
	}
	dir, _ := flags.GetString("config-dir")
	env, _ := flags.GetString("env")

	if err := logger.Log.Init(dir); err != nil {
		return err
	}
	defer logger.Log.Close()

	cfg, err := config.Load(dir, env, flags)
	if err != nil {
		return err
	}
	logger.Log.Info(fmt.Sprintf(logger.ConfigLoadedMsg, cfg.Env, cfg.View, cfg.Seed))

	match := core.NewMatch(cfg.Settings(), core.NewSeededCoin(cfg.Seed))

	var player *audio.Player
	if cfg.Sound {
		player = audio.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Log.Warn(fmt.Sprintf(logger.SoundInitFailedMsg, err))
			player = nil
		} else {
			defer player.Close()
		}
	}

	switch cfg.View {
	case config.ViewWindow:
		err = window.Run(match, cues(player))
	default:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = terminal.Run(ctx, match, cues(player))
	}

	logger.Log.Info(fmt.Sprintf(logger.ShutdownMsg, match.Score().Text()))
	return err
}

// cues keeps a nil *audio.Player from becoming a non-nil interface.
func cues(p *audio.Player) interface{ Play([]core.Event) } {
	if p == nil {
		return nil
	}
	return p
}
