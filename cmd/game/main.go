package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/highscore"
	"github.com/tomz197/invaders/internal/loop"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/render"
	"github.com/tomz197/invaders/internal/tui"
	"golang.org/x/term"
)

func main() {
	configPath := flag.String("config", config.GetEnv("INVADERS_CONFIG", ""), "settings YAML file")
	scoresPath := flag.String("scores", config.GetEnv("INVADERS_SCORES", defaultScoresPath()), "high score file")
	useTcell := flag.Bool("tcell", false, "draw with tcell instead of raw ANSI output")
	mute := flag.Bool("mute", false, "disable sound")
	difficulty := flag.Int("difficulty", 1, "starting difficulty (1-6)")
	flag.Parse()

	if err := run(*configPath, *scoresPath, *useTcell, *mute, *difficulty); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, scoresPath string, useTcell, mute bool, difficulty int) error {
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file.
	logger, closeLog, err := newLogger(config.GetEnv("LOG_FILE", ""), config.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		return err
	}
	defer closeLog()

	var player object.AudioPlayer = audio.NewSilent()
	if !mute {
		if sp, err := audio.NewSpeaker(); err != nil {
			logger.Warn("no audio device, playing silently", "err", err)
		} else {
			defer sp.Close()
			player = sp
		}
	}

	var frontend loop.Frontend
	if useTcell {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		f := tui.New(screen, settings.Field)
		defer f.Close()
		frontend = f
	} else {
		fd := int(os.Stdin.Fd())
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to enable raw mode: %w", err)
		}
		defer func() {
			_ = term.Restore(fd, oldState)
		}()
		t := render.NewTerminal(bufio.NewReader(os.Stdin), os.Stdout, nil, settings.Field)
		defer t.Close()
		frontend = t
	}

	session, err := loop.NewSession(frontend, loop.SessionOptions{
		Settings:   settings,
		Audio:      player,
		HighScores: highscore.NewFile(scoresPath),
		Logger:     logger,
		Difficulty: difficulty,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return session.Run(ctx)
}

func defaultScoresPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "invaders-highscore.yaml"
	}
	return filepath.Join(dir, "invaders", "highscore.yaml")
}

func newLogger(path, level string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger, func() { _ = f.Close() }, nil
}
