package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/invaders/internal/audio"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/highscore"
	"github.com/tomz197/invaders/internal/loop"
	loopconfig "github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/render"
	"github.com/tomz197/invaders/internal/spectate"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	defaultHTTPAddr    = ":8080"
	defaultScoresPath  = "/app/data/highscore.yaml"
	shutdownTimeout    = 15 * time.Second
)

// app is shared by every SSH session.
type app struct {
	ctx      context.Context
	settings *config.Settings
	scores   *highscore.File
	hub      *spectate.Hub
	logger   *log.Logger
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if lvl, err := log.ParseLevel(config.GetEnv("LOG_LEVEL", "info")); err == nil {
		logger.SetLevel(lvl)
	}

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	httpAddr := config.GetEnv("HTTP_ADDR", defaultHTTPAddr)
	displayHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "httpAddr", httpAddr)

	settings, err := config.Load(config.GetEnv("INVADERS_CONFIG", ""))
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	a := &app{
		ctx:      gctx,
		settings: settings,
		scores:   highscore.NewFile(config.GetEnv("INVADERS_SCORES", defaultScoresPath)),
		hub:      spectate.NewHub(loopconfig.SpectatorBuffer),
		logger:   logger,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			a.gameMiddleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}
	web := &http.Server{
		Addr:              httpAddr,
		Handler:           spectate.NewRouter(a.hub, displayHost, logger.With("component", "spectate")),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g.Go(func() error {
		logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("Starting spectator server", "addr", httpAddr)
		if err := web.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down, notifying connected players")

		// Sessions show the shutdown notice for a while before leaving.
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return errors.Join(s.Shutdown(sctx), web.Shutdown(sctx))
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Fatal("server error", "err", err)
	}
	logger.Info("Server stopped")
}

// gameMiddleware runs one player's session over the SSH channel.
func (a *app) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := a.logger.With("user", sess.User())
		logger.Info("New game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		t := render.NewTerminal(bufio.NewReader(sess), sess, sizeTracker.getSize, a.settings.Field)
		session, err := loop.NewSession(t, loop.SessionOptions{
			Settings:   a.settings,
			Audio:      audio.NewSilent(),
			HighScores: a.scores,
			Logger:     logger,
			Wrap: func(roundID string, r object.Renderer) object.Renderer {
				return spectate.NewRecorder(roundID, r, a.hub)
			},
			IdleWarn:      loopconfig.InactivityWarnUser,
			IdleTimeout:   loopconfig.InactivityDisconnectUser,
			ShutdownGrace: loopconfig.ShutdownDisplay,
		})
		if err != nil {
			logger.Error("failed to start session", "err", err)
			return
		}

		err = session.Run(a.ctx)
		t.Close()
		switch {
		case errors.Is(err, loop.ErrInactive):
			fmt.Fprintln(sess, "Disconnected for inactivity.")
		case err != nil:
			logger.Error("Game error", "err", err)
		}

		logger.Info("Session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
