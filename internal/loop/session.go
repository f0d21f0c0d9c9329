package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/tomz197/invaders/internal/clock"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/input"
	loopconfig "github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/render"
)

// ErrInactive is returned by Run when the player was idle too long.
var ErrInactive = errors.New("disconnected for inactivity")

// Frontend draws views and reads keys for one player.
type Frontend interface {
	ReadInput() input.Input
	ResetInput()
	Draw(v render.View) error
}

// SessionOptions configures a session. Zero idle durations disable the
// inactivity check; a zero ShutdownGrace exits as soon as ctx is done.
type SessionOptions struct {
	Settings   *config.Settings
	Audio      object.AudioPlayer
	HighScores HighScoreStore
	Logger     *log.Logger
	Rand       object.Rand

	// Wrap decorates the renderer of each new round.
	Wrap func(roundID string, r object.Renderer) object.Renderer

	Difficulty    int
	IdleWarn      time.Duration
	IdleTimeout   time.Duration
	ShutdownGrace time.Duration
}

// Session is one player's sequence of rounds: the start screen with the
// difficulty pick, the round itself, and the result screen.
type Session struct {
	opts     SessionOptions
	frontend Frontend
	settings *config.Settings
	log      *log.Logger
	rand     object.Rand

	running    bool
	screen     render.Screen
	difficulty int
	highScore  int
	outcome    render.Outcome

	round    *Round
	sprites  *render.Sprites
	controls input.Controls

	idle         time.Duration
	inactive     bool
	shutdownLeft time.Duration
}

// NewSession prepares a session on the start screen.
func NewSession(f Frontend, opts SessionOptions) (*Session, error) {
	settings := opts.Settings
	if settings == nil {
		settings = config.Default()
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	difficulty := opts.Difficulty
	if difficulty == 0 {
		difficulty = loopconfig.DefaultDifficulty
	}
	if difficulty < 1 || difficulty > loopconfig.MaxDifficulty {
		return nil, fmt.Errorf("new session: %w: %d", ErrInvalidDifficulty, difficulty)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		opts:       opts,
		frontend:   f,
		settings:   settings,
		log:        logger,
		rand:       rng,
		running:    true,
		screen:     render.ScreenStart,
		difficulty: difficulty,
	}
	s.refreshHighScore()
	return s, nil
}

// Run drives the session with the standard Input → Update → Draw cycle
// until the player quits, idles out, or ctx is done and the shutdown
// notice has been shown.
func (s *Session) Run(ctx context.Context) error {
	lastTime := time.Now()

	for s.running {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		if ctx.Err() != nil && s.screen != render.ScreenShutdown {
			s.beginShutdown()
			if !s.running {
				break
			}
		}

		if err := s.update(delta, s.frontend.ReadInput()); err != nil {
			return err
		}
		if !s.running {
			break
		}

		if err := s.frontend.Draw(s.view()); err != nil {
			s.quitRound()
			return fmt.Errorf("draw: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < loopconfig.ClientTargetFrameTime {
			time.Sleep(loopconfig.ClientTargetFrameTime - elapsed)
		}
	}
	return nil
}

func (s *Session) update(delta time.Duration, in input.Input) error {
	if err := s.trackActivity(delta, in); err != nil {
		return err
	}
	start := s.startPending(in)

	switch s.screen {
	case render.ScreenStart:
		s.updateStart(in)
	case render.ScreenPlaying:
		s.updatePlaying(delta, in)
	case render.ScreenEnded:
		s.updateEnded(in)
	case render.ScreenShutdown:
		s.updateShutdown(delta, in)
	}
	if start && s.running {
		return s.startRound()
	}
	return nil
}

// trackActivity warns and then disconnects idle players.
func (s *Session) trackActivity(delta time.Duration, in input.Input) error {
	if s.opts.IdleTimeout <= 0 {
		return nil
	}
	if in.Any {
		s.idle = 0
		s.inactive = false
		return nil
	}
	s.idle += delta
	if s.idle > s.opts.IdleTimeout {
		s.log.Info("disconnecting inactive player")
		s.quitRound()
		s.running = false
		return ErrInactive
	}
	if s.opts.IdleWarn > 0 && s.idle > s.opts.IdleWarn {
		s.inactive = true
	}
	return nil
}

func (s *Session) startPending(in input.Input) bool {
	return in.Enter && !s.inactive &&
		(s.screen == render.ScreenStart || s.screen == render.ScreenEnded)
}

func (s *Session) updateStart(in input.Input) {
	if in.Quit {
		s.running = false
		return
	}
	if in.Number >= 1 && in.Number <= loopconfig.MaxDifficulty {
		s.difficulty = in.Number
	}
}

func (s *Session) updatePlaying(delta time.Duration, in input.Input) {
	if in.Quit {
		s.quitRound()
		s.running = false
		return
	}
	s.controls.Update(in)
	s.round.Clock().Advance(delta)

	if res, ok := s.round.Result(); ok {
		s.showResult(res)
	}
}

func (s *Session) updateEnded(in input.Input) {
	if in.Quit {
		s.running = false
	}
}

func (s *Session) updateShutdown(delta time.Duration, in input.Input) {
	s.shutdownLeft -= delta
	if in.Quit || s.shutdownLeft <= 0 {
		s.running = false
	}
}

// startRound lays out a fresh round at the chosen difficulty.
func (s *Session) startRound() error {
	s.frontend.ResetInput()
	s.controls.Reset()

	id := uuid.NewString()
	s.sprites = render.NewSprites(s.settings)
	var renderer object.Renderer = s.sprites
	if s.opts.Wrap != nil {
		renderer = s.opts.Wrap(id, renderer)
	}

	round, err := NewRound(Options{
		ID:         id,
		Settings:   s.settings,
		Clock:      clock.New(),
		Renderer:   renderer,
		Audio:      s.opts.Audio,
		Input:      &s.controls,
		HighScores: s.opts.HighScores,
		Rand:       s.rand,
		Logger:     s.log,
	})
	if err != nil {
		return err
	}
	if err := round.Start(s.difficulty); err != nil {
		return err
	}
	s.round = round
	s.screen = render.ScreenPlaying
	return nil
}

func (s *Session) showResult(res Result) {
	s.outcome = render.Outcome{
		Won:            res.Won,
		FinalScore:     res.FinalScore,
		ElapsedSeconds: res.ElapsedSeconds,
		HighScore:      res.HighScore,
		NewHighScore:   res.NewHighScore,
	}
	s.highScore = max(s.highScore, res.HighScore)
	s.screen = render.ScreenEnded
	s.frontend.ResetInput()
}

// quitRound ends a round in progress so its result is recorded.
func (s *Session) quitRound() {
	if s.round != nil && s.round.State() == RoundRunning {
		s.round.Quit()
	}
}

func (s *Session) beginShutdown() {
	s.quitRound()
	if s.opts.ShutdownGrace <= 0 {
		s.running = false
		return
	}
	s.screen = render.ScreenShutdown
	s.shutdownLeft = s.opts.ShutdownGrace
	s.inactive = false
}

func (s *Session) refreshHighScore() {
	if s.opts.HighScores == nil {
		return
	}
	high, err := s.opts.HighScores.Read()
	if err != nil {
		s.log.Warn("read high score", "err", err)
		return
	}
	s.highScore = high
}

func (s *Session) view() render.View {
	v := render.View{
		Screen:     s.screen,
		HighScore:  s.highScore,
		Difficulty: s.difficulty,
		Outcome:    s.outcome,
		Inactive:   s.inactive,
	}
	switch {
	case s.screen == render.ScreenShutdown:
		v.Countdown = s.shutdownLeft
	case s.inactive:
		v.Countdown = s.opts.IdleTimeout - s.idle
	}
	if s.screen == render.ScreenPlaying {
		v.Sprites = s.sprites.Snapshot()
		v.Score = s.round.Scoreboard().Total()
		v.Lives = s.round.Lives().Remaining()
		v.Difficulty = s.round.Difficulty()
	}
	return v
}

// Screen returns the phase being shown.
func (s *Session) Screen() render.Screen { return s.screen }

// Round returns the current or last round, nil before the first.
func (s *Session) Round() *Round { return s.round }
