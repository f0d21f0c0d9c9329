package loop

//go:generate go tool mockgen -destination=./mocks/highscore_mock.go -package=mocks . HighScoreStore

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/tomz197/invaders/internal/clock"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/object"
)

var (
	// ErrRoundStarted is returned when Start is called twice.
	ErrRoundStarted = errors.New("round already started")
	// ErrInvalidDifficulty is returned for a difficulty below 1.
	ErrInvalidDifficulty = errors.New("difficulty must be positive")
)

// HighScoreStore persists the best final score.
type HighScoreStore interface {
	Read() (int, error)
	Write(score int) error
}

// RoundState is the round's lifecycle.
type RoundState int

const (
	RoundIdle RoundState = iota
	RoundRunning
	RoundEnded
)

func (s RoundState) String() string {
	switch s {
	case RoundRunning:
		return "running"
	case RoundEnded:
		return "ended"
	default:
		return "idle"
	}
}

// EndCause is what ended a round.
type EndCause int

const (
	CauseCleared EndCause = iota // every enemy destroyed
	CauseLanded                  // an enemy reached the bottom limit
	CauseNoLives                 // the ship ran out of lives
	CauseQuit                    // the player left
)

func (c EndCause) String() string {
	switch c {
	case CauseLanded:
		return "landed"
	case CauseNoLives:
		return "no lives"
	case CauseQuit:
		return "quit"
	default:
		return "cleared"
	}
}

// Result is reported once when a round ends.
type Result struct {
	Won            bool
	Cause          EndCause
	RawScore       int
	FinalScore     int
	ElapsedSeconds int
	HighScore      int
	NewHighScore   bool
}

// Options configures a round. Renderer, Audio, Input and HighScores may
// be nil; Settings defaults to config.Default and ID to a fresh uuid.
// Without Audio every sound completes on the next scheduler drain.
type Options struct {
	ID         string
	Settings   *config.Settings
	Clock      *clock.Scheduler
	Renderer   object.Renderer
	Audio      object.AudioPlayer
	Input      object.InputSource
	HighScores HighScoreStore
	Rand       object.Rand
	Logger     *log.Logger
	OnEnded    func(Result)
}

// Round owns every entity of one game and the two loops that drive them:
// the enemy loop, whose period shrinks with difficulty, and the fixed
// period ship loop. Projectiles drive themselves on the same clock.
type Round struct {
	id         string
	settings   *config.Settings
	clock      *clock.Scheduler
	arena      *object.Arena
	audio      object.AudioPlayer
	input      object.InputSource
	highScores HighScoreStore
	rand       object.Rand
	log        *log.Logger
	onEnded    func(Result)

	ship       *object.Ship
	grid       *object.EnemyGrid
	bonus      *object.BonusTarget
	barriers   []*object.Barrier
	scoreboard *object.Scoreboard
	lives      *object.Lives

	state      RoundState
	difficulty int
	enemyIters int
	shipIters  int
	startedAt  time.Duration
	result     Result
}

// NewRound validates the settings and lays out a fresh field.
func NewRound(opts Options) (*Round, error) {
	settings := opts.Settings
	if settings == nil {
		settings = config.Default()
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("new round: %w", err)
	}
	if opts.Rand == nil {
		return nil, errors.New("new round: a random source is required")
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = nopRenderer{}
	}
	var audio object.AudioPlayer = postedAudio{AudioPlayer: instantAudio{}, clock: clk}
	if opts.Audio != nil {
		audio = postedAudio{AudioPlayer: opts.Audio, clock: clk}
	}
	input := opts.Input
	if input == nil {
		input = nopInput{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	r := &Round{
		id:         id,
		settings:   settings,
		clock:      clk,
		audio:      audio,
		input:      input,
		highScores: opts.HighScores,
		rand:       opts.Rand,
		log:        logger.With("round", id),
		onEnded:    opts.OnEnded,
		scoreboard: object.NewScoreboard(settings.Score),
	}

	ids := &object.IDs{}
	r.arena = &object.Arena{
		Settings: settings,
		Clock:    clk,
		Renderer: renderer,
		Audio:    audio,
		Rand:     opts.Rand,
		IDs:      ids,
	}
	r.barriers = object.NewBarriers(settings.Barrier, ids, renderer)
	r.lives = object.NewLives(settings.Lives, settings.Ship.Width, ids, renderer)
	r.ship = object.NewShip(r.arena, r.lifeLost)
	r.grid = object.NewEnemyGrid(r.arena, func(t object.Tier) { r.scoreboard.AddKill(t) })
	r.bonus = object.NewBonusTarget(r.arena, r.scoreboard.AddBonus)

	r.arena.Barriers = r.barriers
	r.arena.Ship = r.ship
	r.arena.Targets = append(r.grid.Targets(), r.bonus)
	return r, nil
}

// Start runs the first enemy and ship ticks immediately and keeps both
// loops going until the round ends.
func (r *Round) Start(difficulty int) error {
	if difficulty < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidDifficulty, difficulty)
	}
	if r.state != RoundIdle {
		return ErrRoundStarted
	}
	r.state = RoundRunning
	r.difficulty = difficulty
	r.startedAt = r.clock.Now()
	r.log.Info("round started", "difficulty", difficulty)

	r.enemyTick()
	r.shipTick()
	return nil
}

func (r *Round) enemyTick() {
	if r.state != RoundRunning {
		return
	}
	if r.rand.Intn(100)%r.settings.Bonus.Frequency == 0 {
		r.bonus.Spawn()
	}

	r.enemyIters++
	r.audio.Play(object.StepSound(r.enemyIters-1), nil)

	if r.grid.Tick(r.enemyIters) {
		r.end(false, CauseLanded)
		return
	}
	r.bonus.Tick()

	if r.grid.AliveCount() == 0 {
		r.end(true, CauseCleared)
		return
	}

	if r.enemyIters%r.settings.Loops.IncreaseDifficultyEach == 0 {
		r.difficulty++
		r.log.Debug("difficulty increased", "difficulty", r.difficulty)
	}
	r.clock.After(r.settings.Loops.EnemyLoop/time.Duration(r.difficulty), r.enemyTick)
}

func (r *Round) shipTick() {
	if r.state != RoundRunning {
		return
	}
	r.shipIters++
	r.ship.Tick(r.input.Intent())
	if r.input.FirePressed() {
		r.ship.Fire()
	}
	r.clock.After(r.settings.Loops.ShipLoop, r.shipTick)
}

func (r *Round) lifeLost() {
	left := r.lives.Consume()
	r.log.Info("ship destroyed", "lives", r.lives.Remaining())
	if !left {
		r.end(false, CauseNoLives)
	}
}

// Quit ends a running round as lost.
func (r *Round) Quit() {
	r.end(false, CauseQuit)
}

func (r *Round) end(won bool, cause EndCause) {
	if r.state != RoundRunning {
		return
	}
	r.state = RoundEnded

	elapsed := int(math.Round((r.clock.Now() - r.startedAt).Seconds()))
	raw := r.scoreboard.Total()
	res := Result{
		Won:            won,
		Cause:          cause,
		RawScore:       raw,
		FinalScore:     FinalScore(raw, elapsed),
		ElapsedSeconds: elapsed,
	}

	r.audio.StopAll()
	r.clock.Stop()

	if r.highScores != nil {
		high, err := r.highScores.Read()
		if err != nil {
			r.log.Warn("read high score", "err", err)
		}
		res.HighScore = high
		if res.FinalScore > high {
			if err := r.highScores.Write(res.FinalScore); err != nil {
				r.log.Warn("write high score", "err", err)
			}
			res.HighScore = res.FinalScore
			res.NewHighScore = true
		}
	}

	r.result = res
	r.log.Info("round ended",
		"won", res.Won,
		"cause", res.Cause,
		"score", res.FinalScore,
		"elapsed", res.ElapsedSeconds,
		"high_score", res.NewHighScore,
	)
	if r.onEnded != nil {
		r.onEnded(res)
	}
}

// FinalScore takes a tenth of a point per elapsed second off the total,
// rounding half up, and never goes below zero.
func FinalScore(total, elapsedSeconds int) int {
	score := int(math.Floor(float64(total) - float64(elapsedSeconds)/10 + 0.5))
	return max(score, 0)
}

// ID returns the round's unique id.
func (r *Round) ID() string { return r.id }

// State returns the lifecycle state.
func (r *Round) State() RoundState { return r.state }

// Result returns the outcome once the round has ended.
func (r *Round) Result() (Result, bool) { return r.result, r.state == RoundEnded }

// Difficulty returns the current difficulty multiplier.
func (r *Round) Difficulty() int { return r.difficulty }

// EnemyIterations returns how many enemy ticks have run.
func (r *Round) EnemyIterations() int { return r.enemyIters }

// ShipIterations returns how many ship ticks have run.
func (r *Round) ShipIterations() int { return r.shipIters }

// Clock returns the scheduler driving the round.
func (r *Round) Clock() *clock.Scheduler { return r.clock }

// Ship returns the player ship.
func (r *Round) Ship() *object.Ship { return r.ship }

// Grid returns the enemy formation.
func (r *Round) Grid() *object.EnemyGrid { return r.grid }

// Bonus returns the bonus target.
func (r *Round) Bonus() *object.BonusTarget { return r.bonus }

// Barriers returns the barriers, left to right.
func (r *Round) Barriers() []*object.Barrier { return r.barriers }

// Scoreboard returns the running score.
func (r *Round) Scoreboard() *object.Scoreboard { return r.scoreboard }

// Lives returns the lives board.
func (r *Round) Lives() *object.Lives { return r.lives }

// postedAudio delivers completion callbacks on the simulation goroutine.
type postedAudio struct {
	object.AudioPlayer
	clock *clock.Scheduler
}

func (a postedAudio) Play(s object.Sound, onFinished func()) {
	if onFinished == nil {
		a.AudioPlayer.Play(s, nil)
		return
	}
	a.AudioPlayer.Play(s, func() { a.clock.Post(onFinished) })
}

type nopRenderer struct{}

func (nopRenderer) Place(object.EntityID, int, int) {}
func (nopRenderer) SetVisualState(object.EntityID, string) {}
func (nopRenderer) Remove(object.EntityID) {}

// instantAudio plays nothing and finishes every sound at once, so a ship
// death still completes without an audio device.
type instantAudio struct{}

func (instantAudio) Play(_ object.Sound, onFinished func()) {
	if onFinished != nil {
		onFinished()
	}
}
func (instantAudio) Stop(object.Sound) {}
func (instantAudio) StopAll() {}

type nopInput struct{}

func (nopInput) Intent() object.Intent { return object.IntentNone }
func (nopInput) FirePressed() bool { return false }
