package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds every tunable value of a round. Coordinates are field
// pixels with the origin at the top-left corner.
type Settings struct {
	Loops   LoopSettings       `yaml:"loops"`
	Field   FieldSettings      `yaml:"field"`
	Bomb    ProjectileSettings `yaml:"bomb"`
	Missile ProjectileSettings `yaml:"missile"`
	Lives   LivesSettings      `yaml:"lives"`
	Ship    ShipSettings       `yaml:"ship"`
	Enemy   EnemySettings      `yaml:"enemy"`
	Bonus   BonusSettings      `yaml:"bonus"`
	Barrier BarrierSettings    `yaml:"barrier"`
	Score   ScoreSettings      `yaml:"score"`
}

// LoopSettings are the periods of the two round loops.
type LoopSettings struct {
	ShipLoop               time.Duration `yaml:"ship_loop"`
	EnemyLoop              time.Duration `yaml:"enemy_loop"`
	IncreaseDifficultyEach int           `yaml:"increase_difficulty_each"`
}

// FieldSettings is the playfield size.
type FieldSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ProjectileSettings describes one kind of projectile.
// MaxY is only used by falling projectiles.
type ProjectileSettings struct {
	Period time.Duration `yaml:"period"`
	Step   int           `yaml:"step"`
	Height int           `yaml:"height"`
	MaxY   int           `yaml:"max_y"`
}

// LivesSettings places the lives board.
type LivesSettings struct {
	Count int `yaml:"count"`
	X     int `yaml:"x"`
	Y     int `yaml:"y"`
}

// ShipSettings describes the player ship. The ship moves in slots of
// Velocity pixels starting at InitX.
type ShipSettings struct {
	InitX    int `yaml:"init_x"`
	Y        int `yaml:"y"`
	Velocity int `yaml:"velocity"`
	MaxSlot  int `yaml:"max_slot"`
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
}

// EnemySettings describes the enemy formation.
type EnemySettings struct {
	OriginX         int `yaml:"origin_x"`
	OriginY         int `yaml:"origin_y"`
	Size            int `yaml:"size"`
	MaxColumnSteps  int `yaml:"max_column_steps"`
	Advance         int `yaml:"advance"`
	BombProbability int `yaml:"bomb_probability"`
	MovementPeriod  int `yaml:"movement_period"`
	BottomLimit     int `yaml:"bottom_limit"`
	Columns         int `yaml:"columns"`
	Rows            int `yaml:"rows"`
}

// BonusSettings describes the bonus target.
type BonusSettings struct {
	Frequency    int           `yaml:"frequency"`
	Speed        int           `yaml:"speed"`
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	Y            int           `yaml:"y"`
	DyingDelay   time.Duration `yaml:"dying_delay"`
	PointsBase   int           `yaml:"points_base"`
	PointsSpread int           `yaml:"points_spread"`
}

// BarrierSettings describes the barriers. Barrier n (1-based) starts at
// x = (Separation+Width)*n - Width.
type BarrierSettings struct {
	Count      int `yaml:"count"`
	Y          int `yaml:"y"`
	Separation int `yaml:"separation"`
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	DamageSize int `yaml:"damage_size"`
}

// ScoreSettings is the fixed points table per enemy tier.
type ScoreSettings struct {
	High int `yaml:"high"`
	Mid  int `yaml:"mid"`
	Low  int `yaml:"low"`
}

// Default returns the classic game settings.
func Default() *Settings {
	return &Settings{
		Loops: LoopSettings{
			ShipLoop:               10 * time.Millisecond,
			EnemyLoop:              400 * time.Millisecond,
			IncreaseDifficultyEach: 50,
		},
		Field: FieldSettings{Width: 640, Height: 560},
		Bomb: ProjectileSettings{
			Period: 20 * time.Millisecond,
			Step:   5,
			Height: 15,
			MaxY:   515,
		},
		Missile: ProjectileSettings{
			Period: 8 * time.Millisecond,
			Step:   5,
			Height: 15,
		},
		Lives: LivesSettings{Count: 3, X: 420, Y: 525},
		Ship: ShipSettings{
			InitX:    15,
			Y:        490,
			Velocity: 10,
			MaxSlot:  54,
			Width:    55,
			Height:   26,
		},
		Enemy: EnemySettings{
			OriginX:         20,
			OriginY:         50,
			Size:            42,
			MaxColumnSteps:  6,
			Advance:         16,
			BombProbability: 70,
			MovementPeriod:  2,
			BottomLimit:     500,
			Columns:         11,
			Rows:            5,
		},
		Bonus: BonusSettings{
			Frequency:    55,
			Speed:        40,
			Width:        60,
			Height:       37,
			Y:            10,
			DyingDelay:   time.Second,
			PointsBase:   100,
			PointsSpread: 100,
		},
		Barrier: BarrierSettings{
			Count:      4,
			Y:          400,
			Separation: 70,
			Width:      66,
			Height:     48,
			DamageSize: 20,
		},
		Score: ScoreSettings{High: 40, Mid: 20, Low: 10},
	}
}

// Load reads settings from a YAML file on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every value a round depends on and reports all
// violations at once.
func (s *Settings) Validate() error {
	var errs []error
	positive := func(name string, v int64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidSettings, name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidSettings, name, v))
		}
	}

	positive("loops.ship_loop", int64(s.Loops.ShipLoop))
	positive("loops.enemy_loop", int64(s.Loops.EnemyLoop))
	positive("loops.increase_difficulty_each", int64(s.Loops.IncreaseDifficultyEach))

	positive("field.width", int64(s.Field.Width))
	positive("field.height", int64(s.Field.Height))

	for _, p := range []struct {
		name string
		ProjectileSettings
	}{{"bomb", s.Bomb}, {"missile", s.Missile}} {
		positive(p.name+".period", int64(p.Period))
		positive(p.name+".step", int64(p.Step))
		nonNegative(p.name+".height", p.Height)
	}
	if s.Bomb.MaxY <= 0 || s.Bomb.MaxY > s.Field.Height {
		errs = append(errs, fmt.Errorf("%w: bomb.max_y %d outside the field", ErrInvalidSettings, s.Bomb.MaxY))
	}

	nonNegative("lives.count", s.Lives.Count)

	positive("ship.velocity", int64(s.Ship.Velocity))
	nonNegative("ship.max_slot", s.Ship.MaxSlot)
	positive("ship.width", int64(s.Ship.Width))
	positive("ship.height", int64(s.Ship.Height))

	positive("enemy.size", int64(s.Enemy.Size))
	positive("enemy.max_column_steps", int64(s.Enemy.MaxColumnSteps))
	positive("enemy.bomb_probability", int64(s.Enemy.BombProbability))
	positive("enemy.movement_period", int64(s.Enemy.MovementPeriod))
	positive("enemy.columns", int64(s.Enemy.Columns))
	positive("enemy.rows", int64(s.Enemy.Rows))
	if s.Enemy.BottomLimit <= 0 || s.Enemy.BottomLimit > s.Field.Height {
		errs = append(errs, fmt.Errorf("%w: enemy.bottom_limit %d outside the field", ErrInvalidSettings, s.Enemy.BottomLimit))
	}

	positive("bonus.frequency", int64(s.Bonus.Frequency))
	positive("bonus.speed", int64(s.Bonus.Speed))
	positive("bonus.width", int64(s.Bonus.Width))
	positive("bonus.height", int64(s.Bonus.Height))
	positive("bonus.dying_delay", int64(s.Bonus.DyingDelay))
	nonNegative("bonus.points_base", s.Bonus.PointsBase)
	positive("bonus.points_spread", int64(s.Bonus.PointsSpread))

	nonNegative("barrier.count", s.Barrier.Count)
	positive("barrier.width", int64(s.Barrier.Width))
	positive("barrier.height", int64(s.Barrier.Height))
	positive("barrier.damage_size", int64(s.Barrier.DamageSize))

	nonNegative("score.high", s.Score.High)
	nonNegative("score.mid", s.Score.Mid)
	nonNegative("score.low", s.Score.Low)

	return errors.Join(errs...)
}
