package object

import (
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/physics"
)

// BonusState is the bonus target's lifecycle.
type BonusState int

const (
	BonusDormant BonusState = iota
	BonusAlive
	BonusDying
)

func (s BonusState) String() string {
	switch s {
	case BonusAlive:
		return "alive"
	case BonusDying:
		return "dying"
	default:
		return "dormant"
	}
}

// BonusTarget crosses the top of the field left to right and is worth a
// random amount of points. A round owns exactly one.
type BonusTarget struct {
	id       EntityID
	state    BonusState
	x        int
	points   int
	flight   int
	settings config.BonusSettings
	field    config.FieldSettings
	arena    *Arena
	onKilled func(points int)
}

// NewBonusTarget creates a dormant bonus target. onKilled receives the
// points awarded when it is destroyed.
func NewBonusTarget(a *Arena, onKilled func(points int)) *BonusTarget {
	return &BonusTarget{
		id:       a.IDs.Next(KindBonus),
		settings: a.Settings.Bonus,
		field:    a.Settings.Field,
		arena:    a,
		onKilled: onKilled,
	}
}

// ID returns the bonus target's entity id.
func (b *BonusTarget) ID() EntityID { return b.id }

// State returns the lifecycle state.
func (b *BonusTarget) State() BonusState { return b.state }

// X returns the horizontal offset of the left edge.
func (b *BonusTarget) X() int { return b.x }

// Points returns the points awarded by the last kill.
func (b *BonusTarget) Points() int { return b.points }

// Rect returns the current bounds.
func (b *BonusTarget) Rect() physics.Rect {
	return physics.NewRect(b.x, b.settings.Y, b.settings.Width, b.settings.Height)
}

// Spawn starts a flight from the left edge. Only a dormant target spawns.
func (b *BonusTarget) Spawn() bool {
	if b.state != BonusDormant {
		return false
	}
	b.state = BonusAlive
	b.x = 0
	b.flight++
	b.arena.Renderer.Place(b.id, b.x, b.settings.Y)
	b.arena.Renderer.SetVisualState(b.id, TagAlive)
	b.playSound(b.flight)
	return true
}

// playSound keeps the flight sound looping while the same flight is alive.
func (b *BonusTarget) playSound(flight int) {
	b.arena.Audio.Play(SoundBonus, func() {
		if b.state == BonusAlive && b.flight == flight {
			b.playSound(flight)
		}
	})
}

// Tick moves a live target; it goes dormant once past the right edge.
func (b *BonusTarget) Tick() {
	if b.state != BonusAlive {
		return
	}
	b.x += b.settings.Speed
	if b.x+b.settings.Width > b.field.Width {
		b.vanish()
		return
	}
	b.arena.Renderer.Place(b.id, b.x, b.settings.Y)
}

// Die awards a random bonus, shows it, and goes dormant after the dying
// delay.
func (b *BonusTarget) Die() {
	if b.state != BonusAlive {
		return
	}
	b.state = BonusDying
	b.points = b.settings.PointsBase + b.arena.Rand.Intn(b.settings.PointsSpread)
	if b.onKilled != nil {
		b.onKilled(b.points)
	}
	b.arena.Audio.Play(SoundInvaderKilled, nil)
	b.arena.Renderer.SetVisualState(b.id, PointsTag(b.points))

	flight := b.flight
	b.arena.Clock.After(b.settings.DyingDelay, func() {
		if b.state == BonusDying && b.flight == flight {
			b.vanish()
		}
	})
}

// CheckCrashFromBottom reports whether rising fire hits a live target.
func (b *BonusTarget) CheckCrashFromBottom(in physics.Rect) bool {
	if b.state != BonusAlive {
		return false
	}
	return physics.HitFromBelow(in, b.Rect())
}

func (b *BonusTarget) vanish() {
	b.state = BonusDormant
	b.arena.Audio.Stop(SoundBonus)
	b.arena.Renderer.Remove(b.id)
}
