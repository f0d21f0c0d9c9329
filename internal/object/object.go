// Package object implements the entities of a round: barriers, projectiles,
// the player ship, the enemy formation, the bonus target and the score and
// lives counters.
//
// Entities never run on their own. They are advanced by callbacks on a
// Scheduler and report what changed through a Renderer and an AudioPlayer.
package object

//go:generate go tool mockgen -destination=./mocks/object_mock.go -package=mocks . Renderer,AudioPlayer,InputSource

import (
	"fmt"
	"time"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/physics"
)

// Kind identifies what an entity is. Renderers draw kinds in this order.
type Kind int

const (
	KindBarrier Kind = iota
	KindDamage
	KindShip
	KindEnemyLow
	KindEnemyMid
	KindEnemyHigh
	KindBonus
	KindMissile
	KindBomb
	KindLife
)

var kindNames = [...]string{"barrier", "damage", "ship", "enemy-low", "enemy-mid", "enemy-high", "bonus", "missile", "bomb", "life"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// EntityID names one entity for the lifetime of a round.
type EntityID struct {
	Kind Kind
	Seq  int
}

func (id EntityID) String() string {
	return fmt.Sprintf("%s-%d", id.Kind, id.Seq)
}

// IDs hands out entity ids, numbering each kind from zero.
type IDs struct {
	next map[Kind]int
}

// Next returns a fresh id of kind k.
func (ids *IDs) Next(k Kind) EntityID {
	if ids.next == nil {
		ids.next = make(map[Kind]int)
	}
	seq := ids.next[k]
	ids.next[k] = seq + 1
	return EntityID{Kind: k, Seq: seq}
}

// Visual state tags passed to Renderer.SetVisualState.
const (
	TagPhaseA = "a"
	TagPhaseB = "b"
	TagDead   = "dead"
	TagDying  = "dying"
	TagAlive  = "alive"
	TagHole   = "hole"
)

// PointsTag is the tag shown by a destroyed bonus target.
func PointsTag(points int) string {
	return fmt.Sprintf("points:%d", points)
}

// Renderer is told about every entity whose position or look changed.
type Renderer interface {
	Place(id EntityID, x, y int)
	SetVisualState(id EntityID, tag string)
	Remove(id EntityID)
}

// Sound identifies one sound effect.
type Sound int

const (
	SoundShoot Sound = iota
	SoundExplosion
	SoundInvaderKilled
	SoundBonus
	SoundStep1
	SoundStep2
	SoundStep3
	SoundStep4
)

// StepSound returns the n-th sound of the four note march.
func StepSound(n int) Sound {
	return SoundStep1 + Sound(n%4)
}

// AudioPlayer plays sounds. onFinished, when not nil, is called once the
// sound ends on its own; a stopped sound never calls it.
type AudioPlayer interface {
	Play(s Sound, onFinished func())
	Stop(s Sound)
	StopAll()
}

// Intent is the lateral movement the player is asking for.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
)

// InputSource is polled once per ship tick.
type InputSource interface {
	Intent() Intent
	// FirePressed reports a fire edge, consuming it.
	FirePressed() bool
}

// Scheduler runs callbacks on the simulation clock.
type Scheduler interface {
	After(d time.Duration, fn func())
	Now() time.Duration
}

// Rand is the source of every random draw. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Target is anything rising fire can destroy.
type Target interface {
	CheckCrashFromBottom(r physics.Rect) bool
	Die()
}

// Arena is everything a projectile needs to resolve itself: the shared
// barriers, the targets of rising fire in hit order, the ship for falling
// fire and the round's collaborators.
type Arena struct {
	Settings *config.Settings
	Clock    Scheduler
	Renderer Renderer
	Audio    AudioPlayer
	Rand     Rand
	IDs      *IDs

	Barriers []*Barrier
	Targets  []Target
	Ship     *Ship
}
