package object

import (
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/physics"
)

// ShipState is the ship's death sub-machine.
type ShipState int

const (
	ShipAlive ShipState = iota
	ShipDying           // explosion playing, waiting for CompleteDeath
)

// Ship is the player-controlled cannon. It moves between slots along a
// fixed row and has at most one missile in flight.
type Ship struct {
	id         EntityID
	slot       int
	state      ShipState
	missile    *Projectile
	settings   config.ShipSettings
	arena      *Arena
	onLifeLost func()
}

// NewShip creates the ship at slot 0 and places it. onLifeLost is called
// every time a death sequence completes.
func NewShip(a *Arena, onLifeLost func()) *Ship {
	s := &Ship{
		id:         a.IDs.Next(KindShip),
		settings:   a.Settings.Ship,
		arena:      a,
		onLifeLost: onLifeLost,
	}
	s.redraw()
	return s
}

// ID returns the ship's entity id.
func (s *Ship) ID() EntityID { return s.id }

// Slot returns the horizontal slot index.
func (s *Ship) Slot() int { return s.slot }

// State returns the current death sub-machine state.
func (s *Ship) State() ShipState { return s.state }

// Alive reports whether the ship is controllable.
func (s *Ship) Alive() bool { return s.state == ShipAlive }

// Missile returns the last missile fired, or nil.
func (s *Ship) Missile() *Projectile { return s.missile }

// Rect returns the ship's current bounds.
func (s *Ship) Rect() physics.Rect {
	x := s.settings.InitX + s.slot*s.settings.Velocity
	return physics.NewRect(x, s.settings.Y, s.settings.Width, s.settings.Height)
}

// Tick applies a lateral intent, clamped to [0, MaxSlot]. A dying ship
// ignores intents.
func (s *Ship) Tick(intent Intent) {
	if s.state == ShipAlive {
		switch intent {
		case IntentLeft:
			if s.slot > 0 {
				s.slot--
			}
		case IntentRight:
			if s.slot < s.settings.MaxSlot {
				s.slot++
			}
		}
	}
	s.redraw()
}

// Fire launches a missile from the middle of the ship's top edge.
// Returns false when the ship is dying or its last missile is still in
// flight.
func (s *Ship) Fire() bool {
	if s.state != ShipAlive {
		return false
	}
	if s.missile != nil && s.missile.IsRunning() {
		return false
	}
	r := s.Rect()
	s.arena.Audio.Play(SoundShoot, nil)
	s.missile = NewMissile(s.arena, (r.TopLeftX+r.BottomRightX)/2, r.TopLeftY)
	s.missile.Launch()
	return true
}

// CheckCrash reports whether falling fire hits the ship. A dying ship
// cannot be hit again.
func (s *Ship) CheckCrash(in physics.Rect) bool {
	if s.state != ShipAlive {
		return false
	}
	return physics.HitFromAbove(in, s.Rect())
}

// Die starts the death sequence. The explosion's completion drives
// CompleteDeath. Calling Die on a dying ship does nothing.
func (s *Ship) Die() {
	if s.state != ShipAlive {
		return
	}
	s.state = ShipDying
	s.arena.Renderer.SetVisualState(s.id, TagDying)
	s.arena.Audio.Play(SoundExplosion, s.CompleteDeath)
}

// CompleteDeath ends the death sequence: the ship returns to slot 0,
// becomes alive and reports the lost life.
func (s *Ship) CompleteDeath() {
	if s.state != ShipDying {
		return
	}
	s.slot = 0
	s.state = ShipAlive
	s.arena.Renderer.SetVisualState(s.id, TagAlive)
	s.redraw()
	if s.onLifeLost != nil {
		s.onLifeLost()
	}
}

func (s *Ship) redraw() {
	r := s.Rect()
	s.arena.Renderer.Place(s.id, r.TopLeftX, r.TopLeftY)
}
