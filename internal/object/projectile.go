package object

import (
	"time"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/physics"
)

// Direction is the way a projectile travels.
type Direction int

const (
	Upward   Direction = iota // player missile
	Downward                  // enemy bomb
)

// Resolution records why a projectile stopped.
type Resolution int

const (
	Unresolved Resolution = iota
	HitBarrier
	HitTarget
	LeftField
)

func (r Resolution) String() string {
	switch r {
	case HitBarrier:
		return "barrier"
	case HitTarget:
		return "target"
	case LeftField:
		return "boundary"
	default:
		return "unresolved"
	}
}

// Projectile is a one pixel wide line that moves Step pixels per tick
// from its origin and re-schedules itself until it resolves.
type Projectile struct {
	id         EntityID
	dir        Direction
	x, y       int
	steps      int
	stepSize   int
	height     int
	maxY       int
	period     time.Duration
	resolution Resolution
	arena      *Arena
}

func newProjectile(a *Arena, kind Kind, dir Direction, s config.ProjectileSettings, x, y int) *Projectile {
	return &Projectile{
		id:       a.IDs.Next(kind),
		dir:      dir,
		x:        x,
		y:        y,
		stepSize: s.Step,
		height:   s.Height,
		maxY:     s.MaxY,
		period:   s.Period,
		arena:    a,
	}
}

// NewMissile creates a rising projectile whose bottom starts at (x, y).
func NewMissile(a *Arena, x, y int) *Projectile {
	return newProjectile(a, KindMissile, Upward, a.Settings.Missile, x, y)
}

// NewBomb creates a falling projectile whose top starts at (x, y).
func NewBomb(a *Arena, x, y int) *Projectile {
	return newProjectile(a, KindBomb, Downward, a.Settings.Bomb, x, y)
}

// ID returns the projectile's entity id.
func (p *Projectile) ID() EntityID { return p.id }

// Direction returns the travel direction.
func (p *Projectile) Direction() Direction { return p.dir }

// Steps returns how many ticks the projectile has advanced.
func (p *Projectile) Steps() int { return p.steps }

// Rect returns the projectile's current rectangle.
func (p *Projectile) Rect() physics.Rect {
	offset := p.stepSize * p.steps
	if p.dir == Upward {
		return physics.Rect{
			TopLeftX:     p.x,
			TopLeftY:     p.y - p.height - offset,
			BottomRightX: p.x,
			BottomRightY: p.y - offset,
		}
	}
	return physics.Rect{
		TopLeftX:     p.x,
		TopLeftY:     p.y + offset,
		BottomRightX: p.x,
		BottomRightY: p.y + p.height + offset,
	}
}

// IsRunning reports whether the projectile is still in flight.
func (p *Projectile) IsRunning() bool {
	return p.resolution == Unresolved
}

// Resolution returns why the projectile stopped, or Unresolved.
func (p *Projectile) Resolution() Resolution {
	return p.resolution
}

// Launch runs the first tick immediately and keeps ticking every period
// until the projectile resolves.
func (p *Projectile) Launch() {
	p.run()
}

func (p *Projectile) run() {
	if p.Tick() {
		return
	}
	p.arena.Clock.After(p.period, p.run)
}

// Tick advances one step and checks, in order, the barriers, then the
// targets for this direction, then the field boundary. The first match
// resolves the projectile. Returns true once resolved.
func (p *Projectile) Tick() bool {
	if p.resolution != Unresolved {
		return true
	}
	p.steps++
	r := p.Rect()

	p.resolution = p.collide(r)
	if p.resolution != Unresolved {
		p.arena.Renderer.Remove(p.id)
		return true
	}
	p.arena.Renderer.Place(p.id, r.TopLeftX, r.TopLeftY)
	return false
}

func (p *Projectile) collide(r physics.Rect) Resolution {
	for _, b := range p.arena.Barriers {
		if b.CheckCrash(r) {
			return HitBarrier
		}
	}

	if p.dir == Upward {
		for _, t := range p.arena.Targets {
			if t.CheckCrashFromBottom(r) {
				t.Die()
				return HitTarget
			}
		}
		if r.TopLeftY <= 0 {
			return LeftField
		}
		return Unresolved
	}

	if ship := p.arena.Ship; ship != nil && ship.CheckCrash(r) {
		ship.Die()
		return HitTarget
	}
	if r.BottomRightY >= p.maxY {
		return LeftField
	}
	return Unresolved
}
