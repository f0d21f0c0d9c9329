package object

import (
	"github.com/tomz197/invaders/internal/physics"
)

// Tier is an enemy's rank. Higher tiers are worth more points.
type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierHigh
)

func (t Tier) kind() Kind {
	switch t {
	case TierHigh:
		return KindEnemyHigh
	case TierMid:
		return KindEnemyMid
	default:
		return KindEnemyLow
	}
}

func (t Tier) String() string {
	return t.kind().String()
}

// EnemyUnit is one member of the formation. Its position is its home cell
// shifted by the formation offset it belongs to.
type EnemyUnit struct {
	id        EntityID
	tier      Tier
	col, row  int
	alive     bool
	removed   bool
	phase     bool
	bombs     []*Projectile
	formation *Formation
	arena     *Arena
	onKilled  func(Tier)
}

func newEnemyUnit(a *Arena, f *Formation, tier Tier, col, row int, phase bool, onKilled func(Tier)) *EnemyUnit {
	u := &EnemyUnit{
		id:        a.IDs.Next(tier.kind()),
		tier:      tier,
		col:       col,
		row:       row,
		alive:     true,
		phase:     phase,
		formation: f,
		arena:     a,
		onKilled:  onKilled,
	}
	u.redraw()
	return u
}

// ID returns the unit's entity id.
func (u *EnemyUnit) ID() EntityID { return u.id }

// Tier returns the unit's rank.
func (u *EnemyUnit) Tier() Tier { return u.tier }

// Cell returns the unit's home column and row in the grid.
func (u *EnemyUnit) Cell() (col, row int) { return u.col, u.row }

// Alive reports whether the unit has not been destroyed.
func (u *EnemyUnit) Alive() bool { return u.alive }

// Phase returns the animation phase.
func (u *EnemyUnit) Phase() bool { return u.phase }

// Bombs returns how many of the unit's bombs are still falling.
func (u *EnemyUnit) Bombs() int {
	n := 0
	for _, b := range u.bombs {
		if b.IsRunning() {
			n++
		}
	}
	return n
}

// Rect returns the unit's current bounds.
func (u *EnemyUnit) Rect() physics.Rect {
	s := u.arena.Settings.Enemy
	dx, dy := u.formation.Offset()
	x := s.OriginX + s.Size*u.col + dx
	y := s.OriginY + s.Size*u.row + dy
	return physics.NewRect(x, y, s.Size, s.Size)
}

// Tick runs the unit's own part of an enemy tick: the landing check and
// the bomb draw. Returns true when the unit has reached the bottom limit.
// A dead unit is removed from view on its first tick after death.
func (u *EnemyUnit) Tick() (landed bool) {
	if !u.alive {
		if !u.removed {
			u.removed = true
			u.arena.Renderer.Remove(u.id)
		}
		return false
	}

	s := u.arena.Settings.Enemy
	r := u.Rect()
	if r.BottomRightY > s.BottomLimit {
		return true
	}

	u.pruneBombs()
	if u.arena.Rand.Intn(10000)%s.BombProbability == 0 {
		u.launchBomb(r)
	}
	return false
}

// Animate flips the animation phase and redraws a live unit.
func (u *EnemyUnit) Animate() {
	if !u.alive {
		return
	}
	u.phase = !u.phase
	u.redraw()
}

func (u *EnemyUnit) launchBomb(r physics.Rect) {
	bomb := NewBomb(u.arena, r.BottomRightX-u.arena.Settings.Enemy.Size/2, r.BottomRightY)
	u.bombs = append(u.bombs, bomb)
	bomb.Launch()
}

func (u *EnemyUnit) pruneBombs() {
	kept := u.bombs[:0]
	for _, b := range u.bombs {
		if b.IsRunning() {
			kept = append(kept, b)
		}
	}
	clear(u.bombs[len(kept):])
	u.bombs = kept
}

// Die destroys the unit and reports its tier for scoring.
func (u *EnemyUnit) Die() {
	if !u.alive {
		return
	}
	u.alive = false
	u.arena.Audio.Play(SoundInvaderKilled, nil)
	u.arena.Renderer.SetVisualState(u.id, TagDead)
	if u.onKilled != nil {
		u.onKilled(u.tier)
	}
}

// CheckCrashFromBottom reports whether rising fire hits the unit.
// Dead units are never hit.
func (u *EnemyUnit) CheckCrashFromBottom(in physics.Rect) bool {
	if !u.alive {
		return false
	}
	return physics.HitFromBelow(in, u.Rect())
}

func (u *EnemyUnit) redraw() {
	r := u.Rect()
	u.arena.Renderer.Place(u.id, r.TopLeftX, r.TopLeftY)
	if u.phase {
		u.arena.Renderer.SetVisualState(u.id, TagPhaseA)
	} else {
		u.arena.Renderer.SetVisualState(u.id, TagPhaseB)
	}
}
