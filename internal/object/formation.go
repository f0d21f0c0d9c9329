package object

import "github.com/tomz197/invaders/internal/config"

// Formation is the sweep state shared by every unit of a grid: a column
// offset bouncing between 0 and MaxColumnSteps and a row offset that grows
// at each bounce.
type Formation struct {
	relX, relY   int
	slidingRight bool
	maxSteps     int
	period       int
	advance      int
}

// NewFormation creates a formation at the top-left of its sweep, moving right.
func NewFormation(s config.EnemySettings) *Formation {
	return &Formation{
		slidingRight: true,
		maxSteps:     s.MaxColumnSteps,
		period:       s.MovementPeriod,
		advance:      s.Advance,
	}
}

// Relative returns the offset in sweep steps.
func (f *Formation) Relative() (x, y int) { return f.relX, f.relY }

// SlidingRight reports the current sweep direction.
func (f *Formation) SlidingRight() bool { return f.slidingRight }

// Offset returns the offset in pixels.
func (f *Formation) Offset() (dx, dy int) {
	return f.relX * f.advance, f.relY * f.advance
}

// Step moves the formation on iterations divisible by the movement period.
// At a bound the direction flips and the formation drops a row; the
// column correction made while flipping cancels the regular step, so the
// column stays put on that iteration. Returns true if the formation moved.
func (f *Formation) Step(iter int) bool {
	if iter%f.period != 0 {
		return false
	}
	if (f.relX == f.maxSteps && f.slidingRight) || (f.relX == 0 && !f.slidingRight) {
		f.slidingRight = !f.slidingRight
		f.relY++
		if !f.slidingRight {
			f.relX++
		} else {
			f.relX--
		}
	}
	if f.slidingRight {
		f.relX++
	} else {
		f.relX--
	}
	return true
}

// EnemyGrid owns the formation and its units, listed column by column.
type EnemyGrid struct {
	formation *Formation
	units     []*EnemyUnit
}

// rowLayout gives the tier and starting animation phase of each row,
// top to bottom. Rows past the table repeat its last entry.
var rowLayout = []struct {
	tier  Tier
	phase bool
}{
	{TierHigh, true},
	{TierMid, true},
	{TierMid, false},
	{TierLow, true},
	{TierLow, false},
}

// NewEnemyGrid creates the configured grid of live units. onKilled is
// called with the tier of every unit destroyed.
func NewEnemyGrid(a *Arena, onKilled func(Tier)) *EnemyGrid {
	s := a.Settings.Enemy
	g := &EnemyGrid{
		formation: NewFormation(s),
		units:     make([]*EnemyUnit, 0, s.Columns*s.Rows),
	}
	for col := 0; col < s.Columns; col++ {
		for row := 0; row < s.Rows; row++ {
			layout := rowLayout[min(row, len(rowLayout)-1)]
			g.units = append(g.units, newEnemyUnit(a, g.formation, layout.tier, col, row, layout.phase, onKilled))
		}
	}
	return g
}

// Formation returns the shared sweep state.
func (g *EnemyGrid) Formation() *Formation { return g.formation }

// Units returns every unit, dead or alive, column by column.
func (g *EnemyGrid) Units() []*EnemyUnit { return g.units }

// Unit returns the unit at the given home cell, or nil.
func (g *EnemyGrid) Unit(col, row int) *EnemyUnit {
	for _, u := range g.units {
		if u.col == col && u.row == row {
			return u
		}
	}
	return nil
}

// AliveCount returns how many units are still alive.
func (g *EnemyGrid) AliveCount() int {
	n := 0
	for _, u := range g.units {
		if u.alive {
			n++
		}
	}
	return n
}

// Targets returns the units as targets for rising fire, in hit order.
func (g *EnemyGrid) Targets() []Target {
	targets := make([]Target, len(g.units))
	for i, u := range g.units {
		targets[i] = u
	}
	return targets
}

// Tick advances the whole grid by one enemy iteration: each unit checks
// for landing and may drop a bomb, then the formation steps, then the
// live units animate. Returns true as soon as a unit has landed.
func (g *EnemyGrid) Tick(iter int) (landed bool) {
	for _, u := range g.units {
		if u.Tick() {
			return true
		}
	}
	g.formation.Step(iter)
	for _, u := range g.units {
		u.Animate()
	}
	return false
}
