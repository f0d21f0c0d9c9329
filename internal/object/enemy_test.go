package object_test

import (
	"testing"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
	"pgregory.net/rapid"
)

func TestFormationSweep(t *testing.T) {
	f := object.NewFormation(config.Default().Enemy)

	type pos struct {
		x, y  int
		right bool
	}
	want := map[int]pos{
		1:  {0, 0, true},
		2:  {1, 0, true},
		12: {6, 0, true},
		13: {6, 0, true},
		14: {6, 1, false},
		16: {5, 1, false},
		26: {0, 1, false},
		28: {0, 2, true},
		30: {1, 2, true},
	}

	for iter := 1; iter <= 30; iter++ {
		moved := f.Step(iter)
		if moved != (iter%2 == 0) {
			t.Errorf("Iteration %d: expected moved=%v", iter, iter%2 == 0)
		}
		if w, ok := want[iter]; ok {
			x, y := f.Relative()
			if x != w.x || y != w.y || f.SlidingRight() != w.right {
				t.Errorf("Iteration %d: expected (%d,%d,right=%v), got (%d,%d,right=%v)",
					iter, w.x, w.y, w.right, x, y, f.SlidingRight())
			}
		}
	}
}

func TestFormationStaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := config.Default().Enemy
		s.MaxColumnSteps = rapid.IntRange(1, 10).Draw(t, "max")
		s.MovementPeriod = rapid.IntRange(1, 4).Draw(t, "period")
		f := object.NewFormation(s)

		lastY := 0
		n := rapid.IntRange(1, 500).Draw(t, "iterations")
		for iter := 1; iter <= n; iter++ {
			f.Step(iter)
			x, y := f.Relative()
			if x < 0 || x > s.MaxColumnSteps {
				t.Fatalf("column offset %d outside [0,%d]", x, s.MaxColumnSteps)
			}
			if y < lastY {
				t.Fatalf("row offset went back up from %d to %d", lastY, y)
			}
			lastY = y
		}
	})
}

func TestEnemyGridLayout(t *testing.T) {
	a := newTestArena()
	g := object.NewEnemyGrid(a.Arena, nil)

	units := g.Units()
	if len(units) != 55 {
		t.Fatalf("Expected 55 units, got %d", len(units))
	}
	if col, row := units[4].Cell(); col != 0 || row != 4 {
		t.Errorf("Expected units listed column by column, unit 4 is (%d,%d)", col, row)
	}

	tiers := []object.Tier{object.TierHigh, object.TierMid, object.TierMid, object.TierLow, object.TierLow}
	phases := []bool{true, true, false, true, false}
	for row := range 5 {
		u := g.Unit(3, row)
		if u.Tier() != tiers[row] || u.Phase() != phases[row] {
			t.Errorf("Row %d: expected tier %v phase %v, got %v %v", row, tiers[row], phases[row], u.Tier(), u.Phase())
		}
	}

	if want := physics.NewRect(20, 218, 42, 42); g.Unit(0, 4).Rect() != want {
		t.Errorf("Expected (0,4) at %+v, got %+v", want, g.Unit(0, 4).Rect())
	}
	if want := physics.NewRect(440, 50, 42, 42); g.Unit(10, 0).Rect() != want {
		t.Errorf("Expected (10,0) at %+v, got %+v", want, g.Unit(10, 0).Rect())
	}
}

func TestEnemyUnitsFollowFormation(t *testing.T) {
	a := newTestArena()
	g := object.NewEnemyGrid(a.Arena, nil)

	for iter := 1; iter <= 14; iter++ {
		if g.Tick(iter) {
			t.Fatal("Expected no landing")
		}
	}

	if want := physics.NewRect(116, 234, 42, 42); g.Unit(0, 4).Rect() != want {
		t.Errorf("Expected (0,4) at %+v, got %+v", want, g.Unit(0, 4).Rect())
	}
	if got := a.renderer.placed[g.Unit(0, 4).ID()]; got != [2]int{116, 234} {
		t.Errorf("Expected renderer to see (116,234), got %v", got)
	}
}

func TestEnemyGridLands(t *testing.T) {
	a := newTestArena()
	g := object.NewEnemyGrid(a.Arena, nil)

	landedAt := 0
	for iter := 1; iter <= 1000; iter++ {
		if g.Tick(iter) {
			landedAt = iter
			break
		}
	}
	if landedAt != 225 {
		t.Errorf("Expected the bottom row to land on iteration 225, got %d", landedAt)
	}
}

func TestEnemyDeadUnitIsNeverHit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := newTestArena()
		g := object.NewEnemyGrid(a.Arena, nil)
		units := g.Units()
		u := units[rapid.IntRange(0, len(units)-1).Draw(t, "unit")]
		u.Die()

		r := u.Rect()
		x := rapid.IntRange(r.TopLeftX-5, r.BottomRightX+5).Draw(t, "x")
		y := rapid.IntRange(r.TopLeftY-20, r.BottomRightY+5).Draw(t, "y")
		if u.CheckCrashFromBottom(physics.NewRect(x, y, 0, 15)) {
			t.Fatalf("dead unit hit at (%d,%d)", x, y)
		}
	})
}

func TestEnemyDieScoresOnce(t *testing.T) {
	a := newTestArena()
	var killed []object.Tier
	g := object.NewEnemyGrid(a.Arena, func(t object.Tier) { killed = append(killed, t) })

	u := g.Unit(2, 0)
	u.Die()
	u.Die()

	if len(killed) != 1 || killed[0] != object.TierHigh {
		t.Errorf("Expected a single high tier kill, got %v", killed)
	}
	if g.AliveCount() != 54 {
		t.Errorf("Expected 54 alive, got %d", g.AliveCount())
	}
	if a.renderer.tags[u.ID()] != object.TagDead {
		t.Errorf("Expected dead tag, got %q", a.renderer.tags[u.ID()])
	}

	g.Tick(1)
	g.Tick(2)
	if a.renderer.removed[u.ID()] != 1 {
		t.Errorf("Expected the dead unit removed exactly once, got %d", a.renderer.removed[u.ID()])
	}
}

func TestEnemyBombDraw(t *testing.T) {
	a := newTestArena()
	g := object.NewEnemyGrid(a.Arena, nil)

	// The first unit draws 140 (140 % 70 == 0), the rest draw 1.
	a.rand.values = []int{140}
	g.Tick(1)

	first := g.Units()[0]
	if first.Bombs() != 1 {
		t.Fatalf("Expected one bomb from the first unit, got %d", first.Bombs())
	}
	for _, u := range g.Units()[1:] {
		if u.Bombs() != 0 {
			t.Fatalf("Expected no other bombs, unit %v has %d", u.ID(), u.Bombs())
		}
	}
	bombID := object.EntityID{Kind: object.KindBomb, Seq: 0}
	if got := a.renderer.placed[bombID]; got != [2]int{41, 97} {
		t.Errorf("Expected bomb below the unit centre at (41,97), got %v", got)
	}
}
