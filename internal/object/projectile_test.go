package object_test

import (
	"testing"
	"time"

	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
	"pgregory.net/rapid"
)

func TestProjectileRect(t *testing.T) {
	a := newTestArena()

	missile := object.NewMissile(a.Arena, 42, 490)
	want := physics.Rect{TopLeftX: 42, TopLeftY: 475, BottomRightX: 42, BottomRightY: 490}
	if got := missile.Rect(); got != want {
		t.Errorf("Missile: expected %+v, got %+v", want, got)
	}

	bomb := object.NewBomb(a.Arena, 41, 260)
	want = physics.Rect{TopLeftX: 41, TopLeftY: 260, BottomRightX: 41, BottomRightY: 275}
	if got := bomb.Rect(); got != want {
		t.Errorf("Bomb: expected %+v, got %+v", want, got)
	}
}

func TestProjectileLeavesField(t *testing.T) {
	tests := []struct {
		name  string
		make  func(a *object.Arena) *object.Projectile
		steps int
	}{
		{"missile", func(a *object.Arena) *object.Projectile { return object.NewMissile(a, 5, 490) }, 95},
		{"bomb", func(a *object.Arena) *object.Projectile { return object.NewBomb(a, 5, 300) }, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestArena()
			p := tt.make(a.Arena)
			p.Launch()
			a.clock.Advance(10 * time.Second)

			if p.Resolution() != object.LeftField {
				t.Errorf("Expected boundary exit, got %v", p.Resolution())
			}
			if p.Steps() != tt.steps {
				t.Errorf("Expected %d steps, got %d", tt.steps, p.Steps())
			}
			if a.renderer.removed[p.ID()] != 1 {
				t.Errorf("Expected projectile removed once, got %d", a.renderer.removed[p.ID()])
			}
			if a.clock.Pending() != 0 {
				t.Errorf("Expected no re-scheduling after resolution, got %d pending", a.clock.Pending())
			}
		})
	}
}

func TestProjectilePeriod(t *testing.T) {
	a := newTestArena()
	p := object.NewMissile(a.Arena, 5, 490)
	p.Launch()

	if p.Steps() != 1 {
		t.Fatalf("Expected launch to tick immediately, got %d steps", p.Steps())
	}
	a.clock.Advance(40 * time.Millisecond)
	if p.Steps() != 6 {
		t.Errorf("Expected 6 steps after 40ms at 8ms period, got %d", p.Steps())
	}
}

func TestBombHitsShip(t *testing.T) {
	a := newTestArena()
	a.Ship = object.NewShip(a.Arena, nil)

	bomb := object.NewBomb(a.Arena, 42, 450)
	bomb.Launch()
	a.clock.Advance(time.Second)

	if bomb.Resolution() != object.HitTarget {
		t.Errorf("Expected target hit, got %v", bomb.Resolution())
	}
	if bomb.Steps() != 6 {
		t.Errorf("Expected hit on step 6, got %d", bomb.Steps())
	}
	if a.Ship.State() != object.ShipDying {
		t.Errorf("Expected ship dying, got %v", a.Ship.State())
	}
}

func TestProjectileFirstMatchWins(t *testing.T) {
	a := newTestArena()
	first := &stubTarget{span: physics.NewRect(0, 100, 100, 100)}
	second := &stubTarget{span: physics.NewRect(0, 100, 100, 100)}
	a.Targets = []object.Target{first, second}

	m := object.NewMissile(a.Arena, 50, 300)
	m.Launch()
	a.clock.Advance(time.Second)

	if first.dead != 1 || second.dead != 0 {
		t.Errorf("Expected only the first target to die, got %d and %d", first.dead, second.dead)
	}
}

func TestBarrierShieldsTargetBehindIt(t *testing.T) {
	a := newTestArena()
	a.Barriers = object.NewBarriers(a.Settings.Barrier, a.IDs, a.Renderer)
	behind := &stubTarget{span: physics.NewRect(70, 300, 66, 90)}
	a.Targets = []object.Target{behind}

	m := object.NewMissile(a.Arena, 100, 490)
	m.Launch()
	a.clock.Advance(time.Second)

	if m.Resolution() != object.HitBarrier {
		t.Errorf("Expected barrier hit, got %v", m.Resolution())
	}
	if behind.dead != 0 {
		t.Error("Expected target behind the barrier to survive")
	}
}

func TestProjectileSingleResolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := newTestArena()
		a.Barriers = object.NewBarriers(a.Settings.Barrier, a.IDs, a.Renderer)
		target := &stubTarget{span: physics.NewRect(
			rapid.IntRange(0, 600).Draw(t, "tx"),
			rapid.IntRange(0, 380).Draw(t, "ty"),
			rapid.IntRange(1, 100).Draw(t, "tw"),
			rapid.IntRange(1, 100).Draw(t, "th"),
		)}
		a.Targets = []object.Target{target}

		m := object.NewMissile(a.Arena, rapid.IntRange(0, 640).Draw(t, "x"), 490)
		m.Launch()
		a.clock.Advance(10 * time.Second)

		if m.IsRunning() {
			t.Fatal("missile never resolved")
		}
		res := m.Resolution()
		zones := 0
		for _, b := range a.Barriers {
			zones += len(b.Zones())
		}
		switch res {
		case object.HitBarrier:
			if zones != 1 || target.dead != 0 {
				t.Fatalf("barrier hit charged %d zones and %d kills", zones, target.dead)
			}
		case object.HitTarget:
			if zones != 0 || target.dead != 1 {
				t.Fatalf("target hit charged %d zones and %d kills", zones, target.dead)
			}
		case object.LeftField:
			if zones != 0 || target.dead != 0 {
				t.Fatalf("boundary exit charged %d zones and %d kills", zones, target.dead)
			}
		}

		steps := m.Steps()
		if !m.Tick() || m.Steps() != steps || m.Resolution() != res {
			t.Fatal("ticking a resolved missile changed it")
		}
	})
}
