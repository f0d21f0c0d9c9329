package object_test

import (
	"testing"
	"time"

	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

func TestBonusFlight(t *testing.T) {
	a := newTestArena()
	b := object.NewBonusTarget(a.Arena, nil)

	if b.State() != object.BonusDormant {
		t.Fatalf("Expected dormant, got %v", b.State())
	}
	b.Tick()
	if b.X() != 0 {
		t.Error("Expected a dormant target not to move")
	}

	if !b.Spawn() {
		t.Fatal("Expected spawn from dormant")
	}
	if b.Spawn() {
		t.Error("Expected spawn while alive to be ignored")
	}

	for i := 1; i <= 14; i++ {
		b.Tick()
		if b.State() != object.BonusAlive || b.X() != 40*i {
			t.Fatalf("Tick %d: expected alive at %d, got %v at %d", i, 40*i, b.State(), b.X())
		}
	}
	b.Tick()
	if b.State() != object.BonusDormant {
		t.Errorf("Expected dormant after crossing the right edge, got %v", b.State())
	}
	if a.renderer.removed[b.ID()] != 1 {
		t.Error("Expected the target removed from view")
	}
	if len(a.audio.stopped) != 1 || a.audio.stopped[0] != object.SoundBonus {
		t.Errorf("Expected the flight sound stopped, got %v", a.audio.stopped)
	}
}

func TestBonusDeath(t *testing.T) {
	a := newTestArena()
	awarded := 0
	b := object.NewBonusTarget(a.Arena, func(p int) { awarded += p })

	hit := physics.Rect{TopLeftX: 30, TopLeftY: 20, BottomRightX: 30, BottomRightY: 35}
	if b.CheckCrashFromBottom(hit) {
		t.Error("Expected a dormant target not to be hit")
	}

	b.Spawn()
	if !b.CheckCrashFromBottom(hit) {
		t.Fatal("Expected a live target to be hit")
	}

	a.rand.values = []int{37}
	b.Die()
	if awarded != 137 || b.Points() != 137 {
		t.Errorf("Expected 137 points, got %d awarded and %d shown", awarded, b.Points())
	}
	if a.renderer.tags[b.ID()] != object.PointsTag(137) {
		t.Errorf("Expected points tag, got %q", a.renderer.tags[b.ID()])
	}
	if b.CheckCrashFromBottom(hit) {
		t.Error("Expected a dying target not to be hit")
	}
	b.Die()
	if awarded != 137 {
		t.Errorf("Expected a second Die to be ignored, got %d", awarded)
	}

	a.clock.Advance(999 * time.Millisecond)
	if b.State() != object.BonusDying {
		t.Fatalf("Expected dying before the delay, got %v", b.State())
	}
	a.clock.Advance(time.Millisecond)
	if b.State() != object.BonusDormant {
		t.Fatalf("Expected dormant after the delay, got %v", b.State())
	}
	if !b.Spawn() {
		t.Error("Expected a new flight after going dormant")
	}
}

func TestBonusPointsRange(t *testing.T) {
	for _, draw := range []int{0, 99, 250} {
		a := newTestArena()
		b := object.NewBonusTarget(a.Arena, nil)
		b.Spawn()
		a.rand.values = []int{draw}
		b.Die()
		if b.Points() < 100 || b.Points() > 199 {
			t.Errorf("Draw %d: points %d outside [100,199]", draw, b.Points())
		}
	}
}

func TestBonusSoundLoops(t *testing.T) {
	a := newTestArena()
	b := object.NewBonusTarget(a.Arena, nil)
	b.Spawn()

	a.audio.finish[object.SoundBonus]()
	a.audio.finish[object.SoundBonus]()
	if n := a.audio.count(object.SoundBonus); n != 3 {
		t.Errorf("Expected the flight sound to replay while alive, got %d plays", n)
	}

	stale := a.audio.finish[object.SoundBonus]
	for b.State() == object.BonusAlive {
		b.Tick()
	}
	stale()
	if n := a.audio.count(object.SoundBonus); n != 3 {
		t.Errorf("Expected no replay after the flight ended, got %d plays", n)
	}
}

func TestScoreboard(t *testing.T) {
	s := object.NewScoreboard(newTestArena().Settings.Score)
	s.AddKill(object.TierHigh)
	s.AddKill(object.TierMid)
	s.AddKill(object.TierLow)
	s.AddBonus(150)
	if s.Total() != 220 {
		t.Errorf("Expected 220, got %d", s.Total())
	}
}

func TestLives(t *testing.T) {
	a := newTestArena()
	l := object.NewLives(a.Settings.Lives, a.Settings.Ship.Width, a.IDs, a.Renderer)
	if l.Remaining() != 3 {
		t.Fatalf("Expected 3 lives, got %d", l.Remaining())
	}
	second := object.EntityID{Kind: object.KindLife, Seq: 1}
	if got := a.renderer.placed[second]; got != [2]int{475, 525} {
		t.Errorf("Expected second icon at (475,525), got %v", got)
	}

	if !l.Consume() || !l.Consume() {
		t.Fatal("Expected lives to remain after two deaths")
	}
	if l.Consume() {
		t.Error("Expected the third death to exhaust the lives")
	}
	if l.Consume() || l.Remaining() != 0 {
		t.Error("Expected an empty board to stay empty")
	}
}
