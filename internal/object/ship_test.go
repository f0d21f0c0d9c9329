package object_test

import (
	"testing"
	"time"

	"github.com/tomz197/invaders/internal/clock"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/object/mocks"
	"github.com/tomz197/invaders/internal/physics"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

func TestShipSlotStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := newTestArena()
		s := object.NewShip(a.Arena, nil)
		intents := rapid.SliceOf(rapid.SampledFrom([]object.Intent{
			object.IntentNone, object.IntentLeft, object.IntentRight,
		})).Draw(t, "intents")

		for _, in := range intents {
			s.Tick(in)
			if s.Slot() < 0 || s.Slot() > a.Settings.Ship.MaxSlot {
				t.Fatalf("slot %d out of range", s.Slot())
			}
		}
	})
}

func TestShipMoves(t *testing.T) {
	a := newTestArena()
	s := object.NewShip(a.Arena, nil)

	s.Tick(object.IntentLeft)
	if s.Slot() != 0 {
		t.Errorf("Expected slot 0 after moving left at the edge, got %d", s.Slot())
	}
	for range 3 {
		s.Tick(object.IntentRight)
	}
	if want := physics.NewRect(45, 490, 55, 26); s.Rect() != want {
		t.Errorf("Expected rect %+v, got %+v", want, s.Rect())
	}
	if got := a.renderer.placed[s.ID()]; got != [2]int{45, 490} {
		t.Errorf("Expected ship placed at (45,490), got %v", got)
	}
}

func TestShipFireOneMissileAtATime(t *testing.T) {
	a := newTestArena()
	s := object.NewShip(a.Arena, nil)

	if !s.Fire() {
		t.Fatal("Expected first shot to launch")
	}
	if x := s.Missile().Rect().TopLeftX; x != 42 {
		t.Errorf("Expected missile centred at x=42, got %d", x)
	}
	if s.Fire() {
		t.Error("Expected second shot to be ignored while the missile flies")
	}
	if n := a.audio.count(object.SoundShoot); n != 1 {
		t.Errorf("Expected one shoot sound, got %d", n)
	}

	a.clock.Advance(time.Second)
	if s.Missile().IsRunning() {
		t.Fatal("Expected missile to leave the field")
	}
	if !s.Fire() {
		t.Error("Expected a new shot once the missile resolved")
	}
}

func TestShipDeathSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioPlayer(ctrl)

	var finished func()
	audio.EXPECT().Play(object.SoundExplosion, gomock.Any()).
		Do(func(_ object.Sound, onFinished func()) { finished = onFinished }).
		Times(1)

	lost := 0
	a := &object.Arena{
		Settings: config.Default(),
		Clock:    clock.New(),
		Renderer: newFakeRenderer(),
		Audio:    audio,
		Rand:     &seqRand{def: 1},
		IDs:      &object.IDs{},
	}
	s := object.NewShip(a, func() { lost++ })
	s.Tick(object.IntentRight)
	s.Tick(object.IntentRight)

	hit := physics.Rect{TopLeftX: 50, TopLeftY: 480, BottomRightX: 50, BottomRightY: 495}
	if !s.CheckCrash(hit) {
		t.Fatal("Expected bomb to hit the ship")
	}
	s.Die()
	s.Die()

	if s.State() != object.ShipDying {
		t.Fatalf("Expected dying, got %v", s.State())
	}
	if s.CheckCrash(hit) {
		t.Error("Expected a dying ship not to be hit")
	}
	s.Tick(object.IntentRight)
	if s.Slot() != 2 {
		t.Errorf("Expected a dying ship to ignore movement, got slot %d", s.Slot())
	}
	if s.Fire() {
		t.Error("Expected a dying ship not to fire")
	}

	finished()
	if s.State() != object.ShipAlive || s.Slot() != 0 {
		t.Errorf("Expected respawn at slot 0, got state %v slot %d", s.State(), s.Slot())
	}
	if lost != 1 {
		t.Errorf("Expected one life lost, got %d", lost)
	}

	finished()
	if lost != 1 {
		t.Errorf("Expected a stale completion to be ignored, got %d lives lost", lost)
	}
}
