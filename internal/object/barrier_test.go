package object_test

import (
	"testing"
	"time"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/object/mocks"
	"github.com/tomz197/invaders/internal/physics"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

func TestBarrierLayout(t *testing.T) {
	barriers := object.NewBarriers(config.Default().Barrier, &object.IDs{}, newFakeRenderer())
	want := []int{70, 206, 342, 478}
	if len(barriers) != len(want) {
		t.Fatalf("Expected %d barriers, got %d", len(want), len(barriers))
	}
	for i, b := range barriers {
		r := b.Rect()
		if r.TopLeftX != want[i] || r.TopLeftY != 400 || r.Width() != 66 || r.Height() != 48 {
			t.Errorf("Barrier %d: unexpected rect %+v", i+1, r)
		}
	}
}

func TestBarrierAbsorbsBomb(t *testing.T) {
	a := newTestArena()
	a.Barriers = object.NewBarriers(a.Settings.Barrier, a.IDs, a.Renderer)
	a.Ship = object.NewShip(a.Arena, nil)

	bomb := object.NewBomb(a.Arena, 100, 370)
	bomb.Launch()
	a.clock.Advance(time.Second)

	if bomb.IsRunning() {
		t.Fatal("Expected bomb to resolve")
	}
	if bomb.Resolution() != object.HitBarrier {
		t.Errorf("Expected barrier hit, got %v", bomb.Resolution())
	}
	zones := a.Barriers[0].Zones()
	if len(zones) != 1 {
		t.Fatalf("Expected exactly one damage zone, got %d", len(zones))
	}
	if want := physics.NewRect(90, 395, 20, 20); zones[0] != want {
		t.Errorf("Expected zone %+v, got %+v", want, zones[0])
	}
	if !a.Ship.Alive() {
		t.Error("Expected ship to be untouched")
	}

	// The same impact again lands on already destroyed territory.
	impact := physics.Rect{TopLeftX: 100, TopLeftY: 405, BottomRightX: 100, BottomRightY: 420}
	if a.Barriers[0].CheckCrash(impact) {
		t.Error("Expected repeated impact to be absorbed by the existing zone")
	}
	if n := len(a.Barriers[0].Zones()); n != 1 {
		t.Errorf("Expected zone count to stay 1, got %d", n)
	}
}

func TestBarrierRecordsHole(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := mocks.NewMockRenderer(ctrl)

	barrierID := object.EntityID{Kind: object.KindBarrier, Seq: 0}
	holeID := object.EntityID{Kind: object.KindDamage, Seq: 0}
	gomock.InOrder(
		r.EXPECT().Place(barrierID, 70, 400),
		r.EXPECT().Place(holeID, 90, 395),
		r.EXPECT().SetVisualState(holeID, object.TagHole),
	)

	b := object.NewBarrier(1, config.Default().Barrier, &object.IDs{}, r)
	if !b.CheckCrash(physics.Rect{TopLeftX: 100, TopLeftY: 405, BottomRightX: 100, BottomRightY: 420}) {
		t.Error("Expected first impact to hit")
	}
}

func TestBarrierMissesOutsideBase(t *testing.T) {
	b := object.NewBarrier(1, config.Default().Barrier, &object.IDs{}, newFakeRenderer())
	for _, in := range []physics.Rect{
		{TopLeftX: 70, TopLeftY: 420, BottomRightX: 70, BottomRightY: 435},
		{TopLeftX: 100, TopLeftY: 385, BottomRightX: 100, BottomRightY: 400},
		{TopLeftX: 100, TopLeftY: 448, BottomRightX: 100, BottomRightY: 463},
	} {
		if b.CheckCrash(in) {
			t.Errorf("Expected %+v to miss", in)
		}
	}
	if len(b.Zones()) != 0 {
		t.Error("Expected misses to leave no zones")
	}
}

func TestBarrierTunnelsDeeper(t *testing.T) {
	a := newTestArena()
	a.Barriers = object.NewBarriers(a.Settings.Barrier, a.IDs, a.Renderer)

	for range 2 {
		bomb := object.NewBomb(a.Arena, 100, 370)
		bomb.Launch()
		a.clock.Advance(time.Second)
	}

	zones := a.Barriers[0].Zones()
	if len(zones) != 2 {
		t.Fatalf("Expected two zones, got %d", len(zones))
	}
	if zones[1].TopLeftY <= zones[0].TopLeftY {
		t.Errorf("Expected second zone below the first, got %+v then %+v", zones[0], zones[1])
	}
}

func TestBarrierShieldedImpactNeverRecorded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := object.NewBarrier(1, config.Default().Barrier, &object.IDs{}, newFakeRenderer())
		n := rapid.IntRange(1, 40).Draw(t, "impacts")
		for i := 0; i < n; i++ {
			x := rapid.IntRange(60, 146).Draw(t, "x")
			y := rapid.IntRange(380, 460).Draw(t, "y")
			in := physics.NewRect(x, y, 0, 15)

			shielded := false
			for _, z := range b.Zones() {
				if physics.Shields(z, in) {
					shielded = true
				}
			}
			before := len(b.Zones())
			hit := b.CheckCrash(in)
			if shielded && (hit || len(b.Zones()) != before) {
				t.Fatalf("impact %+v inside a recorded zone was charged", in)
			}
			if hit && len(b.Zones()) != before+1 {
				t.Fatalf("hit recorded %d zones", len(b.Zones())-before)
			}
		}
	})
}
