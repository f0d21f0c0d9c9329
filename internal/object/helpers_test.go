package object_test

import (
	"github.com/tomz197/invaders/internal/clock"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

// seqRand returns values in order, then def forever.
type seqRand struct {
	values []int
	def    int
}

func (r *seqRand) Intn(n int) int {
	if len(r.values) > 0 {
		v := r.values[0]
		r.values = r.values[1:]
		return v % n
	}
	return r.def % n
}

type fakeRenderer struct {
	placed  map[object.EntityID][2]int
	tags    map[object.EntityID]string
	removed map[object.EntityID]int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		placed:  make(map[object.EntityID][2]int),
		tags:    make(map[object.EntityID]string),
		removed: make(map[object.EntityID]int),
	}
}

func (r *fakeRenderer) Place(id object.EntityID, x, y int) { r.placed[id] = [2]int{x, y} }

func (r *fakeRenderer) SetVisualState(id object.EntityID, tag string) { r.tags[id] = tag }

func (r *fakeRenderer) Remove(id object.EntityID) { r.removed[id]++ }

type fakeAudio struct {
	played  []object.Sound
	finish  map[object.Sound]func()
	stopped []object.Sound
}

func newFakeAudio() *fakeAudio {
	return &fakeAudio{finish: make(map[object.Sound]func())}
}

func (a *fakeAudio) Play(s object.Sound, onFinished func()) {
	a.played = append(a.played, s)
	if onFinished != nil {
		a.finish[s] = onFinished
	}
}

func (a *fakeAudio) Stop(s object.Sound) { a.stopped = append(a.stopped, s) }

func (a *fakeAudio) StopAll() {}

func (a *fakeAudio) count(s object.Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

type testArena struct {
	*object.Arena
	clock    *clock.Scheduler
	renderer *fakeRenderer
	audio    *fakeAudio
	rand     *seqRand
}

// newTestArena builds an arena whose random draws never launch bombs.
func newTestArena() *testArena {
	clk := clock.New()
	r := newFakeRenderer()
	a := newFakeAudio()
	rnd := &seqRand{def: 1}
	return &testArena{
		Arena: &object.Arena{
			Settings: config.Default(),
			Clock:    clk,
			Renderer: r,
			Audio:    a,
			Rand:     rnd,
			IDs:      &object.IDs{},
		},
		clock:    clk,
		renderer: r,
		audio:    a,
		rand:     rnd,
	}
}

// stubTarget is hit by anything in its span.
type stubTarget struct {
	span physics.Rect
	dead int
}

func (s *stubTarget) CheckCrashFromBottom(r physics.Rect) bool {
	return physics.HitFromBelow(r, s.span)
}

func (s *stubTarget) Die() { s.dead++ }
