package audio

import (
	"sync"
	"time"

	"github.com/tomz197/invaders/internal/object"
)

// Silent plays nothing but keeps real time: onFinished fires once the
// sound would have ended. Used when no output device is available and for
// remote sessions.
type Silent struct {
	mu       sync.Mutex
	duration func(object.Sound) time.Duration
	timers   map[object.Sound][]*time.Timer
}

func NewSilent() *Silent {
	return &Silent{
		duration: Duration,
		timers:   make(map[object.Sound][]*time.Timer),
	}
}

// Play implements object.AudioPlayer.
func (s *Silent) Play(snd object.Sound, onFinished func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t *time.Timer
	t = time.AfterFunc(s.duration(snd), func() {
		s.mu.Lock()
		playing := s.forget(snd, t)
		s.mu.Unlock()
		if playing && onFinished != nil {
			onFinished()
		}
	})
	s.timers[snd] = append(s.timers[snd], t)
}

// forget must be called with mu held.
func (s *Silent) forget(snd object.Sound, t *time.Timer) bool {
	timers := s.timers[snd]
	for i, other := range timers {
		if other == t {
			s.timers[snd] = append(timers[:i], timers[i+1:]...)
			return true
		}
	}
	return false
}

// Stop implements object.AudioPlayer.
func (s *Silent) Stop(snd object.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.timers[snd] {
		t.Stop()
	}
	delete(s.timers, snd)
}

// StopAll implements object.AudioPlayer.
func (s *Silent) StopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, timers := range s.timers {
		for _, t := range timers {
			t.Stop()
		}
	}
	clear(s.timers)
}

// Pending is the number of sounds still playing.
func (s *Silent) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, timers := range s.timers {
		n += len(timers)
	}
	return n
}
