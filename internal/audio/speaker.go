package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/invaders/internal/object"
)

const sampleRate = beep.SampleRate(44100)

// Speaker synthesizes sounds into a mixer on the default output device.
//
// The playing table is guarded by the speaker lock, which beep also holds
// while it streams, so completion callbacks see a consistent table.
// onFinished is called on the speaker goroutine and must not block.
type Speaker struct {
	rate    beep.SampleRate
	mixer   *beep.Mixer
	lock    func()
	unlock  func()
	playing map[object.Sound][]*beep.Ctrl
}

// NewSpeaker opens the output device.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := newSpeaker(sampleRate, speaker.Lock, speaker.Unlock)
	speaker.Play(s.mixer)
	return s, nil
}

func newSpeaker(rate beep.SampleRate, lock, unlock func()) *Speaker {
	return &Speaker{
		rate:    rate,
		mixer:   &beep.Mixer{},
		lock:    lock,
		unlock:  unlock,
		playing: make(map[object.Sound][]*beep.Ctrl),
	}
}

// Play implements object.AudioPlayer.
func (s *Speaker) Play(snd object.Sound, onFinished func()) {
	ctrl := &beep.Ctrl{}
	ctrl.Streamer = beep.Seq(
		synth(snd, s.rate),
		beep.Callback(func() {
			// Runs with the speaker lock held.
			if s.forget(snd, ctrl) && onFinished != nil {
				onFinished()
			}
		}),
	)

	s.lock()
	s.playing[snd] = append(s.playing[snd], ctrl)
	s.mixer.Add(ctrl)
	s.unlock()
}

// forget drops ctrl from the playing table and reports whether it was
// still there, i.e. not stopped.
func (s *Speaker) forget(snd object.Sound, ctrl *beep.Ctrl) bool {
	ctrls := s.playing[snd]
	for i, c := range ctrls {
		if c == ctrl {
			s.playing[snd] = append(ctrls[:i], ctrls[i+1:]...)
			return true
		}
	}
	return false
}

// Stop implements object.AudioPlayer. A nil streamer ends the control,
// so the mixer drops it on its next pass.
func (s *Speaker) Stop(snd object.Sound) {
	s.lock()
	defer s.unlock()
	for _, c := range s.playing[snd] {
		c.Streamer = nil
	}
	delete(s.playing, snd)
}

// StopAll implements object.AudioPlayer.
func (s *Speaker) StopAll() {
	s.lock()
	defer s.unlock()
	for _, ctrls := range s.playing {
		for _, c := range ctrls {
			c.Streamer = nil
		}
	}
	clear(s.playing)
}

// Close stops every sound.
func (s *Speaker) Close() {
	s.StopAll()
	s.lock()
	s.mixer.Clear()
	s.unlock()
}
