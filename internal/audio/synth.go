package audio

import (
	"math"
	"math/rand/v2"

	"github.com/gopxl/beep"
	"github.com/tomz197/invaders/internal/object"
)

type wave int

const (
	waveSquare wave = iota
	waveSine
	waveNoise
)

// tone is a generated sound: a frequency sweep with optional vibrato and
// a linear fade out.
type tone struct {
	wave       wave
	from, to   float64 // Hz over the whole duration
	vibrato    float64 // Hz of frequency wobble, 0 for none
	total, pos int
	phase      float64
	rate       float64
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress
		if t.vibrato > 0 {
			freq *= 1 + 0.25*math.Sin(2*math.Pi*t.vibrato*float64(t.pos)/t.rate)
		}

		var v float64
		switch t.wave {
		case waveSquare:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveNoise:
			v = rand.Float64()*2 - 1
		}
		v *= 0.3 * (1 - progress)

		samples[i][0] = v
		samples[i][1] = v
		t.phase += freq / t.rate
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// stepNotes are the four descending notes of the march.
var stepNotes = [4]float64{110, 98, 87, 82}

// synth builds the streamer of one sound, exactly Duration(snd) long.
func synth(snd object.Sound, rate beep.SampleRate) beep.Streamer {
	t := &tone{total: rate.N(Duration(snd)), rate: float64(rate)}
	switch snd {
	case object.SoundShoot:
		t.wave, t.from, t.to = waveSquare, 1200, 300
	case object.SoundExplosion:
		t.wave = waveNoise
	case object.SoundInvaderKilled:
		t.wave, t.from, t.to = waveSquare, 600, 80
	case object.SoundBonus:
		t.wave, t.from, t.to, t.vibrato = waveSine, 700, 700, 12
	default:
		n := stepNotes[(snd-object.SoundStep1)%4]
		t.wave, t.from, t.to = waveSquare, n, n
	}
	return t
}
