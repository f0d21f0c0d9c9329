// Package audio plays the round's sound effects.
package audio

import (
	"time"

	"github.com/tomz197/invaders/internal/object"
)

// Duration is how long each sound plays. The ship's respawn waits for the
// explosion, and the bonus target's loop restarts after every play.
func Duration(s object.Sound) time.Duration {
	switch s {
	case object.SoundShoot:
		return 250 * time.Millisecond
	case object.SoundExplosion:
		return 800 * time.Millisecond
	case object.SoundInvaderKilled:
		return 300 * time.Millisecond
	case object.SoundBonus:
		return 400 * time.Millisecond
	default:
		return 100 * time.Millisecond
	}
}
