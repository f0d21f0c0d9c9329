package render

import "time"

// Screen is the phase a session is showing.
type Screen int

const (
	ScreenStart    Screen = iota // title and difficulty pick
	ScreenPlaying                // round in progress
	ScreenEnded                  // round result
	ScreenShutdown               // server going away
)

// Outcome is the result of a finished round as shown to the player.
type Outcome struct {
	Won            bool
	FinalScore     int
	ElapsedSeconds int
	HighScore      int
	NewHighScore   bool
}

// View is everything a frontend needs to draw one frame.
type View struct {
	Screen     Screen
	Sprites    []Sprite
	Score      int
	HighScore  int
	Lives      int
	Difficulty int
	Outcome    Outcome

	// Inactive is set once the player has been idle long enough to be
	// warned; Countdown is the time left before disconnection. On the
	// shutdown screen Countdown is the time left before the server closes.
	Inactive  bool
	Countdown time.Duration
}
