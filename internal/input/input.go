// Package input turns raw terminal bytes into held-key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Fire   bool
	Enter  bool
	Number int // last digit pressed, -1 if none
	Any    bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit      time.Time
	left      time.Time
	right     time.Time
	fire      time.Time
	enter     time.Time
	number    time.Time
	numberVal int
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
	now   func() time.Time
}

// NewStream creates a stream fed with Push.
func NewStream() *Stream {
	return &Stream{
		ch:    make(chan byte, 128),
		state: keyState{numberVal: -1},
		now:   time.Now,
	}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r fails.
func StartStream(r *bufio.Reader) *Stream {
	s := NewStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Push queues bytes without blocking; bytes that do not fit are dropped.
func (s *Stream) Push(p ...byte) {
	for _, b := range p {
		select {
		case s.ch <- b:
		default:
		}
	}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys. A closed stream reads as Quit.
func ReadInput(s *Stream) Input {
	now := s.now()
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.fire = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}
		applyByteToState(&s.state, b, now)
	}

	input := Input{
		Quit:   closed || now.Sub(s.state.quit) < keyHoldDuration,
		Left:   now.Sub(s.state.left) < keyHoldDuration,
		Right:  now.Sub(s.state.right) < keyHoldDuration,
		Fire:   now.Sub(s.state.fire) < keyHoldDuration,
		Enter:  now.Sub(s.state.enter) < keyHoldDuration,
		Number: -1,
		Any:    len(buf) > 0,
	}
	if now.Sub(s.state.number) < keyHoldDuration {
		input.Number = s.state.numberVal
	}
	return input
}

// ResetKeyInput forgets every held key, so a key that started a round is
// not read again as a game action.
func ResetKeyInput(s *Stream) {
	s.state = keyState{numberVal: -1}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case ' ', 'w', 'W':
		state.fire = now
	case '\n', '\r':
		state.enter = now
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		state.number = now
		state.numberVal = int(b - '0')
	}
}
