package input

import "github.com/tomz197/invaders/internal/object"

// Controls adapts per-frame Input to the ship's InputSource. Fire is
// latched on the frame the key goes down and consumed by the next ship
// tick, so a short tap between ticks is never lost.
type Controls struct {
	intent  object.Intent
	wasFire bool
	latched bool
}

// Update records one frame of input.
func (c *Controls) Update(in Input) {
	switch {
	case in.Left && !in.Right:
		c.intent = object.IntentLeft
	case in.Right && !in.Left:
		c.intent = object.IntentRight
	default:
		c.intent = object.IntentNone
	}
	if in.Fire && !c.wasFire {
		c.latched = true
	}
	c.wasFire = in.Fire
}

// Reset clears the intent and any pending fire.
func (c *Controls) Reset() {
	*c = Controls{}
}

// Intent implements object.InputSource.
func (c *Controls) Intent() object.Intent {
	return c.intent
}

// FirePressed implements object.InputSource.
func (c *Controls) FirePressed() bool {
	fired := c.latched
	c.latched = false
	return fired
}
