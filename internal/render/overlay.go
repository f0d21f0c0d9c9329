package render

import (
	"fmt"
	"time"

	"github.com/tomz197/invaders/internal/draw"
)

// Text is a string at a 1-based position inside the render area.
type Text struct {
	Col, Row int
	S        string
}

type overlay struct {
	texts   []Text
	centerX int
}

func (o *overlay) at(col, row int, s string) {
	o.texts = append(o.texts, Text{Col: col, Row: row, S: s})
}

func (o *overlay) centered(row int, s string) {
	o.at(o.centerX-len(s)/2, row, s)
}

func (o *overlay) art(lines []string, startY int) {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	for i, line := range lines {
		o.at(o.centerX-width/2, startY+i, line)
	}
}

// Overlay lays out the text drawn over the canvas for a view. Prompts
// blink every 600ms of now.
func Overlay(v View, c *draw.Canvas, now time.Time) []Text {
	termHeight := c.TerminalHeight()
	centerY := termHeight / 2
	o := &overlay{centerX: c.TerminalWidth() / 2}
	blink := now.UnixMilli()/600%2 == 0

	if v.Inactive {
		inactivityScreen(o, v, centerY)
		return o.texts
	}

	switch v.Screen {
	case ScreenStart:
		startScreen(o, v, centerY, blink)
	case ScreenPlaying:
		playingHUD(o, v, c, termHeight)
	case ScreenEnded:
		endScreen(o, v, centerY, blink)
	case ScreenShutdown:
		shutdownScreen(o, v, centerY)
	}
	return o.texts
}

func startScreen(o *overlay, v View, centerY int, blink bool) {
	titleArt := []string{
		` ___ _  ___   ___   ___  ___ ___  ___  `,
		`|_ _| \| \ \ / /_\ |   \| __| _ \/ __| `,
		` | || .' |\ V / _ \| |) | _||   /\__ \ `,
		`|___|_|\_| \_/_/ \_\___/|___|_|_\|___/ `,
		`                                       `,
	}
	titleStartY := centerY - 9
	o.art(titleArt, titleStartY)

	y := titleStartY + len(titleArt) + 1
	o.centered(y, fmt.Sprintf("High score: %d", v.HighScore))

	y += 2
	o.centered(y, "Controls")
	controlLines := []string{
		"A D / < >  . . . .  Move",
		"SPACE / W / Up  .  Shoot",
		"1 - 6  . . .  Difficulty",
		"Q  . . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		o.centered(y+1+i, line)
	}

	y += len(controlLines) + 2
	o.centered(y, fmt.Sprintf("Difficulty: %d", v.Difficulty))
	if blink {
		o.centered(y+2, ">>  Press ENTER to Start  <<")
	}
}

// playingHUD uses fixed-width fields so shrinking values don't leave
// residual characters on screen.
func playingHUD(o *overlay, v View, c *draw.Canvas, termHeight int) {
	o.at(2, termHeight, fmt.Sprintf("Score: %-6d  Hi: %-6d  Level: %-2d", v.Score, v.HighScore, v.Difficulty))

	for _, l := range Labels(v.Sprites) {
		col, row := c.LogicalToTerminal(l.X, l.Y)
		o.at(col-len(l.Text)/2, row, l.Text)
	}
}

func endScreen(o *overlay, v View, centerY int, blink bool) {
	var titleArt []string
	if v.Outcome.Won {
		titleArt = []string{
			` __   _____  _   _  __      _____ _  _  `,
			` \ \ / / _ \| | | | \ \    / /_ _| \| | `,
			`  \ V / (_) | |_| |  \ \/\/ / | || .' | `,
			`   |_| \___/ \___/    \_/\_/ |___|_|\_| `,
			`                                        `,
		}
	} else {
		titleArt = []string{
			`   ___   _   __  __ ___    _____   _____ ___  `,
			`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
			` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
			`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
			`                                              `,
		}
	}
	titleStartY := centerY - 6
	o.art(titleArt, titleStartY)

	y := titleStartY + len(titleArt) + 1
	o.centered(y, fmt.Sprintf("Score: %d", v.Outcome.FinalScore))
	o.centered(y+1, fmt.Sprintf("Time: %ds", v.Outcome.ElapsedSeconds))
	if v.Outcome.NewHighScore {
		o.centered(y+3, "New high score!")
	} else {
		o.centered(y+3, fmt.Sprintf("High score: %d", v.Outcome.HighScore))
	}
	if blink {
		o.centered(y+5, ">>  ENTER to play again, Q to quit  <<")
	}
}

func inactivityScreen(o *overlay, v View, centerY int) {
	o.centered(centerY-2, "INACTIVITY WARNING")
	o.centered(centerY, fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(v.Countdown.Seconds()),
	))
	o.centered(centerY+2, "Press any key to continue")
}

func shutdownScreen(o *overlay, v View, centerY int) {
	o.centered(centerY-3, "SERVER SHUTTING DOWN")
	o.centered(centerY-1, "The server is restarting for maintenance.")
	o.centered(centerY, "Please reconnect in a moment.")
	o.centered(centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", int(v.Countdown.Seconds())+1))
	o.centered(centerY+4, "Press Q to disconnect now")
}
