package render

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
)

// Max render resolution. 128 columns by 56 rows gives square 5x5 field
// pixels for the default 640x560 field.
const (
	MaxTermWidth  = 128
	MaxTermHeight = 56
)

// Terminal draws views with ANSI escapes and reads keys from a byte
// stream. It serves both the local terminal and SSH sessions.
type Terminal struct {
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	stream       *input.Stream
	termSizeFunc draw.TermSizeFunc
	now          func() time.Time

	drawn       bool
	prevScreen  Screen
	wasInactive bool
}

// NewTerminal creates a frontend reading keys from r and drawing to w.
// A nil size function reads the size of os.Stdout.
func NewTerminal(r *bufio.Reader, w io.Writer, size draw.TermSizeFunc, field config.FieldSettings) *Terminal {
	if size == nil {
		size = draw.DefaultTermSizeFunc
	}
	termWidth, termHeight, _ := draw.TerminalSizeRawWith(size)
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, MaxTermWidth, MaxTermHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, field.Width, field.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	draw.HideCursor(w)
	draw.ClearScreen(w)

	return &Terminal{
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		stream:       input.StartStream(r),
		termSizeFunc: size,
		now:          time.Now,
	}
}

// Close clears the screen and restores the cursor.
func (t *Terminal) Close() {
	draw.ClearScreen(t.writer)
	draw.ShowCursor(t.writer)
}

// ReadInput drains pending keys.
func (t *Terminal) ReadInput() input.Input {
	return input.ReadInput(t.stream)
}

// ResetInput forgets held keys.
func (t *Terminal) ResetInput() {
	input.ResetKeyInput(t.stream)
}

// Draw renders one frame.
func (t *Terminal) Draw(v View) error {
	t.updateScreen()

	// On screen or inactivity transitions, clear the terminal so text
	// from the previous screen doesn't persist.
	if !t.drawn || v.Screen != t.prevScreen || v.Inactive != t.wasInactive {
		t.chunkWriter.WriteString("\033[H\033[2J")
		t.drawn = true
		t.prevScreen = v.Screen
		t.wasInactive = v.Inactive
	}

	t.canvas.Clear()
	if v.Screen == ScreenPlaying && !v.Inactive {
		Paint(t.canvas, v.Sprites)
	}
	t.canvas.Render(t.chunkWriter)
	t.canvas.RenderBorder(t.chunkWriter)

	t.drawUI(v)
	return t.chunkWriter.Flush()
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (t *Terminal) updateScreen() {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(t.termSizeFunc)
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, MaxTermWidth, MaxTermHeight)

	if renderWidth != t.canvas.TerminalWidth() || renderHeight != t.canvas.TerminalHeight() ||
		offsetCol != t.canvas.OffsetCol() || offsetRow != t.canvas.OffsetRow() {
		t.chunkWriter.WriteString("\033[H\033[2J")
	}

	t.canvas.Resize(renderWidth, renderHeight)
	t.canvas.SetOffset(offsetCol, offsetRow)
	t.chunkWriter.SetOffset(offsetCol, offsetRow)
}

func (t *Terminal) drawUI(v View) {
	for _, txt := range Overlay(v, t.canvas, t.now()) {
		t.chunkWriter.WriteAt(txt.Col, txt.Row, txt.S)
	}
}
