// Package tui is a tcell frontend for local play.
package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/render"
)

var palette = map[draw.Color]tcell.Color{
	draw.ColorWhite:   tcell.ColorWhite,
	draw.ColorGreen:   tcell.ColorLime,
	draw.ColorCyan:    tcell.ColorAqua,
	draw.ColorMagenta: tcell.ColorFuchsia,
	draw.ColorRed:     tcell.ColorRed,
	draw.ColorYellow:  tcell.ColorYellow,
}

// Frontend draws views into a tcell screen. Keys are translated into the
// byte protocol of the input package so both frontends share key handling.
type Frontend struct {
	screen tcell.Screen
	canvas *draw.Canvas
	stream *input.Stream
	now    func() time.Time
	done   chan struct{}
}

// New takes ownership of an initialised screen and starts polling it.
func New(screen tcell.Screen, field config.FieldSettings) *Frontend {
	screen.HideCursor()
	w, h := screen.Size()
	f := &Frontend{
		screen: screen,
		canvas: draw.NewScaledCanvas(min(w, render.MaxTermWidth), min(h, render.MaxTermHeight), field.Width, field.Height),
		stream: input.NewStream(),
		now:    time.Now,
		done:   make(chan struct{}),
	}
	go f.poll()
	return f
}

func (f *Frontend) poll() {
	defer close(f.done)
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			f.screen.Sync()
		case *tcell.EventKey:
			f.stream.Push(keyBytes(ev)...)
		}
	}
}

// keyBytes maps a key event to the bytes a raw terminal would send.
func keyBytes(ev *tcell.EventKey) []byte {
	switch ev.Key() {
	case tcell.KeyLeft:
		return []byte("\x1b[D")
	case tcell.KeyRight:
		return []byte("\x1b[C")
	case tcell.KeyUp:
		return []byte("\x1b[A")
	case tcell.KeyEnter:
		return []byte{'\r'}
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return []byte{'q'}
	case tcell.KeyRune:
		if r := ev.Rune(); r < 128 {
			return []byte{byte(r)}
		}
	}
	return nil
}

// Close releases the screen and waits for the event loop to stop.
func (f *Frontend) Close() {
	f.screen.Fini()
	<-f.done
}

// ReadInput drains pending keys.
func (f *Frontend) ReadInput() input.Input {
	return input.ReadInput(f.stream)
}

// ResetInput forgets held keys.
func (f *Frontend) ResetInput() {
	input.ResetKeyInput(f.stream)
}

// Draw renders one frame.
func (f *Frontend) Draw(v render.View) error {
	w, h := f.screen.Size()
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(w, h, render.MaxTermWidth, render.MaxTermHeight)
	f.canvas.Resize(renderWidth, renderHeight)

	f.screen.Clear()
	f.canvas.Clear()
	if v.Screen == render.ScreenPlaying && !v.Inactive {
		render.Paint(f.canvas, v.Sprites)
	}
	f.paintCanvas(offsetCol, offsetRow)

	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, t := range render.Overlay(v, f.canvas, f.now()) {
		col := offsetCol + t.Col - 1
		for i, r := range t.S {
			f.screen.SetContent(col+i, offsetRow+t.Row-1, r, nil, text)
		}
	}

	f.screen.Show()
	return nil
}

// paintCanvas copies canvas sub-pixels to half-block cells.
func (f *Frontend) paintCanvas(offsetCol, offsetRow int) {
	for row := 0; row < f.canvas.TerminalHeight(); row++ {
		for col := 0; col < f.canvas.TerminalWidth(); col++ {
			top := f.canvas.Pixel(col, row*2)
			bottom := f.canvas.Pixel(col, row*2+1)
			if top == draw.ColorNone && bottom == draw.ColorNone {
				continue
			}

			ch := rune(draw.BlockUpperHalf)
			style := tcell.StyleDefault.Foreground(palette[top])
			switch {
			case top == draw.ColorNone:
				ch = draw.BlockLowerHalf
				style = tcell.StyleDefault.Foreground(palette[bottom])
			case top == bottom:
				ch = draw.BlockFull
			case bottom != draw.ColorNone:
				style = style.Background(palette[bottom])
			}
			f.screen.SetContent(offsetCol+col, offsetRow+row, ch, nil, style)
		}
	}
}
