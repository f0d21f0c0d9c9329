package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/render"
)

func newSimulated(t *testing.T) (tcell.SimulationScreen, *Frontend) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen, got %v", err)
	}
	screen.SetSize(128, 56)
	f := New(screen, config.Default().Field)
	t.Cleanup(f.Close)
	return screen, f
}

func TestKeyBytes(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "\x1b[D"},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), "\x1b[C"},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "\x1b[A"},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "\r"},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "q"},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), " "},
		{tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), ""},
	}
	for _, tt := range tests {
		if got := string(keyBytes(tt.ev)); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

func TestFrontendReadsKeys(t *testing.T) {
	screen, f := newSimulated(t)
	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if f.ReadInput().Left {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Error("Expected an injected left arrow to read as left")
}

func TestFrontendDrawsShip(t *testing.T) {
	screen, f := newSimulated(t)
	s := render.NewSprites(config.Default())
	s.Place((&object.IDs{}).Next(object.KindShip), 15, 490)

	if err := f.Draw(render.View{Screen: render.ScreenPlaying, Sprites: s.Snapshot(), Score: 40}); err != nil {
		t.Fatalf("Expected draw to succeed, got %v", err)
	}

	// The ship's lower rows are solid across its width: cell (8, 50)
	// covers field x 40..45, y 500..510.
	mainc, _, _, _ := screen.GetContent(8, 50)
	if mainc != '█' {
		t.Errorf("Expected a full block inside the ship, got %q", mainc)
	}
	mainc, _, _, _ = screen.GetContent(1, 55)
	if mainc != 'S' {
		t.Errorf("Expected the HUD to start on the last row, got %q", mainc)
	}
}
